package ephys

import (
	"errors"
	"fmt"
	"testing"
)

var errCause = errors.New("pkg: boom")

func TestErrorFormat(t *testing.T) {
	err := &Error{
		Kind: KindAlignment,
		ID:   TraceID{File: "wt ch1A.txt", Channel: "ch1"},
		Op:   "align",
		Err:  errCause,
	}

	want := "align wt ch1A.txt/ch1: alignment: pkg: boom"
	if got := err.Error(); got != want {
		t.Fatalf("Error() = %q, want %q", got, want)
	}

	bare := &Error{Kind: KindConfiguration, Err: errCause}
	if got := bare.Error(); got != "configuration: pkg: boom" {
		t.Fatalf("Error() = %q", got)
	}
}

func TestErrorMatching(t *testing.T) {
	var err error = &Error{Kind: KindStandardization, Op: "normalize", Err: errCause}
	wrapped := fmt.Errorf("batch: %w", err)

	if !errors.Is(wrapped, ErrStandardization) {
		t.Fatal("errors.Is(kind sentinel) = false")
	}

	if errors.Is(wrapped, ErrAlignment) {
		t.Fatal("matched the wrong kind")
	}

	if !errors.Is(wrapped, errCause) {
		t.Fatal("cause not reachable through Unwrap")
	}

	if got := KindOf(wrapped); got != KindStandardization {
		t.Fatalf("KindOf = %v", got)
	}

	if got := KindOf(errCause); got != 0 {
		t.Fatalf("KindOf(plain) = %v, want 0", got)
	}
}

func TestWrap(t *testing.T) {
	id := TraceID{File: "f", Channel: "ch2"}

	if Wrap(KindDimension, id, "fit", nil) != nil {
		t.Fatal("Wrap(nil) != nil")
	}

	err := Wrap(KindDimension, id, "fit", errCause)
	if KindOf(err) != KindDimension {
		t.Fatalf("kind = %v", KindOf(err))
	}

	got, ok := IDOf(err)
	if !ok || got != id {
		t.Fatalf("IDOf = %v, %v", got, ok)
	}

	// an anonymous *Error keeps its kind and gains the id
	inner := &Error{Kind: KindConfiguration, Op: "build", Err: errCause}

	err = Wrap(KindDimension, id, "fit", inner)
	if KindOf(err) != KindConfiguration {
		t.Fatalf("kind = %v, want configuration", KindOf(err))
	}

	if got, _ := IDOf(err); got != id {
		t.Fatalf("IDOf = %v, want %v", got, id)
	}

	if inner.ID != (TraceID{}) {
		t.Fatal("Wrap mutated its input")
	}
}

func TestTraceIDCompare(t *testing.T) {
	a := TraceID{File: "a", Channel: "ch2"}
	b := TraceID{File: "a", Channel: "ch10"}
	c := TraceID{File: "b", Channel: "ch1"}

	if a.Compare(c) >= 0 || c.Compare(a) <= 0 {
		t.Fatal("file order wrong")
	}

	if b.Compare(a) >= 0 {
		t.Fatal("channel order is lexical")
	}

	if a.Compare(a) != 0 {
		t.Fatal("self compare != 0")
	}

	if (TraceID{}).String() != "" || a.String() != "a/ch2" {
		t.Fatal("String mismatch")
	}
}

func TestKindString(t *testing.T) {
	for k, want := range map[Kind]string{
		KindAlignment:       "alignment",
		KindConfiguration:   "configuration",
		KindStandardization: "standardization",
		KindDimension:       "dimension",
		Kind(42):            "kind(42)",
	} {
		if got := k.String(); got != want {
			t.Fatalf("%d.String() = %q, want %q", int(k), got, want)
		}
	}
}
