package trace

import (
	"errors"
	"math"
	"testing"

	"github.com/cwbudde/algo-ephys/ephys"
	"github.com/cwbudde/algo-ephys/internal/testutil"
)

var testID = ephys.TraceID{File: "wt ch1A ch2B ch3C ch4D.txt", Channel: "ch1"}

// rawTrace returns samples at integer times [from, to] with the cut marker
// at cut. Values follow a damped response so the MAD is non-zero.
func rawTrace(from, to, cut int) Trace {
	times := testutil.Range(float64(from), 1, to-from+1)
	values := testutil.EvokedResponse(times, float64(cut), 1)

	samples := make([]Sample, len(times))
	for i, t := range times {
		samples[i] = Sample{Time: t, Value: values[i], Cut: int(t) == cut}
	}

	return Trace{
		ID:      testID,
		Meta:    Metadata{Genotype: "wt", Target: "A", Channel: "ch1"},
		Samples: samples,
	}
}

func requireKind(t *testing.T, err error, kind ephys.Kind, sentinel error) {
	t.Helper()

	if err == nil {
		t.Fatalf("expected %v error, got nil", kind)
	}

	if got := ephys.KindOf(err); got != kind {
		t.Fatalf("kind = %v, want %v (err %v)", got, kind, err)
	}

	if sentinel != nil && !errors.Is(err, sentinel) {
		t.Fatalf("err = %v, want %v", err, sentinel)
	}

	if id, ok := ephys.IDOf(err); ok && id != testID {
		t.Fatalf("id = %v, want %v", id, testID)
	}
}

func TestAlign(t *testing.T) {
	tr := rawTrace(100, 140, 120)

	got, err := Align(tr)
	if err != nil {
		t.Fatalf("Align: %v", err)
	}

	idx := got.CutIndices()
	if len(idx) != 1 || got.Samples[idx[0]].Time != 0 {
		t.Fatalf("cut sample not at 0: %v", idx)
	}

	first, last := got.Span()
	if first != -20 || last != 20 {
		t.Fatalf("span = [%g, %g], want [-20, 20]", first, last)
	}

	testutil.RequireBitIdentical(t, got.Values(), tr.Values())

	if got.Meta != tr.Meta || got.ID != tr.ID {
		t.Fatal("metadata not preserved")
	}

	if tr.Samples[0].Time != 100 {
		t.Fatal("Align modified its input")
	}
}

func TestAlignIdempotent(t *testing.T) {
	once, err := Align(rawTrace(100, 140, 120))
	if err != nil {
		t.Fatalf("Align: %v", err)
	}

	twice, err := Align(once)
	if err != nil {
		t.Fatalf("Align: %v", err)
	}

	testutil.RequireBitIdentical(t, twice.Times(), once.Times())
	testutil.RequireBitIdentical(t, twice.Values(), once.Values())
}

func TestAlignErrors(t *testing.T) {
	none := rawTrace(0, 10, -1)
	_, err := Align(none)
	requireKind(t, err, ephys.KindAlignment, ErrNoCutMarker)

	if !errors.Is(err, ephys.ErrAlignment) {
		t.Fatal("not matched by ephys.ErrAlignment")
	}

	two := rawTrace(0, 10, 3)
	two.Samples[7].Cut = true
	_, err = Align(two)
	requireKind(t, err, ephys.KindAlignment, ErrMultipleCutMarkers)

	if id, _ := ephys.IDOf(err); id != testID {
		t.Fatalf("error not attributed: %v", err)
	}
}

func TestValidate(t *testing.T) {
	if err := Validate(rawTrace(0, 5, 2)); err != nil {
		t.Fatalf("Validate: %v", err)
	}

	requireKind(t, Validate(Trace{ID: testID}), ephys.KindStandardization, ErrEmptyTrace)

	unsorted := rawTrace(0, 5, 2)
	unsorted.Samples[3].Time = 1
	requireKind(t, Validate(unsorted), ephys.KindStandardization, ErrUnsortedTimes)

	nan := rawTrace(0, 5, 2)
	nan.Samples[4].Time = math.NaN()
	requireKind(t, Validate(nan), ephys.KindStandardization, ErrNonFinite)
}

func TestClone(t *testing.T) {
	tr := rawTrace(0, 3, 1)
	c := tr.Clone()
	c.Samples[0].Value = 99

	if tr.Samples[0].Value == 99 {
		t.Fatal("Clone shares samples")
	}
}
