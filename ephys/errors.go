package ephys

import (
	"errors"
	"fmt"
)

// Kind classifies a failure.
type Kind int

const (
	// KindAlignment reports a missing or ambiguous cut marker.
	KindAlignment Kind = iota + 1
	// KindConfiguration reports invalid parameters: family, resolution,
	// query times, window or penalty.
	KindConfiguration
	// KindStandardization reports a trace that cannot be normalized.
	KindStandardization
	// KindDimension reports mismatched lengths between stages.
	KindDimension
)

func (k Kind) String() string {
	switch k {
	case KindAlignment:
		return "alignment"
	case KindConfiguration:
		return "configuration"
	case KindStandardization:
		return "standardization"
	case KindDimension:
		return "dimension"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Kind sentinels match any *Error of that kind with errors.Is.
var (
	ErrAlignment       = &kindError{KindAlignment}
	ErrConfiguration   = &kindError{KindConfiguration}
	ErrStandardization = &kindError{KindStandardization}
	ErrDimension       = &kindError{KindDimension}
)

type kindError struct{ kind Kind }

func (e *kindError) Error() string { return "ephys: " + e.kind.String() + " error" }

// Error attributes a failure to a trace and a stage.
type Error struct {
	Kind Kind
	ID   TraceID // zero for failures not tied to a trace
	Op   string
	Err  error
}

// Errorf builds an *Error with a formatted cause. Use %w to keep the
// underlying sentinel matchable.
func Errorf(kind Kind, id TraceID, op, format string, args ...any) *Error {
	return &Error{Kind: kind, ID: id, Op: op, Err: fmt.Errorf(format, args...)}
}

// Wrap returns err attributed to kind, id and op. A nil err yields nil.
// An err that already is an *Error keeps its kind and gains the id if it
// had none.
func Wrap(kind Kind, id TraceID, op string, err error) error {
	if err == nil {
		return nil
	}

	var e *Error
	if errors.As(err, &e) {
		if e.ID == (TraceID{}) && id != (TraceID{}) {
			cp := *e
			cp.ID = id
			return &cp
		}

		return err
	}

	return &Error{Kind: kind, ID: id, Op: op, Err: err}
}

func (e *Error) Error() string {
	msg := e.Op
	if s := e.ID.String(); s != "" {
		if msg != "" {
			msg += " "
		}

		msg += s
	}

	if msg != "" {
		msg += ": "
	}

	msg += e.Kind.String()
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}

	return msg
}

func (e *Error) Unwrap() error { return e.Err }

// Is reports whether target is the sentinel for e's kind.
func (e *Error) Is(target error) bool {
	k, ok := target.(*kindError)
	return ok && k.kind == e.Kind
}

// KindOf returns the kind of the first *Error in err's chain, or 0.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}

	return 0
}

// IDOf returns the trace attributed to err, if any.
func IDOf(err error) (TraceID, bool) {
	var e *Error
	if errors.As(err, &e) && e.ID != (TraceID{}) {
		return e.ID, true
	}

	return TraceID{}, false
}
