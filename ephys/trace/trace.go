package trace

import (
	"errors"
	"fmt"
	"math"

	"github.com/cwbudde/algo-ephys/ephys"
)

var (
	// ErrEmptyTrace is returned when a stage receives a trace without samples.
	ErrEmptyTrace = errors.New("trace: empty trace")
	// ErrUnsortedTimes is returned when sample times are not strictly increasing.
	ErrUnsortedTimes = errors.New("trace: times not strictly increasing")
	// ErrNonFinite is returned for NaN or Inf times or values.
	ErrNonFinite = errors.New("trace: non-finite sample")
)

// Sample is one time point of a trace. Cut marks the alignment event.
type Sample struct {
	Time  float64
	Value float64
	Cut   bool
}

// Metadata describes where a trace was recorded.
type Metadata struct {
	Genotype string
	Source   string // recording position
	Target   string // target label of the channel
	Channel  string
}

// Trace is one channel of one recording.
type Trace struct {
	ID      ephys.TraceID
	Meta    Metadata
	Samples []Sample
}

// Len returns the number of samples.
func (tr Trace) Len() int { return len(tr.Samples) }

// Times returns a copy of the sample times.
func (tr Trace) Times() []float64 {
	out := make([]float64, len(tr.Samples))
	for i, s := range tr.Samples {
		out[i] = s.Time
	}

	return out
}

// Values returns a copy of the sample values.
func (tr Trace) Values() []float64 {
	out := make([]float64, len(tr.Samples))
	for i, s := range tr.Samples {
		out[i] = s.Value
	}

	return out
}

// CutIndices returns the positions of all cut-marked samples.
func (tr Trace) CutIndices() []int {
	var idx []int

	for i, s := range tr.Samples {
		if s.Cut {
			idx = append(idx, i)
		}
	}

	return idx
}

// Span returns the first and last sample time. The trace must be non-empty
// and sorted.
func (tr Trace) Span() (float64, float64) {
	return tr.Samples[0].Time, tr.Samples[len(tr.Samples)-1].Time
}

// Clone returns a deep copy.
func (tr Trace) Clone() Trace {
	out := tr
	out.Samples = append([]Sample(nil), tr.Samples...)

	return out
}

// withSamples returns tr carrying samples instead of its own.
func (tr Trace) withSamples(samples []Sample) Trace {
	out := tr
	out.Samples = samples

	return out
}

// Validate checks that times are finite and strictly increasing.
func Validate(tr Trace) error {
	const op = "validate"

	if len(tr.Samples) == 0 {
		return ephys.Errorf(ephys.KindStandardization, tr.ID, op, "%w", ErrEmptyTrace)
	}

	for i, s := range tr.Samples {
		if math.IsNaN(s.Time) || math.IsInf(s.Time, 0) {
			return ephys.Errorf(ephys.KindStandardization, tr.ID, op,
				"%w: time at sample %d", ErrNonFinite, i)
		}

		if i > 0 && !(s.Time > tr.Samples[i-1].Time) {
			return ephys.Errorf(ephys.KindStandardization, tr.ID, op,
				"%w: %g after %g at sample %d", ErrUnsortedTimes, s.Time, tr.Samples[i-1].Time, i)
		}
	}

	return nil
}

func (s Sample) String() string {
	if s.Cut {
		return fmt.Sprintf("(%g, %g, cut)", s.Time, s.Value)
	}

	return fmt.Sprintf("(%g, %g)", s.Time, s.Value)
}
