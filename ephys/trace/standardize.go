package trace

import (
	"errors"
	"math"

	"github.com/cwbudde/algo-ephys/ephys"
	"github.com/cwbudde/algo-ephys/stats/robust"
)

// ErrInvalidWindow is returned for a window with Min >= Max, Step <= 0 or
// non-finite bounds.
var ErrInvalidWindow = errors.New("trace: invalid window")

// Window is the analysis window shared by all traces of a batch.
type Window struct {
	Min  float64 `yaml:"min_time"`
	Max  float64 `yaml:"max_time"`
	Step float64 `yaml:"step"`
}

// Validate checks the window bounds.
func (w Window) Validate() error {
	for _, v := range []float64{w.Min, w.Max, w.Step} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return ephys.Errorf(ephys.KindConfiguration, ephys.TraceID{}, "window",
				"%w: non-finite bound %g", ErrInvalidWindow, v)
		}
	}

	if w.Min >= w.Max {
		return ephys.Errorf(ephys.KindConfiguration, ephys.TraceID{}, "window",
			"%w: min %g >= max %g", ErrInvalidWindow, w.Min, w.Max)
	}

	if w.Step <= 0 {
		return ephys.Errorf(ephys.KindConfiguration, ephys.TraceID{}, "window",
			"%w: step %g <= 0", ErrInvalidWindow, w.Step)
	}

	return nil
}

// Pad extends tr with zero-valued, non-cut samples so it covers w.
// Leading samples sit at w.Min + k*w.Step below the first observed time,
// trailing samples at last + k*w.Step (k >= 1) up to and including w.Max.
// Observed samples are kept unchanged.
func Pad(tr Trace, w Window) (Trace, error) {
	const op = "pad"

	if err := w.Validate(); err != nil {
		return Trace{}, ephys.Wrap(ephys.KindConfiguration, tr.ID, op, err)
	}

	if len(tr.Samples) == 0 {
		return Trace{}, ephys.Errorf(ephys.KindStandardization, tr.ID, op, "%w", ErrEmptyTrace)
	}

	first, last := tr.Span()

	var lead []Sample

	for k := 0; ; k++ {
		t := w.Min + float64(k)*w.Step
		if t >= first {
			break
		}

		lead = append(lead, Sample{Time: t})
	}

	var tail []Sample

	if last < w.Max {
		for k := 1; ; k++ {
			t := last + float64(k)*w.Step
			if t > w.Max {
				break
			}

			tail = append(tail, Sample{Time: t})
		}
	}

	out := make([]Sample, 0, len(lead)+len(tr.Samples)+len(tail))
	out = append(out, lead...)
	out = append(out, tr.Samples...)
	out = append(out, tail...)

	return tr.withSamples(out), nil
}

// Normalize centres the values by their mean and divides by their mean
// absolute deviation from the median. Times and flags are unchanged.
func Normalize(tr Trace) (Trace, error) {
	const op = "normalize"

	values, _, err := robust.Normalize(tr.Values())

	switch {
	case errors.Is(err, robust.ErrEmpty):
		return Trace{}, ephys.Errorf(ephys.KindStandardization, tr.ID, op, "%w", ErrEmptyTrace)
	case errors.Is(err, robust.ErrNonFinite):
		return Trace{}, ephys.Errorf(ephys.KindStandardization, tr.ID, op, "%w", ErrNonFinite)
	case err != nil:
		return Trace{}, ephys.Wrap(ephys.KindStandardization, tr.ID, op, err)
	}

	out := make([]Sample, len(tr.Samples))
	for i, s := range tr.Samples {
		s.Value = values[i]
		out[i] = s
	}

	return tr.withSamples(out), nil
}

// Truncate keeps the samples with w.Min < time < w.Max.
func Truncate(tr Trace, w Window) Trace {
	out := make([]Sample, 0, len(tr.Samples))

	for _, s := range tr.Samples {
		if s.Time > w.Min && s.Time < w.Max {
			out = append(out, s)
		}
	}

	return tr.withSamples(out)
}

// Standardize pads tr to w, normalizes it and truncates it to the open
// window. The statistics include the padding samples.
func Standardize(tr Trace, w Window) (Trace, error) {
	if err := w.Validate(); err != nil {
		return Trace{}, ephys.Wrap(ephys.KindConfiguration, tr.ID, "standardize", err)
	}

	if err := Validate(tr); err != nil {
		return Trace{}, err
	}

	padded, err := Pad(tr, w)
	if err != nil {
		return Trace{}, err
	}

	normalized, err := Normalize(padded)
	if err != nil {
		return Trace{}, err
	}

	return Truncate(normalized, w), nil
}
