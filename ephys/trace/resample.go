package trace

import (
	"errors"
	"math"

	"github.com/cwbudde/algo-ephys/dsp/interp"
	"github.com/cwbudde/algo-ephys/ephys"
)

// ErrOutsideSupport is returned by Resample for grid points outside the
// observed time span.
var ErrOutsideSupport = errors.New("trace: grid point outside trace support")

// ErrInvalidStep is returned by Decimate for a non-positive stride.
var ErrInvalidStep = errors.New("trace: invalid step")

// Grid returns min, min+step, ... for all points below max. It returns nil
// for an empty or invalid range.
func Grid(minTime, maxTime, step float64) []float64 {
	if !(step > 0) || !(maxTime > minTime) || math.IsInf(maxTime-minTime, 0) {
		return nil
	}

	n := int(math.Ceil((maxTime - minTime) / step))
	out := make([]float64, 0, n)

	for k := range n {
		t := minTime + float64(k)*step
		if t >= maxTime {
			break
		}

		out = append(out, t)
	}

	return out
}

// Resample evaluates tr at the given times by piecewise-linear
// interpolation. Times must lie within the trace's span.
//
// The cut flag moves to the output time nearest the cut-marked sample
// (the earlier one on a tie). When the cut lies outside the range of times
// the result carries no marker.
func Resample(tr Trace, times []float64) (Trace, error) {
	return resample(tr, times, false)
}

// ResampleHold is Resample with the first and last sample values held
// outside the trace's span, so any finite times are accepted.
func ResampleHold(tr Trace, times []float64) (Trace, error) {
	return resample(tr, times, true)
}

func resample(tr Trace, times []float64, hold bool) (Trace, error) {
	const op = "resample"

	if err := Validate(tr); err != nil {
		return Trace{}, err
	}

	if len(tr.Samples) < 2 {
		return Trace{}, ephys.Errorf(ephys.KindStandardization, tr.ID, op,
			"%w: single sample", ErrOutsideSupport)
	}

	p, err := interp.NewPiecewise(tr.Times(), tr.Values())
	if err != nil {
		return Trace{}, ephys.Wrap(ephys.KindStandardization, tr.ID, op, err)
	}

	eval := p.Eval
	if hold {
		eval = p.EvalHold
	}

	values, err := eval(times)
	if errors.Is(err, interp.ErrOutsideSupport) {
		return Trace{}, ephys.Errorf(ephys.KindStandardization, tr.ID, op, "%w: %w", ErrOutsideSupport, err)
	}

	if err != nil {
		return Trace{}, ephys.Wrap(ephys.KindStandardization, tr.ID, op, err)
	}

	out := make([]Sample, len(times))
	for i, t := range times {
		out[i] = Sample{Time: t, Value: values[i]}
	}

	if idx := tr.CutIndices(); len(idx) == 1 {
		if k := nearest(times, tr.Samples[idx[0]].Time); k >= 0 {
			out[k].Cut = true
		}
	}

	return tr.withSamples(out), nil
}

// nearest returns the index of the time closest to c, or -1 when c lies
// outside [min(times), max(times)].
func nearest(times []float64, c float64) int {
	best, dist := -1, math.Inf(1)
	lo, hi := math.Inf(1), math.Inf(-1)

	for i, t := range times {
		lo, hi = min(lo, t), max(hi, t)

		if d := math.Abs(t - c); d < dist {
			best, dist = i, d
		}
	}

	if c < lo || c > hi {
		return -1
	}

	return best
}

// Decimate keeps every n-th non-cut sample, starting with the first, plus
// every cut-marked sample. Time order is preserved. n == 1 returns a copy.
func Decimate(tr Trace, n int) (Trace, error) {
	if n < 1 {
		return Trace{}, ephys.Errorf(ephys.KindConfiguration, tr.ID, "decimate",
			"%w: %d", ErrInvalidStep, n)
	}

	out := make([]Sample, 0, len(tr.Samples)/n+1)

	var k int

	for _, s := range tr.Samples {
		if s.Cut {
			out = append(out, s)
			continue
		}

		if k%n == 0 {
			out = append(out, s)
		}

		k++
	}

	return tr.withSamples(out), nil
}
