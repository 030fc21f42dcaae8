package conv

import (
	"errors"

	"github.com/cwbudde/algo-vecmath"
)

// Errors returned by convolution functions.
var (
	ErrEmptyInput  = errors.New("conv: empty input")
	ErrEmptyKernel = errors.New("conv: empty kernel")
)

// directThreshold is the longest kernel convolved in the time domain.
const directThreshold = 64

// Direct returns the full linear convolution of a and b, computed in the
// time domain. The result has len(a)+len(b)-1 samples.
func Direct(a, b []float64) ([]float64, error) {
	if len(a) == 0 {
		return nil, ErrEmptyInput
	}
	if len(b) == 0 {
		return nil, ErrEmptyKernel
	}

	out := make([]float64, len(a)+len(b)-1)
	accumulate(out, a, b)
	return out, nil
}

// accumulate adds x*taps into dst, which must hold len(x)+len(taps)-1
// samples. Zero input samples are skipped.
func accumulate(dst, x, taps []float64) {
	m := len(taps)
	if m < 4 {
		for i, v := range x {
			if v == 0 {
				continue
			}
			for j, h := range taps {
				dst[i+j] += v * h
			}
		}
		return
	}

	scaled := make([]float64, m)
	for i, v := range x {
		if v == 0 {
			continue
		}
		vecmath.ScaleBlock(scaled, taps, v)
		vecmath.AddBlockInPlace(dst[i:i+m], scaled)
	}
}
