package wavelet

import (
	"errors"
	"fmt"

	"github.com/cwbudde/algo-ephys/dsp/core"
)

// Errors returned by the transforms.
var (
	ErrEmptyInput    = errors.New("wavelet: empty input")
	ErrInvalidLevel  = errors.New("wavelet: invalid decomposition level")
	ErrShapeMismatch = errors.New("wavelet: coefficient shape mismatch")
)

// CoeffLen returns the per-band coefficient count of a single-level forward
// transform of n samples.
func (w *Wavelet) CoeffLen(n int) int {
	if n <= 0 {
		return 0
	}
	return (n + w.Len() - 1) / 2
}

// MaxLevel returns floor(log2(n/(F-1))), the deepest useful decomposition
// level for n samples, or 0 when n < 2(F-1).
func (w *Wavelet) MaxLevel(n int) int {
	span := w.Len() - 1
	if n <= 0 || span < 1 {
		return 0
	}
	return max(core.FloorLog2(n/span), 0)
}

// DWT performs a single-level forward transform with symmetric extension
// and returns the approximation and detail bands.
func (w *Wavelet) DWT(x []float64) (cA, cD []float64, err error) {
	if len(x) == 0 {
		return nil, nil, ErrEmptyInput
	}

	f := w.Len()
	ext := symmetricExtend(x, f-1)

	lo, err := w.decLo.Apply(ext)
	if err != nil {
		return nil, nil, fmt.Errorf("wavelet: lowpass analysis: %w", err)
	}
	hi, err := w.decHi.Apply(ext)
	if err != nil {
		return nil, nil, fmt.Errorf("wavelet: highpass analysis: %w", err)
	}

	// Keep odd positions of the convolution over the unextended support:
	// out[o] = sum_j h[j] x[i-j] for i = 2o+1, which sits at index i+F-1
	// of the extended convolution.
	n := w.CoeffLen(len(x))
	cA = make([]float64, n)
	cD = make([]float64, n)
	for o := range n {
		idx := 2*o + f
		cA[o] = lo[idx]
		cD[o] = hi[idx]
	}
	return cA, cD, nil
}

// IDWT performs a single-level inverse transform. cA and cD must have equal
// length M >= F/2; the result has 2M-F+2 samples. A nil band is treated as
// all zeros.
func (w *Wavelet) IDWT(cA, cD []float64) ([]float64, error) {
	m := len(cA)
	if cA == nil {
		m = len(cD)
	}
	if m == 0 {
		return nil, ErrEmptyInput
	}
	if (cA != nil && len(cA) != m) || (cD != nil && len(cD) != m) {
		return nil, fmt.Errorf("%w: approximation %d, detail %d", ErrShapeMismatch, len(cA), len(cD))
	}

	f := w.Len()
	if m < f/2 {
		return nil, fmt.Errorf("%w: %d coefficients, filter needs at least %d", ErrShapeMismatch, m, f/2)
	}

	outLen := 2*m - f + 2
	out := make([]float64, outLen)

	// Valid part of the upsampled convolution starts at index F-2.
	if err := accumulateUpsampled(out, cA, w.recLo.Apply, f-2); err != nil {
		return nil, fmt.Errorf("wavelet: lowpass synthesis: %w", err)
	}
	if err := accumulateUpsampled(out, cD, w.recHi.Apply, f-2); err != nil {
		return nil, fmt.Errorf("wavelet: highpass synthesis: %w", err)
	}
	return out, nil
}

func accumulateUpsampled(out, band []float64, apply func([]float64) ([]float64, error), offset int) error {
	if band == nil || allZero(band) {
		return nil
	}

	up := make([]float64, 2*len(band))
	for i, v := range band {
		up[2*i] = v
	}

	full, err := apply(up)
	if err != nil {
		return err
	}
	for i := range out {
		out[i] += full[offset+i]
	}
	return nil
}

func allZero(x []float64) bool {
	for _, v := range x {
		if v != 0 {
			return false
		}
	}
	return true
}

// symmetricExtend pads x by pad samples on each side with half-sample
// symmetric extension (x[-1] = x[0], x[N] = x[N-1]), repeating periodically
// when pad exceeds len(x).
func symmetricExtend(x []float64, pad int) []float64 {
	n := len(x)
	out := make([]float64, n+2*pad)
	period := 2 * n
	for i := range out {
		m := (i - pad) % period
		if m < 0 {
			m += period
		}
		if m >= n {
			m = period - 1 - m
		}
		out[i] = x[m]
	}
	return out
}
