package conv

import (
	"fmt"
	"math/bits"
	"sync"

	algofft "github.com/MeKo-Christian/algo-fft"
)

// minFrameSize is the smallest FFT frame used for overlap-add.
const minFrameSize = 256

// spectral convolves with one fixed kernel by FFT overlap-add. The kernel
// spectrum is computed once and shared; FFT plans and scratch frames are
// pooled so concurrent callers never share a buffer.
type spectral struct {
	taps     int
	size     int // FFT frame length
	segment  int // input samples per frame
	spectrum []complex128
	frames   sync.Pool // *frame
}

type frame struct {
	plan *algofft.Plan[complex128]
	buf  []complex128
}

func newFrame(size int) (*frame, error) {
	plan, err := algofft.NewPlan64(size)
	if err != nil {
		return nil, fmt.Errorf("conv: fft plan of size %d: %w", size, err)
	}
	return &frame{plan: plan, buf: make([]complex128, size)}, nil
}

func newSpectral(taps []float64) (*spectral, error) {
	size := max(nextPowerOf2(2*len(taps)), minFrameSize)

	f, err := newFrame(size)
	if err != nil {
		return nil, err
	}
	for i, h := range taps {
		f.buf[i] = complex(h, 0)
	}

	spectrum := make([]complex128, size)
	if err := f.plan.Forward(spectrum, f.buf); err != nil {
		return nil, fmt.Errorf("conv: kernel spectrum: %w", err)
	}

	s := &spectral{
		taps:     len(taps),
		size:     size,
		segment:  size - len(taps) + 1,
		spectrum: spectrum,
	}
	s.frames.Put(f)
	return s, nil
}

func (s *spectral) frame() (*frame, error) {
	if f, ok := s.frames.Get().(*frame); ok {
		return f, nil
	}
	return newFrame(s.size)
}

// convolve adds the full convolution of x with the kernel into dst.
// Segments that are entirely zero contribute nothing and are skipped.
func (s *spectral) convolve(dst, x []float64) error {
	f, err := s.frame()
	if err != nil {
		return err
	}
	defer s.frames.Put(f)

	for start := 0; start < len(x); start += s.segment {
		seg := x[start:min(start+s.segment, len(x))]
		if isZero(seg) {
			continue
		}

		clear(f.buf)
		for i, v := range seg {
			f.buf[i] = complex(v, 0)
		}
		if err := f.plan.Forward(f.buf, f.buf); err != nil {
			return fmt.Errorf("conv: forward fft: %w", err)
		}
		for i, h := range s.spectrum {
			f.buf[i] *= h
		}
		if err := f.plan.Inverse(f.buf, f.buf); err != nil {
			return fmt.Errorf("conv: inverse fft: %w", err)
		}

		n := min(len(seg)+s.taps-1, len(dst)-start)
		for i := 0; i < n; i++ {
			dst[start+i] += real(f.buf[i])
		}
	}

	return nil
}

func isZero(x []float64) bool {
	for _, v := range x {
		if v != 0 {
			return false
		}
	}
	return true
}

// nextPowerOf2 returns the smallest power of two >= n.
func nextPowerOf2(n int) int {
	if n <= 1 {
		return 1
	}
	return 1 << bits.Len(uint(n-1))
}
