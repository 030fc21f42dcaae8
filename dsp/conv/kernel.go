package conv

// Kernel is a reusable convolution kernel. Kernels longer than 64 taps are
// applied with FFT overlap-add, shorter ones in the time domain. A Kernel is
// safe for concurrent use.
type Kernel struct {
	taps []float64
	fft  *spectral // nil for direct kernels
}

// NewKernel copies taps into a new Kernel.
func NewKernel(taps []float64) (*Kernel, error) {
	if len(taps) == 0 {
		return nil, ErrEmptyKernel
	}

	k := &Kernel{taps: append([]float64(nil), taps...)}
	if len(taps) > directThreshold {
		fft, err := newSpectral(k.taps)
		if err != nil {
			return nil, err
		}
		k.fft = fft
	}

	return k, nil
}

// Len returns the number of taps.
func (k *Kernel) Len() int {
	return len(k.taps)
}

// Taps returns a copy of the kernel taps.
func (k *Kernel) Taps() []float64 {
	return append([]float64(nil), k.taps...)
}

// UsesFFT reports whether Apply runs through the overlap-add path.
func (k *Kernel) UsesFFT() bool {
	return k.fft != nil
}

// Apply returns the full linear convolution of signal with the kernel,
// len(signal)+Len()-1 samples.
func (k *Kernel) Apply(signal []float64) ([]float64, error) {
	if len(signal) == 0 {
		return nil, ErrEmptyInput
	}

	out := make([]float64, len(signal)+len(k.taps)-1)
	if k.fft == nil {
		accumulate(out, signal, k.taps)
		return out, nil
	}

	if err := k.fft.convolve(out, signal); err != nil {
		return nil, err
	}
	return out, nil
}
