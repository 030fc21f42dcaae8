// Package conv provides the linear convolution used by the wavelet filter
// bank.
//
// A [Kernel] fixes its strategy at construction:
//
//	k, err := conv.NewKernel(taps)
//	full, err := k.Apply(signal) // len(signal)+len(taps)-1 samples
//
// Kernels of at most 64 taps are convolved in the time domain with vecmath
// block kernels. Longer kernels (db33 to db38) use FFT overlap-add with a
// precomputed kernel spectrum. Both paths skip zero input, which keeps
// impulse probing of sparse coefficient arrays cheap.
//
// [Direct] is the plain time-domain reference.
package conv
