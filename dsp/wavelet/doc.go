// Package wavelet implements orthogonal discrete wavelet transforms.
//
// Available families:
//
//   - haar:       alias of db1
//   - db1..db38:  Daubechies, extremal (minimum) phase, 2N taps
//
// Single-level transforms ([Wavelet.DWT], [Wavelet.IDWT]) use half-sample
// symmetric boundary extension. A forward transform of N samples with an
// F-tap filter yields floor((N+F-1)/2) coefficients per band, and the inverse
// of M coefficients per band yields 2M-F+2 samples.
//
// Multilevel transforms ([Wavelet.Decompose], [Wavelet.Reconstruct]) order
// the bands coarse to fine:
//
//	[cA_L, cD_L, cD_L-1, ..., cD_1]
//
// The default level is [Wavelet.MaxLevel], the deepest level at which the
// coarsest band still spans one filter length. When the signal is shorter
// than two filter lengths the maximum level is 0 and the decomposition holds
// the signal itself as its only band.
//
// Filtering runs through [conv.Kernel], so filters longer than 64 taps
// (db33 and up) are applied with FFT overlap-add.
package wavelet
