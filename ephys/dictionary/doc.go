// Package dictionary builds wavelet dictionaries evaluated at arbitrary
// sample times.
//
// A dictionary has one row per query time and one column per coefficient
// of a multilevel wavelet decomposition of length R (the resolution). Each
// column is the impulse response of the inverse transform for one
// coefficient, sampled by linear interpolation at the query times after
// stretching them onto [0, R]:
//
//	stretch(t) = (t - min) / (max - min) * R
//
// Columns are ordered coarse to fine: the approximation band first, then
// detail bands from the coarsest level down to level 1.
//
// [Build] is a pure function. [Cache] shares dictionaries across traces
// with identical query times.
package dictionary
