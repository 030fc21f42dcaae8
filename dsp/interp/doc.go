// Package interp provides the interpolation primitives used to evaluate
// sampled responses at arbitrary positions.
//
// Available methods:
//
//   - [Linear2]:  2-point linear interpolation at a fractional offset
//   - [Split]:    decomposition of a stretched position into index and fraction
//   - [Piecewise]: piecewise-linear interpolation of (x, y) data onto query points
package interp
