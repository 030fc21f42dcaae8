// Package trace conditions single-channel electrophysiology traces before
// sparse coding.
//
// A [Trace] is an ordered list of (time, value, cut) samples. The stages
// are pure functions returning new traces:
//
//   - [Align] shifts time so the unique cut marker sits at 0
//   - [Pad] extends the trace with zero samples to cover a [Window]
//   - [Normalize] centres by the mean and scales by the MAD
//   - [Truncate] keeps samples strictly inside the window
//   - [Standardize] chains Pad, Normalize and Truncate
//
// [Decimate] thins a raw trace. [Resample] and [ResampleHold] move a trace
// onto a common [Grid]; applied to standardized traces they give every
// trace the same sample times.
//
// Failures are reported as *ephys.Error carrying the trace ID.
package trace
