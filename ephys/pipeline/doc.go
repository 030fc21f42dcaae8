// Package pipeline runs the full coding chain over a batch of traces:
//
//	align -> [decimate] -> standardize -> [resample] -> dictionary -> fit
//
// followed by assembly of the coefficient matrix. With a grid step every
// standardized trace is resampled onto the same window grid, so the whole
// batch is coded against one dictionary. Without it, traces share a
// dictionary only when their standardized times are identical. Traces are processed
// concurrently on a bounded worker pool; dictionaries are shared through a
// [dictionary.Cache]. A failing trace is recorded in the report and the
// batch continues, unless Config.FailFast is set.
package pipeline
