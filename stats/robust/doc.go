// Package robust provides location and dispersion estimates that tolerate
// outlier spikes: a compensated mean, the median and the mean absolute
// deviation from the median (MAD).
//
// All functions are pure and operate on float64 slices without modifying
// them.
package robust
