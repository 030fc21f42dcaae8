// Package sparse fits L1-regularized least squares (the Lasso) without an
// intercept by cyclic coordinate descent:
//
//	minimize ||y - D·β||² + penalty·||β||₁
//
// [WithMeanLoss] switches to the scaling used by scikit-learn,
// (1/(2n))·||y - D·β||² + penalty·||β||₁, so penalties from analyses done
// with that library carry over unchanged.
//
// A [Coder] caches the columns and squared norms of one design matrix and
// may be shared by concurrent Fit calls.
package sparse
