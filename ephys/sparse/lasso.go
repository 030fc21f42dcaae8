package sparse

import (
	"errors"
	"math"

	"github.com/cwbudde/algo-vecmath"
	"gonum.org/v1/gonum/mat"

	"github.com/cwbudde/algo-ephys/dsp/core"
	"github.com/cwbudde/algo-ephys/ephys"
)

var (
	// ErrDimensionMismatch is returned when the observation or warm-start
	// length does not match the design matrix.
	ErrDimensionMismatch = errors.New("sparse: dimension mismatch")
	// ErrInvalidPenalty is returned for a negative or non-finite penalty.
	ErrInvalidPenalty = errors.New("sparse: penalty must be finite and non-negative")
	// ErrNonFinite is returned when the observations contain NaN or Inf.
	ErrNonFinite = errors.New("sparse: non-finite observation")
	// ErrEmptyDesign is returned for a design matrix without rows or columns.
	ErrEmptyDesign = errors.New("sparse: empty design matrix")
)

const op = "sparse fit"

// Result holds a fitted coefficient vector and the fitted values D·β.
type Result struct {
	Coefficients   []float64
	Reconstruction []float64
	Iterations     int
	Converged      bool
}

// NonZero returns the number of coefficients that are not exactly zero.
func (r Result) NonZero() int {
	var n int

	for _, b := range r.Coefficients {
		if b != 0 {
			n++
		}
	}

	return n
}

// Coder fits many observation vectors against one design matrix.
type Coder struct {
	design  mat.Matrix
	rows    int
	columns [][]float64
	norms   []float64 // squared column norms
}

// NewCoder extracts the columns of d and their squared norms.
func NewCoder(d mat.Matrix) (*Coder, error) {
	rows, cols := d.Dims()
	if rows == 0 || cols == 0 {
		return nil, ephys.Errorf(ephys.KindDimension, ephys.TraceID{}, op, "%w: %dx%d", ErrEmptyDesign, rows, cols)
	}

	c := &Coder{
		design:  d,
		rows:    rows,
		columns: make([][]float64, cols),
		norms:   make([]float64, cols),
	}

	for j := range cols {
		col := mat.Col(nil, j, d)
		c.columns[j] = col
		c.norms[j] = vecmath.DotProduct(col, col)
	}

	return c, nil
}

// Dims returns the design dimensions.
func (c *Coder) Dims() (rows, cols int) { return c.rows, len(c.columns) }

// Fit is shorthand for NewCoder(d) followed by Coder.Fit.
func Fit(d mat.Matrix, values []float64, penalty float64, opts ...Option) (Result, error) {
	c, err := NewCoder(d)
	if err != nil {
		return Result{}, err
	}

	return c.Fit(values, penalty, opts...)
}

// Fit minimizes the penalized loss for values. Coefficients whose
// soft-thresholded update is zero are exactly zero.
func (c *Coder) Fit(values []float64, penalty float64, opts ...Option) (Result, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	cols := len(c.columns)

	if len(values) != c.rows {
		return Result{}, ephys.Errorf(ephys.KindDimension, ephys.TraceID{}, op,
			"%w: %d values for %d rows", ErrDimensionMismatch, len(values), c.rows)
	}

	if math.IsNaN(penalty) || math.IsInf(penalty, 0) || penalty < 0 {
		return Result{}, ephys.Errorf(ephys.KindConfiguration, ephys.TraceID{}, op,
			"%w: %g", ErrInvalidPenalty, penalty)
	}

	if !core.AllFinite(values) {
		return Result{}, ephys.Errorf(ephys.KindDimension, ephys.TraceID{}, op, "%w", ErrNonFinite)
	}

	beta := make([]float64, cols)
	if cfg.warm != nil {
		if len(cfg.warm) != cols {
			return Result{}, ephys.Errorf(ephys.KindDimension, ephys.TraceID{}, op,
				"%w: warm start has %d coefficients for %d columns", ErrDimensionMismatch, len(cfg.warm), cols)
		}

		copy(beta, cfg.warm)
	}

	// threshold on d_jᵀr + ||d_j||²β_j
	threshold := penalty / 2
	if cfg.meanLoss {
		threshold = float64(c.rows) * penalty
	}

	residual := append([]float64(nil), values...)
	scratch := make([]float64, c.rows)

	for j, b := range beta {
		if b != 0 {
			vecmath.ScaleBlock(scratch, c.columns[j], -b)
			vecmath.AddBlockInPlace(residual, scratch)
		}
	}

	var (
		iter      int
		converged bool
	)

	for iter < cfg.maxIter {
		iter++

		var maxDelta, maxBeta float64

		for j, col := range c.columns {
			norm := c.norms[j]
			if norm == 0 {
				beta[j] = 0
				continue
			}

			old := beta[j]
			rho := vecmath.DotProduct(col, residual) + norm*old
			next := softThreshold(rho, threshold) / norm

			if next != old {
				vecmath.ScaleBlock(scratch, col, old-next)
				vecmath.AddBlockInPlace(residual, scratch)
				beta[j] = next
			}

			maxDelta = math.Max(maxDelta, math.Abs(next-old))
			maxBeta = math.Max(maxBeta, math.Abs(next))
		}

		if maxBeta == 0 || maxDelta/maxBeta < cfg.tolerance {
			converged = true
			break
		}
	}

	return Result{
		Coefficients:   beta,
		Reconstruction: c.Reconstruct(beta),
		Iterations:     iter,
		Converged:      converged,
	}, nil
}

// Reconstruct returns D·beta.
func (c *Coder) Reconstruct(beta []float64) []float64 {
	var out mat.VecDense

	out.MulVec(c.design, mat.NewVecDense(len(beta), append([]float64(nil), beta...)))

	return mat.Col(nil, 0, &out)
}

// softThreshold returns sign(x)·max(|x|-t, 0).
func softThreshold(x, t float64) float64 {
	switch {
	case x > t:
		return x - t
	case x < -t:
		return x + t
	default:
		return 0
	}
}
