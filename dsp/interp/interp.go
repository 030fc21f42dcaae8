package interp

import (
	"errors"
	"fmt"
	"math"
	"sort"
)

var (
	// ErrLengthMismatch is returned when x and y differ in length.
	ErrLengthMismatch = errors.New("interp: x and y length mismatch")
	// ErrTooFewPoints is returned when fewer than two knots are supplied.
	ErrTooFewPoints = errors.New("interp: at least two points required")
	// ErrNotIncreasing is returned when knot positions are not strictly increasing.
	ErrNotIncreasing = errors.New("interp: x must be strictly increasing")
	// ErrOutsideSupport is returned for query points outside [x[0], x[n-1]].
	ErrOutsideSupport = errors.New("interp: query outside support")
)

// Linear2 interpolates between x0 and x1 at frac in [0,1].
func Linear2(frac, x0, x1 float64) float64 {
	return (1-frac)*x0 + frac*x1
}

// Split returns floor(pos) and pos - floor(pos).
func Split(pos float64) (int, float64) {
	f := math.Floor(pos)
	return int(f), pos - f
}

// Piecewise holds strictly increasing knots for piecewise-linear evaluation.
type Piecewise struct {
	x []float64
	y []float64
}

// NewPiecewise validates and copies the knots.
func NewPiecewise(x, y []float64) (*Piecewise, error) {
	if len(x) != len(y) {
		return nil, fmt.Errorf("%w: %d != %d", ErrLengthMismatch, len(x), len(y))
	}

	if len(x) < 2 {
		return nil, ErrTooFewPoints
	}

	for i := 1; i < len(x); i++ {
		if !(x[i] > x[i-1]) {
			return nil, fmt.Errorf("%w: x[%d]=%g after %g", ErrNotIncreasing, i, x[i], x[i-1])
		}
	}

	return &Piecewise{
		x: append([]float64(nil), x...),
		y: append([]float64(nil), y...),
	}, nil
}

// Support returns the first and last knot position.
func (p *Piecewise) Support() (float64, float64) {
	return p.x[0], p.x[len(p.x)-1]
}

// At evaluates the interpolant at q. Knot positions return the knot value
// exactly.
func (p *Piecewise) At(q float64) (float64, error) {
	lo, hi := p.Support()
	if !(q >= lo && q <= hi) {
		return 0, fmt.Errorf("%w: %g not in [%g, %g]", ErrOutsideSupport, q, lo, hi)
	}

	// first knot >= q
	i := sort.SearchFloat64s(p.x, q)
	if i < len(p.x) && p.x[i] == q {
		return p.y[i], nil
	}

	x0, x1 := p.x[i-1], p.x[i]

	return Linear2((q-x0)/(x1-x0), p.y[i-1], p.y[i]), nil
}

// AtHold evaluates the interpolant at q, holding the end values outside
// the support. Only NaN is rejected.
func (p *Piecewise) AtHold(q float64) (float64, error) {
	lo, hi := p.Support()

	switch {
	case math.IsNaN(q):
		return 0, fmt.Errorf("%w: NaN", ErrOutsideSupport)
	case q < lo:
		return p.y[0], nil
	case q > hi:
		return p.y[len(p.y)-1], nil
	}

	return p.At(q)
}

// Eval evaluates the interpolant at every query point.
func (p *Piecewise) Eval(q []float64) ([]float64, error) {
	return p.eval(q, p.At)
}

// EvalHold is Eval with end values held outside the support.
func (p *Piecewise) EvalHold(q []float64) ([]float64, error) {
	return p.eval(q, p.AtHold)
}

func (p *Piecewise) eval(q []float64, at func(float64) (float64, error)) ([]float64, error) {
	out := make([]float64, len(q))

	for i, v := range q {
		y, err := at(v)
		if err != nil {
			return nil, err
		}

		out[i] = y
	}

	return out, nil
}
