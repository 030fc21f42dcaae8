package robust

import (
	"errors"
	"math"
	"slices"

	"github.com/cwbudde/algo-ephys/dsp/core"
)

var (
	// ErrEmpty is returned when a statistic is requested for no samples.
	ErrEmpty = errors.New("robust: empty input")
	// ErrZeroDispersion is returned by Normalize when the MAD is zero.
	ErrZeroDispersion = errors.New("robust: zero dispersion")
	// ErrNonFinite is returned when the input contains NaN or Inf.
	ErrNonFinite = errors.New("robust: non-finite input")
)

// Mean returns the arithmetic mean using Kahan summation.
// Returns 0 for an empty slice.
func Mean(x []float64) float64 {
	if len(x) == 0 {
		return 0
	}

	var sum, c float64
	for _, v := range x {
		y := v - c
		t := sum + y
		c = (t - sum) - y
		sum = t
	}

	return sum / float64(len(x))
}

// Median returns the middle value of x. For an even count it is the mean of
// the two middle values. Returns 0 for an empty slice.
func Median(x []float64) float64 {
	n := len(x)
	if n == 0 {
		return 0
	}

	s := slices.Clone(x)
	slices.Sort(s)

	if n%2 == 1 {
		return s[n/2]
	}

	return 0.5 * (s[n/2-1] + s[n/2])
}

// MAD returns the mean absolute deviation of x from its median.
// Returns 0 for an empty slice.
func MAD(x []float64) float64 {
	if len(x) == 0 {
		return 0
	}

	med := Median(x)
	dev := make([]float64, len(x))

	for i, v := range x {
		dev[i] = math.Abs(v - med)
	}

	return Mean(dev)
}

// Scale holds the location and dispersion used by Normalize.
type Scale struct {
	Center     float64 // mean
	Dispersion float64 // MAD
}

// Estimate computes the mean and MAD of x.
func Estimate(x []float64) (Scale, error) {
	if len(x) == 0 {
		return Scale{}, ErrEmpty
	}

	if !core.AllFinite(x) {
		return Scale{}, ErrNonFinite
	}

	return Scale{Center: Mean(x), Dispersion: MAD(x)}, nil
}

// Normalize returns (x - mean) / MAD in a new slice along with the scale
// that was applied. A constant input has zero MAD and yields
// ErrZeroDispersion instead of Inf or NaN values.
func Normalize(x []float64) ([]float64, Scale, error) {
	s, err := Estimate(x)
	if err != nil {
		return nil, Scale{}, err
	}

	if s.Dispersion == 0 {
		return nil, s, ErrZeroDispersion
	}

	out := make([]float64, len(x))
	for i, v := range x {
		out[i] = (v - s.Center) / s.Dispersion
	}

	return out, s, nil
}
