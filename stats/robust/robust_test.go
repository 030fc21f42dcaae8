package robust

import (
	"errors"
	"math"
	"testing"

	"github.com/cwbudde/algo-ephys/internal/testutil"
)

const tolerance = 1e-12

func almostEqual(a, b, tol float64) bool {
	return math.Abs(a-b) <= tol
}

func TestMean(t *testing.T) {
	tests := []struct {
		name string
		in   []float64
		want float64
	}{
		{"empty", nil, 0},
		{"single", []float64{3}, 3},
		{"symmetric", []float64{-2, -1, 0, 1, 2}, 0},
		{"offset", []float64{1, 2, 3, 4}, 2.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Mean(tt.in); !almostEqual(got, tt.want, tolerance) {
				t.Fatalf("Mean(%v) = %g, want %g", tt.in, got, tt.want)
			}
		})
	}
}

func TestMeanCompensated(t *testing.T) {
	// 1e8 followed by many small values loses precision with naive summation.
	x := make([]float64, 10001)
	x[0] = 1e8
	for i := 1; i < len(x); i++ {
		x[i] = 1e-8
	}

	want := (1e8 + 1e-4) / float64(len(x))
	if got := Mean(x); !almostEqual(got, want, 1e-9) {
		t.Fatalf("Mean = %.17g, want %.17g", got, want)
	}
}

func TestMedian(t *testing.T) {
	tests := []struct {
		name string
		in   []float64
		want float64
	}{
		{"empty", nil, 0},
		{"odd", []float64{5, 1, 3}, 3},
		{"even", []float64{4, 1, 3, 2}, 2.5},
		{"duplicates", []float64{2, 2, 2, 9}, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Median(tt.in); got != tt.want {
				t.Fatalf("Median(%v) = %g, want %g", tt.in, got, tt.want)
			}
		})
	}
}

func TestMedianDoesNotModifyInput(t *testing.T) {
	x := []float64{3, 1, 2}
	Median(x)

	testutil.RequireBitIdentical(t, x, []float64{3, 1, 2})
}

func TestMAD(t *testing.T) {
	// median 3, |dev| = 2,1,0,1,2 -> mean 1.2
	if got := MAD([]float64{1, 2, 3, 4, 5}); !almostEqual(got, 1.2, tolerance) {
		t.Fatalf("MAD = %g, want 1.2", got)
	}

	// A single spike moves the mean but barely moves the median.
	if got := MAD([]float64{0, 0, 0, 0, 100}); !almostEqual(got, 20, tolerance) {
		t.Fatalf("MAD spike = %g, want 20", got)
	}

	if got := MAD([]float64{7, 7, 7}); got != 0 {
		t.Fatalf("MAD constant = %g, want 0", got)
	}
}

func TestNormalize(t *testing.T) {
	x := []float64{1, 2, 3, 4, 5}

	got, s, err := Normalize(x)
	if err != nil {
		t.Fatalf("Normalize: %v", err)
	}

	if s.Center != 3 || !almostEqual(s.Dispersion, 1.2, tolerance) {
		t.Fatalf("scale = %+v", s)
	}

	want := []float64{-2 / 1.2, -1 / 1.2, 0, 1 / 1.2, 2 / 1.2}
	testutil.RequireSliceNearlyEqual(t, got, want, 1e-12)

	if Mean(got) > 1e-12 || Mean(got) < -1e-12 {
		t.Fatalf("normalized mean = %g, want 0", Mean(got))
	}
}

func TestNormalizeErrors(t *testing.T) {
	tests := []struct {
		name string
		in   []float64
		want error
	}{
		{"empty", nil, ErrEmpty},
		{"constant", []float64{4, 4, 4, 4}, ErrZeroDispersion},
		{"nan", []float64{1, math.NaN(), 2}, ErrNonFinite},
		{"inf", []float64{1, math.Inf(-1)}, ErrNonFinite},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, _, err := Normalize(tt.in)
			if !errors.Is(err, tt.want) {
				t.Fatalf("err = %v, want %v", err, tt.want)
			}

			if out != nil {
				t.Fatalf("out = %v, want nil", out)
			}
		})
	}
}
