package trace

import (
	"errors"
	"math"
	"testing"

	"github.com/cwbudde/algo-ephys/ephys"
	"github.com/cwbudde/algo-ephys/internal/testutil"
	"github.com/cwbudde/algo-ephys/stats/robust"
)

var window = Window{Min: -50, Max: 50, Step: 1}

func TestWindowValidate(t *testing.T) {
	tests := []struct {
		name string
		w    Window
		ok   bool
	}{
		{"valid", window, true},
		{"empty", Window{Min: 1, Max: 1, Step: 1}, false},
		{"reversed", Window{Min: 2, Max: 1, Step: 1}, false},
		{"zero step", Window{Min: 0, Max: 1, Step: 0}, false},
		{"negative step", Window{Min: 0, Max: 1, Step: -1}, false},
		{"nan", Window{Min: math.NaN(), Max: 1, Step: 1}, false},
		{"inf", Window{Min: 0, Max: math.Inf(1), Step: 1}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.w.Validate()
			if tt.ok {
				if err != nil {
					t.Fatalf("Validate: %v", err)
				}

				return
			}

			requireKind(t, err, ephys.KindConfiguration, ErrInvalidWindow)
		})
	}
}

func TestPad(t *testing.T) {
	tr, err := Align(rawTrace(100, 140, 120))
	if err != nil {
		t.Fatalf("Align: %v", err)
	}

	got, err := Pad(tr, window)
	if err != nil {
		t.Fatalf("Pad: %v", err)
	}

	if got.Len() != 101 {
		t.Fatalf("len = %d, want 101", got.Len())
	}

	// uniform unit spacing across leading padding, data and trailing padding
	testutil.RequireSliceNearlyEqual(t, got.Times(), testutil.Range(-50, 1, 101), 0)

	for i, s := range got.Samples {
		padded := s.Time < -20 || s.Time > 20
		if padded && (s.Value != 0 || s.Cut) {
			t.Fatalf("padding sample %d = %v", i, s)
		}
	}

	if got.Meta != tr.Meta {
		t.Fatal("metadata not carried")
	}
}

func TestPadCoveredWindow(t *testing.T) {
	tr := rawTrace(-60, 60, 0)

	got, err := Pad(tr, window)
	if err != nil {
		t.Fatalf("Pad: %v", err)
	}

	testutil.RequireBitIdentical(t, got.Times(), tr.Times())
}

func TestPadNonAlignedStep(t *testing.T) {
	// Leading padding starts at the window minimum and stops before the
	// first sample; trailing padding continues from the last sample.
	tr := Trace{ID: testID, Samples: []Sample{{Time: -0.3, Value: 1, Cut: true}, {Time: 0.4, Value: 2}}}

	got, err := Pad(tr, Window{Min: -1, Max: 1, Step: 0.25})
	if err != nil {
		t.Fatalf("Pad: %v", err)
	}

	want := []float64{-1, -0.75, -0.5, -0.3, 0.4, 0.65, 0.9}
	testutil.RequireSliceNearlyEqual(t, got.Times(), want, 1e-12)
}

func TestNormalize(t *testing.T) {
	tr := Trace{ID: testID, Samples: []Sample{
		{Time: 0, Value: 1}, {Time: 1, Value: 2}, {Time: 2, Value: 3, Cut: true},
		{Time: 3, Value: 4}, {Time: 4, Value: 5},
	}}

	got, err := Normalize(tr)
	if err != nil {
		t.Fatalf("Normalize: %v", err)
	}

	want := []float64{-2 / 1.2, -1 / 1.2, 0, 1 / 1.2, 2 / 1.2}
	testutil.RequireSliceNearlyEqual(t, got.Values(), want, 1e-12)

	if !got.Samples[2].Cut {
		t.Fatal("cut flag lost")
	}

	if math.Abs(robust.Mean(got.Values())) > 1e-12 {
		t.Fatal("not mean-centred")
	}

	if mad := robust.MAD(got.Values()); math.Abs(mad-1) > 1e-12 {
		t.Fatalf("MAD after normalize = %g, want 1", mad)
	}
}

func TestNormalizeErrors(t *testing.T) {
	constant := Trace{ID: testID, Samples: []Sample{{Time: 0, Value: 2}, {Time: 1, Value: 2}}}
	_, err := Normalize(constant)
	requireKind(t, err, ephys.KindStandardization, robust.ErrZeroDispersion)

	nan := Trace{ID: testID, Samples: []Sample{{Time: 0, Value: 1}, {Time: 1, Value: math.Inf(1)}}}
	_, err = Normalize(nan)
	requireKind(t, err, ephys.KindStandardization, ErrNonFinite)

	_, err = Normalize(Trace{ID: testID})
	requireKind(t, err, ephys.KindStandardization, ErrEmptyTrace)
}

func TestTruncate(t *testing.T) {
	tr := Trace{Samples: []Sample{{Time: -50}, {Time: -49.5}, {Time: 0}, {Time: 49.999}, {Time: 50}, {Time: 51}}}

	got := Truncate(tr, window)
	testutil.RequireSliceNearlyEqual(t, got.Times(), []float64{-49.5, 0, 49.999}, 0)
}

func TestStandardize(t *testing.T) {
	raw := rawTrace(100, 140, 120)

	aligned, err := Align(raw)
	if err != nil {
		t.Fatalf("Align: %v", err)
	}

	got, err := Standardize(aligned, window)
	if err != nil {
		t.Fatalf("Standardize: %v", err)
	}

	if got.Len() != 99 {
		t.Fatalf("len = %d, want 99", got.Len())
	}

	first, last := got.Span()
	if first != -49 || last != 49 {
		t.Fatalf("span = [%g, %g], want [-49, 49]", first, last)
	}

	for _, s := range got.Samples {
		if !(s.Time > window.Min && s.Time < window.Max) {
			t.Fatalf("sample outside open window: %v", s)
		}
	}

	testutil.RequireFinite(t, got.Values())

	// statistics were computed on the padded trace, so padding values share
	// one shifted level
	if got.Samples[0].Value != got.Samples[len(got.Samples)-1].Value {
		t.Fatalf("padding levels differ: %g vs %g", got.Samples[0].Value, got.Samples[len(got.Samples)-1].Value)
	}

	if idx := got.CutIndices(); len(idx) != 1 || got.Samples[idx[0]].Time != 0 {
		t.Fatal("cut sample lost")
	}
}

func TestStandardizeErrors(t *testing.T) {
	tr, _ := Align(rawTrace(0, 10, 5))

	_, err := Standardize(tr, Window{Min: 1, Max: 0, Step: 1})
	requireKind(t, err, ephys.KindConfiguration, ErrInvalidWindow)

	if !errors.Is(err, ephys.ErrConfiguration) {
		t.Fatal("not matched by ephys.ErrConfiguration")
	}

	_, err = Standardize(Trace{ID: testID}, window)
	requireKind(t, err, ephys.KindStandardization, ErrEmptyTrace)

	flat := Trace{ID: testID, Samples: []Sample{{Time: -100}, {Time: 100}}}
	_, err = Standardize(flat, window)
	requireKind(t, err, ephys.KindStandardization, robust.ErrZeroDispersion)
}
