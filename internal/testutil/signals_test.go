package testutil

import (
	"math"
	"testing"
)

func TestDeterministicNoise(t *testing.T) {
	a := DeterministicNoise(42, 1.0, 64)
	b := DeterministicNoise(42, 1.0, 64)
	if len(a) != 64 {
		t.Fatalf("len = %d, want 64", len(a))
	}
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("noise not deterministic at index %d", i)
		}
		if a[i] < -1 || a[i] > 1 {
			t.Fatalf("a[%d] = %v out of range", i, a[i])
		}
	}
}

func TestDeterministicNoiseDifferentSeeds(t *testing.T) {
	a := DeterministicNoise(1, 1.0, 16)
	b := DeterministicNoise(2, 1.0, 16)
	for i := range a {
		if a[i] != b[i] {
			return
		}
	}
	t.Fatal("different seeds produced identical noise")
}

func TestImpulse(t *testing.T) {
	imp := Impulse(8, 3)
	for i, v := range imp {
		want := 0.0
		if i == 3 {
			want = 1
		}
		if v != want {
			t.Fatalf("imp[%d] = %v, want %v", i, v, want)
		}
	}
	if out := Impulse(4, 9); out[0] != 0 || len(out) != 4 {
		t.Fatalf("out-of-range impulse = %v", out)
	}
}

func TestRange(t *testing.T) {
	r := Range(-2, 0.5, 5)
	want := []float64{-2, -1.5, -1, -0.5, 0}
	RequireSliceNearlyEqual(t, r, want, 0)
}

func TestEvokedResponse(t *testing.T) {
	times := Range(-10, 1, 30)
	v := EvokedResponse(times, 0, 1)
	RequireFinite(t, v)
	if math.Abs(v[0]) > 0.01 {
		t.Fatalf("pre-onset value %v should be drift only", v[0])
	}
	if math.Abs(v[13]) < 0.1 {
		t.Fatalf("post-onset value %v should carry the response", v[13])
	}
}
