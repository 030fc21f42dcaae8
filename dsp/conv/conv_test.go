package conv

import (
	"errors"
	"math"
	"sync"
	"testing"

	"github.com/cwbudde/algo-ephys/internal/testutil"
)

func TestDirect(t *testing.T) {
	tests := []struct {
		name string
		a, b []float64
		want []float64
	}{
		{
			name: "box",
			a:    []float64{1, 2, 3},
			b:    []float64{1, 1, 1},
			want: []float64{1, 3, 6, 5, 3},
		},
		{
			name: "identity",
			a:    []float64{1, 2, 3, 4, 5},
			b:    []float64{1},
			want: []float64{1, 2, 3, 4, 5},
		},
		{
			name: "delay",
			a:    []float64{1, 2, 3, 4, 5},
			b:    []float64{0, 0, 1},
			want: []float64{0, 0, 1, 2, 3, 4, 5},
		},
		{
			name: "haar pair on sparse input",
			a:    []float64{0, 0, 1, 0},
			b:    []float64{0.5, 0.5, -0.5, -0.5},
			want: []float64{0, 0, 0.5, 0.5, -0.5, -0.5, 0},
		},
		{
			name: "vector path",
			a:    []float64{2, -1},
			b:    []float64{1, 2, 3, 4, 5},
			want: []float64{2, 3, 4, 5, 6, -5},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Direct(tt.a, tt.b)
			if err != nil {
				t.Fatalf("Direct: %v", err)
			}
			testutil.RequireSliceNearlyEqual(t, got, tt.want, 1e-12)
		})
	}
}

func TestDirectErrors(t *testing.T) {
	if _, err := Direct(nil, []float64{1}); !errors.Is(err, ErrEmptyInput) {
		t.Errorf("expected ErrEmptyInput, got %v", err)
	}
	if _, err := Direct([]float64{1}, nil); !errors.Is(err, ErrEmptyKernel) {
		t.Errorf("expected ErrEmptyKernel, got %v", err)
	}
}

func TestKernelDirect(t *testing.T) {
	taps := []float64{0.5, 0.5}
	k, err := NewKernel(taps)
	if err != nil {
		t.Fatalf("NewKernel: %v", err)
	}
	if k.UsesFFT() {
		t.Fatal("two-tap kernel should use direct convolution")
	}

	taps[0] = 100 // NewKernel must copy
	got, err := k.Apply([]float64{2, 4})
	if err != nil {
		t.Fatalf("Apply: %v", err)
	}
	testutil.RequireBitIdentical(t, got, []float64{1, 3, 2})

	if k.Len() != 2 || k.Taps()[0] != 0.5 {
		t.Fatalf("unexpected taps %v", k.Taps())
	}
}

func TestKernelFFTMatchesDirect(t *testing.T) {
	for _, n := range []int{1, 37, 700, 2048} {
		taps := makeTestKernel(directThreshold + 12)
		k, err := NewKernel(taps)
		if err != nil {
			t.Fatalf("NewKernel: %v", err)
		}
		if !k.UsesFFT() {
			t.Fatal("long kernel should use overlap-add")
		}

		signal := makeTestSignal(n)
		want, _ := Direct(signal, taps)
		got, err := k.Apply(signal)
		if err != nil {
			t.Fatalf("n=%d: Apply: %v", n, err)
		}
		testutil.RequireSliceNearlyEqual(t, got, want, 1e-9)
	}
}

func TestKernelFFTImpulse(t *testing.T) {
	taps := makeTestKernel(76)
	k, err := NewKernel(taps)
	if err != nil {
		t.Fatalf("NewKernel: %v", err)
	}

	// A single non-zero sample far into the signal lands in one segment;
	// all other segments are skipped.
	signal := testutil.Impulse(1500, 1203)
	got, err := k.Apply(signal)
	if err != nil {
		t.Fatalf("Apply: %v", err)
	}

	for i, v := range got {
		want := 0.0
		if j := i - 1203; j >= 0 && j < len(taps) {
			want = taps[j]
		}
		if math.Abs(v-want) > 1e-12 {
			t.Fatalf("index %d: got %v, want %v", i, v, want)
		}
	}
}

func TestKernelConcurrentApply(t *testing.T) {
	taps := makeTestKernel(directThreshold + 1)
	k, err := NewKernel(taps)
	if err != nil {
		t.Fatalf("NewKernel: %v", err)
	}
	signal := makeTestSignal(900)
	want, _ := Direct(signal, taps)

	var wg sync.WaitGroup
	errs := make([]error, 8)
	for g := range errs {
		wg.Add(1)
		go func(g int) {
			defer wg.Done()
			got, err := k.Apply(signal)
			if err != nil {
				errs[g] = err
				return
			}
			if d, _ := testutil.MaxAbsDiff(got, want); d > 1e-9 {
				errs[g] = errors.New("fft kernel deviates from direct convolution")
			}
		}(g)
	}
	wg.Wait()

	for g, err := range errs {
		if err != nil {
			t.Fatalf("goroutine %d: %v", g, err)
		}
	}
}

func TestKernelErrors(t *testing.T) {
	if _, err := NewKernel(nil); !errors.Is(err, ErrEmptyKernel) {
		t.Fatalf("expected ErrEmptyKernel, got %v", err)
	}

	k, _ := NewKernel([]float64{1})
	if _, err := k.Apply(nil); !errors.Is(err, ErrEmptyInput) {
		t.Fatalf("expected ErrEmptyInput, got %v", err)
	}
}

func TestNextPowerOf2(t *testing.T) {
	cases := map[int]int{0: 1, 1: 1, 2: 2, 3: 4, 65: 128, 152: 256, 256: 256}
	for in, want := range cases {
		if got := nextPowerOf2(in); got != want {
			t.Errorf("nextPowerOf2(%d) = %d, want %d", in, got, want)
		}
	}
}

func makeTestSignal(n int) []float64 {
	signal := make([]float64, n)
	for i := range signal {
		signal[i] = math.Sin(2*math.Pi*float64(i)/100) + 0.5*math.Cos(2*math.Pi*float64(i)/30)
	}
	return signal
}

// makeTestKernel builds a Hann-windowed sinc lowpass.
func makeTestKernel(n int) []float64 {
	kernel := make([]float64, n)
	center := float64(n-1) / 2
	for i := range kernel {
		x := float64(i) - center
		if x == 0 {
			kernel[i] = 1.0
		} else {
			kernel[i] = math.Sin(math.Pi*x/4) / (math.Pi * x / 4)
		}
		kernel[i] *= 0.5 * (1 - math.Cos(2*math.Pi*float64(i)/float64(n-1)))
	}
	return kernel
}
