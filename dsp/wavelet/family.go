package wavelet

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"sync"

	"github.com/cwbudde/algo-ephys/dsp/conv"
)

// ErrUnknownFamily is returned by [Lookup] for unregistered family names.
var ErrUnknownFamily = errors.New("wavelet: unknown family")

// Wavelet is an orthogonal wavelet with its four filter-bank kernels.
// A Wavelet is immutable and safe for concurrent use.
type Wavelet struct {
	name  string
	order int

	decLo *conv.Kernel
	decHi *conv.Kernel
	recLo *conv.Kernel
	recHi *conv.Kernel
}

var (
	registryMu sync.Mutex
	registry   = map[string]*Wavelet{}
)

// Lookup returns the wavelet registered under name ("haar", "db1".."db38").
// Names are case-insensitive.
func Lookup(name string) (*Wavelet, error) {
	key := strings.ToLower(strings.TrimSpace(name))

	order, ok := daubechiesOrder(key)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownFamily, name)
	}

	registryMu.Lock()
	defer registryMu.Unlock()

	if w, ok := registry[key]; ok {
		return w, nil
	}

	w, err := newDaubechies(key, order)
	if err != nil {
		return nil, err
	}
	registry[key] = w
	return w, nil
}

// Families lists every registered family name.
func Families() []string {
	names := make([]string, 0, len(daubechies)+1)
	names = append(names, "haar")
	for n := 1; n <= len(daubechies); n++ {
		names = append(names, "db"+strconv.Itoa(n))
	}
	return names
}

func daubechiesOrder(key string) (int, bool) {
	if key == "haar" {
		return 1, true
	}
	digits, ok := strings.CutPrefix(key, "db")
	if !ok {
		return 0, false
	}
	n, err := strconv.Atoi(digits)
	if err != nil || n < 1 || n > len(daubechies) || strconv.Itoa(n) != digits {
		return 0, false
	}
	return n, true
}

// newDaubechies derives the quadrature mirror filters from the scaling filter:
//
//	rec_lo[k] = h[k]
//	dec_lo[k] = h[F-1-k]
//	rec_hi[k] = (-1)^k h[F-1-k]
//	dec_hi[k] = rec_hi[F-1-k]
func newDaubechies(name string, order int) (*Wavelet, error) {
	h := daubechies[order-1]
	f := len(h)

	decLo := make([]float64, f)
	decHi := make([]float64, f)
	recHi := make([]float64, f)
	for k := range f {
		decLo[k] = h[f-1-k]
		recHi[k] = h[f-1-k]
		if k%2 == 1 {
			recHi[k] = -recHi[k]
		}
	}
	for k := range f {
		decHi[k] = recHi[f-1-k]
	}

	w := &Wavelet{name: name, order: order}

	var err error
	if w.decLo, err = conv.NewKernel(decLo); err != nil {
		return nil, err
	}
	if w.decHi, err = conv.NewKernel(decHi); err != nil {
		return nil, err
	}
	if w.recLo, err = conv.NewKernel(h); err != nil {
		return nil, err
	}
	if w.recHi, err = conv.NewKernel(recHi); err != nil {
		return nil, err
	}
	return w, nil
}

// Name returns the registered family name.
func (w *Wavelet) Name() string {
	return w.name
}

// Order returns the number of vanishing moments.
func (w *Wavelet) Order() int {
	return w.order
}

// Len returns the filter length F.
func (w *Wavelet) Len() int {
	return w.recLo.Len()
}

// Filters returns copies of the decomposition and reconstruction filters.
func (w *Wavelet) Filters() (decLo, decHi, recLo, recHi []float64) {
	return w.decLo.Taps(), w.decHi.Taps(), w.recLo.Taps(), w.recHi.Taps()
}
