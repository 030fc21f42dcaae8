package wavelet

import "fmt"

// BandKind distinguishes approximation and detail bands.
type BandKind int

const (
	// Approximation is the coarse (scaling) band.
	Approximation BandKind = iota
	// Detail is a wavelet band.
	Detail
)

func (k BandKind) String() string {
	if k == Approximation {
		return "approximation"
	}
	return "detail"
}

// Band describes one coefficient array of a multilevel decomposition.
type Band struct {
	Kind  BandKind
	Level int // 1 is the finest detail level; 0 for an undecomposed signal
	Len   int
}

// Coeffs holds a multilevel decomposition ordered [cA_L, cD_L, ..., cD_1].
type Coeffs [][]float64

// Len returns the total number of coefficient positions.
func (c Coeffs) Len() int {
	total := 0
	for _, band := range c {
		total += len(band)
	}
	return total
}

// Clone returns a deep copy.
func (c Coeffs) Clone() Coeffs {
	out := make(Coeffs, len(c))
	for i, band := range c {
		out[i] = append([]float64(nil), band...)
	}
	return out
}

// Layout returns one Band per array in decomposition order.
func (c Coeffs) Layout() []Band {
	bands := make([]Band, len(c))
	level := len(c) - 1
	for i, band := range c {
		switch {
		case i == 0:
			bands[i] = Band{Kind: Approximation, Level: level, Len: len(band)}
		default:
			bands[i] = Band{Kind: Detail, Level: level - i + 1, Len: len(band)}
		}
	}
	return bands
}

// Decompose performs a multilevel forward transform. A negative level
// selects [Wavelet.MaxLevel]; level 0 returns a copy of x as the only band.
func (w *Wavelet) Decompose(x []float64, level int) (Coeffs, error) {
	if len(x) == 0 {
		return nil, ErrEmptyInput
	}

	maxLevel := w.MaxLevel(len(x))
	if level < 0 {
		level = maxLevel
	}
	if level > maxLevel {
		return nil, fmt.Errorf("%w: %d exceeds maximum %d for %d samples with %s",
			ErrInvalidLevel, level, maxLevel, len(x), w.name)
	}

	coeffs := make(Coeffs, level+1)
	a := append([]float64(nil), x...)
	for l := 0; l < level; l++ {
		cA, cD, err := w.DWT(a)
		if err != nil {
			return nil, err
		}
		coeffs[level-l] = cD
		a = cA
	}
	coeffs[0] = a
	return coeffs, nil
}

// Reconstruct performs a multilevel inverse transform. When an
// approximation is one sample longer than the next detail band, its last
// sample is dropped before synthesis, mirroring odd-length analysis.
func (w *Wavelet) Reconstruct(c Coeffs) ([]float64, error) {
	if len(c) == 0 || len(c[0]) == 0 {
		return nil, ErrEmptyInput
	}
	if len(c) == 1 {
		return append([]float64(nil), c[0]...), nil
	}

	a := c[0]
	for i, d := range c[1:] {
		switch {
		case len(a) == len(d)+1:
			a = a[:len(d)]
		case len(a) != len(d):
			return nil, fmt.Errorf("%w: band %d has %d coefficients, approximation has %d",
				ErrShapeMismatch, i+1, len(d), len(a))
		}

		next, err := w.IDWT(a, d)
		if err != nil {
			return nil, err
		}
		a = next
	}
	return a, nil
}
