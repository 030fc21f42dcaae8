package dictionary

import (
	"gonum.org/v1/gonum/mat"

	"github.com/cwbudde/algo-ephys/dsp/wavelet"
)

// Key identifies a dictionary by family, resolution and query times.
type Key struct {
	Family     string
	Resolution int
	Signature  uint64 // xxhash64 of the query times
}

// Scale locates one coefficient band within the dictionary columns.
type Scale struct {
	Kind   wavelet.BandKind
	Level  int
	Offset int // first column of the band
	Len    int
}

// Dictionary is an immutable basis matrix. It implements mat.Matrix and is
// safe for concurrent reads.
type Dictionary struct {
	key    Key
	times  []float64
	scales []Scale
	data   *mat.Dense
}

var _ mat.Matrix = (*Dictionary)(nil)

// Dims returns (number of query times, number of basis functions).
func (d *Dictionary) Dims() (r, c int) { return d.data.Dims() }

// At returns the value of basis function j at query time i.
func (d *Dictionary) At(i, j int) float64 { return d.data.At(i, j) }

// T returns the transpose without copying.
func (d *Dictionary) T() mat.Matrix { return mat.Transpose{Matrix: d} }

// Rows returns the number of query times.
func (d *Dictionary) Rows() int {
	r, _ := d.data.Dims()
	return r
}

// Cols returns the number of basis functions.
func (d *Dictionary) Cols() int {
	_, c := d.data.Dims()
	return c
}

// Key returns the dictionary's cache key.
func (d *Dictionary) Key() Key { return d.key }

// Family returns the canonical wavelet family name.
func (d *Dictionary) Family() string { return d.key.Family }

// Resolution returns the transform length R.
func (d *Dictionary) Resolution() int { return d.key.Resolution }

// Times returns a copy of the query times.
func (d *Dictionary) Times() []float64 {
	return append([]float64(nil), d.times...)
}

// Scales returns the column layout, coarse to fine.
func (d *Dictionary) Scales() []Scale {
	return append([]Scale(nil), d.scales...)
}

// Locate maps column j to its band and position within the band.
func (d *Dictionary) Locate(j int) (Scale, int, bool) {
	for _, s := range d.scales {
		if j >= s.Offset && j < s.Offset+s.Len {
			return s, j - s.Offset, true
		}
	}

	return Scale{}, 0, false
}

// Column returns a copy of basis function j.
func (d *Dictionary) Column(j int) []float64 {
	return mat.Col(nil, j, d.data)
}

func (d *Dictionary) sameTimes(times []float64) bool {
	if len(times) != len(d.times) {
		return false
	}

	for i, t := range times {
		if t != d.times[i] {
			return false
		}
	}

	return true
}
