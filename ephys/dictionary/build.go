package dictionary

import (
	"encoding/binary"
	"errors"
	"fmt"
	"math"

	"github.com/cespare/xxhash/v2"
	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/mat"

	"github.com/cwbudde/algo-ephys/dsp/core"
	"github.com/cwbudde/algo-ephys/dsp/interp"
	"github.com/cwbudde/algo-ephys/dsp/wavelet"
	"github.com/cwbudde/algo-ephys/ephys"
)

var (
	// ErrUnsupportedResolution is returned for a resolution that is not a
	// power of two of at least 2.
	ErrUnsupportedResolution = errors.New("dictionary: resolution must be a power of two >= 2")
	// ErrDegenerateTimes is returned when the query times do not span a
	// positive, finite interval.
	ErrDegenerateTimes = errors.New("dictionary: query times must contain at least two distinct finite values")
)

// Signature hashes the IEEE-754 bits of times, prefixed by their count.
func Signature(times []float64) uint64 {
	h := xxhash.New()

	var buf [8]byte

	binary.LittleEndian.PutUint64(buf[:], uint64(len(times)))
	_, _ = h.Write(buf[:])

	for _, t := range times {
		binary.LittleEndian.PutUint64(buf[:], math.Float64bits(t))
		_, _ = h.Write(buf[:])
	}

	return h.Sum64()
}

// Build evaluates every basis function of the named wavelet family at
// resolution R on the query times. The result is bit-identical for
// identical inputs regardless of the worker count.
func Build(times []float64, family string, resolution int, opts ...core.ExecOption) (*Dictionary, error) {
	const op = "dictionary"

	cfg := core.ApplyExecOptions(opts...)

	w, err := wavelet.Lookup(family)
	if err != nil {
		return nil, ephys.Wrap(ephys.KindConfiguration, ephys.TraceID{}, op, err)
	}

	if resolution < 2 || !core.IsPowerOfTwo(resolution) {
		return nil, ephys.Errorf(ephys.KindConfiguration, ephys.TraceID{}, op,
			"%w: %d", ErrUnsupportedResolution, resolution)
	}

	lo, hi, err := span(times)
	if err != nil {
		return nil, ephys.Wrap(ephys.KindConfiguration, ephys.TraceID{}, op, err)
	}

	floors, fracs := stretch(times, lo, hi, resolution)

	coeffs, err := w.Decompose(make([]float64, resolution), -1)
	if err != nil {
		return nil, ephys.Wrap(ephys.KindConfiguration, ephys.TraceID{}, op, err)
	}

	positions := columnPositions(coeffs)
	rows, cols := len(times), len(positions)
	data := make([]float64, rows*cols)

	build := func(from, to int) error {
		scratch := coeffs.Clone()
		for j := from; j < to; j++ {
			p := positions[j]

			scratch[p.band][p.index] = 1
			r, err := w.Reconstruct(scratch)
			scratch[p.band][p.index] = 0

			if err != nil {
				return err
			}

			if len(r) < resolution {
				return fmt.Errorf("%w: reconstruction has %d samples, want %d",
					wavelet.ErrShapeMismatch, len(r), resolution)
			}

			r = core.AppendTail(r[:resolution], 2)
			for i := range rows {
				k := floors[i]
				data[i*cols+j] = interp.Linear2(fracs[i], r[k], r[k+1])
			}
		}

		return nil
	}

	if err := forChunks(cols, cfg.Workers, build); err != nil {
		return nil, ephys.Wrap(ephys.KindConfiguration, ephys.TraceID{}, op, err)
	}

	return &Dictionary{
		key: Key{
			Family:     w.Name(),
			Resolution: resolution,
			Signature:  Signature(times),
		},
		times:  append([]float64(nil), times...),
		scales: scalesOf(coeffs),
		data:   mat.NewDense(rows, cols, data),
	}, nil
}

// span returns the minimum and maximum of times.
func span(times []float64) (float64, float64, error) {
	if len(times) < 2 {
		return 0, 0, fmt.Errorf("%w: %d times", ErrDegenerateTimes, len(times))
	}

	lo, hi := math.Inf(1), math.Inf(-1)

	for i, t := range times {
		if math.IsNaN(t) || math.IsInf(t, 0) {
			return 0, 0, fmt.Errorf("%w: time %d is %g", ErrDegenerateTimes, i, t)
		}

		lo = math.Min(lo, t)
		hi = math.Max(hi, t)
	}

	if !(hi > lo) || math.IsInf(hi-lo, 0) {
		return 0, 0, fmt.Errorf("%w: span [%g, %g]", ErrDegenerateTimes, lo, hi)
	}

	return lo, hi, nil
}

// stretch maps times onto [0, R] and splits each position into an integer
// index and a fraction.
func stretch(times []float64, lo, hi float64, resolution int) ([]int, []float64) {
	floors := make([]int, len(times))
	fracs := make([]float64, len(times))
	width := hi - lo
	r := float64(resolution)

	for i, t := range times {
		floors[i], fracs[i] = interp.Split((t - lo) / width * r)
	}

	return floors, fracs
}

type position struct {
	band  int
	index int
}

func columnPositions(c wavelet.Coeffs) []position {
	out := make([]position, 0, c.Len())

	for b, band := range c {
		for i := range band {
			out = append(out, position{band: b, index: i})
		}
	}

	return out
}

func scalesOf(c wavelet.Coeffs) []Scale {
	layout := c.Layout()
	out := make([]Scale, len(layout))

	var offset int

	for i, b := range layout {
		out[i] = Scale{Kind: b.Kind, Level: b.Level, Offset: offset, Len: b.Len}
		offset += b.Len
	}

	return out
}

// forChunks splits [0, n) into contiguous ranges and runs fn on up to
// workers of them concurrently.
func forChunks(n, workers int, fn func(from, to int) error) error {
	if workers <= 1 || n < 2 {
		return fn(0, n)
	}

	workers = min(workers, n)
	size := (n + workers - 1) / workers

	var g errgroup.Group

	g.SetLimit(workers)

	for from := 0; from < n; from += size {
		to := min(from+size, n)
		g.Go(func() error { return fn(from, to) })
	}

	return g.Wait()
}
