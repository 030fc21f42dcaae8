// Package assemble stacks per-trace coefficient vectors into one matrix and
// drops the dictionary columns no trace uses.
package assemble

import (
	"errors"
	"slices"

	"gonum.org/v1/gonum/mat"

	"github.com/cwbudde/algo-ephys/ephys"
)

var (
	// ErrDimensionMismatch is returned when coefficient vectors differ in length.
	ErrDimensionMismatch = errors.New("assemble: coefficient lengths differ")
	// ErrDuplicateRow is returned when two rows share a trace ID.
	ErrDuplicateRow = errors.New("assemble: duplicate trace id")
)

// Row is the coefficient vector of one trace.
type Row struct {
	ID           ephys.TraceID
	Coefficients []float64
}

// Matrix is the stacked coefficient matrix. Rows are ordered by trace ID;
// Columns[k] is the dictionary column that matrix column k came from.
type Matrix struct {
	Rows    []ephys.TraceID
	Columns []int
	Data    *mat.Dense // nil when there are no rows or no surviving columns
}

// Dims returns (traces, kept columns).
func (m *Matrix) Dims() (int, int) {
	return len(m.Rows), len(m.Columns)
}

// Row returns a copy of the coefficients of id restricted to the kept
// columns.
func (m *Matrix) Row(id ephys.TraceID) ([]float64, bool) {
	i, ok := slices.BinarySearchFunc(m.Rows, id, ephys.TraceID.Compare)
	if !ok {
		return nil, false
	}

	if m.Data == nil {
		return []float64{}, true
	}

	return mat.Row(nil, i, m.Data), true
}

// Assemble sorts rows by (file, channel), stacks them and removes columns
// that are exactly zero in every row. The input is not modified.
func Assemble(rows []Row) (*Matrix, error) {
	const op = "assemble"

	if len(rows) == 0 {
		return &Matrix{}, nil
	}

	sorted := slices.Clone(rows)
	slices.SortStableFunc(sorted, func(a, b Row) int { return a.ID.Compare(b.ID) })

	width := len(sorted[0].Coefficients)
	ids := make([]ephys.TraceID, len(sorted))

	for i, r := range sorted {
		if len(r.Coefficients) != width {
			return nil, ephys.Errorf(ephys.KindDimension, r.ID, op,
				"%w: %d coefficients, want %d", ErrDimensionMismatch, len(r.Coefficients), width)
		}

		if i > 0 && r.ID == sorted[i-1].ID {
			return nil, ephys.Errorf(ephys.KindDimension, r.ID, op, "%w", ErrDuplicateRow)
		}

		ids[i] = r.ID
	}

	var keep []int

	for j := range width {
		for _, r := range sorted {
			if r.Coefficients[j] != 0 {
				keep = append(keep, j)
				break
			}
		}
	}

	m := &Matrix{Rows: ids, Columns: keep}
	if len(keep) == 0 {
		m.Columns = []int{}
		return m, nil
	}

	data := make([]float64, len(sorted)*len(keep))
	for i, r := range sorted {
		for k, j := range keep {
			data[i*len(keep)+k] = r.Coefficients[j]
		}
	}

	m.Data = mat.NewDense(len(sorted), len(keep), data)

	return m, nil
}
