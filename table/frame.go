// SPDX-License-Identifier: MIT

package table

import (
	"fmt"

	"github.com/openresil/cgekit/labels"
)

// Frame is a labeled dense matrix over row and column label sets,
// stored row-major in a single flat buffer (cell (i,j) = data[i*w+j]).
type Frame struct {
	rows, cols labels.Set
	data       []float64
}

// NewFrame builds a Frame over rows×cols with the given row-major data,
// copied. Returns ErrShape when len(data) != rows.Len()*cols.Len().
func NewFrame(rows, cols labels.Set, data []float64) (*Frame, error) {
	if len(data) != rows.Len()*cols.Len() {
		return nil, fmt.Errorf("frame %d values over %dx%d labels: %w",
			len(data), rows.Len(), cols.Len(), ErrShape)
	}
	owned := make([]float64, len(data))
	copy(owned, data)
	return &Frame{rows: rows, cols: cols, data: owned}, nil
}

// FilledFrame builds a Frame with every cell set to v.
func FilledFrame(rows, cols labels.Set, v float64) *Frame {
	data := make([]float64, rows.Len()*cols.Len())
	for i := range data {
		data[i] = v
	}
	return &Frame{rows: rows, cols: cols, data: data}
}

// Rows returns the row label set.
func (f *Frame) Rows() labels.Set { return f.rows }

// Cols returns the column label set.
func (f *Frame) Cols() labels.Set { return f.cols }

// Height returns the number of rows.
func (f *Frame) Height() int { return f.rows.Len() }

// Width returns the number of columns.
func (f *Frame) Width() int { return f.cols.Len() }

// At returns the value at (row, col) labels.
func (f *Frame) At(row, col string) (float64, error) {
	i, ok := f.rows.Index(row)
	if !ok {
		return 0, fmt.Errorf("row %q: %w", row, ErrUnknownLabel)
	}
	j, ok := f.cols.Index(col)
	if !ok {
		return 0, fmt.Errorf("col %q: %w", col, ErrUnknownLabel)
	}
	return f.data[i*f.cols.Len()+j], nil
}

// Set assigns v at (row, col) labels.
func (f *Frame) Set(row, col string, v float64) error {
	i, ok := f.rows.Index(row)
	if !ok {
		return fmt.Errorf("row %q: %w", row, ErrUnknownLabel)
	}
	j, ok := f.cols.Index(col)
	if !ok {
		return fmt.Errorf("col %q: %w", col, ErrUnknownLabel)
	}
	f.data[i*f.cols.Len()+j] = v
	return nil
}

// Cell returns the value at positional (i, j).
func (f *Frame) Cell(i, j int) float64 { return f.data[i*f.cols.Len()+j] }

// Row extracts one row as a Series over the column labels.
func (f *Frame) Row(row string) (*Series, error) {
	i, ok := f.rows.Index(row)
	if !ok {
		return nil, fmt.Errorf("row %q: %w", row, ErrUnknownLabel)
	}
	w := f.cols.Len()
	data := make([]float64, w)
	copy(data, f.data[i*w:(i+1)*w])
	return &Series{rows: f.cols, data: data}, nil
}

// Col extracts one column as a Series over the row labels.
func (f *Frame) Col(col string) (*Series, error) {
	j, ok := f.cols.Index(col)
	if !ok {
		return nil, fmt.Errorf("col %q: %w", col, ErrUnknownLabel)
	}
	w := f.cols.Len()
	data := make([]float64, f.rows.Len())
	for i := range data {
		data[i] = f.data[i*w+j]
	}
	return &Series{rows: f.rows, data: data}, nil
}

// Sum0 collapses the row axis: one sum per column, as a Series over the
// column labels — e.g. folding tax rates over government accounts into
// one total per sector. Deterministic i→j order.
func (f *Frame) Sum0() *Series {
	w := f.cols.Len()
	data := make([]float64, w)
	for i := 0; i < f.rows.Len(); i++ {
		for j := 0; j < w; j++ {
			data[j] += f.data[i*w+j]
		}
	}
	return &Series{rows: f.cols, data: data}
}

// Sum1 collapses the column axis: one sum per row, as a Series over the
// row labels.
func (f *Frame) Sum1() *Series {
	w := f.cols.Len()
	data := make([]float64, f.rows.Len())
	for i := range data {
		for j := 0; j < w; j++ {
			data[i] += f.data[i*w+j]
		}
	}
	return &Series{rows: f.rows, data: data}
}

// Slice returns a new Frame restricted to rows×cols, in the requested
// label order (reorder, not just filter). Returns ErrUnknownLabel if any
// requested label is absent.
func (f *Frame) Slice(rows, cols labels.Set) (*Frame, error) {
	w := cols.Len()
	data := make([]float64, rows.Len()*w)
	for i := 0; i < rows.Len(); i++ {
		si, ok := f.rows.Index(rows.At(i))
		if !ok {
			return nil, fmt.Errorf("row %q: %w", rows.At(i), ErrUnknownLabel)
		}
		for j := 0; j < w; j++ {
			sj, ok := f.cols.Index(cols.At(j))
			if !ok {
				return nil, fmt.Errorf("col %q: %w", cols.At(j), ErrUnknownLabel)
			}
			data[i*w+j] = f.data[si*f.cols.Len()+sj]
		}
	}
	return &Frame{rows: rows, cols: cols, data: data}, nil
}

// AddConst returns a new Frame with v added to every cell.
func (f *Frame) AddConst(v float64) *Frame {
	out := f.Clone()
	for i := range out.data {
		out.data[i] += v
	}
	return out
}

// ScaleConst returns a new Frame with every cell multiplied by v.
func (f *Frame) ScaleConst(v float64) *Frame {
	out := f.Clone()
	for i := range out.data {
		out.data[i] *= v
	}
	return out
}

// Clone returns a deep copy. Complexity: O(r*c).
func (f *Frame) Clone() *Frame {
	data := make([]float64, len(f.data))
	copy(data, f.data)
	return &Frame{rows: f.rows, cols: f.cols, data: data}
}

func (*Frame) isValue() {}
