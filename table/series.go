// SPDX-License-Identifier: MIT

package table

import (
	"fmt"

	"github.com/openresil/cgekit/labels"
)

// Series is a labeled dense vector: one float64 per row label.
type Series struct {
	rows labels.Set
	data []float64
}

// NewSeries builds a Series over rows with the given data, copied.
// Returns ErrShape when len(data) != rows.Len().
func NewSeries(rows labels.Set, data []float64) (*Series, error) {
	if len(data) != rows.Len() {
		return nil, fmt.Errorf("series %d values over %d labels: %w", len(data), rows.Len(), ErrShape)
	}
	owned := make([]float64, len(data))
	copy(owned, data)
	return &Series{rows: rows, data: owned}, nil
}

// FilledSeries builds a Series with every cell set to v.
func FilledSeries(rows labels.Set, v float64) *Series {
	data := make([]float64, rows.Len())
	for i := range data {
		data[i] = v
	}
	return &Series{rows: rows, data: data}
}

// Rows returns the row label set.
func (s *Series) Rows() labels.Set { return s.rows }

// Len returns the number of cells.
func (s *Series) Len() int { return len(s.data) }

// At returns the value at the given row label.
func (s *Series) At(row string) (float64, error) {
	i, ok := s.rows.Index(row)
	if !ok {
		return 0, fmt.Errorf("row %q: %w", row, ErrUnknownLabel)
	}
	return s.data[i], nil
}

// Set assigns v at the given row label.
func (s *Series) Set(row string, v float64) error {
	i, ok := s.rows.Index(row)
	if !ok {
		return fmt.Errorf("row %q: %w", row, ErrUnknownLabel)
	}
	s.data[i] = v
	return nil
}

// Cell returns the value at position i.
func (s *Series) Cell(i int) float64 { return s.data[i] }

// Sum returns the sum of all cells. Deterministic left-to-right order.
func (s *Series) Sum() float64 {
	total := 0.0
	for _, v := range s.data {
		total += v
	}
	return total
}

// Slice returns a new Series restricted to rows, in the requested order.
// The requested order may differ from the original: Slice reorders, not
// just filters. Returns ErrUnknownLabel if any requested label is absent.
func (s *Series) Slice(rows labels.Set) (*Series, error) {
	data := make([]float64, rows.Len())
	for i := 0; i < rows.Len(); i++ {
		src, ok := s.rows.Index(rows.At(i))
		if !ok {
			return nil, fmt.Errorf("row %q: %w", rows.At(i), ErrUnknownLabel)
		}
		data[i] = s.data[src]
	}
	return &Series{rows: rows, data: data}, nil
}

// AddConst returns a new Series with v added to every cell.
func (s *Series) AddConst(v float64) *Series {
	out := s.Clone()
	for i := range out.data {
		out.data[i] += v
	}
	return out
}

// ScaleConst returns a new Series with every cell multiplied by v.
func (s *Series) ScaleConst(v float64) *Series {
	out := s.Clone()
	for i := range out.data {
		out.data[i] *= v
	}
	return out
}

// Clone returns a deep copy. Complexity: O(n).
func (s *Series) Clone() *Series {
	data := make([]float64, len(s.data))
	copy(data, s.data)
	return &Series{rows: s.rows, data: data}
}

func (*Series) isValue() {}
