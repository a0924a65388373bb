// SPDX-License-Identifier: MIT

package equation

import (
	"fmt"

	"github.com/openresil/cgekit/table"
)

// SetCondition builds the condition mask in place by comparing src
// values — matched cell-by-cell through row/column labels — against
// value using op. Once set, every subsequent Sum/Prod/Write on this
// expression or its copies includes only cells whose comparison held.
//
// src must mirror the expression's labeling: a *table.Frame for a
// two-axis expression, a *table.Series for a single-column one. Every
// labeled cell of the expression must be resolvable in src; a miss is
// reported as table.ErrUnknownLabel.
func (m *MatrixExpr) SetCondition(src table.Value, op CmpOp, value float64) error {
	switch s := src.(type) {
	case *table.Frame:
		if m.rows.IsEmpty() || m.cols.IsEmpty() {
			return fmt.Errorf("frame condition on %dx%d expression: %w",
				m.height, m.width, ErrShapeMismatch)
		}
		mask := make([][]bool, m.height)
		for i := range mask {
			mask[i] = make([]bool, m.width)
			for j := range mask[i] {
				v, err := s.At(m.rows.At(i), m.cols.At(j))
				if err != nil {
					return err
				}
				mask[i][j] = op.compare(v, value)
			}
		}
		m.mask = mask
		return nil

	case *table.Series:
		if m.rows.IsEmpty() || m.width != 1 {
			return fmt.Errorf("series condition on %dx%d expression: %w",
				m.height, m.width, ErrShapeMismatch)
		}
		mask := make([][]bool, m.height)
		for i := range mask {
			v, err := s.At(m.rows.At(i))
			if err != nil {
				return err
			}
			mask[i] = []bool{op.compare(v, value)}
		}
		m.mask = mask
		return nil

	default:
		return fmt.Errorf("scalar condition source: %w", ErrShapeMismatch)
	}
}

// SetConditionNonZero masks in exactly the cells whose source value is
// nonzero — the usual guard keeping zero-flow cells out of a model's
// equation system.
func (m *MatrixExpr) SetConditionNonZero(src table.Value) error {
	return m.SetCondition(src, NE, 0)
}

// ClearCondition removes the mask; all cells participate again.
func (m *MatrixExpr) ClearCondition() {
	m.mask = nil
}
