// SPDX-License-Identifier: MIT

package equation

import (
	"fmt"

	"github.com/openresil/cgekit/labels"
)

// Sum reduces the grid additively along axis. Only cells included by
// the condition mask (all cells, when none is set) participate:
//
//	AxisNone → 1×1 total over every included cell
//	AxisRows → 1×width row of per-column sums
//	AxisCols → height×1 column of per-row sums
//
// The reduced dimension loses its labels, and the mask does not survive
// the shape change.
func (m *MatrixExpr) Sum(axis Axis) *MatrixExpr {
	return m.reduce(axis, false)
}

// SumAlong is Sum with the axis named by its label set, the way model
// equations read ("sum over sectors"). ls must equal the row or column
// labels; anything else panics with an error wrapping ErrBadAxis.
func (m *MatrixExpr) SumAlong(ls labels.Set) *MatrixExpr {
	return m.reduce(m.axisOf(ls, "sum"), false)
}

// Prod is Sum's multiplicative twin: identical reduction contract with
// product instead of sum and 1 instead of 0 as the identity.
func (m *MatrixExpr) Prod(axis Axis) *MatrixExpr {
	return m.reduce(axis, true)
}

// ProdAlong is Prod with the axis named by its label set.
func (m *MatrixExpr) ProdAlong(ls labels.Set) *MatrixExpr {
	return m.reduce(m.axisOf(ls, "prod"), true)
}

// axisOf maps a label set onto the matching axis of this expression.
func (m *MatrixExpr) axisOf(ls labels.Set, op string) Axis {
	switch {
	case !ls.IsEmpty() && ls.Equal(m.rows):
		return AxisRows
	case !ls.IsEmpty() && ls.Equal(m.cols):
		return AxisCols
	default:
		panic(fmt.Errorf("equation: %s along %v over rows=%v cols=%v: %w",
			op, ls, m.rows, m.cols, ErrBadAxis))
	}
}

func (m *MatrixExpr) reduce(axis Axis, multiplicative bool) *MatrixExpr {
	identity := 0.0
	if multiplicative {
		identity = 1.0
	}
	combine := (*Expr).Add
	if multiplicative {
		combine = (*Expr).Mul
	}

	out := m.Clone()
	out.mask = nil

	switch axis {
	case AxisNone:
		total := ConstExpr(identity)
		for i := 0; i < m.height; i++ {
			for j := 0; j < m.width; j++ {
				if m.included(i, j) {
					total = combine(total, m.cells[i][j])
				}
			}
		}
		out.cells = [][]*Expr{{total}}
		out.height, out.width = 1, 1
		out.rows, out.cols = labels.Set{}, labels.Set{}

	case AxisRows:
		row := make([]*Expr, m.width)
		for j := range row {
			row[j] = ConstExpr(identity)
		}
		for i := 0; i < m.height; i++ {
			for j := 0; j < m.width; j++ {
				if m.included(i, j) {
					row[j] = combine(row[j], m.cells[i][j])
				}
			}
		}
		out.cells = [][]*Expr{row}
		out.height = 1
		out.rows = labels.Set{}

	case AxisCols:
		col := make([][]*Expr, m.height)
		for i := range col {
			col[i] = []*Expr{ConstExpr(identity)}
		}
		for i := 0; i < m.height; i++ {
			for j := 0; j < m.width; j++ {
				if m.included(i, j) {
					col[i][0] = combine(col[i][0], m.cells[i][j])
				}
			}
		}
		out.cells = col
		out.width = 1
		out.cols = labels.Set{}

	default:
		panic(fmt.Errorf("equation: reduce axis %d: %w", axis, ErrBadAxis))
	}
	return out
}
