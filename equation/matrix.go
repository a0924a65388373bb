// SPDX-License-Identifier: MIT

package equation

import (
	"fmt"
	"strings"

	"github.com/openresil/cgekit/labels"
	"github.com/openresil/cgekit/table"
)

// MatrixExpr is a labeled grid of scalar expressions: the algebra type
// every equation-building call site uses. It carries optional row and
// column label sets (an empty Set means the dimension is absent and has
// extent 1) and an optional condition mask restricting which cells
// participate in reductions and serialization.
//
// MatrixExpr values follow copy-on-operate semantics: operators never
// mutate an operand from the caller's point of view, they return fresh
// values. The only in-place operation is SetCondition. Values are
// transient — built, combined, serialized, discarded within one
// equation-construction pass.
type MatrixExpr struct {
	reg *Registry // nil for pure-constant expressions

	rows, cols    labels.Set
	height, width int
	cells         [][]*Expr
	mask          [][]bool // nil until SetCondition; copies keep it
}

// newVarExpr builds the symbolic handle for a registered variable: one
// singleton-term cell per flat slot, mirroring the registered shape.
func newVarExpr(r *Registry, d *descriptor) *MatrixExpr {
	m := &MatrixExpr{reg: r, rows: d.rows, cols: d.cols, height: 1, width: 1}
	if d.rows.Len() > 0 {
		m.height = d.rows.Len()
	}
	if d.cols.Len() > 0 {
		m.width = d.cols.Len()
	}
	m.cells = make([][]*Expr, m.height)
	for i := range m.cells {
		m.cells[i] = make([]*Expr, m.width)
		for j := range m.cells[i] {
			// Row-major: same flattening the registry used for layout.
			m.cells[i][j] = CellExpr(CellRef{reg: r, index: d.start + i*m.width + j})
		}
	}
	return m
}

// FromFrame builds a constant MatrixExpr mirroring the frame's shape.
// reg may be nil; constants reference no registry slot.
func FromFrame(reg *Registry, f *table.Frame) *MatrixExpr {
	m := &MatrixExpr{
		reg: reg, rows: f.Rows(), cols: f.Cols(),
		height: f.Height(), width: f.Width(),
	}
	m.cells = make([][]*Expr, m.height)
	for i := range m.cells {
		m.cells[i] = make([]*Expr, m.width)
		for j := range m.cells[i] {
			m.cells[i][j] = ConstExpr(f.Cell(i, j))
		}
	}
	return m
}

// FromSeries builds a constant single-column MatrixExpr from a series.
func FromSeries(reg *Registry, s *table.Series) *MatrixExpr {
	m := &MatrixExpr{reg: reg, rows: s.Rows(), height: s.Len(), width: 1}
	m.cells = make([][]*Expr, m.height)
	for i := range m.cells {
		m.cells[i] = []*Expr{ConstExpr(s.Cell(i))}
	}
	return m
}

// Const builds an unlabeled 1×1 constant expression.
func Const(reg *Registry, v float64) *MatrixExpr {
	return &MatrixExpr{reg: reg, height: 1, width: 1, cells: [][]*Expr{{ConstExpr(v)}}}
}

// Clone returns a deep value copy, including the condition mask:
// reductions and serialization on a copy honor the original's mask.
func (m *MatrixExpr) Clone() *MatrixExpr {
	out := &MatrixExpr{
		reg: m.reg, rows: m.rows, cols: m.cols,
		height: m.height, width: m.width,
	}
	out.cells = make([][]*Expr, m.height)
	for i := range out.cells {
		out.cells[i] = make([]*Expr, m.width)
		for j := range out.cells[i] {
			out.cells[i][j] = m.cells[i][j].Clone()
		}
	}
	if m.mask != nil {
		out.mask = make([][]bool, len(m.mask))
		for i := range m.mask {
			out.mask[i] = append([]bool(nil), m.mask[i]...)
		}
	}
	return out
}

// Rows returns the row label set (empty when the axis is absent).
func (m *MatrixExpr) Rows() labels.Set { return m.rows }

// Cols returns the column label set (empty when the axis is absent).
func (m *MatrixExpr) Cols() labels.Set { return m.cols }

// Height returns the number of grid rows.
func (m *MatrixExpr) Height() int { return m.height }

// Width returns the number of grid columns.
func (m *MatrixExpr) Width() int { return m.width }

// Cell returns the scalar expression at grid position (i, j). The
// returned value is shared with the grid; treat it as read-only.
func (m *MatrixExpr) Cell(i, j int) *Expr { return m.cells[i][j] }

// HasCondition reports whether a mask is active.
func (m *MatrixExpr) HasCondition() bool { return m.mask != nil }

// included reports whether cell (i, j) participates in reductions and
// serialization under the current mask.
func (m *MatrixExpr) included(i, j int) bool {
	return m.mask == nil || m.mask[i][j]
}

// T returns the transpose: labels swapped, grid indices flipped, mask
// transposed alongside. Pure, non-mutating.
func (m *MatrixExpr) T() *MatrixExpr {
	out := &MatrixExpr{
		reg: m.reg, rows: m.cols, cols: m.rows,
		height: m.width, width: m.height,
	}
	out.cells = make([][]*Expr, out.height)
	for i := range out.cells {
		out.cells[i] = make([]*Expr, out.width)
		for j := range out.cells[i] {
			out.cells[i][j] = m.cells[j][i].Clone()
		}
	}
	if m.mask != nil {
		out.mask = make([][]bool, out.height)
		for i := range out.mask {
			out.mask[i] = make([]bool, out.width)
			for j := range out.mask[i] {
				out.mask[i][j] = m.mask[j][i]
			}
		}
	}
	return out
}

// Outer builds the outer product of two single-column expressions:
// result[i][j] = m[i]·rhs[j], with rhs's row labels becoming the
// result's column labels. Panics with *ShapeError unless both operands
// are single-column.
func (m *MatrixExpr) Outer(rhs *MatrixExpr) *MatrixExpr {
	if m.width != 1 || rhs.width != 1 {
		panic(m.shapeErr("outer", rhs))
	}
	out := &MatrixExpr{
		reg: m.reg, rows: m.rows, cols: rhs.rows,
		height: m.height, width: rhs.height,
	}
	out.cells = make([][]*Expr, out.height)
	for i := range out.cells {
		out.cells[i] = make([]*Expr, out.width)
		for j := range out.cells[i] {
			out.cells[i][j] = m.cells[i][0].Mul(rhs.cells[j][0])
		}
	}
	return out
}

// Slice selects a label-based subset in the requested label order —
// a reorder, not just a filter. With both sets given it selects a
// rows×cols subgrid; with only rows it selects from a single-column
// expression; with neither it is a plain copy. Unknown labels are
// model-definition bugs: Slice panics with an error wrapping
// ErrUnknownLabel.
func (m *MatrixExpr) Slice(rows, cols labels.Set) *MatrixExpr {
	switch {
	case !cols.IsEmpty():
		out := &MatrixExpr{
			reg: m.reg, rows: rows, cols: cols,
			height: rows.Len(), width: cols.Len(),
		}
		out.cells = make([][]*Expr, out.height)
		for i := range out.cells {
			si := m.rowPos(rows.At(i))
			out.cells[i] = make([]*Expr, out.width)
			for j := range out.cells[i] {
				out.cells[i][j] = m.cells[si][m.colPos(cols.At(j))].Clone()
			}
		}
		return out
	case !rows.IsEmpty():
		out := &MatrixExpr{reg: m.reg, rows: rows, height: rows.Len(), width: 1}
		out.cells = make([][]*Expr, out.height)
		for i := range out.cells {
			out.cells[i] = []*Expr{m.cells[m.rowPos(rows.At(i))][0].Clone()}
		}
		return out
	default:
		return m.Clone()
	}
}

func (m *MatrixExpr) rowPos(label string) int {
	i, ok := m.rows.Index(label)
	if !ok {
		panic(fmt.Errorf("equation: slice row %q of %v: %w", label, m.rows, ErrUnknownLabel))
	}
	return i
}

func (m *MatrixExpr) colPos(label string) int {
	j, ok := m.cols.Index(label)
	if !ok {
		panic(fmt.Errorf("equation: slice col %q of %v: %w", label, m.cols, ErrUnknownLabel))
	}
	return j
}

// Eval evaluates every cell under the flat assignment x. Intended for
// verification; serialization goes through Write.
func (m *MatrixExpr) Eval(x []float64) [][]float64 {
	out := make([][]float64, m.height)
	for i := range out {
		out[i] = make([]float64, m.width)
		for j := range out[i] {
			out[i][j] = m.cells[i][j].Eval(x)
		}
	}
	return out
}

// String renders every cell line by line with a row separator —
// a diagnostic dump, not solver syntax.
func (m *MatrixExpr) String() string {
	var b strings.Builder
	for i := range m.cells {
		for j := range m.cells[i] {
			b.WriteString(m.cells[i][j].String())
			b.WriteByte('\n')
		}
		b.WriteString("///////////////////\n")
	}
	return b.String()
}

// shapeErr assembles the panic payload for rule exhaustion.
func (m *MatrixExpr) shapeErr(op string, rhs *MatrixExpr) *ShapeError {
	return &ShapeError{
		Op:       op,
		LeftRows: m.rows, LeftCols: m.cols,
		RightRows: rhs.rows, RightCols: rhs.cols,
		LeftHeight: m.height, LeftWidth: m.width,
		RightHeight: rhs.height, RightWidth: rhs.width,
	}
}
