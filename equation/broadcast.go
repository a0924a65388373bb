// SPDX-License-Identifier: MIT
// Package equation: the broadcasting kernel behind every binary
// MatrixExpr operator. CGE equations routinely combine vectors against
// matrices along an unstated implicit axis, so the rule order below is
// part of the component contract and each rule is exercised
// independently in broadcast_test.go.

package equation

// binop combines two scalar cells into a result cell.
type binop func(a, b *Expr) *Expr

// apply resolves the operand shapes by the first matching rule and
// combines cell grids with f. Axis identity is label-sequence equality;
// an absent axis (empty label set) always has extent 1, so the
// dimension arithmetic below never consults extents that labels do not
// already determine.
//
// Rule order (first match wins):
//  1. same rows and cols          → elementwise
//  2. same rows, lhs single col   → spread lhs's column across rhs's columns
//  3. same rows, rhs single col   → apply rhs's column to every lhs column
//  4. lhs single row, same cols   → spread lhs's row down rhs's rows
//  5. rhs single row, same cols   → apply rhs's row to every lhs row
//  6. lhs cols == rhs rows (or the symmetric case) → retry vs rhs transposed
//  7. otherwise                   → panic(*ShapeError)
func (m *MatrixExpr) apply(rhs *MatrixExpr, f binop, opName string) *MatrixExpr {
	out := m.Clone()

	switch {
	case m.rows.Equal(rhs.rows) && m.cols.Equal(rhs.cols):
		// Same shape: same-position pairing.
		for i := 0; i < m.height; i++ {
			for j := 0; j < m.width; j++ {
				out.cells[i][j] = f(out.cells[i][j], rhs.cells[i][j])
			}
		}

	case m.rows.Equal(rhs.rows) && m.width == 1:
		// lhs is a column vector: pair it with every column of rhs.
		// Result takes rhs's column labels; the old mask no longer
		// matches the shape and is dropped.
		grid := make([][]*Expr, m.height)
		for i := range grid {
			grid[i] = make([]*Expr, rhs.width)
			for j := 0; j < rhs.width; j++ {
				grid[i][j] = f(out.cells[i][0], rhs.cells[i][j])
			}
		}
		out.cells = grid
		out.width = rhs.width
		out.cols = rhs.cols
		out.mask = nil

	case m.rows.Equal(rhs.rows) && rhs.width == 1:
		// rhs is a column vector: apply it to every lhs column.
		for i := 0; i < m.height; i++ {
			for j := 0; j < m.width; j++ {
				out.cells[i][j] = f(out.cells[i][j], rhs.cells[i][0])
			}
		}

	case m.height == 1 && m.cols.Equal(rhs.cols):
		// lhs is a row vector: pair it with every row of rhs.
		grid := make([][]*Expr, rhs.height)
		for i := range grid {
			grid[i] = make([]*Expr, m.width)
			for j := 0; j < m.width; j++ {
				grid[i][j] = f(out.cells[0][j], rhs.cells[i][j])
			}
		}
		out.cells = grid
		out.height = rhs.height
		out.rows = rhs.rows
		out.mask = nil

	case rhs.height == 1 && m.cols.Equal(rhs.cols):
		// rhs is a row vector: apply it to every lhs row.
		for i := 0; i < m.height; i++ {
			for j := 0; j < m.width; j++ {
				out.cells[i][j] = f(out.cells[i][j], rhs.cells[0][j])
			}
		}

	case (m.width == rhs.height && m.cols.Equal(rhs.rows)) ||
		(m.height == rhs.width && m.rows.Equal(rhs.cols)):
		// Cross-shape compatibility: rhs aligns once transposed.
		return m.apply(rhs.T(), f, opName)

	default:
		panic(m.shapeErr(opName, rhs))
	}
	return out
}

// applyConst pairs every cell with the constant v, shape unchanged.
func (m *MatrixExpr) applyConst(v float64, f binop) *MatrixExpr {
	out := m.Clone()
	for i := 0; i < m.height; i++ {
		for j := 0; j < m.width; j++ {
			out.cells[i][j] = f(out.cells[i][j], ConstExpr(v))
		}
	}
	return out
}

// Add returns m + rhs under the broadcasting rules.
func (m *MatrixExpr) Add(rhs *MatrixExpr) *MatrixExpr {
	return m.apply(rhs, (*Expr).Add, "add")
}

// Sub returns m - rhs under the broadcasting rules.
func (m *MatrixExpr) Sub(rhs *MatrixExpr) *MatrixExpr {
	return m.apply(rhs, (*Expr).Sub, "sub")
}

// Mul returns the elementwise/broadcast product m × rhs (not a matrix
// product; see Outer for outer products).
func (m *MatrixExpr) Mul(rhs *MatrixExpr) *MatrixExpr {
	return m.apply(rhs, (*Expr).Mul, "mul")
}

// Div returns m / rhs under the broadcasting rules.
func (m *MatrixExpr) Div(rhs *MatrixExpr) *MatrixExpr {
	return m.apply(rhs, (*Expr).Div, "div")
}

// Pow returns m ** rhs under the broadcasting rules.
func (m *MatrixExpr) Pow(rhs *MatrixExpr) *MatrixExpr {
	return m.apply(rhs, (*Expr).Pow, "pow")
}

// AddConst returns m with v added to every cell.
func (m *MatrixExpr) AddConst(v float64) *MatrixExpr {
	return m.applyConst(v, (*Expr).Add)
}

// SubConst returns m with v subtracted from every cell.
func (m *MatrixExpr) SubConst(v float64) *MatrixExpr {
	return m.applyConst(v, (*Expr).Sub)
}

// MulConst returns m with every cell scaled by v.
func (m *MatrixExpr) MulConst(v float64) *MatrixExpr {
	return m.applyConst(v, (*Expr).Mul)
}

// DivConst returns m with every cell divided by v.
func (m *MatrixExpr) DivConst(v float64) *MatrixExpr {
	return m.applyConst(v, (*Expr).Div)
}

// PowConst returns m with every cell raised to v.
func (m *MatrixExpr) PowConst(v float64) *MatrixExpr {
	return m.applyConst(v, (*Expr).Pow)
}

// RSub returns reversed subtraction: v - m, cell by cell. Covers
// share-complement expressions like 1 - delta without building a
// constant grid first.
func (m *MatrixExpr) RSub(v float64) *MatrixExpr {
	return m.MulConst(-1).AddConst(v)
}
