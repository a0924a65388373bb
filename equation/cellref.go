// SPDX-License-Identifier: MIT

package equation

import "github.com/openresil/cgekit/pyomo"

// CellRef is an immutable reference to exactly one flat slot of a
// registry. It does not own the registry; it exists only to appear as a
// factor inside expressions and to render the solver identifier for its
// index. Equality is index equality.
type CellRef struct {
	reg   *Registry
	index int
}

// NewCellRef resolves (name, row, col) through the registry eagerly, at
// construction time. Pass "" for absent dimensions.
func NewCellRef(r *Registry, name, row, col string) (CellRef, error) {
	idx, err := r.Index(name, row, col)
	if err != nil {
		return CellRef{}, err
	}
	return CellRef{reg: r, index: idx}, nil
}

// Registry returns the owning registry.
func (c CellRef) Registry() *Registry { return c.reg }

// Index returns the resolved flat offset.
func (c CellRef) Index() int { return c.index }

// Equal reports whether both references resolve to the same slot.
func (c CellRef) Equal(o CellRef) bool { return c.index == o.index }

// String renders the stable solver identifier, "model.x<index>".
func (c CellRef) String() string { return pyomo.VarName(c.index) }

// Eval reads this slot out of a flat assignment vector.
func (c CellRef) Eval(x []float64) float64 { return x[c.index] }

func (c CellRef) cloneFactor() factor { return c }
