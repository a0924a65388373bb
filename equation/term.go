// SPDX-License-Identifier: MIT

package equation

import (
	"math"
	"strings"

	"github.com/openresil/cgekit/pyomo"
)

// factor is a multiplicand inside a Term: a cell reference, or an opaque
// nested scalar expression (which is how non-trivial sums and power
// composites are absorbed without algebraic blow-up).
type factor interface {
	String() string
	Eval(x []float64) float64
	cloneFactor() factor
}

// Term is a multiplicative monomial: constant × factor₁ × factor₂ × …
// Operators return fresh values; a Term is never mutated through another
// expression that absorbed it.
type Term struct {
	constant float64
	factors  []factor
}

// NewTerm returns the bare-constant term c.
func NewTerm(c float64) *Term {
	return &Term{constant: c}
}

// TermOf returns the term 1 × ref.
func TermOf(ref CellRef) *Term {
	return &Term{constant: 1, factors: []factor{ref}}
}

// Clone returns a deep copy.
func (t *Term) Clone() *Term {
	out := &Term{constant: t.constant}
	if len(t.factors) > 0 {
		out.factors = make([]factor, len(t.factors))
		for i, f := range t.factors {
			out.factors[i] = f.cloneFactor()
		}
	}
	return out
}

// Constant returns the numeric coefficient.
func (t *Term) Constant() float64 { return t.constant }

// NumFactors returns the number of non-constant factors.
func (t *Term) NumFactors() int { return len(t.factors) }

// MulConst returns t scaled by v.
func (t *Term) MulConst(v float64) *Term {
	out := t.Clone()
	out.constant *= v
	return out
}

// MulCell returns t with ref appended as one more factor.
func (t *Term) MulCell(ref CellRef) *Term {
	out := t.Clone()
	out.factors = append(out.factors, ref)
	return out
}

// MulTerm returns the product monomial: constants combined, factor lists
// concatenated.
func (t *Term) MulTerm(rhs *Term) *Term {
	out := t.Clone()
	out.constant *= rhs.constant
	for _, f := range rhs.factors {
		out.factors = append(out.factors, f.cloneFactor())
	}
	return out
}

// MulExpr multiplies t by a full scalar expression, applying the
// absorption rules: a Divide composite pulls t into its numerator, any
// other composite is appended as one opaque factor, and a sum
// distributes t over its terms. The result is always repackaged as an
// expression.
func (t *Term) MulExpr(e *Expr) *Expr {
	switch res := mulTermExpr(t, e).(type) {
	case *Expr:
		return res
	case *Term:
		return &Expr{items: []summand{res}}
	default:
		return nil // unreachable: summands are *Term or *Expr
	}
}

// IsEmpty reports whether the term is the additive zero: |constant|
// below EmptyEps. Such terms are dropped during normalization.
func (t *Term) IsEmpty() bool {
	return math.Abs(t.constant) < EmptyEps
}

// IsOne reports whether the term is the multiplicative identity:
// constant within OneEps of 1 and no factors.
func (t *Term) IsOne() bool {
	return len(t.factors) == 0 && math.Abs(t.constant-1) < OneEps
}

// String renders the monomial as "<const>*<f1>*<f2>*…".
func (t *Term) String() string {
	var b strings.Builder
	b.WriteString(pyomo.Number(t.constant))
	for _, f := range t.factors {
		b.WriteByte('*')
		b.WriteString(f.String())
	}
	return b.String()
}

// Eval evaluates the monomial under the flat assignment x.
func (t *Term) Eval(x []float64) float64 {
	v := t.constant
	for _, f := range t.factors {
		v *= f.Eval(x)
	}
	return v
}

func (t *Term) isEmptySummand() bool  { return t.IsEmpty() }
func (t *Term) cloneSummand() summand { return t.Clone() }
