// SPDX-License-Identifier: MIT

package equation

import (
	"math"
	"strings"
)

// summand is one addend inside a sum-state Expr: a *Term, or a nested
// *Expr (which appears when a composite is added into a sum, or when the
// expansion cutoff keeps a product opaque).
type summand interface {
	String() string
	Eval(x []float64) float64
	isEmptySummand() bool
	cloneSummand() summand
}

// exprOp is the operator of a composite node.
type exprOp int

const (
	opDiv exprOp = iota
	opPow
)

func (o exprOp) symbol() string {
	if o == opDiv {
		return "/"
	}
	return "**"
}

// Expr is a scalar symbolic expression in exactly one of two states:
//
//   - Sum: an ordered list of summands (terms or nested expressions),
//     normalized by dropping empty terms;
//   - Composite: a `/` or `**` node over two child expressions. The
//     divisor and the exponent are full expressions, not bare floats,
//     so variable-dependent exponents are representable.
//
// Operators never mutate their operands from the caller's point of
// view: every operation starts from a deep copy, so no subtree is ever
// aliased between two independent expressions.
type Expr struct {
	items []summand // Sum state

	composite   bool
	op          exprOp
	left, right *Expr // Composite state
}

// ConstExpr returns the constant expression v. A zero constant
// normalizes to the empty sum, which renders as "0".
func ConstExpr(v float64) *Expr {
	e := &Expr{items: []summand{NewTerm(v)}}
	e.ClearEmpty()
	return e
}

// CellExpr returns the single-variable expression 1×ref.
func CellExpr(ref CellRef) *Expr {
	return &Expr{items: []summand{TermOf(ref)}}
}

// TermExpr wraps a copy of t as a one-term sum.
func TermExpr(t *Term) *Expr {
	e := &Expr{items: []summand{t.Clone()}}
	e.ClearEmpty()
	return e
}

// Clone returns a deep, normalized copy: like the copy step every
// operator performs, it drops empty terms.
func (e *Expr) Clone() *Expr {
	out := &Expr{composite: e.composite, op: e.op}
	if e.composite {
		out.left = e.left.Clone()
		out.right = e.right.Clone()
		return out
	}
	out.items = make([]summand, 0, len(e.items))
	for _, it := range e.items {
		out.items = append(out.items, it.cloneSummand())
	}
	out.ClearEmpty()
	return out
}

// IsComposite reports whether the expression is a `/` or `**` node.
func (e *Expr) IsComposite() bool { return e.composite }

// IsEmpty reports whether the expression is an empty sum (additive
// zero). Composites are never empty.
func (e *Expr) IsEmpty() bool { return !e.composite && len(e.items) == 0 }

// ClearEmpty drops every empty term from a sum, recursing into nested
// sums. No-op on composites.
func (e *Expr) ClearEmpty() {
	if e.composite {
		return
	}
	kept := make([]summand, 0, len(e.items))
	for _, it := range e.items {
		if sub, ok := it.(*Expr); ok {
			sub.ClearEmpty()
		}
		if !it.isEmptySummand() {
			kept = append(kept, it)
		}
	}
	e.items = kept
}

// Add returns e + rhs. A composite lhs is first wrapped into a
// singleton sum; a composite rhs is appended whole as one opaque
// summand, otherwise rhs's terms are appended individually.
func (e *Expr) Add(rhs *Expr) *Expr {
	out := e.Clone()
	if out.composite {
		out = &Expr{items: []summand{out}}
	}
	if rhs.composite {
		out.items = append(out.items, rhs.Clone())
		return out
	}
	for _, it := range rhs.items {
		out.items = append(out.items, it.cloneSummand())
	}
	return out
}

// AddConst returns e + v.
func (e *Expr) AddConst(v float64) *Expr { return e.Add(ConstExpr(v)) }

// Sub returns e - rhs, implemented as e + (-1)·rhs.
func (e *Expr) Sub(rhs *Expr) *Expr { return e.Add(rhs.MulConst(-1)) }

// SubConst returns e - v.
func (e *Expr) SubConst(v float64) *Expr { return e.AddConst(-v) }

// MulConst returns e scaled by v. Division composites scale their
// numerator; power composites are absorbed as an opaque factor of the
// scaling term; sums scale term by term.
func (e *Expr) MulConst(v float64) *Expr {
	out := e.Clone()
	if out.composite {
		if out.op == opDiv {
			out.left = out.left.MulConst(v)
			return out
		}
		t := NewTerm(v)
		t.factors = append(t.factors, out)
		return &Expr{items: []summand{t}}
	}
	for i, it := range out.items {
		switch x := it.(type) {
		case *Term:
			out.items[i] = x.MulConst(v)
		case *Expr:
			out.items[i] = x.MulConst(v)
		}
	}
	return out
}

// Mul returns e × rhs.
//
// Sum × sum expands as the cartesian product of their terms unless the
// result would exceed ExpandLimit terms, in which case both operands are
// kept as two opaque nested factors of a single term. Division
// composites absorb the other operand into their numerator; a power
// composite times a sum distributes the sum's terms over the composite
// as an opaque factor.
func (e *Expr) Mul(rhs *Expr) *Expr {
	out := e.Clone()

	switch {
	case out.composite && !rhs.composite:
		if out.op == opDiv {
			out.left = out.left.Mul(rhs)
			return out
		}
		// Power composite: distribute rhs's summands over it.
		items := make([]summand, 0, len(rhs.items))
		for _, it := range rhs.items {
			items = append(items, mulSummands(it.cloneSummand(), out))
		}
		return &Expr{items: items}

	case !out.composite && !rhs.composite:
		if len(out.items)*len(rhs.items) > ExpandLimit {
			// Expanding long equations is quadratic in text size; keep
			// both operands opaque instead.
			t := NewTerm(1)
			t.factors = append(t.factors, e.Clone(), rhs.Clone())
			return &Expr{items: []summand{t}}
		}
		items := make([]summand, 0, len(out.items)*len(rhs.items))
		for _, a := range out.items {
			for _, b := range rhs.items {
				items = append(items, mulSummands(a.cloneSummand(), b))
			}
		}
		out.items = items
		return out

	case !out.composite && rhs.composite:
		return rhs.Mul(out)

	default: // both composite
		switch {
		case out.op == opDiv && rhs.op == opDiv:
			out.left = out.left.Mul(rhs.left)
			out.right = out.right.Mul(rhs.right)
		case out.op == opPow && rhs.op == opPow:
			out.left = out.left.Mul(rhs.left)
			out.right = out.right.Add(rhs.right)
		case out.op == opDiv && rhs.op == opPow:
			out.left = out.left.Mul(rhs)
		default: // pow × div: the divide's numerator absorbs the power
			res := rhs.Clone()
			res.left = res.left.Mul(out)
			return res
		}
		return out
	}
}

// Div returns the composite e / rhs. Always a fresh node over copies.
func (e *Expr) Div(rhs *Expr) *Expr {
	return &Expr{composite: true, op: opDiv, left: e.Clone(), right: rhs.Clone()}
}

// DivConst returns e / v.
func (e *Expr) DivConst(v float64) *Expr { return e.Div(ConstExpr(v)) }

// Pow returns the composite e ** rhs. The exponent is a full
// expression: elasticity constants and variable-dependent exponents go
// through the same path.
func (e *Expr) Pow(rhs *Expr) *Expr {
	return &Expr{composite: true, op: opPow, left: e.Clone(), right: rhs.Clone()}
}

// PowConst returns e ** v.
func (e *Expr) PowConst(v float64) *Expr { return e.Pow(ConstExpr(v)) }

// String renders the expression in solver syntax: composites as
// "(L<op>R)", sums as "(t0)+(t1)+…" with outer parens when there is
// more than one summand, and the empty sum as "0".
func (e *Expr) String() string {
	if e.composite {
		return "(" + e.left.String() + e.op.symbol() + e.right.String() + ")"
	}
	if len(e.items) == 0 {
		return "0"
	}
	var b strings.Builder
	if len(e.items) > 1 {
		b.WriteByte('(')
	}
	for i, it := range e.items {
		if i > 0 {
			b.WriteByte('+')
		}
		b.WriteByte('(')
		b.WriteString(it.String())
		b.WriteByte(')')
	}
	if len(e.items) > 1 {
		b.WriteByte(')')
	}
	return b.String()
}

// Eval evaluates the expression under the flat assignment x.
func (e *Expr) Eval(x []float64) float64 {
	if e.composite {
		l, r := e.left.Eval(x), e.right.Eval(x)
		if e.op == opDiv {
			return l / r
		}
		return math.Pow(l, r)
	}
	total := 0.0
	for _, it := range e.items {
		total += it.Eval(x)
	}
	return total
}

func (e *Expr) isEmptySummand() bool  { return e.IsEmpty() }
func (e *Expr) cloneSummand() summand { return e.Clone() }
func (e *Expr) cloneFactor() factor   { return e.Clone() }

// mulSummands multiplies two summands, preserving the absorption rules
// of each pairing. The result is a single summand.
func mulSummands(a, b summand) summand {
	switch x := a.(type) {
	case *Term:
		switch y := b.(type) {
		case *Term:
			return x.MulTerm(y)
		case *Expr:
			return mulTermExpr(x, y)
		}
	case *Expr:
		switch y := b.(type) {
		case *Term:
			return mulExprTerm(x, y)
		case *Expr:
			return x.Mul(y)
		}
	}
	return nil // unreachable: summands are *Term or *Expr
}

// mulTermExpr multiplies term × expression: a divide pulls the term into
// its numerator, any other composite is appended to the term as one
// opaque factor, and a sum distributes the term over its summands.
func mulTermExpr(t *Term, e *Expr) summand {
	if e.composite {
		if e.op == opDiv {
			return e.Mul(TermExpr(t))
		}
		out := t.Clone()
		out.factors = append(out.factors, e.Clone())
		return out
	}
	items := make([]summand, 0, len(e.items))
	for _, it := range e.items {
		items = append(items, mulSummands(it.cloneSummand(), t))
	}
	return &Expr{items: items}
}

// mulExprTerm multiplies expression × term; same rules, mirrored.
func mulExprTerm(e *Expr, t *Term) summand {
	if e.composite {
		if e.op == opDiv {
			out := e.Clone()
			out.left = out.left.Mul(TermExpr(t))
			return out
		}
		out := t.Clone()
		out.factors = append(out.factors, e.Clone())
		return out
	}
	items := make([]summand, 0, len(e.items))
	for _, it := range e.items {
		items = append(items, mulSummands(it.cloneSummand(), t))
	}
	return &Expr{items: items}
}
