package equation_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/openresil/cgekit/equation"
)

func TestExpr_ConstAndEmpty(t *testing.T) {
	zero := equation.ConstExpr(0)
	assert.True(t, zero.IsEmpty())
	assert.Equal(t, "0", zero.String())

	six := equation.ConstExpr(6)
	assert.False(t, six.IsEmpty())
	assert.Equal(t, "(6)", six.String())
	assert.Equal(t, 6.0, six.Eval(nil))
}

func TestExpr_CellExpr(t *testing.T) {
	a, _ := refFixture(t)
	e := equation.CellExpr(a)
	assert.Equal(t, "(1*model.x0)", e.String())
	assert.Equal(t, 4.0, e.Eval([]float64{4, 5}))
}

func TestExpr_AddSub(t *testing.T) {
	a, b := refFixture(t)
	e := equation.CellExpr(a).Add(equation.CellExpr(b)).SubConst(3)

	assert.Equal(t, "((1*model.x0)+(1*model.x1)+(-3))", e.String())
	assert.Equal(t, 6.0, e.Eval([]float64{4, 5}))
}

// TestExpr_AddCompositeOpaque verifies that a quotient added into a sum
// stays one opaque summand rather than being flattened.
func TestExpr_AddCompositeOpaque(t *testing.T) {
	q := equation.ConstExpr(6).Div(equation.ConstExpr(2))
	e := equation.ConstExpr(1).Add(q)

	// The quotient summand is re-wrapped like any other, so its own
	// parens nest inside the summand parens.
	assert.Equal(t, "((1)+(((6)/(2))))", e.String())
	assert.Equal(t, 4.0, e.Eval(nil))
}

// TestExpr_MulConst covers the three scaling paths: sums term by term,
// quotients through their numerator, powers absorbed as a factor.
func TestExpr_MulConst(t *testing.T) {
	sum := equation.ConstExpr(1).AddConst(2).MulConst(10)
	assert.Equal(t, "((10)+(20))", sum.String())

	div := equation.ConstExpr(6).Div(equation.ConstExpr(2)).MulConst(5)
	assert.Equal(t, "((30)/(2))", div.String())
	assert.InDelta(t, 15.0, div.Eval(nil), 1e-12)

	pow := equation.ConstExpr(2).Pow(equation.ConstExpr(3)).MulConst(5)
	assert.Equal(t, "(5*((2)**(3)))", pow.String())
	assert.InDelta(t, 40.0, pow.Eval(nil), 1e-12)
}

func TestExpr_MulSumSum_Expands(t *testing.T) {
	lhs := equation.ConstExpr(1).AddConst(2)
	rhs := equation.ConstExpr(3).AddConst(4)
	e := lhs.Mul(rhs)

	assert.Equal(t, "((3)+(4)+(6)+(8))", e.String())
	assert.Equal(t, 21.0, e.Eval(nil))
}

// TestExpr_MulSumSum_ExpandLimit verifies the expansion cutoff: past
// ExpandLimit cartesian terms the product is kept as two opaque nested
// factors of a single term.
func TestExpr_MulSumSum_ExpandLimit(t *testing.T) {
	lhs := equation.ConstExpr(1).AddConst(2).AddConst(3).AddConst(4) // 4 terms
	rhs := equation.ConstExpr(1).AddConst(2).AddConst(3)             // 3 terms

	e := lhs.Mul(rhs) // 12 > ExpandLimit
	assert.True(t, strings.HasPrefix(e.String(), "(1*("), "kept opaque: %s", e.String())
	assert.InDelta(t, 60.0, e.Eval(nil), 1e-12)

	// 2×5 = 10 sits exactly at the limit and still expands.
	at := equation.ConstExpr(1).AddConst(2).
		Mul(equation.ConstExpr(1).AddConst(2).AddConst(3).AddConst(4).AddConst(5))
	assert.Equal(t, 9, strings.Count(at.String(), "+"), "expanded: %s", at.String())
	assert.InDelta(t, 45.0, at.Eval(nil), 1e-12)
}

// TestExpr_MulComposites pins the four composite×composite pairings.
func TestExpr_MulComposites(t *testing.T) {
	div := func(a, b float64) *equation.Expr {
		return equation.ConstExpr(a).Div(equation.ConstExpr(b))
	}
	pow := func(a, b float64) *equation.Expr {
		return equation.ConstExpr(a).Pow(equation.ConstExpr(b))
	}

	// (6/2)·(10/5): numerators and divisors multiply pairwise.
	assert.InDelta(t, 6.0, div(6, 2).Mul(div(10, 5)).Eval(nil), 1e-12)

	// (2**3)·(4**5): bases multiply, exponents add.
	assert.InDelta(t, 16777216.0, pow(2, 3).Mul(pow(4, 5)).Eval(nil), 1e-12)

	// (6/2)·(2**3): the power lands in the numerator.
	assert.InDelta(t, 24.0, div(6, 2).Mul(pow(2, 3)).Eval(nil), 1e-12)

	// (2**3)·(10/5): same absorption, mirrored.
	assert.InDelta(t, 16.0, pow(2, 3).Mul(div(10, 5)).Eval(nil), 1e-12)
}

// TestExpr_MulDivBySum verifies the quotient absorbing a plain sum.
func TestExpr_MulDivBySum(t *testing.T) {
	q := equation.ConstExpr(6).Div(equation.ConstExpr(2))
	s := equation.ConstExpr(5)

	left := q.Mul(s)
	assert.True(t, left.IsComposite())
	assert.InDelta(t, 15.0, left.Eval(nil), 1e-12)

	right := s.Mul(q)
	assert.True(t, right.IsComposite())
	assert.InDelta(t, 15.0, right.Eval(nil), 1e-12)
}

func TestExpr_DivPow_Render(t *testing.T) {
	a, b := refFixture(t)
	e := equation.CellExpr(a).Div(equation.CellExpr(b))
	assert.Equal(t, "((1*model.x0)/(1*model.x1))", e.String())

	p := equation.CellExpr(a).PowConst(0.4)
	assert.Equal(t, "((1*model.x0)**(0.4))", p.String())
	assert.InDelta(t, 4.0, p.Eval([]float64{32, 0}), 1e-12) // 32**0.4
}

// TestExpr_DivPow_Eval checks the numeric semantics of both composites.
func TestExpr_DivPow_Eval(t *testing.T) {
	a, b := refFixture(t)
	x := []float64{9, 3}

	assert.InDelta(t, 3.0, equation.CellExpr(a).Div(equation.CellExpr(b)).Eval(x), 1e-12)
	assert.InDelta(t, 729.0, equation.CellExpr(a).Pow(equation.CellExpr(b)).Eval(x), 1e-12)
}

// TestExpr_CloneNormalizes verifies that copying drops terms that
// scaling has pushed below the additive-zero threshold.
func TestExpr_CloneNormalizes(t *testing.T) {
	tiny := equation.ConstExpr(5).MulConst(1e-12)
	assert.False(t, tiny.IsEmpty(), "MulConst itself does not prune")
	assert.True(t, tiny.Clone().IsEmpty())
}

// TestExpr_OperatorsArePure verifies no operator mutates its operands.
func TestExpr_OperatorsArePure(t *testing.T) {
	a, b := refFixture(t)
	lhs := equation.CellExpr(a)
	rhs := equation.CellExpr(b)
	before := lhs.String()

	_ = lhs.Add(rhs)
	_ = lhs.Mul(rhs)
	_ = lhs.Div(rhs)
	_ = lhs.Pow(rhs)
	_ = lhs.MulConst(42)

	assert.Equal(t, before, lhs.String())
	assert.Equal(t, "(1*model.x1)", rhs.String())
}

// TestExpr_AddSub_RoundTrip_Property: (e+f)-f evaluates back to e for
// arbitrary constant sums.
func TestExpr_AddSub_RoundTrip_Property(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		gen := rapid.Float64Range(-1e6, 1e6)
		e := equation.ConstExpr(gen.Draw(t, "e0")).AddConst(gen.Draw(t, "e1"))
		f := equation.ConstExpr(gen.Draw(t, "f0")).AddConst(gen.Draw(t, "f1"))

		got := e.Add(f).Sub(f).Eval(nil)
		require.InDelta(t, e.Eval(nil), got, 1e-6)
	})
}

// TestExpr_MulEval_Property: expansion and the opaque cutoff agree with
// plain numeric multiplication.
func TestExpr_MulEval_Property(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		gen := rapid.Float64Range(-100, 100)
		n := rapid.IntRange(1, 6).Draw(t, "nl")
		k := rapid.IntRange(1, 6).Draw(t, "nr")

		lhs := equation.ConstExpr(gen.Draw(t, "l"))
		for i := 1; i < n; i++ {
			lhs = lhs.AddConst(gen.Draw(t, "l"))
		}
		rhs := equation.ConstExpr(gen.Draw(t, "r"))
		for i := 1; i < k; i++ {
			rhs = rhs.AddConst(gen.Draw(t, "r"))
		}

		// Terms under EmptyEps are pruned by construction, so allow the
		// product to drift by EmptyEps times the partner's magnitude.
		want := lhs.Eval(nil) * rhs.Eval(nil)
		tol := 1e-6 + equation.EmptyEps*(abs(lhs.Eval(nil))+abs(rhs.Eval(nil)))
		require.InDelta(t, want, lhs.Mul(rhs).Eval(nil), tol)
	})
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
