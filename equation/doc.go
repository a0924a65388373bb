// Package equation is the symbolic algebra core of cgekit: it lays out
// named scalar/vector/matrix economic variables into one flat
// solver-visible array, represents equations as symbolic expressions
// over those variables, and serializes the finished system into the
// procedural text the external nonlinear optimization backend consumes.
//
// 🚀 The moving parts, leaves first:
//
//	CellRef    — immutable handle to one flat-array slot
//	Term       — constant × factor₁ × factor₂ × … (factors are cell
//	             references or opaque nested expressions)
//	Expr       — a sum of terms, or a composite `/` | `**` node over two
//	             child expressions; never both at once
//	MatrixExpr — a labeled grid of Exprs with broadcasting arithmetic,
//	             reductions, transposition, masking and serialization
//	Registry   — owns the flat layout, initial values and bounds of every
//	             variable one model instance registers
//
// ⚙️ Broadcasting:
//
// Binary MatrixExpr operators resolve mismatched shapes by the first
// matching rule, in order:
//
//  1. identical row AND column labels    → elementwise
//  2. identical rows, lhs is one column  → lhs column spread across rhs's columns
//  3. identical rows, rhs is one column  → rhs column applied to every lhs column
//  4. lhs is one row, identical columns  → lhs row spread down rhs's rows
//  5. rhs is one row, identical columns  → rhs row applied to every lhs row
//  6. lhs columns == rhs rows (or the symmetric case) → retry against rhs transposed
//  7. otherwise                          → *ShapeError panic
//
// (Plain numbers use the *Const operator variants and broadcast to every
// cell.) Axis identity is labels.Set.Equal: same labels in the same
// order, never just the same length.
//
// Error policy: Registry lookups, value/bound setters and condition
// building return sentinel errors. Expression arithmetic panics with
// *ShapeError on rule exhaustion — a shape mismatch is a
// model-definition bug that must abort equation construction
// immediately, and equations are built by chaining hundreds of operator
// calls where per-call error returns would bury the algebra.
//
// Everything here is single-threaded by design: one model owns one
// Registry, builds its equations, serializes, and hands off to the
// solver. Independent models must own independent Registries.
package equation
