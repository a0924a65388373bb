// SPDX-License-Identifier: MIT

package pyomo

import "strconv"

// Default bounds substituted for variables registered without an
// explicit lower or upper bound. The solver front-end treats ±1e20 as
// unbounded.
const (
	DefaultLower = -1e20
	DefaultUpper = 1e20
)

// VarName renders the solver identifier for flat index i: "model.x<i>".
func VarName(i int) string {
	return "model.x" + strconv.Itoa(i)
}

// Number renders a float payload with shortest round-trip formatting.
func Number(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

// VarDecl renders one variable declaration line (without newline).
func VarDecl(i int, lower, upper, initialize float64) string {
	return VarName(i) + " = Var(bounds=(" + Number(lower) + "," + Number(upper) +
		"),initialize=" + Number(initialize) + ")"
}

// ConstraintDecl renders one equality-constraint line (without newline)
// for the already-rendered expression expr.
func ConstraintDecl(k int, expr string) string {
	return "model.equality" + strconv.Itoa(k) + " = Constraint(expr=" + expr + " == 0)"
}

// ObjectiveDecl renders the single objective line (without newline),
// maximizing the variable at flat index i via negated minimization.
func ObjectiveDecl(i int) string {
	return "model.obj = Objective(expr=-1*" + VarName(i) + ")"
}
