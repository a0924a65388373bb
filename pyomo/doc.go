// Package pyomo renders the exact procedural text grammar consumed by
// the external nonlinear optimization front-end:
//
//	model.x<i> = Var(bounds=(<lower>,<upper>),initialize=<value>)
//	model.equality<k> = Constraint(expr=<expression> == 0)
//	model.obj = Objective(expr=-1*model.x<objIndex>)
//
// The downstream solve evaluates this text verbatim, so the grammar is a
// wire contract: every byte outside the numeric payloads is fixed, and
// the numeric payloads use shortest round-trip formatting so the same
// model definition always serializes to the same bytes.
//
// This package contains no algebra; it exists so the boundary format is
// written in exactly one place and asserted byte-for-byte in tests.
package pyomo
