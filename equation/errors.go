// SPDX-License-Identifier: MIT
// Package equation: sentinel error set. Lookup and setter operations
// return these sentinels and tests match them via errors.Is. Expression
// arithmetic panics with *ShapeError (which unwraps to ErrShapeMismatch)
// because rule exhaustion is a model-definition bug, not a recoverable
// condition — see the package documentation for the full policy.

package equation

import (
	"errors"
	"fmt"

	"github.com/openresil/cgekit/labels"
)

var (
	// ErrDuplicateVariable is returned when a variable name is registered
	// twice. The caller must not double-register; the first registration
	// fixed the flat layout.
	ErrDuplicateVariable = errors.New("equation: duplicate variable name")

	// ErrUnknownVariable is returned when a name was never registered.
	ErrUnknownVariable = errors.New("equation: unknown variable name")

	// ErrUnknownLabel is returned when a row/column label is not part of
	// a variable's registered shape.
	ErrUnknownLabel = errors.New("equation: unknown label")

	// ErrShapeMismatch indicates incompatible shapes: a Frame assigned to
	// a vector variable, broadcasting rule exhaustion, a label addressing
	// a dimension the variable does not have.
	ErrShapeMismatch = errors.New("equation: shape mismatch")

	// ErrSolutionLength is returned when a solver solution array does not
	// match the registry's total size.
	ErrSolutionLength = errors.New("equation: solution length does not match registry size")

	// ErrIndexRange is returned by inverse lookup for a flat index outside
	// the registry.
	ErrIndexRange = errors.New("equation: flat index out of range")

	// ErrNotScalar is returned when a scalar variable is required (the
	// objective) but the name resolves to a vector or matrix.
	ErrNotScalar = errors.New("equation: variable is not scalar")

	// ErrBadAxis is returned (or carried by a panic from chainable
	// reduction calls) when a reduction axis matches neither the row nor
	// the column labels of the expression.
	ErrBadAxis = errors.New("equation: axis matches neither rows nor cols")
)

// ShapeError carries both operands' label metadata when no broadcasting
// rule matches. It is delivered by panic from MatrixExpr arithmetic and
// unwraps to ErrShapeMismatch for errors.Is matching in recover paths.
type ShapeError struct {
	Op string // operator name: "add", "mul", "outer", ...

	LeftRows, LeftCols   labels.Set
	RightRows, RightCols labels.Set

	LeftHeight, LeftWidth   int
	RightHeight, RightWidth int
}

// Error renders the full shape diagnostic for both operands.
func (e *ShapeError) Error() string {
	return fmt.Sprintf(
		"equation: %s: no broadcasting rule for %dx%d (rows=%v cols=%v) vs %dx%d (rows=%v cols=%v)",
		e.Op,
		e.LeftHeight, e.LeftWidth, e.LeftRows, e.LeftCols,
		e.RightHeight, e.RightWidth, e.RightRows, e.RightCols,
	)
}

// Unwrap links the diagnostic to the ErrShapeMismatch sentinel.
func (e *ShapeError) Unwrap() error { return ErrShapeMismatch }
