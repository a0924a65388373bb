// SPDX-License-Identifier: MIT
// Package equation: shared constants and small domain types.

package equation

// Numeric thresholds. These directly decide which terms are pruned from
// generated equations, so they are named constants rather than literals.
const (
	// EmptyEps: a term whose |constant| falls below this is dropped
	// during normalization. Not exact zero, because floating error
	// accumulates through chained multiplications.
	EmptyEps = 1e-8

	// OneEps: a factorless term whose constant is within this of 1 is
	// the multiplicative identity.
	OneEps = 1e-7

	// ExpandLimit bounds algebraic blow-up: when the cartesian product
	// of two term sums would exceed this many terms, the operands are
	// kept as two opaque nested factors instead of being expanded.
	ExpandLimit = 10
)

// Axis selects a reduction direction for Sum and Prod.
type Axis int

const (
	// AxisNone reduces the whole grid to a single 1×1 cell.
	AxisNone Axis = iota

	// AxisRows collapses the row dimension, producing one 1×width row.
	AxisRows

	// AxisCols collapses the column dimension, producing one height×1
	// column.
	AxisCols
)

// CmpOp is a comparison operator for condition masks.
type CmpOp int

const (
	EQ CmpOp = iota // equal
	NE              // not equal
	LT              // less than
	LE              // less or equal
	GT              // greater than
	GE              // greater or equal
)

// compare applies the operator to (a, b). NaN compares false everywhere
// except NE, matching IEEE semantics.
func (o CmpOp) compare(a, b float64) bool {
	switch o {
	case EQ:
		return a == b
	case NE:
		return a != b
	case LT:
		return a < b
	case LE:
		return a <= b
	case GT:
		return a > b
	case GE:
		return a >= b
	default:
		return false
	}
}

// String returns the conventional mnemonic for the operator.
func (o CmpOp) String() string {
	switch o {
	case EQ:
		return "EQ"
	case NE:
		return "NE"
	case LT:
		return "LT"
	case LE:
		return "LE"
	case GT:
		return "GT"
	case GE:
		return "GE"
	default:
		return "UNKNOWN"
	}
}
