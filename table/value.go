// SPDX-License-Identifier: MIT

package table

// Value is the closed union of tabular values the equation registry
// exchanges with model code: a bare Scalar, a labeled *Series, or a
// labeled *Frame. The marker method seals the union so every consumer
// can type-switch exhaustively over exactly three cases.
type Value interface {
	isValue()
}

// Scalar is a single unlabeled number lifted into the Value union.
// A Scalar assigned to a vector or matrix variable broadcasts to every
// cell of that variable.
type Scalar float64

func (Scalar) isValue() {}
