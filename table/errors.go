// SPDX-License-Identifier: MIT
// Package table: sentinel error set. All operations return these
// sentinels; tests match them via errors.Is.

package table

import "errors"

var (
	// ErrShape is returned when a data slice length does not match the
	// label dimensions it is paired with.
	ErrShape = errors.New("table: data length does not match labels")

	// ErrUnknownLabel is returned when a row or column label is not
	// present in the container's label set.
	ErrUnknownLabel = errors.New("table: unknown label")
)
