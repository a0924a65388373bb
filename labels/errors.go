// SPDX-License-Identifier: MIT
// Package labels: sentinel error set.
// All constructors MUST return these sentinels and tests MUST check them
// via errors.Is. No function in this package panics on user input; MustNew
// is the single documented exception for static label literals.

package labels

import "errors"

var (
	// ErrEmptyLabel is returned when a label is the empty string.
	ErrEmptyLabel = errors.New("labels: empty label")

	// ErrDuplicateLabel is returned when the same label appears twice in
	// one Set. Duplicates would make label→position lookup ambiguous and
	// silently corrupt the flat solver layout.
	ErrDuplicateLabel = errors.New("labels: duplicate label")
)
