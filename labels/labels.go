// SPDX-License-Identifier: MIT

package labels

import "fmt"

// Set is an immutable ordered sequence of unique, non-empty labels.
//
// The zero value is the absent axis (a scalar dimension): Len() == 0,
// Equal(Set{}) == true. Construct non-empty sets with New or MustNew.
type Set struct {
	names []string       // insertion order; never mutated after New
	index map[string]int // label → position, built once
}

// New builds a Set from the given labels in order.
// Returns ErrEmptyLabel or ErrDuplicateLabel on invalid input.
// Complexity: O(n).
func New(names ...string) (Set, error) {
	if len(names) == 0 {
		return Set{}, nil
	}
	owned := make([]string, len(names))
	idx := make(map[string]int, len(names))
	for i, n := range names {
		if n == "" {
			return Set{}, fmt.Errorf("position %d: %w", i, ErrEmptyLabel)
		}
		if _, dup := idx[n]; dup {
			return Set{}, fmt.Errorf("%q: %w", n, ErrDuplicateLabel)
		}
		owned[i] = n
		idx[n] = i
	}
	return Set{names: owned, index: idx}, nil
}

// MustNew is New for static label literals; it panics on invalid input.
// Intended for model definitions where the labels are compile-time
// constants and a failure is a programmer error.
func MustNew(names ...string) Set {
	s, err := New(names...)
	if err != nil {
		panic(err)
	}
	return s
}

// Len reports the number of labels. Zero means "absent axis".
func (s Set) Len() int { return len(s.names) }

// IsEmpty reports whether the axis is absent (scalar dimension).
func (s Set) IsEmpty() bool { return len(s.names) == 0 }

// At returns the label at position i. Panics if i is out of range,
// like a slice index — positions always come from Index or loops
// bounded by Len.
func (s Set) At(i int) string { return s.names[i] }

// Index returns the position of name and whether it is present.
// Complexity: O(1).
func (s Set) Index(name string) (int, bool) {
	i, ok := s.index[name]
	return i, ok
}

// Has reports whether name is a member of the set.
func (s Set) Has(name string) bool {
	_, ok := s.index[name]
	return ok
}

// Equal reports order-sensitive element equality. This is the axis
// identity test used by broadcasting: same length is not enough.
// Complexity: O(n).
func (s Set) Equal(other Set) bool {
	if len(s.names) != len(other.names) {
		return false
	}
	for i, n := range s.names {
		if other.names[i] != n {
			return false
		}
	}
	return true
}

// Strings returns a copy of the labels in order. The returned slice is
// owned by the caller; mutating it cannot affect the Set.
func (s Set) Strings() []string {
	out := make([]string, len(s.names))
	copy(out, s.names)
	return out
}

// String renders the set for diagnostics, e.g. [GOODS HS TRADE].
func (s Set) String() string { return fmt.Sprintf("%v", s.names) }
