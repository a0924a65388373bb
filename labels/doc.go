// Package labels provides immutable, ordered sets of category labels —
// the index dimensions (sectors, households, factors, government
// accounts) that every vector and matrix variable in a CGE model is
// addressed by.
//
// A Set is an ordered sequence of unique, non-empty strings. Order is
// significant: it defines the flattening order of variables in the solver
// array, and two dimensions are "the same axis" iff their label sequences
// are equal element-for-element, not merely the same length.
//
// Sets are immutable after construction and therefore cheap to share:
// every consumer may hold the same Set value without defensive copying,
// and aliasing bugs are structurally impossible.
//
// The zero value of Set is the absent axis — the dimension of a scalar —
// with Len() == 0.
package labels
