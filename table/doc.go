// Package table provides labeled dense numeric containers: Series (a
// labeled vector) and Frame (a labeled matrix), both stored as flat
// row-major []float64 buffers with O(1) label→cell resolution.
//
// These are the tabular values a CGE model feeds into the equation
// engine: social-accounting-matrix slices seed initial values and bounds,
// and decoded solver output comes back out as the same types.
//
// Conventions:
//
//   - Frame data is row-major: cell (i, j) lives at data[i*width+j].
//     This mirrors the flat solver layout used by equation.Registry, so
//     flattening a Frame and registering a matrix variable agree on order.
//   - NaN is a legal cell value. Upstream data bugs must stay visible
//     until serialization time, so nothing in this package rejects or
//     rewrites NaN.
//   - All accessors that take labels return ErrUnknownLabel on a miss;
//     positional accessors are bounds-checked by the runtime.
//
// Value is the closed union (Scalar | *Series | *Frame) accepted by the
// registry's value/bound setters and returned by its getters.
package table
