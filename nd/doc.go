// SPDX-License-Identifier: MIT

// Package nd provides dynamic-rank N-dimensional containers over package shape.
//
// The package provides:
//
//   - Array: owns one row-major buffer, allocated once. Deep copy with Clone
//     and CopyFrom, ownership transfer with Move and MoveFrom.
//   - View: a non-owning, bounds-checked window over any slice. Subspan,
//     Slice, Reshape, Transpose, T, Flatten and Squeeze rewrite the descriptor
//     only; element data never moves.
//   - ConstView: the same window without write access.
//   - Iterator: random-access cursor over a view's logical row-major order,
//     including strided and transposed views. All, Values and Pointers offer
//     the same walk as range-over-func sequences.
//
// Errors are the sentinels of package shape, re-exported here, wrapped once
// with the failing call ("View.Subspan(1,3,2): ..."). Match with errors.Is.
//
// Nothing in this package is safe for concurrent mutation; readers may share
// a buffer freely while nobody writes.
//
// See example_test.go for usage patterns.
package nd
