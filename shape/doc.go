// SPDX-License-Identifier: MIT

// Package shape implements the extent/stride descriptor shared by every
// N-dimensional container in this module.
//
// What & Why:
//
//	A Shape is a fixed-capacity list of extents (size per dimension) and
//	strides (elements to advance per dimension) plus an active rank bounded by
//	MaxRank. Metadata lives in inline arrays, so building, copying and
//	transforming a Shape never touches the heap.
//
//	All indexing arithmetic lives here: offset computation from a multi-index,
//	row-major stride derivation, element counts, contiguity analysis,
//	permutation validation and the descriptor side of every view transform
//	(subspan, slice, reshape, transpose, squeeze, flatten). Package nd layers
//	buffers on top; this package never sees element data.
//
// Layout:
//
//	Row-major only. A freshly built Shape satisfies
//	strides[rank-1] == 1 and strides[i-1] == strides[i]*extents[i].
//	Transposed or sub-ranged descriptors keep per-dimension correctness while
//	breaking that adjacency; IsContiguous reports which case applies.
//
// Complexity:
//
//	Every operation is O(rank) except Unravel/Ravel helpers used by iterators,
//	which are O(rank) as well. Nothing allocates except Extents/Strides, which
//	return fresh slices sized to the rank.
package shape
