// SPDX-License-Identifier: MIT
// Package shape - pure offset/stride algorithms.
//
// Purpose:
//   - Provide the canonical arithmetic behind every indexing path: offsets,
//     strides, element counts, contiguity and permutation checks.
//   - Operate on plain []int so Shape methods, nd views and tests share one
//     implementation (no duplicated loops).
//
// Determinism & Policy:
//   - Fixed loop orders, no allocation, no panics on caller input.
//   - Entries past the active rank are ignored by every function here.

package shape

// ComputeOffset returns Σ indices[d]*strides[d] after bounds-checking every index.
//
// Implementation:
//   - Stage 1: reject more than MaxRank indices or more indices than extents.
//   - Stage 2: for each supplied index, check 0 ≤ idx < extents[d]; stop on
//     the first violation.
//   - Stage 3: accumulate idx*stride.
//
// Behavior highlights:
//   - Fewer indices than rank is legal (partial indexing): the result is the
//     offset of the first element of the addressed trailing block.
//   - Zero indices yields offset 0.
//
// Errors:
//   - ErrOutOfBounds on the first violating dimension (wrapped with dim/value).
//
// Complexity:
//   - Time O(len(indices)), Space O(1).
func ComputeOffset(extents, strides, indices []int) (int, error) {
	if len(indices) > MaxRank || len(indices) > len(extents) || len(indices) > len(strides) {
		return 0, countErrorf(len(indices), min(len(extents), MaxRank), ErrOutOfBounds)
	}

	var offset int
	for d, idx := range indices { // fixed d order; first violation wins
		if idx < 0 || idx >= extents[d] {
			return 0, dimErrorf(d, idx, ErrOutOfBounds)
		}
		offset += idx * strides[d]
	}

	return offset, nil
}

// ComputeStrides derives canonical row-major strides for the first rank extents.
// The last active dimension gets stride 1; each preceding stride is the next
// stride times the next extent. Slots at and beyond rank are zero.
// rank is clamped to [0, min(len(extents), MaxRank)].
// Complexity: O(MaxRank).
func ComputeStrides(extents []int, rank int) [MaxRank]int {
	var strides [MaxRank]int
	rank = clampRank(rank, len(extents))
	if rank == 0 {
		return strides // irrelevant for rank 0: all zero
	}

	strides[rank-1] = 1
	for i := rank - 1; i > 0; i-- {
		strides[i-1] = strides[i] * extents[i]
	}

	return strides
}

// ComputeSize returns the product of the first rank extents, or 0 when rank is 0.
// Overflow is not guarded.
// Complexity: O(rank).
func ComputeSize(extents []int, rank int) int {
	rank = clampRank(rank, len(extents))
	if rank == 0 {
		return 0
	}

	n := 1
	for i := 0; i < rank; i++ {
		n *= extents[i]
	}

	return n
}

// IsContiguous reports whether the descriptor matches canonical row-major
// layout exactly. Rank 0 and empty (size 0) descriptors are contiguous.
// Complexity: O(rank).
func IsContiguous(extents, strides []int, rank int) bool {
	rank = clampRank(rank, min(len(extents), len(strides)))
	if rank == 0 || ComputeSize(extents, rank) == 0 {
		return true
	}
	if strides[rank-1] != 1 {
		return false
	}
	for i := rank - 1; i > 0; i-- {
		if strides[i-1] != strides[i]*extents[i] {
			return false
		}
	}

	return true
}

// ValidatePermutation checks that axes is a bijection on [0, rank).
//
// Errors:
//   - ErrInvalidPermutation when len(axes) != rank, rank > MaxRank, any axis
//     is negative or ≥ rank, or any axis repeats.
//
// Complexity:
//   - Time O(rank), Space O(1) (fixed-size seen table).
func ValidatePermutation(axes []int, rank int) error {
	if rank < 0 || rank > MaxRank || len(axes) != rank {
		return countErrorf(len(axes), rank, ErrInvalidPermutation)
	}

	var seen [MaxRank]bool
	for i, a := range axes {
		if a < 0 || a >= rank {
			return dimErrorf(i, a, ErrInvalidPermutation)
		}
		if seen[a] {
			return dimErrorf(i, a, ErrInvalidPermutation) // repeated axis
		}
		seen[a] = true
	}

	return nil
}

// clampRank bounds a caller-supplied rank to what the backing slices hold.
func clampRank(rank, limit int) int {
	if rank < 0 {
		return 0
	}
	if limit > MaxRank {
		limit = MaxRank
	}
	if rank > limit {
		return limit
	}

	return rank
}
