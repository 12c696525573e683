// SPDX-License-Identifier: MIT
// Package shape: sentinel error set.
// This file defines ONLY package-level sentinel errors used by the descriptor
// engine and re-exported by package nd. Every failure returned by the engine
// matches exactly one of these via errors.Is. No function in this package
// panics on caller-supplied indices, extents or axes.

package shape

import (
	"errors"
	"fmt"
)

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "shape: ..." so messages stay greppable once
// nd wraps them with its own method context ("View.Subspan(0,1,3): ...").
//
// ERROR PRIORITY (documented, enforced in tests):
// rank -> dimension -> range/index -> permutation -> shape -> contiguity.

var (
	// ErrOutOfBounds indicates that an index exceeds its dimension's extent
	// during element access, offset computation or Slice.
	ErrOutOfBounds = errors.New("shape: index out of bounds")

	// ErrDimensionOutOfRange indicates that a dimension number passed to
	// Extent/Stride/Subspan/Slice is not below the current rank.
	ErrDimensionOutOfRange = errors.New("shape: dimension out of range")

	// ErrInvalidRange indicates an inverted or overlong [start,end) pair in Subspan.
	ErrInvalidRange = errors.New("shape: invalid range")

	// ErrInvalidRank indicates a requested rank above MaxRank.
	ErrInvalidRank = errors.New("shape: rank exceeds MaxRank")

	// ErrInvalidShape indicates a negative extent, a reshape target with the
	// wrong element count, or a reshape target rank above MaxRank.
	ErrInvalidShape = errors.New("shape: invalid shape")

	// ErrNotContiguous indicates that Reshape/Flatten was requested on a
	// descriptor whose strides are not canonical row-major.
	ErrNotContiguous = errors.New("shape: strides are not contiguous")

	// ErrInvalidPermutation indicates a Transpose axis list with the wrong
	// length, an out-of-range axis or a repeated axis.
	ErrInvalidPermutation = errors.New("shape: invalid permutation")
)

// dimErrorf attaches the offending dimension and value to a sentinel.
func dimErrorf(dim, value int, err error) error {
	return fmt.Errorf("dim %d value %d: %w", dim, value, err)
}

// countErrorf reports a length/count violation (indices, axes, rank).
func countErrorf(got, want int, err error) error {
	return fmt.Errorf("count %d, limit %d: %w", got, want, err)
}

// rangeErrorf reports a rejected Subspan range together with the extent it was checked against.
func rangeErrorf(dim int, r Range, extent int) error {
	return fmt.Errorf("dim %d range [%d,%d) extent %d: %w", dim, r.Start, r.End, extent, ErrInvalidRange)
}
