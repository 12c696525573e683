// SPDX-License-Identifier: MIT
// Package: shape
//
// Purpose:
//  - Single source of truth for argument checks shared by Shape constructors,
//    descriptor transforms and package nd.
//  - Return sentinel errors annotated with the offending value; call sites add
//    their own method context.
//
// Note:
//  - Each validator states what it assumes (e.g. ValidateDim assumes a valid rank).

package shape

// ValidateRank ensures 0 ≤ rank ≤ MaxRank.
// Errors: ErrInvalidRank.
// Complexity: O(1).
func ValidateRank(rank int) error {
	if rank < 0 || rank > MaxRank {
		return countErrorf(rank, MaxRank, ErrInvalidRank)
	}

	return nil
}

// ValidateExtents ensures every extent is non-negative.
// Errors: ErrInvalidShape on the first negative extent.
// Complexity: O(len(extents)).
func ValidateExtents(extents []int) error {
	for d, e := range extents {
		if e < 0 {
			return dimErrorf(d, e, ErrInvalidShape)
		}
	}

	return nil
}

// ValidateDim ensures 0 ≤ dim < rank.
// Errors: ErrDimensionOutOfRange.
// Complexity: O(1).
func ValidateDim(dim, rank int) error {
	if dim < 0 || dim >= rank {
		return dimErrorf(dim, rank, ErrDimensionOutOfRange)
	}

	return nil
}

// ValidateRange ensures [start,end) is a non-empty sub-range of [0,extent).
// Rejects start ≥ extent, end > extent and start ≥ end, plus negative start.
// Errors: ErrInvalidRange.
// Complexity: O(1).
func ValidateRange(dim int, r Range, extent int) error {
	if r.Start < 0 || r.Start >= extent || r.End > extent || r.Start >= r.End {
		return rangeErrorf(dim, r, extent)
	}

	return nil
}

// ValidateIndex ensures 0 ≤ index < extent for dimension dim.
// Errors: ErrOutOfBounds.
// Complexity: O(1).
func ValidateIndex(dim, index, extent int) error {
	if index < 0 || index >= extent {
		return dimErrorf(dim, index, ErrOutOfBounds)
	}

	return nil
}
