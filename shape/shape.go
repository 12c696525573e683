// SPDX-License-Identifier: MIT

// Package shape - descriptor type & queries.
//
// Purpose:
//   - Hold extents/strides inline ([MaxRank]int) next to the active rank.
//   - Expose read-only queries with bounds-checked dimension access.
//   - Provide the two constructors: canonical (New) and explicit-stride (FromStrides).
//
// Complexity quicksheet:
//   - New/FromStrides: O(MaxRank); Extent/Stride/Rank: O(1); Size: O(rank);
//     Offset: O(len(idx)); Extents/Strides: O(rank) + one small allocation.

package shape

import "slices"

// MaxRank is the compile-time upper bound on the number of dimensions.
const MaxRank = 8

// Range is a half-open interval [Start, End) along one dimension.
type Range struct {
	Start int // first index kept (inclusive)
	End   int // one past the last index kept (exclusive)
}

// Len returns End-Start (may be negative for inverted ranges; validators reject those).
func (r Range) Len() int { return r.End - r.Start }

// Shape is a fixed-capacity extent/stride descriptor.
//   - extents[d] is the element count along dimension d, for d < rank.
//   - strides[d] is the element step along dimension d, for d < rank.
//   - slots at and beyond rank are always zero.
//
// The zero value is the rank-0 descriptor (size 0).
type Shape struct {
	extents [MaxRank]int // active prefix: extents[:rank]
	strides [MaxRank]int // active prefix: strides[:rank]
	rank    int          // 0 ≤ rank ≤ MaxRank
}

// New builds a canonical row-major descriptor for the given extents.
//
// Implementation:
//   - Stage 1: validate rank ≤ MaxRank and non-negative extents.
//   - Stage 2: copy extents inline and derive strides.
//
// Errors:
//   - ErrInvalidRank when len(extents) > MaxRank.
//   - ErrInvalidShape on a negative extent.
//
// Complexity:
//   - Time O(MaxRank), Space O(1).
func New(extents ...int) (Shape, error) {
	if err := ValidateRank(len(extents)); err != nil {
		return Shape{}, err
	}
	if err := ValidateExtents(extents); err != nil {
		return Shape{}, err
	}

	var s Shape
	s.rank = len(extents)
	copy(s.extents[:], extents)
	s.strides = ComputeStrides(s.extents[:], s.rank)

	return s, nil
}

// FromStrides builds a descriptor with explicit strides (no row-major derivation).
// Used by view transforms and by callers wrapping foreign strided memory.
//
// Errors:
//   - ErrInvalidRank when len(extents) > MaxRank.
//   - ErrInvalidShape when lengths differ or any extent/stride is negative.
func FromStrides(extents, strides []int) (Shape, error) {
	if err := ValidateRank(len(extents)); err != nil {
		return Shape{}, err
	}
	if len(strides) != len(extents) {
		return Shape{}, countErrorf(len(strides), len(extents), ErrInvalidShape)
	}
	if err := ValidateExtents(extents); err != nil {
		return Shape{}, err
	}
	for d, st := range strides {
		if st < 0 {
			return Shape{}, dimErrorf(d, st, ErrInvalidShape) // negative steps unsupported
		}
	}

	var s Shape
	s.rank = len(extents)
	copy(s.extents[:], extents)
	copy(s.strides[:], strides)

	return s, nil
}

// Rank returns the number of active dimensions.
func (s Shape) Rank() int { return s.rank }

// Size returns the product of active extents (0 for rank 0).
func (s Shape) Size() int { return ComputeSize(s.extents[:], s.rank) }

// Extent returns the extent of dimension dim.
// Errors: ErrDimensionOutOfRange when dim ∉ [0, rank).
func (s Shape) Extent(dim int) (int, error) {
	if err := ValidateDim(dim, s.rank); err != nil {
		return 0, err
	}

	return s.extents[dim], nil
}

// Stride returns the stride of dimension dim.
// Errors: ErrDimensionOutOfRange when dim ∉ [0, rank).
func (s Shape) Stride(dim int) (int, error) {
	if err := ValidateDim(dim, s.rank); err != nil {
		return 0, err
	}

	return s.strides[dim], nil
}

// Extents returns a fresh slice of the active extents.
func (s Shape) Extents() []int { return slices.Clone(s.extents[:s.rank]) }

// Strides returns a fresh slice of the active strides.
func (s Shape) Strides() []int { return slices.Clone(s.strides[:s.rank]) }

// ExtentArray returns the inline extents by value (no allocation).
func (s Shape) ExtentArray() [MaxRank]int { return s.extents }

// StrideArray returns the inline strides by value (no allocation).
func (s Shape) StrideArray() [MaxRank]int { return s.strides }

// IsContiguous reports canonical row-major layout (see IsContiguous).
func (s Shape) IsContiguous() bool { return IsContiguous(s.extents[:], s.strides[:], s.rank) }

// Offset bounds-checks idx and returns the linear offset (see ComputeOffset).
func (s Shape) Offset(idx ...int) (int, error) {
	return ComputeOffset(s.extents[:s.rank], s.strides[:s.rank], idx)
}

// Equal reports identical rank, extents and strides.
func (s Shape) Equal(o Shape) bool { return s == o }

// SameExtents reports identical rank and extents, ignoring strides.
func (s Shape) SameExtents(o Shape) bool {
	return s.rank == o.rank && s.extents == o.extents
}

// Unravel converts a logical row-major position into a coordinate.
// pos is taken modulo the leading extent; callers pass pos ∈ [0, Size()).
// Complexity: O(rank).
func (s Shape) Unravel(pos int) [MaxRank]int {
	var coord [MaxRank]int
	for d := s.rank - 1; d >= 0; d-- {
		e := s.extents[d]
		if e == 0 {
			return coord // empty descriptor: every coordinate stays 0
		}
		coord[d] = pos % e
		pos /= e
	}

	return coord
}

// Ravel converts a coordinate into a physical offset without bounds checks.
// Complexity: O(rank).
func (s Shape) Ravel(coord [MaxRank]int) int {
	var off int
	for d := 0; d < s.rank; d++ {
		off += coord[d] * s.strides[d]
	}

	return off
}

// Span returns the number of buffer elements the descriptor touches starting
// at offset 0: 1 + Σ (extent-1)*stride, or 0 when Size()==0.
// Complexity: O(rank).
func (s Shape) Span() int {
	if s.Size() == 0 {
		return 0
	}
	last := 0
	for d := 0; d < s.rank; d++ {
		last += (s.extents[d] - 1) * s.strides[d]
	}

	return last + 1
}
