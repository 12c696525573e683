// SPDX-License-Identifier: MIT

// Package shape - descriptor transforms.
//
// Purpose:
//   - Implement the descriptor half of every view transform once, so View and
//     Array only add the base-offset delta to their buffer position.
//   - Validate fully before building the result; the receiver is a value and
//     is never modified.
//
// Returns convention:
//   - Transforms that move the origin return (Shape, delta, error) where delta
//     is the element offset to add to the caller's base position.
//
// Complexity quicksheet:
//   - All transforms: O(MaxRank) time, O(1) space.

package shape

// Subspan narrows dimension dim to [start, end).
//
// Implementation:
//   - Stage 1: validate dim < rank, then the range against extents[dim].
//   - Stage 2: copy the descriptor, replace the extent, compute the delta.
//
// Behavior highlights:
//   - Same rank, same strides; only extents[dim] changes.
//   - Narrowing a leading dimension keeps a contiguous descriptor contiguous.
//
// Errors:
//   - ErrDimensionOutOfRange when dim ∉ [0, rank).
//   - ErrInvalidRange when start ≥ extent, end > extent or start ≥ end.
//
// Returns:
//   - (narrowed, start*strides[dim], nil).
func (s Shape) Subspan(dim, start, end int) (Shape, int, error) {
	if err := ValidateDim(dim, s.rank); err != nil {
		return Shape{}, 0, err
	}
	r := Range{Start: start, End: end}
	if err := ValidateRange(dim, r, s.extents[dim]); err != nil {
		return Shape{}, 0, err
	}

	out := s
	out.extents[dim] = r.Len()

	return out, start * s.strides[dim], nil
}

// SubspanRanges applies one Range per leading dimension, in order.
// Trailing dimensions without a range are left untouched.
//
// Errors:
//   - ErrDimensionOutOfRange when more ranges than rank are supplied.
//   - ErrInvalidRange on the first invalid range (nothing is applied).
func (s Shape) SubspanRanges(ranges ...Range) (Shape, int, error) {
	if len(ranges) > s.rank {
		return Shape{}, 0, dimErrorf(len(ranges)-1, s.rank, ErrDimensionOutOfRange)
	}

	out := s
	var delta int
	for d, r := range ranges { // validate-and-accumulate into a local copy only
		if err := ValidateRange(d, r, s.extents[d]); err != nil {
			return Shape{}, 0, err
		}
		out.extents[d] = r.Len()
		delta += r.Start * s.strides[d]
	}

	return out, delta, nil
}

// Slice fixes dimension dim at index, reducing rank by one.
//
// Implementation:
//   - Stage 1: validate dim < rank and index < extents[dim].
//   - Stage 2: compact the remaining dimensions in order, zero the tail.
//
// Errors:
//   - ErrDimensionOutOfRange, ErrOutOfBounds.
//
// Returns:
//   - (rank-1 descriptor, index*strides[dim], nil).
func (s Shape) Slice(dim, index int) (Shape, int, error) {
	if err := ValidateDim(dim, s.rank); err != nil {
		return Shape{}, 0, err
	}
	if err := ValidateIndex(dim, index, s.extents[dim]); err != nil {
		return Shape{}, 0, err
	}

	var out Shape
	out.rank = s.rank - 1
	j := 0
	for i := 0; i < s.rank; i++ {
		if i == dim {
			continue // the fixed dimension disappears
		}
		out.extents[j] = s.extents[i]
		out.strides[j] = s.strides[i]
		j++
	}

	return out, index * s.strides[dim], nil
}

// Reshape reinterprets the logical element sequence under new extents.
//
// Implementation:
//   - Stage 1: validate target rank ≤ MaxRank and non-negative extents.
//   - Stage 2: require an identical element count.
//   - Stage 3: require canonical source strides.
//   - Stage 4: build a canonical descriptor for the target extents.
//
// Errors:
//   - ErrInvalidShape (rank, negative extent or element-count mismatch).
//   - ErrNotContiguous when the source strides are not canonical row-major.
//
// Notes:
//   - Non-canonical but regular stride patterns are rejected as well; only
//     exact row-major sources can be reinterpreted.
func (s Shape) Reshape(extents ...int) (Shape, error) {
	if len(extents) > MaxRank {
		return Shape{}, countErrorf(len(extents), MaxRank, ErrInvalidShape)
	}
	if err := ValidateExtents(extents); err != nil {
		return Shape{}, err
	}
	if want, got := s.Size(), ComputeSize(extents, len(extents)); want != got {
		return Shape{}, countErrorf(got, want, ErrInvalidShape)
	}
	if !s.IsContiguous() {
		return Shape{}, ErrNotContiguous
	}

	return New(extents...) // cannot fail: rank and extents validated above
}

// Flatten is Reshape(Size()).
// Errors: ErrNotContiguous for non-canonical sources.
func (s Shape) Flatten() (Shape, error) { return s.Reshape(s.Size()) }

// Transpose permutes extents and strides by axes: out[i] = in[axes[i]].
// No data moves; the result is generally non-contiguous.
// Errors: ErrInvalidPermutation.
func (s Shape) Transpose(axes ...int) (Shape, error) {
	if err := ValidatePermutation(axes, s.rank); err != nil {
		return Shape{}, err
	}

	var out Shape
	out.rank = s.rank
	for i, a := range axes {
		out.extents[i] = s.extents[a]
		out.strides[i] = s.strides[a]
	}

	return out, nil
}

// SwapLast exchanges the last two axes; identity for rank < 2.
func (s Shape) SwapLast() Shape {
	if s.rank < 2 {
		return s
	}
	out := s
	a, b := s.rank-2, s.rank-1
	out.extents[a], out.extents[b] = s.extents[b], s.extents[a]
	out.strides[a], out.strides[b] = s.strides[b], s.strides[a]

	return out
}

// Squeeze drops every extent-1 dimension, keeping order and original strides.
// An all-ones descriptor squeezes to rank 0. Never fails.
func (s Shape) Squeeze() Shape {
	var out Shape
	for i := 0; i < s.rank; i++ {
		if s.extents[i] == 1 {
			continue
		}
		out.extents[out.rank] = s.extents[i]
		out.strides[out.rank] = s.strides[i]
		out.rank++
	}

	return out
}
