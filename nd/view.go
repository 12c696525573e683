// SPDX-License-Identifier: MIT

// Package nd - non-owning strided views.
//
// Purpose:
//   - Describe a (possibly non-contiguous) region of an existing slice through
//     a shape.Shape plus a base offset.
//   - Provide bounds-checked element access and the view transforms
//     (Subspan, Slice, Reshape, Transpose, T, Flatten, Squeeze).
//
// Ownership:
//   - A View never owns or copies its buffer. The caller keeps the slice alive
//     and must not use a View of an Array after that Array was moved from or
//     reassigned with a different buffer.
//   - Views are values: copying one copies the descriptor only.
//
// Complexity quicksheet:
//   - At/Set/Ptr: O(len(idx)); transforms: O(MaxRank); no allocations.

package nd

import (
	"fmt"

	"github.com/katalvlaran/ndspan/shape"
)

// Range is a half-open interval [Start, End) along one dimension.
type Range = shape.Range

// View is a non-owning, bounds-checked N-dimensional window over a slice.
// The zero value is an empty rank-0 view.
type View[T any] struct {
	data  []T         // borrowed buffer (never reallocated by the view)
	base  int         // element offset of coordinate (0,...,0) inside data
	shape shape.Shape // extents/strides relative to base
}

// ViewOf wraps data as a canonical row-major view with the given extents.
//
// Implementation:
//   - Stage 1: build the descriptor (rank and extent validation).
//   - Stage 2: require len(data) to cover every addressable element.
//
// Errors:
//   - ErrInvalidRank when len(extents) > MaxRank.
//   - ErrInvalidShape on a negative extent or a buffer that is too short.
//
// Complexity:
//   - Time O(MaxRank), Space O(1).
func ViewOf[T any](data []T, extents ...int) (View[T], error) {
	s, err := shape.New(extents...)
	if err != nil {
		return View[T]{}, ndErrorf(ownerPkg, ctxViewOf, extents, err)
	}

	return viewOver(data, s, extents)
}

// ViewWithStrides wraps data with explicit extents and strides, e.g. for a
// buffer produced by foreign strided code.
// Errors: as ViewOf, plus ErrInvalidShape on mismatched lengths or negative strides.
func ViewWithStrides[T any](data []T, extents, strides []int) (View[T], error) {
	s, err := shape.FromStrides(extents, strides)
	if err != nil {
		return View[T]{}, ndErrorf(ownerPkg, ctxViewStrides, extents, err)
	}

	return viewOver(data, s, extents)
}

// viewOver checks that data covers the descriptor span.
func viewOver[T any](data []T, s shape.Shape, extents []int) (View[T], error) {
	if span := s.Span(); span > len(data) {
		return View[T]{}, ndErrorf(ownerPkg, ctxViewOf, extents,
			fmt.Errorf("buffer length %d below span %d: %w", len(data), span, ErrInvalidShape))
	}

	return View[T]{data: data, shape: s}, nil
}

// ---------- shape queries ----------

// Rank returns the number of active dimensions.
func (v View[T]) Rank() int { return v.shape.Rank() }

// Size returns the logical element count (0 for rank 0).
func (v View[T]) Size() int { return v.shape.Size() }

// MaxRank returns the compile-time dimension bound.
func (v View[T]) MaxRank() int { return MaxRank }

// Shape returns the descriptor by value.
func (v View[T]) Shape() shape.Shape { return v.shape }

// Extents returns a fresh slice of the active extents.
func (v View[T]) Extents() []int { return v.shape.Extents() }

// Strides returns a fresh slice of the active strides.
func (v View[T]) Strides() []int { return v.shape.Strides() }

// IsContiguous reports canonical row-major strides.
func (v View[T]) IsContiguous() bool { return v.shape.IsContiguous() }

// Extent returns the size of dimension dim.
// Errors: ErrDimensionOutOfRange.
func (v View[T]) Extent(dim int) (int, error) { return v.extent(ownerView, dim) }

// Stride returns the step of dimension dim.
// Errors: ErrDimensionOutOfRange.
func (v View[T]) Stride(dim int) (int, error) { return v.stride(ownerView, dim) }

func (v View[T]) extent(owner string, dim int) (int, error) {
	e, err := v.shape.Extent(dim)
	if err != nil {
		return 0, ndErrorf(owner, ctxExtent, []int{dim}, err)
	}

	return e, nil
}

func (v View[T]) stride(owner string, dim int) (int, error) {
	s, err := v.shape.Stride(dim)
	if err != nil {
		return 0, ndErrorf(owner, ctxStride, []int{dim}, err)
	}

	return s, nil
}

// ---------- element access ----------

// locate maps idx to a position inside data.
// The trailing length check only fires for empty views (nil buffers).
func (v View[T]) locate(idx []int) (int, error) {
	off, err := v.shape.Offset(idx...)
	if err != nil {
		return 0, err
	}
	p := v.base + off
	if p >= len(v.data) {
		return 0, fmt.Errorf("position %d beyond buffer length %d: %w", p, len(v.data), ErrOutOfBounds)
	}

	return p, nil
}

// At returns the element at idx.
//
// Behavior highlights:
//   - Fewer indices than Rank() address the first element of the trailing block.
//
// Errors:
//   - ErrOutOfBounds for any invalid index.
func (v View[T]) At(idx ...int) (T, error) { return v.at(ownerView, idx) }

func (v View[T]) at(owner string, idx []int) (T, error) {
	p, err := v.locate(idx)
	if err != nil {
		var zero T
		return zero, ndErrorf(owner, ctxAt, idx, err)
	}

	return v.data[p], nil
}

// Set stores x at idx; the write is visible through every view of the buffer.
// Errors: ErrOutOfBounds.
func (v View[T]) Set(x T, idx ...int) error { return v.set(ownerView, x, idx) }

func (v View[T]) set(owner string, x T, idx []int) error {
	p, err := v.locate(idx)
	if err != nil {
		return ndErrorf(owner, ctxSet, idx, err)
	}
	v.data[p] = x // write through to the borrowed buffer

	return nil
}

// Ptr returns a pointer to the element at idx.
// The pointer aliases the borrowed buffer and is subject to the same lifetime rules.
// Errors: ErrOutOfBounds.
func (v View[T]) Ptr(idx ...int) (*T, error) { return v.ptr(ownerView, idx) }

func (v View[T]) ptr(owner string, idx []int) (*T, error) {
	p, err := v.locate(idx)
	if err != nil {
		return nil, ndErrorf(owner, ctxPtr, idx, err)
	}

	return &v.data[p], nil
}

// ---------- transforms ----------

// derive builds a view over the same buffer with a new descriptor and moved origin.
// An empty descriptor addresses nothing, so its origin is pinned to 0.
func (v View[T]) derive(s shape.Shape, delta int) View[T] {
	if s.Rank() > 0 && s.Size() == 0 {
		return View[T]{data: v.data, shape: s}
	}

	return View[T]{data: v.data, base: v.base + delta, shape: s}
}

// Subspan narrows dimension dim to [start, end).
// Rank and strides are kept; the origin moves by start*stride(dim).
//
// Errors:
//   - ErrDimensionOutOfRange when dim ≥ Rank().
//   - ErrInvalidRange when start ≥ extent, end > extent or start ≥ end.
func (v View[T]) Subspan(dim, start, end int) (View[T], error) {
	return v.subspan(ownerView, dim, start, end)
}

// SubspanRange is Subspan with a Range argument.
func (v View[T]) SubspanRange(dim int, r Range) (View[T], error) {
	return v.subspan(ownerView, dim, r.Start, r.End)
}

func (v View[T]) subspan(owner string, dim, start, end int) (View[T], error) {
	s, delta, err := v.shape.Subspan(dim, start, end)
	if err != nil {
		return View[T]{}, ndErrorf(owner, ctxSubspan, []int{dim, start, end}, err)
	}

	return v.derive(s, delta), nil
}

// SubspanRanges narrows the leading len(ranges) dimensions, one Range each.
//
// Errors:
//   - ErrDimensionOutOfRange when len(ranges) > Rank().
//   - ErrInvalidRange on the first invalid range.
func (v View[T]) SubspanRanges(ranges ...Range) (View[T], error) {
	return v.subspanRanges(ownerView, ranges)
}

func (v View[T]) subspanRanges(owner string, ranges []Range) (View[T], error) {
	s, delta, err := v.shape.SubspanRanges(ranges...)
	if err != nil {
		return View[T]{}, ndErrorf(owner, ctxSubspanRanges, rangeArgs(ranges), err)
	}

	return v.derive(s, delta), nil
}

// Slice fixes dimension dim at index and returns a view of rank Rank()-1.
//
// Errors:
//   - ErrDimensionOutOfRange when dim ≥ Rank().
//   - ErrOutOfBounds when index ≥ Extent(dim).
func (v View[T]) Slice(dim, index int) (View[T], error) { return v.slice(ownerView, dim, index) }

func (v View[T]) slice(owner string, dim, index int) (View[T], error) {
	s, delta, err := v.shape.Slice(dim, index)
	if err != nil {
		return View[T]{}, ndErrorf(owner, ctxSlice, []int{dim, index}, err)
	}

	return v.derive(s, delta), nil
}

// Reshape reinterprets the view's elements under new extents with canonical strides.
//
// Errors:
//   - ErrInvalidShape when the target rank exceeds MaxRank, an extent is
//     negative or the element count differs.
//   - ErrNotContiguous when the view's strides are not canonical row-major.
func (v View[T]) Reshape(extents ...int) (View[T], error) {
	return v.reshape(ownerView, ctxReshape, extents)
}

// Flatten is Reshape(Size()).
// Errors: ErrNotContiguous.
func (v View[T]) Flatten() (View[T], error) {
	return v.reshape(ownerView, ctxFlatten, []int{v.Size()})
}

func (v View[T]) reshape(owner, method string, extents []int) (View[T], error) {
	s, err := v.shape.Reshape(extents...)
	if err != nil {
		return View[T]{}, ndErrorf(owner, method, extents, err)
	}

	return v.derive(s, 0), nil
}

// Transpose permutes dimensions: result dim i is source dim axes[i].
// No data moves.
// Errors: ErrInvalidPermutation.
func (v View[T]) Transpose(axes ...int) (View[T], error) { return v.transpose(ownerView, axes) }

func (v View[T]) transpose(owner string, axes []int) (View[T], error) {
	s, err := v.shape.Transpose(axes...)
	if err != nil {
		return View[T]{}, ndErrorf(owner, ctxTranspose, axes, err)
	}

	return v.derive(s, 0), nil
}

// T swaps the last two axes; identity for rank < 2.
func (v View[T]) T() View[T] { return v.derive(v.shape.SwapLast(), 0) }

// Squeeze drops every dimension of extent 1, keeping strides and order.
func (v View[T]) Squeeze() View[T] { return v.derive(v.shape.Squeeze(), 0) }

// ReadOnly returns a read-only facade over the same region.
func (v View[T]) ReadOnly() ConstView[T] { return ConstView[T]{v: v} }
