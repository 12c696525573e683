// SPDX-License-Identifier: MIT

// Package nd - read-only views.
//
// ConstView and ConstIterator expose the read surface of View/Iterator with
// no way to write through them. Every transform of a ConstView returns a
// ConstView, so read-only-ness is preserved across subspan/slice/reshape
// chains. Array.ReadOnly and View.ReadOnly are the entry points.

package nd

import (
	"iter"

	"github.com/katalvlaran/ndspan/shape"
)

// ConstView is a read-only View. The zero value is an empty rank-0 view.
type ConstView[T any] struct {
	v View[T] // wrapped view; never handed out mutable
}

// Rank returns the number of active dimensions.
func (c ConstView[T]) Rank() int { return c.v.Rank() }

// Size returns the logical element count.
func (c ConstView[T]) Size() int { return c.v.Size() }

// MaxRank returns the compile-time dimension bound.
func (c ConstView[T]) MaxRank() int { return MaxRank }

// Shape returns the descriptor by value.
func (c ConstView[T]) Shape() shape.Shape { return c.v.shape }

// Extents returns a fresh slice of the active extents.
func (c ConstView[T]) Extents() []int { return c.v.Extents() }

// Strides returns a fresh slice of the active strides.
func (c ConstView[T]) Strides() []int { return c.v.Strides() }

// IsContiguous reports canonical row-major strides.
func (c ConstView[T]) IsContiguous() bool { return c.v.IsContiguous() }

// Extent returns the size of dimension dim. Errors: ErrDimensionOutOfRange.
func (c ConstView[T]) Extent(dim int) (int, error) { return c.v.extent(ownerConstView, dim) }

// Stride returns the step of dimension dim. Errors: ErrDimensionOutOfRange.
func (c ConstView[T]) Stride(dim int) (int, error) { return c.v.stride(ownerConstView, dim) }

// At returns the element at idx. Errors: ErrOutOfBounds.
func (c ConstView[T]) At(idx ...int) (T, error) { return c.v.at(ownerConstView, idx) }

// Subspan mirrors View.Subspan.
func (c ConstView[T]) Subspan(dim, start, end int) (ConstView[T], error) {
	v, err := c.v.subspan(ownerConstView, dim, start, end)
	return ConstView[T]{v: v}, err
}

// SubspanRange mirrors View.SubspanRange.
func (c ConstView[T]) SubspanRange(dim int, r Range) (ConstView[T], error) {
	return c.Subspan(dim, r.Start, r.End)
}

// SubspanRanges mirrors View.SubspanRanges.
func (c ConstView[T]) SubspanRanges(ranges ...Range) (ConstView[T], error) {
	v, err := c.v.subspanRanges(ownerConstView, ranges)
	return ConstView[T]{v: v}, err
}

// Slice mirrors View.Slice.
func (c ConstView[T]) Slice(dim, index int) (ConstView[T], error) {
	v, err := c.v.slice(ownerConstView, dim, index)
	return ConstView[T]{v: v}, err
}

// Reshape mirrors View.Reshape.
func (c ConstView[T]) Reshape(extents ...int) (ConstView[T], error) {
	v, err := c.v.reshape(ownerConstView, ctxReshape, extents)
	return ConstView[T]{v: v}, err
}

// Flatten mirrors View.Flatten.
func (c ConstView[T]) Flatten() (ConstView[T], error) {
	v, err := c.v.reshape(ownerConstView, ctxFlatten, []int{c.v.Size()})
	return ConstView[T]{v: v}, err
}

// Transpose mirrors View.Transpose.
func (c ConstView[T]) Transpose(axes ...int) (ConstView[T], error) {
	v, err := c.v.transpose(ownerConstView, axes)
	return ConstView[T]{v: v}, err
}

// T mirrors View.T.
func (c ConstView[T]) T() ConstView[T] { return ConstView[T]{v: c.v.T()} }

// Squeeze mirrors View.Squeeze.
func (c ConstView[T]) Squeeze() ConstView[T] { return ConstView[T]{v: c.v.Squeeze()} }

// All yields (logical position, element) pairs in row-major order.
func (c ConstView[T]) All() iter.Seq2[int, T] { return c.v.All() }

// Values yields elements in row-major order.
func (c ConstView[T]) Values() iter.Seq[T] { return c.v.Values() }

// ToSlice copies the elements into a new slice in row-major order.
func (c ConstView[T]) ToSlice() []T { return c.v.ToSlice() }

// Begin returns a read-only iterator at position 0.
func (c ConstView[T]) Begin() ConstIterator[T] { return ConstIterator[T]{it: c.v.Begin()} }

// End returns the read-only one-past-the-end iterator.
func (c ConstView[T]) End() ConstIterator[T] { return ConstIterator[T]{it: c.v.End()} }

// ConstIterator is the read-only counterpart of Iterator.
type ConstIterator[T any] struct {
	it Iterator[T]
}

// Pos returns the logical position.
func (c *ConstIterator[T]) Pos() int { return c.it.Pos() }

// Valid reports whether the iterator addresses an element.
func (c *ConstIterator[T]) Valid() bool { return c.it.Valid() }

// Next advances by one; returns Valid() afterwards.
func (c *ConstIterator[T]) Next() bool { return c.it.Next() }

// Prev steps back by one; returns Valid() afterwards.
func (c *ConstIterator[T]) Prev() bool { return c.it.Prev() }

// Advance moves by n positions.
func (c *ConstIterator[T]) Advance(n int) { c.it.Advance(n) }

// Add returns a copy moved by n positions.
func (c *ConstIterator[T]) Add(n int) ConstIterator[T] { return ConstIterator[T]{it: c.it.Add(n)} }

// Distance returns Pos()-other.Pos().
func (c *ConstIterator[T]) Distance(other ConstIterator[T]) int { return c.it.Distance(other.it) }

// Equal reports identical positions.
func (c *ConstIterator[T]) Equal(other ConstIterator[T]) bool { return c.it.Equal(other.it) }

// Less reports Pos() < other.Pos().
func (c *ConstIterator[T]) Less(other ConstIterator[T]) bool { return c.it.Less(other.it) }

// Value returns the current element. Errors: ErrOutOfBounds.
func (c *ConstIterator[T]) Value() (T, error) { return c.it.Value() }

// At returns the element n positions away (it[n]). Errors: ErrOutOfBounds.
func (c *ConstIterator[T]) At(n int) (T, error) { return c.it.At(n) }
