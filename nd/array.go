// SPDX-License-Identifier: MIT

// Package nd - owning N-dimensional array.
//
// Purpose:
//   - Own exactly one row-major buffer, allocated once at construction.
//   - Expose the View surface (access, transforms, iteration) by lending the
//     buffer to Views; add value semantics (Clone/CopyFrom), ownership
//     transfer (Move/MoveFrom), Fill and Apply.
//
// Ownership rules:
//   - One Array owns a buffer at a time. Move/MoveFrom hand the buffer over and
//     reset the source to the empty state.
//   - Views returned by an Array borrow its buffer. After Move, MoveFrom,
//     CopyFrom, AssignView or Reset on that Array they must not be used.
//
// Complexity quicksheet:
//   - New: O(size) zero-init; At/Set: O(rank); transforms: O(MaxRank);
//     Clone/CopyFrom/Fill/Apply: O(size); Move: O(1).

package nd

import (
	"fmt"
	"iter"

	"github.com/katalvlaran/ndspan/shape"
)

// Array is an owning, dynamic-rank, row-major N-dimensional array.
// The zero value is the empty array: rank 0, size 0, no buffer.
// An *Array must not be used concurrently without external synchronisation.
type Array[T any] struct {
	data  []T         // owned buffer, len == size (nil when size == 0)
	shape shape.Shape // always canonical row-major
	size  int         // cached element count
}

// New allocates a zero-filled array with the given extents.
// New[T]() yields the empty array; New[T](dims...) accepts a dimension collection.
//
// Implementation:
//   - Stage 1: validate rank ≤ MaxRank and extents ≥ 0.
//   - Stage 2: derive strides, compute size, allocate once.
//
// Errors:
//   - ErrInvalidRank, ErrInvalidShape.
//
// Complexity:
//   - Time O(size), Space O(size).
func New[T any](extents ...int) (*Array[T], error) {
	return newArray(ctxNew, extents, options[T]{})
}

// NewWithOptions allocates an array and initialises it from opts
// (WithFill, WithValues). Last option wins.
//
// Errors:
//   - ErrInvalidRank, ErrInvalidShape (including a WithValues length mismatch).
func NewWithOptions[T any](extents []int, opts ...Option[T]) (*Array[T], error) {
	return newArray(ctxNew, extents, gatherOptions(opts...))
}

// Empty returns a new empty array (rank 0, size 0, no allocation).
func Empty[T any]() *Array[T] { return &Array[T]{} }

// newArray is the single construction path.
func newArray[T any](method string, extents []int, o options[T]) (*Array[T], error) {
	s, err := shape.New(extents...)
	if err != nil {
		return nil, ndErrorf(ownerPkg, method, extents, err)
	}
	n := s.Size()
	if o.hasVals && len(o.values) != n {
		return nil, ndErrorf(ownerPkg, method, extents,
			fmt.Errorf("value count %d, element count %d: %w", len(o.values), n, ErrInvalidShape))
	}

	a := &Array[T]{shape: s, size: n}
	if n > 0 {
		a.data = make([]T, n) // the one allocation of this array's lifetime
	}
	switch {
	case o.hasVals:
		copy(a.data, o.values)
	case o.hasFill:
		a.Fill(o.fill)
	}

	return a, nil
}

// ---------- shape queries ----------

// Rank returns the number of dimensions.
func (a *Array[T]) Rank() int { return a.shape.Rank() }

// Size returns the element count (0 for the empty array).
func (a *Array[T]) Size() int { return a.size }

// MaxRank returns the compile-time dimension bound.
func (a *Array[T]) MaxRank() int { return MaxRank }

// Shape returns the descriptor by value.
func (a *Array[T]) Shape() shape.Shape { return a.shape }

// Extents returns a fresh slice of the extents.
func (a *Array[T]) Extents() []int { return a.shape.Extents() }

// Strides returns a fresh slice of the strides.
func (a *Array[T]) Strides() []int { return a.shape.Strides() }

// Extent returns the size of dimension dim. Errors: ErrDimensionOutOfRange.
func (a *Array[T]) Extent(dim int) (int, error) { return a.View().extent(ownerArray, dim) }

// Stride returns the step of dimension dim. Errors: ErrDimensionOutOfRange.
func (a *Array[T]) Stride(dim int) (int, error) { return a.View().stride(ownerArray, dim) }

// IsEmpty reports size == 0.
func (a *Array[T]) IsEmpty() bool { return a.size == 0 }

// Data exposes the owned buffer in row-major order (len == Size()).
// Writes are visible through the array and its views.
func (a *Array[T]) Data() []T { return a.data }

// ---------- element access ----------

// At returns the element at idx. Errors: ErrOutOfBounds.
func (a *Array[T]) At(idx ...int) (T, error) { return a.View().at(ownerArray, idx) }

// Set stores x at idx. Errors: ErrOutOfBounds.
func (a *Array[T]) Set(x T, idx ...int) error { return a.View().set(ownerArray, x, idx) }

// Ptr returns a pointer to the element at idx. Errors: ErrOutOfBounds.
func (a *Array[T]) Ptr(idx ...int) (*T, error) { return a.View().ptr(ownerArray, idx) }

// ---------- views ----------

// View lends the whole buffer as a mutable View.
func (a *Array[T]) View() View[T] { return View[T]{data: a.data, shape: a.shape} }

// ReadOnly lends the whole buffer as a ConstView.
func (a *Array[T]) ReadOnly() ConstView[T] { return a.View().ReadOnly() }

// Subspan mirrors View.Subspan over the owned buffer.
func (a *Array[T]) Subspan(dim, start, end int) (View[T], error) {
	return a.View().subspan(ownerArray, dim, start, end)
}

// SubspanRange mirrors View.SubspanRange over the owned buffer.
func (a *Array[T]) SubspanRange(dim int, r Range) (View[T], error) {
	return a.View().subspan(ownerArray, dim, r.Start, r.End)
}

// SubspanRanges mirrors View.SubspanRanges over the owned buffer.
func (a *Array[T]) SubspanRanges(ranges ...Range) (View[T], error) {
	return a.View().subspanRanges(ownerArray, ranges)
}

// Slice mirrors View.Slice over the owned buffer.
func (a *Array[T]) Slice(dim, index int) (View[T], error) {
	return a.View().slice(ownerArray, dim, index)
}

// Reshape mirrors View.Reshape. The array itself is always contiguous, so
// only ErrInvalidShape can occur.
func (a *Array[T]) Reshape(extents ...int) (View[T], error) {
	return a.View().reshape(ownerArray, ctxReshape, extents)
}

// Flatten returns a rank-1 view of the whole buffer.
func (a *Array[T]) Flatten() (View[T], error) {
	return a.View().reshape(ownerArray, ctxFlatten, []int{a.size})
}

// Transpose mirrors View.Transpose over the owned buffer.
func (a *Array[T]) Transpose(axes ...int) (View[T], error) {
	return a.View().transpose(ownerArray, axes)
}

// T swaps the last two axes (identity for rank < 2).
func (a *Array[T]) T() View[T] { return a.View().T() }

// Squeeze drops extent-1 dimensions.
func (a *Array[T]) Squeeze() View[T] { return a.View().Squeeze() }

// ---------- iteration ----------

// Begin returns an iterator at position 0.
func (a *Array[T]) Begin() Iterator[T] { return a.View().Begin() }

// End returns the one-past-the-end iterator.
func (a *Array[T]) End() Iterator[T] { return a.View().End() }

// All yields (position, element) pairs in storage order.
func (a *Array[T]) All() iter.Seq2[int, T] { return a.View().All() }

// Values yields elements in storage order.
func (a *Array[T]) Values() iter.Seq[T] { return a.View().Values() }

// Pointers yields (position, pointer) pairs for in-place updates.
func (a *Array[T]) Pointers() iter.Seq2[int, *T] { return a.View().Pointers() }

// ToSlice copies the buffer into a new slice.
func (a *Array[T]) ToSlice() []T { return a.View().ToSlice() }

// ---------- in-place updates ----------

// Fill overwrites every element with x.
// Complexity: O(size).
func (a *Array[T]) Fill(x T) {
	for i := range a.data {
		a.data[i] = x
	}
}

// Apply replaces every element e with f(e), in storage order.
// Complexity: O(size).
func (a *Array[T]) Apply(f func(T) T) {
	for i, e := range a.data {
		a.data[i] = f(e)
	}
}

// TryApply is Apply for fallible transforms.
//
// Behavior highlights:
//   - The first error aborts the pass and is returned wrapped with the
//     storage position; elements written before the error keep their new value.
func (a *Array[T]) TryApply(f func(T) (T, error)) error {
	for i, e := range a.data {
		x, err := f(e)
		if err != nil {
			return ndErrorf(ownerArray, ctxTryApply, []int{i}, err)
		}
		a.data[i] = x
	}

	return nil
}

// ---------- value semantics & ownership ----------

// Clone returns a deep copy with its own buffer.
// Cloning an empty array allocates nothing.
// Complexity: O(size).
func (a *Array[T]) Clone() *Array[T] {
	out := &Array[T]{shape: a.shape, size: a.size}
	if a.size > 0 {
		out.data = make([]T, a.size)
		copy(out.data, a.data)
	}

	return out
}

// CopyFrom makes a a deep copy of src (copy assignment).
// Self-assignment is a no-op; a nil src counts as the empty array.
// Views of a's previous buffer keep the old data.
func (a *Array[T]) CopyFrom(src *Array[T]) {
	switch {
	case a == src:
		return
	case src == nil:
		a.Reset()
		return
	}
	*a = *src.Clone()
}

// Move transfers the buffer to a new Array and resets a to the empty state.
// Complexity: O(1).
func (a *Array[T]) Move() *Array[T] {
	out := &Array[T]{data: a.data, shape: a.shape, size: a.size}
	a.Reset()

	return out
}

// MoveFrom takes ownership of src's buffer (move assignment) and resets src.
// Self-move is a no-op; a nil src counts as the empty array.
func (a *Array[T]) MoveFrom(src *Array[T]) {
	switch {
	case a == src:
		return
	case src == nil:
		a.Reset()
		return
	}
	*a = *src
	src.Reset()
}

// Reset drops the buffer and returns a to the empty state.
func (a *Array[T]) Reset() { *a = Array[T]{} }

// AssignView replaces a's contents with a deep copy of src's logical
// elements (span assignment). src may alias a's own buffer; a nil src
// empties a.
//
// Errors:
//   - ErrInvalidRank when src reports a rank above MaxRank.
func (a *Array[T]) AssignView(src Source[T]) error {
	if src == nil {
		a.Reset()
		return nil
	}
	tmp, err := fromSource(ownerArray, ctxAssignView, src, func(x T) T { return x })
	if err != nil {
		return err
	}
	a.MoveFrom(tmp)

	return nil
}
