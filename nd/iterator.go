// SPDX-License-Identifier: MIT

// Package nd - stride-aware iteration.
//
// Purpose:
//   - Visit a view's elements in logical row-major order (as defined by its
//     current extents and strides), which differs from memory order for
//     transposed or sub-ranged views.
//   - Offer both a random-access cursor (Iterator) and Go range-over-func
//     sequences (All, Values, Pointers).
//
// Cost model:
//   - Next/Prev step a cached coordinate odometer-style: amortised O(1).
//   - Advance/Add/At re-derive the coordinate from the flat position: O(rank).
//   - Contiguous views skip the coordinate machinery in All/Values/Pointers.

package nd

import (
	"fmt"
	"iter"

	"github.com/katalvlaran/ndspan/shape"
)

// Iterator is a random-access cursor over a View's logical element order.
// Positions range over [0, Size()]; Size() is the one-past-the-end position.
// Comparing iterators of different views is meaningless.
type Iterator[T any] struct {
	view  View[T]            // iterated region (descriptor copy)
	size  int                // cached view.Size()
	pos   int                // logical position; valid when 0 ≤ pos < size
	coord [shape.MaxRank]int // coordinate of pos when valid
	off   int                // physical offset of coord relative to view.base
	ext   [shape.MaxRank]int // cached extents
	str   [shape.MaxRank]int // cached strides
}

// Begin returns an iterator at logical position 0.
func (v View[T]) Begin() Iterator[T] { return v.iterAt(0) }

// End returns the one-past-the-end iterator (position Size()).
func (v View[T]) End() Iterator[T] { return v.iterAt(v.Size()) }

// iterAt builds an iterator positioned at pos.
func (v View[T]) iterAt(pos int) Iterator[T] {
	it := Iterator[T]{
		view: v,
		size: v.Size(),
		ext:  v.shape.ExtentArray(),
		str:  v.shape.StrideArray(),
	}
	it.seek(pos)

	return it
}

// seek re-derives the coordinate for p in O(rank).
func (it *Iterator[T]) seek(p int) {
	it.pos = p
	if !it.Valid() {
		it.coord = [shape.MaxRank]int{}
		it.off = 0
		return
	}
	it.coord = it.view.shape.Unravel(p)
	it.off = it.view.shape.Ravel(it.coord)
}

// Pos returns the logical position.
func (it *Iterator[T]) Pos() int { return it.pos }

// Valid reports whether the iterator addresses an element (0 ≤ Pos() < Size()).
func (it *Iterator[T]) Valid() bool { return it.pos >= 0 && it.pos < it.size }

// Next advances by one; returns Valid() afterwards.
// Complexity: amortised O(1).
func (it *Iterator[T]) Next() bool {
	if !it.Valid() || it.pos+1 >= it.size {
		it.seek(it.pos + 1)
		return it.Valid()
	}
	it.pos++
	rank := it.view.Rank()
	for d := rank - 1; d >= 0; d-- { // odometer: carry from the innermost dimension
		it.coord[d]++
		it.off += it.str[d]
		if it.coord[d] < it.ext[d] {
			break
		}
		it.off -= it.coord[d] * it.str[d]
		it.coord[d] = 0
	}

	return true
}

// Prev steps back by one; returns Valid() afterwards.
// Complexity: amortised O(1).
func (it *Iterator[T]) Prev() bool {
	if !it.Valid() || it.pos-1 < 0 {
		it.seek(it.pos - 1)
		return it.Valid()
	}
	it.pos--
	rank := it.view.Rank()
	for d := rank - 1; d >= 0; d-- { // odometer: borrow from the innermost dimension
		if it.coord[d] > 0 {
			it.coord[d]--
			it.off -= it.str[d]
			break
		}
		it.coord[d] = it.ext[d] - 1
		it.off += it.coord[d] * it.str[d]
	}

	return true
}

// Advance moves by n positions (negative n moves backwards).
// Complexity: O(rank).
func (it *Iterator[T]) Advance(n int) { it.seek(it.pos + n) }

// Add returns a copy moved by n positions; the receiver is unchanged.
func (it *Iterator[T]) Add(n int) Iterator[T] {
	c := *it
	c.seek(c.pos + n)

	return c
}

// Distance returns Pos()-other.Pos() (end - begin == Size()).
func (it *Iterator[T]) Distance(other Iterator[T]) int { return it.pos - other.pos }

// Equal reports identical positions.
func (it *Iterator[T]) Equal(other Iterator[T]) bool { return it.pos == other.pos }

// Less reports Pos() < other.Pos().
func (it *Iterator[T]) Less(other Iterator[T]) bool { return it.pos < other.pos }

// index returns the buffer position of the current element.
func (it *Iterator[T]) index(method string) (int, error) {
	if !it.Valid() {
		return 0, ndErrorf(ownerIterator, method, []int{it.pos},
			fmt.Errorf("position outside [0,%d): %w", it.size, ErrOutOfBounds))
	}

	return it.view.base + it.off, nil
}

// Value returns the current element.
// Errors: ErrOutOfBounds when !Valid().
func (it *Iterator[T]) Value() (T, error) {
	p, err := it.index(ctxValue)
	if err != nil {
		var zero T
		return zero, err
	}

	return it.view.data[p], nil
}

// Ptr returns a pointer to the current element (write-through).
// Errors: ErrOutOfBounds when !Valid().
func (it *Iterator[T]) Ptr() (*T, error) {
	p, err := it.index(ctxPtr)
	if err != nil {
		return nil, err
	}

	return &it.view.data[p], nil
}

// Set overwrites the current element.
// Errors: ErrOutOfBounds when !Valid().
func (it *Iterator[T]) Set(x T) error {
	p, err := it.index(ctxSet)
	if err != nil {
		return err
	}
	it.view.data[p] = x

	return nil
}

// At returns the element n positions away without moving (it[n]).
// Errors: ErrOutOfBounds when the target position is outside [0, Size()).
func (it *Iterator[T]) At(n int) (T, error) {
	tmp := it.Add(n)

	return tmp.Value()
}

// ---------- range-over-func sequences ----------

// All yields (logical position, element) pairs in row-major order.
func (v View[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		if v.Size() == 0 {
			return
		}
		if v.IsContiguous() { // fast path: logical order == memory order
			for i, x := range v.data[v.base : v.base+v.Size()] {
				if !yield(i, x) {
					return
				}
			}
			return
		}
		for it := v.Begin(); it.Valid(); it.Next() {
			if !yield(it.pos, it.view.data[it.view.base+it.off]) {
				return
			}
		}
	}
}

// Values yields elements in row-major order.
func (v View[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, x := range v.All() {
			if !yield(x) {
				return
			}
		}
	}
}

// Pointers yields (logical position, element pointer) pairs; writes through
// the pointer land in the borrowed buffer.
func (v View[T]) Pointers() iter.Seq2[int, *T] {
	return func(yield func(int, *T) bool) {
		if v.Size() == 0 {
			return
		}
		if v.IsContiguous() {
			n := v.Size()
			for i := 0; i < n; i++ {
				if !yield(i, &v.data[v.base+i]) {
					return
				}
			}
			return
		}
		for it := v.Begin(); it.Valid(); it.Next() {
			if !yield(it.pos, &it.view.data[it.view.base+it.off]) {
				return
			}
		}
	}
}

// ToSlice copies the elements into a new slice in row-major order.
// Complexity: O(Size()) time and memory.
func (v View[T]) ToSlice() []T {
	out := make([]T, 0, v.Size())
	for _, x := range v.All() {
		out = append(out, x)
	}

	return out
}
