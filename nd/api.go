// SPDX-License-Identifier: MIT
// Package nd - public API facades.
//
// Purpose:
//   - Thin, intention-revealing entry points for building and comparing arrays.
//   - Each facade delegates to newArray/fromSource; no duplicated logic.
//
// Determinism & Policy:
//   - Every copy walks the source in logical row-major order, so transposed or
//     sub-ranged views materialise in the order they iterate.
//   - Validation lives in package shape; facades only compose or forward.

package nd

import (
	"fmt"
	"iter"
	"slices"

	"github.com/katalvlaran/ndspan/shape"
)

// Source is anything that can be materialised into an Array:
// View[T], ConstView[T] and *Array[T] all satisfy it.
type Source[T any] interface {
	Extents() []int
	Values() iter.Seq[T]
}

// Number lists the element types Arange can count with.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// ---------- Constructors ----------

// Zeros returns a zero-filled array. Alias of New with an intention-revealing name.
func Zeros[T any](extents ...int) (*Array[T], error) {
	return newArray(ctxZeros, extents, options[T]{})
}

// Full returns an array with every element set to v.
// Errors: ErrInvalidRank, ErrInvalidShape.
func Full[T any](v T, extents ...int) (*Array[T], error) {
	return newArray(ctxFull, extents, options[T]{fill: v, hasFill: true})
}

// FromSlice copies src (row-major) into a new array with the given extents.
// src is never retained.
// Errors: ErrInvalidRank, ErrInvalidShape (including len(src) != element count).
func FromSlice[T any](src []T, extents ...int) (*Array[T], error) {
	return newArray(ctxFromSlice, extents, options[T]{values: src, hasVals: true})
}

// Arange returns an array holding start, start+1, ... in row-major order.
// Complexity: O(size).
func Arange[T Number](start T, extents ...int) (*Array[T], error) {
	a, err := newArray(ctxArange, extents, options[T]{})
	if err != nil {
		return nil, err
	}
	x := start
	for i := range a.data {
		a.data[i] = x
		x++
	}

	return a, nil
}

// ZerosLike returns a zero array with src's extents.
func ZerosLike[S, T any](src Source[S]) (*Array[T], error) {
	return newArray(ctxZerosLike, src.Extents(), options[T]{})
}

// ---------- Materialisation ----------

// FromView deep-copies src into a new contiguous array of the same extents.
// The result owns its buffer; later writes through src are not reflected.
// Errors: ErrInvalidRank when src has more than MaxRank dimensions.
func FromView[T any](src Source[T]) (*Array[T], error) {
	return fromSource(ownerPkg, ctxFromView, src, func(x T) T { return x })
}

// ConvertView is FromView with an element conversion S -> T.
func ConvertView[S, T any](src Source[S], conv func(S) T) (*Array[T], error) {
	return fromSource(ownerPkg, ctxConvertView, src, conv)
}

// fromSource is the single materialisation path.
//
// Implementation:
//   - Stage 1: allocate a canonical array with src's extents (validates rank).
//   - Stage 2: copy src.Values() in logical order, converting each element.
//
// A Source yielding a different element count than its extents describe is
// rejected with ErrInvalidShape.
func fromSource[S, T any](owner, method string, src Source[S], conv func(S) T) (*Array[T], error) {
	ext := src.Extents()
	s, err := shape.New(ext...)
	if err != nil {
		return nil, ndErrorf(owner, method, ext, err)
	}
	a := &Array[T]{shape: s, size: s.Size()}
	if a.size > 0 {
		a.data = make([]T, a.size)
	}
	i := 0
	for x := range src.Values() {
		if i == len(a.data) {
			return nil, ndErrorf(owner, method, ext,
				fmt.Errorf("source yields more than %d elements: %w", len(a.data), ErrInvalidShape))
		}
		a.data[i] = conv(x)
		i++
	}
	if i != len(a.data) {
		return nil, ndErrorf(owner, method, ext,
			fmt.Errorf("source yields %d of %d elements: %w", i, len(a.data), ErrInvalidShape))
	}

	return a, nil
}

// ---------- Comparison ----------

// EqualView reports equal extents and equal elements in logical order.
// Strides and buffer identity are ignored.
// Complexity: O(size).
func EqualView[T comparable](a, b Source[T]) bool {
	if !slices.Equal(a.Extents(), b.Extents()) {
		return false
	}
	next, stop := iter.Pull(b.Values())
	defer stop()
	for x := range a.Values() {
		y, ok := next()
		if !ok || x != y {
			return false
		}
	}
	_, more := next()

	return !more
}
