// SPDX-License-Identifier: MIT

// Package ndspan is a dynamic-rank N-dimensional array library.
//
// Rank is chosen at run time up to a compile-time bound (shape.MaxRank = 8),
// while extents and strides live in fixed-size inline arrays, so views and
// their transforms never allocate.
//
// Layout:
//
//	shape/  extent/stride descriptor, offset arithmetic, contiguity and
//	        permutation checks, descriptor-level view transforms
//	nd/     Array (owning), View and ConstView (borrowing), Iterator,
//	        facades (Zeros, Full, FromSlice, Arange, FromView, EqualView)
//
// Quick example:
//
//	a, _ := nd.Arange(1, 3, 4)     // 3×4, values 1..12
//	col, _ := a.Subspan(1, 1, 3)   // columns 1..2, no copy
//	for x := range col.Values() {  // 2 3 6 7 10 11
//		fmt.Print(x, " ")
//	}
//
//	go get github.com/katalvlaran/ndspan
package ndspan
