// SPDX-License-Identifier: MIT
// Package nd: error surface.
// The sentinels are owned by package shape; nd re-exports them so callers can
// match with errors.Is without importing shape. Every error returned by nd is
// wrapped exactly once with "<Owner>.<Method>(<args>)" context at the public
// boundary.

package nd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/katalvlaran/ndspan/shape"
)

// Sentinel aliases. They are the same values as in package shape, so
// errors.Is(err, nd.ErrOutOfBounds) and errors.Is(err, shape.ErrOutOfBounds)
// are interchangeable.
var (
	// ErrOutOfBounds: an index exceeds its dimension's extent.
	ErrOutOfBounds = shape.ErrOutOfBounds

	// ErrDimensionOutOfRange: a dimension number is not below the current rank.
	ErrDimensionOutOfRange = shape.ErrDimensionOutOfRange

	// ErrInvalidRange: a Subspan start/end pair is inverted or exceeds the extent.
	ErrInvalidRange = shape.ErrInvalidRange

	// ErrInvalidRank: a requested rank exceeds MaxRank.
	ErrInvalidRank = shape.ErrInvalidRank

	// ErrInvalidShape: negative extent, bad reshape target or buffer too short.
	ErrInvalidShape = shape.ErrInvalidShape

	// ErrNotContiguous: Reshape/Flatten on non-canonical strides.
	ErrNotContiguous = shape.ErrNotContiguous

	// ErrInvalidPermutation: a bad Transpose axis list.
	ErrInvalidPermutation = shape.ErrInvalidPermutation
)

// ---------- error context tags ----------

const (
	ownerView      = "View"      // receiver tag for View methods
	ownerConstView = "ConstView" // receiver tag for ConstView methods
	ownerArray     = "Array"     // receiver tag for Array methods
	ownerIterator  = "Iterator"  // receiver tag for Iterator methods
	ownerPkg       = "nd"        // tag for package-level constructors/facades
)

const (
	ctxAt            = "At"
	ctxSet           = "Set"
	ctxPtr           = "Ptr"
	ctxExtent        = "Extent"
	ctxStride        = "Stride"
	ctxSubspan       = "Subspan"
	ctxSubspanRanges = "SubspanRanges"
	ctxSlice         = "Slice"
	ctxReshape       = "Reshape"
	ctxTranspose     = "Transpose"
	ctxFlatten       = "Flatten"
	ctxViewOf        = "ViewOf"
	ctxViewStrides   = "ViewWithStrides"
	ctxNew           = "New"
	ctxFromView      = "FromView"
	ctxAssignView    = "AssignView"
	ctxTryApply      = "TryApply"
	ctxValue         = "Value"
	ctxFromSlice     = "FromSlice"
	ctxConvertView   = "ConvertView"
	ctxZeros         = "Zeros"
	ctxZerosLike     = "ZerosLike"
	ctxFull          = "Full"
	ctxArange        = "Arange"
)

// ndErrorf wraps a shape sentinel with owner, method and call arguments.
//
// Inputs:
//   - owner: ownerView/ownerArray/...
//   - method: ctx* tag
//   - args: integer call arguments echoed into the message
//   - err: error from package shape (already annotated with dim/value)
//
// Complexity:
//   - Time O(len(args)).
func ndErrorf(owner, method string, args []int, err error) error {
	return fmt.Errorf("%s.%s(%s): %w", owner, method, joinInts(args), err)
}

// joinInts renders 1,2,3 without fmt's brackets.
func joinInts(xs []int) string {
	var b strings.Builder
	for i, x := range xs {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(strconv.Itoa(x))
	}

	return b.String()
}

// rangeArgs flattens ranges into start,end pairs for error messages.
func rangeArgs(ranges []Range) []int {
	out := make([]int, 0, 2*len(ranges))
	for _, r := range ranges {
		out = append(out, r.Start, r.End)
	}

	return out
}
