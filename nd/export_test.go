// SPDX-License-Identifier: MIT

package nd

// Test bridge (white-box) for private helpers.
//
// Purpose:
//   - Expose unexported option resolution and error formatting to nd_test only.
//   - Keep the production API unchanged: _test.go files never ship.

// OptionsSnapshot is a read-only copy of the resolved construction options.
type OptionsSnapshot[T any] struct {
	Fill    T
	HasFill bool
	Values  []T
	HasVals bool
}

// GatherOptionsSnapshot resolves opts the way NewWithOptions does.
func GatherOptionsSnapshot[T any](opts ...Option[T]) OptionsSnapshot[T] {
	o := gatherOptions(opts...)

	return OptionsSnapshot[T]{Fill: o.fill, HasFill: o.hasFill, Values: o.values, HasVals: o.hasVals}
}

var (
	ExportedJoinInts = joinInts
	ExportedNdErrorf = ndErrorf
)
