// SPDX-License-Identifier: MIT
// Package nd_test contains test helpers.
//
// Purpose:
//   - Small deterministic fixtures (sequential arrays) shared by every test file.
//   - Keep error plumbing out of test bodies.

package nd_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/ndspan/nd"
)

// seq ALLOCATES an int array holding 1..size in row-major order or fails the test.
func seq(t testing.TB, extents ...int) *nd.Array[int] {
	t.Helper()
	a, err := nd.Arange(1, extents...)
	require.NoError(t, err)

	return a
}

// must unwraps a (value, error) pair so fallible transforms can be chained
// inline; a non-nil error panics and fails the running test.
func must[T any](x T, err error) T {
	if err != nil {
		panic(err)
	}

	return x
}

// mustAt reads one element or fails the test.
func mustAt[T any](t testing.TB, v nd.View[T], idx ...int) T {
	t.Helper()
	x, err := v.At(idx...)
	require.NoError(t, err)

	return x
}

// walk collects the logical order reported by a Begin/Next loop.
func walk[T any](v nd.View[T]) []T {
	var out []T
	for it := v.Begin(); it.Valid(); it.Next() {
		x, _ := it.Value()
		out = append(out, x)
	}

	return out
}
