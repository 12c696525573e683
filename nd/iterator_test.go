// SPDX-License-Identifier: MIT
package nd_test

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/ndspan/nd"
)

// TestIteratorColumnWindow walks a (3,5) array restricted to columns 0..2.
func TestIteratorColumnWindow(t *testing.T) {
	a := seq(t, 3, 5)
	win := must(a.Subspan(1, 0, 3))

	want := []int{1, 2, 3, 6, 7, 8, 11, 12, 13}
	require.Equal(t, want, walk(win))
	require.Equal(t, want, slices.Collect(win.Values()))

	// Backwards from End.
	var back []int
	it := win.End()
	for it.Prev() {
		x, err := it.Value()
		require.NoError(t, err)
		back = append(back, x)
	}
	slices.Reverse(back)
	require.Equal(t, want, back)
	require.Equal(t, -1, it.Pos())
}

func TestIteratorTransposed(t *testing.T) {
	a := seq(t, 2, 3)
	tr := a.T()

	require.Equal(t, []int{1, 4, 2, 5, 3, 6}, walk(tr))
	for i, x := range tr.All() {
		b := tr.Begin()
		it := b.Add(i)
		y, err := it.Value()
		require.NoError(t, err)
		require.Equal(t, x, y, "All and random access agree at %d", i)
	}
}

func TestIteratorWriteThrough(t *testing.T) {
	a := seq(t, 3, 4)
	cols := must(a.Subspan(1, 1, 3))

	for it := cols.Begin(); it.Valid(); it.Next() {
		p, err := it.Ptr()
		require.NoError(t, err)
		*p *= 10
	}
	require.Equal(t, []int{1, 20, 30, 4, 5, 60, 70, 8, 9, 100, 110, 12}, a.Data())

	it := cols.Begin()
	require.NoError(t, it.Set(0))
	require.Zero(t, mustAt(t, a.View(), 0, 1))

	for _, p := range a.T().Pointers() {
		*p = -*p
	}
	require.Equal(t, -1, a.Data()[0])
	require.Equal(t, -12, a.Data()[11])
}

func TestIteratorRandomAccess(t *testing.T) {
	a := seq(t, 4, 3)
	v := a.T() // (3,4), strided
	begin, end := v.Begin(), v.End()

	require.Equal(t, v.Size(), end.Distance(begin))
	require.True(t, begin.Less(end))
	require.False(t, end.Less(begin))
	last := begin.Add(v.Size())
	require.True(t, last.Equal(end))

	it := v.Begin()
	it.Advance(5)
	require.Equal(t, 5, it.Pos())
	x, err := it.Value()
	require.NoError(t, err)
	require.Equal(t, v.ToSlice()[5], x)

	y, err := it.At(-2)
	require.NoError(t, err)
	require.Equal(t, v.ToSlice()[3], y)
	require.Equal(t, 5, it.Pos(), "At does not move")

	it.Advance(-5)
	require.True(t, it.Equal(begin))

	// Next after a random jump continues the odometer correctly.
	it.Advance(3)
	require.True(t, it.Next())
	x, err = it.Value()
	require.NoError(t, err)
	require.Equal(t, v.ToSlice()[4], x)
}

func TestIteratorBounds(t *testing.T) {
	a := seq(t, 2, 2)
	it := a.End()

	_, err := it.Value()
	require.ErrorIs(t, err, nd.ErrOutOfBounds)
	_, err = it.Ptr()
	require.ErrorIs(t, err, nd.ErrOutOfBounds)
	require.ErrorIs(t, it.Set(1), nd.ErrOutOfBounds)
	_, err = it.At(-5)
	require.ErrorIs(t, err, nd.ErrOutOfBounds)
	require.ErrorContains(t, err, "Iterator.Value(")

	assert.False(t, it.Next())
	first := a.Begin()
	before := first.Add(-1)
	back := before.Add(1)
	assert.True(t, back.Equal(first), "out-of-range positions recover")
	x, err := back.Value()
	require.NoError(t, err)
	assert.Equal(t, 1, x)

	empty := nd.Empty[int]()
	eb := empty.Begin()
	assert.True(t, eb.Equal(empty.End()))
	assert.False(t, eb.Valid())
}

func TestSequencesStopEarly(t *testing.T) {
	a := seq(t, 3, 3)

	var got []int
	for _, x := range a.T().All() {
		if x > 5 {
			break
		}
		got = append(got, x)
	}
	require.Equal(t, []int{1, 4}, got)

	n := 0
	for x := range a.Values() {
		if x == 3 {
			break
		}
		n++
	}
	require.Equal(t, 2, n)
}
