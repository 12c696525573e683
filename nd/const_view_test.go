// SPDX-License-Identifier: MIT
package nd_test

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/ndspan/nd"
)

func TestConstViewMirrorsView(t *testing.T) {
	a := seq(t, 3, 4)
	c := a.ReadOnly()
	v := a.View()

	assert.Equal(t, v.Rank(), c.Rank())
	assert.Equal(t, v.Size(), c.Size())
	assert.Equal(t, v.Extents(), c.Extents())
	assert.Equal(t, v.Strides(), c.Strides())
	assert.True(t, c.IsContiguous())
	assert.Equal(t, nd.MaxRank, c.MaxRank())
	assert.True(t, c.Shape().Equal(v.Shape()))
	assert.True(t, nd.EqualView[int](c, v))

	e, err := c.Extent(1)
	require.NoError(t, err)
	assert.Equal(t, 4, e)
	_, err = c.Stride(5)
	require.ErrorIs(t, err, nd.ErrDimensionOutOfRange)
	require.ErrorContains(t, err, "ConstView.Stride(5)")

	_, err = c.At(0, 4)
	require.ErrorIs(t, err, nd.ErrOutOfBounds)
}

func TestConstViewTransforms(t *testing.T) {
	a := seq(t, 3, 4)
	c := a.ReadOnly()

	sub, err := c.Subspan(1, 1, 3)
	require.NoError(t, err)
	require.Equal(t, []int{2, 3, 6, 7, 10, 11}, sub.ToSlice())
	_, err = sub.Reshape(6)
	require.ErrorIs(t, err, nd.ErrNotContiguous)
	_, err = sub.Flatten()
	require.ErrorIs(t, err, nd.ErrNotContiguous)

	sr, err := c.SubspanRange(0, nd.Range{Start: 2, End: 3})
	require.NoError(t, err)
	require.Equal(t, []int{9, 10, 11, 12}, sr.ToSlice())

	srs, err := c.SubspanRanges(nd.Range{Start: 0, End: 1}, nd.Range{Start: 3, End: 4})
	require.NoError(t, err)
	require.Equal(t, []int{4}, srs.ToSlice())

	row, err := c.Slice(0, 2)
	require.NoError(t, err)
	require.Equal(t, []int{9, 10, 11, 12}, slices.Collect(row.Values()))

	r, err := c.Reshape(6, 2)
	require.NoError(t, err)
	x, err := r.At(5, 1)
	require.NoError(t, err)
	require.Equal(t, 12, x)

	flat, err := c.Flatten()
	require.NoError(t, err)
	require.Equal(t, a.ToSlice(), flat.ToSlice())

	tr, err := c.Transpose(1, 0)
	require.NoError(t, err)
	require.Equal(t, tr.ToSlice(), c.T().ToSlice())
	_, err = c.Transpose(1, 1)
	require.ErrorIs(t, err, nd.ErrInvalidPermutation)

	b := seq(t, 1, 4, 1)
	require.Equal(t, []int{4}, b.ReadOnly().Squeeze().Extents())

	for i, x := range c.All() {
		require.Equal(t, i+1, x)
	}
}

func TestConstIterator(t *testing.T) {
	a := seq(t, 2, 3)
	c := a.ReadOnly().T() // (3,2): 1 4 2 5 3 6

	var got []int
	for it := c.Begin(); it.Valid(); it.Next() {
		x, err := it.Value()
		require.NoError(t, err)
		got = append(got, x)
	}
	require.Equal(t, []int{1, 4, 2, 5, 3, 6}, got)

	begin, end := c.Begin(), c.End()
	require.Equal(t, 6, end.Distance(begin))
	require.True(t, begin.Less(end))

	it := begin.Add(2)
	require.Equal(t, 2, it.Pos())
	x, err := it.At(1)
	require.NoError(t, err)
	require.Equal(t, 5, x)

	it.Advance(4)
	require.True(t, it.Equal(end))
	_, err = it.Value()
	require.ErrorIs(t, err, nd.ErrOutOfBounds)
	require.True(t, it.Prev())
	x, err = it.Value()
	require.NoError(t, err)
	require.Equal(t, 6, x)
}
