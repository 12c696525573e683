// SPDX-License-Identifier: MIT
package nd_test

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/ndspan/nd"
)

func TestFacades(t *testing.T) {
	z, err := nd.Zeros[float32](2, 2)
	require.NoError(t, err)
	assert.Equal(t, []float32{0, 0, 0, 0}, z.Data())

	f, err := nd.Full("x", 3)
	require.NoError(t, err)
	assert.Equal(t, []string{"x", "x", "x"}, f.Data())

	_, err = nd.Full(1, -1)
	require.ErrorIs(t, err, nd.ErrInvalidShape)
	require.ErrorContains(t, err, "nd.Full(-1)")

	s, err := nd.FromSlice([]int{1, 2, 3, 4, 5, 6}, 3, 2)
	require.NoError(t, err)
	assert.Equal(t, 4, mustAt(t, s.View(), 1, 1))
	_, err = nd.FromSlice([]int{1, 2, 3}, 2, 2)
	require.ErrorIs(t, err, nd.ErrInvalidShape)

	ar, err := nd.Arange(0.5, 4)
	require.NoError(t, err)
	assert.Equal(t, []float64{0.5, 1.5, 2.5, 3.5}, ar.Data())

	u, err := nd.Arange[uint8](250, 2, 3)
	require.NoError(t, err)
	assert.Equal(t, []uint8{250, 251, 252, 253, 254, 255}, u.Data())

	_, err = nd.Arange(0, make([]int, nd.MaxRank+1)...)
	require.ErrorIs(t, err, nd.ErrInvalidRank)

	like, err := nd.ZerosLike[int, bool](s)
	require.NoError(t, err)
	assert.Equal(t, []int{3, 2}, like.Extents())
	assert.Equal(t, make([]bool, 6), like.Data())
}

func TestFromView(t *testing.T) {
	a := seq(t, 3, 4)
	cols := must(a.Subspan(1, 1, 3))

	b, err := nd.FromView[int](cols)
	require.NoError(t, err)
	require.Equal(t, []int{3, 2}, b.Extents())
	require.Equal(t, []int{2, 1}, b.Strides(), "result is canonical")
	require.Equal(t, []int{2, 3, 6, 7, 10, 11}, b.Data())

	require.NoError(t, a.Set(0, 0, 1))
	require.Equal(t, 2, b.Data()[0], "deep copy")

	c, err := nd.FromView[int](a.ReadOnly().T())
	require.NoError(t, err)
	require.Equal(t, []int{4, 3}, c.Extents())
	require.True(t, nd.EqualView[int](c, a.T()))

	empty, err := nd.FromView[int](nd.View[int]{})
	require.NoError(t, err)
	require.True(t, empty.IsEmpty())
}

func TestConvertView(t *testing.T) {
	a := seq(t, 2, 2)

	f, err := nd.ConvertView(a.T(), func(x int) float64 { return float64(x) / 2 })
	require.NoError(t, err)
	require.Equal(t, []float64{0.5, 1.5, 1, 2}, f.Data())

	s, err := nd.ConvertView[int](a, strconv.Itoa)
	require.NoError(t, err)
	require.Equal(t, []string{"1", "2", "3", "4"}, s.Data())
}

// liar reports fewer extents than the elements it yields.
type liar struct{ nd.View[int] }

func (l liar) Extents() []int { return []int{2} }

func TestFromViewRejectsInconsistentSource(t *testing.T) {
	a := seq(t, 3)
	_, err := nd.FromView[int](liar{a.View()})
	require.ErrorIs(t, err, nd.ErrInvalidShape)

	short := liar{must(a.Subspan(0, 0, 1))}
	_, err = nd.FromView[int](short)
	require.ErrorIs(t, err, nd.ErrInvalidShape)
}

func TestEqualView(t *testing.T) {
	a := seq(t, 2, 3)
	b := seq(t, 2, 3)
	require.True(t, nd.EqualView[int](a, b))

	r := must(a.Reshape(3, 2))
	require.False(t, nd.EqualView[int](a, r), "same elements, different extents")

	b.Data()[5] = 0
	require.False(t, nd.EqualView[int](a, b))

	x := must(nd.FromSlice([]int{1, 4, 2, 5, 3, 6}, 3, 2))
	require.True(t, nd.EqualView[int](x, a.T()), "strides ignored")

	require.True(t, nd.EqualView[int](nd.Empty[int](), nd.View[int]{}))
}
