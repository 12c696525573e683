// SPDX-License-Identifier: MIT
package nd_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/ndspan/nd"
)

func TestGatherOptions(t *testing.T) {
	none := nd.GatherOptionsSnapshot[int]()
	assert.False(t, none.HasFill)
	assert.False(t, none.HasVals)

	fill := nd.GatherOptionsSnapshot(nd.WithValues([]int{1}), nd.WithFill(9))
	assert.True(t, fill.HasFill)
	assert.Equal(t, 9, fill.Fill)
	assert.False(t, fill.HasVals)
	assert.Nil(t, fill.Values)

	vals := nd.GatherOptionsSnapshot(nd.WithFill(9), nil, nd.WithValues([]int{1, 2}))
	assert.True(t, vals.HasVals)
	assert.Equal(t, []int{1, 2}, vals.Values)
	assert.False(t, vals.HasFill)
	assert.Zero(t, vals.Fill)
}

func TestErrorFormatting(t *testing.T) {
	assert.Equal(t, "", nd.ExportedJoinInts(nil))
	assert.Equal(t, "1,-2,3", nd.ExportedJoinInts([]int{1, -2, 3}))

	err := nd.ExportedNdErrorf("View", "Slice", []int{0, 9}, nd.ErrOutOfBounds)
	require.ErrorIs(t, err, nd.ErrOutOfBounds)
	require.EqualError(t, err, "View.Slice(0,9): "+nd.ErrOutOfBounds.Error())
}
