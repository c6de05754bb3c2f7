// SPDX-License-Identifier: MIT
package core_test

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/tricount/core"
)

// TestBuilder_Errors verifies that invalid construction is rejected with sentinels.
func TestBuilder_Errors(t *testing.T) {
	_, err := core.NewBuilder(-1)
	require.ErrorIs(t, err, core.ErrNegativeCount)

	b, err := core.NewBuilder(3)
	require.NoError(t, err)

	require.ErrorIs(t, b.AddEdge(1, 1), core.ErrLoopNotAllowed)
	require.ErrorIs(t, b.AddEdge(0, 3), core.ErrVertexOutOfRange)
	require.ErrorIs(t, b.AddEdge(7, 0), core.ErrVertexOutOfRange)

	require.NoError(t, b.AddEdge(0, 1))
	_, err = b.Build()
	require.NoError(t, err)

	require.ErrorIs(t, b.AddEdge(1, 2), core.ErrBuilt)
	_, err = b.Build()
	require.ErrorIs(t, err, core.ErrBuilt)
	require.ErrorIs(t, b.Grow(10), core.ErrBuilt)
}

// TestBuilder_SortsAndDedups checks that Build yields ascending, unique lists
// whatever order edges arrive in.
func TestBuilder_SortsAndDedups(t *testing.T) {
	b, err := core.NewBuilder(4)
	require.NoError(t, err)
	require.NoError(t, b.AddEdges([][2]core.VertexID{
		{0, 3}, {0, 1}, {0, 2}, {0, 1}, // duplicate 0→1
		{3, 0}, {2, 0}, {1, 0},
		{2, 3}, {2, 3},
	}))

	g, err := b.Build()
	require.NoError(t, err)
	require.NoError(t, g.Validate())

	assert.Equal(t, 4, g.VertexCount())
	assert.Equal(t, 7, g.EdgeCount())
	assert.Equal(t, []core.VertexID{1, 2, 3}, g.OutNeighbors(0))
	assert.Equal(t, []core.VertexID{0, 3}, g.OutNeighbors(2))
	assert.Equal(t, []core.VertexID{1, 2, 3}, g.InNeighbors(0))
	assert.Equal(t, []core.VertexID{0, 2}, g.InNeighbors(3))
	assert.Equal(t, 3, g.MaxOutDegree())
	assert.Equal(t, 3, g.MaxInDegree())
}

// TestBuilder_AutoGrowAndLoops covers the two construction options.
func TestBuilder_AutoGrowAndLoops(t *testing.T) {
	b, err := core.NewBuilder(0, core.WithAutoGrow(), core.WithLoops())
	require.NoError(t, err)
	require.NoError(t, b.AddEdge(5, 2))
	require.NoError(t, b.AddEdge(2, 2))
	assert.Equal(t, 6, b.VertexCount())

	require.NoError(t, b.Grow(3)) // smaller: no-op
	assert.Equal(t, 6, b.VertexCount())
	require.NoError(t, b.Grow(8))

	g, err := b.Build()
	require.NoError(t, err)
	assert.Equal(t, 8, g.VertexCount())
	assert.Equal(t, 2, g.EdgeCount())
	assert.Equal(t, 1, g.Stats().SelfLoops)
	assert.True(t, g.HasEdge(2, 2))
	assert.True(t, g.HasEdge(5, 2))
	assert.False(t, g.HasEdge(2, 5))
	assert.False(t, g.HasEdge(9, 0))
}

// TestBuilder_AutoGrowCeiling rejects an endpoint that would push N past MaxVertices.
func TestBuilder_AutoGrowCeiling(t *testing.T) {
	b, err := core.NewBuilder(0, core.WithAutoGrow())
	require.NoError(t, err)
	err = b.AddEdge(math.MaxUint32, 1)
	require.ErrorIs(t, err, core.ErrTooManyVertices)
	err = b.AddEdge(0, math.MaxUint32)
	require.ErrorIs(t, err, core.ErrTooManyVertices)
	assert.Equal(t, 0, b.VertexCount())

	require.NoError(t, b.AddEdge(0, 1))
	g, err := b.Build()
	require.NoError(t, err)
	assert.Equal(t, 2, g.VertexCount())
}

// TestBuilder_Empty builds graphs without edges, including N = 0.
func TestBuilder_Empty(t *testing.T) {
	for _, n := range []int{0, 1, 4} {
		b, err := core.NewBuilder(n)
		require.NoError(t, err)
		g, err := b.Build()
		require.NoError(t, err)
		require.NoError(t, g.Validate())
		assert.Equal(t, n, g.VertexCount())
		assert.Zero(t, g.EdgeCount())
		assert.Zero(t, g.MaxOutDegree())
		for v := 0; v < n; v++ {
			assert.Zero(t, g.OutDegree(core.VertexID(v)))
			assert.Zero(t, g.InDegree(core.VertexID(v)))
		}
	}
}

// TestFromCSR validates CSR intake and rejects every malformed shape.
func TestFromCSR(t *testing.T) {
	g, err := core.FromCSR([]int{0, 2, 3, 4}, []core.VertexID{1, 2, 2, 0})
	require.NoError(t, err)
	require.NoError(t, g.Validate())
	assert.Equal(t, []core.VertexID{2}, g.InNeighbors(0))
	assert.Equal(t, []core.VertexID{0, 1}, g.InNeighbors(2))
	assert.Equal(t, core.VertexID(2), g.OutNeighbor(0, 1))
	assert.Equal(t, core.VertexID(1), g.InNeighbor(2, 1))

	cases := []struct {
		name    string
		offsets []int
		targets []core.VertexID
		want    error
	}{
		{"no offsets", nil, nil, core.ErrBadOffsets},
		{"offset total", []int{0, 1, 3}, []core.VertexID{1, 0}, core.ErrBadOffsets},
		{"decreasing", []int{0, 2, 1, 3}, []core.VertexID{1, 2, 0}, core.ErrBadOffsets},
		{"middle offset past targets", []int{0, 5, 2}, []core.VertexID{0, 1}, core.ErrBadOffsets},
		{"range", []int{0, 1, 1}, []core.VertexID{2}, core.ErrVertexOutOfRange},
		{"unsorted", []int{0, 2, 2, 2}, []core.VertexID{2, 1}, core.ErrUnsorted},
		{"duplicate", []int{0, 2, 2, 2}, []core.VertexID{1, 1}, core.ErrUnsorted},
		{"loop", []int{0, 1, 1}, []core.VertexID{0}, core.ErrLoopNotAllowed},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := core.FromCSR(tc.offsets, tc.targets)
			require.True(t, errors.Is(err, tc.want), "got %v, want %v", err, tc.want)
		})
	}
}

// TestFromCSR_CopiesInput ensures caller buffers can be reused after the call.
func TestFromCSR_CopiesInput(t *testing.T) {
	offsets := []int{0, 1, 2}
	targets := []core.VertexID{1, 0}
	g, err := core.FromCSR(offsets, targets)
	require.NoError(t, err)

	targets[0], offsets[1] = 0, 0
	assert.Equal(t, []core.VertexID{1}, g.OutNeighbors(0))
	require.NoError(t, g.Validate())
}

// TestFromAdjacency normalizes unsorted lists.
func TestFromAdjacency(t *testing.T) {
	g, err := core.FromAdjacency([][]core.VertexID{{2, 1, 2}, {}, {0}})
	require.NoError(t, err)
	assert.Equal(t, 3, g.EdgeCount())
	assert.Equal(t, []core.VertexID{1, 2}, g.OutNeighbors(0))

	_, err = core.FromAdjacency([][]core.VertexID{{1}, {5}})
	require.ErrorIs(t, err, core.ErrVertexOutOfRange)
}

// TestNeighborSlicesAreClipped checks that appending to a returned neighbor
// slice cannot clobber the adjacent vertex's list.
func TestNeighborSlicesAreClipped(t *testing.T) {
	g, err := core.FromAdjacency([][]core.VertexID{{1}, {0}})
	require.NoError(t, err)

	out := g.OutNeighbors(0)
	_ = append(out, 9)
	assert.Equal(t, []core.VertexID{0}, g.OutNeighbors(1))
	require.NoError(t, g.Validate())
}
