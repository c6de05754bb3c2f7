// SPDX-License-Identifier: MIT
package converters_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/simple"
	"gonum.org/v1/gonum/graph/topo"

	"github.com/katalvlaran/tricount/builder"
	"github.com/katalvlaran/tricount/converters"
	"github.com/katalvlaran/tricount/core"
	"github.com/katalvlaran/tricount/triangle"
)

// threeCycles counts elementary directed cycles through exactly three nodes,
// tolerating either open or closed cycle encodings.
func threeCycles(g graph.Directed) int64 {
	var n int64
	for _, c := range topo.DirectedCyclesIn(g) {
		k := len(c)
		if k > 1 && c[0].ID() == c[k-1].ID() {
			k--
		}
		if k == 3 {
			n++
		}
	}
	return n
}

func TestToGonum_AgreesWithCycleEnumeration(t *testing.T) {
	fixtures := map[string]*core.Graph{
		"triangle":     builder.MustBuild(nil, builder.Cycle(3)),
		"wheel":        builder.MustBuild(nil, builder.Wheel(4)),
		"k5 bi":        builder.MustBuild([]builder.BuilderOption{builder.WithBidirected()}, builder.Complete(5)),
		"octahedron":   builder.MustBuild([]builder.BuilderOption{builder.WithBidirected()}, builder.PlatonicSolid(builder.Octahedron, false)),
		"tournament":   builder.MustBuild([]builder.BuilderOption{builder.WithSeed(11)}, builder.Tournament(7)),
		"random":       builder.MustBuild([]builder.BuilderOption{builder.WithSeed(3)}, builder.RandomSparse(12, 0.25)),
		"bipartite bi": builder.MustBuild([]builder.BuilderOption{builder.WithBidirected()}, builder.CompleteBipartite(3, 3)),
	}
	for name, g := range fixtures {
		t.Run(name, func(t *testing.T) {
			dg := converters.ToGonum(g)
			assert.Equal(t, g.VertexCount(), dg.Nodes().Len())
			assert.Equal(t, g.EdgeCount(), dg.Edges().Len())

			res, err := triangle.CountSerial(g)
			require.NoError(t, err)
			assert.Equal(t, res.Triangles, 3*threeCycles(dg))
		})
	}
}

func TestFromGonum_CompactsIDs(t *testing.T) {
	dg := simple.NewDirectedGraph()
	for _, id := range []int64{40, 7, 100, 3} {
		dg.AddNode(simple.Node(id))
	}
	dg.SetEdge(dg.NewEdge(simple.Node(7), simple.Node(40)))
	dg.SetEdge(dg.NewEdge(simple.Node(40), simple.Node(100)))
	dg.SetEdge(dg.NewEdge(simple.Node(100), simple.Node(7)))

	g, ids, err := converters.FromGonum(dg)
	require.NoError(t, err)
	assert.Equal(t, map[int64]core.VertexID{3: 0, 7: 1, 40: 2, 100: 3}, ids)
	assert.Equal(t, 4, g.VertexCount())
	assert.Equal(t, 3, g.EdgeCount())
	assert.True(t, g.HasEdge(1, 2))
	assert.True(t, g.HasEdge(2, 3))
	assert.True(t, g.HasEdge(3, 1))
	assert.Equal(t, 0, g.OutDegree(0))

	res, err := triangle.Count(g, triangle.Dynamic, 2)
	require.NoError(t, err)
	assert.Equal(t, int64(1), res.Distinct())
}

func TestGonum_RoundTrip(t *testing.T) {
	g := builder.MustBuild([]builder.BuilderOption{builder.WithSeed(8)},
		builder.RandomSparse(40, 0.1),
		builder.Empty(2),
	)
	back, ids, err := converters.FromGonum(converters.ToGonum(g))
	require.NoError(t, err)
	require.Len(t, ids, g.VertexCount())
	for id, v := range ids {
		assert.Equal(t, core.VertexID(id), v)
	}
	for v := 0; v < g.VertexCount(); v++ {
		require.Equal(t, g.OutNeighbors(core.VertexID(v)), back.OutNeighbors(core.VertexID(v)))
	}
}

func TestFromGonum_Nil(t *testing.T) {
	_, _, err := converters.FromGonum(nil)
	require.ErrorIs(t, err, converters.ErrNilGraph)

	g, ids, err := converters.FromGonum(simple.NewDirectedGraph())
	require.NoError(t, err)
	assert.Empty(t, ids)
	assert.Equal(t, 0, g.VertexCount())
}

// unsizedNodes hides the iterator length, as lazy gonum iterators do.
type unsizedNodes struct{ graph.Nodes }

func (unsizedNodes) Len() int { return -1 }

// unsizedGraph reports Len() == -1 from every Nodes and From iterator.
type unsizedGraph struct{ *simple.DirectedGraph }

func (g unsizedGraph) Nodes() graph.Nodes { return unsizedNodes{g.DirectedGraph.Nodes()} }

func (g unsizedGraph) From(id int64) graph.Nodes {
	return unsizedNodes{g.DirectedGraph.From(id)}
}

func TestFromGonum_UnknownIteratorLength(t *testing.T) {
	dg := simple.NewDirectedGraph()
	dg.SetEdge(dg.NewEdge(simple.Node(0), simple.Node(1)))
	dg.SetEdge(dg.NewEdge(simple.Node(1), simple.Node(2)))
	dg.SetEdge(dg.NewEdge(simple.Node(2), simple.Node(0)))
	dg.SetEdge(dg.NewEdge(simple.Node(0), simple.Node(2)))

	g, ids, err := converters.FromGonum(unsizedGraph{dg})
	require.NoError(t, err)
	assert.Len(t, ids, 3)
	assert.Equal(t, 4, g.EdgeCount())
	assert.Equal(t, []core.VertexID{1, 2}, g.OutNeighbors(0))

	res, err := triangle.CountSerial(g)
	require.NoError(t, err)
	assert.Equal(t, int64(1), res.Distinct())
}
