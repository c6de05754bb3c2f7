// SPDX-License-Identifier: MIT
//
// File: gonum.go
// Role: Bridge between core.Graph and gonum's graph interfaces.
// Policy:
//   - FromGonum compacts node IDs ascending; the returned map is id → VertexID.
//   - ToGonum drops self-loops (simple.DirectedGraph panics on them).

package converters

import (
	"slices"

	"github.com/pkg/errors"
	"gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/simple"

	"github.com/katalvlaran/tricount/core"
)

// ErrNilGraph is returned when FromGonum receives a nil graph.
var ErrNilGraph = errors.New("converters: nil graph")

// FromGonum copies a gonum directed graph into a core.Graph.
// Node IDs are sorted and renumbered 0..N-1; ids[nodeID] gives the vertex.
func FromGonum(g graph.Directed, opts ...core.Option) (*core.Graph, map[int64]core.VertexID, error) {
	if g == nil {
		return nil, nil, ErrNilGraph
	}
	nodes := graph.NodesOf(g.Nodes())
	if uint64(len(nodes)) > core.MaxVertices {
		return nil, nil, errors.Wrapf(core.ErrTooManyVertices, "gonum graph has %d nodes", len(nodes))
	}
	order := make([]int64, len(nodes))
	for i, n := range nodes {
		order[i] = n.ID()
	}
	slices.Sort(order)

	ids := make(map[int64]core.VertexID, len(order))
	for i, id := range order {
		ids[id] = core.VertexID(i)
	}

	adj := make([][]core.VertexID, len(order))
	for i, id := range order {
		succ := g.From(id)
		row := make([]core.VertexID, 0, max(succ.Len(), 0))
		for succ.Next() {
			row = append(row, ids[succ.Node().ID()])
		}
		slices.Sort(row)
		adj[i] = slices.Compact(row)
	}

	out, err := core.FromAdjacency(adj, opts...)
	if err != nil {
		return nil, nil, errors.Wrap(err, "FromGonum")
	}
	return out, ids, nil
}

// ToGonum returns a gonum simple.DirectedGraph with one node per vertex
// (node ID = VertexID) and one edge per arc, self-loops omitted.
func ToGonum(g *core.Graph) *simple.DirectedGraph {
	dg := simple.NewDirectedGraph()
	for v := 0; v < g.VertexCount(); v++ {
		dg.AddNode(simple.Node(v))
	}
	for u := 0; u < g.VertexCount(); u++ {
		for _, v := range g.OutNeighbors(core.VertexID(u)) {
			if int(v) == u {
				continue
			}
			dg.SetEdge(dg.NewEdge(simple.Node(u), simple.Node(v)))
		}
	}
	return dg
}
