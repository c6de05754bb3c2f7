// SPDX-License-Identifier: MIT
//
// File: graph.go
// Role: Read-only Graph accessors.
// Concurrency:
//   - No locks; the Graph is immutable.
//   - Returned neighbor slices alias the backing arrays and MUST NOT be modified.

package core

import (
	"fmt"
	"sort"
)

// VertexCount returns N.
// Complexity: O(1).
func (g *Graph) VertexCount() int { return g.n }

// EdgeCount returns M, the number of directed edges.
// Complexity: O(1).
func (g *Graph) EdgeCount() int { return g.m }

// OutDegree returns the number of out-neighbors of v.
// Complexity: O(1).
func (g *Graph) OutDegree(v VertexID) int {
	return g.outOffsets[v+1] - g.outOffsets[v]
}

// InDegree returns the number of in-neighbors of v.
// Complexity: O(1).
func (g *Graph) InDegree(v VertexID) int {
	return g.inOffsets[v+1] - g.inOffsets[v]
}

// OutNeighbor returns the i-th (0-based, ascending) out-neighbor of v.
// Panics if i is outside [0, OutDegree(v)).
func (g *Graph) OutNeighbor(v VertexID, i int) VertexID {
	return g.OutNeighbors(v)[i]
}

// InNeighbor returns the i-th (0-based, ascending) in-neighbor of v.
// Panics if i is outside [0, InDegree(v)).
func (g *Graph) InNeighbor(v VertexID, i int) VertexID {
	return g.InNeighbors(v)[i]
}

// OutNeighbors returns the ascending out-neighbors of v.
// The slice's capacity is clipped to its length, so an append by the caller
// reallocates instead of overwriting the next vertex's list.
// Complexity: O(1).
func (g *Graph) OutNeighbors(v VertexID) []VertexID {
	lo, hi := g.outOffsets[v], g.outOffsets[v+1]
	return g.outTargets[lo:hi:hi]
}

// InNeighbors returns the ascending in-neighbors of v.
// Complexity: O(1).
func (g *Graph) InNeighbors(v VertexID) []VertexID {
	lo, hi := g.inOffsets[v], g.inOffsets[v+1]
	return g.inSources[lo:hi:hi]
}

// HasEdge reports whether u→v exists.
// Out-of-range endpoints report false.
// Complexity: O(log OutDegree(u)).
func (g *Graph) HasEdge(u, v VertexID) bool {
	if int(u) >= g.n || int(v) >= g.n {
		return false
	}
	nbrs := g.OutNeighbors(u)
	i := sort.Search(len(nbrs), func(i int) bool { return nbrs[i] >= v })
	return i < len(nbrs) && nbrs[i] == v
}

// MaxOutDegree returns the largest out-degree in the graph (0 for an empty graph).
func (g *Graph) MaxOutDegree() int { return g.maxOut }

// MaxInDegree returns the largest in-degree in the graph.
func (g *Graph) MaxInDegree() int { return g.maxIn }

// Stats returns vertex/edge counts and degree extremes.
// Complexity: O(1); the values are computed at construction.
func (g *Graph) Stats() Stats {
	return Stats{
		Vertices:     g.n,
		Edges:        g.m,
		MaxOutDegree: g.maxOut,
		MaxInDegree:  g.maxIn,
		SelfLoops:    g.selfLoops,
	}
}

// Validate re-checks every structural invariant: offsets monotone, targets in
// range, lists strictly ascending and the in-lists being the exact transpose
// of the out-lists. Graphs returned by this package always pass; Validate
// exists for graphs assembled by hand in tests and for paranoid loaders.
// Complexity: O(N + M).
func (g *Graph) Validate() error {
	if err := checkCSR(g.n, g.outOffsets, g.outTargets); err != nil {
		return fmt.Errorf("out-adjacency: %w", err)
	}
	if err := checkCSR(g.n, g.inOffsets, g.inSources); err != nil {
		return fmt.Errorf("in-adjacency: %w", err)
	}
	if len(g.outTargets) != g.m || len(g.inSources) != g.m {
		return fmt.Errorf("edge count %d, out=%d in=%d: %w", g.m, len(g.outTargets), len(g.inSources), ErrBadOffsets)
	}

	// Every u→v must appear as u in In(v). Walking u ascending visits the
	// in-lists in the same order they are stored, so a per-vertex cursor suffices.
	cursor := make([]int, g.n)
	for u := 0; u < g.n; u++ {
		for _, v := range g.OutNeighbors(VertexID(u)) {
			in := g.InNeighbors(v)
			if cursor[v] >= len(in) || in[cursor[v]] != VertexID(u) {
				return fmt.Errorf("edge %d→%d missing from in-adjacency: %w", u, v, ErrBadOffsets)
			}
			cursor[v]++
		}
	}
	return nil
}

// checkCSR verifies offsets (len n+1, starting at 0, non-decreasing, ending at
// len(targets)) and that every per-vertex run is in range and strictly ascending.
func checkCSR(n int, offsets []int, targets []VertexID) error {
	if len(offsets) != n+1 || offsets[0] != 0 || offsets[n] != len(targets) {
		return ErrBadOffsets
	}
	for v := 0; v < n; v++ {
		lo, hi := offsets[v], offsets[v+1]
		if lo < 0 || lo > hi || hi > len(targets) {
			return fmt.Errorf("vertex %d: offsets [%d,%d) over %d targets: %w", v, lo, hi, len(targets), ErrBadOffsets)
		}
		for i := lo; i < hi; i++ {
			if int(targets[i]) >= n {
				return fmt.Errorf("vertex %d: neighbor %d: %w", v, targets[i], ErrVertexOutOfRange)
			}
			if i > lo && targets[i-1] >= targets[i] {
				return fmt.Errorf("vertex %d: %d after %d: %w", v, targets[i], targets[i-1], ErrUnsorted)
			}
		}
	}
	return nil
}
