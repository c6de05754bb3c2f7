// SPDX-License-Identifier: MIT
//
// File: csr.go
// Role: CSR intake (FromCSR, FromAdjacency) and in-adjacency derivation.

package core

import "fmt"

// FromCSR builds a Graph from out-adjacency in CSR form: the out-neighbors of v
// are targets[offsets[v]:offsets[v+1]]. Each run must already be strictly
// ascending; the in-adjacency is derived by transposition.
//
// The inputs are copied, so callers may reuse their buffers.
//
// Errors: ErrBadOffsets, ErrVertexOutOfRange, ErrUnsorted, ErrLoopNotAllowed
// (unless WithLoops), ErrTooManyVertices.
//
// Complexity: O(N + M).
func FromCSR(offsets []int, targets []VertexID, opts ...Option) (*Graph, error) {
	if len(offsets) == 0 {
		return nil, fmt.Errorf("FromCSR: empty offsets: %w", ErrBadOffsets)
	}
	n := len(offsets) - 1
	if n > MaxVertices {
		return nil, fmt.Errorf("FromCSR(n=%d): %w", n, ErrTooManyVertices)
	}
	if err := checkCSR(n, offsets, targets); err != nil {
		return nil, fmt.Errorf("FromCSR: %w", err)
	}

	o := newOptions(opts)
	if !o.allowLoops {
		for v := 0; v < n; v++ {
			for i := offsets[v]; i < offsets[v+1]; i++ {
				if targets[i] == VertexID(v) {
					return nil, fmt.Errorf("FromCSR: vertex %d: %w", v, ErrLoopNotAllowed)
				}
			}
		}
	}

	return assemble(n, append([]int(nil), offsets...), append([]VertexID(nil), targets...)), nil
}

// FromAdjacency builds a Graph from per-vertex out-neighbor lists in any order.
// Lists are sorted and deduplicated; len(adj) is the vertex count.
// Complexity: O(N + M log M).
func FromAdjacency(adj [][]VertexID, opts ...Option) (*Graph, error) {
	b, err := NewBuilder(len(adj), opts...)
	if err != nil {
		return nil, err
	}
	for u, nbrs := range adj {
		for _, v := range nbrs {
			if err = b.AddEdge(VertexID(u), v); err != nil {
				return nil, fmt.Errorf("FromAdjacency: %w", err)
			}
		}
	}
	return b.Build()
}

// assemble takes ownership of a validated out-CSR, derives the in-CSR and
// computes degree statistics.
//
// The transpose is a counting sort keyed by target. Sources are emitted while
// walking u ascending, so every in-list comes out ascending without a sort.
func assemble(n int, outOffsets []int, outTargets []VertexID) *Graph {
	m := len(outTargets)
	g := &Graph{
		n:          n,
		m:          m,
		outOffsets: outOffsets,
		outTargets: outTargets,
		inOffsets:  make([]int, n+1),
		inSources:  make([]VertexID, m),
	}

	for _, v := range outTargets {
		g.inOffsets[v+1]++
	}
	for v := 0; v < n; v++ {
		g.inOffsets[v+1] += g.inOffsets[v]
	}

	next := make([]int, n)
	copy(next, g.inOffsets[:n])
	for u := 0; u < n; u++ {
		for _, v := range outTargets[outOffsets[u]:outOffsets[u+1]] {
			g.inSources[next[v]] = VertexID(u)
			next[v]++
			if v == VertexID(u) {
				g.selfLoops++
			}
		}
	}

	for v := 0; v < n; v++ {
		g.maxOut = max(g.maxOut, outOffsets[v+1]-outOffsets[v])
		g.maxIn = max(g.maxIn, g.inOffsets[v+1]-g.inOffsets[v])
	}
	return g
}
