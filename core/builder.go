// SPDX-License-Identifier: MIT
//
// File: builder.go
// Role: Mutable, concurrency-safe edge accumulator that freezes into a Graph.
// Policy:
//   - AddEdge validates endpoints eagerly (range, loops) and returns sentinels.
//   - Duplicate edges are merged at Build time (the Graph is a simple digraph).
//   - Build sorts once, O(M log M), and may be called exactly once.

package core

import (
	"fmt"
	"slices"
	"sync"
)

// edge is a buffered directed pair awaiting Build.
type edge struct {
	from, to VertexID
}

// Builder collects directed edges from any number of goroutines and
// produces an immutable Graph.
//
// mu guards every field; AddEdge holds it only for the append.
type Builder struct {
	mu    sync.Mutex
	opts  options
	n     int
	edges []edge
	built bool
}

// NewBuilder returns a Builder for a graph with n vertices.
// With WithAutoGrow, n is only the initial vertex count.
// Complexity: O(1).
func NewBuilder(n int, opts ...Option) (*Builder, error) {
	if n < 0 {
		return nil, fmt.Errorf("NewBuilder(%d): %w", n, ErrNegativeCount)
	}
	if n > MaxVertices {
		return nil, fmt.Errorf("NewBuilder(%d): %w", n, ErrTooManyVertices)
	}

	return &Builder{opts: newOptions(opts), n: n}, nil
}

// VertexCount returns the current vertex count.
func (b *Builder) VertexCount() int {
	b.mu.Lock()
	defer b.mu.Unlock()

	return b.n
}

// Grow raises the vertex count to at least n. Smaller values are a no-op.
// Growing is allowed without WithAutoGrow; it is how fixture builders
// reserve isolated vertices.
func (b *Builder) Grow(n int) error {
	if n > MaxVertices {
		return fmt.Errorf("Grow(%d): %w", n, ErrTooManyVertices)
	}
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.built {
		return ErrBuilt
	}
	if n > b.n {
		b.n = n
	}
	return nil
}

// AddEdge buffers the directed edge u→v.
//
// Errors:
//   - ErrLoopNotAllowed if u == v and WithLoops was not given.
//   - ErrVertexOutOfRange if an endpoint >= VertexCount and WithAutoGrow was not given.
//   - ErrBuilt after Build.
//
// Complexity: O(1) amortized.
func (b *Builder) AddEdge(u, v VertexID) error {
	if u == v && !b.opts.allowLoops {
		return fmt.Errorf("AddEdge(%d→%d): %w", u, v, ErrLoopNotAllowed)
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	if b.built {
		return ErrBuilt
	}
	hi := int(max(u, v))
	if hi >= b.n {
		if !b.opts.autoGrow {
			return fmt.Errorf("AddEdge(%d→%d) with n=%d: %w", u, v, b.n, ErrVertexOutOfRange)
		}
		if uint64(hi) >= MaxVertices {
			return fmt.Errorf("AddEdge(%d→%d): %w", u, v, ErrTooManyVertices)
		}
		b.n = hi + 1
	}
	b.edges = append(b.edges, edge{from: u, to: v})
	return nil
}

// AddEdges buffers every (pairs[i][0] → pairs[i][1]) edge, stopping at the first error.
func (b *Builder) AddEdges(pairs [][2]VertexID) error {
	for _, p := range pairs {
		if err := b.AddEdge(p[0], p[1]); err != nil {
			return err
		}
	}
	return nil
}

// Build sorts, deduplicates and freezes the buffered edges into a Graph.
// The Builder is unusable afterwards.
//
// Complexity: O(N + M log M) time, O(N + M) space.
func (b *Builder) Build() (*Graph, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.built {
		return nil, ErrBuilt
	}
	b.built = true

	edges := b.edges
	b.edges = nil
	slices.SortFunc(edges, func(x, y edge) int {
		if x.from != y.from {
			return cmpVertex(x.from, y.from)
		}
		return cmpVertex(x.to, y.to)
	})
	edges = slices.Compact(edges)

	offsets := make([]int, b.n+1)
	targets := make([]VertexID, len(edges))
	for i, e := range edges {
		offsets[e.from+1]++
		targets[i] = e.to
	}
	for v := 0; v < b.n; v++ {
		offsets[v+1] += offsets[v]
	}

	return assemble(b.n, offsets, targets), nil
}

func cmpVertex(a, b VertexID) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}
