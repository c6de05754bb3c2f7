// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: VertexID, Graph, Builder options and sentinel errors.
// Policy:
//   - Graph is immutable once returned by Builder.Build or FromCSR.
//   - Every neighbor list is ascending and duplicate-free.
//   - Validation happens at construction; readers never re-check.

package core

import (
	"errors"
	"math"
)

// VertexID is a dense, zero-based vertex identifier in [0, N).
type VertexID uint32

// MaxVertices is the largest vertex count a Graph can address.
const MaxVertices = math.MaxUint32

// Sentinel errors for graph construction.
var (
	// ErrVertexOutOfRange indicates an edge endpoint >= the vertex count.
	ErrVertexOutOfRange = errors.New("core: vertex out of range")

	// ErrLoopNotAllowed indicates a self-loop was added while loops are disabled.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")

	// ErrTooManyVertices indicates the vertex count exceeds MaxVertices.
	ErrTooManyVertices = errors.New("core: too many vertices")

	// ErrNegativeCount indicates a negative vertex count was requested.
	ErrNegativeCount = errors.New("core: negative vertex count")

	// ErrUnsorted indicates a CSR neighbor list that is not strictly ascending.
	ErrUnsorted = errors.New("core: neighbor list not strictly ascending")

	// ErrBadOffsets indicates malformed CSR offsets.
	ErrBadOffsets = errors.New("core: malformed CSR offsets")

	// ErrBuilt indicates a mutation on a Builder after Build was called.
	ErrBuilt = errors.New("core: builder already built")
)

// Option configures a Builder (and FromCSR) before any edge is added.
type Option func(*options)

type options struct {
	allowLoops bool // keep u→u edges
	autoGrow   bool // grow the vertex count to cover every endpoint
}

// WithLoops keeps self-loops instead of rejecting them with ErrLoopNotAllowed.
// Self-loops never contribute to triangle counts.
func WithLoops() Option {
	return func(o *options) { o.allowLoops = true }
}

// WithAutoGrow lets AddEdge extend the vertex count to max(u,v)+1 instead of
// returning ErrVertexOutOfRange.
func WithAutoGrow() Option {
	return func(o *options) { o.autoGrow = true }
}

func newOptions(opts []Option) options {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// Graph is an immutable directed graph in compressed sparse row form.
//
// outOffsets[v]..outOffsets[v+1] indexes outTargets with the out-neighbors of v;
// inOffsets/inSources hold the transposed adjacency. Both are ascending per vertex.
// Graph carries no locks: nothing mutates it after construction, so any number of
// goroutines may read it concurrently.
type Graph struct {
	n int // vertex count
	m int // directed edge count

	outOffsets []int
	outTargets []VertexID
	inOffsets  []int
	inSources  []VertexID

	maxOut    int // largest out-degree
	maxIn     int // largest in-degree
	selfLoops int
}

// Stats is a point-in-time summary of a Graph.
type Stats struct {
	Vertices     int
	Edges        int
	MaxOutDegree int
	MaxInDegree  int
	SelfLoops    int
}
