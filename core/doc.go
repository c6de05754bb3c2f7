// Package core provides the immutable directed graph that the triangle
// counting engine reads from, and the Builder that produces it.
//
// A Graph G = (V, E) has dense vertex IDs 0..N-1 and stores, for every vertex,
// an ascending duplicate-free list of out-neighbors and of in-neighbors, both in
// compressed sparse row (CSR) form:
//
//	outOffsets: [0, 2, 3, 4]      vertex 0 → {1, 2}
//	outTargets: [1, 2, 2, 0]      vertex 1 → {2}
//	                              vertex 2 → {0}
//
// Invariants (enforced at construction, never re-checked by readers):
//
//   - v ∈ OutNeighbors(u)  ⇔  u ∈ InNeighbors(v)
//   - every neighbor list is strictly ascending and in [0, N)
//   - self-loops only when built WithLoops()
//
// Because nothing mutates a Graph after Build/FromCSR returns, it carries no
// locks; any number of goroutines may call its accessors concurrently.
//
// Construction:
//
//	b, _ := core.NewBuilder(3)
//	_ = b.AddEdge(0, 1)
//	_ = b.AddEdge(1, 2)
//	_ = b.AddEdge(2, 0)
//	g, _ := b.Build()
//
// Builder is safe for concurrent AddEdge calls; duplicates are merged by Build.
// FromCSR takes pre-sorted CSR arrays (as loaded from the binary format in
// package graphio) and only derives the in-adjacency.
//
// Errors:
//
//	ErrVertexOutOfRange  - edge endpoint >= N (without WithAutoGrow).
//	ErrLoopNotAllowed    - u→u without WithLoops.
//	ErrTooManyVertices   - N does not fit VertexID.
//	ErrNegativeCount     - negative N.
//	ErrUnsorted          - CSR run not strictly ascending.
//	ErrBadOffsets        - malformed CSR offsets.
//	ErrBuilt             - Builder used after Build.
package core
