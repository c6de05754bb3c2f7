// Package builder provides deterministic graph topologies for tests, examples
// and benchmarks of the triangle counter. Every topology is a Constructor
// that appends a block of fresh vertices and its edges to a core.Builder;
// BuildGraph runs constructors in order and freezes the result, so composing
// several constructors yields their disjoint union.
//
// The package offers the following key components:
//
//   - Configuration primitives:
//     – BuilderOption: a function that mutates builderConfig before use.
//     – WithSeed / WithRand: RNG for stochastic constructors.
//     – WithBidirected: emit both arcs of every undirected edge.
//   - Deterministic topologies: Empty, Path, Cycle, Complete, Star, Wheel,
//     CompleteBipartite, Grid, PlatonicSolid.
//   - Stochastic topologies (seeded): Tournament, RandomSparse, RandomRegular.
//   - ParseSpec: "wheel:100+random:50:0.1" style strings for CLIs.
//
// Known triangle content (bidirected, so each undirected triangle is two
// directed 3-cycles):
//
//	Complete(n)       C(n,3) triangles
//	Wheel(n), n ≥ 5   n-1 triangles
//	Cycle(3)          1 triangle
//	PlatonicSolid     Tetrahedron 4, Octahedron 8, Icosahedron 20
//	Star, Path, Grid, CompleteBipartite, Cube, Dodecahedron: none
//
// Guarantees:
//
//   - Determinism: same constructors, options and seed ⇒ identical graphs.
//   - Fast-fail on invalid option parameters via panics in option constructors.
//   - Constructors return sentinel errors (errors.Is) and never panic.
package builder
