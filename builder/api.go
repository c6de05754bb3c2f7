// SPDX-License-Identifier: MIT
// Package: tricount/builder
//
// api.go - public entry point and factory index for the builder package.
//
// Design contract:
//   - One orchestrator: BuildGraph(copts, bopts, cons...). Creates a core.Builder,
//     resolves cfg, runs cons in order, freezes the result.
//   - Each constructor appends a disjoint block of fresh vertices; composing
//     constructors yields the disjoint union of their topologies.
//   - Determinism: same inputs/options/seed and constructor order ⇒ identical graphs.
//   - Constructors return sentinel errors; they never panic.

package builder

import (
	"fmt"

	"github.com/katalvlaran/tricount/core"
)

// Constructor appends one topology to b using the resolved builderConfig.
// Constructors MUST:
//   - Validate parameters before touching b and return sentinel errors.
//   - Reserve their vertices with reserve(b, n) and address them relative to
//     the returned base.
//   - Emit edges in a stable order for the same config.
type Constructor func(b *core.Builder, cfg builderConfig) error

// BuildGraph creates a core.Builder with options copts, resolves the builder
// configuration from bopts, applies all constructors in order and returns the
// frozen graph. Any constructor error is wrapped as "BuildGraph: %w".
//
// Errors: builder sentinels (ErrTooFewVertices, ErrInvalidProbability, ...)
// and core sentinels, both reachable via errors.Is.
func BuildGraph(copts []core.Option, bopts []BuilderOption, cons ...Constructor) (*core.Graph, error) {
	b, err := core.NewBuilder(0, copts...)
	if err != nil {
		return nil, fmt.Errorf("BuildGraph: %w", err)
	}

	cfg := newBuilderConfig(bopts...)

	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildGraph: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(b, cfg); err != nil {
			return nil, fmt.Errorf("BuildGraph: %w", err)
		}
	}

	return b.Build()
}

// MustBuild is BuildGraph for fixtures and benchmarks; it panics on error.
func MustBuild(bopts []BuilderOption, cons ...Constructor) *core.Graph {
	g, err := BuildGraph(nil, bopts, cons...)
	if err != nil {
		panic(err)
	}
	return g
}

// =============================================================================
// Topology factories - implemented in impl_*.go
// =============================================================================
//
// Undirected topologies emit each edge once, oriented from the lower to the
// higher local index (or along the ring for Cycle/Wheel). WithBidirected
// emits the reverse arc too, turning every undirected triangle into two
// directed 3-cycles.
//
// Empty(n)                      n isolated vertices (n ≥ 0).
// Path(n)                       P_n, i→i+1 (n ≥ 2).
// Cycle(n)                      C_n, i→(i+1) mod n (n ≥ 3).
// Complete(n)                   K_n (n ≥ 1).
// Star(n)                       hub 0 and leaves 1..n-1 (n ≥ 2).
// Wheel(n)                      rim C_{n-1} at 0..n-2, hub n-1 (n ≥ 4).
// CompleteBipartite(n1, n2)     left 0..n1-1 → right n1..n1+n2-1.
// Grid(rows, cols)              row-major, right and down neighbors.
// PlatonicSolid(name, center)   one of the five solids, optional hub.
// Tournament(n)                 each pair oriented by a fair coin; needs rng.
// RandomSparse(n, p)            Bernoulli(p) per admissible pair.
// RandomRegular(n, d)           undirected d-regular via stub matching; needs rng.
