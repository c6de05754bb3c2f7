// SPDX-License-Identifier: MIT
// Package: tricount/builder
//
// impl_tournament.go - implementation of Tournament(n) constructor.
//
// Contract:
//   • n ≥ 1 (else ErrTooFewVertices); cfg.rng non-nil (else ErrNeedRandSource).
//   • For every pair i<j (i asc, j asc) one fair coin decides i→j or j→i.
//   • WithBidirected is ignored: a tournament has exactly one arc per pair.
//
// A tournament on n vertices has C(n,2) edges; its number of directed
// 3-cycles is C(n,3) - Σ_v C(out(v), 2).

package builder

import (
	"fmt"

	"github.com/katalvlaran/tricount/core"
)

// Tournament returns a Constructor that builds a random tournament.
func Tournament(n int) Constructor {
	return func(b *core.Builder, cfg builderConfig) error {
		if err := validateMin(MethodTournament, "n", n, 1); err != nil {
			return err
		}
		if cfg.rng == nil {
			return fmt.Errorf("%s: rng is required: %w", MethodTournament, ErrNeedRandSource)
		}
		base, err := reserve(b, MethodTournament, n)
		if err != nil {
			return err
		}

		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				u, v := base+core.VertexID(i), base+core.VertexID(j)
				if cfg.rng.Intn(2) == 1 {
					u, v = v, u
				}
				if err := b.AddEdge(u, v); err != nil {
					return fmt.Errorf("%s: AddEdge(%d→%d): %w", MethodTournament, u, v, err)
				}
			}
		}
		return nil
	}
}
