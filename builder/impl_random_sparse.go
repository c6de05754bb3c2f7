// SPDX-License-Identifier: MIT
// Package: tricount/builder
//
// impl_random_sparse.go - implementation of RandomSparse(n, p) constructor.
//
// Canonical model:
//   - Erdős–Rényi-like generator: include each admissible edge independently with prob p.
//   - One-arc mode: iterate ordered pairs (i,j), i≠j, and add i→j on success.
//   - Bidirected mode: iterate unordered pairs i<j and add both arcs on success.
//
// Contract:
//   - n ≥ 1 (else ErrTooFewVertices).
//   - 0 ≤ p ≤ 1 (else ErrInvalidProbability).
//   - cfg.rng must be non-nil when 0 < p < 1 (else ErrNeedRandSource).
//   - p == 0 and p == 1 draw nothing from the RNG.
//
// Determinism:
//   - Stable trial order: i asc, then j asc.
//   - Deterministic outcomes for fixed seed/options due to fixed trial order.

package builder

import (
	"fmt"

	"github.com/katalvlaran/tricount/core"
)

// RandomSparse returns a Constructor that samples a G(n, p) digraph.
func RandomSparse(n int, p float64) Constructor {
	return func(b *core.Builder, cfg builderConfig) error {
		if err := validateMin(MethodRandomSparse, "n", n, 1); err != nil {
			return err
		}
		if err := validateProbability(MethodRandomSparse, p); err != nil {
			return err
		}
		if cfg.rng == nil && p > MinProbability && p < MaxProbability {
			return fmt.Errorf("%s: rng is required: %w", MethodRandomSparse, ErrNeedRandSource)
		}

		base, err := reserve(b, MethodRandomSparse, n)
		if err != nil {
			return err
		}

		hit := func() bool {
			switch p {
			case MinProbability:
				return false
			case MaxProbability:
				return true
			}
			return cfg.rng.Float64() < p
		}

		for i := 0; i < n; i++ {
			j := 0
			if cfg.bidirected {
				j = i + 1
			}
			for ; j < n; j++ {
				if i == j || !hit() {
					continue
				}
				if err := linkAt(b, cfg, MethodRandomSparse, base+core.VertexID(i), base+core.VertexID(j)); err != nil {
					return err
				}
			}
		}
		return nil
	}
}
