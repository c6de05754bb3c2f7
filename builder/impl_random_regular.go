// SPDX-License-Identifier: MIT
// Package: tricount/builder
//
// impl_random_regular.go - implementation of RandomRegular(n, d) constructor.
//
// Canonical model:
//   • Undirected d-regular simple graph via stub-matching with bounded retries,
//     rendered as a symmetric digraph (both arcs of every edge).
//   • Pairs stubs after a deterministic shuffle (per seed). A pairing is
//     validated (no loops, no repeated pair) before touching the Builder;
//     an invalid pairing triggers a reshuffle up to maxStubMatchingAttempts.
//
// Contract:
//   • n ≥ 1; 0 ≤ d < n; n·d even (else ErrTooFewVertices).
//   • cfg.rng must be non-nil (else ErrNeedRandSource).
//   • Every vertex ends with out-degree = in-degree = d.
//
// Complexity:
//   • Per attempt O(n·d) time and O(n·d) temporary space for stubs.

package builder

import (
	"fmt"

	"github.com/katalvlaran/tricount/core"
)

// maxStubMatchingAttempts bounds reshuffles. A uniform pairing is simple with
// probability about exp(-(d²-1)/4), so small d succeed within a few tries.
const maxStubMatchingAttempts = 100

// RandomRegular returns a Constructor that builds a random d-regular graph.
func RandomRegular(n, d int) Constructor {
	return func(b *core.Builder, cfg builderConfig) error {
		if err := validateMin(MethodRandomRegular, "n", n, 1); err != nil {
			return err
		}
		if d < 0 || d >= n {
			return fmt.Errorf("%s: degree must be in [0,%d), got %d: %w",
				MethodRandomRegular, n, d, ErrTooFewVertices)
		}
		if (n*d)%2 != 0 {
			return fmt.Errorf("%s: n*d must be even (n=%d, d=%d): %w",
				MethodRandomRegular, n, d, ErrTooFewVertices)
		}
		if cfg.rng == nil {
			return fmt.Errorf("%s: rng is required: %w", MethodRandomRegular, ErrNeedRandSource)
		}

		base, err := reserve(b, MethodRandomRegular, n)
		if err != nil {
			return err
		}
		stubCount := n * d
		if stubCount == 0 {
			return nil
		}
		stubs := make([]int, 0, stubCount)
		for i := 0; i < n; i++ {
			for k := 0; k < d; k++ {
				stubs = append(stubs, i)
			}
		}

		for attempt := 1; attempt <= maxStubMatchingAttempts; attempt++ {
			cfg.rng.Shuffle(stubCount, func(i, j int) { stubs[i], stubs[j] = stubs[j], stubs[i] })
			if !simplePairing(stubs) {
				continue
			}

			sym := cfg
			sym.bidirected = true
			for i := 0; i < stubCount; i += 2 {
				u, v := base+core.VertexID(stubs[i]), base+core.VertexID(stubs[i+1])
				if err := linkAt(b, sym, MethodRandomRegular, u, v); err != nil {
					return err
				}
			}
			return nil
		}

		return fmt.Errorf("%s: failed to construct after %d attempts: %w",
			MethodRandomRegular, maxStubMatchingAttempts, ErrConstructFailed)
	}
}

// simplePairing reports whether consecutive stub pairs form a loop-free
// graph without repeated pairs.
func simplePairing(stubs []int) bool {
	seen := make(map[[2]int]struct{}, len(stubs)/2)
	for i := 0; i < len(stubs); i += 2 {
		u, v := stubs[i], stubs[i+1]
		if u == v {
			return false
		}
		if u > v {
			u, v = v, u
		}
		key := [2]int{u, v}
		if _, dup := seen[key]; dup {
			return false
		}
		seen[key] = struct{}{}
	}
	return true
}
