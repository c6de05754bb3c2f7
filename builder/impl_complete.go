// SPDX-License-Identifier: MIT
// Package: tricount/builder
//
// impl_complete.go - implementation of Complete(n) constructor.
//
// Contract:
//   • n ≥ 1 (else ErrTooFewVertices).
//   • Emits i→j for every i < j in lexicographic order; mirrored if bidirected.
//   • Without WithBidirected the result is the transitive tournament (acyclic,
//     zero triangles). With it, the complete digraph holding 2·C(n,3)
//     directed 3-cycles.
//
// Complexity: O(n²) edges.

package builder

import "github.com/katalvlaran/tricount/core"

// Complete returns a Constructor that builds K_n.
func Complete(n int) Constructor {
	return func(b *core.Builder, cfg builderConfig) error {
		if err := validateMin(MethodComplete, "n", n, 1); err != nil {
			return err
		}
		base, err := reserve(b, MethodComplete, n)
		if err != nil {
			return err
		}
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if err := linkAt(b, cfg, MethodComplete, base+core.VertexID(i), base+core.VertexID(j)); err != nil {
					return err
				}
			}
		}
		return nil
	}
}
