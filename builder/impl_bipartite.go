// SPDX-License-Identifier: MIT
// Package: tricount/builder
//
// impl_bipartite.go - implementation of CompleteBipartite(n1, n2) constructor.
//
// Contract:
//   • n1 ≥ 1 and n2 ≥ 1 (else ErrTooFewVertices).
//   • Left side at local 0..n1-1, right side at local n1..n1+n2-1.
//   • Emits left→right for every cross pair in (i asc, j asc) order; mirrored
//     if bidirected.
//   • Bipartite graphs have no odd cycles, so no triangles in either mode.
//
// Complexity: O(n1+n2) vertices + O(n1·n2) edges.

package builder

import "github.com/katalvlaran/tricount/core"

// CompleteBipartite returns a Constructor that builds K_{n1,n2}.
func CompleteBipartite(n1, n2 int) Constructor {
	return func(b *core.Builder, cfg builderConfig) error {
		if err := validateMin(MethodCompleteBipartite, "n1", n1, 1); err != nil {
			return err
		}
		if err := validateMin(MethodCompleteBipartite, "n2", n2, 1); err != nil {
			return err
		}
		left, err := reserve(b, MethodCompleteBipartite, n1+n2)
		if err != nil {
			return err
		}
		right := left + core.VertexID(n1)

		for i := 0; i < n1; i++ {
			for j := 0; j < n2; j++ {
				if err := linkAt(b, cfg, MethodCompleteBipartite, left+core.VertexID(i), right+core.VertexID(j)); err != nil {
					return err
				}
			}
		}
		return nil
	}
}
