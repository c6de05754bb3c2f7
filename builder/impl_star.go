// SPDX-License-Identifier: MIT
// Package: tricount/builder
//
// impl_star.go - implementation of Star(n) constructor.
//
// Contract:
//   • n ≥ MinStarNodes (else ErrTooFewVertices).
//   • Local vertex 0 is the hub, 1..n-1 are leaves.
//   • Emits hub→leaf in ascending leaf order; mirrored if bidirected.
//   • A star is triangle-free in both modes.

package builder

import "github.com/katalvlaran/tricount/core"

// Star returns a Constructor that builds a star with n-1 leaves.
func Star(n int) Constructor {
	return func(b *core.Builder, cfg builderConfig) error {
		if err := validateMin(MethodStar, "n", n, MinStarNodes); err != nil {
			return err
		}
		hub, err := reserve(b, MethodStar, n)
		if err != nil {
			return err
		}
		for i := 1; i < n; i++ {
			if err := linkAt(b, cfg, MethodStar, hub, hub+core.VertexID(i)); err != nil {
				return err
			}
		}
		return nil
	}
}
