// SPDX-License-Identifier: MIT
// Package: tricount/builder
//
// impl_wheel.go - implementation of Wheel(n) constructor.
//
// Canonical definition:
//   • Wₙ = Cₙ₋₁ + hub, i.e., a ring of size (n-1) plus a hub vertex.
//   • Therefore, n ≥ 4 (since the ring must be a valid cycle: n-1 ≥ 3).
//
// Contract:
//   • Rim at local 0..n-2 built exactly like Cycle(n-1); hub at local n-1.
//   • Spokes hub→rim in ascending rim order; mirrored if bidirected.
//
// Triangles (bidirected): n-1 rim triangles through the hub, plus the rim
// itself when n == 4 (W₄ = K₄). Directed: only the rim C₃ when n == 4.

package builder

import (
	"fmt"

	"github.com/katalvlaran/tricount/core"
)

// Wheel returns a Constructor that builds a wheel Wₙ.
func Wheel(n int) Constructor {
	return func(b *core.Builder, cfg builderConfig) error {
		if err := validateMin(MethodWheel, "n", n, MinWheelNodes); err != nil {
			return err
		}
		base, err := reserve(b, MethodWheel, n)
		if err != nil {
			return err
		}

		if err := ring(b, cfg, MethodWheel, base, n-1); err != nil {
			return fmt.Errorf("base cycle C_%d: %w", n-1, err)
		}

		hub := base + core.VertexID(n-1)
		for i := 0; i < n-1; i++ {
			if err := linkAt(b, cfg, MethodWheel, hub, base+core.VertexID(i)); err != nil {
				return err
			}
		}
		return nil
	}
}
