// SPDX-License-Identifier: MIT
// Package: tricount/builder
//
// impl_platonic.go - implementation of PlatonicSolid(name, withCenter) constructor.
//
// Canonical model:
//   • Build one of the five Platonic solids using a canonical, deterministic edge set.
//   • Optionally add a central hub with spokes to all shell vertices.
//
// Contract:
//   • Unknown name → ErrOptionViolation.
//   • Shell vertices at local 0..V-1, hub (if any) at local V.
//   • Emits shell edges in stable order (pre-sorted in variants_platonic.go),
//     then spokes shell→hub in ascending order; all mirrored if bidirected.
//
// Triangles (bidirected): Tetrahedron 4, Octahedron 8, Icosahedron 20,
// Cube and Dodecahedron 0; a hub adds one triangle per shell edge.
// Without WithBidirected every edge points from a lower to a higher local
// index, so the result is acyclic.

package builder

import (
	"fmt"

	"github.com/katalvlaran/tricount/core"
)

// PlatonicSolid returns a Constructor that builds the chosen Platonic shell,
// optionally stellated with a central hub connected by spokes.
func PlatonicSolid(name PlatonicName, withCenter bool) Constructor {
	return func(b *core.Builder, cfg builderConfig) error {
		n, ok := platonicVertexCounts[name]
		if !ok {
			return fmt.Errorf("%s: unknown solid %v: %w", MethodPlatonicSolid, name, ErrOptionViolation)
		}
		edges := platonicEdgeSets[name]

		total := n
		if withCenter {
			total++
		}
		base, err := reserve(b, MethodPlatonicSolid, total)
		if err != nil {
			return err
		}

		for _, ch := range edges {
			if err := linkAt(b, cfg, MethodPlatonicSolid, base+core.VertexID(ch.U), base+core.VertexID(ch.V)); err != nil {
				return err
			}
		}

		if withCenter {
			hub := base + core.VertexID(n)
			for i := 0; i < n; i++ {
				if err := linkAt(b, cfg, MethodPlatonicSolid, base+core.VertexID(i), hub); err != nil {
					return err
				}
			}
		}
		return nil
	}
}
