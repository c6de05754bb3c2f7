// SPDX-License-Identifier: MIT
// Package: tricount/builder
//
// impl_cycle.go - implementation of Cycle(n) constructor.
//
// Contract:
//   • n ≥ MinCycleNodes (else ErrTooFewVertices).
//   • Emits ring edges i→(i+1) mod n in ascending i; mirrored if bidirected.
//
// Triangles:
//   • Directed C_3 is one directed 3-cycle; bidirected C_3 is two.
//   • C_n for n ≥ 4 has none in either mode.

package builder

import "github.com/katalvlaran/tricount/core"

// Cycle returns a Constructor that builds the ring C_n.
func Cycle(n int) Constructor {
	return func(b *core.Builder, cfg builderConfig) error {
		if err := validateMin(MethodCycle, "n", n, MinCycleNodes); err != nil {
			return err
		}
		base, err := reserve(b, MethodCycle, n)
		if err != nil {
			return err
		}
		return ring(b, cfg, MethodCycle, base, n)
	}
}

// ring emits base+i → base+(i+1)%n for every i. Shared with Wheel.
func ring(b *core.Builder, cfg builderConfig, method string, base core.VertexID, n int) error {
	for i := 0; i < n; i++ {
		u := base + core.VertexID(i)
		v := base + core.VertexID((i+1)%n)
		if err := linkAt(b, cfg, method, u, v); err != nil {
			return err
		}
	}
	return nil
}
