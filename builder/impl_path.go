// SPDX-License-Identifier: MIT
// Package: tricount/builder
//
// impl_path.go - Empty(n) and Path(n) constructors.
//
// Contract:
//   • Empty: n ≥ 0 isolated vertices.
//   • Path:  n ≥ MinPathNodes, edges i→i+1 for i = 0..n-2 (mirrored if bidirected).
//
// Complexity: O(n) vertices + O(n) edges.

package builder

import "github.com/katalvlaran/tricount/core"

// Empty returns a Constructor that reserves n isolated vertices.
func Empty(n int) Constructor {
	return func(b *core.Builder, _ builderConfig) error {
		if err := validateMin(MethodEmpty, "n", n, 0); err != nil {
			return err
		}
		_, err := reserve(b, MethodEmpty, n)
		return err
	}
}

// Path returns a Constructor that builds P_n.
func Path(n int) Constructor {
	return func(b *core.Builder, cfg builderConfig) error {
		if err := validateMin(MethodPath, "n", n, MinPathNodes); err != nil {
			return err
		}
		base, err := reserve(b, MethodPath, n)
		if err != nil {
			return err
		}
		for i := 0; i < n-1; i++ {
			u := base + core.VertexID(i)
			if err := linkAt(b, cfg, MethodPath, u, u+1); err != nil {
				return err
			}
		}
		return nil
	}
}
