// SPDX-License-Identifier: MIT
// Package: tricount/builder
//
// impl_grid.go - implementation of Grid(rows, cols) constructor.
//
// Contract:
//   • rows ≥ MinGridDim and cols ≥ MinGridDim (else ErrTooFewVertices).
//   • Cell (r,c) is local vertex r*cols + c (row-major).
//   • For each cell in row-major order: emit right neighbor (r,c+1) if any,
//     then down neighbor (r+1,c) if any; mirrored if bidirected.
//   • Grids are bipartite and therefore triangle-free.
//
// Complexity: O(rows·cols) vertices and edges.

package builder

import (
	"fmt"

	"github.com/katalvlaran/tricount/core"
)

// Grid returns a Constructor that builds a rows×cols orthogonal grid.
func Grid(rows, cols int) Constructor {
	return func(b *core.Builder, cfg builderConfig) error {
		if rows < MinGridDim || cols < MinGridDim {
			return fmt.Errorf("%s: rows=%d, cols=%d (each must be ≥ %d): %w",
				MethodGrid, rows, cols, MinGridDim, ErrTooFewVertices)
		}
		base, err := reserve(b, MethodGrid, rows*cols)
		if err != nil {
			return err
		}
		cell := func(r, c int) core.VertexID { return base + core.VertexID(r*cols+c) }

		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				if c+1 < cols {
					if err := linkAt(b, cfg, MethodGrid, cell(r, c), cell(r, c+1)); err != nil {
						return err
					}
				}
				if r+1 < rows {
					if err := linkAt(b, cfg, MethodGrid, cell(r, c), cell(r+1, c)); err != nil {
						return err
					}
				}
			}
		}
		return nil
	}
}
