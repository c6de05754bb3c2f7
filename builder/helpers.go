// Package builder provides internal helper functions used by Constructor
// implementations.
package builder

import (
	"fmt"

	"github.com/katalvlaran/tricount/core"
)

// reserve appends n fresh vertices to b and returns the ID of the first one.
// Constructors address their vertices as base+i for i in [0, n).
//
// Complexity: O(1).
func reserve(b *core.Builder, method string, n int) (core.VertexID, error) {
	base := b.VertexCount()
	if err := b.Grow(base + n); err != nil {
		return 0, fmt.Errorf("%s: reserve %d vertices at %d: %w", method, n, base, err)
	}
	return core.VertexID(base), nil
}

// linkAt wraps cfg.link with method context.
func linkAt(b *core.Builder, cfg builderConfig, method string, u, v core.VertexID) error {
	if err := cfg.link(b, u, v); err != nil {
		return fmt.Errorf("%s: AddEdge(%d→%d): %w", method, u, v, err)
	}
	return nil
}
