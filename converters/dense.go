// SPDX-License-Identifier: MIT
//
// File: dense.go
// Role: Dense adjacency-matrix view of a core.Graph on gonum/mat.
// Policy:
//   - A[u][v] = 1 for every arc u→v, self-loops omitted.
//   - Only for small graphs: N ≤ MaxDenseVertices.

package converters

import (
	"math"

	"github.com/pkg/errors"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/tricount/core"
)

// MaxDenseVertices caps ToDense; an N×N float64 matrix at this size is 32 MiB.
const MaxDenseVertices = 2048

// ErrTooLarge is returned when a graph exceeds MaxDenseVertices.
var ErrTooLarge = errors.New("converters: graph too large for a dense matrix")

// ToDense returns the 0/1 adjacency matrix of g. An empty graph yields nil.
func ToDense(g *core.Graph) (*mat.Dense, error) {
	n := g.VertexCount()
	if n > MaxDenseVertices {
		return nil, errors.Wrapf(ErrTooLarge, "n=%d", n)
	}
	if n == 0 {
		return nil, nil
	}
	a := mat.NewDense(n, n, nil)
	for u := 0; u < n; u++ {
		for _, v := range g.OutNeighbors(core.VertexID(u)) {
			if int(v) != u {
				a.Set(u, int(v), 1)
			}
		}
	}
	return a, nil
}

// TraceCube returns trace(A³): the number of closed walks of length three.
// On a loopless graph that is three times the number of directed 3-cycles,
// the same raw total the triangle package reports.
func TraceCube(g *core.Graph) (int64, error) {
	a, err := ToDense(g)
	if err != nil || a == nil {
		return 0, err
	}
	var a2, a3 mat.Dense
	a2.Mul(a, a)
	a3.Mul(&a2, a)
	return int64(math.Round(mat.Trace(&a3))), nil
}
