// Package core_test verifies thread-safety of core.Builder and core.Graph.
package core_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/tricount/core"
)

// TestConcurrentAddEdge ensures that concurrent AddEdge calls are safe and
// that every edge survives Build.
func TestConcurrentAddEdge(t *testing.T) {
	const num = 200 // number of concurrent adds
	b, err := core.NewBuilder(num + 1)
	require.NoError(t, err)

	var wg sync.WaitGroup
	errs := make([]error, num)
	wg.Add(num)
	// Launch num goroutines adding X→V{i} and V{i}→X.
	for i := 0; i < num; i++ {
		go func(id int) {
			defer wg.Done()
			v := core.VertexID(id + 1)
			if errs[id] = b.AddEdge(0, v); errs[id] == nil {
				errs[id] = b.AddEdge(v, 0)
			}
		}(i)
	}
	wg.Wait()
	for _, err := range errs {
		require.NoError(t, err)
	}

	g, err := b.Build()
	require.NoError(t, err)
	require.NoError(t, g.Validate())
	require.Equal(t, num, g.OutDegree(0))
	require.Equal(t, num, g.InDegree(0))
	require.Equal(t, 2*num, g.EdgeCount())
}

// TestConcurrentReads hammers one Graph from many readers. Run with -race.
func TestConcurrentReads(t *testing.T) {
	const n = 64
	b, err := core.NewBuilder(n)
	require.NoError(t, err)
	for u := 0; u < n; u++ {
		for v := 0; v < n; v++ {
			if u != v {
				require.NoError(t, b.AddEdge(core.VertexID(u), core.VertexID(v)))
			}
		}
	}
	g, err := b.Build()
	require.NoError(t, err)

	const readers = 50
	var wg sync.WaitGroup
	sums := make([]int, readers)
	wg.Add(readers)
	for r := 0; r < readers; r++ {
		go func(r int) {
			defer wg.Done()
			for u := 0; u < n; u++ {
				for _, v := range g.OutNeighbors(core.VertexID(u)) {
					if g.HasEdge(v, core.VertexID(u)) {
						sums[r]++
					}
				}
			}
		}(r)
	}
	wg.Wait()

	for _, s := range sums {
		require.Equal(t, n*(n-1), s)
	}
}
