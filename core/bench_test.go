package core_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/tricount/core"
)

// BenchmarkBuilder_Build measures sort+dedup+transpose for a random digraph.
func BenchmarkBuilder_Build(b *testing.B) {
	const (
		N = 10000
		M = 100000
	)
	rng := rand.New(rand.NewSource(42))
	pairs := make([][2]core.VertexID, 0, M)
	for len(pairs) < M {
		u, v := core.VertexID(rng.Intn(N)), core.VertexID(rng.Intn(N))
		if u != v {
			pairs = append(pairs, [2]core.VertexID{u, v})
		}
	}

	b.ReportAllocs()
	b.SetBytes(int64(N + M))
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		bl, _ := core.NewBuilder(N)
		_ = bl.AddEdges(pairs)
		_, _ = bl.Build()
	}
}
