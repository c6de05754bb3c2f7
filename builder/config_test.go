// Package builder contains unit tests for the configuration primitives
// (builderConfig and BuilderOption) to ensure correct application and override behavior.
package builder

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/tricount/core"
)

// TestRNGOptions verifies that RNG options configure the rng field correctly,
// including reproducibility with WithSeed and the nil panic in WithRand.
func TestRNGOptions(t *testing.T) {
	t.Parallel()

	assert.Nil(t, newBuilderConfig().rng)

	exp := rand.New(rand.NewSource(123))
	assert.Same(t, exp, newBuilderConfig(WithRand(exp)).rng)

	assert.Panics(t, func() { WithRand(nil) })

	a, b := newBuilderConfig(WithSeed(42)), newBuilderConfig(WithSeed(42))
	assert.Equal(t, a.rng.Int63(), b.rng.Int63())
	assert.Equal(t, a.rng.Int63(), b.rng.Int63())

	// last wins
	last := newBuilderConfig(WithRand(exp), WithSeed(1))
	assert.NotSame(t, exp, last.rng)
}

// TestBidirectedOption verifies link emits one or two arcs.
func TestBidirectedOption(t *testing.T) {
	t.Parallel()

	assert.False(t, newBuilderConfig().bidirected)
	assert.True(t, newBuilderConfig(WithBidirected()).bidirected)

	for _, cfg := range []builderConfig{newBuilderConfig(), newBuilderConfig(WithBidirected())} {
		b, err := core.NewBuilder(2)
		require.NoError(t, err)
		require.NoError(t, cfg.link(b, 0, 1))
		g, err := b.Build()
		require.NoError(t, err)
		assert.True(t, g.HasEdge(0, 1))
		assert.Equal(t, cfg.bidirected, g.HasEdge(1, 0))
	}
}

// TestReserve hands out consecutive blocks.
func TestReserve(t *testing.T) {
	t.Parallel()

	b, err := core.NewBuilder(0)
	require.NoError(t, err)
	first, err := reserve(b, MethodEmpty, 3)
	require.NoError(t, err)
	second, err := reserve(b, MethodEmpty, 2)
	require.NoError(t, err)
	assert.Equal(t, core.VertexID(0), first)
	assert.Equal(t, core.VertexID(3), second)
	assert.Equal(t, 5, b.VertexCount())
}

// TestSimplePairing rejects loops and repeated pairs.
func TestSimplePairing(t *testing.T) {
	t.Parallel()

	assert.True(t, simplePairing([]int{0, 1, 2, 3, 1, 2}))
	assert.False(t, simplePairing([]int{0, 0, 1, 2}))
	assert.False(t, simplePairing([]int{0, 1, 1, 0}))
}
