// SPDX-License-Identifier: MIT
package history_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/tricount/builder"
	"github.com/katalvlaran/tricount/history"
	"github.com/katalvlaran/tricount/triangle"
)

func openMem(t *testing.T) *history.Store {
	t.Helper()
	s, err := history.Open(history.Options{})
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestRecordAndList(t *testing.T) {
	s := openMem(t)
	ctx := context.Background()
	g := builder.MustBuild([]builder.BuilderOption{builder.WithBidirected()}, builder.Complete(5))

	for _, strat := range []triangle.Strategy{triangle.Serial, triangle.VertexBalanced, triangle.EdgeBalanced, triangle.Dynamic} {
		res, err := triangle.Count(g, strat, 2)
		require.NoError(t, err)
		_, err = s.Record(ctx, history.EntryFromResult("k5", g.Stats(), res))
		require.NoError(t, err)
	}
	_, err := s.Record(ctx, history.Entry{Graph: "other", Triangles: 3})
	require.NoError(t, err)

	runs, err := s.List("k5")
	require.NoError(t, err)
	require.Len(t, runs, 4)
	for i, want := range []string{"serial", "vertex", "edge", "dynamic"} {
		assert.Equal(t, want, runs[i].Strategy)
		assert.Equal(t, int64(60), runs[i].Triangles)
		assert.Equal(t, int64(20), runs[i].Distinct)
		assert.Equal(t, 5, runs[i].Vertices)
		assert.Equal(t, 20, runs[i].Edges)
		if i > 0 {
			assert.Greater(t, runs[i].Seq, runs[i-1].Seq)
		}
	}
	assert.Equal(t, 1, runs[0].Workers)
	assert.Equal(t, 2, runs[3].Workers)

	latest, err := s.Latest("k5")
	require.NoError(t, err)
	assert.Equal(t, "dynamic", latest.Strategy)
	assert.Equal(t, runs[3].Seq, latest.Seq)

	other, err := s.List("other")
	require.NoError(t, err)
	require.Len(t, other, 1)
	assert.Equal(t, int64(3), other[0].Triangles)
}

func TestLatest_NotFound(t *testing.T) {
	s := openMem(t)
	_, err := s.Latest("nothing")
	require.ErrorIs(t, err, history.ErrNotFound)

	runs, err := s.List("nothing")
	require.NoError(t, err)
	assert.Empty(t, runs)
}

func TestGraphKeyValidation(t *testing.T) {
	s := openMem(t)
	for _, key := range []string{"", "a/b"} {
		_, err := s.Record(context.Background(), history.Entry{Graph: key})
		require.ErrorIs(t, err, history.ErrBadGraphKey)
		_, err = s.List(key)
		require.ErrorIs(t, err, history.ErrBadGraphKey)
		_, err = s.Latest(key)
		require.ErrorIs(t, err, history.ErrBadGraphKey)
	}
}

func TestRecord_CancelledContext(t *testing.T) {
	s := openMem(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := s.Record(ctx, history.Entry{Graph: "g"})
	require.ErrorIs(t, err, context.Canceled)

	runs, err := s.List("g")
	require.NoError(t, err)
	assert.Empty(t, runs)
}

func TestRecord_Concurrent(t *testing.T) {
	s := openMem(t)
	const writers, each = 8, 25

	var wg sync.WaitGroup
	for w := 0; w < writers; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			for i := 0; i < each; i++ {
				_, err := s.Record(context.Background(), history.Entry{Graph: "shared", Workers: w})
				assert.NoError(t, err)
			}
		}(w)
	}
	wg.Wait()

	runs, err := s.List("shared")
	require.NoError(t, err)
	require.Len(t, runs, writers*each)
	for i := 1; i < len(runs); i++ {
		require.Greater(t, runs[i].Seq, runs[i-1].Seq)
	}
}

func TestPersistence(t *testing.T) {
	dir := t.TempDir()
	at := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

	s, err := history.Open(history.Options{Path: dir})
	require.NoError(t, err)
	_, err = s.Record(context.Background(), history.Entry{Graph: "disk", Triangles: 24, Total: time.Millisecond, At: at})
	require.NoError(t, err)
	require.NoError(t, s.Close())

	s, err = history.Open(history.Options{Path: dir})
	require.NoError(t, err)
	defer s.Close()
	e, err := s.Latest("disk")
	require.NoError(t, err)
	assert.Equal(t, int64(24), e.Triangles)
	assert.Equal(t, time.Millisecond, e.Total)
	assert.True(t, at.Equal(e.At))

	next, err := s.Record(context.Background(), history.Entry{Graph: "disk"})
	require.NoError(t, err)
	assert.Greater(t, next, e.Seq)
}

func TestOpen_ReadOnlyInMemory(t *testing.T) {
	_, err := history.Open(history.Options{ReadOnly: true})
	require.ErrorIs(t, err, history.ErrReadOnly)
}
