// SPDX-License-Identifier: MIT
//
// File: count.go
// Role: Entry points and worker loops for the four strategies.
// Concurrency:
//   - Count spawns exactly `workers` goroutines and joins them on every path.
//   - Worker i writes only PerWorker[i]; the Dynamic cursor is the only shared
//     mutable state and lives inside one Count call.
//   - The graph is read-only; no locks are taken while counting.

package triangle

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/katalvlaran/tricount/core"
	"github.com/katalvlaran/tricount/partition"
)

// CountSerial counts on the calling goroutine as a single worker covering
// every vertex. Result.Strategy is Serial and Result.Workers is 1.
//
// Errors: ErrGraphNil; ctx.Err() if the context from WithContext is cancelled.
func CountSerial(g *core.Graph, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := newOptions(opts)
	start := time.Now()

	wr := WorkerResult{Range: partition.Range{Start: 0, End: g.VertexCount()}}
	if err := countRange(o.ctx, g, &wr); err != nil {
		return nil, err
	}
	wr.Elapsed = time.Since(start)

	res := &Result{
		Strategy:  Serial,
		Workers:   1,
		Triangles: wr.Triangles,
		PerWorker: []WorkerResult{wr},
		TotalTime: time.Since(start),
	}
	logRun(o, res)
	return res, nil
}

// Count runs strategy s with the given number of workers.
//
// Validation happens before any goroutine starts:
//   - s outside Serial..Dynamic → ErrUnknownStrategy
//   - g == nil                  → ErrGraphNil
//   - workers < 1               → ErrInvalidWorkers
//
// Serial ignores workers beyond validation and delegates to CountSerial.
// workers > VertexCount is allowed; surplus workers get empty ranges (static)
// or find the cursor exhausted (Dynamic).
//
// The global count is independent of strategy, worker count and scheduling.
func Count(g *core.Graph, s Strategy, workers int, opts ...Option) (*Result, error) {
	if !s.Valid() {
		return nil, fmt.Errorf("%v: %w", s, ErrUnknownStrategy)
	}
	if g == nil {
		return nil, ErrGraphNil
	}
	if workers < 1 {
		return nil, fmt.Errorf("workers=%d: %w", workers, ErrInvalidWorkers)
	}
	if s == Serial {
		return CountSerial(g, opts...)
	}

	o := newOptions(opts)
	start := time.Now()

	var (
		ranges []partition.Range
		cursor *partition.Cursor
		err    error
	)
	switch s {
	case VertexBalanced:
		ranges, err = partition.ByCount(g.VertexCount(), workers)
	case EdgeBalanced:
		split := partition.ByWeight
		if o.fixedTarget {
			split = partition.ByWeightFixed
		}
		ranges, err = split(g.VertexCount(), workers, func(i int) int64 {
			return int64(g.OutDegree(core.VertexID(i)))
		})
	case Dynamic:
		cursor = partition.NewCursor(g.VertexCount())
	}
	if err != nil {
		return nil, err
	}
	partitionTime := time.Since(start)

	per := make([]WorkerResult, workers)
	errs := make([]error, workers)
	var wg sync.WaitGroup
	for i := range per {
		per[i].Worker = i
		wg.Add(1)
		go func(wr *WorkerResult, errp *error) {
			defer wg.Done()
			began := time.Now()
			if cursor != nil {
				*errp = countClaimed(o.ctx, g, cursor, wr)
			} else {
				wr.Range = ranges[wr.Worker]
				*errp = countRange(o.ctx, g, wr)
			}
			wr.Elapsed = time.Since(began)
			o.log.Debug().
				Int("worker", wr.Worker).
				Int64("vertices", wr.Vertices).
				Int64("edges", wr.Edges).
				Int64("triangles", wr.Triangles).
				Dur("elapsed", wr.Elapsed).
				Msg("worker done")
		}(&per[i], &errs[i])
	}
	wg.Wait()

	for _, e := range errs {
		if e != nil {
			return nil, e
		}
	}

	res := &Result{
		Strategy:      s,
		Workers:       workers,
		PerWorker:     per,
		PartitionTime: partitionTime,
	}
	for i := range per {
		res.Triangles += per[i].Triangles
	}
	res.TotalTime = time.Since(start)
	logRun(o, res)
	return res, nil
}

// countRange processes every vertex of wr.Range.
func countRange(ctx context.Context, g *core.Graph, wr *WorkerResult) error {
	done := ctx.Done()
	for u := wr.Range.Start; u < wr.Range.End; u++ {
		select {
		case <-done:
			return ctx.Err()
		default:
		}
		countVertex(g, core.VertexID(u), wr)
	}
	return nil
}

// countClaimed processes vertices claimed from c until it is exhausted.
func countClaimed(ctx context.Context, g *core.Graph, c *partition.Cursor, wr *WorkerResult) error {
	done := ctx.Done()
	for {
		select {
		case <-done:
			return ctx.Err()
		default:
		}
		u, ok := c.Claim()
		if !ok {
			return nil
		}
		countVertex(g, core.VertexID(u), wr)
	}
}

// countVertex adds u's contribution: one intersection per out-edge u→v of
// In(u) with Out(v).
func countVertex(g *core.Graph, u core.VertexID, wr *WorkerResult) {
	in := g.InNeighbors(u)
	out := g.OutNeighbors(u)
	wr.Vertices++
	wr.Edges += int64(len(out))
	for _, v := range out {
		wr.Triangles += CountCommon(in, g.OutNeighbors(v), u, v)
	}
}

func logRun(o options, res *Result) {
	o.log.Info().
		Stringer("strategy", res.Strategy).
		Int("workers", res.Workers).
		Int64("triangles", res.Triangles).
		Int64("distinct", res.Distinct()).
		Dur("partition", res.PartitionTime).
		Dur("total", res.TotalTime).
		Msg("triangle count finished")
}
