// SPDX-License-Identifier: MIT
//
// File: estimate.go
// Role: Parallel Monte-Carlo pi estimator.
// Concurrency:
//   - One goroutine per worker, joined before return; worker i writes only PerWorker[i].

package montecarlo

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/katalvlaran/tricount/partition"
)

// Sentinel errors.
var (
	ErrInvalidWorkers = fmt.Errorf("montecarlo: %w", partition.ErrInvalidWorkers)
	ErrInvalidPoints  = errors.New("montecarlo: point count must be non-negative")
)

// cancelCheck is how many samples a worker draws between context checks.
const cancelCheck = 4096

// WorkerResult is one worker's share of the sampling.
type WorkerResult struct {
	Worker   int
	Seed     int64
	Points   int64
	InCircle int64
	Elapsed  time.Duration
}

// Result aggregates a run. Pi is 4·InCircle/Points (0 when Points is 0).
type Result struct {
	Workers   int
	Points    int64
	InCircle  int64
	Pi        float64
	PerWorker []WorkerResult
	TotalTime time.Duration
}

// Option configures Estimate.
type Option func(*zerolog.Logger)

// WithLogger attaches a logger; each worker logs at Debug, the run at Info.
func WithLogger(l zerolog.Logger) Option {
	return func(dst *zerolog.Logger) { *dst = l }
}

// Estimate draws points samples over workers goroutines.
func Estimate(ctx context.Context, points int64, workers int, seed int64, opts ...Option) (*Result, error) {
	if workers < 1 {
		return nil, fmt.Errorf("workers=%d: %w", workers, ErrInvalidWorkers)
	}
	if points < 0 {
		return nil, fmt.Errorf("points=%d: %w", points, ErrInvalidPoints)
	}
	log := zerolog.Nop()
	for _, fn := range opts {
		fn(&log)
	}
	start := time.Now()

	ranges, err := partition.ByCount(int(points), workers)
	if err != nil {
		return nil, err
	}

	per := make([]WorkerResult, workers)
	errs := make([]error, workers)
	var wg sync.WaitGroup
	for i := range per {
		per[i] = WorkerResult{Worker: i, Seed: seed + int64(i), Points: int64(ranges[i].Len())}
		wg.Add(1)
		go func(wr *WorkerResult, errp *error) {
			defer wg.Done()
			began := time.Now()
			wr.InCircle, *errp = sample(ctx, rand.New(rand.NewSource(wr.Seed)), wr.Points)
			wr.Elapsed = time.Since(began)
			log.Debug().
				Int("worker", wr.Worker).
				Int64("points", wr.Points).
				Int64("in_circle", wr.InCircle).
				Dur("elapsed", wr.Elapsed).
				Msg("worker done")
		}(&per[i], &errs[i])
	}
	wg.Wait()

	if err := errors.Join(errs...); err != nil {
		return nil, err
	}

	res := &Result{Workers: workers, Points: points, PerWorker: per}
	for i := range per {
		res.InCircle += per[i].InCircle
	}
	if points > 0 {
		res.Pi = 4 * float64(res.InCircle) / float64(points)
	}
	res.TotalTime = time.Since(start)
	log.Info().
		Int("workers", workers).
		Int64("points", points).
		Int64("in_circle", res.InCircle).
		Float64("pi", res.Pi).
		Dur("total", res.TotalTime).
		Msg("pi estimate finished")
	return res, nil
}

// sample counts how many of n uniform points in [-1, 1]² satisfy x²+y² ≤ 1.
func sample(ctx context.Context, rng *rand.Rand, n int64) (int64, error) {
	var in int64
	for i := int64(0); i < n; i++ {
		if i%cancelCheck == 0 {
			if err := ctx.Err(); err != nil {
				return in, err
			}
		}
		x := 2*rng.Float64() - 1
		y := 2*rng.Float64() - 1
		if x*x+y*y <= 1 {
			in++
		}
	}
	return in, nil
}
