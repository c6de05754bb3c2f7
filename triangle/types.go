// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: Strategy enum, functional options, per-worker and per-run results.
// Policy:
//   - Triangles fields hold raw directed contributions (3× per cyclic triangle).
//   - Division by 3 happens only in Result.Distinct.

package triangle

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/katalvlaran/tricount/partition"
)

// Sentinel errors for triangle counting.
var (
	// ErrInvalidWorkers is returned when the worker count is < 1.
	// It wraps partition.ErrInvalidWorkers so either sentinel matches.
	ErrInvalidWorkers = fmt.Errorf("triangle: %w", partition.ErrInvalidWorkers)

	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("triangle: graph is nil")

	// ErrUnknownStrategy is returned for a Strategy outside Serial..Dynamic.
	ErrUnknownStrategy = errors.New("triangle: unknown strategy")
)

// Strategy selects how vertices are distributed across workers.
type Strategy int

const (
	// Serial runs a single worker on the calling goroutine.
	Serial Strategy = iota
	// VertexBalanced gives each worker a contiguous range of near-equal length.
	VertexBalanced
	// EdgeBalanced gives each worker a contiguous range of near-equal out-degree sum.
	EdgeBalanced
	// Dynamic lets workers claim one vertex at a time from a shared cursor.
	Dynamic
)

var strategyNames = [...]string{"serial", "vertex", "edge", "dynamic"}

// String returns the short name: serial, vertex, edge or dynamic.
func (s Strategy) String() string {
	if s < Serial || s > Dynamic {
		return "Strategy(" + strconv.Itoa(int(s)) + ")"
	}
	return strategyNames[s]
}

// Valid reports whether s is one of the four defined strategies.
func (s Strategy) Valid() bool { return s >= Serial && s <= Dynamic }

// ParseStrategy accepts a numeric code "0".."3" or a name
// (serial, vertex, edge, dynamic; case-insensitive).
func ParseStrategy(text string) (Strategy, error) {
	t := strings.ToLower(strings.TrimSpace(text))
	if code, err := strconv.Atoi(t); err == nil {
		if s := Strategy(code); s.Valid() {
			return s, nil
		}
		return 0, fmt.Errorf("%q: %w", text, ErrUnknownStrategy)
	}
	for i, name := range strategyNames {
		if t == name {
			return Strategy(i), nil
		}
	}
	return 0, fmt.Errorf("%q: %w", text, ErrUnknownStrategy)
}

// Option configures a counting run.
type Option func(*options)

type options struct {
	ctx         context.Context
	log         zerolog.Logger
	fixedTarget bool
}

// WithLogger attaches a logger. Each worker logs one Debug event when it
// finishes and the run logs one Info event. Default: zerolog.Nop().
func WithLogger(l zerolog.Logger) Option {
	return func(o *options) { o.log = l }
}

// WithContext lets the caller cancel a run. Workers check ctx between
// vertices; a cancelled run returns ctx.Err() once every worker has joined.
// A nil ctx is ignored.
func WithContext(ctx context.Context) Option {
	return func(o *options) {
		if ctx != nil {
			o.ctx = ctx
		}
	}
}

// WithFixedEdgeTarget makes EdgeBalanced split with partition.ByWeightFixed:
// one total/workers target for every range, crossing vertex included.
// Other strategies ignore it.
func WithFixedEdgeTarget() Option {
	return func(o *options) { o.fixedTarget = true }
}

func newOptions(opts []Option) options {
	o := options{ctx: context.Background(), log: zerolog.Nop()}
	for _, fn := range opts {
		fn(&o)
	}
	return o
}

// WorkerResult is written by exactly one worker and read only after join.
type WorkerResult struct {
	Worker    int
	Vertices  int64 // vertices processed
	Edges     int64 // sum of out-degrees of processed vertices
	Triangles int64 // raw directed contributions
	Elapsed   time.Duration
	Range     partition.Range // assigned range; zero for Dynamic
}

// Result aggregates one counting run.
type Result struct {
	Strategy      Strategy
	Workers       int
	Triangles     int64 // Σ PerWorker[i].Triangles
	PerWorker     []WorkerResult
	PartitionTime time.Duration
	TotalTime     time.Duration
}

// Balance summarizes how evenly edges were spread across workers.
type Balance struct {
	MinEdges    float64
	MaxEdges    float64
	MeanEdges   float64
	StdDevEdges float64
}
