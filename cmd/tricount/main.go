// SPDX-License-Identifier: MIT
//
// Command tricount counts directed 3-cycles in a graph with one of four work
// distribution strategies and prints a per-worker report.
//
//	tricount --input roadNet-CA.bin --workers 8 --strategy edge
//	tricount --generate wheel:1000 --bidirected --strategy dynamic --repeat 3
//
// Settings come from flags, TRICOUNT_* environment variables and an optional
// --config file (see package config).
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"runtime"

	"github.com/rs/zerolog/log"
	"github.com/spf13/pflag"

	"github.com/katalvlaran/tricount/config"
	"github.com/katalvlaran/tricount/core"
	"github.com/katalvlaran/tricount/history"
	"github.com/katalvlaran/tricount/triangle"
)

// ErrNotIdempotent is returned when repeated runs disagree on the count.
var ErrNotIdempotent = errors.New("tricount: repeated runs disagree")

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, os.Args[1:], os.Stdout); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return
		}
		log.Error().Err(err).Msg("tricount failed")
		os.Exit(1)
	}
}

// options holds the flags that do not live in config.
type options struct {
	configFile string
	generate   string
	bidirected bool
	loops      bool
	output     string
}

func newFlagSet(o *options) *pflag.FlagSet {
	fs := pflag.NewFlagSet("tricount", pflag.ContinueOnError)
	fs.IntP("workers", "t", runtime.NumCPU(), "number of workers")
	fs.StringP("strategy", "s", "dynamic", "serial|vertex|edge|dynamic or 0..3")
	fs.StringP("input", "i", "", "input graph file")
	fs.String("format", "", "input format: binary|text (default: by extension)")
	fs.Int("repeat", 1, "run the count this many times and check the results agree")
	fs.String("history", "", "history store directory (empty: in-memory)")
	fs.Bool("record", false, "record runs in the history store")
	fs.Bool("fixed-target", false, "edge strategy: one total/workers target, crossing vertex included")
	fs.Int64("gen-seed", 1, "with --generate: seed for random generators")
	fs.String("log-level", "info", "trace|debug|info|warn|error")

	fs.StringVarP(&o.configFile, "config", "c", "", "config file")
	fs.StringVarP(&o.generate, "generate", "g", "", "build a graph instead of reading one, e.g. wheel:100 or random:1000:0.01")
	fs.BoolVar(&o.bidirected, "bidirected", false, "with --generate: emit both arcs of every edge")
	fs.BoolVar(&o.loops, "loops", false, "accept self-loops in the input")
	fs.StringVarP(&o.output, "output", "o", "", "also write the graph to this file (format by extension)")
	return fs
}

func run(ctx context.Context, args []string, stdout io.Writer) error {
	var o options
	fs := newFlagSet(&o)
	cfg := config.New()
	if err := cfg.BindFlags(fs); err != nil {
		return err
	}
	if err := fs.Parse(args); err != nil {
		return err
	}
	if o.configFile != "" {
		if err := cfg.LoadFile(o.configFile); err != nil {
			return err
		}
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	log.Logger = cfg.Logger("tricount")

	strategy, err := cfg.Strategy()
	if err != nil {
		return err
	}
	workers := cfg.Workers()

	fmt.Fprintf(stdout, "Number of workers : %d\n", workers)
	fmt.Fprintf(stdout, "Task decomposition strategy : %d (%v)\n", int(strategy), strategy)

	g, key, err := loadGraph(cfg, o)
	if err != nil {
		return err
	}
	st := g.Stats()
	log.Info().
		Str("graph", key).
		Int("vertices", st.Vertices).
		Int("edges", st.Edges).
		Int("max_out_degree", st.MaxOutDegree).
		Msg("graph ready")
	if o.output != "" {
		if err := saveGraph(o.output, g); err != nil {
			return err
		}
	}

	var store *history.Store
	if cfg.HistoryEnabled() {
		if store, err = history.Open(history.Options{Path: cfg.HistoryPath(), Logger: log.Logger}); err != nil {
			return err
		}
		defer store.Close()
		warnIfChanged(store, key, g)
	}

	countOpts := []triangle.Option{triangle.WithContext(ctx), triangle.WithLogger(log.Logger)}
	if cfg.FixedTarget() {
		countOpts = append(countOpts, triangle.WithFixedEdgeTarget())
	}

	var first int64
	for r := 0; r < cfg.Repeat(); r++ {
		res, err := triangle.Count(g, strategy, workers, countOpts...)
		if err != nil {
			return err
		}
		if err := writeReport(stdout, res); err != nil {
			return err
		}
		if store != nil {
			if _, err := store.Record(ctx, history.EntryFromResult(key, st, res)); err != nil {
				return err
			}
		}
		if r == 0 {
			first = res.Triangles
		} else if res.Triangles != first {
			return fmt.Errorf("run %d counted %d, run 0 counted %d: %w", r, res.Triangles, first, ErrNotIdempotent)
		}
	}
	return nil
}

// warnIfChanged logs when the last recorded run of key disagrees with the
// graph now on hand. It only compares shape, not the count.
func warnIfChanged(store *history.Store, key string, g *core.Graph) {
	prev, err := store.Latest(key)
	if err != nil {
		return
	}
	if prev.Vertices != g.VertexCount() || prev.Edges != g.EdgeCount() {
		log.Warn().
			Str("graph", key).
			Int("prev_vertices", prev.Vertices).
			Int("prev_edges", prev.Edges).
			Msg("graph changed since last recorded run")
	}
}
