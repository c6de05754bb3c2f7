// SPDX-License-Identifier: MIT
//
// Command piestimate approximates pi by parallel Monte-Carlo sampling.
//
//	piestimate --points 100000000 --workers 8 --seed 7
package main

import (
	"bufio"
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
	"github.com/katalvlaran/tricount/montecarlo"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, os.Args[1:], os.Stdout); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return
		}
		log.Error().Err(err).Msg("piestimate failed")
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string, stdout io.Writer) error {
	fs := pflag.NewFlagSet("piestimate", pflag.ContinueOnError)
	fs.IntP("workers", "t", runtime.NumCPU(), "number of workers")
	fs.Int64P("points", "n", 12345678, "number of samples")
	fs.Int64("seed", 1, "base seed; worker i uses seed+i")
	fs.String("log-level", "info", "trace|debug|info|warn|error")
	configFile := fs.StringP("config", "c", "", "config file")

	cfg := config.New()
	if err := cfg.BindFlags(fs); err != nil {
		return err
	}
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *configFile != "" {
		if err := cfg.LoadFile(*configFile); err != nil {
			return err
		}
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	log.Logger = cfg.Logger("piestimate")

	res, err := montecarlo.Estimate(ctx, cfg.PiPoints(), cfg.Workers(), cfg.PiSeed(),
		montecarlo.WithLogger(log.Logger))
	if err != nil {
		return err
	}

	bw := bufio.NewWriter(stdout)
	fmt.Fprintf(bw, "Number of workers : %d\n", res.Workers)
	fmt.Fprintln(bw, "thread_id, points_generated, circle_points, time_taken")
	for _, wr := range res.PerWorker {
		fmt.Fprintf(bw, "%d, %d, %d, %.5f\n", wr.Worker, wr.Points, wr.InCircle, wr.Elapsed.Seconds())
	}
	fmt.Fprintf(bw, "Total points generated : %d\n", res.Points)
	fmt.Fprintf(bw, "Total points in circle : %d\n", res.InCircle)
	fmt.Fprintf(bw, "Result : %.12f\n", res.Pi)
	fmt.Fprintf(bw, "Time taken (in seconds) : %.5f\n", res.TotalTime.Seconds())
	return bw.Flush()
}
