// SPDX-License-Identifier: MIT

package main

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/katalvlaran/tricount/builder"
	"github.com/katalvlaran/tricount/config"
	"github.com/katalvlaran/tricount/core"
	"github.com/katalvlaran/tricount/graphio"
)

// ErrNoInput is returned when neither --input nor --generate is given.
var ErrNoInput = errors.New("tricount: need --input or --generate")

// loadGraph reads or generates the graph and returns it with its history key.
func loadGraph(cfg *config.Config, o options) (*core.Graph, string, error) {
	var copts []core.Option
	if o.loops {
		copts = append(copts, core.WithLoops())
	}

	if o.generate != "" {
		cons, err := builder.ParseSpec(o.generate)
		if err != nil {
			return nil, "", err
		}
		bopts := []builder.BuilderOption{builder.WithSeed(cfg.RunSeed())}
		key := "gen:" + o.generate
		if o.bidirected {
			bopts = append(bopts, builder.WithBidirected())
			key += ":bi"
		}
		g, err := builder.BuildGraph(copts, bopts, cons...)
		return g, historyKey(key), err
	}

	if cfg.Input() == "" {
		return nil, "", ErrNoInput
	}
	format, err := cfg.Format()
	if err != nil {
		return nil, "", err
	}
	g, err := graphio.Load(cfg.Input(), format, copts...)
	if err != nil {
		return nil, "", err
	}
	return g, historyKey(filepath.Base(cfg.Input())), nil
}

// saveGraph writes g as text for .txt/.el/.edges paths and binary otherwise.
func saveGraph(path string, g *core.Graph) error {
	if graphio.FormatOf(path) == graphio.Binary {
		return graphio.WriteBinaryFile(path, g)
	}
	var buf bytes.Buffer
	if err := graphio.WriteEdgeList(&buf, g); err != nil {
		return err
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

// historyKey makes s usable as a history graph key.
func historyKey(s string) string {
	return strings.ReplaceAll(s, "/", "_")
}
