// SPDX-License-Identifier: MIT
// Package: tricount/builder
//
// config.go - internal configuration and deterministic defaults.
//
// Design:
//   • builderConfig is the single source of truth for all builder knobs.
//   • Defaults are deterministic and documented; no globals.
//   • newBuilderConfig applies options in-order (later overrides earlier).
//
// Deterministic defaults:
//   • rng        = nil    (pure/deterministic unless seeded)
//   • bidirected = false  (one arc per undirected edge)

package builder

import (
	"math/rand"

	"github.com/katalvlaran/tricount/core"
)

// builderConfig aggregates all knobs used by constructors.
// It is passed by VALUE to constructors.
type builderConfig struct {
	// RNG for stochastic choices; nil means "no randomness".
	rng *rand.Rand
	// Emit v→u alongside every undirected u→v.
	bidirected bool
}

// newBuilderConfig constructs a config with deterministic defaults and applies
// all options in order.
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// link adds u→v, and v→u when the config is bidirected.
func (cfg builderConfig) link(b *core.Builder, u, v core.VertexID) error {
	if err := b.AddEdge(u, v); err != nil {
		return err
	}
	if cfg.bidirected {
		return b.AddEdge(v, u)
	}
	return nil
}
