// SPDX-License-Identifier: MIT
//
// File: config.go
// Role: Viper-backed settings shared by the tricount and piestimate CLIs.
// Policy:
//   - Precedence: explicit Set > bound flag (when changed) > env TRICOUNT_* > file > default.
//   - Typed getters never fail; Validate reports bad values in one place.

package config

import (
	"fmt"
	"io"
	"os"
	"runtime"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/katalvlaran/tricount/graphio"
	"github.com/katalvlaran/tricount/triangle"
)

// EnvPrefix prefixes environment overrides: run.workers ← TRICOUNT_RUN_WORKERS.
const EnvPrefix = "TRICOUNT"

// Setting keys.
const (
	KeyWorkers        = "run.workers"
	KeyStrategy       = "run.strategy"
	KeyInput          = "run.input"
	KeyFormat         = "run.format"
	KeyRepeat         = "run.repeat"
	KeyRunSeed        = "run.seed"
	KeyFixedTarget    = "run.fixed_target"
	KeyHistoryPath    = "history.path"
	KeyHistoryEnabled = "history.enabled"
	KeyPiPoints       = "pi.points"
	KeyPiSeed         = "pi.seed"
	KeyLogLevel       = "logging.level"
)

// flagKeys maps CLI flag names onto setting keys for BindFlags.
var flagKeys = map[string]string{
	"workers":      KeyWorkers,
	"strategy":     KeyStrategy,
	"input":        KeyInput,
	"format":       KeyFormat,
	"repeat":       KeyRepeat,
	"gen-seed":     KeyRunSeed,
	"fixed-target": KeyFixedTarget,
	"history":      KeyHistoryPath,
	"record":       KeyHistoryEnabled,
	"points":       KeyPiPoints,
	"seed":         KeyPiSeed,
	"log-level":    KeyLogLevel,
}

// Config wraps a private viper instance.
type Config struct {
	v *viper.Viper
}

// New returns a Config holding the defaults, with TRICOUNT_* env overrides enabled.
func New() *Config {
	v := viper.New()

	v.SetDefault(KeyWorkers, runtime.NumCPU())
	v.SetDefault(KeyStrategy, triangle.Dynamic.String())
	v.SetDefault(KeyInput, "")
	v.SetDefault(KeyFormat, "")
	v.SetDefault(KeyRepeat, 1)
	v.SetDefault(KeyRunSeed, 1)
	v.SetDefault(KeyFixedTarget, false)

	v.SetDefault(KeyHistoryPath, "")
	v.SetDefault(KeyHistoryEnabled, false)

	v.SetDefault(KeyPiPoints, 12345678)
	v.SetDefault(KeyPiSeed, 1)

	v.SetDefault(KeyLogLevel, "info")

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	return &Config{v: v}
}

// LoadFile merges a config file (yaml, toml, json, ... by extension).
func (c *Config) LoadFile(path string) error {
	c.v.SetConfigFile(path)
	if err := c.v.ReadInConfig(); err != nil {
		return fmt.Errorf("config: load %s: %w", path, err)
	}
	return nil
}

// BindFlags binds every known flag present in fs. Unknown flags are ignored.
func (c *Config) BindFlags(fs *pflag.FlagSet) error {
	var err error
	fs.VisitAll(func(f *pflag.Flag) {
		key, ok := flagKeys[f.Name]
		if !ok || err != nil {
			return
		}
		err = c.v.BindPFlag(key, f)
	})
	return err
}

// Set overrides a key.
func (c *Config) Set(key string, value interface{}) { c.v.Set(key, value) }

// Typed getters.
func (c *Config) Workers() int { return c.v.GetInt(KeyWorkers) }
func (c *Config) StrategyName() string { return c.v.GetString(KeyStrategy) }
func (c *Config) Input() string { return c.v.GetString(KeyInput) }
func (c *Config) FormatName() string { return c.v.GetString(KeyFormat) }
func (c *Config) Repeat() int { return c.v.GetInt(KeyRepeat) }
func (c *Config) RunSeed() int64 { return c.v.GetInt64(KeyRunSeed) }
func (c *Config) FixedTarget() bool { return c.v.GetBool(KeyFixedTarget) }
func (c *Config) HistoryPath() string { return c.v.GetString(KeyHistoryPath) }
func (c *Config) HistoryEnabled() bool { return c.v.GetBool(KeyHistoryEnabled) }
func (c *Config) PiPoints() int64 { return c.v.GetInt64(KeyPiPoints) }
func (c *Config) PiSeed() int64 { return c.v.GetInt64(KeyPiSeed) }
func (c *Config) LogLevel() string { return c.v.GetString(KeyLogLevel) }

// Strategy parses run.strategy.
func (c *Config) Strategy() (triangle.Strategy, error) {
	return triangle.ParseStrategy(c.StrategyName())
}

// Format parses run.format; empty means "guess from the extension".
func (c *Config) Format() (graphio.Format, error) {
	return graphio.ParseFormat(c.FormatName())
}

// Validate checks every value a CLI will consume.
func (c *Config) Validate() error {
	if w := c.Workers(); w < 1 {
		return fmt.Errorf("config: %s=%d: %w", KeyWorkers, w, triangle.ErrInvalidWorkers)
	}
	if r := c.Repeat(); r < 1 {
		return fmt.Errorf("config: %s=%d: %w", KeyRepeat, r, ErrInvalidValue)
	}
	if p := c.PiPoints(); p < 0 {
		return fmt.Errorf("config: %s=%d: %w", KeyPiPoints, p, ErrInvalidValue)
	}
	if _, err := c.Strategy(); err != nil {
		return fmt.Errorf("config: %s: %w", KeyStrategy, err)
	}
	if _, err := c.Format(); err != nil {
		return fmt.Errorf("config: %s: %w", KeyFormat, err)
	}
	if _, err := zerolog.ParseLevel(c.LogLevel()); err != nil {
		return fmt.Errorf("config: %s=%q: %w", KeyLogLevel, c.LogLevel(), ErrInvalidValue)
	}
	return nil
}

// Logger builds a console logger on stderr at logging.level.
func (c *Config) Logger(service string) zerolog.Logger {
	return c.LoggerTo(os.Stderr, service)
}

// LoggerTo is Logger with an explicit sink. Unknown levels fall back to info.
func (c *Config) LoggerTo(w io.Writer, service string) zerolog.Logger {
	level, err := zerolog.ParseLevel(c.LogLevel())
	if err != nil {
		level = zerolog.InfoLevel
	}
	return zerolog.New(zerolog.ConsoleWriter{
		Out:        w,
		TimeFormat: "15:04:05",
		NoColor:    true,
	}).Level(level).With().Timestamp().Str("service", service).Logger()
}
