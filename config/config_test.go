// SPDX-License-Identifier: MIT
package config_test

import (
	"bytes"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/tricount/config"
	"github.com/katalvlaran/tricount/graphio"
	"github.com/katalvlaran/tricount/triangle"
)

func TestDefaults(t *testing.T) {
	c := config.New()
	assert.Equal(t, runtime.NumCPU(), c.Workers())
	assert.Equal(t, 1, c.Repeat())
	assert.Equal(t, int64(1), c.RunSeed())
	assert.False(t, c.FixedTarget())
	assert.Equal(t, "", c.Input())
	assert.False(t, c.HistoryEnabled())
	assert.Equal(t, int64(12345678), c.PiPoints())
	assert.Equal(t, int64(1), c.PiSeed())
	assert.Equal(t, "info", c.LogLevel())

	s, err := c.Strategy()
	require.NoError(t, err)
	assert.Equal(t, triangle.Dynamic, s)
	f, err := c.Format()
	require.NoError(t, err)
	assert.Equal(t, graphio.Format(""), f)
	require.NoError(t, c.Validate())
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tricount.yaml")
	doc := "run:\n  workers: 3\n  strategy: edge\n  format: text\nhistory:\n  enabled: true\n  path: /tmp/runs\n"
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o644))

	c := config.New()
	require.NoError(t, c.LoadFile(path))
	assert.Equal(t, 3, c.Workers())
	s, err := c.Strategy()
	require.NoError(t, err)
	assert.Equal(t, triangle.EdgeBalanced, s)
	f, err := c.Format()
	require.NoError(t, err)
	assert.Equal(t, graphio.Text, f)
	assert.True(t, c.HistoryEnabled())
	assert.Equal(t, "/tmp/runs", c.HistoryPath())
	assert.Equal(t, 1, c.Repeat())

	require.Error(t, c.LoadFile(filepath.Join(t.TempDir(), "missing.yaml")))
}

func TestEnvOverride(t *testing.T) {
	t.Setenv("TRICOUNT_RUN_WORKERS", "7")
	t.Setenv("TRICOUNT_PI_SEED", "42")
	c := config.New()
	assert.Equal(t, 7, c.Workers())
	assert.Equal(t, int64(42), c.PiSeed())
}

func TestBindFlags(t *testing.T) {
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	fs.IntP("workers", "t", 4, "")
	fs.StringP("strategy", "s", "dynamic", "")
	fs.Int("repeat", 1, "")
	fs.Bool("verbose", false, "unknown to config")

	c := config.New()
	require.NoError(t, c.BindFlags(fs))
	require.NoError(t, fs.Parse([]string{"-t", "2", "--strategy=vertex"}))

	assert.Equal(t, 2, c.Workers())
	s, err := c.Strategy()
	require.NoError(t, err)
	assert.Equal(t, triangle.VertexBalanced, s)
	assert.Equal(t, 1, c.Repeat())
}

func TestValidate(t *testing.T) {
	cases := []struct {
		key   string
		value interface{}
		want  error
	}{
		{config.KeyWorkers, 0, triangle.ErrInvalidWorkers},
		{config.KeyRepeat, 0, config.ErrInvalidValue},
		{config.KeyPiPoints, -1, config.ErrInvalidValue},
		{config.KeyStrategy, "fastest", triangle.ErrUnknownStrategy},
		{config.KeyFormat, "csv", graphio.ErrUnknownFormat},
		{config.KeyLogLevel, "loud", config.ErrInvalidValue},
	}
	for _, tc := range cases {
		t.Run(tc.key, func(t *testing.T) {
			c := config.New()
			c.Set(tc.key, tc.value)
			require.ErrorIs(t, c.Validate(), tc.want)
		})
	}
}

func TestLoggerTo(t *testing.T) {
	var buf bytes.Buffer
	c := config.New()
	c.Set(config.KeyLogLevel, "warn")
	log := c.LoggerTo(&buf, "tricount")

	log.Info().Msg("hidden")
	log.Warn().Int("workers", 3).Msg("shown")

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "shown")
	assert.Contains(t, out, "service=tricount")
	assert.Contains(t, out, "workers=3")
}
