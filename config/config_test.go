// SPDX-License-Identifier: MIT
package config_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/katalvlaran/linstep/config"
	"github.com/katalvlaran/linstep/solver"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestDefault_IsValid(t *testing.T) {
	cfg := config.Default()
	require.NoError(t, cfg.Validate())

	m, err := cfg.Solver.Method()
	require.NoError(t, err)
	assert.Equal(t, solver.MethodGauss, m)
	assert.Len(t, cfg.Solver.Options(), 4)
}

func TestLoad_EmptyPath(t *testing.T) {
	cfg, err := config.Load("")
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)
}

func TestParse_Overrides(t *testing.T) {
	cfg, err := config.Parse(strings.NewReader(`
log:
  level: debug
solver:
  default_method: jacobi
  max_iterations: 200
server:
  addr: "127.0.0.1:9090"
  shutdown_timeout: 2s
`))
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Encoding)
	assert.Equal(t, 200, cfg.Solver.MaxIterations)
	assert.Equal(t, solver.DefaultTolerance, cfg.Solver.Tolerance)
	assert.Equal(t, "127.0.0.1:9090", cfg.Server.Addr)
	assert.Equal(t, 2*time.Second, cfg.Server.ShutdownTimeout)

	m, err := cfg.Solver.Method()
	require.NoError(t, err)
	assert.Equal(t, solver.MethodJacobi, m)
}

func TestParse_Empty(t *testing.T) {
	cfg, err := config.Parse(strings.NewReader(""))
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)
}

func TestParse_Invalid(t *testing.T) {
	cases := map[string]string{
		"level":     "log:\n  level: loud\n",
		"method":    "solver:\n  default_method: lu\n",
		"tolerance": "solver:\n  tolerance: 0\n",
		"iter":      "solver:\n  max_iterations: -3\n",
		"iter_cap":  "solver:\n  max_iterations: 1001\n",
		"addr":      "server:\n  addr: nowhere\n",
	}
	for name, doc := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := config.Parse(strings.NewReader(doc))
			require.ErrorIs(t, err, config.ErrInvalidConfig)
		})
	}

	_, err := config.Parse(strings.NewReader("solver:\n  unknown_key: 1\n"))
	require.Error(t, err)
	assert.NotErrorIs(t, err, config.ErrInvalidConfig)
}

func TestLoad_File(t *testing.T) {
	p := filepath.Join(t.TempDir(), "linstep.yaml")
	require.NoError(t, os.WriteFile(p, []byte("server:\n  addr: \":7070\"\n"), 0o600))

	cfg, err := config.Load(p)
	require.NoError(t, err)
	assert.Equal(t, ":7070", cfg.Server.Addr)

	_, err = config.Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
}

func TestLogConfig_Build(t *testing.T) {
	l, err := config.LogConfig{Level: "warn", Encoding: "json"}.Build(false)
	require.NoError(t, err)
	assert.False(t, l.Core().Enabled(zapcore.InfoLevel))
	assert.True(t, l.Core().Enabled(zapcore.WarnLevel))

	l, err = config.LogConfig{Level: "warn", Encoding: "console"}.Build(true)
	require.NoError(t, err)
	assert.True(t, l.Core().Enabled(zapcore.DebugLevel))

	_, err = config.LogConfig{Level: "chatty", Encoding: "json"}.Build(false)
	require.Error(t, err)
}
