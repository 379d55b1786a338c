package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/parity/config"
	"github.com/katalvlaran/parity/strategy"
)

func write(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "pgsolve.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestDefault_IsValid(t *testing.T) {
	cfg := config.Default()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, strategy.Kinds(), cfg.Kinds())
	assert.Equal(t, 10*time.Second, cfg.Timeout)
}

func TestLoad_Overlay(t *testing.T) {
	path := write(t, `
timeout: 250ms
workers: 2
strategies: [SelfLoop, input]
log_format: json
metrics_file: /tmp/pgsolve.prom
`)
	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, 250*time.Millisecond, cfg.Timeout)
	assert.Equal(t, 2, cfg.Workers)
	assert.Equal(t, []strategy.Kind{strategy.SelfLoop, strategy.Input}, cfg.Kinds())
	assert.Equal(t, "json", cfg.LogFormat)
	assert.Equal(t, "warn", cfg.LogLevel, "unset keys keep their default")
	assert.Equal(t, "/tmp/pgsolve.prom", cfg.MetricsFile)
}

func TestLoad_EmptyFileKeepsDefaults(t *testing.T) {
	cfg, err := config.Load(write(t, "\n"))
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)
}

func TestLoad_Errors(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	_, err = config.Load(write(t, "timout: 1s\n"))
	assert.ErrorContains(t, err, "timout")

	cases := map[string]string{
		"zero timeout":       "timeout: 0s\n",
		"negative workers":   "workers: -1\n",
		"no strategies":      "strategies: []\n",
		"unknown strategy":   "strategies: [fastest]\n",
		"duplicate strategy": "strategies: [input, INPUT]\n",
		"bad level":          "log_level: loud\n",
		"bad format":         "log_format: xml\n",
	}
	for name, body := range cases {
		_, err := config.Load(write(t, body))
		assert.ErrorIs(t, err, config.ErrInvalidConfig, name)
	}
}

func TestFromEnv(t *testing.T) {
	t.Setenv(config.EnvVar, "")
	cfg, err := config.FromEnv()
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)

	t.Setenv(config.EnvVar, write(t, "seed: 99\n"))
	cfg, err = config.FromEnv()
	require.NoError(t, err)
	assert.EqualValues(t, 99, cfg.Seed)
}
