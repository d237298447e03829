package main

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	require.Equal(t, 4096, cfg.Points)
	require.Equal(t, 2, cfg.Iterations)
	require.Equal(t, 30, cfg.Scale)
	require.Equal(t, float64(1<<28), cfg.Radius)
	require.Equal(t, uint(6), cfg.Shift)
	require.Equal(t, "RHAZ", cfg.Rounding)
	require.Equal(t, []string{"invsqrt", "roundtrip", "atan2"}, cfg.Ops)
	require.False(t, cfg.Log.JSON)

	opts, err := cfg.options()
	require.NoError(t, err)
	require.NotEmpty(t, opts)
}

func TestLoadOverlay(t *testing.T) {
	path := writeConfig(t, "points: 128\nrounding: rhu\nops: [atan2]\nlog:\n  json: true\n")

	cfg, err := Load(path)
	require.NoError(t, err)

	require.Equal(t, 128, cfg.Points)
	require.Equal(t, 2, cfg.Iterations)
	require.Equal(t, "rhu", cfg.Rounding)
	require.Equal(t, []string{"atan2"}, cfg.Ops)
	require.True(t, cfg.Log.JSON)
	require.Equal(t, "info", cfg.Log.Level)

	_, err = cfg.options()
	require.NoError(t, err)
}

func TestLoadErrors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)

	_, err = Load(writeConfig(t, "points: [1, 2\n"))
	require.Error(t, err)

	cfg, err := Load(writeConfig(t, "rounding: nearest\n"))
	require.NoError(t, err)
	_, err = cfg.options()
	require.Error(t, err)
}

func TestLogLevel(t *testing.T) {
	cfg := &Config{}
	level, err := cfg.logLevel()
	require.NoError(t, err)
	require.Equal(t, slog.LevelInfo, level)

	cfg.Log.Level = "debug"
	level, err = cfg.logLevel()
	require.NoError(t, err)
	require.Equal(t, slog.LevelDebug, level)

	cfg.Log.Level = "loud"
	_, err = cfg.logLevel()
	require.Error(t, err)
}

func TestRunConfigFile(t *testing.T) {
	path := writeConfig(t, "points: 64\nops: [roundtrip]\n")

	out, _, err := runForTest(t, "-config", path)
	require.NoError(t, err)
	require.Contains(t, out, "roundtrip")
	require.NotContains(t, out, "invsqrt")
}
