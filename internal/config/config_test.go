package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_MissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
	assert.True(t, cfg.Search.Memoize)
	assert.Zero(t, cfg.Optimizer().Workers)
}

func TestLoad_Overrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "gemer.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
log_level: debug
catalog: pools/wotlk.json.br
search:
  workers: 2
`), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "pools/wotlk.json.br", cfg.Catalog)
	assert.Equal(t, 2, cfg.Optimizer().Workers)
	assert.True(t, cfg.Optimizer().Memoize, "unset keys keep their defaults")
}

func TestLoad_Errors(t *testing.T) {
	dir := t.TempDir()

	bad := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("search: ["), 0o644))
	_, err := Load(bad)
	assert.ErrorContains(t, err, "parsing config")

	level := filepath.Join(dir, "level.yaml")
	require.NoError(t, os.WriteFile(level, []byte("log_level: loud"), 0o644))
	_, err = Load(level)
	assert.ErrorContains(t, err, `unknown log level "loud"`)
}

func TestPath(t *testing.T) {
	t.Setenv(EnvPath, "")
	assert.Equal(t, DefaultPath, Path(""))

	t.Setenv(EnvPath, "/etc/gemer.yaml")
	assert.Equal(t, "/etc/gemer.yaml", Path(""))
	assert.Equal(t, "local.yaml", Path("local.yaml"))
}

func TestParseLogLevel(t *testing.T) {
	tests := map[string]slog.Level{
		"":      slog.LevelInfo,
		"DEBUG": slog.LevelDebug,
		"warn":  slog.LevelWarn,
		"error": slog.LevelError,
	}
	for in, want := range tests {
		got, err := ParseLogLevel(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}
}
