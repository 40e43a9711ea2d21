package config_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/algokit/internal/config"
	"github.com/katalvlaran/algokit/sorting"
)

func writeFile(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "algokit.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

	return path
}

func TestDefaultIsValid(t *testing.T) {
	cfg := config.Default()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, sorting.DefaultAlgorithm, cfg.Algorithm())
	assert.Equal(t, 3, cfg.Matrix.Rows)
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := writeFile(t, `
log:
  level: debug
  json: true
sort:
  algorithm: quick
matrix:
  rows: 2
`)
	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.True(t, cfg.Log.JSON)
	assert.Equal(t, sorting.AlgoQuick, cfg.Algorithm())
	assert.False(t, cfg.Sort.Descending)
	assert.Equal(t, 2, cfg.Matrix.Rows)
	assert.Equal(t, 3, cfg.Matrix.Cols, "unset keys keep defaults")
}

func TestLoadEmptyFile(t *testing.T) {
	cfg, err := config.Load(writeFile(t, ""))
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestDecodeUnknownKey(t *testing.T) {
	_, err := config.Decode(strings.NewReader("sort:\n  algo: heap\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "algo")
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*config.Config)
	}{
		{"bad level", func(c *config.Config) { c.Log.Level = "loud" }},
		{"bad algorithm", func(c *config.Config) { c.Sort.Algorithm = "bogo" }},
		{"zero rows", func(c *config.Config) { c.Matrix.Rows = 0 }},
		{"negative cols", func(c *config.Config) { c.Matrix.Cols = -1 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.Default()
			tt.mutate(&cfg)
			assert.ErrorIs(t, cfg.Validate(), config.ErrInvalid)
		})
	}
}
