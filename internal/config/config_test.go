package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	var cfg SnakeConfig
	require.NoError(t, yaml.Unmarshal(GetDefaultYAML(), &cfg))
	require.Equal(t, DefaultSnakeConfig(), cfg)
	require.NoError(t, cfg.Validate())
}

func TestLoadSnakeFallsBackToEmbedded(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	cfg, err := LoadSnake("")
	require.NoError(t, err)
	require.Equal(t, DefaultSnakeConfig(), cfg)
}

func TestLoadSnakeUserConfig(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	dir := filepath.Join(home, ".snake", "configs")
	require.NoError(t, os.MkdirAll(dir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "snake.yaml"), []byte("tick:\n  rate: 15\n"), 0o644))

	cfg, err := LoadSnake("")
	require.NoError(t, err)
	require.Equal(t, 15, cfg.Tick.Rate)
	require.Equal(t, "()", cfg.Glyphs.Apple, "unset keys keep their defaults")
}

func TestLoadSnakeCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "snake.yaml")
	data := []byte(`
grid:
  width: 20
  height: 12
colors:
  apple: yellow
log:
  level: debug
`)
	require.NoError(t, os.WriteFile(path, data, 0o644))

	cfg, err := LoadSnake(path)
	require.NoError(t, err)
	require.True(t, cfg.HasFixedGrid())
	require.Equal(t, GridConfig{Width: 20, Height: 12}, cfg.Grid)
	require.Equal(t, "yellow", cfg.Colors.Apple)
	require.Equal(t, "green", cfg.Colors.Body)
	require.Equal(t, "debug", cfg.Log.Level)
	require.Equal(t, 10, cfg.Tick.Rate)
}

func TestLoadSnakeCustomPathErrors(t *testing.T) {
	_, err := LoadSnake(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)

	bad := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("grid: [not, a, map"), 0o644))
	_, err = LoadSnake(bad)
	require.Error(t, err)

	small := filepath.Join(t.TempDir(), "small.yaml")
	require.NoError(t, os.WriteFile(small, []byte("grid:\n  width: 10\n  height: 4\n"), 0o644))
	_, err = LoadSnake(small)
	require.ErrorIs(t, err, ErrInvalidConfig)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*SnakeConfig)
		wantErr bool
	}{
		{"defaults", func(*SnakeConfig) {}, false},
		{"minimum grid", func(c *SnakeConfig) { c.Grid = GridConfig{Width: 1, Height: 5} }, false},
		{"too short", func(c *SnakeConfig) { c.Grid = GridConfig{Width: 10, Height: 4} }, true},
		{"negative width", func(c *SnakeConfig) { c.Grid = GridConfig{Width: -1} }, true},
		{"only width set", func(c *SnakeConfig) { c.Grid = GridConfig{Width: 10} }, false},
		{"zero rate", func(c *SnakeConfig) { c.Tick.Rate = 0 }, true},
		{"negative rate", func(c *SnakeConfig) { c.Tick.Rate = -3 }, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultSnakeConfig()
			tc.mutate(&cfg)
			err := cfg.Validate()
			if tc.wantErr {
				require.ErrorIs(t, err, ErrInvalidConfig)
			} else {
				require.NoError(t, err)
			}
		})
	}
}
