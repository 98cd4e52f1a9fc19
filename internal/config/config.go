// Package config provides YAML-based configuration loading for the snake game.
package config

import (
	"errors"
	"fmt"
)

// SnakeConfig contains all configuration for the snake game.
type SnakeConfig struct {
	Grid    GridConfig    `yaml:"grid"`
	Tick    TickConfig    `yaml:"tick"`
	Glyphs  GlyphConfig   `yaml:"glyphs"`
	Colors  ColorConfig   `yaml:"colors"`
	Storage StorageConfig `yaml:"storage"`
	Log     LogConfig     `yaml:"log"`
}

// GridConfig defines the board size in tiles.
// A zero width or height means "derive from the terminal size".
type GridConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// TickConfig defines the game speed.
type TickConfig struct {
	Rate int `yaml:"rate"` // Moves per second
}

// GlyphConfig defines the two-cell strings drawn for each tile kind.
type GlyphConfig struct {
	Head  string `yaml:"head"`
	Body  string `yaml:"body"`
	Apple string `yaml:"apple"`
}

// ColorConfig names the colors used for each tile kind (see core.ParseColor).
type ColorConfig struct {
	Head   string `yaml:"head"`
	Body   string `yaml:"body"`
	Apple  string `yaml:"apple"`
	Border string `yaml:"border"`
}

// StorageConfig defines where high scores are kept.
type StorageConfig struct {
	DBPath string `yaml:"db_path"`
}

// LogConfig defines logging verbosity.
type LogConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error
}

// Minimum grid dimensions that hold the initial vertical chain.
const (
	MinGridWidth  = 1
	MinGridHeight = 5
)

// ErrInvalidConfig is returned by Validate for out-of-range values.
var ErrInvalidConfig = errors.New("invalid config")

// HasFixedGrid reports whether the grid size is set explicitly.
func (c SnakeConfig) HasFixedGrid() bool {
	return c.Grid.Width > 0 && c.Grid.Height > 0
}

// Validate checks that the configuration can start a game.
func (c SnakeConfig) Validate() error {
	if c.Grid.Width < 0 || c.Grid.Height < 0 {
		return fmt.Errorf("config: negative grid size %dx%d: %w", c.Grid.Width, c.Grid.Height, ErrInvalidConfig)
	}
	if c.HasFixedGrid() && (c.Grid.Width < MinGridWidth || c.Grid.Height < MinGridHeight) {
		return fmt.Errorf("config: grid %dx%d is smaller than %dx%d: %w",
			c.Grid.Width, c.Grid.Height, MinGridWidth, MinGridHeight, ErrInvalidConfig)
	}
	if c.Tick.Rate <= 0 {
		return fmt.Errorf("config: tick rate must be positive, got %d: %w", c.Tick.Rate, ErrInvalidConfig)
	}
	return nil
}
