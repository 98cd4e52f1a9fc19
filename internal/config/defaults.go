package config

import (
	_ "embed"
)

//go:embed defaults/snake.yaml
var defaultSnakeYAML []byte

// DefaultSnakeConfig returns the default snake configuration.
func DefaultSnakeConfig() SnakeConfig {
	return SnakeConfig{
		Tick: TickConfig{
			Rate: 10,
		},
		Glyphs: GlyphConfig{
			Head:  "██",
			Body:  "▓▓",
			Apple: "()",
		},
		Colors: ColorConfig{
			Head:   "bright_green",
			Body:   "green",
			Apple:  "bright_red",
			Border: "gray",
		},
		Storage: StorageConfig{
			DBPath: "~/.snake/scores.db",
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// GetDefaultYAML returns the embedded default YAML.
func GetDefaultYAML() []byte {
	return defaultSnakeYAML
}
