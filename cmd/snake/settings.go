package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/games/snake"
)

// settings is the merged result of the config file and the global flags.
type settings struct {
	Config  config.SnakeConfig
	Runtime core.RuntimeConfig
	Theme   snake.Theme
	DBPath  string
}

// flagValues carries the global flags so merging can be tested without cobra.
type flagValues struct {
	FPS      int
	Seed     int64
	DBPath   string
	LogLevel string
}

func currentFlags() flagValues {
	return flagValues{
		FPS:      flagFPS,
		Seed:     flagSeed,
		DBPath:   flagDBPath,
		LogLevel: flagLogLevel,
	}
}

// loadSettings loads the config file and applies flag overrides.
func loadSettings() (settings, error) {
	cfg, err := config.LoadSnake(flagConfig)
	if err != nil {
		return settings{}, err
	}
	return mergeSettings(cfg, currentFlags())
}

// mergeSettings applies non-zero flags on top of cfg.
func mergeSettings(cfg config.SnakeConfig, flags flagValues) (settings, error) {
	if flags.FPS > 0 {
		cfg.Tick.Rate = flags.FPS
	}
	if flags.DBPath != "" {
		cfg.Storage.DBPath = flags.DBPath
	}
	if flags.LogLevel != "" {
		cfg.Log.Level = flags.LogLevel
	}
	if err := cfg.Validate(); err != nil {
		return settings{}, err
	}

	theme, err := themeFromConfig(cfg)
	if err != nil {
		return settings{}, err
	}

	rt := core.DefaultConfig()
	rt.TickRate = cfg.Tick.Rate
	rt.Seed = flags.Seed
	if cfg.HasFixedGrid() {
		rt.GridW = cfg.Grid.Width
		rt.GridH = cfg.Grid.Height
	}

	return settings{
		Config:  cfg,
		Runtime: rt,
		Theme:   theme,
		DBPath:  cfg.Storage.DBPath,
	}, nil
}

// themeFromConfig builds the board theme from the glyph and color sections.
func themeFromConfig(cfg config.SnakeConfig) (snake.Theme, error) {
	theme := snake.DefaultTheme()
	if cfg.Glyphs.Head != "" {
		theme.Head = cfg.Glyphs.Head
	}
	if cfg.Glyphs.Body != "" {
		theme.Body = cfg.Glyphs.Body
	}
	if cfg.Glyphs.Apple != "" {
		theme.Apple = cfg.Glyphs.Apple
	}

	colors := []struct {
		name string
		dst  *core.Color
	}{
		{cfg.Colors.Head, &theme.HeadColor},
		{cfg.Colors.Body, &theme.BodyColor},
		{cfg.Colors.Apple, &theme.AppleColor},
		{cfg.Colors.Border, &theme.BorderColor},
	}
	for _, c := range colors {
		if c.name == "" {
			continue
		}
		parsed, ok := core.ParseColor(c.name)
		if !ok {
			return snake.Theme{}, fmt.Errorf("config: unknown color %q", c.name)
		}
		*c.dst = parsed
	}
	return theme, nil
}

// newLogger creates a logger at the configured level writing to w.
func newLogger(w io.Writer, level string) (*log.Logger, error) {
	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "snake",
	})
	if level == "" {
		return logger, nil
	}
	lvl, err := log.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	logger.SetLevel(lvl)
	return logger, nil
}

// uiLogger returns a logger for full-screen commands: the alt screen owns the
// terminal, so logs go to --log-file or are dropped.
func uiLogger(level string) (*log.Logger, func(), error) {
	if flagLogFile == "" {
		logger, err := newLogger(io.Discard, level)
		return logger, func() {}, err
	}

	f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("cannot open log file: %w", err)
	}
	logger, err := newLogger(f, level)
	if err != nil {
		f.Close()
		return nil, nil, err
	}
	return logger, func() { f.Close() }, nil
}
