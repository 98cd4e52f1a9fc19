package main

import (
	"bytes"
	"context"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/games/snake"
)

func TestMergeSettingsDefaults(t *testing.T) {
	s, err := mergeSettings(config.DefaultSnakeConfig(), flagValues{})
	require.NoError(t, err)

	require.Equal(t, 10, s.Runtime.TickRate)
	require.Zero(t, s.Runtime.GridW, "grid follows the terminal by default")
	require.Equal(t, "~/.snake/scores.db", s.DBPath)
	require.Equal(t, snake.DefaultTheme(), s.Theme)
}

func TestMergeSettingsFlagsOverride(t *testing.T) {
	cfg := config.DefaultSnakeConfig()
	cfg.Grid = config.GridConfig{Width: 30, Height: 12}

	s, err := mergeSettings(cfg, flagValues{FPS: 20, Seed: 99, DBPath: "/tmp/x.db", LogLevel: "debug"})
	require.NoError(t, err)

	require.Equal(t, 20, s.Runtime.TickRate)
	require.Equal(t, int64(99), s.Runtime.Seed)
	require.Equal(t, 30, s.Runtime.GridW)
	require.Equal(t, 12, s.Runtime.GridH)
	require.Equal(t, "/tmp/x.db", s.DBPath)
	require.Equal(t, "debug", s.Config.Log.Level)
}

func TestMergeSettingsRejectsInvalid(t *testing.T) {
	cfg := config.DefaultSnakeConfig()
	cfg.Grid = config.GridConfig{Width: 10, Height: 3}
	_, err := mergeSettings(cfg, flagValues{})
	require.ErrorIs(t, err, config.ErrInvalidConfig)

	cfg = config.DefaultSnakeConfig()
	cfg.Colors.Apple = "plaid"
	_, err = mergeSettings(cfg, flagValues{})
	require.Error(t, err)
}

func TestThemeFromConfig(t *testing.T) {
	cfg := config.DefaultSnakeConfig()
	cfg.Glyphs.Head = "@@"
	cfg.Colors.Apple = "yellow"
	cfg.Colors.Border = ""

	theme, err := themeFromConfig(cfg)
	require.NoError(t, err)
	require.Equal(t, "@@", theme.Head)
	require.Equal(t, "▓▓", theme.Body)
	require.Equal(t, core.ColorYellow, theme.AppleColor)
	require.Equal(t, snake.DefaultTheme().BorderColor, theme.BorderColor)
}

func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer
	logger, err := newLogger(&buf, "warn")
	require.NoError(t, err)
	require.Equal(t, log.WarnLevel, logger.GetLevel())

	logger.Info("hidden")
	logger.Warn("shown")
	require.NotContains(t, buf.String(), "hidden")
	require.Contains(t, buf.String(), "shown")

	_, err = newLogger(io.Discard, "loud")
	require.Error(t, err)
}

func TestSimulate(t *testing.T) {
	game := snake.NewGame(snake.NewGrid(10, 10), snake.WithSeed(3))
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	stats := simulate(ctx, game, 500, time.Millisecond, log.New(io.Discard))

	require.GreaterOrEqual(t, stats.Ticks, 500)
	require.Positive(t, stats.Apples, "autopilot should reach at least one apple")
	require.GreaterOrEqual(t, stats.BestLen, snake.InitialLength)
}

func TestBoardString(t *testing.T) {
	snap := snake.Snapshot{
		Width: 4, Height: 3,
		Head:     snake.Position{X: 1, Y: 1},
		Body:     []snake.Position{{X: 1, Y: 2}, {X: 2, Y: 2}},
		Apple:    snake.Position{X: 3, Y: 0},
		HasApple: true,
	}

	expected := strings.Join([]string{
		"...*",
		".@..",
		".oo.",
	}, "\n")
	require.Equal(t, expected, boardString(snap))
}
