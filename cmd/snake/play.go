package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/platform/tui"
	"github.com/vovakirdan/tui-snake/internal/storage"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a game",
	Long: `Start a game right away.

The board fills the terminal unless grid.width and grid.height are set in
the config. The board keeps its size when the window is resized.

Controls:
  Arrows/WASD/hjkl - Steer
  P/Esc            - Pause
  R                - Restart
  Ctrl+S           - Screenshot to ~/.snake/screenshots
  Q/Ctrl+C         - Quit

Examples:
  snake play
  snake play --fps 15
  snake play --seed 42 --config ./my-snake.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

// terminalConfig fills the screen size from the controlling terminal.
func terminalConfig(rt core.RuntimeConfig) core.RuntimeConfig {
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		rt.ScreenW = w
		rt.ScreenH = h
	}
	return rt
}

// openStore opens the scores database. Failures are reported and the game
// continues without storage.
func openStore(path string) *storage.Store {
	store, err := storage.Open(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		return nil
	}
	return store
}

// playerName returns the local user name recorded with scores.
func playerName() string {
	if u := os.Getenv("USER"); u != "" {
		return u
	}
	return "player"
}

func runPlay(_ *cobra.Command, _ []string) {
	s, err := loadSettings()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	logger, closeLog, err := uiLogger(s.Config.Log.Level)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer closeLog()

	cfg := terminalConfig(s.Runtime)
	store := openStore(s.DBPath)

	game := tui.NewSnakeGame(cfg, logger)
	logger.Info("game started", "grid", fmt.Sprintf("%dx%d", game.Grid().Width(), game.Grid().Height()), "rate", cfg.TickRate)

	_, runErr := tui.Run(game, cfg, tui.GameOptions{
		Store:  store,
		Theme:  s.Theme,
		Player: playerName(),
		Logger: logger,
	})

	// Close store before potential exit
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
