package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-snake/internal/platform/tui"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start snake with a menu",
	Long: `Start snake in interactive menu mode.

Use arrow keys or j/k to navigate, Enter to select.
Press B during a game to return to the menu.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Select
  Q            - Quit

Examples:
  snake menu
  snake menu --fps 15
  snake menu --db ./scores.db`,
	Args: cobra.NoArgs,
	Run:  runMenu,
}

func runMenu(_ *cobra.Command, _ []string) {
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

	store := openStore(s.DBPath)
	cfg := terminalConfig(s.Runtime)

	// Menu loop
	for {
		menuResult, err := tui.RunMenu(store, cfg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			break
		}

		// Update config with any size changes
		cfg = menuResult.Config

		if menuResult.Choice == tui.MenuChoiceQuit {
			break
		}

		if menuResult.Choice == tui.MenuChoiceScores {
			goBack, sbErr := tui.RunScoreboard(store, cfg.ScreenW, cfg.ScreenH)
			if sbErr != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", sbErr)
			}
			if goBack {
				continue // Back to menu
			}
			break // User quit from scoreboard
		}

		// A zero seed gives each game a fresh time-based seed
		game := tui.NewSnakeGame(cfg, logger)
		backToMenu, runErr := tui.Run(game, cfg, tui.GameOptions{
			Store:  store,
			Theme:  s.Theme,
			Player: playerName(),
			Logger: logger,
		})
		if runErr != nil {
			fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		}
		if !backToMenu {
			break
		}
	}

	if store != nil {
		store.Close()
	}
}
