// snake is a terminal snake game.
//
// Usage:
//
//	snake play              - Play a game
//	snake menu              - Start menu with play / high scores
//	snake serve             - Start SSH server for remote play
//	snake scores            - Show high scores
//	snake sim               - Run a headless game with an autopilot
//
// Global flags:
//
//	--fps <rate>        - Moves per second (default: from config, 10)
//	--seed <value>      - RNG seed for reproducible apple placement
//	--db <path>         - Database path (default: ~/.snake/scores.db)
//	--config <path>     - Config file (default: search ~/.snake/configs, ./configs)
//	--log-level <lvl>   - debug, info, warn, error
//	--log-file <path>   - Write logs to a file
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagDBPath   string
	flagConfig   string
	flagLogLevel string
	flagLogFile  string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "snake",
	Short: "Snake - the classic grid game in your terminal",
	Long: `Snake is the classic grid game: steer the snake to the apple, grow,
and fill the whole board without hitting a wall or yourself.

Available commands:
  play     - Play a game directly
  menu     - Interactive menu
  serve    - Start SSH server for remote play
  scores   - View high scores
  sim      - Headless run steered by an autopilot

Examples:
  snake play
  snake play --fps 15 --seed 42
  snake menu
  snake serve --ssh :2222
  snake scores --limit 5
  snake sim --ticks 5000 --seed 1`,
	SilenceUsage: true,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 0, "Moves per second (0 = use config)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "", "Path to scores database (default from config)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(simCmd)
}
