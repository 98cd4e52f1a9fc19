package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/games/snake"
)

var (
	flagSimTicks    int
	flagSimWidth    int
	flagSimHeight   int
	flagSimInterval time.Duration
)

var simCmd = &cobra.Command{
	Use:   "sim",
	Short: "Run a headless game steered by an autopilot",
	Long: `Run the game without a terminal UI.

A fixed-rate loop moves the snake while a separate goroutine steers it
toward the apple, the same way key presses reach a live game.
Prints the final board and counts of deaths, apples and wins.

Examples:
  snake sim
  snake sim --ticks 5000 --seed 1
  snake sim --width 8 --height 8 --interval 0s`,
	Args: cobra.NoArgs,
	RunE: runSim,
}

func init() {
	simCmd.Flags().IntVar(&flagSimTicks, "ticks", 1000, "Number of moves to simulate")
	simCmd.Flags().IntVar(&flagSimWidth, "width", 20, "Grid width (overrides config)")
	simCmd.Flags().IntVar(&flagSimHeight, "height", 20, "Grid height (overrides config)")
	simCmd.Flags().DurationVar(&flagSimInterval, "interval", time.Millisecond, "Time between moves (0 = use --fps)")
}

// simStats counts events seen by the loop.
type simStats struct {
	Ticks   int
	Deaths  int
	Apples  int
	Wins    int
	BestLen int
	Best    int
}

// record folds one move result into the counters.
func (s *simStats) record(res snake.MoveResult) {
	s.Ticks++
	switch {
	case res.Died:
		s.Deaths++
		s.Best = core.Max(s.Best, res.FinalScore)
		s.BestLen = core.Max(s.BestLen, res.FinalLength)
	case res.Grew:
		s.Apples++
	}
	if res.Won {
		s.Wins++
	}
	s.Best = core.Max(s.Best, res.Score)
	s.BestLen = core.Max(s.BestLen, res.Length)
}

// simulate runs game for ticks moves with an autopilot goroutine feeding
// directions between moves. Wins restart the game.
func simulate(ctx context.Context, game *snake.Game, ticks int, interval time.Duration, logger *log.Logger) simStats {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	var stats simStats
	snaps := make(chan snake.Snapshot, 1)

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		for {
			select {
			case snap := <-snaps:
				game.QueueDirection(snake.Steer(snap))
			case <-ctx.Done():
				return
			}
		}
	}()

	loop := snake.NewLoop(game, interval, func(res snake.MoveResult) {
		stats.record(res)
		if res.Won {
			logger.Info("board filled, restarting", "tick", res.Tick, "score", res.Score)
			game.Reset()
		}
		if stats.Ticks >= ticks {
			cancel()
			return
		}

		// Drop the snapshot if the autopilot has not consumed the previous one.
		select {
		case snaps <- game.Snapshot():
		default:
		}
	})

	// Steer before the first move too.
	snaps <- game.Snapshot()
	loop.Run(ctx)
	wg.Wait()

	return stats
}

func runSim(cmd *cobra.Command, _ []string) error {
	s, err := loadSettings()
	if err != nil {
		return err
	}

	logOut := io.Writer(os.Stderr)
	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return fmt.Errorf("cannot open log file: %w", err)
		}
		defer f.Close()
		logOut = f
	}
	logger, err := newLogger(logOut, s.Config.Log.Level)
	if err != nil {
		return err
	}

	grid := snake.NewGrid(flagSimWidth, flagSimHeight)
	if !grid.Fits() {
		return fmt.Errorf("grid %dx%d cannot hold the initial snake", flagSimWidth, flagSimHeight)
	}

	seed := s.Runtime.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	game := snake.NewGame(grid, snake.WithSeed(seed), snake.WithLogger(logger))

	interval := flagSimInterval
	if interval <= 0 {
		interval = snake.IntervalForRate(s.Runtime.TickRate)
	}

	logger.Info("simulation started", "grid", fmt.Sprintf("%dx%d", grid.Width(), grid.Height()), "ticks", flagSimTicks, "seed", seed)
	stats := simulate(cmd.Context(), game, flagSimTicks, interval, logger)

	snap := game.Snapshot()
	fmt.Printf("Ticks: %d  Deaths: %d  Apples: %d  Wins: %d\n", stats.Ticks, stats.Deaths, stats.Apples, stats.Wins)
	fmt.Printf("Best score: %d  Longest: %d\n", stats.Best, stats.BestLen)
	fmt.Printf("Final: score %d, length %d, heading %s\n", snap.Score, snap.Length, snap.Direction)
	fmt.Println(boardString(snap))
	return nil
}

// boardString draws the snapshot as plain text, one character per tile.
func boardString(snap snake.Snapshot) string {
	rows := make([][]rune, snap.Height)
	for y := range rows {
		rows[y] = make([]rune, snap.Width)
		for x := range rows[y] {
			rows[y][x] = '.'
		}
	}

	set := func(p snake.Position, r rune) {
		if p.X >= 0 && p.X < snap.Width && p.Y >= 0 && p.Y < snap.Height {
			rows[p.Y][p.X] = r
		}
	}
	if snap.HasApple {
		set(snap.Apple, '*')
	}
	for _, p := range snap.Body {
		set(p, 'o')
	}
	set(snap.Head, '@')

	out := make([]byte, 0, (snap.Width+1)*snap.Height)
	for y, row := range rows {
		if y > 0 {
			out = append(out, '\n')
		}
		out = append(out, string(row)...)
	}
	return string(out)
}
