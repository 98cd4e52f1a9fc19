// Package snake implements the snake game engine: a chain of segments steered
// through a fixed grid, an apple placed on free cells, and the per-tick
// move/collide/grow/reset rules. It has no terminal or timing dependencies;
// the platform layer drives Move on a fixed interval and renders Snapshots.
package snake

import (
	"io"
	"math/rand"
	"sync"
	"time"

	"github.com/charmbracelet/log"
)

// Cause identifies why the snake died.
type Cause string

const (
	CauseNone Cause = ""
	CauseWall Cause = "wall_collision"
	CauseSelf Cause = "self_collision"
)

// MoveResult describes what happened during one tick.
type MoveResult struct {
	Tick      uint64
	Direction Direction // Direction applied this tick
	Score     int       // Score after the tick (0 after a death reset)
	Length    int       // Chain length after the tick

	Grew bool
	Won  bool

	Died        bool
	Cause       Cause
	FinalScore  int // Score at the moment of death
	FinalLength int // Chain length at the moment of death
}

// Option configures a Game.
type Option func(*Game)

// WithSeed seeds the apple placement RNG.
func WithSeed(seed int64) Option {
	return func(g *Game) {
		g.rng = rand.New(rand.NewSource(seed))
	}
}

// WithLogger sets the logger used for death, growth and win events.
func WithLogger(logger *log.Logger) Option {
	return func(g *Game) {
		if logger != nil {
			g.logger = logger
		}
	}
}

// Game owns the complete game state: grid, snake, apple, score and win flag.
// All methods are safe for concurrent use; input and tick goroutines may share one Game.
type Game struct {
	mu     sync.Mutex
	grid   Grid
	snake  *Snake
	apple  Apple
	score  int
	won    bool
	tick   uint64
	rng    *rand.Rand
	logger *log.Logger
}

// NewGame creates a game on the given grid with a fresh chain and a placed apple.
func NewGame(grid Grid, opts ...Option) *Game {
	g := &Game{
		grid:   grid,
		logger: log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(g)
	}
	if g.rng == nil {
		g.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	g.snake = newSnake(grid)
	g.apple.relocate(g.rng, g.grid, g.snake)
	return g
}

// Grid returns the game's fixed grid.
func (g *Game) Grid() Grid {
	return g.grid
}

// QueueDirection queues a direction change for a later tick.
// Same-axis requests relative to the latest queued (or current) direction are
// dropped; the return value reports whether d was accepted.
func (g *Game) QueueDirection(d Direction) bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.snake.queueDirection(d)
}

// Move advances the game by one tick.
func (g *Game) Move() MoveResult {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.tick++
	tail := g.snake.step()

	res := MoveResult{
		Tick:      g.tick,
		Direction: g.snake.Direction(),
	}

	if cause := g.deathCause(); cause != CauseNone {
		res.Died = true
		res.Cause = cause
		res.FinalScore = g.score
		res.FinalLength = g.snake.Length()
		g.logger.Info("snake died",
			"cause", cause,
			"score", g.score,
			"length", g.snake.Length(),
			"tick", g.tick,
		)
		g.resetLocked()
		res.Score = g.score
		res.Length = g.snake.Length()
		return res
	}

	if g.apple.CollidesWith(g.snake.Head().Position()) {
		g.snake.grow(tail)
		g.score = NextScore(g.score)
		res.Grew = true
		g.logger.Debug("apple eaten", "score", g.score, "length", g.snake.Length())

		if g.snake.Length() == g.grid.Cells() {
			g.won = true
			res.Won = true
			g.logger.Info("grid filled", "score", g.score, "tick", g.tick)
		} else {
			g.apple.relocate(g.rng, g.grid, g.snake)
		}
	}

	res.Score = g.score
	res.Length = g.snake.Length()
	return res
}

// deathCause checks the head against the grid bounds and the body.
func (g *Game) deathCause() Cause {
	switch {
	case !g.grid.Contains(g.snake.Head().Position()):
		return CauseWall
	case g.snake.bitesItself():
		return CauseSelf
	default:
		return CauseNone
	}
}

// Reset restores the initial chain, clears queued input and the score, and re-places the apple.
func (g *Game) Reset() {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.resetLocked()
}

func (g *Game) resetLocked() {
	g.snake.reset(g.grid)
	g.score = 0
	g.won = false
	g.apple.relocate(g.rng, g.grid, g.snake)
}

// Score returns the current score.
func (g *Game) Score() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.score
}

// Won reports whether the chain has filled the grid.
func (g *Game) Won() bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.won
}

// Length returns the current chain length.
func (g *Game) Length() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.snake.Length()
}
