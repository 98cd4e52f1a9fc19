package snake

import (
	"context"
	"time"
)

// DefaultTickRate is the tick rate used when none is configured.
const DefaultTickRate = 10

// Loop drives a Game at a fixed interval, one Move per tick.
type Loop struct {
	game     *Game
	interval time.Duration
	onTick   func(MoveResult)
}

// NewLoop creates a loop calling game.Move every interval.
// onTick, if non-nil, receives each result on the loop goroutine.
func NewLoop(game *Game, interval time.Duration, onTick func(MoveResult)) *Loop {
	if interval <= 0 {
		interval = time.Second / DefaultTickRate
	}
	return &Loop{game: game, interval: interval, onTick: onTick}
}

// Run ticks until ctx is cancelled.
func (l *Loop) Run(ctx context.Context) {
	ticker := time.NewTicker(l.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			res := l.game.Move()
			if l.onTick != nil {
				l.onTick(res)
			}
		case <-ctx.Done():
			return
		}
	}
}

// IntervalForRate converts ticks per second to a tick interval.
func IntervalForRate(rate int) time.Duration {
	if rate <= 0 {
		rate = DefaultTickRate
	}
	return time.Second / time.Duration(rate)
}
