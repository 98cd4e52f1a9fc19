package snake

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoopRunStopsOnCancel(t *testing.T) {
	g := newTestGame(20, 20)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var ticks []uint64
	loop := NewLoop(g, time.Millisecond, func(res MoveResult) {
		ticks = append(ticks, res.Tick)
		if len(ticks) == 5 {
			cancel()
		}
	})

	done := make(chan struct{})
	go func() {
		loop.Run(ctx)
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("loop did not stop after cancel")
	}

	require.GreaterOrEqual(t, len(ticks), 5)
	for i, tick := range ticks {
		require.Equal(t, uint64(i+1), tick, "one Move per tick, in order")
	}
}

func TestLoopConcurrentInput(t *testing.T) {
	g := newTestGame(16, 16)
	ctx, cancel := context.WithTimeout(context.Background(), 200*time.Millisecond)
	defer cancel()

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		for ctx.Err() == nil {
			g.QueueDirection(Steer(g.Snapshot()))
			time.Sleep(100 * time.Microsecond)
		}
	}()

	NewLoop(g, time.Millisecond, func(MoveResult) {
		requireDistinct(t, g.Snapshot())
	}).Run(ctx)
	wg.Wait()

	require.Positive(t, g.Snapshot().Tick)
}

func TestIntervalForRate(t *testing.T) {
	require.Equal(t, 100*time.Millisecond, IntervalForRate(10))
	require.Equal(t, 100*time.Millisecond, IntervalForRate(0))
	require.Equal(t, 50*time.Millisecond, IntervalForRate(20))
}

func TestSteerTowardApple(t *testing.T) {
	snap := Snapshot{
		Width: 10, Height: 10,
		Head:      Position{X: 5, Y: 5},
		Body:      []Position{{X: 5, Y: 6}, {X: 5, Y: 7}},
		Apple:     Position{X: 8, Y: 5},
		Direction: DirUp,
	}
	require.Equal(t, DirRight, Steer(snap))
}

func TestSteerAvoidsWalls(t *testing.T) {
	snap := Snapshot{
		Width: 10, Height: 10,
		Head:      Position{X: 0, Y: 0},
		Body:      []Position{{X: 0, Y: 1}, {X: 0, Y: 2}},
		Apple:     Position{X: 0, Y: 9},
		Direction: DirUp,
	}
	require.Equal(t, DirRight, Steer(snap))
}

func TestSteerUsesQueuedDirection(t *testing.T) {
	snap := Snapshot{
		Width: 10, Height: 10,
		Head:      Position{X: 5, Y: 5},
		Body:      []Position{{X: 5, Y: 6}},
		Apple:     Position{X: 5, Y: 9},
		Direction: DirUp,
		Pending:   []Direction{DirRight},
	}
	// Left would reverse the queued Right, so the best remaining move is Down.
	require.Equal(t, DirDown, Steer(snap))
}
