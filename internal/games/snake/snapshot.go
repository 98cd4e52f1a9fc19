package snake

// Snapshot is a read-only copy of the game state handed to renderers and drivers.
type Snapshot struct {
	Tick      uint64
	Width     int
	Height    int
	Head      Position
	Body      []Position // just behind the head first, tail last
	Apple     Position
	HasApple  bool
	Direction Direction
	Pending   []Direction // most recent first
	Score     int
	Length    int
	Won       bool
}

// Snapshot returns a copy of the current state.
func (g *Game) Snapshot() Snapshot {
	g.mu.Lock()
	defer g.mu.Unlock()

	positions := g.snake.Positions()
	apple, placed := g.apple.Position()

	return Snapshot{
		Tick:      g.tick,
		Width:     g.grid.Width(),
		Height:    g.grid.Height(),
		Head:      positions[0],
		Body:      positions[1:],
		Apple:     apple,
		HasApple:  placed,
		Direction: g.snake.Direction(),
		Pending:   g.snake.Pending(),
		Score:     g.score,
		Length:    len(positions),
		Won:       g.won,
	}
}

// Occupied reports whether the snapshot's chain covers p.
func (s Snapshot) Occupied(p Position) bool {
	if s.Head == p {
		return true
	}
	for _, b := range s.Body {
		if b == p {
			return true
		}
	}
	return false
}
