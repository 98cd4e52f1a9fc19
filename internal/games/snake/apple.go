package snake

import "math/rand"

// Apple is the single consumable on the grid.
type Apple struct {
	seg    Segment
	placed bool
}

// Position returns the apple's cell and whether it has been placed yet.
func (a *Apple) Position() (Position, bool) {
	return a.seg.Position(), a.placed
}

// CollidesWith reports whether the apple sits on p. An unplaced apple never does.
func (a *Apple) CollidesWith(p Position) bool {
	return a.placed && a.seg.CollidesWith(p)
}

// collidesWithSnake reports whether the apple overlaps any chain segment.
// An unplaced apple always collides, which forces at least one sample.
func (a *Apple) collidesWithSnake(s *Snake) bool {
	if !a.placed {
		return true
	}
	return s.Occupies(a.seg.Position())
}

// relocate samples uniformly random cells until one is free of the snake.
// It returns false without moving when the snake already covers every cell.
func (a *Apple) relocate(rng *rand.Rand, grid Grid, s *Snake) bool {
	if s.Length() >= grid.Cells() {
		return false
	}
	a.placed = false
	for a.collidesWithSnake(s) {
		a.seg.moveTo(Position{X: rng.Intn(grid.Width()), Y: rng.Intn(grid.Height())})
		a.placed = true
	}
	return true
}
