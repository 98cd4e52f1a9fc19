package snake

const (
	// InitialLength is the chain length (head + body) at creation and after every reset.
	InitialLength = 5

	// MaxPendingDirections bounds the queued direction stack.
	MaxPendingDirections = 3
)

// Snake is the player-controlled chain: a head, an ordered body and a stack of
// queued direction changes.
type Snake struct {
	head    Segment
	body    []Segment // just behind the head first, tail last
	pending []Direction
	current Direction
}

func newSnake(grid Grid) *Snake {
	s := &Snake{}
	s.reset(grid)
	return s
}

// reset lays out a vertical chain through the grid centre, head on top, facing up.
func (s *Snake) reset(grid Grid) {
	c := grid.Center()
	s.head = NewSegment(c.X, c.Y-2)
	s.body = []Segment{
		NewSegment(c.X, c.Y-1),
		NewSegment(c.X, c.Y),
		NewSegment(c.X, c.Y+1),
		NewSegment(c.X, c.Y+2),
	}
	s.pending = s.pending[:0]
	s.current = DirUp
}

// Head returns the head segment.
func (s *Snake) Head() Segment {
	return s.head
}

// Tail returns the last body segment.
func (s *Snake) Tail() Segment {
	if len(s.body) == 0 {
		return s.head
	}
	return s.body[len(s.body)-1]
}

// Body returns a copy of the body, ordered from the segment behind the head to the tail.
func (s *Snake) Body() []Segment {
	out := make([]Segment, len(s.body))
	copy(out, s.body)
	return out
}

// Length returns 1 + the number of body segments.
func (s *Snake) Length() int {
	return 1 + len(s.body)
}

// Direction returns the direction applied on the last move.
func (s *Snake) Direction() Direction {
	return s.current
}

// Pending returns a copy of the queued directions, most recent first.
func (s *Snake) Pending() []Direction {
	out := make([]Direction, len(s.pending))
	copy(out, s.pending)
	return out
}

// Positions returns every chain cell, head first.
func (s *Snake) Positions() []Position {
	out := make([]Position, 0, s.Length())
	out = append(out, s.head.Position())
	for _, seg := range s.body {
		out = append(out, seg.Position())
	}
	return out
}

// Occupies reports whether any chain segment (head or body) sits on p.
func (s *Snake) Occupies(p Position) bool {
	if s.head.CollidesWith(p) {
		return true
	}
	for _, seg := range s.body {
		if seg.CollidesWith(p) {
			return true
		}
	}
	return false
}

// queueDirection pushes d onto the front of the pending stack unless it lies on
// the same axis as the most recently queued direction (or the current one when
// nothing is queued). Only the front is checked, so inputs several deep can
// still line up a reversal.
func (s *Snake) queueDirection(d Direction) bool {
	if !d.Valid() {
		return false
	}
	ref := s.current
	if len(s.pending) > 0 {
		ref = s.pending[0]
	}
	if d.SameAxis(ref) {
		return false
	}

	if len(s.pending) == MaxPendingDirections {
		s.pending = s.pending[:MaxPendingDirections-1]
	}
	s.pending = append(s.pending, DirNone)
	copy(s.pending[1:], s.pending)
	s.pending[0] = d
	return true
}

// popDirection removes and returns the most recently queued direction.
func (s *Snake) popDirection() (Direction, bool) {
	if len(s.pending) == 0 {
		return DirNone, false
	}
	d := s.pending[0]
	s.pending = append(s.pending[:0], s.pending[1:]...)
	return d, true
}

// step advances the chain one cell and returns the tail's pre-move position.
// Body cells are assigned from a snapshot taken before the head moves, so every
// segment takes its predecessor's old cell.
func (s *Snake) step() Position {
	if d, ok := s.popDirection(); ok {
		s.current = d
	}

	prev := s.Positions()
	tail := prev[len(prev)-1]

	dx, dy := s.current.Delta()
	s.head.moveTo(prev[0].Add(dx, dy))
	for i := range s.body {
		s.body[i].moveTo(prev[i])
	}
	return tail
}

// bitesItself reports whether the head shares a cell with any body segment.
func (s *Snake) bitesItself() bool {
	head := s.head.Position()
	for _, seg := range s.body {
		if seg.CollidesWith(head) {
			return true
		}
	}
	return false
}

// grow appends a new tail segment at p.
func (s *Snake) grow(p Position) {
	s.body = append(s.body, NewSegment(p.X, p.Y))
}
