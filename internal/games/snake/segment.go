package snake

// Position is a grid coordinate. It carries no bounds; Grid.Contains decides validity.
type Position struct {
	X, Y int
}

// Add returns p shifted by (dx, dy).
func (p Position) Add(dx, dy int) Position {
	return Position{X: p.X + dx, Y: p.Y + dy}
}

// Segment is a single occupant of one grid cell.
type Segment struct {
	pos Position
}

// NewSegment creates a segment at (x, y).
func NewSegment(x, y int) Segment {
	return Segment{pos: Position{X: x, Y: y}}
}

// Position returns a snapshot of the segment's cell.
func (s Segment) Position() Position {
	return s.pos
}

// CollidesWith reports exact coordinate equality with p.
func (s Segment) CollidesWith(p Position) bool {
	return s.pos.X == p.X && s.pos.Y == p.Y
}

func (s *Segment) moveTo(p Position) {
	s.pos = p
}
