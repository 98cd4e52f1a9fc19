package snake

// Direction represents the snake's movement direction.
type Direction int

const (
	DirNone Direction = iota
	DirLeft
	DirUp
	DirRight
	DirDown
)

// Key codes delivered by browser-style hosts for the arrow keys.
const (
	KeyCodeLeft  = 37
	KeyCodeUp    = 38
	KeyCodeRight = 39
	KeyCodeDown  = 40
)

// Valid reports whether d is one of the four movement directions.
func (d Direction) Valid() bool {
	return d >= DirLeft && d <= DirDown
}

// Opposite returns the reverse direction, or DirNone for an invalid value.
func (d Direction) Opposite() Direction {
	switch d {
	case DirLeft:
		return DirRight
	case DirRight:
		return DirLeft
	case DirUp:
		return DirDown
	case DirDown:
		return DirUp
	default:
		return DirNone
	}
}

// Horizontal reports whether d moves along the x axis.
func (d Direction) Horizontal() bool {
	return d == DirLeft || d == DirRight
}

// SameAxis reports whether d and other move along the same axis.
func (d Direction) SameAxis(other Direction) bool {
	if !d.Valid() || !other.Valid() {
		return false
	}
	return d.Horizontal() == other.Horizontal()
}

// Delta returns the grid offset of one step in direction d.
func (d Direction) Delta() (dx, dy int) {
	switch d {
	case DirLeft:
		return -1, 0
	case DirRight:
		return 1, 0
	case DirUp:
		return 0, -1
	case DirDown:
		return 0, 1
	default:
		return 0, 0
	}
}

func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return "none"
	}
}

// DirectionFromKeyCode maps the arrow key codes 37-40 to a direction.
func DirectionFromKeyCode(code int) (Direction, bool) {
	switch code {
	case KeyCodeLeft:
		return DirLeft, true
	case KeyCodeUp:
		return DirUp, true
	case KeyCodeRight:
		return DirRight, true
	case KeyCodeDown:
		return DirDown, true
	}
	return DirNone, false
}
