package snake

// Grid holds the fixed tile dimensions of the playing field.
type Grid struct {
	width  int
	height int
}

// NewGrid creates a grid of width x height tiles.
func NewGrid(width, height int) Grid {
	return Grid{width: width, height: height}
}

// Width returns the number of columns.
func (g Grid) Width() int {
	return g.width
}

// Height returns the number of rows.
func (g Grid) Height() int {
	return g.height
}

// Cells returns the total tile count.
func (g Grid) Cells() int {
	return g.width * g.height
}

// Contains reports whether p lies within [0,width) x [0,height).
func (g Grid) Contains(p Position) bool {
	return p.X >= 0 && p.X < g.width && p.Y >= 0 && p.Y < g.height
}

// Center returns the tile at (width/2, height/2).
func (g Grid) Center() Position {
	return Position{X: g.width / 2, Y: g.height / 2}
}

// Fits reports whether the initial vertical chain can be placed on this grid.
func (g Grid) Fits() bool {
	return g.width >= 1 && g.height >= InitialLength
}
