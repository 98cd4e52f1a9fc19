package snake

// Steer picks a direction for the next tick: the safe move that gets closest to
// the apple. When no move is safe it keeps the current direction.
func Steer(snap Snapshot) Direction {
	grid := NewGrid(snap.Width, snap.Height)
	current := snap.Direction
	if len(snap.Pending) > 0 {
		current = snap.Pending[0]
	}

	best := current
	bestDist := -1
	for _, d := range []Direction{DirUp, DirRight, DirDown, DirLeft} {
		if d == current.Opposite() {
			continue
		}
		dx, dy := d.Delta()
		next := snap.Head.Add(dx, dy)
		if !grid.Contains(next) || blocked(snap, next) {
			continue
		}
		dist := abs(next.X-snap.Apple.X) + abs(next.Y-snap.Apple.Y)
		if bestDist < 0 || dist < bestDist {
			best = d
			bestDist = dist
		}
	}
	return best
}

// blocked reports whether p is covered by a body segment that will still be
// there after the next shift. The tail cell is vacated on a normal move.
func blocked(snap Snapshot, p Position) bool {
	for i, b := range snap.Body {
		if i == len(snap.Body)-1 {
			break
		}
		if b == p {
			return true
		}
	}
	return false
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
