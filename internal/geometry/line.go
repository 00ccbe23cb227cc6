package geometry

// WalkBetween visits every grid cell on the digital line from p1 to p2
// (Bresenham), excluding both endpoints, in order from p1 towards p2.
//
// The walk stops as soon as visit returns false, and WalkBetween then
// returns false. It returns true when every intermediate cell was visited,
// including the case where there are none (equal or adjacent points).
func WalkBetween(p1, p2 Point, visit func(Point) bool) bool {
	dx := abs(p2.X - p1.X)
	dy := -abs(p2.Y - p1.Y)

	sx := 1
	if p1.X > p2.X {
		sx = -1
	}
	sy := 1
	if p1.Y > p2.Y {
		sy = -1
	}

	err := dx + dy
	x, y := p1.X, p1.Y

	for x != p2.X || y != p2.Y {
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x += sx
		}
		if e2 <= dx {
			err += dx
			y += sy
		}
		if x == p2.X && y == p2.Y {
			break
		}
		if !visit(Point{X: x, Y: y}) {
			return false
		}
	}

	return true
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
