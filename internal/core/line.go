package core

// ForEachOnLine rasterizes the segment p0-p1 with integer Bresenham,
// visiting p0 first and p1 last. Every octant is handled by the same loop.
func ForEachOnLine(p0, p1 Pos, visit func(Pos)) {
	sx, sy := 1, 1
	if p0.X >= p1.X {
		sx = -1
	}
	if p0.Y >= p1.Y {
		sy = -1
	}
	dx := absInt(p1.X - p0.X)
	dy := -absInt(p1.Y - p0.Y)
	err := dx + dy

	for {
		visit(p0)
		if p0 == p1 {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			if p0.X == p1.X {
				return
			}
			err += dy
			p0.X += sx
		}
		if e2 <= dx {
			if p0.Y == p1.Y {
				return
			}
			err += dx
			p0.Y += sy
		}
	}
}

// PointsOnLine returns all cells on the line between a and b.
func PointsOnLine(a, b Pos) []Pos {
	pts := []Pos{}
	ForEachOnLine(a, b, func(p Pos) {
		pts = append(pts, p)
	})
	return pts
}
