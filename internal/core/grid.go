package core

// ForEachInRadius visits every cell of the square of half-width radius
// centred on center, in row-major order, skipping cells outside bounds.
// A zero radius visits center exactly once without clipping.
func ForEachInRadius(center Pos, radius int, bounds Size, visit func(Pos)) {
	if radius == 0 {
		visit(center)
		return
	}
	for y := center.Y - radius; y <= center.Y+radius; y++ {
		for x := center.X - radius; x <= center.X+radius; x++ {
			p := Pos{X: x, Y: y}
			if !bounds.Contains(p) {
				continue
			}
			visit(p)
		}
	}
}

// CellsInRadius collects the cells ForEachInRadius would visit.
func CellsInRadius(center Pos, radius int, bounds Size) []Pos {
	var cells []Pos
	ForEachInRadius(center, radius, bounds, func(p Pos) {
		cells = append(cells, p)
	})
	return cells
}

// Clamp limits p to [0,W-1]x[0,H-1].
func (s Size) Clamp(p Pos) Pos {
	return Pos{X: ClampInt(p.X, 0, s.W-1), Y: ClampInt(p.Y, 0, s.H-1)}
}

// ClampInt limits v to [lo,hi].
func ClampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// FloorMod returns a mod n in [0,n) for any sign of a.
func FloorMod(a, n int) int {
	if n <= 0 {
		return 0
	}
	return (a%n + n) % n
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
