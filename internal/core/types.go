package core

// Pos addresses a single cell of the tile grid.
type Pos struct {
	X int
	Y int
}

// Invalid is the "no position" marker returned when a lookup resolves to
// nothing. It never addresses a real cell.
var Invalid = Pos{X: -1, Y: -1}

// Valid reports whether p is anything other than the Invalid marker.
func (p Pos) Valid() bool { return p != Invalid }

// Add returns p offset by o.
func (p Pos) Add(o Pos) Pos { return Pos{X: p.X + o.X, Y: p.Y + o.Y} }

// Size describes the dimensions of a grid, or of a tile footprint in pixels.
type Size struct {
	W int
	H int
}

// Contains reports whether p lies within [0,W)x[0,H).
func (s Size) Contains(p Pos) bool {
	return p.X >= 0 && p.Y >= 0 && p.X < s.W && p.Y < s.H
}

// Index returns the row-major slice index for p.
func (s Size) Index(p Pos) int { return p.Y*s.W + p.X }

// Area returns W*H, or zero for degenerate sizes.
func (s Size) Area() int {
	if s.W <= 0 || s.H <= 0 {
		return 0
	}
	return s.W * s.H
}
