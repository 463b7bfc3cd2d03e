// Package iso maps between logical grid cells and screen pixels for a
// diamond isometric layout.
package iso

import (
	"image"
	"math"

	"iso-city/internal/core"
)

// Heights exposes per-cell elevation for occlusion-aware picking.
type Heights interface {
	Elevation(p core.Pos) int
}

// Projector converts cells to pixels and back for one tile footprint, grid
// size and scroll offset.
type Projector struct {
	// Tile is the sprite footprint in pixels.
	Tile core.Size
	// Grid is the logical grid size.
	Grid core.Size
	// View is the scroll offset, in half-tile columns and quarter-tile rows.
	View core.Pos

	// ProbeStep and ProbeCount define the elevation bands PickTopmost tries,
	// from (ProbeCount-1)*ProbeStep down to zero.
	ProbeStep  int
	ProbeCount int
}

// NewProjector returns a Projector with the default 20px x 4 elevation probes.
func NewProjector(tile, grid core.Size, view core.Pos) *Projector {
	return &Projector{
		Tile:       tile,
		Grid:       grid,
		View:       view,
		ProbeStep:  20,
		ProbeCount: 4,
	}
}

func (p *Projector) halfW() int    { return p.Tile.W / 2 }
func (p *Projector) quarterH() int { return p.Tile.H / 4 }

// CellToScreen returns the top-left pixel of c's footprint, ignoring
// elevation.
func (p *Projector) CellToScreen(c core.Pos) image.Point {
	hw, qh := p.halfW(), p.quarterH()
	return image.Point{
		X: p.View.X*hw + (c.X-c.Y)*hw,
		Y: p.View.Y*qh + (c.X+c.Y)*qh,
	}
}

// CellCenter returns the visual centre of c's footprint.
func (p *Projector) CellCenter(c core.Pos) image.Point {
	return p.CellToScreen(c).Add(image.Point{X: p.Tile.W / 2, Y: p.Tile.H / 2})
}

// CellRect returns the on-screen rectangle of c's sprite lifted by elevation.
func (p *Projector) CellRect(c core.Pos, elevation int) image.Rectangle {
	top := p.CellToScreen(c).Sub(image.Point{Y: elevation})
	return image.Rectangle{Min: top, Max: top.Add(image.Point{X: p.Tile.W, Y: p.Tile.H})}
}

// ScreenToCell resolves pt to the cell whose visual centre lies nearest, or
// core.Invalid when the coarse estimate falls outside the grid plus one cell
// of slack.
func (p *Projector) ScreenToCell(pt image.Point) core.Pos {
	hw, qh := p.halfW(), p.quarterH()
	if hw == 0 || qh == 0 {
		return core.Invalid
	}
	cx := pt.X/hw - p.View.X
	cy := pt.Y/qh - p.View.Y
	r := core.Pos{X: (cy + cx) / 2, Y: (cy - cx) / 2}

	if r.X < 0 || r.X > p.Grid.W || r.Y < 0 || r.Y > p.Grid.H {
		return core.Invalid
	}

	best := core.Invalid
	bestDist := 0
	core.ForEachInRadius(r, 1, p.Grid, func(c core.Pos) {
		d := pixelDistance(pt, p.CellCenter(c))
		if !best.Valid() || d < bestDist {
			best, bestDist = c, d
		}
	})
	if !best.Valid() {
		return core.Invalid
	}
	return p.Grid.Clamp(best)
}

// PickTopmost resolves pt to the highest visible tile. It probes elevation
// bands from the tallest down, shifting pt down by each band, and accepts the
// first cell whose stored elevation equals that band.
func (p *Projector) PickTopmost(pt image.Point, heights Heights) core.Pos {
	for i := p.ProbeCount - 1; i >= 0; i-- {
		el := i * p.ProbeStep
		c := p.ScreenToCell(pt.Add(image.Point{Y: el}))
		if !c.Valid() {
			continue
		}
		if heights.Elevation(c) == el {
			return c
		}
	}
	return core.Invalid
}

// MoveView scrolls by off and clamps the offset so the grid stays reachable.
func (p *Projector) MoveView(off core.Pos) {
	p.View.X = core.ClampInt(p.View.X+off.X, 0, p.Grid.W+1)
	p.View.Y = core.ClampInt(p.View.Y+off.Y, -p.Grid.H-50, 0)
}

func pixelDistance(a, b image.Point) int {
	d := a.Sub(b)
	return int(math.Sqrt(float64(d.X*d.X + d.Y*d.Y)))
}
