//go:build ebiten

package render

import (
	"image"

	"iso-city/internal/core"
	"iso-city/internal/iso"
	"iso-city/internal/world"

	"github.com/hajimehoshi/ebiten/v2"
)

// MapPainter draws the tile grid and tool overlays.
type MapPainter struct {
	sprites *Sprites
}

// NewMapPainter returns a painter drawing with sprites.
func NewMapPainter(sprites *Sprites) *MapPainter {
	return &MapPainter{sprites: sprites}
}

// DrawWorld draws every visible tile row-major, each lifted by its elevation.
// Empty cells are skipped.
func (mp *MapPainter) DrawWorld(dst *ebiten.Image, w *world.World, proj *iso.Projector) {
	size := w.Size()
	bounds := dst.Bounds()
	for y := 0; y < size.H; y++ {
		for x := 0; x < size.W; x++ {
			p := core.Pos{X: x, Y: y}
			tile := w.Tile(p)
			if tile.Kind == world.Empty {
				continue
			}
			mp.drawTile(dst, bounds, proj, p, tile.Kind, tile.Elevation)
		}
	}
}

// DrawHighlight overlays the highlight sprite on p at the given elevation.
func (mp *MapPainter) DrawHighlight(dst *ebiten.Image, proj *iso.Projector, p core.Pos, elevation int) {
	mp.drawTile(dst, dst.Bounds(), proj, p, world.Highlight, elevation)
}

func (mp *MapPainter) drawTile(dst *ebiten.Image, bounds image.Rectangle, proj *iso.Projector, p core.Pos, kind world.Kind, elevation int) {
	img := mp.sprites.Get(kind)
	if img == nil {
		return
	}
	rect := proj.CellRect(p, elevation)
	if !rect.Overlaps(bounds) {
		return
	}
	src := img.Bounds()
	op := &ebiten.DrawImageOptions{}
	if src.Dx() != rect.Dx() || src.Dy() != rect.Dy() {
		op.GeoM.Scale(float64(rect.Dx())/float64(src.Dx()), float64(rect.Dy())/float64(src.Dy()))
	}
	op.GeoM.Translate(float64(rect.Min.X), float64(rect.Min.Y))
	dst.DrawImage(img, op)
}
