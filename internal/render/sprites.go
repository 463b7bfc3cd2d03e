//go:build ebiten

package render

import (
	"fmt"
	"image"
	_ "image/png"
	"os"

	"iso-city/internal/core"
	"iso-city/internal/world"

	"github.com/hajimehoshi/ebiten/v2"
)

// Atlas is a uniformly sized sprite sheet.
type Atlas struct {
	img  *ebiten.Image
	cell core.Size
	cols int
	rows int
}

// LoadAtlas opens a PNG sprite sheet of cols x rows cells.
func LoadAtlas(filename string, cell core.Size, cols, rows int) (*Atlas, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("could not open texture atlas: %w", err)
	}
	defer f.Close()
	src, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("could not decode texture atlas %s: %w", filename, err)
	}
	return &Atlas{img: ebiten.NewImageFromImage(src), cell: cell, cols: cols, rows: rows}, nil
}

// Sprite returns the sub-image at slot idx.
func (a *Atlas) Sprite(idx int) (*ebiten.Image, bool) {
	rect, ok := atlasRect(idx, a.cell, a.cols, a.rows)
	if !ok || !rect.In(a.img.Bounds()) {
		return nil, false
	}
	return a.img.SubImage(rect).(*ebiten.Image), true
}

// Sprites holds one image per drawable tile kind.
type Sprites struct {
	footprint core.Size
	byKind    map[world.Kind]*ebiten.Image
}

// NewSprites slices kinds out of atlas, generating a sprite from the catalog
// colour for every kind the atlas cannot supply. atlas may be nil.
func NewSprites(footprint core.Size, catalog *world.Catalog, atlas *Atlas) *Sprites {
	s := &Sprites{footprint: footprint, byKind: map[world.Kind]*ebiten.Image{}}
	kinds := append([]world.Kind{world.Highlight}, world.Placeable...)
	for _, k := range kinds {
		info := catalog.Info(k)
		if atlas != nil {
			if img, ok := atlas.Sprite(info.AtlasIndex); ok {
				s.byKind[k] = img
				continue
			}
		}
		img := ebiten.NewImage(footprint.W, footprint.H)
		img.ReplacePixels(TilePixels(footprint, k, info))
		s.byKind[k] = img
	}
	return s
}

// Get returns the sprite for k, or nil for kinds that are never drawn.
func (s *Sprites) Get(k world.Kind) *ebiten.Image { return s.byKind[k] }
