package render

import (
	"image"
	"image/color"
	"math"

	"iso-city/internal/core"
	"iso-city/internal/world"
)

const (
	leftShade  = 0.75
	rightShade = 0.55
)

// fillTileRGBA paints an isometric block into buf: a diamond top centred in a
// w*h footprint, half as tall as it is wide, with two shaded side faces below
// it when sides is set. Pixels outside the block are transparent.
func fillTileRGBA(buf []byte, w, h int, col color.RGBA, sides bool) {
	cx, cy := w/2, h/2
	hw, qh := w/2, h/4
	if hw == 0 || qh == 0 {
		return
	}
	inTop := func(x, y int) bool {
		fx := absInt(2*x + 1 - 2*cx)
		fy := absInt(2*y + 1 - 2*cy)
		return fx*qh+fy*hw <= 2*hw*qh
	}
	left := shade(col, leftShade)
	right := shade(col, rightShade)

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			base := (y*w + x) * 4
			var c color.RGBA
			switch {
			case inTop(x, y):
				c = col
			case sides && y >= cy && (y-qh <= cy || inTop(x, y-qh)):
				c = right
				if x < cx {
					c = left
				}
			}
			buf[base+0] = c.R
			buf[base+1] = c.G
			buf[base+2] = c.B
			buf[base+3] = c.A
		}
	}
}

// TilePixels returns RGBA pixels for a generated sprite of the given kind.
// Highlight sprites are translucent and have no side faces.
func TilePixels(footprint core.Size, kind world.Kind, info world.KindInfo) []byte {
	buf := make([]byte, 4*footprint.Area())
	col := color.RGBA{R: clampByte(info.Color[0]), G: clampByte(info.Color[1]), B: clampByte(info.Color[2]), A: 255}
	sides := true
	if kind == world.Highlight {
		col.A = 150
		col = premultiply(col)
		sides = false
	}
	fillTileRGBA(buf, footprint.W, footprint.H, col, sides)
	return buf
}

// atlasRect returns the source rectangle of slot idx in an atlas laid out as
// cols x rows cells of the given size.
func atlasRect(idx int, cell core.Size, cols, rows int) (image.Rectangle, bool) {
	if idx < 0 || cols <= 0 || rows <= 0 || idx >= cols*rows {
		return image.Rectangle{}, false
	}
	x := (idx % cols) * cell.W
	y := (idx / cols) * cell.H
	return image.Rect(x, y, x+cell.W, y+cell.H), true
}

func shade(c color.RGBA, factor float64) color.RGBA {
	return color.RGBA{
		R: scaleComponent(c.R, factor),
		G: scaleComponent(c.G, factor),
		B: scaleComponent(c.B, factor),
		A: c.A,
	}
}

func premultiply(c color.RGBA) color.RGBA {
	a := float64(c.A) / 255.0
	return color.RGBA{R: scaleComponent(c.R, a), G: scaleComponent(c.G, a), B: scaleComponent(c.B, a), A: c.A}
}

func scaleComponent(value uint8, factor float64) uint8 {
	return clampByte(int(math.Round(float64(value) * factor)))
}

func clampByte(v int) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
