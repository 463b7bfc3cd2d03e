//go:build ebiten

package ui

import (
	"image"
	"image/color"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

// Announcement is a centred message box with a Close button.
type Announcement struct {
	lines   []string
	visible bool
	box     image.Rectangle
	close   image.Rectangle
	pixel   *ebiten.Image
	img     *ebiten.Image
}

// NewAnnouncement returns an announcement showing message, one line per
// newline. It starts hidden when visible is false.
func NewAnnouncement(message string, visible bool) *Announcement {
	a := &Announcement{lines: strings.Split(message, "\n"), visible: visible}
	a.pixel = ebiten.NewImage(1, 1)
	a.pixel.Fill(color.White)
	return a
}

// Visible reports whether the announcement is shown.
func (a *Announcement) Visible() bool { return a != nil && a.visible }

// Update lays the box out for the screen and handles the Close button. It
// reports whether a click landed on the box.
func (a *Announcement) Update(screenW, screenH int) bool {
	if !a.Visible() {
		return false
	}
	w, h := announcementSize(a.lines)
	a.box = centeredRect(image.Rect(0, 0, screenW, screenH), w, h)
	a.close = image.Rect(a.box.Max.X-panelPadding-closeWidth, a.box.Max.Y-panelPadding-buttonSize,
		a.box.Max.X-panelPadding, a.box.Max.Y-panelPadding)
	if !inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		return false
	}
	mx, my := ebiten.CursorPosition()
	if !a.Contains(mx, my) {
		return false
	}
	if pointInRect(mx, my, a.close) {
		a.visible = false
	}
	return true
}

// Contains reports whether the screen point lies on the visible box.
func (a *Announcement) Contains(x, y int) bool {
	return a.Visible() && pointInRect(x, y, a.box)
}

// Draw paints the box when visible.
func (a *Announcement) Draw(screen *ebiten.Image) {
	if !a.Visible() || a.box.Empty() {
		return
	}
	if a.img == nil || a.img.Bounds().Size() != a.box.Size() {
		a.img = ebiten.NewImage(a.box.Dx(), a.box.Dy())
	}
	a.img.Fill(color.RGBA{R: 24, G: 24, B: 30, A: 240})
	face := basicfont.Face7x13
	for i, line := range a.lines {
		text.Draw(a.img, line, face, panelPadding, panelPadding+headerBaseline+i*announcementLine, color.RGBA{R: 220, G: 220, B: 230, A: 255})
	}
	local := a.close.Sub(a.box.Min)
	drawButton(a.img, a.pixel, local, "Close", true)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(a.box.Min.X), float64(a.box.Min.Y))
	screen.DrawImage(a.img, op)
}
