//go:build ebiten

package ui

import (
	"fmt"
	"image"
	"image/color"

	"iso-city/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

// HUD renders the city panel in the top right corner of the screen.
type HUD struct {
	src      Source
	width    int
	panel    *ebiten.Image
	snapshot core.ParameterSnapshot
	budget   int

	controls   []hudControlState
	intSetter  core.IntParameterSetter
	boolSetter core.BoolParameterSetter
	offsetX    int

	pixel *ebiten.Image
}

// NewHUD constructs a HUD for src with the given panel width.
func NewHUD(src Source, width int) *HUD {
	if width < 0 {
		width = 0
	}
	h := &HUD{src: src, width: width}
	if width > 0 {
		h.pixel = ebiten.NewImage(1, 1)
		h.pixel.Fill(color.White)
	}
	if setter, ok := src.(core.IntParameterSetter); ok {
		h.intSetter = setter
	}
	if setter, ok := src.(core.BoolParameterSetter); ok {
		h.boolSetter = setter
	}
	h.syncControls()
	return h
}

// Update refreshes the panel from its source and handles clicks on it.
// It reports whether a click landed on the panel.
func (h *HUD) Update(screenWidth int) bool {
	if h == nil || h.width <= 0 {
		return false
	}
	h.offsetX = screenWidth - h.width
	h.refresh()
	captured := h.handleInput()
	if captured {
		h.refresh()
	}
	return captured
}

// Contains reports whether the screen point lies on the panel.
func (h *HUD) Contains(x, y int) bool {
	if h == nil || h.width <= 0 {
		return false
	}
	return pointInRect(x, y, h.bounds())
}

func (h *HUD) bounds() image.Rectangle {
	return image.Rect(h.offsetX, 0, h.offsetX+h.width, panelHeight(len(h.controls)))
}

// Draw paints the panel.
func (h *HUD) Draw(screen *ebiten.Image) {
	if h == nil || h.width <= 0 {
		return
	}
	height := panelHeight(len(h.controls))
	if h.panel == nil || h.panel.Bounds().Dy() != height {
		h.panel = ebiten.NewImage(h.width, height)
	}
	h.panel.Fill(color.RGBA{R: 16, G: 16, B: 20, A: 230})
	h.drawControls()
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(h.offsetX), 0)
	screen.DrawImage(h.panel, op)
}

func (h *HUD) refresh() {
	h.syncControls()
	h.snapshot = h.src.Parameters()
	h.budget = h.src.Budget()
	for i := range h.controls {
		st := &h.controls[i]
		param, ok := h.snapshot.Lookup(st.control.Key)
		st.refresh(param, ok)
	}
}

// syncControls re-lays out the panel when the source's control list changes.
func (h *HUD) syncControls() {
	controls := h.src.ParameterControls()
	if sameControls(h.controls, controls) {
		return
	}
	h.controls = layoutControls(controls, h.width)
}

func (h *HUD) handleInput() bool {
	if !inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		return false
	}
	mx, my := ebiten.CursorPosition()
	if !h.Contains(mx, my) {
		return false
	}
	px := mx - h.offsetX
	for i := range h.controls {
		st := &h.controls[i]
		if !st.hasValue {
			continue
		}
		switch {
		case pointInRect(px, my, st.toggleRect):
			if h.boolSetter != nil {
				h.boolSetter.SetBoolParameter(st.control.Key, !st.boolValue)
			}
			return true
		case pointInRect(px, my, st.minusRect):
			h.applyAdjustment(st, -1)
			return true
		case pointInRect(px, my, st.plusRect):
			h.applyAdjustment(st, 1)
			return true
		}
	}
	return true
}

func (h *HUD) applyAdjustment(st *hudControlState, direction int) {
	if h.intSetter == nil {
		return
	}
	target, ok := st.target(direction)
	if !ok {
		return
	}
	h.intSetter.SetIntParameter(st.control.Key, target)
}

func (h *HUD) drawControls() {
	face := basicfont.Face7x13
	headerY := panelPadding + headerBaseline
	text.Draw(h.panel, h.src.Title(), face, panelPadding, headerY, color.RGBA{R: 200, G: 200, B: 210, A: 255})

	cashColor := color.RGBA{R: 90, G: 210, B: 110, A: 255}
	if h.budget < 0 {
		cashColor = color.RGBA{R: 230, G: 80, B: 70, A: 255}
	}
	text.Draw(h.panel, fmt.Sprintf("Cash: $%d", h.budget), face, panelPadding, headerY+cashSpacing, cashColor)

	for i := range h.controls {
		st := &h.controls[i]
		labelY := st.top + labelBaseline
		if st.control.Type == core.ParamTypeBool {
			h.drawButton(st.toggleRect, st.value, st.hasValue && h.boolSetter != nil)
			continue
		}
		text.Draw(h.panel, st.control.Label, face, panelPadding, labelY, color.RGBA{R: 220, G: 220, B: 230, A: 255})
		valueColor := color.RGBA{R: 220, G: 220, B: 230, A: 255}
		if !st.hasValue {
			valueColor = color.RGBA{R: 160, G: 160, B: 170, A: 255}
		}
		bounds := text.BoundString(face, st.value)
		valueX := st.minusRect.Min.X - buttonGap - bounds.Dx()
		text.Draw(h.panel, st.value, face, valueX, labelY, valueColor)

		_, minusOK := st.target(-1)
		_, plusOK := st.target(1)
		h.drawButton(st.minusRect, "-", minusOK && h.intSetter != nil)
		h.drawButton(st.plusRect, "+", plusOK && h.intSetter != nil)
	}
}

func (h *HUD) drawButton(rect image.Rectangle, label string, enabled bool) {
	drawButton(h.panel, h.pixel, rect, label, enabled)
}

func drawButton(dst, pixel *ebiten.Image, rect image.Rectangle, label string, enabled bool) {
	if pixel == nil {
		return
	}
	bg := color.RGBA{R: 54, G: 56, B: 64, A: 255}
	fg := color.RGBA{R: 230, G: 230, B: 240, A: 255}
	if !enabled {
		bg = color.RGBA{R: 32, G: 34, B: 40, A: 255}
		fg = color.RGBA{R: 120, G: 120, B: 130, A: 255}
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(rect.Dx()), float64(rect.Dy()))
	op.GeoM.Translate(float64(rect.Min.X), float64(rect.Min.Y))
	op.ColorM.Scale(float64(bg.R)/255.0, float64(bg.G)/255.0, float64(bg.B)/255.0, float64(bg.A)/255.0)
	dst.DrawImage(pixel, op)

	face := basicfont.Face7x13
	bounds := text.BoundString(face, label)
	x := rect.Min.X + (rect.Dx()-bounds.Dx())/2
	y := rect.Min.Y + (rect.Dy()-bounds.Dy())/2 + bounds.Dy()
	text.Draw(dst, label, face, x, y, fg)
}
