package app

import (
	"image"

	"iso-city/internal/build"
	"iso-city/internal/core"
)

// Key repeat timing in ticks.
const (
	repeatDelay    = 30
	repeatInterval = 4
)

// Input is one tick of player input.
type Input struct {
	Cursor      image.Point
	Pressed     build.Button
	Scroll      core.Pos
	RadiusDelta int
	// Captured is set when the cursor is over the HUD or an open dialog.
	Captured bool
}

// ScrollOffset maps held W, A, S, D keys to a view offset.
func ScrollOffset(up, left, down, right bool) core.Pos {
	var off core.Pos
	if up {
		off.Y++
	}
	if left {
		off.X++
	}
	if down {
		off.Y--
	}
	if right {
		off.X--
	}
	return off
}

// repeats reports whether a key held for ticks ticks fires this tick.
func repeats(ticks int) bool {
	if ticks == 1 {
		return true
	}
	return ticks >= repeatDelay && (ticks-repeatDelay)%repeatInterval == 0
}

// Step applies one tick of input: scrolling, radius keys, then the mouse.
// Clicks are dropped while Captured. It returns the hovered cell.
func (s *Session) Step(in Input) core.Pos {
	if in.Scroll != (core.Pos{}) {
		s.Scroll(in.Scroll)
	}
	for i := 0; i < in.RadiusDelta; i++ {
		s.Controller.IncreaseRadius()
	}
	for i := 0; i > in.RadiusDelta; i-- {
		s.Controller.DecreaseRadius()
	}
	pressed := in.Pressed
	if in.Captured {
		pressed = 0
	}
	return s.Frame(in.Cursor, pressed)
}
