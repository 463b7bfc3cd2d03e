package build

import (
	"io"
	"log/slog"

	"iso-city/internal/core"
	"iso-city/internal/world"
)

// DefaultLiftStep is the elevation added per secondary click.
const DefaultLiftStep = 20

// Controller interprets pointer input against the hovered cell and applies
// the resulting edits to the world.
type Controller struct {
	world    *world.World
	state    State
	liftStep int
	log      *slog.Logger
}

// NewController returns a controller editing w. A nil logger discards output.
func NewController(w *world.World, liftStep int, log *slog.Logger) *Controller {
	if log == nil {
		log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	if liftStep == 0 {
		liftStep = DefaultLiftStep
	}
	return &Controller{world: w, state: NewState(), liftStep: liftStep, log: log}
}

// State returns a copy of the current build state.
func (c *Controller) State() State { return c.state }

// World returns the grid being edited.
func (c *Controller) World() *world.World { return c.world }

// ToggleBuild flips build mode. Leaving build mode does not touch tiles.
func (c *Controller) ToggleBuild() { c.SetActive(!c.state.Active) }

// SetActive enters or leaves build mode.
func (c *Controller) SetActive(active bool) {
	if c.state.Active == active {
		return
	}
	c.state.Active = active
	c.log.Debug("build mode", "active", active)
}

// Select changes the kind painted by the brush and line tools.
func (c *Controller) Select(kind world.Kind) bool {
	if !kind.CanPlace() {
		return false
	}
	c.state.Selected = kind
	return true
}

// IncreaseRadius grows the brush by one cell.
func (c *Controller) IncreaseRadius() { c.state.Radius++ }

// DecreaseRadius shrinks the brush by one cell, stopping at zero.
func (c *Controller) DecreaseRadius() {
	c.state.Radius--
	if c.state.Radius < 0 {
		c.state.Radius++
	}
}

// Handle applies one frame of button presses with cur as the hovered cell.
// Buttons are evaluated primary, tertiary, then secondary.
func (c *Controller) Handle(cur core.Pos, pressed Button) {
	if !cur.Valid() || !c.state.Active || pressed == 0 {
		return
	}
	if pressed.Has(ButtonPrimary) {
		c.primary(cur)
	}
	if pressed.Has(ButtonTertiary) {
		c.tertiary(cur)
	}
	if pressed.Has(ButtonSecondary) {
		c.secondary(cur)
	}
}

func (c *Controller) primary(cur core.Pos) {
	if c.cancelLine() {
		return
	}
	c.ForEachHovered(cur, func(p core.Pos) {
		c.world.PlaceTile(p, c.state.Selected, c.state.Active)
	})
	c.log.Debug("paint", "center", cur, "radius", c.state.Radius, "kind", c.state.Selected, "budget", c.world.Budget())
}

func (c *Controller) secondary(cur core.Pos) {
	if c.cancelLine() {
		return
	}
	c.ForEachHovered(cur, func(p core.Pos) {
		c.world.LiftDropTile(p, c.liftStep)
	})
	c.log.Debug("lift", "center", cur, "radius", c.state.Radius, "delta", c.liftStep, "budget", c.world.Budget())
}

// tertiary drives the line tool. The first press arms lineStart, the second
// commits and paints the line, a press while a line is shown cancels it. The
// line-mode flag flips on every press.
func (c *Controller) tertiary(cur core.Pos) {
	defer func() { c.state.LineMode = !c.state.LineMode }()
	if c.cancelLine() {
		return
	}
	if !c.state.LineMode {
		c.state.LineStart = cur
		c.state.LineEnd = core.Invalid
		return
	}
	c.state.LineEnd = cur
	cells := 0
	core.ForEachOnLine(c.state.LineStart, c.state.LineEnd, func(p core.Pos) {
		c.world.PlaceTile(p, c.state.Selected, c.state.Active)
		cells++
	})
	c.log.Debug("line", "start", c.state.LineStart, "end", c.state.LineEnd, "cells", cells, "budget", c.world.Budget())
}

func (c *Controller) cancelLine() bool {
	if !c.state.LineEnd.Valid() {
		return false
	}
	c.state.LineEnd = core.Invalid
	return true
}

// ForEachHovered visits the brush footprint around cur.
func (c *Controller) ForEachHovered(cur core.Pos, visit func(core.Pos)) {
	if !cur.Valid() {
		return
	}
	core.ForEachInRadius(cur, c.state.Radius, c.world.Size(), visit)
}

// ForEachPreview visits the committed line while it is on display.
func (c *Controller) ForEachPreview(visit func(core.Pos)) {
	if !c.state.LineFired() {
		return
	}
	core.ForEachOnLine(c.state.LineStart, c.state.LineEnd, visit)
}
