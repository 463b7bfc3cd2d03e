// Package build couples pointer buttons to grid edits.
package build

import (
	"iso-city/internal/core"
	"iso-city/internal/world"
)

// Button is a bit set of pointer buttons pressed this frame.
type Button uint8

const (
	// ButtonPrimary paints with the brush.
	ButtonPrimary Button = 1 << iota
	// ButtonSecondary raises terrain under the brush.
	ButtonSecondary
	// ButtonTertiary arms and commits lines.
	ButtonTertiary
)

// Has reports whether all bits of o are set in b.
func (b Button) Has(o Button) bool { return b&o == o }

// State is the interactive build state shared with the HUD.
type State struct {
	Active   bool
	Selected world.Kind
	Radius   int

	LineMode  bool
	LineStart core.Pos
	LineEnd   core.Pos
}

// NewState returns an idle state with Grass selected and no line armed.
func NewState() State {
	return State{
		Selected:  world.Grass,
		LineStart: core.Invalid,
		LineEnd:   core.Invalid,
	}
}

// LineFired reports whether a committed line is still on display.
func (s State) LineFired() bool { return s.LineEnd.Valid() }
