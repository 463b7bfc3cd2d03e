package ui

import (
	"image"
	"strconv"

	"iso-city/internal/core"
)

// Source feeds the HUD panel.
type Source interface {
	Title() string
	Budget() int
	Parameters() core.ParameterSnapshot
	ParameterControls() []core.ParameterControl
}

type hudControlState struct {
	control core.ParameterControl
	value   string

	intValue  int
	boolValue bool
	hasValue  bool

	top        int
	minusRect  image.Rectangle
	plusRect   image.Rectangle
	toggleRect image.Rectangle
}

const (
	panelPadding   = 12
	lineHeight     = 36
	buttonSize     = 24
	buttonGap      = 6
	toggleWidth    = 120
	headerBaseline = 18
	labelBaseline  = 24
	cashSpacing    = 20
	controlsTop    = panelPadding + headerBaseline + cashSpacing + 14
)

// layoutControls places each control on its own row of a panel width pixels
// wide. Bool controls get one wide toggle, the rest get -/+ buttons.
func layoutControls(controls []core.ParameterControl, width int) []hudControlState {
	states := make([]hudControlState, len(controls))
	for i, ctrl := range controls {
		top := controlsTop + i*lineHeight
		buttonY := top + (lineHeight-buttonSize)/2
		st := hudControlState{control: ctrl, value: "--", top: top}
		if ctrl.Type == core.ParamTypeBool {
			st.toggleRect = image.Rect(width-panelPadding-toggleWidth, buttonY, width-panelPadding, buttonY+buttonSize)
		} else {
			st.plusRect = image.Rect(width-panelPadding-buttonSize, buttonY, width-panelPadding, buttonY+buttonSize)
			st.minusRect = image.Rect(st.plusRect.Min.X-buttonGap-buttonSize, buttonY, st.plusRect.Min.X-buttonGap, buttonY+buttonSize)
		}
		states[i] = st
	}
	return states
}

// panelHeight is the height needed to show n control rows.
func panelHeight(n int) int {
	return controlsTop + n*lineHeight + panelPadding
}

func sameControls(states []hudControlState, controls []core.ParameterControl) bool {
	if len(states) != len(controls) {
		return false
	}
	for i := range states {
		if states[i].control.Key != controls[i].Key {
			return false
		}
	}
	return true
}

// refresh loads the displayed value of st from param.
func (st *hudControlState) refresh(param core.Parameter, ok bool) {
	st.hasValue = false
	st.value = "--"
	if !ok {
		return
	}
	switch st.control.Type {
	case core.ParamTypeInt:
		v, err := strconv.Atoi(param.Value)
		if err != nil {
			return
		}
		st.intValue = v
		st.value = strconv.Itoa(v)
	case core.ParamTypeChoice:
		v, err := strconv.Atoi(param.Value)
		if err != nil || v < 0 || v >= len(st.control.Choices) {
			return
		}
		st.intValue = v
		st.value = st.control.Choices[v]
	case core.ParamTypeBool:
		v, err := strconv.ParseBool(param.Value)
		if err != nil {
			return
		}
		st.boolValue = v
		st.value = st.control.OffLabel
		if v {
			st.value = st.control.OnLabel
		}
	default:
		return
	}
	st.hasValue = true
}

// target returns the value one step in direction, and false when the control
// is already at its bound.
func (st *hudControlState) target(direction int) (int, bool) {
	if !st.hasValue || direction == 0 {
		return 0, false
	}
	step := st.control.Step
	if step <= 0 {
		step = 1
	}
	v := st.intValue + direction*step
	switch st.control.Type {
	case core.ParamTypeInt:
		if st.control.HasMin && v < st.control.Min {
			return 0, false
		}
		if st.control.HasMax && v > st.control.Max {
			return 0, false
		}
	case core.ParamTypeChoice:
		if v < 0 || v >= len(st.control.Choices) {
			return 0, false
		}
	default:
		return 0, false
	}
	return v, true
}

func pointInRect(x, y int, rect image.Rectangle) bool {
	return x >= rect.Min.X && x < rect.Max.X && y >= rect.Min.Y && y < rect.Max.Y
}

// centeredRect returns a w*h rectangle centred in bounds.
func centeredRect(bounds image.Rectangle, w, h int) image.Rectangle {
	x := bounds.Min.X + (bounds.Dx()-w)/2
	y := bounds.Min.Y + (bounds.Dy()-h)/2
	return image.Rect(x, y, x+w, y+h)
}

const (
	glyphWidth       = 7
	announcementLine = 18
	closeWidth       = 72
)

// announcementSize returns the box size needed for lines set in a 7x13 face
// plus a Close button row.
func announcementSize(lines []string) (int, int) {
	longest := 0
	for _, l := range lines {
		if n := len([]rune(l)); n > longest {
			longest = n
		}
	}
	w := longest*glyphWidth + 2*panelPadding
	if floor := closeWidth + 2*panelPadding; w < floor {
		w = floor
	}
	h := panelPadding + headerBaseline + len(lines)*announcementLine + buttonSize + panelPadding
	return w, h
}
