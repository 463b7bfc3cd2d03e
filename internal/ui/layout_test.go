package ui

import (
	"image"
	"testing"

	"iso-city/internal/core"
)

func TestLayoutControlsButtons(t *testing.T) {
	states := layoutControls([]core.ParameterControl{
		{Key: "build", Type: core.ParamTypeBool},
		{Key: "radius", Type: core.ParamTypeInt},
	}, 300)
	if len(states) != 2 {
		t.Fatalf("got %d states", len(states))
	}
	if states[0].toggleRect.Empty() || !states[0].plusRect.Empty() {
		t.Fatalf("bool control rects = %+v", states[0])
	}
	plus := states[1].plusRect
	minus := states[1].minusRect
	if plus.Max.X != 300-panelPadding || minus.Max.X != plus.Min.X-buttonGap {
		t.Fatalf("int control buttons = %v %v", minus, plus)
	}
	if states[1].top != states[0].top+lineHeight {
		t.Fatalf("rows not stacked: %d then %d", states[0].top, states[1].top)
	}
}

func TestSameControls(t *testing.T) {
	controls := []core.ParameterControl{{Key: "build"}}
	states := layoutControls(controls, 100)
	if !sameControls(states, controls) {
		t.Fatal("identical keys should match")
	}
	if sameControls(states, append(controls, core.ParameterControl{Key: "kind"})) {
		t.Fatal("a longer control list should force a relayout")
	}
}

func TestRefreshValues(t *testing.T) {
	choice := hudControlState{control: core.ParameterControl{Type: core.ParamTypeChoice, Choices: []string{"Grass", "Road"}}}
	choice.refresh(core.Parameter{Value: "1"}, true)
	if !choice.hasValue || choice.value != "Road" {
		t.Fatalf("choice = %+v", choice)
	}
	choice.refresh(core.Parameter{Value: "5"}, true)
	if choice.hasValue {
		t.Fatal("out of range choice should have no value")
	}

	toggle := hudControlState{control: core.ParameterControl{Type: core.ParamTypeBool, OnLabel: "Stop Building", OffLabel: "Build"}}
	toggle.refresh(core.Parameter{Value: "true"}, true)
	if toggle.value != "Stop Building" || !toggle.boolValue {
		t.Fatalf("toggle = %+v", toggle)
	}
	toggle.refresh(core.Parameter{}, false)
	if toggle.hasValue || toggle.value != "--" {
		t.Fatalf("missing parameter = %+v", toggle)
	}
}

func TestTargetRespectsBounds(t *testing.T) {
	radius := hudControlState{control: core.ParameterControl{Type: core.ParamTypeInt, Step: 1, Min: 0, HasMin: true}}
	radius.refresh(core.Parameter{Value: "0"}, true)
	if _, ok := radius.target(-1); ok {
		t.Fatal("radius should not go below its minimum")
	}
	if v, ok := radius.target(1); !ok || v != 1 {
		t.Fatalf("target(+1) = %d, %v", v, ok)
	}

	kind := hudControlState{control: core.ParameterControl{Type: core.ParamTypeChoice, Choices: []string{"a", "b"}}}
	kind.refresh(core.Parameter{Value: "1"}, true)
	if _, ok := kind.target(1); ok {
		t.Fatal("choice should stop at its last entry")
	}
	if v, ok := kind.target(-1); !ok || v != 0 {
		t.Fatalf("target(-1) = %d, %v", v, ok)
	}

	toggle := hudControlState{control: core.ParameterControl{Type: core.ParamTypeBool}}
	toggle.refresh(core.Parameter{Value: "false"}, true)
	if _, ok := toggle.target(1); ok {
		t.Fatal("bool controls are not stepped")
	}
}

func TestCenteredRectAndAnnouncementSize(t *testing.T) {
	got := centeredRect(image.Rect(0, 0, 800, 600), 200, 100)
	if got != image.Rect(300, 250, 500, 350) {
		t.Fatalf("centeredRect = %v", got)
	}
	w, h := announcementSize([]string{"hi"})
	if w != closeWidth+2*panelPadding {
		t.Fatalf("short message width = %d, want the close button floor", w)
	}
	if h != panelPadding+headerBaseline+announcementLine+buttonSize+panelPadding {
		t.Fatalf("height = %d", h)
	}
	w, _ = announcementSize([]string{"0123456789012345678901234567890"})
	if w != 31*glyphWidth+2*panelPadding {
		t.Fatalf("long message width = %d", w)
	}
}
