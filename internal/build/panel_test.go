package build

import (
	"testing"

	"iso-city/internal/world"
)

func TestPanelControlsFollowBuildMode(t *testing.T) {
	c := newGrassController(3, 3, 100)
	p := NewPanel(c, nil)

	if got := len(p.ParameterControls()); got != 1 {
		t.Fatalf("idle panel has %d controls, want 1", got)
	}
	if !p.SetBoolParameter(ParamBuild, true) || !c.State().Active {
		t.Fatal("build toggle did not enter build mode")
	}
	controls := p.ParameterControls()
	if len(controls) != 3 {
		t.Fatalf("building panel has %d controls, want 3", len(controls))
	}
	if len(controls[1].Choices) != len(world.Placeable) {
		t.Fatalf("tile selector has %d choices", len(controls[1].Choices))
	}
}

func TestPanelSetters(t *testing.T) {
	c := newGrassController(3, 3, 100)
	p := NewPanel(c, world.DefaultCatalog())

	if !p.SetIntParameter(ParamKind, 3) || c.State().Selected != world.Road {
		t.Fatalf("selector index 3 selected %v, want road", c.State().Selected)
	}
	if p.SetIntParameter(ParamKind, 5) {
		t.Fatal("out-of-range selector index accepted")
	}
	if !p.SetIntParameter(ParamRadius, 2) || c.State().Radius != 2 {
		t.Fatalf("radius = %d, want 2", c.State().Radius)
	}
	if p.SetIntParameter(ParamRadius, -1) || c.State().Radius != 0 {
		t.Fatalf("negative radius request left radius at %d, want 0", c.State().Radius)
	}

	snap := p.Parameters()
	kind, ok := snap.Lookup(ParamKind)
	if !ok || kind.Value != "3" {
		t.Fatalf("kind parameter = %+v", kind)
	}
	if p.Budget() != 100 || p.Title() != "City" {
		t.Fatal("panel budget or title wrong")
	}
}
