package iso

import (
	"image"
	"testing"

	"iso-city/internal/core"
)

type heightMap map[core.Pos]int

func (h heightMap) Elevation(p core.Pos) int { return h[p] }

func TestCellToScreen(t *testing.T) {
	p := NewProjector(core.Size{W: 64, H: 64}, core.Size{W: 40, H: 40}, core.Pos{X: 9, Y: 5})
	cases := []struct {
		cell core.Pos
		want image.Point
	}{
		{core.Pos{X: 0, Y: 0}, image.Pt(288, 80)},
		{core.Pos{X: 1, Y: 0}, image.Pt(320, 96)},
		{core.Pos{X: 0, Y: 1}, image.Pt(256, 96)},
		{core.Pos{X: 3, Y: 2}, image.Pt(320, 160)},
	}
	for _, tc := range cases {
		if got := p.CellToScreen(tc.cell); got != tc.want {
			t.Errorf("CellToScreen(%v) = %v, want %v", tc.cell, got, tc.want)
		}
	}
	if got := p.CellCenter(core.Pos{}); got != image.Pt(320, 112) {
		t.Errorf("CellCenter(0,0) = %v, want (320,112)", got)
	}
	if got := p.CellRect(core.Pos{}, 20); got != image.Rect(288, 60, 352, 124) {
		t.Errorf("CellRect = %v", got)
	}
}

func TestScreenToCellRoundTrip(t *testing.T) {
	footprints := []core.Size{{W: 64, H: 64}, {W: 64, H: 32}, {W: 32, H: 32}}
	views := []core.Pos{{X: 0, Y: 0}, {X: 9, Y: 5}, {X: 3, Y: -12}, {X: 41, Y: -90}}
	grid := core.Size{W: 7, H: 5}
	for _, fp := range footprints {
		for _, view := range views {
			p := NewProjector(fp, grid, view)
			for y := 0; y < grid.H; y++ {
				for x := 0; x < grid.W; x++ {
					c := core.Pos{X: x, Y: y}
					if got := p.ScreenToCell(p.CellCenter(c)); got != c {
						t.Fatalf("footprint %v view %v: round trip of %v = %v", fp, view, c, got)
					}
				}
			}
		}
	}
}

func TestScreenToCellOutsideGrid(t *testing.T) {
	p := NewProjector(core.Size{W: 64, H: 64}, core.Size{W: 5, H: 5}, core.Pos{})
	for _, pt := range []image.Point{image.Pt(32, -400), image.Pt(2000, 2000), image.Pt(-900, 300)} {
		if got := p.ScreenToCell(pt); got != core.Invalid {
			t.Errorf("ScreenToCell(%v) = %v, want Invalid", pt, got)
		}
	}
}

func TestScreenToCellSlackRowClampsIntoGrid(t *testing.T) {
	p := NewProjector(core.Size{W: 64, H: 64}, core.Size{W: 5, H: 5}, core.Pos{})
	// Coarse estimate lands on column 5, one past the edge.
	got := p.ScreenToCell(image.Pt(96, 128))
	if got != (core.Pos{X: 4, Y: 2}) {
		t.Fatalf("ScreenToCell = %v, want (4,2)", got)
	}
}

func TestPickTopmostFlatGrid(t *testing.T) {
	p := NewProjector(core.Size{W: 64, H: 64}, core.Size{W: 5, H: 5}, core.Pos{X: 4, Y: 0})
	flat := heightMap{}
	for y := 0; y < 5; y++ {
		for x := 0; x < 5; x++ {
			c := core.Pos{X: x, Y: y}
			if got := p.PickTopmost(p.CellCenter(c), flat); got != c {
				t.Fatalf("PickTopmost over flat %v = %v", c, got)
			}
		}
	}
}

func TestPickTopmostPrefersElevatedTile(t *testing.T) {
	p := NewProjector(core.Size{W: 64, H: 64}, core.Size{W: 5, H: 5}, core.Pos{})
	raised := core.Pos{X: 2, Y: 2}
	heights := heightMap{raised: 20}

	drawn := p.CellCenter(raised).Sub(image.Point{Y: 20})
	if got := p.PickTopmost(drawn, heights); got != raised {
		t.Fatalf("PickTopmost on raised sprite = %v, want %v", got, raised)
	}

	// The unraised footprint position no longer shows this tile.
	if got := p.PickTopmost(p.CellCenter(raised), heights); got == raised {
		t.Fatalf("PickTopmost at the ground position still returned %v", got)
	}
}

func TestPickTopmostNoTile(t *testing.T) {
	p := NewProjector(core.Size{W: 64, H: 64}, core.Size{W: 5, H: 5}, core.Pos{})
	if got := p.PickTopmost(image.Pt(5000, 5000), heightMap{}); got != core.Invalid {
		t.Fatalf("PickTopmost far away = %v, want Invalid", got)
	}
	// Every probe hits a flat tile but none matches its band except zero,
	// which is absent here.
	odd := heightMap{}
	for y := 0; y < 5; y++ {
		for x := 0; x < 5; x++ {
			odd[core.Pos{X: x, Y: y}] = 10
		}
	}
	if got := p.PickTopmost(p.CellCenter(core.Pos{X: 1, Y: 1}), odd); got != core.Invalid {
		t.Fatalf("PickTopmost with off-band elevations = %v, want Invalid", got)
	}
}

func TestMoveViewClamps(t *testing.T) {
	p := NewProjector(core.Size{W: 64, H: 64}, core.Size{W: 40, H: 40}, core.Pos{X: 9, Y: 5})
	p.MoveView(core.Pos{Y: 1})
	if p.View != (core.Pos{X: 9, Y: 0}) {
		t.Fatalf("view = %v, want (9,0)", p.View)
	}
	p.MoveView(core.Pos{X: -20, Y: -200})
	if p.View != (core.Pos{X: 0, Y: -90}) {
		t.Fatalf("view = %v, want (0,-90)", p.View)
	}
	p.MoveView(core.Pos{X: 100})
	if p.View.X != 41 {
		t.Fatalf("view.x = %d, want 41", p.View.X)
	}
}
