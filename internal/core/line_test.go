package core

import (
	"slices"
	"testing"
)

func TestForEachOnLineSinglePoint(t *testing.T) {
	p := Pos{X: 3, Y: 4}
	calls := 0
	ForEachOnLine(p, p, func(got Pos) {
		calls++
		if got != p {
			t.Fatalf("visited %v, want %v", got, p)
		}
	})
	if calls != 1 {
		t.Fatalf("visit called %d times, want 1", calls)
	}
}

func TestForEachOnLineStraightRuns(t *testing.T) {
	cases := []struct {
		a, b Pos
		want []Pos
	}{
		{Pos{0, 0}, Pos{3, 0}, []Pos{{0, 0}, {1, 0}, {2, 0}, {3, 0}}},
		{Pos{3, 0}, Pos{0, 0}, []Pos{{3, 0}, {2, 0}, {1, 0}, {0, 0}}},
		{Pos{1, 1}, Pos{1, 4}, []Pos{{1, 1}, {1, 2}, {1, 3}, {1, 4}}},
		{Pos{0, 0}, Pos{3, 3}, []Pos{{0, 0}, {1, 1}, {2, 2}, {3, 3}}},
		{Pos{3, 0}, Pos{0, 3}, []Pos{{3, 0}, {2, 1}, {1, 2}, {0, 3}}},
	}
	for _, tc := range cases {
		if got := PointsOnLine(tc.a, tc.b); !slices.Equal(got, tc.want) {
			t.Errorf("line %v->%v = %v, want %v", tc.a, tc.b, got, tc.want)
		}
	}
}

func TestForEachOnLineAllOctants(t *testing.T) {
	origin := Pos{X: 10, Y: 10}
	targets := []Pos{
		{15, 12}, {12, 15}, {8, 15}, {5, 12},
		{5, 8}, {8, 5}, {12, 5}, {15, 8},
	}
	for _, target := range targets {
		pts := PointsOnLine(origin, target)
		if pts[0] != origin {
			t.Fatalf("line to %v starts at %v", target, pts[0])
		}
		if pts[len(pts)-1] != target {
			t.Fatalf("line to %v ends at %v", target, pts[len(pts)-1])
		}
		dx := absInt(target.X - origin.X)
		dy := absInt(target.Y - origin.Y)
		want := dx
		if dy > want {
			want = dy
		}
		if len(pts) != want+1 {
			t.Errorf("line to %v has %d cells, want %d", target, len(pts), want+1)
		}
		for i := 1; i < len(pts); i++ {
			if absInt(pts[i].X-pts[i-1].X) > 1 || absInt(pts[i].Y-pts[i-1].Y) > 1 {
				t.Fatalf("line to %v jumps from %v to %v", target, pts[i-1], pts[i])
			}
		}
	}
}
