package app

import (
	"flag"
	"image"
	"os"
	"path/filepath"
	"testing"

	"iso-city/internal/build"
	"iso-city/internal/config"
	"iso-city/internal/core"
	"iso-city/internal/world"
)

func smallConfig() config.Config {
	cfg := config.Default()
	cfg.World.Width = 5
	cfg.World.Height = 5
	cfg.View = config.ViewConfig{X: 4, Y: 0}
	return cfg
}

func TestSessionStartsWithInitialTiles(t *testing.T) {
	s := NewSession(smallConfig(), nil)
	if got := s.World.Tile(core.Pos{X: 4, Y: 4}); got != (world.Tile{Kind: world.Grass}) {
		t.Fatalf("initial tile = %+v, want grass", got)
	}
	if s.Hovered().Valid() {
		t.Fatal("nothing should be hovered before the first frame")
	}
}

func TestSessionFramePaintsHoveredCell(t *testing.T) {
	s := NewSession(smallConfig(), nil)
	s.Controller.ToggleBuild()
	s.Controller.Select(world.Road)

	target := core.Pos{X: 1, Y: 3}
	cursor := s.Projector.CellCenter(target)
	if got := s.Frame(cursor, build.ButtonPrimary); got != target {
		t.Fatalf("hovered = %v, want %v", got, target)
	}
	if s.World.Tile(target).Kind != world.Road {
		t.Fatal("primary click did not paint the hovered cell")
	}

	if got := s.Frame(cursor, build.ButtonSecondary); got != target {
		t.Fatalf("hovered = %v, want %v", got, target)
	}
	if s.World.Elevation(target) != 20 {
		t.Fatalf("elevation = %d, want 20", s.World.Elevation(target))
	}
	// The raised tile is now drawn 20px higher and is picked there.
	if got := s.Frame(cursor.Sub(image.Pt(0, 20)), 0); got != target {
		t.Fatalf("raised tile picked as %v, want %v", got, target)
	}
}

func TestSessionScrollClamps(t *testing.T) {
	s := NewSession(smallConfig(), nil)
	s.Scroll(core.Pos{X: 50, Y: 50})
	if s.Projector.View != (core.Pos{X: 6, Y: 0}) {
		t.Fatalf("view = %v, want (6,0)", s.Projector.View)
	}
}

func TestSessionFallsBackToDefaultCatalog(t *testing.T) {
	cfg := smallConfig()
	cfg.Tiles.Catalog = filepath.Join(t.TempDir(), "missing.yaml")
	s := NewSession(cfg, nil)
	if s.Catalog.Info(world.Road).Label != "Road" {
		t.Fatalf("catalog = %+v", s.Catalog.Info(world.Road))
	}
}

func TestFlagsResolveLayersExplicitFlags(t *testing.T) {
	path := filepath.Join(t.TempDir(), "city.yaml")
	if err := os.WriteFile(path, []byte("world:\n  width: 12\n  budget: 300\n"), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	fs := flag.NewFlagSet("city", flag.ContinueOnError)
	f := NewFlags()
	f.Bind(fs)
	if err := fs.Parse([]string{"-config", path, "-budget", "900"}); err != nil {
		t.Fatalf("parse: %v", err)
	}
	cfg, err := f.Resolve(fs)
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if cfg.World.Width != 12 {
		t.Fatalf("width = %d, want file value 12", cfg.World.Width)
	}
	if cfg.World.Budget != 900 {
		t.Fatalf("budget = %d, want flag value 900", cfg.World.Budget)
	}
}

func TestFlagsLogger(t *testing.T) {
	f := NewFlags()
	f.LogLevel = "debug"
	if _, err := f.Logger(); err != nil {
		t.Fatalf("Logger: %v", err)
	}
	f.LogLevel = "loud"
	if _, err := f.Logger(); err == nil {
		t.Fatal("expected unknown level to be rejected")
	}
}
