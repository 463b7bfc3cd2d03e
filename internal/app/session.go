package app

import (
	"image"
	"io"
	"log/slog"

	"iso-city/internal/build"
	"iso-city/internal/config"
	"iso-city/internal/core"
	"iso-city/internal/iso"
	"iso-city/internal/world"
)

// Session wires the grid, projector and build controller for one game.
type Session struct {
	World      *world.World
	Projector  *iso.Projector
	Controller *build.Controller
	Catalog    *world.Catalog

	hovered core.Pos
	log     *slog.Logger
}

// NewSession builds a Session from cfg. Every cell starts as the configured
// initial tile. A catalog that fails to load falls back to the defaults.
func NewSession(cfg config.Config, log *slog.Logger) *Session {
	if log == nil {
		log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	w := world.New(cfg.WorldParams())
	w.Fill(cfg.InitialTile())

	proj := iso.NewProjector(cfg.Footprint(), cfg.GridSize(), cfg.InitialView())
	proj.ProbeStep = cfg.Tiles.ProbeStep
	proj.ProbeCount = cfg.Tiles.ProbeCount

	catalog := world.DefaultCatalog()
	if cfg.Tiles.Catalog != "" {
		loaded, err := world.LoadCatalog(cfg.Tiles.Catalog)
		if err != nil {
			log.Warn("using default tile catalog", "path", cfg.Tiles.Catalog, "err", err)
		} else {
			catalog = loaded
		}
	}

	return &Session{
		World:      w,
		Projector:  proj,
		Controller: build.NewController(w, cfg.World.LiftStep, log),
		Catalog:    catalog,
		hovered:    core.Invalid,
		log:        log,
	}
}

// Scroll moves the view by off.
func (s *Session) Scroll(off core.Pos) { s.Projector.MoveView(off) }

// Frame resolves the hovered cell under cursor and applies pressed to it. It
// returns the hovered cell, possibly core.Invalid.
func (s *Session) Frame(cursor image.Point, pressed build.Button) core.Pos {
	s.hovered = s.Projector.PickTopmost(cursor, s.World)
	s.Controller.Handle(s.hovered, pressed)
	return s.hovered
}

// Hovered returns the cell resolved by the last Frame.
func (s *Session) Hovered() core.Pos { return s.hovered }
