package world

import "iso-city/internal/core"

// Config controls grid dimensions and the build economy.
type Config struct {
	Width  int
	Height int

	// HeightLimit bounds elevations to [0, HeightLimit).
	HeightLimit int
	Budget      int
	// UnitCost is multiplied by the kind index on every kind change.
	UnitCost int
	// LiftFee is charged once per nonzero elevation change.
	LiftFee int
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{
		Width:       40,
		Height:      40,
		HeightLimit: 60,
		Budget:      20000,
		UnitCost:    5,
		LiftFee:     20,
	}
}

// World owns the tile array and the budget counter.
type World struct {
	cfg    Config
	size   core.Size
	budget int
	tiles  []Tile
}

// New allocates a world of Empty tiles at elevation zero.
func New(cfg Config) *World {
	if cfg.Width <= 0 {
		cfg.Width = 1
	}
	if cfg.Height <= 0 {
		cfg.Height = 1
	}
	if cfg.HeightLimit <= 0 {
		cfg.HeightLimit = DefaultConfig().HeightLimit
	}
	size := core.Size{W: cfg.Width, H: cfg.Height}
	w := &World{
		cfg:    cfg,
		size:   size,
		budget: cfg.Budget,
		tiles:  make([]Tile, size.Area()),
	}
	w.Fill(EmptyTile)
	return w
}

// Size returns the grid dimensions.
func (w *World) Size() core.Size { return w.size }

// Budget returns the spendable counter. It may be negative.
func (w *World) Budget() int { return w.budget }

// HeightLimit returns the exclusive upper bound on elevations.
func (w *World) HeightLimit() int { return w.cfg.HeightLimit }

// Fill overwrites every tile with t.
func (w *World) Fill(t Tile) {
	for i := range w.tiles {
		w.tiles[i] = t
	}
}

// Tile returns the tile at p, or EmptyTile when p is outside the grid.
func (w *World) Tile(p core.Pos) Tile {
	if !w.size.Contains(p) {
		return EmptyTile
	}
	return w.tiles[w.size.Index(p)]
}

// Elevation returns the stored elevation at p, zero outside the grid.
func (w *World) Elevation(p core.Pos) int { return w.Tile(p).Elevation }

// SetTile overwrites the tile at p. Positions outside the grid are ignored.
func (w *World) SetTile(p core.Pos, t Tile) {
	if !w.size.Contains(p) {
		return
	}
	w.tiles[w.size.Index(p)] = t
}

// PlaceTile changes the kind at p, keeping its elevation. It does nothing
// unless active is set, kind is placeable and the budget is positive; a kind
// change costs UnitCost times the kind index and may drive the budget
// negative. It reports whether the tile was written.
func (w *World) PlaceTile(p core.Pos, kind Kind, active bool) bool {
	if !active || !kind.CanPlace() || w.budget <= 0 {
		return false
	}
	if !w.size.Contains(p) {
		return false
	}
	tile := w.Tile(p)
	if tile.Kind != kind {
		w.budget -= w.cfg.UnitCost * kind.Index()
	}
	w.SetTile(p, Tile{Kind: kind, Elevation: tile.Elevation})
	return true
}

// LiftDropTile shifts the elevation at p by delta, wrapping into
// [0, HeightLimit). Any nonzero delta costs LiftFee. It does nothing while the
// budget is not positive, and reports whether the tile was written.
func (w *World) LiftDropTile(p core.Pos, delta int) bool {
	if w.budget <= 0 {
		return false
	}
	if !w.size.Contains(p) {
		return false
	}
	tile := w.Tile(p)
	if delta != 0 {
		w.budget -= w.cfg.LiftFee
	}
	tile.Elevation = core.FloorMod(tile.Elevation+delta, w.cfg.HeightLimit)
	w.SetTile(p, tile)
	return true
}
