package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"iso-city/internal/core"
	"iso-city/internal/world"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("invalid config")

// Config holds all game configuration values
type Config struct {
	Display DisplayConfig `yaml:"display"`
	World   WorldConfig   `yaml:"world"`
	View    ViewConfig    `yaml:"view"`
	Tiles   TileConfig    `yaml:"tiles"`
	UI      UIConfig      `yaml:"ui"`
}

type DisplayConfig struct {
	ScreenWidth  int    `yaml:"screen_width"`
	ScreenHeight int    `yaml:"screen_height"`
	WindowTitle  string `yaml:"window_title"`
	TPS          int    `yaml:"tps"`
}

type WorldConfig struct {
	Width            int    `yaml:"width"`
	Height           int    `yaml:"height"`
	HeightLimit      int    `yaml:"height_limit"`
	Budget           int    `yaml:"budget"`
	UnitCost         int    `yaml:"unit_cost"`
	LiftFee          int    `yaml:"lift_fee"`
	LiftStep         int    `yaml:"lift_step"`
	InitialKind      string `yaml:"initial_kind"`
	InitialElevation int    `yaml:"initial_elevation"`
}

type ViewConfig struct {
	X int `yaml:"x"`
	Y int `yaml:"y"`
}

type TileConfig struct {
	FootprintW int    `yaml:"footprint_w"`
	FootprintH int    `yaml:"footprint_h"`
	Atlas      string `yaml:"atlas"`
	AtlasCols  int    `yaml:"atlas_cols"`
	AtlasRows  int    `yaml:"atlas_rows"`
	Catalog    string `yaml:"catalog"`
	ProbeStep  int    `yaml:"probe_step"`
	ProbeCount int    `yaml:"probe_count"`
}

type UIConfig struct {
	PanelWidth int  `yaml:"panel_width"`
	ShowIntro  bool `yaml:"show_intro"`
}

// Default returns the stock configuration.
func Default() Config {
	return Config{
		Display: DisplayConfig{
			ScreenWidth:  800,
			ScreenHeight: 600,
			WindowTitle:  "untitled game",
			TPS:          60,
		},
		World: WorldConfig{
			Width:       40,
			Height:      40,
			HeightLimit: 60,
			Budget:      20000,
			UnitCost:    5,
			LiftFee:     20,
			LiftStep:    20,
			InitialKind: "grass",
		},
		View: ViewConfig{X: 9, Y: 5},
		Tiles: TileConfig{
			FootprintW: 64,
			FootprintH: 64,
			AtlasCols:  5,
			AtlasRows:  5,
			ProbeStep:  20,
			ProbeCount: 4,
		},
		UI: UIConfig{PanelWidth: 300, ShowIntro: true},
	}
}

// Load reads filename over the defaults and validates the result.
func Load(filename string) (Config, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config file: %w", err)
	}
	return Parse(data)
}

// Parse decodes a YAML document over the defaults and validates the result.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// MustLoad loads the configuration and panics on error
func MustLoad(filename string) Config {
	cfg, err := Load(filename)
	if err != nil {
		panic("Failed to load config: " + err.Error())
	}
	return cfg
}

// Validate reports the first inconsistent setting.
func (c Config) Validate() error {
	switch {
	case c.Display.ScreenWidth <= 0 || c.Display.ScreenHeight <= 0:
		return fmt.Errorf("%w: screen size %dx%d", ErrInvalid, c.Display.ScreenWidth, c.Display.ScreenHeight)
	case c.World.Width <= 0 || c.World.Height <= 0:
		return fmt.Errorf("%w: world size %dx%d", ErrInvalid, c.World.Width, c.World.Height)
	case c.World.HeightLimit <= 0:
		return fmt.Errorf("%w: height_limit %d", ErrInvalid, c.World.HeightLimit)
	case c.Tiles.FootprintW <= 0 || c.Tiles.FootprintW%2 != 0:
		return fmt.Errorf("%w: footprint_w %d must be a positive even number", ErrInvalid, c.Tiles.FootprintW)
	case c.Tiles.FootprintH <= 0 || c.Tiles.FootprintH%4 != 0:
		return fmt.Errorf("%w: footprint_h %d must be a positive multiple of 4", ErrInvalid, c.Tiles.FootprintH)
	case c.Tiles.AtlasCols <= 0 || c.Tiles.AtlasRows <= 0:
		return fmt.Errorf("%w: atlas grid %dx%d", ErrInvalid, c.Tiles.AtlasCols, c.Tiles.AtlasRows)
	case c.Tiles.ProbeStep <= 0 || c.Tiles.ProbeCount <= 0:
		return fmt.Errorf("%w: probes %d x %d", ErrInvalid, c.Tiles.ProbeStep, c.Tiles.ProbeCount)
	case c.World.HeightLimit%c.Tiles.ProbeStep != 0:
		return fmt.Errorf("%w: probe_step %d does not divide height_limit %d", ErrInvalid, c.Tiles.ProbeStep, c.World.HeightLimit)
	}
	kind, ok := world.ParseKind(c.World.InitialKind)
	if !ok || kind == world.Highlight {
		return fmt.Errorf("%w: initial_kind %q", ErrInvalid, c.World.InitialKind)
	}
	return nil
}

// WorldParams converts the world section into a world.Config.
func (c Config) WorldParams() world.Config {
	return world.Config{
		Width:       c.World.Width,
		Height:      c.World.Height,
		HeightLimit: c.World.HeightLimit,
		Budget:      c.World.Budget,
		UnitCost:    c.World.UnitCost,
		LiftFee:     c.World.LiftFee,
	}
}

// InitialTile is the tile every cell starts as.
func (c Config) InitialTile() world.Tile {
	kind, _ := world.ParseKind(c.World.InitialKind)
	return world.Tile{
		Kind:      kind,
		Elevation: core.FloorMod(c.World.InitialElevation, c.World.HeightLimit),
	}
}

// Footprint returns the tile sprite size.
func (c Config) Footprint() core.Size {
	return core.Size{W: c.Tiles.FootprintW, H: c.Tiles.FootprintH}
}

// GridSize returns the world dimensions.
func (c Config) GridSize() core.Size {
	return core.Size{W: c.World.Width, H: c.World.Height}
}

// InitialView returns the starting scroll offset.
func (c Config) InitialView() core.Pos {
	return core.Pos{X: c.View.X, Y: c.View.Y}
}
