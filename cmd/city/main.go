//go:build ebiten

package main

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"iso-city/internal/app"
	"iso-city/internal/render"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	flags := app.NewFlags()
	flags.Bind(flag.CommandLine)
	flag.Parse()

	log, err := flags.Logger()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	cfg, err := flags.Resolve(flag.CommandLine)
	if err != nil {
		log.Error("bad configuration", "err", err)
		os.Exit(1)
	}

	session := app.NewSession(cfg, log)

	var atlas *render.Atlas
	if cfg.Tiles.Atlas != "" {
		atlas, err = render.LoadAtlas(cfg.Tiles.Atlas, cfg.Footprint(), cfg.Tiles.AtlasCols, cfg.Tiles.AtlasRows)
		if err != nil {
			log.Info("falling back to generated sprites", "err", err)
			atlas = nil
		}
	}
	sprites := render.NewSprites(cfg.Footprint(), session.Catalog, atlas)
	game := app.New(session, sprites, cfg)

	ebiten.SetWindowTitle(cfg.Display.WindowTitle)
	ebiten.SetTPS(cfg.Display.TPS)
	ebiten.SetWindowSize(cfg.Display.ScreenWidth, cfg.Display.ScreenHeight)

	log.Info("starting", "grid", cfg.GridSize(), "budget", cfg.World.Budget)
	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Error("game loop failed", "err", err)
		os.Exit(1)
	}
}
