//go:build ebiten

package app

import (
	"image"
	"image/color"

	"iso-city/internal/build"
	"iso-city/internal/config"
	"iso-city/internal/core"
	"iso-city/internal/render"
	"iso-city/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

const introMessage = "Welcome to the city builder. You have some money to spend:\n" +
	"lay down grass, water, roads and houses however you like.\n" +
	"Left click paints, right click raises, middle click draws lines."

var background = color.RGBA{R: 0x53, G: 0x36, B: 0x21, A: 0xff}

// Game adapts a Session to the ebiten.Game interface.
type Game struct {
	session *Session
	painter *render.MapPainter
	hud     *ui.HUD
	intro   *ui.Announcement

	screenW int
	screenH int
}

// New constructs a Game drawing session with sprites.
func New(session *Session, sprites *render.Sprites, cfg config.Config) *Game {
	return &Game{
		session: session,
		painter: render.NewMapPainter(sprites),
		hud:     ui.NewHUD(build.NewPanel(session.Controller, session.Catalog), cfg.UI.PanelWidth),
		intro:   ui.NewAnnouncement(introMessage, cfg.UI.ShowIntro),
		screenW: cfg.Display.ScreenWidth,
		screenH: cfg.Display.ScreenHeight,
	}
}

// Update handles per-frame input and applies it to the session.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}

	captured := g.intro.Update(g.screenW, g.screenH)
	if !captured {
		captured = g.hud.Update(g.screenW)
	}

	mx, my := ebiten.CursorPosition()
	in := Input{
		Cursor: image.Pt(mx, my),
		Scroll: ScrollOffset(
			keyRepeats(ebiten.KeyW),
			keyRepeats(ebiten.KeyA),
			keyRepeats(ebiten.KeyS),
			keyRepeats(ebiten.KeyD),
		),
		Captured: captured || g.intro.Contains(mx, my) || g.hud.Contains(mx, my),
	}
	if keyRepeats(ebiten.KeyEqual) {
		in.RadiusDelta++
	}
	if keyRepeats(ebiten.KeyMinus) {
		in.RadiusDelta--
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		in.Pressed |= build.ButtonPrimary
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonRight) {
		in.Pressed |= build.ButtonSecondary
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonMiddle) {
		in.Pressed |= build.ButtonTertiary
	}
	g.session.Step(in)
	return nil
}

func keyRepeats(k ebiten.Key) bool {
	return repeats(inpututil.KeyPressDuration(k))
}

// Draw renders the grid, the tool overlays and the UI.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(background)
	s := g.session
	g.painter.DrawWorld(screen, s.World, s.Projector)

	ctrl := s.Controller
	ctrl.ForEachHovered(s.Hovered(), func(p core.Pos) {
		g.painter.DrawHighlight(screen, s.Projector, p, s.World.Elevation(p))
	})
	ctrl.ForEachPreview(func(p core.Pos) {
		g.painter.DrawHighlight(screen, s.Projector, p, 0)
	})

	g.hud.Draw(screen)
	g.intro.Draw(screen)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.screenW, g.screenH
}
