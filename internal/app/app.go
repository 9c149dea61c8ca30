//go:build ebiten

package app

import (
	"context"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/sirupsen/logrus"

	"gridcaster/internal/core"
	"gridcaster/internal/game"
	"gridcaster/internal/render"
	"gridcaster/internal/ui"
	"gridcaster/internal/world"
)

const hudWidth = 240

// Game adapts a raycaster session to the ebiten.Game interface.
type Game struct {
	session *game.Session
	painter *render.FramePainter
	hud     *ui.HUD
	overlay *ui.Overlay
	pacer   *core.FramePacer
	log     logrus.FieldLogger

	scale   int
	showHUD bool
	paused  bool
}

// New constructs a Game for the provided session.
func New(s *game.Session, scale, tps int, log logrus.FieldLogger) *Game {
	if scale <= 0 {
		scale = 1
	}
	frame := s.Frame()
	g := &Game{
		session: s,
		painter: render.NewFramePainter(frame.W, frame.H),
		hud:     ui.NewHUD(s, "Raycaster", hudWidth),
		pacer:   core.NewFramePacer(tps),
		log:     log.WithField("component", "app"),
		scale:   scale,
		showHUD: true,
	}
	cell := max(1, min(frame.W, frame.H)*scale/(4*max(s.Level().Grid.W, s.Level().Grid.H)))
	g.overlay = ui.NewOverlay(s, cell)
	return g
}

// ReadInput polls the movement keys: arrows turn and walk, WASD walks and
// strafes.
func ReadInput() world.Input {
	return world.Input{
		RotateLeft:  ebiten.IsKeyPressed(ebiten.KeyArrowLeft),
		RotateRight: ebiten.IsKeyPressed(ebiten.KeyArrowRight),
		Forward:     ebiten.IsKeyPressed(ebiten.KeyArrowUp) || ebiten.IsKeyPressed(ebiten.KeyW),
		Backward:    ebiten.IsKeyPressed(ebiten.KeyArrowDown) || ebiten.IsKeyPressed(ebiten.KeyS),
		StrafeLeft:  ebiten.IsKeyPressed(ebiten.KeyA),
		StrafeRight: ebiten.IsKeyPressed(ebiten.KeyD),
	}
}

// Update handles per-frame input and moves the player.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.session.Reset()
		g.log.Debug("player reset to spawn")
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyH) {
		g.showHUD = !g.showHUD
	}

	g.overlay.Update()
	if g.showHUD {
		g.hud.Update(g.viewWidth())
	}

	dt := g.pacer.Delta()
	if g.paused {
		return nil
	}
	if err := g.session.Step(ReadInput(), dt); err != nil {
		g.log.WithError(err).Warn("player update rejected")
	}
	return nil
}

// Draw renders the player's view, the minimap and the HUD.
func (g *Game) Draw(screen *ebiten.Image) {
	frame, err := g.session.Render(context.Background())
	if err != nil {
		g.log.WithError(err).Error("render failed")
		return
	}
	g.painter.Blit(screen, frame, g.scale)
	g.overlay.Draw(screen)
	if g.showHUD {
		g.hud.Draw(screen, g.viewWidth(), frame.H*g.scale)
	}
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	frame := g.session.Frame()
	return g.viewWidth() + g.hud.Width(), frame.H * g.scale
}

func (g *Game) viewWidth() int { return g.session.Frame().W * g.scale }
