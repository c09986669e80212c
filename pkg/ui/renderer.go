package ui

import (
	"image/color"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/golangdaddy/circuit/pkg/assets"
	"github.com/golangdaddy/circuit/pkg/background"
	"github.com/golangdaddy/circuit/pkg/geom"
	"github.com/golangdaddy/circuit/pkg/race"
	"github.com/golangdaddy/circuit/pkg/session"
	"github.com/golangdaddy/circuit/pkg/track"
)

const (
	groundPixelsPerUnit = 2.0
	groundMargin        = 80.0
)

// Renderer draws a GameState. It never mutates the game.
type Renderer struct {
	sprites *assets.Registry
	started time.Time

	ground               *ebiten.Image
	groundFor            track.Selection
	groundMin, groundMax geom.Vec2
}

func NewRenderer(sprites *assets.Registry) *Renderer {
	return &Renderer{
		sprites: sprites,
		started: time.Now(),
	}
}

func (r *Renderer) buildGround(t *track.Track) {
	minV, maxV := t.Bounds()
	margin := geom.V(groundMargin, groundMargin)
	r.groundMin = minV.Sub(margin)
	r.groundMax = maxV.Add(margin)

	size := r.groundMax.Sub(r.groundMin).Scale(groundPixelsPerUnit)
	gen := background.NewGenerator(int(size.X), int(size.Z))
	if r.ground != nil {
		r.ground.Deallocate()
	}
	r.ground = ebiten.NewImageFromImage(gen.GenerateGround(int64(t.Selection)))
	r.groundFor = t.Selection
}

// Draw renders the world and the overlay for the current race state.
// best is an optional line shown on the menu.
func (r *Renderer) Draw(screen *ebiten.Image, gs *session.GameState, best string) {
	screen.Fill(color.RGBA{30, 30, 40, 255})
	r.drawWorld(screen, gs)

	switch gs.State() {
	case race.StateMenu:
		drawMenu(screen, r.started, gs.Level(), gs.Track().Selection, best)
	case race.StateCountdown:
		drawHUD(screen, gs.HUD())
		drawCountdown(screen, gs.CountdownLabel())
	case race.StateRacing:
		drawHUD(screen, gs.HUD())
		drawMinimap(screen, r.sprites, gs)
	case race.StatePaused:
		drawHUD(screen, gs.HUD())
		drawPause(screen)
	case race.StateFinished:
		drawBanner(screen, gs.Banner())
	}
}
