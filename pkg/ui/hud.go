package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/golangdaddy/circuit/pkg/assets"
	"github.com/golangdaddy/circuit/pkg/geom"
	"github.com/golangdaddy/circuit/pkg/session"
)

const minimapSize = 160.0

var (
	playerColor = color.RGBA{255, 60, 60, 255}
	aiColors    = []color.RGBA{{60, 120, 255, 255}, {60, 220, 90, 255}}
)

func drawHUD(screen *ebiten.Image, hud string) {
	drawPanel(screen, 12, 12, text.Advance(hud, face)*1.25+24, 36, color.RGBA{20, 20, 30, 200})
	drawText(screen, hud, 24, 20, 1.25, white)
}

// drawMinimap draws the track outline and one dot per car in the
// bottom-right corner
func drawMinimap(screen *ebiten.Image, sprites *assets.Registry, gs *session.GameState) {
	width, height := float64(screen.Bounds().Dx()), float64(screen.Bounds().Dy())
	x0 := width - minimapSize - 16
	y0 := height - minimapSize - 16

	panel := sprites.Image(assets.Minimap)
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(minimapSize/float64(panel.Bounds().Dx()), minimapSize/float64(panel.Bounds().Dy()))
	op.GeoM.Translate(x0, y0)
	screen.DrawImage(panel, op)

	// world z grows up the screen, the minimap flips it
	minV, maxV := gs.Track().Bounds()
	mid := minV.Add(maxV).Scale(0.5)
	center := geom.V(x0+minimapSize/2-mid.X/session.MinimapScale, -(y0 + minimapSize/2 + mid.Z/session.MinimapScale))
	toScreen := func(x, y float64) (float32, float32) {
		return float32(x), float32(-y)
	}

	cps := gs.Track().Checkpoints
	for i := 1; i < len(cps); i++ {
		ax, ay := toScreen(cps[i-1].X/session.MinimapScale+center.X, cps[i-1].Z/session.MinimapScale+center.Z)
		bx, by := toScreen(cps[i].X/session.MinimapScale+center.X, cps[i].Z/session.MinimapScale+center.Z)
		vector.StrokeLine(screen, ax, ay, bx, by, 2, color.RGBA{200, 200, 200, 200}, true)
	}

	n := 0
	for _, icon := range gs.MinimapIcons(center) {
		x, y := toScreen(icon.X, icon.Y)
		clr := playerColor
		if !icon.Player {
			clr = aiColors[n%len(aiColors)]
			n++
		}
		vector.DrawFilledCircle(screen, x, y, 4, clr, true)
	}
}
