package ui

import (
	"fmt"
	"image/color"
	"math"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/golangdaddy/circuit/pkg/ai"
	"github.com/golangdaddy/circuit/pkg/track"
)

var (
	cyan   = color.RGBA{0, 255, 255, 255}
	green  = color.RGBA{0, 255, 0, 255}
	yellow = color.RGBA{255, 255, 0, 255}
	red    = color.RGBA{255, 0, 0, 255}
	white  = color.RGBA{255, 255, 255, 255}
	gold   = color.RGBA{255, 200, 50, 255}
	dimmed = color.RGBA{150, 150, 150, 255}
)

// sinWave returns a sine wave value between -1 and 1
func sinWave(t float64) float64 {
	return math.Sin(t)
}

// drawMenu renders the difficulty and track selection
func drawMenu(screen *ebiten.Image, started time.Time, level ai.Level, sel track.Selection, best string) {
	width, height := float64(screen.Bounds().Dx()), float64(screen.Bounds().Dy())
	elapsed := time.Since(started).Seconds()

	drawPanel(screen, width/2-380, height/3-110, 760, 330, color.RGBA{15, 20, 35, 220})

	// title pulses between 1.0 and 1.1 of its size
	scale := 4.0 * (1.0 + 0.1*sinWave(elapsed*2.0))
	drawCenteredText(screen, "CIRCUIT", width/2, height/3-60, scale, gold)

	drawCenteredText(screen, "Select Difficulty: 1-Easy  2-Medium  3-Hard", width/2, height/3+10, 1.5, cyan)
	drawCenteredText(screen, "Select Track: Q-Track1  W-Track2  E-Track3", width/2, height/3+50, 1.5, cyan)

	status := fmt.Sprintf("Difficulty: %s   Track: %s", level, sel)
	drawCenteredText(screen, status, width/2, height/3+95, 1.25, white)
	if best != "" {
		drawCenteredText(screen, best, width/2, height/3+125, 1.0, dimmed)
	}

	// blink every 0.5 seconds
	if int(elapsed*2)%2 == 0 {
		drawCenteredText(screen, "Press SPACE to Start", width/2, height/3+170, 2.0, green)
	}
}

func drawCountdown(screen *ebiten.Image, label string) {
	width, height := float64(screen.Bounds().Dx()), float64(screen.Bounds().Dy())
	drawCenteredText(screen, label, width/2, height/2-40, 2.5, red)
}

func drawPause(screen *ebiten.Image) {
	width, height := float64(screen.Bounds().Dx()), float64(screen.Bounds().Dy())
	drawPanel(screen, width/2-280, height/2-90, 560, 150, color.RGBA{20, 20, 30, 200})
	drawCenteredText(screen, "PAUSED", width/2, height/2-50, 3, white)
	drawCenteredText(screen, "Press C to Continue or M to Menu", width/2, height/2+10, 1.5, white)
}

func drawBanner(screen *ebiten.Image, banner string) {
	width, height := float64(screen.Bounds().Dx()), float64(screen.Bounds().Dy())
	drawPanel(screen, width/2-330, height/2-80, 660, 140, color.RGBA{20, 20, 30, 200})
	drawCenteredText(screen, banner, width/2, height/2-40, 2, yellow)
}
