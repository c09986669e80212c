package ui

import (
	"image/color"
	"strings"

	"github.com/hajimehoshi/bitmapfont/v4"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// bitmap font glyphs are 16px tall
const lineHeight = 16.0

var face = text.NewGoXFace(bitmapfont.Face)

// drawText draws str with its top-left corner at x, y.
// Multi-line strings are split on '\n'.
func drawText(screen *ebiten.Image, str string, x, y, scale float64, clr color.Color) {
	for i, line := range strings.Split(str, "\n") {
		op := &text.DrawOptions{}
		op.GeoM.Scale(scale, scale)
		op.GeoM.Translate(x, y+float64(i)*lineHeight*scale*1.25)
		op.ColorScale.ScaleWithColor(clr)
		text.Draw(screen, line, face, op)
	}
}

// drawCenteredText draws every line of str centered on centerX, with the
// first line's center at centerY
func drawCenteredText(screen *ebiten.Image, str string, centerX, centerY, scale float64, clr color.Color) {
	for i, line := range strings.Split(str, "\n") {
		w := text.Advance(line, face) * scale
		y := centerY - lineHeight*scale/2 + float64(i)*lineHeight*scale*1.25
		drawText(screen, line, centerX-w/2, y, scale, clr)
	}
}

// drawPanel draws a filled box with a 2px border
func drawPanel(screen *ebiten.Image, x, y, width, height float64, bg color.Color) {
	vector.DrawFilledRect(screen, float32(x), float32(y), float32(width), float32(height), bg, false)
	vector.StrokeRect(screen, float32(x)+1, float32(y)+1, float32(width)-2, float32(height)-2, 2, color.RGBA{80, 80, 100, 255}, false)
}
