package background

import (
	"image"
	"image/color"
	"math"
	"math/rand"
)

// Generator paints the ground under the track
type Generator struct {
	Width  int
	Height int
}

// NewGenerator creates a new background generator
func NewGenerator(width, height int) *Generator {
	return &Generator{
		Width:  width,
		Height: height,
	}
}

// GenerateGround creates a grass field with trees and bushes scattered
// around. The same seed always gives the same picture.
func (g *Generator) GenerateGround(seed int64) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, g.Width, g.Height))
	rng := rand.New(rand.NewSource(seed))

	base := color.RGBA{34, 110, 34, 255}
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			img.SetRGBA(x, y, base)
		}
	}

	// grass noise
	for i := 0; i < g.Width*g.Height/10; i++ {
		x := rng.Intn(g.Width)
		y := rng.Intn(g.Height)
		shade := uint8(90 + rng.Intn(50))
		img.SetRGBA(x, y, color.RGBA{30, shade, 30, 255})
	}

	// mowing stripes
	for y := 0; y < g.Height; y++ {
		if (y/16)%2 == 0 {
			continue
		}
		for x := 0; x < g.Width; x++ {
			c := img.RGBAAt(x, y)
			c.G = uint8(math.Min(255, float64(c.G)+12))
			img.SetRGBA(x, y, c)
		}
	}

	// vegetation along the edges, density varies with height
	for y := 0; y < g.Height; y += 12 {
		density := 0.5 + 0.3*math.Sin(float64(y)*0.01)
		for _, x := range []int{rng.Intn(g.Width/8 + 1), g.Width - 1 - rng.Intn(g.Width/8+1)} {
			if rng.Float64() > density {
				continue
			}
			if rng.Float64() < 0.3 {
				g.drawTree(img, x, y, rng)
			} else {
				g.drawBush(img, x, y, rng)
			}
		}
	}

	return img
}

func (g *Generator) set(img *image.RGBA, x, y int, c color.RGBA) {
	if x >= 0 && x < g.Width && y >= 0 && y < g.Height {
		img.SetRGBA(x, y, c)
	}
}

// drawTree draws a round crown with a darker core, seen from above
func (g *Generator) drawTree(img *image.RGBA, x, y int, rng *rand.Rand) {
	radius := 6 + rng.Intn(6)
	crown := color.RGBA{
		uint8(20 + rng.Intn(30)),
		uint8(70 + rng.Intn(50)),
		uint8(20 + rng.Intn(30)),
		255,
	}
	core := color.RGBA{crown.R / 2, crown.G / 2, crown.B / 2, 255}
	for dy := -radius; dy <= radius; dy++ {
		for dx := -radius; dx <= radius; dx++ {
			d := dx*dx + dy*dy
			switch {
			case d <= (radius/3)*(radius/3):
				g.set(img, x+dx, y+dy, core)
			case d <= radius*radius:
				g.set(img, x+dx, y+dy, crown)
			}
		}
	}
}

// drawBush draws a small round bush
func (g *Generator) drawBush(img *image.RGBA, x, y int, rng *rand.Rand) {
	radius := 2 + rng.Intn(4)
	c := color.RGBA{
		uint8(40 + rng.Intn(40)),
		uint8(100 + rng.Intn(50)),
		uint8(40 + rng.Intn(40)),
		255,
	}
	for dy := -radius; dy <= radius; dy++ {
		for dx := -radius; dx <= radius; dx++ {
			if dx*dx+dy*dy <= radius*radius {
				g.set(img, x+dx, y+dy, c)
			}
		}
	}
}
