// Package sprites draws the built-in placeholder sprites used when no
// media directory is configured.
package sprites

import (
	"image"
	"image/color"
)

var (
	white     = color.RGBA{255, 255, 255, 255}
	black     = color.RGBA{0, 0, 0, 255}
	glass     = color.RGBA{60, 70, 90, 255}
	tire      = color.RGBA{40, 40, 40, 255}
	headlight = color.RGBA{255, 255, 100, 255}
	taillight = color.RGBA{255, 0, 0, 255}
)

func fillRect(img *image.RGBA, x0, y0, x1, y1 int, c color.Color) {
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			img.Set(x, y, c)
		}
	}
}

func fillCircle(img *image.RGBA, cx, cy, r int, c color.Color) {
	for y := cy - r; y <= cy+r; y++ {
		for x := cx - r; x <= cx+r; x++ {
			dx, dy := x-cx, y-cy
			if dx*dx+dy*dy <= r*r {
				img.Set(x, y, c)
			}
		}
	}
}

func ring(img *image.RGBA, cx, cy, r, width int, c color.Color) {
	for y := cy - r; y <= cy+r; y++ {
		for x := cx - r; x <= cx+r; x++ {
			dx, dy := x-cx, y-cy
			d := dx*dx + dy*dy
			if d <= r*r && d >= (r-width)*(r-width) {
				img.Set(x, y, c)
			}
		}
	}
}

// Car is a top-down car facing up. The body is white so it can be tinted.
func Car() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, 20, 32))

	// wheels
	fillRect(img, 0, 4, 3, 10, tire)
	fillRect(img, 17, 4, 20, 10, tire)
	fillRect(img, 0, 22, 3, 28, tire)
	fillRect(img, 17, 22, 20, 28, tire)

	fillRect(img, 2, 2, 18, 30, white)
	fillRect(img, 4, 8, 16, 13, glass)
	fillRect(img, 4, 22, 16, 25, glass)

	// outline
	fillRect(img, 2, 2, 18, 3, black)
	fillRect(img, 2, 29, 18, 30, black)
	fillRect(img, 2, 2, 3, 30, black)
	fillRect(img, 17, 2, 18, 30, black)

	fillRect(img, 4, 0, 7, 2, headlight)
	fillRect(img, 13, 0, 16, 2, headlight)
	fillRect(img, 4, 30, 7, 32, taillight)
	fillRect(img, 13, 30, 16, 32, taillight)
	return img
}

// Checkpoint is a hollow ring marking the checkpoint radius
func Checkpoint() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, 64, 64))
	ring(img, 32, 32, 31, 4, color.RGBA{255, 210, 0, 255})
	return img
}

// Barrel is an obstacle
func Barrel() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, 16, 16))
	fillCircle(img, 8, 8, 7, color.RGBA{200, 90, 20, 255})
	ring(img, 8, 8, 7, 1, black)
	fillCircle(img, 8, 8, 2, color.RGBA{120, 50, 10, 255})
	return img
}

// Wall is a concrete block
func Wall() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, 16, 16))
	fillRect(img, 0, 0, 16, 16, color.RGBA{150, 150, 150, 255})
	fillRect(img, 0, 7, 16, 9, color.RGBA{110, 110, 110, 255})
	fillRect(img, 7, 0, 9, 7, color.RGBA{110, 110, 110, 255})
	return img
}

// Garage is the pit building
func Garage() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, 48, 32))
	fillRect(img, 0, 0, 48, 32, color.RGBA{90, 90, 110, 255})
	for x := 4; x < 44; x += 14 {
		fillRect(img, x, 12, x+10, 32, color.RGBA{40, 40, 50, 255})
	}
	return img
}

// Tribune is the spectator stand
func Tribune() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, 24, 64))
	fillRect(img, 0, 0, 24, 64, color.RGBA{70, 60, 50, 255})
	for y := 2; y < 64; y += 6 {
		fillRect(img, 2, y, 22, y+3, color.RGBA{200, 30, 30, 255})
	}
	return img
}

// Lamp is a light post seen from above
func Lamp() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, 12, 12))
	fillCircle(img, 6, 6, 5, color.RGBA{255, 240, 160, 255})
	fillCircle(img, 6, 6, 2, color.RGBA{80, 80, 80, 255})
	return img
}

// Minimap is the translucent minimap panel
func Minimap() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, 64, 64))
	fillRect(img, 0, 0, 64, 64, color.RGBA{20, 20, 30, 160})
	fillRect(img, 0, 0, 64, 1, color.RGBA{100, 100, 120, 255})
	fillRect(img, 0, 63, 64, 64, color.RGBA{100, 100, 120, 255})
	fillRect(img, 0, 0, 1, 64, color.RGBA{100, 100, 120, 255})
	fillRect(img, 63, 0, 64, 64, color.RGBA{100, 100, 120, 255})
	return img
}
