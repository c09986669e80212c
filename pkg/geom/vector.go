package geom

import (
	"fmt"
	"math"
)

// Vec2 is a position or direction on the ground plane.
// Y is constant for the whole track, so only X and Z are kept.
type Vec2 struct {
	X float64 `json:"x"`
	Z float64 `json:"z"`
}

// V is shorthand for building a Vec2
func V(x, z float64) Vec2 {
	return Vec2{X: x, Z: z}
}

func (a Vec2) Add(b Vec2) Vec2 {
	return Vec2{X: a.X + b.X, Z: a.Z + b.Z}
}

func (a Vec2) Sub(b Vec2) Vec2 {
	return Vec2{X: a.X - b.X, Z: a.Z - b.Z}
}

func (a Vec2) Scale(f float64) Vec2 {
	return Vec2{X: a.X * f, Z: a.Z * f}
}

// Len returns the euclidean length of the vector
func (a Vec2) Len() float64 {
	return math.Hypot(a.X, a.Z)
}

// Dist returns the distance between two points
func (a Vec2) Dist(b Vec2) float64 {
	return a.Sub(b).Len()
}

// Within reports whether b lies strictly closer than radius to a
func (a Vec2) Within(b Vec2, radius float64) bool {
	return a.Dist(b) < radius
}

func (a Vec2) String() string {
	return fmt.Sprintf("(%.1f, %.1f)", a.X, a.Z)
}
