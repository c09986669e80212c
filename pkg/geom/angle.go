package geom

import "math"

const (
	degToRad = math.Pi / 180
	radToDeg = 180 / math.Pi
)

// HeadingTo returns the yaw in degrees that faces from -> to.
// 0° faces +z, positive angles rotate toward +x.
func HeadingTo(from, to Vec2) float64 {
	d := to.Sub(from)
	return math.Atan2(d.X, d.Z) * radToDeg
}

// Forward returns the unit vector for the given yaw in degrees
func Forward(headingDeg float64) Vec2 {
	r := headingDeg * degToRad
	return Vec2{X: math.Sin(r), Z: math.Cos(r)}
}

// NormalizeAngle maps any angle into (-180, 180].
func NormalizeAngle(deg float64) float64 {
	a := math.Mod(deg, 360)
	if a > 180 {
		a -= 360
	} else if a <= -180 {
		a += 360
	}
	return a
}
