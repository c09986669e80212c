package vehicle

import "github.com/golangdaddy/circuit/pkg/geom"

// Vehicle is anything on the track that has a position and a yaw
type Vehicle interface {
	Pos() geom.Vec2
	Yaw() float64
}

// Body is the movable part shared by the player and the AI cars
type Body struct {
	Position geom.Vec2
	Heading  float64 // yaw in degrees, 0 faces +z
}

// NewBody places a body at p facing +z
func NewBody(p geom.Vec2) Body {
	return Body{Position: p}
}

func (b *Body) Pos() geom.Vec2 {
	return b.Position
}

func (b *Body) Yaw() float64 {
	return b.Heading
}

// Forward moves the body dist units along its heading
func (b *Body) Forward(dist float64) {
	b.Position = b.Position.Add(geom.Forward(b.Heading).Scale(dist))
}

// Turn rotates the body by deg degrees, positive turns right (toward +x)
func (b *Body) Turn(deg float64) {
	b.Heading = geom.NormalizeAngle(b.Heading + deg)
}

// Reset puts the body back on p facing +z
func (b *Body) Reset(p geom.Vec2) {
	b.Position = p
	b.Heading = 0
}
