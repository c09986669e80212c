package session

import "github.com/golangdaddy/circuit/pkg/geom"

// CameraMode selects which of the three cameras is active
type CameraMode int

const (
	CameraMenu CameraMode = iota
	CameraRace
	CameraWin
)

// chase offset behind and left of the player
var chaseOffset = geom.V(-10, -20)

// Camera tells the renderer what to look at. Projection is the
// renderer's business.
type Camera struct {
	Mode   CameraMode
	Target geom.Vec2
}

// Follow points the race camera at the player
func (c *Camera) Follow(player geom.Vec2) {
	c.Mode = CameraRace
	c.Target = player
}

// Eye is where a chase camera would sit relative to its target
func (c Camera) Eye() geom.Vec2 {
	return c.Target.Add(chaseOffset)
}

// Overview activates a fixed camera looking at center
func (c *Camera) Overview(mode CameraMode, center geom.Vec2) {
	c.Mode = mode
	c.Target = center
}
