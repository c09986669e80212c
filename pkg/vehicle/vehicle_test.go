package vehicle

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/golangdaddy/circuit/pkg/geom"
)

func TestBodyForward(t *testing.T) {
	b := NewBody(geom.V(0, -50))
	b.Forward(10)
	assert.InDelta(t, 0, b.Position.X, 1e-9)
	assert.InDelta(t, -40, b.Position.Z, 1e-9)

	b.Turn(90)
	b.Forward(5)
	assert.InDelta(t, 5, b.Position.X, 1e-9)
	assert.InDelta(t, -40, b.Position.Z, 1e-9)
}

func TestBodyTurnStaysNormalized(t *testing.T) {
	b := NewBody(geom.V(0, 0))
	for range 10 {
		b.Turn(100)
	}
	assert.InDelta(t, 280.0-360.0, b.Heading, 1e-9)

	b.Reset(geom.V(1, 2))
	assert.Equal(t, geom.V(1, 2), b.Pos())
	assert.Zero(t, b.Yaw())
}

func TestBodyImplementsVehicle(t *testing.T) {
	var v Vehicle = &Body{Position: geom.V(3, 4), Heading: 45}
	assert.Equal(t, geom.V(3, 4), v.Pos())
	assert.Equal(t, 45.0, v.Yaw())
}
