package ai

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/golangdaddy/circuit/pkg/geom"
	"github.com/golangdaddy/circuit/pkg/track"
	"github.com/golangdaddy/circuit/pkg/vehicle"
)

func TestSpeedMonotonic(t *testing.T) {
	assert.Equal(t, 15.0, Speed(LevelEasy))
	assert.Equal(t, 20.0, Speed(LevelMedium))
	assert.Equal(t, 25.0, Speed(LevelHard))
	assert.Less(t, Speed(LevelEasy), Speed(LevelMedium))
	assert.Less(t, Speed(LevelMedium), Speed(LevelHard))
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in      string
		want    Level
		wantErr bool
	}{
		{in: "1", want: LevelEasy},
		{in: "2", want: LevelMedium},
		{in: " 3 ", want: LevelHard},
		{in: "Hard", want: LevelHard},
		{in: "medium", want: LevelMedium},
		{in: "0", wantErr: true},
		{in: "4", wantErr: true},
		{in: "fast", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseLevel(tt.in)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidLevel)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSteer(t *testing.T) {
	b := &vehicle.Body{Position: geom.V(0, 0), Heading: 0}
	assert.InDelta(t, 90, Steer(b, geom.V(10, 0)), 1e-9)

	b.Heading = 170
	assert.InDelta(t, -80, Steer(b, geom.V(10, 0)), 1e-9)

	b.Heading = -170
	assert.InDelta(t, -100, Steer(b, geom.V(10, 0)), 1e-9)

	b.Heading = 90
	assert.InDelta(t, 180, Steer(b, geom.V(-10, 0)), 1e-9)
}

func TestUpdateTurnsProportionally(t *testing.T) {
	cps := []geom.Vec2{geom.V(100, 0)}
	c := NewController(LevelEasy)
	a := NewAgent(geom.V(0, 0))

	reached := c.Update(a, cps, 0.1)
	assert.False(t, reached)
	// 90° error times the 0.05 gain
	assert.InDelta(t, 4.5, a.Body.Heading, 1e-9)
	assert.InDelta(t, 1.5, a.Body.Position.Len(), 1e-9)
}

func TestUpdateOnTargetAdvancesAndWraps(t *testing.T) {
	cps, err := track.Checkpoints(track.Medium)
	require.NoError(t, err)
	c := NewController(LevelMedium)

	a := NewAgent(cps[0])
	assert.True(t, c.Update(a, cps, 1.0/60))
	assert.Equal(t, 1, a.Next)

	a.Body.Position = cps[8]
	a.Next = 8
	assert.True(t, c.Update(a, cps, 1.0/60))
	assert.Equal(t, 0, a.Next)
}

func TestUpdateWrapsOutOfRangeCursor(t *testing.T) {
	cps, err := track.Checkpoints(track.Easy)
	require.NoError(t, err)
	c := NewController(LevelHard)
	a := NewAgent(geom.V(0, -50))
	a.Next = 42

	c.Update(a, cps, 1.0/60)
	assert.Equal(t, 0, a.Next)
}

func TestAgentCompletesLoop(t *testing.T) {
	cps, err := track.Checkpoints(track.Easy)
	require.NoError(t, err)
	c := NewController(LevelHard)
	a := NewAgent(track.AIStarts[0])

	reached := 0
	for range 60 * 120 {
		if c.Update(a, cps, 1.0/60) {
			reached++
		}
	}
	assert.GreaterOrEqual(t, reached, track.CheckpointCount)
}

func TestResetAgent(t *testing.T) {
	a := NewAgent(geom.V(0, 0))
	a.Next = 5
	a.Body.Heading = 33
	a.Reset(geom.V(5, -50))
	assert.Equal(t, 0, a.Next)
	assert.Equal(t, geom.V(5, -50), a.Body.Position)
	assert.Zero(t, a.Body.Heading)
}
