package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/golangdaddy/circuit/pkg/ai"
	"github.com/golangdaddy/circuit/pkg/track"
)

func setRaw(t *testing.T, difficulty, trackName string, laps int) {
	t.Helper()
	oldD, oldT, oldL := Difficulty, Track, Laps
	t.Cleanup(func() { Difficulty, Track, Laps = oldD, oldT, oldL })
	Difficulty, Track, Laps = difficulty, trackName, laps
}

func TestResolve(t *testing.T) {
	setRaw(t, "3", "medium", 3)

	g, err := Resolve()
	require.NoError(t, err)
	assert.Equal(t, ai.LevelHard, g.Level)
	assert.Equal(t, track.Medium, g.Track)
	assert.Equal(t, 3, g.Rules.MaxLaps)
}

func TestResolveLapsOverride(t *testing.T) {
	setRaw(t, "easy", "w", 5)

	g, err := Resolve()
	require.NoError(t, err)
	assert.Equal(t, 5, g.Rules.MaxLaps)
	assert.Equal(t, 15.0, g.Rules.CheckpointRadius)
}

func TestResolveInvalid(t *testing.T) {
	setRaw(t, "9", "easy", 3)
	_, err := Resolve()
	assert.ErrorIs(t, err, ai.ErrInvalidLevel)

	setRaw(t, "1", "monaco", 3)
	_, err = Resolve()
	assert.ErrorIs(t, err, track.ErrInvalidTrackSelection)
}

func TestResolveRejectsNonPositiveLaps(t *testing.T) {
	for _, laps := range []int{0, -2} {
		setRaw(t, "easy", "easy", laps)
		_, err := Resolve()
		assert.ErrorIs(t, err, ErrInvalidLaps, "laps %d", laps)
	}
}
