package session

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/golangdaddy/circuit/pkg/ai"
	"github.com/golangdaddy/circuit/pkg/geom"
	"github.com/golangdaddy/circuit/pkg/race"
	"github.com/golangdaddy/circuit/pkg/track"
)

func newRacing(t *testing.T, opts ...Option) *GameState {
	t.Helper()
	gs, err := New(append([]Option{WithCountdown(1)}, opts...)...)
	require.NoError(t, err)
	gs.Update(Input{}.Press(ActionStart), 0.1)
	require.Equal(t, race.StateCountdown, gs.State())
	gs.Update(Input{}, 1)
	require.Equal(t, race.StateRacing, gs.State())
	return gs
}

func TestNewDefaults(t *testing.T) {
	gs, err := New()
	require.NoError(t, err)

	assert.Equal(t, race.StateMenu, gs.State())
	assert.Equal(t, CameraMenu, gs.Camera().Mode)
	assert.Equal(t, track.Easy, gs.Track().Selection)
	assert.Equal(t, ai.LevelEasy, gs.Level())
	assert.Equal(t, track.PlayerStart, gs.Player().Pos())
	assert.Len(t, gs.Opponents(), 2)
}

func TestNewFailsFast(t *testing.T) {
	_, err := New(WithTrack(track.Selection(9)))
	assert.ErrorIs(t, err, track.ErrInvalidTrackSelection)

	_, err = New(WithLevel(ai.Level(5)))
	assert.ErrorIs(t, err, ai.ErrInvalidLevel)
}

func TestMenuSelection(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	gs, err := New(WithLogger(zap.New(core)))
	require.NoError(t, err)

	gs.Update(Input{}.Press(ActionDifficulty3, ActionTrackMedium), 0.1)
	assert.Equal(t, ai.LevelHard, gs.Level())
	assert.Equal(t, track.Medium, gs.Track().Selection)
	assert.Equal(t, race.StateMenu, gs.State())

	gs.Update(Input{}.Press(ActionTrackHard, ActionDifficulty2), 0.1)
	assert.Equal(t, ai.LevelMedium, gs.Level())
	assert.Equal(t, track.Hard, gs.Track().Selection)

	assert.Error(t, gs.SetLevel(0))
	assert.Equal(t, ai.LevelMedium, gs.Level())

	assert.Equal(t, 2, logs.FilterMessage("difficulty changed").Len())
	assert.Zero(t, logs.FilterLevelExact(zapcore.ErrorLevel).Len())
}

func TestChaseEye(t *testing.T) {
	var c Camera
	c.Follow(geom.V(30, 40))
	assert.Equal(t, CameraRace, c.Mode)
	assert.Equal(t, geom.V(20, 20), c.Eye())
}

func TestIgnoredEventsKeepState(t *testing.T) {
	gs, err := New()
	require.NoError(t, err)

	gs.Update(Input{Throttle: true}.Press(ActionPause, ActionContinue, ActionRestart), 0.5)
	assert.Equal(t, race.StateMenu, gs.State())
	assert.Equal(t, track.PlayerStart, gs.Player().Pos())
}

func TestCountdown(t *testing.T) {
	gs, err := New()
	require.NoError(t, err)
	gs.Update(Input{}.Press(ActionStart), 0)
	require.Equal(t, race.StateCountdown, gs.State())
	assert.Equal(t, CameraRace, gs.Camera().Mode)

	gs.Update(Input{}, 0.5)
	assert.Equal(t, "Race starts in: 3", gs.CountdownLabel())
	gs.Update(Input{}, 1)
	assert.Equal(t, "Race starts in: 2", gs.CountdownLabel())
	gs.Update(Input{Throttle: true}, 1)
	assert.Equal(t, race.StateCountdown, gs.State())
	assert.Equal(t, track.PlayerStart, gs.Player().Pos())

	gs.Update(Input{}, 0.5)
	assert.Equal(t, race.StateRacing, gs.State())
	assert.Zero(t, gs.Progress().Elapsed)
}

func TestPlayerInput(t *testing.T) {
	gs := newRacing(t)

	gs.Update(Input{Throttle: true}, 0.5)
	assert.InDelta(t, -35, gs.Player().Pos().Z, 1e-9)
	assert.Equal(t, gs.Player().Pos(), gs.Camera().Target)

	gs.Update(Input{Left: true}, 0.5)
	assert.InDelta(t, -30, gs.Player().Yaw(), 1e-9)
	gs.Update(Input{Right: true}, 1)
	assert.InDelta(t, 30, gs.Player().Yaw(), 1e-9)
	assert.InDelta(t, 2.0, gs.Progress().Elapsed, 1e-9)
}

func TestPauseAndResume(t *testing.T) {
	gs := newRacing(t)

	gs.Update(Input{Throttle: true}.Press(ActionPause), 0.5)
	require.Equal(t, race.StatePaused, gs.State())
	assert.Equal(t, track.PlayerStart, gs.Player().Pos())

	gs.Update(Input{Throttle: true}, 0.5)
	assert.Zero(t, gs.Progress().Elapsed)

	gs.Update(Input{}.Press(ActionContinue), 0.5)
	assert.Equal(t, race.StateRacing, gs.State())

	gs.Update(Input{}.Press(ActionPause), 0.5)
	gs.Update(Input{}.Press(ActionMenu), 0.5)
	assert.Equal(t, race.StateMenu, gs.State())
	assert.Equal(t, CameraMenu, gs.Camera().Mode)
}

func TestObstacleContactLosesRace(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	var results []Result
	gs := newRacing(t,
		WithLogger(zap.New(core)),
		WithFinishHook(func(r Result) { results = append(results, r) }),
	)
	gs.progress.Laps = 2
	gs.player.Position = geom.V(20, 50)

	for i := 0; i < 20; i++ {
		require.Equal(t, race.StateRacing, gs.State(), "tick %d", i)
		gs.Update(Input{}, 0.5)
	}

	assert.Equal(t, race.StateFinished, gs.State())
	assert.Equal(t, CameraWin, gs.Camera().Mode)
	p := gs.Progress()
	assert.Equal(t, 0.0, p.Health)
	assert.Equal(t, race.OutcomeLost, p.Outcome)
	assert.Equal(t, 0, p.Score)
	assert.Equal(t, "You Lost! Score: 0\nPress R to restart or M to menu.", gs.Banner())

	require.Len(t, results, 1)
	assert.Equal(t, race.OutcomeLost, results[0].Outcome)
	assert.Equal(t, 1, logs.FilterMessage("race finished").Len())

	// finished races ignore further ticks
	gs.Update(Input{Throttle: true}, 0.5)
	assert.Equal(t, geom.V(20, 50), gs.Player().Pos())
	assert.Len(t, results, 1)
}

func TestWallContactDrainsFaster(t *testing.T) {
	gs := newRacing(t)
	gs.player.Position = geom.V(50, 55)

	gs.Update(Input{}, 0.5)
	// walls at (50,50) and (50,60)
	assert.Equal(t, 80.0, gs.Progress().Health)
}

func TestFinalLapWins(t *testing.T) {
	var results []Result
	gs := newRacing(t, WithFinishHook(func(r Result) { results = append(results, r) }))
	gs.progress.Checkpoint = 8
	gs.progress.Laps = 2
	gs.progress.Elapsed = 87.25
	gs.player.Position = geom.V(0, 0)

	gs.Update(Input{}, 0.25)

	assert.Equal(t, race.StateFinished, gs.State())
	p := gs.Progress()
	assert.Equal(t, 3, p.Laps)
	assert.Equal(t, race.OutcomeWon, p.Outcome)
	assert.Equal(t, 913, p.Score)
	assert.Equal(t, "You Win! Score: 913\nPress R to restart or M to menu.", gs.Banner())
	require.Len(t, results, 1)
	assert.Equal(t, Result{
		Track: track.Easy, Level: ai.LevelEasy, Outcome: race.OutcomeWon,
		Score: 913, Elapsed: 87.5, Laps: 3,
	}, results[0])
}

func TestRestartAfterFinish(t *testing.T) {
	gs := newRacing(t)
	gs.progress.ApplyDamage(1000)
	gs.Update(Input{}, 0.1)
	require.Equal(t, race.StateFinished, gs.State())

	gs.Update(Input{}.Press(ActionRestart), 0.1)
	assert.Equal(t, race.StateCountdown, gs.State())
	p := gs.Progress()
	assert.Equal(t, 100.0, p.Health)
	assert.Equal(t, race.OutcomeNone, p.Outcome)
	assert.Equal(t, track.PlayerStart, gs.Player().Pos())
	for i, o := range gs.Opponents() {
		assert.Equal(t, track.AIStarts[i], o.Body.Position)
		assert.Zero(t, o.Next)
	}

	gs.Update(Input{}, 1)
	gs.progress.ApplyDamage(1000)
	gs.Update(Input{}, 0.1)
	gs.Update(Input{}.Press(ActionMenu), 0.1)
	assert.Equal(t, race.StateMenu, gs.State())
}

func TestOpponentsMoveWhileRacing(t *testing.T) {
	gs := newRacing(t, WithLevel(ai.LevelHard))
	before := gs.Opponents()
	for range 30 {
		gs.Update(Input{}, 1.0/60)
	}
	after := gs.Opponents()
	for i := range after {
		moved := after[i].Body.Position.Dist(before[i].Body.Position)
		assert.InDelta(t, ai.Speed(ai.LevelHard)*0.5, moved, 0.5)
	}
}

func TestAutopilotReachesCheckpoint(t *testing.T) {
	gs := newRacing(t, WithAutopilot(true))
	for range 120 {
		gs.Update(Input{}, 1.0/60)
	}
	p := gs.Progress()
	assert.True(t, p.Checkpoint > 0 || p.Laps > 0)
}

func TestHUDAndMinimap(t *testing.T) {
	gs := newRacing(t)
	assert.Equal(t, "Lap: 1/3 | Time: 0 | Health: 100 | Score: 0", gs.HUD())

	icons := gs.MinimapIcons(geom.V(640, 360))
	require.Len(t, icons, 3)
	assert.Equal(t, MinimapIcon{X: 640, Y: 347.5, Player: true}, icons[0])
	assert.Equal(t, MinimapIcon{X: 641.25, Y: 347.5}, icons[1])
	assert.Equal(t, MinimapIcon{X: 638.75, Y: 347.5}, icons[2])
}

func TestShutdown(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	gs, err := New(WithLogger(zap.New(core)))
	require.NoError(t, err)

	gs.Shutdown()
	assert.Empty(t, gs.Opponents())
	assert.Equal(t, 1, logs.FilterMessage("session shutdown").Len())
}
