package session

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/golangdaddy/circuit/pkg/ai"
	"github.com/golangdaddy/circuit/pkg/geom"
	"github.com/golangdaddy/circuit/pkg/race"
	"github.com/golangdaddy/circuit/pkg/track"
	"github.com/golangdaddy/circuit/pkg/vehicle"
)

const (
	PlayerSpeed        = 30.0 // units per second
	PlayerTurnRate     = 60.0 // degrees per second
	CollisionRadius    = 10.0
	ObstacleDamageRate = 10.0 // health per second
	WallDamageRate     = 20.0 // health per second
	CountdownSeconds   = 3.0

	autopilotDeadband = 2.0  // degrees
	autopilotTurnOnly = 60.0 // stop and turn above this heading error
)

// Result summarizes a finished race
type Result struct {
	Track   track.Selection
	Level   ai.Level
	Outcome race.Outcome
	Score   int
	Elapsed float64
	Laps    int
}

// GameState owns everything the game loop mutates.
// Lifecycle: New -> Update per frame -> Shutdown.
type GameState struct {
	logger    *zap.Logger
	rules     race.Rules
	level     ai.Level
	selection track.Selection
	countdown float64
	autopilot bool
	onFinish  func(Result)

	track     *track.Track
	state     race.State
	player    vehicle.Body
	progress  *race.Progress
	steering  *ai.Controller
	agents    []*ai.Agent
	camera    Camera
	remaining float64 // countdown seconds left
}

type Option func(gs *GameState)

func WithLogger(l *zap.Logger) Option {
	return func(gs *GameState) {
		gs.logger = l
	}
}

func WithRules(r race.Rules) Option {
	return func(gs *GameState) {
		gs.rules = r
	}
}

func WithLevel(l ai.Level) Option {
	return func(gs *GameState) {
		gs.level = l
	}
}

func WithTrack(sel track.Selection) Option {
	return func(gs *GameState) {
		gs.selection = sel
	}
}

// WithCountdown sets the pre-race countdown length in seconds
func WithCountdown(seconds float64) Option {
	return func(gs *GameState) {
		gs.countdown = seconds
	}
}

// WithAutopilot lets the steering controller drive the player car
func WithAutopilot(enabled bool) Option {
	return func(gs *GameState) {
		gs.autopilot = enabled
	}
}

// WithFinishHook registers a callback invoked once per finished race
func WithFinishHook(fn func(Result)) Option {
	return func(gs *GameState) {
		gs.onFinish = fn
	}
}

// New builds the game state and loads the selected track.
// Invalid track or difficulty selections fail here, not mid-race.
func New(opts ...Option) (*GameState, error) {
	gs := &GameState{
		logger:    zap.NewNop(),
		rules:     race.DefaultRules(),
		level:     ai.LevelEasy,
		selection: track.Easy,
		countdown: CountdownSeconds,
		state:     race.StateMenu,
	}
	for _, opt := range opts {
		opt(gs)
	}
	if !gs.level.Valid() {
		return nil, fmt.Errorf("%w: %d", ai.ErrInvalidLevel, gs.level)
	}
	gs.progress = race.NewProgress(gs.rules)
	gs.steering = ai.NewController(gs.level)
	gs.steering.Radius = gs.rules.CheckpointRadius
	if err := gs.SelectTrack(gs.selection); err != nil {
		return nil, err
	}
	gs.camera.Overview(CameraMenu, gs.trackCenter())
	return gs, nil
}

// SelectTrack replaces the current track and puts all cars on the grid
func (gs *GameState) SelectTrack(sel track.Selection) error {
	t, err := track.Load(sel)
	if err != nil {
		return err
	}
	gs.track = t
	gs.selection = sel
	gs.player = vehicle.NewBody(track.PlayerStart)
	gs.agents = make([]*ai.Agent, 0, len(track.AIStarts))
	for _, p := range track.AIStarts {
		gs.agents = append(gs.agents, ai.NewAgent(p))
	}
	gs.logger.Info("track loaded",
		zap.Stringer("track", sel),
		zap.Int("checkpoints", len(t.Checkpoints)),
		zap.Int("scenery", len(t.Scenery)))
	return nil
}

// SetLevel changes the opponent difficulty
func (gs *GameState) SetLevel(l ai.Level) error {
	if !l.Valid() {
		return fmt.Errorf("%w: %d", ai.ErrInvalidLevel, l)
	}
	gs.level = l
	gs.steering.Level = l
	gs.logger.Debug("difficulty changed", zap.Stringer("level", l))
	return nil
}

// StartRace resets progress and cars and begins the countdown
func (gs *GameState) StartRace() {
	gs.progress.Reset()
	gs.player.Reset(track.PlayerStart)
	for i, a := range gs.agents {
		a.Reset(track.AIStarts[i])
	}
	gs.camera.Follow(gs.player.Position)
	gs.remaining = gs.countdown
	gs.logger.Info("race starting",
		zap.Stringer("track", gs.selection),
		zap.Stringer("level", gs.level),
		zap.Int("laps", gs.rules.MaxLaps))
}

// Update advances the game by one frame
func (gs *GameState) Update(in Input, dt float64) {
	switch gs.state {
	case race.StateMenu:
		gs.updateMenu(in)
	case race.StateCountdown:
		gs.updateCountdown(dt)
	case race.StateRacing:
		gs.updateRacing(in, dt)
	case race.StatePaused:
		gs.updatePaused(in)
	case race.StateFinished:
		gs.updateFinished(in)
	}
}

// Shutdown ends the session
func (gs *GameState) Shutdown() {
	gs.logger.Info("session shutdown",
		zap.Stringer("state", gs.state),
		zap.Int("laps", gs.progress.Laps),
		zap.Float64("elapsed", gs.progress.Elapsed))
	gs.agents = nil
}

func (gs *GameState) fire(ev race.Event) bool {
	next, err := race.Next(gs.state, ev)
	if err != nil {
		gs.logger.Warn("ignored event", zap.Error(err))
		return false
	}
	gs.logger.Debug("state change",
		zap.Stringer("from", gs.state),
		zap.Stringer("to", next))
	gs.state = next
	return true
}

func (gs *GameState) updateMenu(in Input) {
	levels := map[Action]ai.Level{
		ActionDifficulty1: ai.LevelEasy,
		ActionDifficulty2: ai.LevelMedium,
		ActionDifficulty3: ai.LevelHard,
	}
	tracks := map[Action]track.Selection{
		ActionTrackEasy:   track.Easy,
		ActionTrackMedium: track.Medium,
		ActionTrackHard:   track.Hard,
	}
	for _, a := range in.Actions {
		if l, ok := levels[a]; ok {
			if err := gs.SetLevel(l); err != nil {
				gs.logger.Error("could not set difficulty", zap.Error(err))
			}
		}
		if sel, ok := tracks[a]; ok {
			if err := gs.SelectTrack(sel); err != nil {
				gs.logger.Error("could not load track", zap.Error(err))
			}
		}
	}
	if in.Has(ActionStart) && gs.fire(race.EventStart) {
		gs.StartRace()
	}
}

func (gs *GameState) updateCountdown(dt float64) {
	gs.remaining -= dt
	if gs.remaining <= 0 {
		gs.remaining = 0
		gs.fire(race.EventCountdownDone)
	}
}

func (gs *GameState) updateRacing(in Input, dt float64) {
	if in.Has(ActionPause) {
		gs.fire(race.EventPause)
		return
	}
	if gs.autopilot {
		in = gs.autopilotInput()
	}

	if in.Throttle {
		gs.player.Forward(PlayerSpeed * dt)
	}
	if in.Left {
		gs.player.Turn(-PlayerTurnRate * dt)
	}
	if in.Right {
		gs.player.Turn(PlayerTurnRate * dt)
	}
	gs.camera.Follow(gs.player.Position)
	gs.progress.Tick(dt)

	laps := gs.progress.Laps
	if gs.progress.AdvanceIfReached(gs.player.Position, gs.track.Checkpoints) {
		gs.logger.Debug("checkpoint reached", zap.Int("next", gs.progress.Checkpoint))
		if gs.progress.Laps > laps {
			gs.logger.Info("lap completed",
				zap.Int("lap", gs.progress.Laps),
				zap.Float64("elapsed", gs.progress.Elapsed))
		}
	}

	gs.checkCollisions(dt)

	for _, a := range gs.agents {
		gs.steering.Update(a, gs.track.Checkpoints, dt)
	}

	if gs.progress.Finished() {
		gs.finish()
	}
}

func (gs *GameState) updatePaused(in Input) {
	switch {
	case in.Has(ActionContinue):
		gs.fire(race.EventResume)
	case in.Has(ActionMenu):
		if gs.fire(race.EventToMenu) {
			gs.camera.Overview(CameraMenu, gs.trackCenter())
		}
	}
}

func (gs *GameState) updateFinished(in Input) {
	switch {
	case in.Has(ActionRestart):
		if gs.fire(race.EventRestart) {
			gs.StartRace()
		}
	case in.Has(ActionMenu):
		if gs.fire(race.EventToMenu) {
			gs.camera.Overview(CameraMenu, gs.trackCenter())
		}
	}
}

func (gs *GameState) finish() {
	if !gs.fire(race.EventFinish) {
		return
	}
	gs.camera.Overview(CameraWin, gs.trackCenter())
	res := gs.Result()
	gs.logger.Info("race finished",
		zap.Stringer("outcome", res.Outcome),
		zap.Int("score", res.Score),
		zap.Float64("elapsed", res.Elapsed),
		zap.Float64("health", gs.progress.Health))
	if gs.onFinish != nil {
		gs.onFinish(res)
	}
}

// autopilotInput steers the player toward its next checkpoint
func (gs *GameState) autopilotInput() Input {
	target := gs.track.Checkpoints[gs.progress.Checkpoint]
	e := ai.Steer(&gs.player, target)
	return Input{
		Throttle: e > -autopilotTurnOnly && e < autopilotTurnOnly,
		Left:     e < -autopilotDeadband,
		Right:    e > autopilotDeadband,
	}
}

func (gs *GameState) trackCenter() geom.Vec2 {
	minV, maxV := gs.track.Bounds()
	return minV.Add(maxV).Scale(0.5)
}

func (gs *GameState) State() race.State {
	return gs.state
}

func (gs *GameState) Track() *track.Track {
	return gs.track
}

func (gs *GameState) Level() ai.Level {
	return gs.level
}

func (gs *GameState) Rules() race.Rules {
	return gs.rules
}

func (gs *GameState) Camera() Camera {
	return gs.camera
}

// Player returns the player car
func (gs *GameState) Player() vehicle.Vehicle {
	return &gs.player
}

// Progress returns a snapshot of the player's progress
func (gs *GameState) Progress() race.Progress {
	return *gs.progress
}

// Opponents returns snapshots of the AI cars
func (gs *GameState) Opponents() []ai.Agent {
	ret := make([]ai.Agent, len(gs.agents))
	for i, a := range gs.agents {
		ret[i] = *a
	}
	return ret
}

func (gs *GameState) Result() Result {
	return Result{
		Track:   gs.selection,
		Level:   gs.level,
		Outcome: gs.progress.Outcome,
		Score:   gs.progress.Score,
		Elapsed: gs.progress.Elapsed,
		Laps:    gs.progress.Laps,
	}
}
