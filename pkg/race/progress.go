package race

import (
	"math"

	"github.com/golangdaddy/circuit/pkg/geom"
)

// Rules are the tunables of a race
type Rules struct {
	CheckpointRadius float64
	MaxLaps          int
	StartHealth      float64
	BaseScore        int
}

// DefaultRules returns the standard three lap race
func DefaultRules() Rules {
	return Rules{
		CheckpointRadius: 15.0,
		MaxLaps:          3,
		StartHealth:      100.0,
		BaseScore:        1000,
	}
}

// Outcome is the result of a finished race
type Outcome int

const (
	OutcomeNone Outcome = iota
	OutcomeWon
	OutcomeLost
)

func (o Outcome) String() string {
	switch o {
	case OutcomeWon:
		return "won"
	case OutcomeLost:
		return "lost"
	}
	return "none"
}

// Progress tracks the player's way through the checkpoint loop
type Progress struct {
	Rules      Rules
	Checkpoint int     // index of the next checkpoint to reach
	Laps       int     // completed laps
	Elapsed    float64 // race time in seconds
	Health     float64
	Score      int
	Outcome    Outcome
}

func NewProgress(rules Rules) *Progress {
	p := &Progress{Rules: rules}
	p.Reset()
	return p
}

// Reset puts the tracker back to the start line
func (p *Progress) Reset() {
	p.Checkpoint = 0
	p.Laps = 0
	p.Elapsed = 0
	p.Health = p.Rules.StartHealth
	p.Score = 0
	p.Outcome = OutcomeNone
}

// Finished reports whether the race has an outcome
func (p *Progress) Finished() bool {
	return p.Outcome != OutcomeNone
}

// Tick advances the race clock
func (p *Progress) Tick(dt float64) {
	if p.Finished() || dt <= 0 {
		return
	}
	p.Elapsed += dt
}

// AdvanceIfReached moves to the next checkpoint when pos is within the
// checkpoint radius of the current one. Passing the last checkpoint
// completes a lap; completing MaxLaps wins the race.
// Returns true if the checkpoint was reached.
func (p *Progress) AdvanceIfReached(pos geom.Vec2, checkpoints []geom.Vec2) bool {
	if p.Finished() || len(checkpoints) == 0 {
		return false
	}
	if p.Checkpoint < 0 || p.Checkpoint >= len(checkpoints) {
		p.Checkpoint = 0
	}
	if !pos.Within(checkpoints[p.Checkpoint], p.Rules.CheckpointRadius) {
		return false
	}

	p.Checkpoint++
	if p.Checkpoint == len(checkpoints) {
		p.Checkpoint = 0
		p.Laps++
		if p.Laps >= p.Rules.MaxLaps {
			p.Outcome = OutcomeWon
			p.Score = p.TimeScore()
		}
	}
	return true
}

// TimeScore is the score for finishing now: BaseScore minus whole seconds,
// never below zero.
func (p *Progress) TimeScore() int {
	return max(0, p.Rules.BaseScore-int(math.Floor(p.Elapsed)))
}

// ApplyDamage subtracts from health. Running out of health loses the race
// with score 0, even if the last lap was completed in the same tick.
func (p *Progress) ApplyDamage(amount float64) {
	if p.Outcome == OutcomeLost || amount <= 0 {
		return
	}
	p.Health = max(0, p.Health-amount)
	if p.Health <= 0 {
		p.Outcome = OutcomeLost
		p.Score = 0
	}
}

// DisplayLap is the lap number shown to the player, starting at 1
func (p *Progress) DisplayLap() int {
	return min(p.Laps+1, p.Rules.MaxLaps)
}
