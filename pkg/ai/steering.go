package ai

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/golangdaddy/circuit/pkg/geom"
	"github.com/golangdaddy/circuit/pkg/vehicle"
)

var ErrInvalidLevel = errors.New("invalid difficulty level")

// Level is the opponent difficulty, 1 (easy) to 3 (hard)
type Level int

const (
	LevelEasy   Level = 1
	LevelMedium Level = 2
	LevelHard   Level = 3
)

const (
	DefaultGain   = 0.05
	DefaultRadius = 15.0
	baseSpeed     = 10.0
	speedPerLevel = 5.0
)

func (l Level) Valid() bool {
	return l >= LevelEasy && l <= LevelHard
}

func (l Level) String() string {
	switch l {
	case LevelEasy:
		return "easy"
	case LevelMedium:
		return "medium"
	case LevelHard:
		return "hard"
	}
	return fmt.Sprintf("Level(%d)", int(l))
}

// ParseLevel accepts 1-3 or easy/medium/hard
func ParseLevel(v string) (Level, error) {
	s := strings.ToLower(strings.TrimSpace(v))
	switch s {
	case "easy":
		return LevelEasy, nil
	case "medium":
		return LevelMedium, nil
	case "hard":
		return LevelHard, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil || !Level(n).Valid() {
		return 0, fmt.Errorf("%w: %q", ErrInvalidLevel, v)
	}
	return Level(n), nil
}

// Speed is the forward speed of AI cars in units per second
func Speed(l Level) float64 {
	return baseSpeed + float64(l)*speedPerLevel
}

// Agent is an AI car chasing checkpoints. It has no laps, health or score.
type Agent struct {
	Body vehicle.Body
	Next int // index of the checkpoint being chased
}

func NewAgent(start geom.Vec2) *Agent {
	return &Agent{Body: vehicle.NewBody(start)}
}

// Reset puts the agent back on the grid chasing checkpoint 0
func (a *Agent) Reset(start geom.Vec2) {
	a.Body.Reset(start)
	a.Next = 0
}

// Controller steers agents with a proportional heading correction.
// There is no look-ahead and no obstacle avoidance.
type Controller struct {
	Level  Level
	Gain   float64
	Radius float64
}

func NewController(level Level) *Controller {
	return &Controller{
		Level:  level,
		Gain:   DefaultGain,
		Radius: DefaultRadius,
	}
}

// Steer returns the heading error from body toward target in (-180, 180]
func Steer(body *vehicle.Body, target geom.Vec2) float64 {
	desired := geom.HeadingTo(body.Position, target)
	return geom.NormalizeAngle(desired - body.Heading)
}

// Update runs one tick for agent. Returns true if the agent reached
// its target checkpoint.
func (c *Controller) Update(agent *Agent, checkpoints []geom.Vec2, dt float64) bool {
	if len(checkpoints) == 0 {
		return false
	}
	if agent.Next < 0 || agent.Next >= len(checkpoints) {
		agent.Next = 0
	}
	target := checkpoints[agent.Next]

	agent.Body.Turn(Steer(&agent.Body, target) * c.Gain)
	agent.Body.Forward(Speed(c.Level) * dt)

	if !agent.Body.Position.Within(target, c.Radius) {
		return false
	}
	agent.Next = (agent.Next + 1) % len(checkpoints)
	return true
}
