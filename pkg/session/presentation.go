package session

import (
	"fmt"

	"github.com/samber/lo"

	"github.com/golangdaddy/circuit/pkg/ai"
	"github.com/golangdaddy/circuit/pkg/geom"
	"github.com/golangdaddy/circuit/pkg/race"
)

// MinimapScale shrinks world units onto the minimap
const MinimapScale = 4.0

// HUD is the status line shown while racing
func (gs *GameState) HUD() string {
	p := gs.progress
	return fmt.Sprintf("Lap: %d/%d | Time: %d | Health: %d | Score: %d",
		p.DisplayLap(), p.Rules.MaxLaps, int(p.Elapsed), int(p.Health), p.Score)
}

// Banner is the message shown when the race is over
func (gs *GameState) Banner() string {
	head := "You Win!"
	if gs.progress.Outcome == race.OutcomeLost {
		head = "You Lost!"
	}
	return fmt.Sprintf("%s Score: %d\nPress R to restart or M to menu.", head, gs.progress.Score)
}

// CountdownLabel is the text shown before the start
func (gs *GameState) CountdownLabel() string {
	return fmt.Sprintf("Race starts in: %d", int(gs.remaining+1))
}

// MinimapIcon is a car marker in screen space
type MinimapIcon struct {
	X, Y   float64
	Player bool
}

func minimapPoint(p, center geom.Vec2) (float64, float64) {
	return p.X/MinimapScale + center.X, p.Z/MinimapScale + center.Z
}

// MinimapIcons projects the player and all AI cars around center
func (gs *GameState) MinimapIcons(center geom.Vec2) []MinimapIcon {
	x, y := minimapPoint(gs.player.Position, center)
	icons := []MinimapIcon{{X: x, Y: y, Player: true}}
	return append(icons, lo.Map(gs.agents, func(a *ai.Agent, _ int) MinimapIcon {
		x, y := minimapPoint(a.Body.Position, center)
		return MinimapIcon{X: x, Y: y}
	})...)
}
