package session

import (
	"github.com/samber/lo"
	"go.uber.org/zap"

	"github.com/golangdaddy/circuit/pkg/track"
)

// nearbyScenery returns the scenery the player is touching
func (gs *GameState) nearbyScenery() []track.SceneryItem {
	pos := gs.player.Position
	return lo.Filter(gs.track.Scenery, func(s track.SceneryItem, _ int) bool {
		return pos.Within(s.Position, CollisionRadius)
	})
}

// checkCollisions drains health for every object in contact.
// Each object counts separately.
func (gs *GameState) checkCollisions(dt float64) {
	for _, s := range gs.nearbyScenery() {
		rate := WallDamageRate
		if s.Kind.IsObstacle() {
			rate = ObstacleDamageRate
		}
		gs.progress.ApplyDamage(rate * dt)
		gs.logger.Debug("contact",
			zap.Stringer("kind", s.Kind),
			zap.Stringer("at", s.Position),
			zap.Float64("health", gs.progress.Health))
	}
}
