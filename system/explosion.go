package system

import (
	"go.uber.org/zap"

	"github.com/abey79/rusteroid/engine"
	"github.com/abey79/rusteroid/parameter"
)

// ExplosionSystem consumes kill events for effects
type ExplosionSystem struct {
	world *engine.World
}

// NewExplosionSystem creates a new explosion system
func NewExplosionSystem(world *engine.World) engine.System {
	return &ExplosionSystem{world: world}
}

func (s *ExplosionSystem) Name() string {
	return "explosion"
}

func (s *ExplosionSystem) Priority() int {
	return parameter.PriorityExplosion
}

func (s *ExplosionSystem) Update() {
	kills := s.world.Resources.Event.Kill.Drain()
	s.world.Resources.Stats.Kills += len(kills)
	for _, ev := range kills {
		s.world.Resources.Log.Info("asteroid destroyed",
			zap.Uint64("entity", uint64(ev.Entity)),
			zap.Int("category", ev.Category),
			zap.Float64("x", ev.Position.X),
			zap.Float64("y", ev.Position.Y))

		if a := s.world.Resources.Audio; a != nil && a.Player != nil && a.Player.IsRunning() {
			a.Player.PlayExplosion(ev.Category)
		}
	}
}
