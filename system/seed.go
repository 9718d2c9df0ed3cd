package system

import (
	"go.uber.org/zap"

	"github.com/abey79/rusteroid/engine"
	"github.com/abey79/rusteroid/event"
	"github.com/abey79/rusteroid/parameter"
)

// SeedSystem keeps the field populated
// When no asteroid exists and no spawn request is pending it asks for one of the top category
type SeedSystem struct {
	world *engine.World
}

// NewSeedSystem creates a new seed system
func NewSeedSystem(world *engine.World) engine.System {
	return &SeedSystem{world: world}
}

func (s *SeedSystem) Name() string {
	return "seed"
}

func (s *SeedSystem) Priority() int {
	return parameter.PrioritySeed
}

func (s *SeedSystem) Update() {
	if s.world.Components.Asteroid.CountEntities() > 0 {
		return
	}
	queue := s.world.Resources.Event.Spawn
	if queue.Pending() {
		return
	}

	cat := s.world.Resources.Config.MaxCategory
	queue.Push(event.SpawnRequest{Category: cat})
	s.world.Resources.Log.Debug("field empty, seeding",
		zap.Int("category", cat),
		zap.Int64("frame", s.world.Resources.Time.FrameNumber))
}
