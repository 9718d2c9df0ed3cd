package system

import (
	"github.com/abey79/rusteroid/engine"
	"github.com/abey79/rusteroid/parameter"
)

// LifetimeSystem expires missiles whose time-to-live ran out
type LifetimeSystem struct {
	world *engine.World
}

// NewLifetimeSystem creates a new lifetime system
func NewLifetimeSystem(world *engine.World) engine.System {
	return &LifetimeSystem{world: world}
}

func (s *LifetimeSystem) Name() string {
	return "lifetime"
}

func (s *LifetimeSystem) Priority() int {
	return parameter.PriorityLifetime
}

// Update decrements timers and schedules expired missiles for removal
func (s *LifetimeSystem) Update() {
	dt := s.world.Resources.Time.DeltaTime
	missiles := s.world.Components.Missile

	for _, entity := range missiles.GetAllEntities() {
		m, ok := missiles.GetComponent(entity)
		if !ok {
			continue
		}

		m.TimeToLive -= dt
		if m.TimeToLive <= 0 {
			s.world.DeferDestroy(entity)
			continue
		}
		missiles.SetComponent(entity, m)
	}
}
