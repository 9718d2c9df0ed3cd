package system

import (
	"github.com/abey79/rusteroid/engine"
	"github.com/abey79/rusteroid/parameter"
)

// KinematicSystem integrates linear and angular velocity
type KinematicSystem struct {
	world *engine.World
}

// NewKinematicSystem creates a new kinematic system
func NewKinematicSystem(world *engine.World) engine.System {
	return &KinematicSystem{world: world}
}

func (s *KinematicSystem) Name() string {
	return "kinematic"
}

func (s *KinematicSystem) Priority() int {
	return parameter.PriorityKinematic
}

func (s *KinematicSystem) Update() {
	dt := s.world.Resources.Time.Seconds()
	transforms := s.world.Components.Transform

	for _, entity := range s.world.Components.Kinetic.GetAllEntities() {
		kin, ok := s.world.Components.Kinetic.GetComponent(entity)
		if !ok {
			continue
		}
		tr, ok := transforms.GetComponent(entity)
		if !ok {
			continue
		}

		tr.Position = tr.Position.Add(kin.Velocity.Mult(dt))
		tr.Rotation += kin.Spin * dt
		transforms.SetComponent(entity, tr)
	}
}
