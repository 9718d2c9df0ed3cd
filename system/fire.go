package system

import (
	"math"

	"github.com/jakecoffman/cp/v2"
	"go.uber.org/zap"

	"github.com/abey79/rusteroid/component"
	"github.com/abey79/rusteroid/engine"
	"github.com/abey79/rusteroid/event"
	"github.com/abey79/rusteroid/parameter"
)

// FireSystem turns fire requests into missiles
type FireSystem struct {
	world *engine.World
}

// NewFireSystem creates a new fire system
func NewFireSystem(world *engine.World) engine.System {
	return &FireSystem{world: world}
}

// Name returns system's name
func (s *FireSystem) Name() string {
	return "fire"
}

// Priority returns the system's priority
func (s *FireSystem) Priority() int {
	return parameter.PriorityFire
}

// Update drains fire requests and defers one missile per request
func (s *FireSystem) Update() {
	requests := s.world.Resources.Event.Fire.Drain()
	if len(requests) == 0 {
		return
	}
	cfg := s.world.Resources.Config

	for _, req := range requests {
		pos, vel := missileLaunch(req, cfg)
		state := component.MissileComponent{
			TimeToLive:       cfg.MissileTimeToLive,
			MomentumTransfer: cfg.MissileMomentumTransfer,
		}
		heading := req.Heading
		s.world.DeferSpawn(func(w *engine.World) {
			e := engine.SpawnMissile(w, pos, vel, heading, state)
			w.Resources.Log.Debug("missile spawned",
				zap.Uint64("entity", uint64(e)),
				zap.Float64("heading", heading))
		})
	}
}

// missileLaunch returns the spawn position and velocity for a request
// The shooter's speed along the heading is inherited scaled by the momentum transfer
func missileLaunch(req event.FireRequest, cfg *engine.ConfigResource) (cp.Vector, cp.Vector) {
	dir := cp.ForAngle(req.Heading + math.Pi/2)
	speed := req.BaseVelocity.Dot(dir)*cfg.MissileMomentumTransfer + cfg.MissileSpeed
	return req.Origin.Add(dir.Mult(parameter.MissileSpawnOffset)), dir.Mult(speed)
}
