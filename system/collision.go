package system

import (
	"go.uber.org/zap"

	"github.com/abey79/rusteroid/core"
	"github.com/abey79/rusteroid/engine"
	"github.com/abey79/rusteroid/event"
	"github.com/abey79/rusteroid/parameter"
	"github.com/abey79/rusteroid/vmath"
)

// CollisionSystem tests every asteroid against every missile by exact geometry
// A hit destroys both and splits the asteroid; a missile hits at most one asteroid and
// an asteroid is hit by at most one missile per tick
type CollisionSystem struct {
	world *engine.World
}

// NewCollisionSystem creates a new collision system
func NewCollisionSystem(world *engine.World) engine.System {
	return &CollisionSystem{world: world}
}

func (s *CollisionSystem) Name() string {
	return "collision"
}

func (s *CollisionSystem) Priority() int {
	return parameter.PriorityCollision
}

type missileHull struct {
	entity core.Entity
	geom   vmath.Geometry
	bounds vmath.Rect
	spent  bool
}

func (s *CollisionSystem) Update() {
	missiles := s.collectMissiles()
	if len(missiles) == 0 {
		return
	}

	for _, a := range s.world.Components.Asteroid.GetAllEntities() {
		geom, ok := engine.WorldGeometry(s.world, a)
		if !ok {
			continue
		}
		bounds := geom.Bounds()

		for i := range missiles {
			m := &missiles[i]
			if m.spent || !bounds.Overlaps(m.bounds) {
				continue
			}
			if !vmath.Intersects(geom, m.geom) {
				continue
			}
			m.spent = true
			s.resolve(a, m.entity)
			break
		}
	}
}

// collectMissiles computes each live missile's world geometry once per tick
func (s *CollisionSystem) collectMissiles() []missileHull {
	entities := s.world.Components.Missile.GetAllEntities()
	hulls := make([]missileHull, 0, len(entities))
	for _, e := range entities {
		if s.world.PendingDestroy(e) {
			continue
		}
		geom, ok := engine.WorldGeometry(s.world, e)
		if !ok {
			continue
		}
		hulls = append(hulls, missileHull{entity: e, geom: geom, bounds: geom.Bounds()})
	}
	return hulls
}

// resolve applies one hit: kill event, removal of both entities, and the split
func (s *CollisionSystem) resolve(asteroid, missile core.Entity) {
	ast, _ := s.world.Components.Asteroid.GetComponent(asteroid)
	tr, _ := s.world.Components.Transform.GetComponent(asteroid)
	kin, _ := s.world.Components.Kinetic.GetComponent(asteroid)
	events := s.world.Resources.Event

	events.Kill.Push(event.KillEvent{Entity: asteroid, Category: ast.Category, Position: tr.Position})
	s.world.DeferDestroy(asteroid)
	s.world.DeferDestroy(missile)

	s.world.Resources.Log.Debug("asteroid hit",
		zap.Uint64("entity", uint64(asteroid)),
		zap.Uint64("missile", uint64(missile)),
		zap.Int("category", ast.Category))

	if ast.Category <= 1 {
		return
	}
	for i := 0; i < parameter.SplitCount; i++ {
		pos, vel := tr.Position, kin.Velocity
		events.Spawn.Push(event.SpawnRequest{
			Category:      ast.Category - 1,
			StartPosition: &pos,
			StartVelocity: &vel,
		})
	}
}
