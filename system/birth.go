package system

import (
	"math"
	"math/rand/v2"
	"runtime"

	"github.com/jakecoffman/cp/v2"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/abey79/rusteroid/core"
	"github.com/abey79/rusteroid/engine"
	"github.com/abey79/rusteroid/event"
	"github.com/abey79/rusteroid/parameter"
)

// BirthSystem instantiates asteroids from spawn requests
// Generation runs in parallel, one independent random stream per request; the entities are
// created at the end of the tick in request order, so the outcome only depends on the seed
type BirthSystem struct {
	world *engine.World
}

// NewBirthSystem creates a new birth system
func NewBirthSystem(world *engine.World) engine.System {
	return &BirthSystem{world: world}
}

func (s *BirthSystem) Name() string {
	return "birth"
}

func (s *BirthSystem) Priority() int {
	return parameter.PriorityBirth
}

// Update drains every spawn request exactly once
func (s *BirthSystem) Update() {
	requests := s.world.Resources.Event.Spawn.Drain()
	if len(requests) == 0 {
		return
	}
	log := s.world.Resources.Log
	cfg := s.world.Resources.Config

	valid := requests[:0:0]
	for _, req := range requests {
		if req.Category < 1 || req.Category > cfg.MaxCategory {
			log.Warn("spawn request dropped", zap.Int("category", req.Category))
			continue
		}
		valid = append(valid, req)
	}

	// Streams are drawn sequentially so request i always gets the same one
	streams := make([]*rand.Rand, len(valid))
	for i := range valid {
		streams[i] = s.world.Resources.Rand.Next()
	}

	specs := make([]engine.AsteroidSpec, len(valid))
	var g errgroup.Group
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i, req := range valid {
		g.Go(func() error {
			specs[i] = s.build(streams[i], req)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		log.Error("asteroid generation failed", zap.Error(err))
		return
	}

	for _, spec := range specs {
		s.world.DeferSpawn(func(w *engine.World) {
			e := engine.SpawnAsteroid(w, spec)
			w.Resources.Log.Debug("asteroid spawned",
				zap.Uint64("entity", uint64(e)),
				zap.Int("category", spec.Category),
				zap.Int("segments", spec.Geometry.Outline.Len()+len(spec.Geometry.Extra)))
		})
	}
}

// build generates the outline and draws placement and motion for one request
func (s *BirthSystem) build(rng *rand.Rand, req event.SpawnRequest) engine.AsteroidSpec {
	cfg := s.world.Resources.Config
	gen := s.world.Resources.Generators.Random(rng)
	geometry := gen.Generate(rng, req.Category)

	spec := engine.AsteroidSpec{
		Category: req.Category,
		Geometry: geometry,
		Rotation: rng.Float64() * 2 * math.Pi,
		Spin:     core.Uniform(rng, -parameter.SpawnRotationRange, parameter.SpawnRotationRange),
		Size: parameter.AsteroidSizePerCategory*float64(req.Category) +
			core.Uniform(rng, -parameter.AsteroidSizeJitter, parameter.AsteroidSizeJitter),
	}

	if req.StartPosition != nil {
		spec.Position = *req.StartPosition
	} else {
		spec.Position = cp.Vector{
			X: core.Uniform(rng, -cfg.FieldWidth/2, cfg.FieldWidth/2),
			Y: core.Uniform(rng, -cfg.FieldHeight/2, cfg.FieldHeight/2),
		}
	}

	if req.StartVelocity != nil {
		const j = parameter.SpawnVelocityJitter
		spec.Velocity = req.StartVelocity.Add(cp.Vector{
			X: core.Uniform(rng, -j, j),
			Y: core.Uniform(rng, -j, j),
		})
	} else {
		const r = parameter.SpawnVelocityRange
		spec.Velocity = cp.Vector{
			X: core.Uniform(rng, -r, r),
			Y: core.Uniform(rng, -r, r),
		}
	}
	return spec
}
