package system

import (
	"math"

	"github.com/abey79/rusteroid/engine"
	"github.com/abey79/rusteroid/parameter"
)

// WrapSystem folds positions back into the field, which is centered on the origin
type WrapSystem struct {
	world *engine.World
}

// NewWrapSystem creates a new wrap system
func NewWrapSystem(world *engine.World) engine.System {
	return &WrapSystem{world: world}
}

func (s *WrapSystem) Name() string {
	return "wrap"
}

func (s *WrapSystem) Priority() int {
	return parameter.PriorityWrap
}

func (s *WrapSystem) Update() {
	cfg := s.world.Resources.Config
	transforms := s.world.Components.Transform

	for _, entity := range transforms.GetAllEntities() {
		tr, ok := transforms.GetComponent(entity)
		if !ok {
			continue
		}
		x := wrapCoord(tr.Position.X, cfg.FieldWidth)
		y := wrapCoord(tr.Position.Y, cfg.FieldHeight)
		if x == tr.Position.X && y == tr.Position.Y {
			continue
		}
		tr.Position.X, tr.Position.Y = x, y
		transforms.SetComponent(entity, tr)
	}
}

// wrapCoord maps v into [-extent/2, extent/2)
func wrapCoord(v, extent float64) float64 {
	if extent <= 0 {
		return v
	}
	half := extent / 2
	if v >= -half && v < half {
		return v
	}
	w := math.Mod(v+half, extent)
	if w < 0 {
		w += extent
	}
	return w - half
}
