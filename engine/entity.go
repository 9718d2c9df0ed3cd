package engine

import (
	"github.com/jakecoffman/cp/v2"

	"github.com/abey79/rusteroid/component"
	"github.com/abey79/rusteroid/core"
	"github.com/abey79/rusteroid/generator"
	"github.com/abey79/rusteroid/parameter"
	"github.com/abey79/rusteroid/shape"
	"github.com/abey79/rusteroid/vmath"
)

// AsteroidSpec describes an asteroid to instantiate
type AsteroidSpec struct {
	Category int
	Position cp.Vector
	Velocity cp.Vector
	Rotation float64
	Spin     float64
	Size     float64
	Geometry generator.Result
}

// SpawnAsteroid creates an asteroid entity immediately
// The render mesh is the outline edges followed by the fracture lines, copied into the entity
func SpawnAsteroid(w *World, spec AsteroidSpec) core.Entity {
	e := w.CreateEntity()

	outline := spec.Geometry.Outline
	mesh := outline.Segments()
	mesh = append(mesh, spec.Geometry.Extra...)

	w.Components.Asteroid.SetComponent(e, component.AsteroidComponent{Category: spec.Category})
	w.Components.Transform.SetComponent(e, component.TransformComponent{
		Position: spec.Position,
		Rotation: spec.Rotation,
		Scale:    component.UniformScale(spec.Size),
	})
	w.Components.Kinetic.SetComponent(e, component.KineticComponent{
		Velocity: spec.Velocity,
		Spin:     spec.Spin,
	})
	w.Components.Body.SetComponent(e, component.BodyComponent{Shape: outline, Mesh: mesh})
	return e
}

// missileShape is a unit segment along local +Y
var missileShape = shape.FromVertices([]cp.Vector{{X: 0, Y: 0}, {X: 0, Y: 1}}, false)

// SpawnMissile creates a missile entity immediately
func SpawnMissile(w *World, pos, vel cp.Vector, heading float64, state component.MissileComponent) core.Entity {
	e := w.CreateEntity()

	w.Components.Missile.SetComponent(e, state)
	w.Components.Transform.SetComponent(e, component.TransformComponent{
		Position: pos,
		Rotation: heading,
		Scale:    cp.Vector{X: 1, Y: parameter.MissileLength},
	})
	w.Components.Kinetic.SetComponent(e, component.KineticComponent{Velocity: vel})
	w.Components.Body.SetComponent(e, component.BodyComponent{
		Shape: missileShape,
		Mesh:  missileShape.Segments(),
	})
	return e
}

// WorldGeometry returns the entity's collision geometry at its current transform
func WorldGeometry(w *World, e core.Entity) (vmath.Geometry, bool) {
	body, ok := w.Components.Body.GetComponent(e)
	if !ok {
		return vmath.Geometry{}, false
	}
	tr, ok := w.Components.Transform.GetComponent(e)
	if !ok {
		return vmath.Geometry{}, false
	}
	return body.Shape.WorldGeometry(tr.Affine()), true
}
