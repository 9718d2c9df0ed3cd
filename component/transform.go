package component

import (
	"github.com/jakecoffman/cp/v2"

	"github.com/abey79/rusteroid/vmath"
)

// TransformComponent places an entity's local unit shape in the world
type TransformComponent struct {
	Position cp.Vector
	Rotation float64 // Radians
	Scale    cp.Vector // Per local axis, world units per local unit
}

// UniformScale returns the scale vector stretching both axes by s
func UniformScale(s float64) cp.Vector {
	return cp.Vector{X: s, Y: s}
}

// Affine returns the local-to-world transform
func (t TransformComponent) Affine() vmath.Affine {
	return vmath.NewAffine(t.Position, t.Rotation, t.Scale)
}
