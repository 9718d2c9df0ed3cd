package component

import (
	"math"
	"testing"

	"github.com/jakecoffman/cp/v2"
	"github.com/stretchr/testify/assert"
)

func TestTransformComponent_Affine(t *testing.T) {
	tr := TransformComponent{Position: cp.Vector{X: 10, Y: 20}, Rotation: math.Pi / 2, Scale: UniformScale(5)}
	p := tr.Affine().Point(cp.Vector{X: 1, Y: 0})
	assert.InDelta(t, 10.0, p.X, 1e-9)
	assert.InDelta(t, 25.0, p.Y, 1e-9)

	unit := TransformComponent{Scale: UniformScale(1)}
	p = unit.Affine().Point(cp.Vector{X: 3, Y: 4})
	assert.InDelta(t, 3.0, p.X, 1e-12)
	assert.InDelta(t, 4.0, p.Y, 1e-12)
}

func TestTransformComponent_NonUniformScale(t *testing.T) {
	// Stretch local X by 2 and local Y by 3, then rotate a quarter turn
	tr := TransformComponent{Rotation: math.Pi / 2, Scale: cp.Vector{X: 2, Y: 3}}

	px := tr.Affine().Point(cp.Vector{X: 1, Y: 0})
	assert.InDelta(t, 0.0, px.X, 1e-9)
	assert.InDelta(t, 2.0, px.Y, 1e-9)

	py := tr.Affine().Point(cp.Vector{X: 0, Y: 1})
	assert.InDelta(t, -3.0, py.X, 1e-9)
	assert.InDelta(t, 0.0, py.Y, 1e-9)
}
