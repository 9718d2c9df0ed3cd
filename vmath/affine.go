package vmath

import "github.com/jakecoffman/cp/v2"

// Affine is an entity's local-to-world transform: scale, then rotate, then translate
type Affine struct {
	m cp.Transform
}

// Identity returns the identity transform
func Identity() Affine {
	return Affine{m: cp.NewTransformIdentity()}
}

// NewAffine composes translation, rotation (radians) and non-uniform scale
func NewAffine(position cp.Vector, rotation float64, scale cp.Vector) Affine {
	rigid := cp.NewTransformRigid(position, rotation)
	return Affine{m: rigid.Mult(cp.NewTransformScale(scale.X, scale.Y))}
}

// Point maps a local point into world space
func (a Affine) Point(p cp.Vector) cp.Vector {
	return a.m.Point(p)
}

// Points maps every point, returning a new slice
func (a Affine) Points(points []cp.Vector) []cp.Vector {
	out := make([]cp.Vector, len(points))
	for i, p := range points {
		out[i] = a.m.Point(p)
	}
	return out
}

// Segment maps both endpoints of s
func (a Affine) Segment(s Segment) Segment {
	return Segment{A: a.m.Point(s.A), B: a.m.Point(s.B)}
}
