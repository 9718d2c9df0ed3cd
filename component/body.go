package component

import (
	"github.com/abey79/rusteroid/shape"
	"github.com/abey79/rusteroid/vmath"
)

// BodyComponent carries the collision shape and the render mesh, both in local space
// Mesh is built once at spawn (outline edges plus fracture lines) and owned by this entity
type BodyComponent struct {
	Shape shape.Shape
	Mesh  []vmath.Segment
}
