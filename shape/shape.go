// Package shape defines the immutable local-space outline shared by rendering and collision
package shape

import (
	"github.com/jakecoffman/cp/v2"

	"github.com/abey79/rusteroid/vmath"
)

// Kind is the topology of a shape
type Kind uint8

const (
	KindPolygon  Kind = iota // Closed ring, first vertex repeated at the end
	KindPolyline             // Open line string
)

func (k Kind) String() string {
	switch k {
	case KindPolygon:
		return "polygon"
	case KindPolyline:
		return "polyline"
	default:
		return "unknown"
	}
}

// Shape is a polygon or polyline in local unit space
// It never stores a transform; world geometry is derived on demand
type Shape struct {
	kind     Kind
	vertices []cp.Vector
}

// FromVertices builds a shape from points, closing it into a polygon when close is set
// and there is more than one point; otherwise the result is a polyline
func FromVertices(points []cp.Vector, close bool) Shape {
	vertices := make([]cp.Vector, len(points), len(points)+1)
	copy(vertices, points)

	if close && len(vertices) > 1 {
		if !vertices[len(vertices)-1].Equal(vertices[0]) {
			vertices = append(vertices, vertices[0])
		}
		return Shape{kind: KindPolygon, vertices: vertices}
	}
	return Shape{kind: KindPolyline, vertices: vertices}
}

// FromPolygon builds a closed shape from a ring
func FromPolygon(p vmath.Polygon) Shape {
	return FromVertices(p, true)
}

func (s Shape) Kind() Kind { return s.kind }

// Len returns the stored vertex count, closing duplicate included
func (s Shape) Len() int { return len(s.vertices) }

// Vertices returns a copy of the local-space vertices
func (s Shape) Vertices() []cp.Vector {
	out := make([]cp.Vector, len(s.vertices))
	copy(out, s.vertices)
	return out
}

// Segments returns the local-space edges, used once at spawn time to build a mesh
func (s Shape) Segments() []vmath.Segment {
	if len(s.vertices) < 2 {
		return nil
	}
	out := make([]vmath.Segment, 0, len(s.vertices)-1)
	for i := 1; i < len(s.vertices); i++ {
		out = append(out, vmath.Segment{A: s.vertices[i-1], B: s.vertices[i]})
	}
	return out
}

// Radius returns the bounding-circle radius around the local origin
func (s Shape) Radius() float64 {
	return vmath.Polygon(s.vertices).MaxRadius(cp.Vector{})
}

// WorldGeometry applies t to every vertex and keeps the topology
func (s Shape) WorldGeometry(t vmath.Affine) vmath.Geometry {
	kind := vmath.GeometryLine
	if s.kind == KindPolygon {
		kind = vmath.GeometryPolygon
	}
	return vmath.Geometry{Kind: kind, Points: t.Points(s.vertices)}
}
