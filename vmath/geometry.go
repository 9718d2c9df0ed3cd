package vmath

import "github.com/jakecoffman/cp/v2"

// GeometryKind is the topology of a world-space geometry
type GeometryKind uint8

const (
	GeometryPolygon GeometryKind = iota // Closed ring, first == last
	GeometryLine                        // Open line string
)

// Geometry is a world-space polygon or line string
type Geometry struct {
	Kind   GeometryKind
	Points []cp.Vector
}

// Segments returns the edges of g; a single point yields one zero-length segment
func (g Geometry) Segments() []Segment {
	switch len(g.Points) {
	case 0:
		return nil
	case 1:
		return []Segment{{A: g.Points[0], B: g.Points[0]}}
	}
	out := make([]Segment, 0, len(g.Points)-1)
	for i := 1; i < len(g.Points); i++ {
		out = append(out, Segment{A: g.Points[i-1], B: g.Points[i]})
	}
	return out
}

// Bounds returns the bounding rectangle of g
func (g Geometry) Bounds() Rect {
	return RectOf(g.Points)
}

// hasArea reports whether g encloses an interior
// A two-point polygon collapses to a line and has none
func (g Geometry) hasArea() bool {
	return g.Kind == GeometryPolygon && len(NewPolygon(g.Points)) >= 3
}

// Intersects reports whether a and b share at least one point
// Polygons include their interior; the predicate is symmetric
func Intersects(a, b Geometry) bool {
	if len(a.Points) == 0 || len(b.Points) == 0 {
		return false
	}
	if !a.Bounds().Overlaps(b.Bounds()) {
		return false
	}

	bs := b.Segments()
	for _, sa := range a.Segments() {
		for _, sb := range bs {
			if SegmentsIntersect(sa, sb) {
				return true
			}
		}
	}

	// No boundary contact: one is either fully inside the other or they are disjoint
	if a.hasArea() && NewPolygon(a.Points).Contains(b.Points[0]) {
		return true
	}
	if b.hasArea() && NewPolygon(b.Points).Contains(a.Points[0]) {
		return true
	}
	return false
}

// Intersects is the method form of the package-level predicate
func (g Geometry) Intersects(o Geometry) bool {
	return Intersects(g, o)
}
