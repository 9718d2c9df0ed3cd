package vmath

import (
	"math"

	"github.com/jakecoffman/cp/v2"
)

// Polygon is a simple polygon stored as an open ring
type Polygon []cp.Vector

// NewPolygon copies points and drops a trailing vertex equal to the first
func NewPolygon(points []cp.Vector) Polygon {
	p := make(Polygon, len(points))
	copy(p, points)
	if len(p) > 1 && p[0].Equal(p[len(p)-1]) {
		p = p[:len(p)-1]
	}
	return p
}

// Closed returns the ring with the first vertex repeated at the end
func (p Polygon) Closed() []cp.Vector {
	if len(p) == 0 {
		return nil
	}
	out := make([]cp.Vector, len(p)+1)
	copy(out, p)
	out[len(p)] = p[0]
	return out
}

// Edges returns the ring edges, including the closing edge
func (p Polygon) Edges() []Segment {
	if len(p) < 2 {
		return nil
	}
	edges := make([]Segment, len(p))
	for i := range p {
		edges[i] = Segment{A: p[i], B: p[(i+1)%len(p)]}
	}
	return edges
}

// SignedArea is positive for counter-clockwise rings
func (p Polygon) SignedArea() float64 {
	var sum float64
	for i := range p {
		sum += p[i].Cross(p[(i+1)%len(p)])
	}
	return sum / 2
}

// Area returns the absolute enclosed area
func (p Polygon) Area() float64 {
	return math.Abs(p.SignedArea())
}

// Centroid returns the area centroid, falling back to the vertex mean for degenerate rings
func (p Polygon) Centroid() cp.Vector {
	if len(p) == 0 {
		return cp.Vector{}
	}
	a := p.SignedArea()
	if math.Abs(a) < Epsilon {
		var sum cp.Vector
		for _, v := range p {
			sum = sum.Add(v)
		}
		return sum.Mult(1 / float64(len(p)))
	}
	var cx, cy float64
	for i := range p {
		v0, v1 := p[i], p[(i+1)%len(p)]
		cross := v0.Cross(v1)
		cx += (v0.X + v1.X) * cross
		cy += (v0.Y + v1.Y) * cross
	}
	return cp.Vector{X: cx / (6 * a), Y: cy / (6 * a)}
}

// Bounds returns the bounding rectangle
func (p Polygon) Bounds() Rect {
	return RectOf(p)
}

// Contains reports whether pt is inside the ring (even-odd rule)
func (p Polygon) Contains(pt cp.Vector) bool {
	inside := false
	n := len(p)
	for i, j := 0, n-1; i < n; j, i = i, i+1 {
		a, b := p[i], p[j]
		if (a.Y > pt.Y) != (b.Y > pt.Y) {
			x := a.X + (pt.Y-a.Y)*(b.X-a.X)/(b.Y-a.Y)
			if pt.X < x {
				inside = !inside
			}
		}
	}
	return inside
}

// Scale returns p scaled by factor about pivot
func (p Polygon) Scale(factor float64, pivot cp.Vector) Polygon {
	out := make(Polygon, len(p))
	for i, v := range p {
		out[i] = ScaleAbout(v, pivot, factor)
	}
	return out
}

// Rotate returns p rotated by radians about pivot
func (p Polygon) Rotate(radians float64, pivot cp.Vector) Polygon {
	out := make(Polygon, len(p))
	for i, v := range p {
		out[i] = RotateAbout(v, pivot, radians)
	}
	return out
}

// MaxRadius returns the largest distance from origin to a vertex
func (p Polygon) MaxRadius(origin cp.Vector) float64 {
	var r float64
	for _, v := range p {
		r = math.Max(r, v.Distance(origin))
	}
	return r
}

// Reverse returns p with opposite winding
func (p Polygon) Reverse() Polygon {
	out := make(Polygon, len(p))
	for i, v := range p {
		out[len(p)-1-i] = v
	}
	return out
}
