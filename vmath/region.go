package vmath

import "github.com/jakecoffman/cp/v2"

// Region is the boolean intersection of its member polygons
// A point is inside when every member contains it, which keeps the intersection of
// concave rings exact without building the resulting multipolygon
type Region []Polygon

// NewRegion builds a region from one or more polygons
func NewRegion(polys ...Polygon) Region {
	r := make(Region, 0, len(polys))
	return append(r, polys...)
}

// With returns a new region further intersected with p; r is not modified
func (r Region) With(p Polygon) Region {
	out := make(Region, len(r), len(r)+1)
	copy(out, r)
	return append(out, p)
}

// Contains reports whether pt lies inside every member
func (r Region) Contains(pt cp.Vector) bool {
	if len(r) == 0 {
		return false
	}
	for _, p := range r {
		if !p.Contains(pt) {
			return false
		}
	}
	return true
}

// Bounds returns a rectangle enclosing the region (intersection of member bounds)
func (r Region) Bounds() Rect {
	if len(r) == 0 {
		return EmptyRect()
	}
	b := r[0].Bounds()
	for _, p := range r[1:] {
		b = b.Intersect(p.Bounds())
	}
	return b
}

// Degenerate reports whether the region cannot enclose a usable area
// Members are tested one by one, so for several rings a thin intersection of large
// members is not detected here
func (r Region) Degenerate(minArea float64) bool {
	if len(r) == 0 {
		return true
	}
	b := r.Bounds()
	if b.Empty() || b.Width()*b.Height() < minArea {
		return true
	}
	for _, p := range r {
		if len(p) < 3 || p.Area() < minArea {
			return true
		}
	}
	return false
}

// Centroid returns the centroid of the smallest member, the tightest estimate of the interior
func (r Region) Centroid() cp.Vector {
	if len(r) == 0 {
		return cp.Vector{}
	}
	best := r[0]
	for _, p := range r[1:] {
		if p.Area() < best.Area() {
			best = p
		}
	}
	return best.Centroid()
}
