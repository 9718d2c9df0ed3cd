package vmath

import (
	"math"

	"github.com/jakecoffman/cp/v2"
)

// Rect is an axis-aligned bounding rectangle, closed on all sides
type Rect struct {
	Min, Max cp.Vector
}

// EmptyRect contains no point; Extend on it yields the point itself
func EmptyRect() Rect {
	return Rect{
		Min: cp.Vector{X: math.Inf(1), Y: math.Inf(1)},
		Max: cp.Vector{X: math.Inf(-1), Y: math.Inf(-1)},
	}
}

// RectOf returns the bounds of points
func RectOf(points []cp.Vector) Rect {
	r := EmptyRect()
	for _, p := range points {
		r = r.Extend(p)
	}
	return r
}

// Extend grows r to include p
func (r Rect) Extend(p cp.Vector) Rect {
	return Rect{
		Min: cp.Vector{X: math.Min(r.Min.X, p.X), Y: math.Min(r.Min.Y, p.Y)},
		Max: cp.Vector{X: math.Max(r.Max.X, p.X), Y: math.Max(r.Max.Y, p.Y)},
	}
}

// Empty reports whether r contains no point
func (r Rect) Empty() bool {
	return r.Min.X > r.Max.X || r.Min.Y > r.Max.Y
}

func (r Rect) Width() float64  { return r.Max.X - r.Min.X }
func (r Rect) Height() float64 { return r.Max.Y - r.Min.Y }

// Center returns the midpoint of r
func (r Rect) Center() cp.Vector {
	return r.Min.Lerp(r.Max, 0.5)
}

// Intersect returns the overlap of r and o, possibly empty
func (r Rect) Intersect(o Rect) Rect {
	return Rect{
		Min: cp.Vector{X: math.Max(r.Min.X, o.Min.X), Y: math.Max(r.Min.Y, o.Min.Y)},
		Max: cp.Vector{X: math.Min(r.Max.X, o.Max.X), Y: math.Min(r.Max.Y, o.Max.Y)},
	}
}

// Overlaps reports whether r and o share at least one point
func (r Rect) Overlaps(o Rect) bool {
	return !r.Intersect(o).Empty()
}

// Contains reports whether p lies in r
func (r Rect) Contains(p cp.Vector) bool {
	return p.X >= r.Min.X && p.X <= r.Max.X && p.Y >= r.Min.Y && p.Y <= r.Max.Y
}

// Inflate scales r by factor about its center
func (r Rect) Inflate(factor float64) Rect {
	c := r.Center()
	hw, hh := r.Width()*factor/2, r.Height()*factor/2
	return Rect{
		Min: cp.Vector{X: c.X - hw, Y: c.Y - hh},
		Max: cp.Vector{X: c.X + hw, Y: c.Y + hh},
	}
}

// Polygon returns the counter-clockwise ring of r
func (r Rect) Polygon() Polygon {
	return Polygon{
		r.Min,
		{X: r.Max.X, Y: r.Min.Y},
		r.Max,
		{X: r.Min.X, Y: r.Max.Y},
	}
}
