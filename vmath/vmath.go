// Package vmath holds the planar geometry shared by shape generation, collision and export
// Points are cp.Vector throughout; polygons are open rings (no closing duplicate)
package vmath

import (
	"math"

	"github.com/jakecoffman/cp/v2"
)

// Epsilon is the tolerance for parameter and area comparisons
const Epsilon = 1e-9

// Orient returns twice the signed area of triangle (a, b, c)
// Positive for counter-clockwise, negative for clockwise, zero when collinear
func Orient(a, b, c cp.Vector) float64 {
	return b.Sub(a).Cross(c.Sub(a))
}

// RotateAbout rotates p by radians around pivot
func RotateAbout(p, pivot cp.Vector, radians float64) cp.Vector {
	return p.Sub(pivot).Rotate(cp.ForAngle(radians)).Add(pivot)
}

// ScaleAbout scales p by factor relative to pivot
func ScaleAbout(p, pivot cp.Vector, factor float64) cp.Vector {
	return p.Sub(pivot).Mult(factor).Add(pivot)
}

// Near reports whether a and b are within Epsilon on both axes
func Near(a, b cp.Vector) bool {
	return math.Abs(a.X-b.X) <= Epsilon && math.Abs(a.Y-b.Y) <= Epsilon
}

// Degrees converts degrees to radians
func Degrees(deg float64) float64 {
	return deg * math.Pi / 180
}
