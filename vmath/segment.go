package vmath

import "github.com/jakecoffman/cp/v2"

// Segment is a closed line segment
type Segment struct {
	A, B cp.Vector
}

// Length returns the euclidean length of s
func (s Segment) Length() float64 {
	return s.A.Distance(s.B)
}

// At returns the point at parameter t along s (0 = A, 1 = B)
func (s Segment) At(t float64) cp.Vector {
	return s.A.Lerp(s.B, t)
}

// SameAs reports whether s and o share endpoints in either direction
func (s Segment) SameAs(o Segment) bool {
	return (Near(s.A, o.A) && Near(s.B, o.B)) || (Near(s.A, o.B) && Near(s.B, o.A))
}

// SegmentsIntersect reports whether closed segments p and q share a point
// Touching endpoints and collinear overlap count; the result is symmetric in p and q
func SegmentsIntersect(p, q Segment) bool {
	d1 := Orient(q.A, q.B, p.A)
	d2 := Orient(q.A, q.B, p.B)
	d3 := Orient(p.A, p.B, q.A)
	d4 := Orient(p.A, p.B, q.B)

	if straddles(d1, d2) && straddles(d3, d4) {
		return true
	}

	switch {
	case d1 == 0 && onSegment(q, p.A):
		return true
	case d2 == 0 && onSegment(q, p.B):
		return true
	case d3 == 0 && onSegment(p, q.A):
		return true
	case d4 == 0 && onSegment(p, q.B):
		return true
	}
	return false
}

func straddles(a, b float64) bool {
	return (a > 0 && b < 0) || (a < 0 && b > 0)
}

// onSegment assumes p is collinear with s and checks it lies within the bounds of s
func onSegment(s Segment, p cp.Vector) bool {
	return p.X >= min(s.A.X, s.B.X) && p.X <= max(s.A.X, s.B.X) &&
		p.Y >= min(s.A.Y, s.B.Y) && p.Y <= max(s.A.Y, s.B.Y)
}

// crossingParam returns the parameter along s where it crosses edge e
// ok is false for parallel segments or when the crossing falls outside either segment
func crossingParam(s, e Segment) (t float64, ok bool) {
	t, _, ok = crossingParams(s, e)
	return t, ok
}

// crossingParams returns the crossing parameters along both s (t) and e (u)
func crossingParams(s, e Segment) (t, u float64, ok bool) {
	d := s.B.Sub(s.A)
	f := e.B.Sub(e.A)
	denom := d.Cross(f)
	if denom == 0 {
		return 0, 0, false
	}
	ac := e.A.Sub(s.A)
	t = ac.Cross(f) / denom
	u = ac.Cross(d) / denom
	if t < 0 || t > 1 || u < 0 || u > 1 {
		return 0, 0, false
	}
	return t, u, true
}
