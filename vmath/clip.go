package vmath

import (
	"slices"

	"github.com/jakecoffman/cp/v2"
)

// span is a parameter interval [lo, hi] along a segment
type span struct {
	lo, hi float64
}

// ClipSegment returns the parts of s lying inside region
func ClipSegment(s Segment, region Region) []Segment {
	if len(region) == 0 || s.Length() < Epsilon {
		return nil
	}
	spans := []span{{0, 1}}
	for _, p := range region {
		spans = intersectSpans(spans, insideSpans(s, p))
		if len(spans) == 0 {
			return nil
		}
	}
	out := make([]Segment, 0, len(spans))
	for _, sp := range spans {
		out = append(out, Segment{A: s.At(sp.lo), B: s.At(sp.hi)})
	}
	return out
}

// ClipSegments clips every segment against region
func ClipSegments(segments []Segment, region Region) []Segment {
	var out []Segment
	for _, s := range segments {
		out = append(out, ClipSegment(s, region)...)
	}
	return out
}

// ClipPolyline clips the open polyline through points against region
func ClipPolyline(points []cp.Vector, region Region) []Segment {
	var out []Segment
	for i := 1; i < len(points); i++ {
		out = append(out, ClipSegment(Segment{A: points[i-1], B: points[i]}, region)...)
	}
	return out
}

// insideSpans splits s at every boundary crossing of p and keeps the pieces whose midpoint is inside
func insideSpans(s Segment, p Polygon) []span {
	ts := []float64{0, 1}
	for _, e := range p.Edges() {
		if t, ok := crossingParam(s, e); ok && t > 0 && t < 1 {
			ts = append(ts, t)
		}
	}
	slices.Sort(ts)

	var spans []span
	for i := 1; i < len(ts); i++ {
		lo, hi := ts[i-1], ts[i]
		if hi-lo < Epsilon {
			continue
		}
		if !p.Contains(s.At((lo + hi) / 2)) {
			continue
		}
		if n := len(spans); n > 0 && lo-spans[n-1].hi < Epsilon {
			spans[n-1].hi = hi
			continue
		}
		spans = append(spans, span{lo, hi})
	}
	return spans
}

// intersectSpans intersects two sorted, disjoint span lists
func intersectSpans(a, b []span) []span {
	var out []span
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		lo := max(a[i].lo, b[j].lo)
		hi := min(a[i].hi, b[j].hi)
		if hi-lo >= Epsilon {
			out = append(out, span{lo, hi})
		}
		if a[i].hi < b[j].hi {
			i++
		} else {
			j++
		}
	}
	return out
}

// ClipHalfPlane keeps the part of convex polygon p on the side of line (origin, normal)
// where (x - origin)·normal <= 0
func ClipHalfPlane(p Polygon, origin, normal cp.Vector) Polygon {
	if len(p) == 0 {
		return nil
	}
	side := func(v cp.Vector) float64 { return v.Sub(origin).Dot(normal) }

	out := make(Polygon, 0, len(p)+1)
	for i := range p {
		cur, next := p[i], p[(i+1)%len(p)]
		sc, sn := side(cur), side(next)
		if sc <= 0 {
			out = append(out, cur)
		}
		if (sc < 0 && sn > 0) || (sc > 0 && sn < 0) {
			out = append(out, cur.Lerp(next, sc/(sc-sn)))
		}
	}
	if len(out) < 3 {
		return nil
	}
	return out
}
