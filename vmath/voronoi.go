package vmath

import "github.com/jakecoffman/cp/v2"

// Voronoi builds the Voronoi diagram of sites bounded by box
// Each cell is the box cut by the bisector half-planes toward every other site.
// cells[i] belongs to sites[i] and is nil when the site lies outside box or duplicates
// an earlier site. edges lists every distinct cell edge once, box border included.
func Voronoi(sites []cp.Vector, box Rect) (cells []Polygon, edges []Segment) {
	cells = make([]Polygon, len(sites))
	for i, si := range sites {
		if !box.Contains(si) || duplicateBefore(sites, i) {
			continue
		}
		cell := box.Polygon()
		for j, sj := range sites {
			if j == i || Near(si, sj) {
				continue
			}
			cell = ClipHalfPlane(cell, si.Lerp(sj, 0.5), sj.Sub(si))
			if cell == nil {
				break
			}
		}
		cells[i] = cell
	}

	for _, cell := range cells {
		for _, e := range cell.Edges() {
			if e.Length() < Epsilon || containsSegment(edges, e) {
				continue
			}
			edges = append(edges, e)
		}
	}
	return cells, edges
}

func duplicateBefore(sites []cp.Vector, i int) bool {
	for j := 0; j < i; j++ {
		if Near(sites[i], sites[j]) {
			return true
		}
	}
	return false
}

func containsSegment(list []Segment, s Segment) bool {
	for _, o := range list {
		if o.SameAs(s) {
			return true
		}
	}
	return false
}
