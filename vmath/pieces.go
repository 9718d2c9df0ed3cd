package vmath

import (
	"math"
	"slices"

	"github.com/jakecoffman/cp/v2"
)

// boundaryHit is a crossing of the polygon boundary with the cell boundary
type boundaryHit struct {
	pt    cp.Vector
	t     float64 // Parameter along the polygon edge
	pos   float64 // Perimeter position on the cell: edge index + parameter
	entry bool    // Polygon boundary enters the cell here
}

// piecePath is a run of the polygon boundary inside the cell, from an entry to an exit
type piecePath struct {
	pts      []cp.Vector
	from, to float64 // Cell perimeter positions of the entry and the exit
}

// ConvexPieces returns the connected components of p ∩ cell as counter-clockwise rings
// p must be simple and cell convex. ok is false when the boundaries touch without crossing,
// such as a vertex lying exactly on the other ring, and the components cannot be traced
func ConvexPieces(p, cell Polygon) (pieces []Polygon, ok bool) {
	if len(p) < 3 || len(cell) < 3 {
		return nil, true
	}
	if p.SignedArea() < 0 {
		p = p.Reverse()
	}
	if cell.SignedArea() < 0 {
		cell = cell.Reverse()
	}

	hits, order, ok := boundaryHits(p, cell)
	if !ok {
		return nil, false
	}
	if len(hits) == 0 {
		switch {
		case cell.Contains(p[0]):
			return []Polygon{p}, true
		case p.Contains(cell[0]):
			return []Polygon{cell}, true
		default:
			return nil, true
		}
	}

	paths, ok := insidePaths(p, hits, order)
	if !ok {
		return nil, false
	}

	// Each exit continues counter-clockwise along the cell to the nearest entry
	n := float64(len(cell))
	next := make([]int, len(paths))
	taken := make([]bool, len(paths))
	for i, a := range paths {
		best, bestDist := -1, math.Inf(1)
		for j, b := range paths {
			d := math.Mod(b.from-a.to+n, n)
			if d < bestDist {
				best, bestDist = j, d
			}
		}
		if taken[best] {
			return nil, false
		}
		taken[best] = true
		next[i] = best
	}

	used := make([]bool, len(paths))
	for i := range paths {
		if used[i] {
			continue
		}
		var ring Polygon
		j := i
		for !used[j] {
			used[j] = true
			ring = append(ring, paths[j].pts...)
			ring = append(ring, cellArc(cell, paths[j].to, paths[next[j]].from)...)
			j = next[j]
		}
		if j != i {
			return nil, false
		}
		if ring = dedupeRing(ring); len(ring) >= 3 {
			pieces = append(pieces, ring)
		}
	}
	return pieces, true
}

// boundaryHits walks p and records every crossing with the cell boundary
// order lists, for each vertex of p in sequence, the hits that follow it on its outgoing edge
func boundaryHits(p, cell Polygon) (hits []boundaryHit, order [][]int, ok bool) {
	cellEdges := cell.Edges()
	order = make([][]int, len(p))
	for i, e := range p.Edges() {
		d := e.B.Sub(e.A)
		var local []boundaryHit
		for j, c := range cellEdges {
			t, u, crossed := crossingParams(e, c)
			// Half-open on both edges so a shared vertex is counted once
			if !crossed || t >= 1 || u >= 1 {
				continue
			}
			side := c.B.Sub(c.A).Cross(d)
			if side == 0 {
				return nil, nil, false
			}
			local = append(local, boundaryHit{pt: e.At(t), t: t, pos: float64(j) + u, entry: side > 0})
		}
		slices.SortFunc(local, func(a, b boundaryHit) int {
			switch {
			case a.t < b.t:
				return -1
			case a.t > b.t:
				return 1
			}
			return 0
		})
		for _, h := range local {
			order[i] = append(order[i], len(hits))
			hits = append(hits, h)
		}
	}

	// Entries and exits must alternate along a simple boundary
	for i := range hits {
		if hits[i].entry == hits[(i+1)%len(hits)].entry {
			return nil, nil, false
		}
	}
	return hits, order, true
}

// insidePaths cuts the polygon boundary at its crossings and keeps the runs inside the cell
func insidePaths(p Polygon, hits []boundaryHit, order [][]int) ([]piecePath, bool) {
	type stop struct {
		pt  cp.Vector
		hit int // -1 for a polygon vertex
	}

	var walk []stop
	for i, idx := range order {
		walk = append(walk, stop{pt: p[i], hit: -1})
		for _, h := range idx {
			walk = append(walk, stop{pt: hits[h].pt, hit: h})
		}
	}

	start := slices.IndexFunc(walk, func(s stop) bool { return s.hit >= 0 && hits[s.hit].entry })
	if start < 0 {
		return nil, false
	}

	var paths []piecePath
	var cur *piecePath
	for k := 0; k < len(walk); k++ {
		s := walk[(start+k)%len(walk)]
		switch {
		case s.hit >= 0 && hits[s.hit].entry:
			paths = append(paths, piecePath{pts: []cp.Vector{s.pt}, from: hits[s.hit].pos})
			cur = &paths[len(paths)-1]
		case s.hit >= 0:
			if cur == nil {
				return nil, false
			}
			cur.pts = append(cur.pts, s.pt)
			cur.to = hits[s.hit].pos
			cur = nil
		case cur != nil:
			cur.pts = append(cur.pts, s.pt)
		}
	}
	if cur != nil {
		return nil, false
	}
	return paths, true
}

// cellArc returns the cell vertices strictly between perimeter positions from and to,
// walking counter-clockwise
func cellArc(cell Polygon, from, to float64) []cp.Vector {
	n := len(cell)
	span := math.Mod(to-from+float64(n), float64(n))
	var out []cp.Vector
	for v := int(math.Floor(from)) + 1; float64(v) < from+span; v++ {
		out = append(out, cell[v%n])
	}
	return out
}

// dedupeRing drops consecutive duplicate points, including a closing duplicate
func dedupeRing(ring Polygon) Polygon {
	out := make(Polygon, 0, len(ring))
	for _, pt := range ring {
		if len(out) > 0 && Near(out[len(out)-1], pt) {
			continue
		}
		out = append(out, pt)
	}
	for len(out) > 1 && Near(out[0], out[len(out)-1]) {
		out = out[:len(out)-1]
	}
	return out
}
