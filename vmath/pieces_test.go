package vmath

import (
	"math"
	"math/rand/v2"
	"slices"
	"testing"

	"github.com/jakecoffman/cp/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// uShape opens upward, so a horizontal band through its arms cuts two pieces
func uShape() Polygon {
	return Polygon{v(0, 0), v(3, 0), v(3, 3), v(2, 3), v(2, 1), v(1, 1), v(1, 3), v(0, 3)}
}

func rectPoly(x0, y0, x1, y1 float64) Polygon {
	return Rect{Min: v(x0, y0), Max: v(x1, y1)}.Polygon()
}

func TestConvexPieces_SplitsConcave(t *testing.T) {
	pieces, ok := ConvexPieces(uShape(), rectPoly(-1, 1.5, 4, 2.5))
	require.True(t, ok)
	require.Len(t, pieces, 2)

	var xs []float64
	for _, p := range pieces {
		assert.InDelta(t, 1.0, p.Area(), 1e-9)
		assert.Greater(t, p.SignedArea(), 0.0, "counter-clockwise")
		xs = append(xs, p.Centroid().X)
	}
	slices.Sort(xs)
	assert.InDelta(t, 0.5, xs[0], 1e-9)
	assert.InDelta(t, 2.5, xs[1], 1e-9)
}

func TestConvexPieces_Cases(t *testing.T) {
	sq := rectPoly(0, 0, 2, 2)
	tests := []struct {
		name  string
		p     Polygon
		cell  Polygon
		count int
		area  float64
	}{
		{"polygon inside cell", sq, rectPoly(-1, -1, 3, 3), 1, 4},
		{"cell inside polygon", sq, rectPoly(0.5, 0.5, 1.5, 1.5), 1, 1},
		{"disjoint", sq, rectPoly(5, 5, 6, 6), 0, 0},
		{"corner overlap keeps cell vertex", sq, rectPoly(1, 1, 3, 3), 1, 1},
		{"clockwise input", sq.Reverse(), rectPoly(1, 1, 3, 3).Reverse(), 1, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pieces, ok := ConvexPieces(tt.p, tt.cell)
			require.True(t, ok)
			require.Len(t, pieces, tt.count)
			var total float64
			for _, p := range pieces {
				total += p.Area()
			}
			assert.InDelta(t, tt.area, total, 1e-9)
		})
	}
}

func TestConvexPieces_TouchingVertex(t *testing.T) {
	// The cell's first vertex sits on the square's right edge
	cell := Polygon{v(1, 0.5), v(3, -1), v(3, 2)}
	_, ok := ConvexPieces(rectPoly(0, 0, 1, 1), cell)
	assert.False(t, ok)
}

// Pieces of every Voronoi cell tile a random star-shaped polygon
func TestConvexPieces_TileVoronoi(t *testing.T) {
	rng := rand.New(rand.NewPCG(17, 0))
	traced := 0
	for round := 0; round < 200; round++ {
		var poly Polygon
		angle := rng.Float64() * 2 * math.Pi
		for i := 0; i < 18; i++ {
			r := math.Max(0.05, math.Min(1+rng.NormFloat64()*0.3, 2))
			poly = append(poly, cp.ForAngle(angle).Mult(r))
			angle += 0.9 * 2 * math.Pi / 18
		}

		b := poly.Bounds()
		var sites []cp.Vector
		for len(sites) < 3 {
			p := v(b.Min.X+rng.Float64()*b.Width(), b.Min.Y+rng.Float64()*b.Height())
			if poly.Contains(p) {
				sites = append(sites, p)
			}
		}
		cells, _ := Voronoi(sites, b.Inflate(1.5))

		var total float64
		complete := true
		for _, cell := range cells {
			if cell == nil {
				continue
			}
			pieces, ok := ConvexPieces(poly, cell)
			if !ok {
				complete = false
				break
			}
			for _, p := range pieces {
				total += p.Area()
				assert.True(t, cell.Contains(p.Centroid()) || p.Area() < 1e-6)
			}
		}
		if !complete {
			continue
		}
		traced++
		assert.InDelta(t, poly.Area(), total, 1e-6, "round %d", round)
	}
	assert.Greater(t, traced, 190)
}
