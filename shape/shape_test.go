package shape

import (
	"testing"

	"github.com/jakecoffman/cp/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abey79/rusteroid/vmath"
)

func TestFromVertices(t *testing.T) {
	tri := []cp.Vector{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 0, Y: 1}}

	tests := []struct {
		name    string
		points  []cp.Vector
		close   bool
		kind    Kind
		wantLen int
	}{
		{"Closed triangle", tri, true, KindPolygon, 4},
		{"Already closed", append(append([]cp.Vector{}, tri...), tri[0]), true, KindPolygon, 4},
		{"Open triangle", tri, false, KindPolyline, 3},
		{"Single point never closes", tri[:1], true, KindPolyline, 1},
		{"Two points close to degenerate polygon", tri[:2], true, KindPolygon, 3},
		{"Empty", nil, true, KindPolyline, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := FromVertices(tt.points, tt.close)
			assert.Equal(t, tt.kind, s.Kind())
			require.Equal(t, tt.wantLen, s.Len())
			if s.Kind() == KindPolygon {
				vs := s.Vertices()
				assert.Equal(t, vs[0], vs[len(vs)-1])
			}
		})
	}
}

func TestShape_Immutable(t *testing.T) {
	points := []cp.Vector{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 0, Y: 1}}
	s := FromVertices(points, true)

	points[0] = cp.Vector{X: 9, Y: 9}
	assert.Equal(t, cp.Vector{}, s.Vertices()[0], "source slice is copied")

	vs := s.Vertices()
	vs[1] = cp.Vector{X: 9, Y: 9}
	assert.Equal(t, cp.Vector{X: 1, Y: 0}, s.Vertices()[1], "accessor returns a copy")
}

func TestShape_WorldGeometry(t *testing.T) {
	s := FromVertices([]cp.Vector{{X: -1, Y: -1}, {X: 1, Y: -1}, {X: 1, Y: 1}, {X: -1, Y: 1}}, true)
	g := s.WorldGeometry(vmath.NewAffine(cp.Vector{X: 100, Y: 50}, 0, cp.Vector{X: 10, Y: 10}))

	assert.Equal(t, vmath.GeometryPolygon, g.Kind)
	require.Len(t, g.Points, 5)
	assert.InDelta(t, 90.0, g.Points[0].X, 1e-9)
	assert.InDelta(t, 40.0, g.Points[0].Y, 1e-9)

	line := FromVertices([]cp.Vector{{X: 0, Y: 0}, {X: 0, Y: 4}}, false)
	lg := line.WorldGeometry(vmath.Identity())
	assert.Equal(t, vmath.GeometryLine, lg.Kind)
	assert.True(t, vmath.Intersects(g, line.WorldGeometry(vmath.NewAffine(cp.Vector{X: 100, Y: 50}, 0, cp.Vector{X: 1, Y: 1}))))
	assert.False(t, vmath.Intersects(g, lg))
}

func TestShape_SegmentsAndRadius(t *testing.T) {
	s := FromVertices([]cp.Vector{{X: 1, Y: 0}, {X: 0, Y: 1}, {X: -1, Y: 0}}, true)
	assert.Len(t, s.Segments(), 3)
	assert.InDelta(t, 1.0, s.Radius(), 1e-12)
	assert.Equal(t, "polygon", s.Kind().String())
}
