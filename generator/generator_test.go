package generator

import (
	"testing"

	"github.com/jakecoffman/cp/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abey79/rusteroid/core"
	"github.com/abey79/rusteroid/parameter"
	"github.com/abey79/rusteroid/shape"
	"github.com/abey79/rusteroid/vmath"
)

func allGenerators() []Generator {
	return []Generator{JitteredCircle{}, NestedRotation{}, VoronoiFracture{}}
}

func TestGenerate_OutlineContract(t *testing.T) {
	src := core.NewRandSource(7)
	for _, g := range allGenerators() {
		t.Run(g.Kind().String(), func(t *testing.T) {
			for key := uint64(0); key < 500; key++ {
				cat := int(key%parameter.MaxCategory) + 1
				res := g.Generate(src.Stream(key), cat)

				require.Equal(t, shape.KindPolygon, res.Outline.Kind())
				verts := res.Outline.Vertices()
				require.GreaterOrEqual(t, len(verts), 4, "closed triangle at least")
				assert.Equal(t, verts[0], verts[len(verts)-1])

				r := res.Outline.Radius()
				assert.GreaterOrEqual(t, r, parameter.OutlineRadiusMin)
				assert.LessOrEqual(t, r, parameter.OutlineRadiusMax)
			}
		})
	}
}

func TestGenerate_Deterministic(t *testing.T) {
	src := core.NewRandSource(99)
	for _, g := range allGenerators() {
		a := g.Generate(src.Stream(3), 3)
		b := g.Generate(src.Stream(3), 3)
		assert.Equal(t, a.Outline.Vertices(), b.Outline.Vertices(), g.Kind().String())
		assert.Equal(t, a.Extra, b.Extra, g.Kind().String())
	}
}

func TestJitteredCircle(t *testing.T) {
	res := JitteredCircle{}.Generate(core.NewRandSource(1).Stream(0), 2)
	assert.Equal(t, parameter.JitterVertexCount+1, res.Outline.Len())
	assert.Empty(t, res.Extra)
}

func TestPolarPolygon_RadiusClamped(t *testing.T) {
	src := core.NewRandSource(11)
	// Spikiness far above the default so the clamp is actually reached
	for key := uint64(0); key < 2000; key++ {
		poly := polarPolygon(src.Stream(key), parameter.PolarAvgRadius, parameter.PolarIrregularity, 1.0, parameter.PolarVertexCount)
		for _, v := range poly {
			r := v.Length()
			require.GreaterOrEqual(t, r, 0.0)
			require.LessOrEqual(t, r, 2*parameter.PolarAvgRadius+vmath.Epsilon)
		}
	}
}

func TestPolarPolygon(t *testing.T) {
	rng := core.NewRandSource(5).Stream(0)
	poly := polarPolygon(rng, 1, 0.9, 0.13, 18)
	require.Len(t, poly, 18)
	for _, p := range poly {
		assert.LessOrEqual(t, p.Length(), 2.0+vmath.Epsilon)
	}
	// Constant angular step: consecutive vertices turn the same way
	for i := 0; i+2 < len(poly); i++ {
		a, b := poly[i], poly[i+1]
		assert.GreaterOrEqual(t, a.Cross(b), -vmath.Epsilon)
	}
}

func TestNestedRotation_Iterations(t *testing.T) {
	tests := []struct {
		category int
		want     int
	}{
		{0, 2},
		{1, 3},
		{3, 5},
	}
	src := core.NewRandSource(11)
	for _, tt := range tests {
		_, n := NestedRotation{}.generate(src.Next(), tt.category)
		assert.Equal(t, tt.want, n, "category %d", tt.category)
	}
}

func TestNestedRotation_ProducesExtra(t *testing.T) {
	src := core.NewRandSource(21)
	for i := 0; i < 20; i++ {
		res := NestedRotation{}.Generate(src.Next(), 2)
		assert.NotEmpty(t, res.Extra)
		for _, s := range res.Extra {
			assert.Greater(t, s.Length(), 0.0)
		}
	}
}

func TestVoronoiFracture_Depth(t *testing.T) {
	src := core.NewRandSource(31)

	_, stats := VoronoiFracture{}.generate(src.Next(), 0)
	assert.Equal(t, 1, stats.Tessellations)
	assert.Equal(t, 0, stats.MaxDepth)

	for cat := 1; cat <= parameter.MaxCategory; cat++ {
		for i := 0; i < 20; i++ {
			res, stats := VoronoiFracture{}.generate(src.Next(), cat)
			assert.LessOrEqual(t, stats.MaxDepth, cat)
			// minIter = 1 at the root forces a second level
			assert.GreaterOrEqual(t, stats.MaxDepth, 1)
			assert.NotEmpty(t, res.Extra)
		}
	}
}

func TestVoronoiFracture_ExtraInsideOutline(t *testing.T) {
	src := core.NewRandSource(41)
	res := VoronoiFracture{}.Generate(src.Next(), 3)
	outline := vmath.NewPolygon(res.Outline.Vertices()).Scale(1.01, cp.Vector{})
	for _, s := range res.Extra {
		assert.True(t, outline.Contains(s.At(0.5)))
	}
}

func TestSampleSites_Fallback(t *testing.T) {
	// Two triangles sharing only the diagonal: bounds overlap, interior is empty
	lower := vmath.Polygon{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 0, Y: 1}}
	upper := vmath.Polygon{{X: 1, Y: 1}, {X: 0, Y: 1}, {X: 1, Y: 0}}
	region := vmath.NewRegion(lower, upper)
	require.False(t, region.Degenerate(parameter.MinRegionArea))

	f := &fracturer{rng: core.NewRandSource(3).Next()}
	sites := f.sampleSites(region, 3)
	require.Len(t, sites, 3)
	assert.Equal(t, 1, f.stats.Fallbacks)
	assert.Equal(t, fallbackSites(region, 3), sites)

	// Still terminates when recursing on such a region
	f.recurse(region, 2, 1, 0)
}

func TestSplitRegion(t *testing.T) {
	u := vmath.Polygon{{X: 0, Y: 0}, {X: 3, Y: 0}, {X: 3, Y: 3}, {X: 2, Y: 3}, {X: 2, Y: 1}, {X: 1, Y: 1}, {X: 1, Y: 3}, {X: 0, Y: 3}}
	band := vmath.Rect{Min: cp.Vector{X: -1, Y: 1.5}, Max: cp.Vector{X: 4, Y: 2.5}}.Polygon()

	pieces := splitRegion(vmath.NewRegion(u), band)
	require.Len(t, pieces, 2, "one branch per arm of the U")
	for _, p := range pieces {
		require.Len(t, p, 1)
		assert.InDelta(t, 1.0, p[0].Area(), 1e-9)
		assert.False(t, p.Degenerate(parameter.MinRegionArea))
	}

	// A band missing the U entirely leaves nothing to recurse into
	assert.Empty(t, splitRegion(vmath.NewRegion(u), vmath.Rect{Min: cp.Vector{X: 5, Y: 5}, Max: cp.Vector{X: 6, Y: 6}}.Polygon()))

	// Multi-ring regions stay whole
	whole := splitRegion(vmath.NewRegion(u, band), band)
	require.Len(t, whole, 1)
	assert.Len(t, whole[0], 3)
}
