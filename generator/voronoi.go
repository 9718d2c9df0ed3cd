package generator

import (
	"math"
	"math/rand/v2"

	"github.com/jakecoffman/cp/v2"

	"github.com/abey79/rusteroid/core"
	"github.com/abey79/rusteroid/parameter"
	"github.com/abey79/rusteroid/shape"
	"github.com/abey79/rusteroid/vmath"
)

// VoronoiFracture cracks the outline by recursive Voronoi tessellation
// Every level tessellates three interior sites, keeps the cell edges inside the current
// region and descends into a random subset of the cells with a shrinking budget
type VoronoiFracture struct{}

func (VoronoiFracture) Kind() Kind { return KindVoronoiFracture }

func (g VoronoiFracture) Generate(rng *rand.Rand, category int) Result {
	res, _ := g.generate(rng, category)
	return res
}

// fractureStats describes one generation run
type fractureStats struct {
	Tessellations int
	MaxDepth      int // Levels below the root tessellation
	Fallbacks     int // Site sets replaced after exhausted rejection sampling
}

type fracturer struct {
	rng   *rand.Rand
	extra []vmath.Segment
	stats fractureStats
}

func (VoronoiFracture) generate(rng *rand.Rand, category int) (Result, fractureStats) {
	base := polarPolygon(rng, parameter.PolarAvgRadius, parameter.PolarIrregularity,
		parameter.PolarSpikiness, parameter.PolarVertexCount)

	f := &fracturer{rng: rng}
	f.recurse(vmath.NewRegion(base), max(category, 0), 1, 0)

	return Result{Outline: shape.FromPolygon(base), Extra: f.extra}, f.stats
}

func (f *fracturer) recurse(region vmath.Region, maxIter, minIter, depth int) {
	if region.Degenerate(parameter.MinRegionArea) {
		return
	}
	f.stats.Tessellations++
	f.stats.MaxDepth = max(f.stats.MaxDepth, depth)

	sites := f.sampleSites(region, parameter.VoronoiSiteCount)
	box := region.Bounds().Inflate(parameter.VoronoiBoxInflate)
	cells, edges := vmath.Voronoi(sites, box)

	f.extra = append(f.extra, vmath.ClipSegments(edges, region)...)

	if maxIter <= 0 {
		return
	}
	minIter = min(minIter, maxIter)
	// Every connected piece of cell ∩ region draws its own budget
	for _, cell := range cells {
		if cell == nil {
			continue
		}
		for _, piece := range splitRegion(region, cell) {
			iter := minIter + f.rng.IntN(maxIter-minIter+1)
			if iter > 0 {
				f.recurse(piece, maxIter-1, max(minIter-1, 0), depth+1)
			}
		}
	}
}

// splitRegion returns the connected pieces of region ∩ cell, each as a single-ring region
// A region that is already a multi-ring intersection, or whose pieces cannot be traced
// because the boundaries touch, is kept whole as region ∩ cell
func splitRegion(region vmath.Region, cell vmath.Polygon) []vmath.Region {
	if len(region) == 1 {
		if pieces, ok := vmath.ConvexPieces(region[0], cell); ok {
			out := make([]vmath.Region, len(pieces))
			for i, p := range pieces {
				out[i] = vmath.NewRegion(p)
			}
			return out
		}
	}
	return []vmath.Region{region.With(cell)}
}

// sampleSites draws n points inside region by rejection sampling over its bounds
// Each site gets SiteSampleAttempts tries; on exhaustion the deterministic fallback set is used
func (f *fracturer) sampleSites(region vmath.Region, n int) []cp.Vector {
	b := region.Bounds()
	sites := make([]cp.Vector, 0, n)
	for len(sites) < n {
		placed := false
		for attempt := 0; attempt < parameter.SiteSampleAttempts; attempt++ {
			p := cp.Vector{
				X: core.Uniform(f.rng, b.Min.X, b.Max.X),
				Y: core.Uniform(f.rng, b.Min.Y, b.Max.Y),
			}
			if region.Contains(p) {
				sites = append(sites, p)
				placed = true
				break
			}
		}
		if !placed {
			f.stats.Fallbacks++
			return fallbackSites(region, n)
		}
	}
	return sites
}

// fallbackSites places n points on a small circle around the region centroid
func fallbackSites(region vmath.Region, n int) []cp.Vector {
	c := region.Centroid()
	b := region.Bounds()
	r := parameter.FallbackSiteSpread * math.Min(b.Width(), b.Height())
	if r <= vmath.Epsilon {
		r = parameter.FallbackSiteSpread
	}

	sites := make([]cp.Vector, n)
	for i := range sites {
		a := math.Pi/2 + 2*math.Pi*float64(i)/float64(n)
		sites[i] = c.Add(cp.ForAngle(a).Mult(r))
	}
	return sites
}
