package generator

import (
	"math/rand/v2"

	"github.com/jakecoffman/cp/v2"

	"github.com/abey79/rusteroid/core"
	"github.com/abey79/rusteroid/parameter"
	"github.com/abey79/rusteroid/shape"
	"github.com/abey79/rusteroid/vmath"
)

// NestedRotation draws nested, shrinking, rotated copies of the outline clipped to one another
// Each step scales the previous polygon, rotates it by an accumulating angle and keeps the
// part of its boundary inside the running mask (intersection of the last two polygons)
type NestedRotation struct{}

func (NestedRotation) Kind() Kind { return KindNestedRotation }

func (g NestedRotation) Generate(rng *rand.Rand, category int) Result {
	res, _ := g.generate(rng, category)
	return res
}

// generate also reports the number of clipping iterations performed
func (NestedRotation) generate(rng *rand.Rand, category int) (Result, int) {
	category = max(category, 0)
	steps := parameter.NestedBaseIterations + category
	factor := parameter.NestedScaleBase + parameter.NestedScalePerCat*float64(category)
	rotation := vmath.Degrees(core.Uniform(rng, parameter.NestedRotationMinDeg, parameter.NestedRotationMaxDeg))

	base := polarPolygon(rng, parameter.PolarAvgRadius, parameter.PolarIrregularity,
		parameter.PolarSpikiness, parameter.PolarVertexCount)

	prev := base
	mask := vmath.NewRegion(base)
	var extra []vmath.Segment

	iterations := 0
	for i := 0; i < steps; i++ {
		next := prev.Scale(factor, prev.Bounds().Center()).Rotate(rotation*float64(i+1), cp.Vector{})

		extra = append(extra, vmath.ClipPolyline(next.Closed(), mask)...)

		mask = vmath.NewRegion(next, prev)
		prev = next
		iterations++
	}

	return Result{Outline: shape.FromPolygon(base), Extra: extra}, iterations
}
