package generator

import (
	"math"
	"math/rand/v2"

	"github.com/jakecoffman/cp/v2"

	"github.com/abey79/rusteroid/core"
	"github.com/abey79/rusteroid/parameter"
	"github.com/abey79/rusteroid/shape"
)

// JitteredCircle perturbs evenly spaced points of the unit circle
// It is the baseline the fracture strategies are tuned against
type JitteredCircle struct{}

func (JitteredCircle) Kind() Kind { return KindJitteredCircle }

func (JitteredCircle) Generate(rng *rand.Rand, _ int) Result {
	const n = parameter.JitterVertexCount
	const d = parameter.JitterOffset

	pts := make([]cp.Vector, n)
	for i := range pts {
		a := 2 * math.Pi * float64(i) / n
		pts[i] = cp.Vector{
			X: math.Cos(a) + core.Uniform(rng, -d, d),
			Y: math.Sin(a) + core.Uniform(rng, -d, d),
		}
	}
	return Result{Outline: shape.FromVertices(pts, true)}
}
