package generator

import (
	"math"
	"math/rand/v2"

	"github.com/jakecoffman/cp/v2"

	"github.com/abey79/rusteroid/vmath"
)

// polarPolygon samples n vertices at a constant angular step of irregularity·2π/n from a
// random start angle, with Gaussian radius noise clamped to [0, 2·avgRadius]
// The sweep never exceeds a full turn, so the ring cannot self-intersect
func polarPolygon(rng *rand.Rand, avgRadius, irregularity, spikiness float64, n int) vmath.Polygon {
	step := irregularity * 2 * math.Pi / float64(n)
	sigma := spikiness * avgRadius

	angle := rng.Float64() * 2 * math.Pi
	poly := make(vmath.Polygon, 0, n)
	for i := 0; i < n; i++ {
		r := avgRadius + rng.NormFloat64()*sigma
		r = math.Max(0, math.Min(r, 2*avgRadius))
		poly = append(poly, cp.ForAngle(angle).Mult(r))
		angle += step
	}
	return poly
}
