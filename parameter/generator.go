package parameter

// Jittered circle
const (
	JitterVertexCount = 10
	JitterOffset      = 0.1
)

// Polar sampler shared by the fracture generators
const (
	PolarAvgRadius    = 1.0
	PolarIrregularity = 0.9  // Fraction of a full turn covered by the vertex sweep
	PolarSpikiness    = 0.13 // Radius standard deviation relative to PolarAvgRadius
	PolarVertexCount  = 18
)

// Nested rotation
const (
	NestedBaseIterations = 2
	NestedScaleBase      = 0.53
	NestedScalePerCat    = 0.08
	NestedRotationMinDeg = 30.0
	NestedRotationMaxDeg = 110.0
)

// Voronoi fracture
const (
	VoronoiSiteCount = 3

	// VoronoiBoxInflate enlarges the tessellation box to keep cell borders off the outline
	VoronoiBoxInflate = 1.5

	// SiteSampleAttempts caps rejection sampling per site before the fallback set is used
	SiteSampleAttempts = 64

	// FallbackSiteSpread is the fallback triangle radius relative to the region bounds
	FallbackSiteSpread = 0.1

	// MinRegionArea is the area below which a region is not tessellated
	MinRegionArea = 1e-6
)

// Bounding-circle radius band of a generated outline
// The upper bound is exact: polar radii are clamped to 2·PolarAvgRadius and the jittered
// circle stays within 1+JitterOffset. The lower bound is statistical, it needs every polar
// vertex to fall below 3.8 standard deviations under the mean
const (
	OutlineRadiusMin = 0.5
	OutlineRadiusMax = 2.0
)
