package parameter

// Asteroid categories
const (
	// MaxCategory is the size class of a seeded asteroid
	MaxCategory = 3

	// SplitCount is the number of children spawned by a destroyed asteroid above category 1
	SplitCount = 3
)

// Birth
const (
	// AsteroidSizePerCategory scales the unit outline into world units
	AsteroidSizePerCategory = 10.0

	// AsteroidSizeJitter is the half-range of the uniform size offset
	AsteroidSizeJitter = 2.0

	// SpawnVelocityJitter is added per axis to an inherited velocity
	SpawnVelocityJitter = 20.0

	// SpawnVelocityRange bounds the per-axis velocity of a seeded asteroid
	SpawnVelocityRange = 50.0

	// SpawnRotationRange bounds the rotational velocity in rad/s
	SpawnRotationRange = 1.0
)
