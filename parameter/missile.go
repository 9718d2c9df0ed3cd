package parameter

import "time"

// Missile
const (
	MissileSpeed            = 400.0
	MissileTimeToLive       = 1500 * time.Millisecond
	MissileMomentumTransfer = 0.5
	MissileLength           = 4.0

	// MissileSpawnOffset pushes the missile ahead of the shooter along its heading
	MissileSpawnOffset = 16.0
)
