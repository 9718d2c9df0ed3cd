package component

import "time"

// MissileComponent holds projectile state (pure data)
// A missile never spawns children and hits at most one asteroid
type MissileComponent struct {
	TimeToLive       time.Duration // Remaining lifetime, destroyed at zero
	MomentumTransfer float64       // Fraction of the shooter's speed inherited at launch
}
