package parameter

// System Execution Priorities (lower runs first)
// Seed must precede Birth, and Birth must precede Collision within a tick
const (
	PriorityFire      = 10
	PriorityLifetime  = 20
	PrioritySeed      = 30
	PriorityBirth     = 40
	PriorityCollision = 50
	PriorityKinematic = 60
	PriorityWrap      = 70
	PriorityExplosion = 80 // After collision, drains kill events
)
