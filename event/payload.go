package event

import (
	"github.com/jakecoffman/cp/v2"

	"github.com/abey79/rusteroid/core"
)

// SpawnRequest asks the birth step for one asteroid
// Nil StartPosition means a random position in the field
// Nil StartVelocity means a random velocity; otherwise it is the base the jitter is added to
type SpawnRequest struct {
	Category      int
	StartPosition *cp.Vector
	StartVelocity *cp.Vector
}

// KillEvent reports an asteroid destroyed by a missile
// Entity is already scheduled for removal when the event is read
type KillEvent struct {
	Entity   core.Entity
	Category int
	Position cp.Vector
}

// FireRequest launches a missile from Origin along Heading (rotation of local +Y)
type FireRequest struct {
	Origin       cp.Vector
	Heading      float64
	BaseVelocity cp.Vector
}
