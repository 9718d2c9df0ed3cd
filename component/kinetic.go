package component

import "github.com/jakecoffman/cp/v2"

// KineticComponent holds linear and angular velocity
type KineticComponent struct {
	Velocity cp.Vector // World units per second
	Spin     float64   // Radians per second
}
