// Package system holds the per-tick game logic
package system

import "github.com/abey79/rusteroid/engine"

// Install registers every gameplay system on the world
func Install(world *engine.World) {
	for _, ctor := range []func(*engine.World) engine.System{
		NewFireSystem,
		NewLifetimeSystem,
		NewSeedSystem,
		NewBirthSystem,
		NewCollisionSystem,
		NewKinematicSystem,
		NewWrapSystem,
		NewExplosionSystem,
	} {
		world.AddSystem(ctor(world))
	}
}
