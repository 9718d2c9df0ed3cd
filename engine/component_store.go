package engine

import (
	"github.com/abey79/rusteroid/component"
)

// ComponentStore holds the typed component stores of a world
type ComponentStore struct {
	Asteroid  *Store[component.AsteroidComponent]
	Missile   *Store[component.MissileComponent]
	Transform *Store[component.TransformComponent]
	Kinetic   *Store[component.KineticComponent]
	Body      *Store[component.BodyComponent]
}

// initComponentStores creates every store and registers it for lifecycle operations
func initComponentStores(w *World) {
	w.Components = ComponentStore{
		Asteroid:  NewStore[component.AsteroidComponent](),
		Missile:   NewStore[component.MissileComponent](),
		Transform: NewStore[component.TransformComponent](),
		Kinetic:   NewStore[component.KineticComponent](),
		Body:      NewStore[component.BodyComponent](),
	}
	w.allStores = []AnyStore{
		w.Components.Asteroid,
		w.Components.Missile,
		w.Components.Transform,
		w.Components.Kinetic,
		w.Components.Body,
	}
}
