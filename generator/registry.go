package generator

import (
	"errors"
	"fmt"
	"math/rand/v2"
)

// ErrEmptyRegistry is returned when a registry would hold no generator
var ErrEmptyRegistry = errors.New("generator registry is empty")

// Registry holds the strategies available to the birth step
// It is populated at construction and read-only afterwards, so concurrent reads need no lock
type Registry struct {
	generators []Generator
}

// NewRegistry registers gens in order
func NewRegistry(gens ...Generator) (*Registry, error) {
	if len(gens) == 0 {
		return nil, ErrEmptyRegistry
	}
	r := &Registry{generators: make([]Generator, len(gens))}
	copy(r.generators, gens)
	return r, nil
}

// Default registers every strategy
func Default() *Registry {
	return &Registry{generators: []Generator{JitteredCircle{}, NestedRotation{}, VoronoiFracture{}}}
}

// FromNames builds a registry from configuration names
func FromNames(names []string) (*Registry, error) {
	gens := make([]Generator, 0, len(names))
	for _, name := range names {
		kind, err := ParseKind(name)
		if err != nil {
			return nil, err
		}
		g, err := New(kind)
		if err != nil {
			return nil, err
		}
		gens = append(gens, g)
	}
	r, err := NewRegistry(gens...)
	if err != nil {
		return nil, fmt.Errorf("build registry: %w", err)
	}
	return r, nil
}

// Random picks a generator uniformly
func (r *Registry) Random(rng *rand.Rand) Generator {
	return r.generators[rng.IntN(len(r.generators))]
}

// Len returns the number of registered generators
func (r *Registry) Len() int {
	return len(r.generators)
}

// Names lists the registered strategies in registration order
func (r *Registry) Names() []string {
	names := make([]string, len(r.generators))
	for i, g := range r.generators {
		names[i] = g.Kind().String()
	}
	return names
}

