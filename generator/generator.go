// Package generator produces asteroid outlines and their cosmetic fracture lines
package generator

import (
	"fmt"
	"math/rand/v2"

	"github.com/abey79/rusteroid/shape"
	"github.com/abey79/rusteroid/vmath"
)

// Kind identifies one of the closed set of generation strategies
type Kind uint8

const (
	KindJitteredCircle Kind = iota
	KindNestedRotation
	KindVoronoiFracture
)

// Names as used in configuration
const (
	NameJitteredCircle  = "jittered_circle"
	NameNestedRotation  = "nested_rotation"
	NameVoronoiFracture = "voronoi_fracture"
)

func (k Kind) String() string {
	switch k {
	case KindJitteredCircle:
		return NameJitteredCircle
	case KindNestedRotation:
		return NameNestedRotation
	case KindVoronoiFracture:
		return NameVoronoiFracture
	default:
		return fmt.Sprintf("kind(%d)", uint8(k))
	}
}

// ParseKind maps a configuration name to its Kind
func ParseKind(name string) (Kind, error) {
	switch name {
	case NameJitteredCircle:
		return KindJitteredCircle, nil
	case NameNestedRotation:
		return KindNestedRotation, nil
	case NameVoronoiFracture:
		return KindVoronoiFracture, nil
	default:
		return 0, fmt.Errorf("unknown generator %q", name)
	}
}

// Result is a closed unit-radius outline plus interior fracture segments
// Extra segments are cosmetic and never take part in collision
type Result struct {
	Outline shape.Shape
	Extra   []vmath.Segment
}

// Generator builds an asteroid silhouette for a size category
// Implementations are pure over rng and safe to call concurrently with distinct streams
type Generator interface {
	Kind() Kind
	Generate(rng *rand.Rand, category int) Result
}

// New returns the generator for kind
func New(kind Kind) (Generator, error) {
	switch kind {
	case KindJitteredCircle:
		return JitteredCircle{}, nil
	case KindNestedRotation:
		return NestedRotation{}, nil
	case KindVoronoiFracture:
		return VoronoiFracture{}, nil
	default:
		return nil, fmt.Errorf("unknown generator %s", kind)
	}
}
