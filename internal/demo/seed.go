// Package demo provides the CLI commands of creational-demo: seeding and
// exercising a shape prototype registry, and driving the pizza builder
// from flags or an interactive form.
package demo

import (
	"fmt"

	"github.com/shashforge/creational/internal/config"
	"github.com/shashforge/creational/prototype"
	"github.com/shashforge/creational/shape"
)

// defaultShapes seeds the registry when the config names no shapes.
func defaultShapes() map[string]config.ShapeSpec {
	return map[string]config.ShapeSpec{
		"circle":   {Kind: "circle", Radius: 1.0},
		"square":   {Kind: "square", Side: 2.0},
		"triangle": {Kind: "triangle", A: 3, B: 4, C: 5},
		"hexagon":  {Kind: "hexagon", Side: 1.5},
	}
}

// buildShape turns a config spec into a concrete prototype instance.
// The registry itself stays variant-agnostic; this switch is demo glue.
func buildShape(spec config.ShapeSpec) (shape.Shape, error) {
	switch spec.Kind {
	case "circle":
		return &shape.Circle{Radius: spec.Radius}, nil
	case "square":
		return &shape.Square{Side: spec.Side}, nil
	case "triangle":
		return &shape.Triangle{A: spec.A, B: spec.B, C: spec.C}, nil
	case "hexagon":
		return &shape.Hexagon{Side: spec.Side, Labels: spec.Labels}, nil
	default:
		return nil, fmt.Errorf("unknown shape kind %q", spec.Kind)
	}
}

// seedRegistry populates and freezes a shape registry from the config.
func seedRegistry(cfg *config.Config) (*prototype.Registry[shape.Shape], error) {
	specs := cfg.Shapes
	if len(specs) == 0 {
		specs = defaultShapes()
	}

	reg := prototype.New[shape.Shape]()
	for key, spec := range specs {
		s, err := buildShape(spec)
		if err != nil {
			return nil, fmt.Errorf("shape %q: %w", key, err)
		}
		if err := reg.Register(key, s); err != nil {
			return nil, err
		}
	}
	reg.Freeze()
	return reg, nil
}
