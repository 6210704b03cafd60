package pizza

import (
	"fmt"
	"slices"
	"strings"
)

// Specs is the plain aggregate of product fields accumulated by a
// Builder. No invariants are enforced until Build.
type Specs struct {
	Crust    string
	Size     int // diameter in cm
	Toppings []string
}

// Clone returns a deep copy of the specs with its own toppings slice.
func (s Specs) Clone() Specs {
	s.Toppings = slices.Clone(s.Toppings)
	return s
}

// Pizza is the finished, immutable product. It holds a finalized copy
// of the specs and keeps no reference to the builder that produced it.
type Pizza struct {
	specs Specs
}

// Crust returns the crust type.
func (p Pizza) Crust() string { return p.specs.Crust }

// Size returns the diameter in cm.
func (p Pizza) Size() int { return p.specs.Size }

// Toppings returns a copy of the toppings in the order they were added.
func (p Pizza) Toppings() []string { return slices.Clone(p.specs.Toppings) }

// Specs returns a deep copy of the finalized specs.
func (p Pizza) Specs() Specs { return p.specs.Clone() }

func (p Pizza) String() string {
	if len(p.specs.Toppings) == 0 {
		return fmt.Sprintf("%s pizza, %d cm", p.specs.Crust, p.specs.Size)
	}
	return fmt.Sprintf("%s pizza, %d cm, with %s",
		p.specs.Crust, p.specs.Size, strings.Join(p.specs.Toppings, ", "))
}
