package pizza

import (
	"fmt"
	"slices"
)

// Size constraints in cm. DefaultSize applies when Size is never called.
const (
	MinSize     = 20
	MaxSize     = 60
	DefaultSize = 32
)

// Builder accumulates pizza specs across fluent step calls. It is a
// value: each step returns an updated copy, so intermediate builders
// can be reused as branch points without cross-contamination. A Builder
// must not be shared across goroutines mid-chain; each construction
// episode owns its builder exclusively.
type Builder struct {
	specs Specs
	err   error
}

// New returns a builder with Size preset to DefaultSize.
func New() Builder {
	return Builder{specs: Specs{Size: DefaultSize}}
}

// Crust sets the crust type. Singular field: the last call wins.
func (b Builder) Crust(crust string) Builder {
	b.specs.Crust = crust
	return b
}

// Size sets the diameter in cm. Singular field: the last call wins,
// for validity too — an out-of-range value records ErrSizeOutOfRange
// for Build to report, and a later in-range call supersedes it.
func (b Builder) Size(cm int) Builder {
	if cm < MinSize || cm > MaxSize {
		b.err = fmt.Errorf("%w: %d cm (allowed %d..%d)", ErrSizeOutOfRange, cm, MinSize, MaxSize)
		return b
	}
	b.specs.Size = cm
	b.err = nil
	return b
}

// Topping appends one topping; call order is preserved in the product.
// The slice is re-cloned before the append so builders branched from a
// common ancestor never share a backing array.
func (b Builder) Topping(topping string) Builder {
	b.specs.Toppings = append(slices.Clone(b.specs.Toppings), topping)
	return b
}

// Toppings replaces the whole topping list.
func (b Builder) Toppings(toppings ...string) Builder {
	b.specs.Toppings = slices.Clone(toppings)
	return b
}

// Build finalizes the accumulated specs into an immutable Pizza. It
// reports a recorded step validation error first, then ErrCrustRequired
// if the crust was never set. The product holds its own deep copy of
// the specs; the builder remains valid for further use.
func (b Builder) Build() (Pizza, error) {
	if b.err != nil {
		return Pizza{}, b.err
	}
	if b.specs.Crust == "" {
		return Pizza{}, ErrCrustRequired
	}
	return Pizza{specs: b.specs.Clone()}, nil
}
