package shape

import (
	"fmt"
	"math"
	"slices"
)

// Shape is a geometric figure that can produce an independent copy of
// itself. Clone must return the same concrete variant; slice fields are
// duplicated, never aliased. Implementations use pointer receivers so
// every clone is a distinct instance.
type Shape interface {
	// Clone returns a deep, independent copy of the shape.
	Clone() Shape
	// Area returns the enclosed area.
	Area() float64
	// Perimeter returns the boundary length.
	Perimeter() float64
	fmt.Stringer
}

// Compile-time checks that all variants implement Shape.
var (
	_ Shape = (*Circle)(nil)
	_ Shape = (*Square)(nil)
	_ Shape = (*Triangle)(nil)
	_ Shape = (*Hexagon)(nil)
)

// Circle is a circle with the given radius.
type Circle struct {
	Radius float64
}

// Clone returns an independent copy of the circle.
func (c *Circle) Clone() Shape {
	cp := *c
	return &cp
}

// Area returns pi*r^2.
func (c *Circle) Area() float64 { return math.Pi * c.Radius * c.Radius }

// Perimeter returns the circumference 2*pi*r.
func (c *Circle) Perimeter() float64 { return 2 * math.Pi * c.Radius }

func (c *Circle) String() string { return fmt.Sprintf("circle(r=%g)", c.Radius) }

// Square is a square with the given side length.
type Square struct {
	Side float64
}

// Clone returns an independent copy of the square.
func (s *Square) Clone() Shape {
	cp := *s
	return &cp
}

// Area returns side^2.
func (s *Square) Area() float64 { return s.Side * s.Side }

// Perimeter returns 4*side.
func (s *Square) Perimeter() float64 { return 4 * s.Side }

func (s *Square) String() string { return fmt.Sprintf("square(side=%g)", s.Side) }

// Triangle is a triangle given by its three side lengths.
type Triangle struct {
	A, B, C float64
}

// Clone returns an independent copy of the triangle.
func (t *Triangle) Clone() Shape {
	cp := *t
	return &cp
}

// Area uses Heron's formula. Degenerate side lengths yield 0.
func (t *Triangle) Area() float64 {
	s := (t.A + t.B + t.C) / 2
	p := s * (s - t.A) * (s - t.B) * (s - t.C)
	if p <= 0 {
		return 0
	}
	return math.Sqrt(p)
}

// Perimeter returns a+b+c.
func (t *Triangle) Perimeter() float64 { return t.A + t.B + t.C }

func (t *Triangle) String() string {
	return fmt.Sprintf("triangle(a=%g b=%g c=%g)", t.A, t.B, t.C)
}

// Hexagon is a regular hexagon with the given side length. Labels
// optionally names the six vertices; it is owned by the hexagon and is
// deep-copied by Clone.
type Hexagon struct {
	Side   float64
	Labels []string
}

// Clone returns an independent copy of the hexagon, including its own
// copy of Labels.
func (h *Hexagon) Clone() Shape {
	cp := *h
	cp.Labels = slices.Clone(h.Labels)
	return &cp
}

// Area returns 3*sqrt(3)/2 * side^2.
func (h *Hexagon) Area() float64 { return 3 * math.Sqrt(3) / 2 * h.Side * h.Side }

// Perimeter returns 6*side.
func (h *Hexagon) Perimeter() float64 { return 6 * h.Side }

func (h *Hexagon) String() string { return fmt.Sprintf("hexagon(side=%g)", h.Side) }
