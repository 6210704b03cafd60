package prototype_test

import (
	"fmt"

	"github.com/shashforge/creational/prototype"
	"github.com/shashforge/creational/shape"
)

func ExampleRegistry_Clone() {
	reg := prototype.New[shape.Shape]()
	if err := reg.Register("circle", &shape.Circle{Radius: 1.0}); err != nil {
		panic(err)
	}
	reg.Freeze()

	p1, _ := reg.Clone("circle")
	p2, _ := reg.Clone("circle")

	// Each clone is an independent circle.
	p1.(*shape.Circle).Radius = 5
	fmt.Println(p1, p2)
	// Output: circle(r=5) circle(r=1)
}

func ExampleRegistry_Keys() {
	reg := prototype.New[shape.Shape]()
	reg.Register("square", &shape.Square{Side: 2})
	reg.Register("circle", &shape.Circle{Radius: 1})

	fmt.Println(reg.Keys())
	// Output: [circle square]
}
