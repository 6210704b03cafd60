package pizza_test

import (
	"fmt"

	"github.com/shashforge/creational/pizza"
)

func ExampleBuilder() {
	p, err := pizza.New().
		Crust("Pan").
		Size(40).
		Topping("Ham").
		Topping("Pineapple").
		Build()
	if err != nil {
		panic(err)
	}
	fmt.Println(p)
	// Output: Pan pizza, 40 cm, with Ham, Pineapple
}

func ExampleBuilder_branching() {
	base := pizza.New().Crust("Neapolitan").Size(30).Topping("Tomato")

	margherita, _ := base.Topping("Mozzarella").Build()
	marinara, _ := base.Topping("Garlic").Build()

	fmt.Println(margherita)
	fmt.Println(marinara)
	// Output:
	// Neapolitan pizza, 30 cm, with Tomato, Mozzarella
	// Neapolitan pizza, 30 cm, with Tomato, Garlic
}

func ExampleMargherita() {
	p, _ := pizza.Margherita().Build()
	fmt.Println(p)
	// Output: Neapolitan pizza, 30 cm, with Tomato, Mozzarella
}
