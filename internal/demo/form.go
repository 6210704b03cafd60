package demo

import (
	"strconv"

	"github.com/charmbracelet/huh"

	"github.com/shashforge/creational/pizza"
)

var crustOptions = []string{"Neapolitan", "Roman", "Pan", "Thin"}

var toppingOptions = []string{
	"Tomato", "Mozzarella", "Ham", "Pineapple",
	"Mushrooms", "Basil", "Gorgonzola", "Parmesan",
}

// runPizzaForm collects crust, size, and toppings interactively and
// applies them to the given builder. Empty answers keep the builder's
// current values.
func runPizzaForm(b pizza.Builder) (pizza.Builder, error) {
	var (
		crust    string
		sizeStr  string
		toppings []string
	)

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Crust").
				Options(huh.NewOptions(crustOptions...)...).
				Value(&crust),
			huh.NewInput().
				Title("Diameter (cm)").
				Placeholder(strconv.Itoa(pizza.DefaultSize)).
				Validate(validateSizeInput).
				Value(&sizeStr),
			huh.NewMultiSelect[string]().
				Title("Toppings").
				Options(huh.NewOptions(toppingOptions...)...).
				Value(&toppings),
		),
	)
	if err := form.Run(); err != nil {
		return b, err
	}

	if crust != "" {
		b = b.Crust(crust)
	}
	if sizeStr != "" {
		// Validated by the form; Atoi cannot fail here.
		cm, _ := strconv.Atoi(sizeStr)
		b = b.Size(cm)
	}
	if len(toppings) > 0 {
		b = b.Toppings(toppings...)
	}
	return b, nil
}
