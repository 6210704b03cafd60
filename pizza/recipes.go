package pizza

// Preset recipes: builders pre-configured with a standard pizza that
// callers can still customize before Build.

// Margherita is a 30 cm Neapolitan with tomato and mozzarella.
func Margherita() Builder {
	return New().Crust("Neapolitan").Size(30).Topping("Tomato").Topping("Mozzarella")
}

// Hawaiian is a 40 cm pan pizza with ham and pineapple.
func Hawaiian() Builder {
	return New().Crust("Pan").Size(40).Topping("Ham").Topping("Pineapple")
}

// QuattroFormaggi is a 33 cm Roman pizza with four cheeses.
func QuattroFormaggi() Builder {
	return New().Crust("Roman").Size(33).
		Toppings("Mozzarella", "Parmesan", "Gorgonzola", "Ricotta")
}
