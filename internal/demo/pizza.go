package demo

import (
	"fmt"
	"strconv"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v2"

	"github.com/shashforge/creational/internal/config"
	"github.com/shashforge/creational/pizza"
)

// PizzaCommand returns the pizza command: it configures a fluent
// builder from flags, a preset recipe, or an interactive form, builds
// the pizza, and prints the finished order.
func PizzaCommand() *cli.Command {
	return &cli.Command{
		Name:  "pizza",
		Usage: "Build a pizza with the fluent builder",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "crust",
				Usage: "Crust type (required unless set by recipe or config)",
			},
			&cli.IntFlag{
				Name:  "size",
				Usage: fmt.Sprintf("Diameter in cm (%d..%d)", pizza.MinSize, pizza.MaxSize),
			},
			&cli.StringSliceFlag{
				Name:    "topping",
				Aliases: []string{"t"},
				Usage:   "Add a topping (repeatable, order preserved)",
			},
			&cli.StringFlag{
				Name:  "recipe",
				Usage: "Start from a preset: margherita, hawaiian, quattro",
			},
			&cli.BoolFlag{
				Name:    "interactive",
				Aliases: []string{"i"},
				Usage:   "Compose the pizza in an interactive form",
			},
		},
		Action: runPizza,
	}
}

func runPizza(c *cli.Context) error {
	cfg, err := config.Load(c.String("config"))
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	b, err := baseBuilder(c.String("recipe"), cfg)
	if err != nil {
		return err
	}

	if c.Bool("interactive") {
		b, err = runPizzaForm(b)
		if err != nil {
			return err
		}
	} else {
		if crust := c.String("crust"); crust != "" {
			b = b.Crust(crust)
		}
		if c.IsSet("size") {
			b = b.Size(c.Int("size"))
		}
		for _, t := range c.StringSlice("topping") {
			b = b.Topping(t)
		}
	}

	p, err := b.Build()
	if err != nil {
		return fmt.Errorf("could not build pizza: %w", err)
	}

	orderID := uuid.NewString()
	log.Info().
		Str("order_id", orderID).
		Str("crust", p.Crust()).
		Int("size_cm", p.Size()).
		Strs("toppings", p.Toppings()).
		Msg("pizza built")
	fmt.Fprintf(c.App.Writer, "order %s: %v\n", orderID, p)
	return nil
}

// baseBuilder resolves the starting builder: a preset recipe if asked
// for, otherwise a fresh builder seeded with the config defaults.
func baseBuilder(recipe string, cfg *config.Config) (pizza.Builder, error) {
	switch recipe {
	case "":
		b := pizza.New().Crust(cfg.Pizza.DefaultCrust)
		if cfg.Pizza.DefaultSize != 0 {
			b = b.Size(cfg.Pizza.DefaultSize)
		}
		return b, nil
	case "margherita":
		return pizza.Margherita(), nil
	case "hawaiian":
		return pizza.Hawaiian(), nil
	case "quattro":
		return pizza.QuattroFormaggi(), nil
	default:
		return pizza.Builder{}, fmt.Errorf("unknown recipe %q", recipe)
	}
}

// validateSizeInput accepts an empty input (keep the current size) or an
// integer within the allowed range.
func validateSizeInput(s string) error {
	if s == "" {
		return nil
	}
	cm, err := strconv.Atoi(s)
	if err != nil {
		return fmt.Errorf("not a number: %q", s)
	}
	if cm < pizza.MinSize || cm > pizza.MaxSize {
		return fmt.Errorf("size must be %d..%d cm", pizza.MinSize, pizza.MaxSize)
	}
	return nil
}
