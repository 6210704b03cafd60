package demo

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v2"

	"github.com/shashforge/creational/internal/config"
)

// ShapesCommand returns the shapes command: it seeds a prototype
// registry from the config, freezes it, and clones every key twice to
// show that lookups hand out independent copies.
func ShapesCommand() *cli.Command {
	return &cli.Command{
		Name:   "shapes",
		Usage:  "Clone shape prototypes from a frozen registry",
		Action: runShapes,
	}
}

func runShapes(c *cli.Context) error {
	cfg, err := config.Load(c.String("config"))
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	reg, err := seedRegistry(cfg)
	if err != nil {
		return fmt.Errorf("failed to seed registry: %w", err)
	}
	log.Debug().Int("prototypes", reg.Len()).Msg("registry seeded and frozen")

	for _, key := range reg.Keys() {
		first, err := reg.Clone(key)
		if err != nil {
			return err
		}
		second, err := reg.Clone(key)
		if err != nil {
			return err
		}
		log.Debug().
			Str("key", key).
			Str("shape", first.String()).
			Bool("distinct", first != second).
			Msg("cloned prototype twice")
		fmt.Fprintf(c.App.Writer, "%-10s %v  area=%.2f  perimeter=%.2f\n",
			key, first, first.Area(), first.Perimeter())
	}
	return nil
}
