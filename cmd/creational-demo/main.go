// Command creational-demo exercises the library's two creational
// strategies: cloning shape prototypes out of a frozen registry, and
// assembling pizzas with the fluent builder.
package main

import (
	"fmt"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/shashforge/creational/internal/demo"
	"github.com/shashforge/creational/internal/logging"
)

const version = "0.1.0"

func main() {
	app := &cli.App{
		Name:    "creational-demo",
		Usage:   "Prototype registry and fluent builder demonstrations",
		Version: version,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "Load configuration from `FILE`",
			},
			&cli.StringFlag{
				Name:  "log-level",
				Usage: "Log level (debug, info, warn, error)",
				Value: "info",
			},
			&cli.BoolFlag{
				Name:  "pretty",
				Usage: "Human-readable log output",
			},
		},
		Before: func(c *cli.Context) error {
			logging.Setup(c.String("log-level"), c.Bool("pretty"))
			return nil
		},
		Commands: []*cli.Command{
			demo.ShapesCommand(),
			demo.PizzaCommand(),
		},
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(1)
	}
}
