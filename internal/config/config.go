// Package config loads the demo configuration: built-in defaults, then
// an optional TOML file, then CREATIONAL_-prefixed environment
// variables, each layer overriding the previous one.
package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// ShapeSpec describes one prototype to seed into the shape registry.
// Kind selects the variant; only the fields that variant uses matter.
type ShapeSpec struct {
	Kind   string   `koanf:"kind"`
	Radius float64  `koanf:"radius"`
	Side   float64  `koanf:"side"`
	A      float64  `koanf:"a"`
	B      float64  `koanf:"b"`
	C      float64  `koanf:"c"`
	Labels []string `koanf:"labels"`
}

// Config is the demo application configuration.
type Config struct {
	Pizza struct {
		DefaultCrust string `koanf:"default_crust"`
		DefaultSize  int    `koanf:"default_size"`
	} `koanf:"pizza"`

	// Shapes maps registry keys to prototype specs. Empty means the
	// demo seeds its built-in set.
	Shapes map[string]ShapeSpec `koanf:"shapes"`
}

// Load reads configuration from configPath (optional; "" tries default
// locations) layered over defaults and under environment variables.
func Load(configPath string) (*Config, error) {
	k := koanf.New(".")

	// Defaults.
	k.Load(confmap.Provider(map[string]interface{}{
		"pizza.default_crust": "Neapolitan",
		"pizza.default_size":  32,
	}, "."), nil)

	if configPath != "" {
		if err := k.Load(file.Provider(configPath), toml.Parser()); err != nil {
			return nil, fmt.Errorf("error loading config: %w", err)
		}
	} else {
		for _, path := range []string{"./creational.toml", "$HOME/.creational.toml"} {
			path = os.ExpandEnv(path)
			if _, err := os.Stat(path); err == nil {
				if err := k.Load(file.Provider(path), toml.Parser()); err == nil {
					break
				}
			}
		}
	}

	// Environment variables with prefix CREATIONAL_, e.g.
	// CREATIONAL_PIZZA_DEFAULT_CRUST -> pizza.default_crust. Only the
	// first underscore becomes a separator; TOML remains the place for
	// nested shape tables.
	k.Load(env.Provider("CREATIONAL_", ".", func(s string) string {
		s = strings.TrimPrefix(s, "CREATIONAL_")
		return strings.Replace(strings.ToLower(s), "_", ".", 1)
	}), nil)

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("error unmarshalling config: %w", err)
	}
	return &cfg, nil
}
