package config

import (
	"os"

	"github.com/pseudomuto/tagfmt/pkg/consts"
	"github.com/pseudomuto/tagfmt/pkg/format"
	"go.uber.org/fx"
)

var Module = fx.Module("config", fx.Provide(
	// Function attempts to load the configuration from tagfmt.yaml if it exists.
	// Returns nil if the file doesn't exist, allowing commands that don't require config
	// (like init, help, version) to function properly.
	func() (*Config, error) {
		// Check if tagfmt.yaml exists
		if _, err := os.Stat(consts.ConfigFile); os.IsNotExist(err) {
			// Return nil config for commands that don't need it
			return nil, nil
		}

		// Load and return the config
		return LoadConfigFile(consts.ConfigFile)
	},
	func(c *Config) *format.Formatter {
		return c.GetFormatter()
	},
))
