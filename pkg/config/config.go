package config

import (
	"io"
	"os"

	"github.com/pkg/errors"
	"github.com/pseudomuto/tagfmt/pkg/consts"
	"github.com/pseudomuto/tagfmt/pkg/format"
	"gopkg.in/yaml.v3"
)

type (
	// Format represents formatter-specific configuration settings.
	Format struct {
		// LineLength is the budget for a single-line opening tag. Opening
		// tags that would exceed it wrap one attribute per line.
		LineLength int `yaml:"line_length,omitempty"`
	}

	// Config represents the project configuration for template formatting.
	Config struct {
		// Format contains formatter-specific configuration settings
		Format Format `yaml:"format"`

		// Dir specifies the directory where template files are stored
		Dir string `yaml:"dir"`
	}
)

// LoadConfig parses a project configuration from the provided io.Reader.
//
// The function expects YAML-formatted configuration data naming the template
// directory and any formatter overrides. Unspecified values fall back to
// their defaults (templates directory, 98 column line budget).
//
// Example:
//
//	import (
//		"strings"
//		"github.com/pseudomuto/tagfmt/pkg/config"
//	)
//
//	yamlData := `
//	dir: templates
//	format:
//	  line_length: 120
//	`
//
//	cfg, err := config.LoadConfig(strings.NewReader(yamlData))
//	if err != nil {
//		panic(err)
//	}
//
//	fmt.Printf("Template dir: %s\n", cfg.Dir)
func LoadConfig(r io.Reader) (*Config, error) {
	var cfg Config
	if err := yaml.NewDecoder(r).Decode(&cfg); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal project config")
	}

	// Set default values if not specified
	if cfg.Dir == "" {
		cfg.Dir = consts.DefaultTemplateDir
	}
	if cfg.Format.LineLength == 0 {
		cfg.Format.LineLength = consts.DefaultLineLength
	}

	return &cfg, nil
}

// LoadConfigFile loads a project configuration from the specified file path.
// This is a convenience function that opens the file and calls LoadConfig.
//
// Example:
//
//	cfg, err := config.LoadConfigFile("tagfmt.yaml")
//	if err != nil {
//		log.Fatal("Failed to load config:", err)
//	}
//
//	fmt.Printf("Template dir: %s\n", cfg.Dir)
func LoadConfigFile(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open file: %s", path)
	}
	defer func() { _ = f.Close() }()

	return LoadConfig(f)
}

// GetFormatter creates a formatter configured from this config. A nil config
// yields a formatter with default options, so commands that run without a
// project file still format consistently.
func (c *Config) GetFormatter() *format.Formatter {
	options := format.Defaults
	if c != nil {
		options.LineLength = c.Format.LineLength
	}

	return format.New(options)
}
