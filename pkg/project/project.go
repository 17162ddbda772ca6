package project

import (
	_ "embed"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"testing/fstest"

	"github.com/pkg/errors"
	"github.com/pseudomuto/tagfmt/pkg/config"
	"github.com/pseudomuto/tagfmt/pkg/consts"
	"github.com/pseudomuto/tagfmt/pkg/format"
	"gopkg.in/yaml.v3"
)

var (
	//go:embed embed/index.tgx
	defaultTemplate []byte

	//go:embed embed/tagfmt.yaml
	defaultConfig []byte

	image = fstest.MapFS{
		"templates":           {Mode: os.ModeDir | 0o755},
		"templates/index.tgx": {Data: defaultTemplate},
		"tagfmt.yaml":         {Data: defaultConfig},
	}
)

type (
	// InitOptions contains options for project initialization
	InitOptions struct {
		// LineLength overrides the single-line budget written to the project
		// configuration. Zero keeps the default.
		LineLength int
	}

	// ProjectParams contains the dependencies needed to create a Project
	ProjectParams struct {
		// Dir is the project root directory
		Dir string

		// Formatter renders template files for this project
		Formatter *format.Formatter
	}

	Project struct {
		root      string
		formatter *format.Formatter
		config    *config.Config
	}
)

// New creates a new Project instance for managing template projects.
// The directory should point to an existing directory that will serve as
// the project root.
//
// Example:
//
//	// Create a new project in an existing directory
//	proj := project.New(project.ProjectParams{
//		Dir:       "/path/to/my/site",
//		Formatter: format.New(format.Defaults),
//	})
//
//	// Initialize the project structure and configuration
//	if err := proj.Initialize(project.InitOptions{}); err != nil {
//		log.Fatal(err)
//	}
func New(params ProjectParams) *Project {
	return &Project{root: params.Dir, formatter: params.Formatter}
}

// Initialize sets up the project directory structure and loads the
// configuration with the provided initialization options. This method is
// idempotent - it will only create missing files and directories, preserving
// any existing content. It creates the standard tagfmt project structure: a
// templates directory with an example template and a tagfmt.yaml
// configuration file.
//
// Example:
//
//	proj := project.New(project.ProjectParams{Dir: dir, Formatter: fmtr})
//	options := project.InitOptions{LineLength: 120}
//	if err := proj.Initialize(options); err != nil {
//		log.Fatal("Failed to initialize project:", err)
//	}
//
//	// Or with defaults:
//	if err := proj.Initialize(project.InitOptions{}); err != nil {
//		log.Fatal("Failed to initialize project:", err)
//	}
func (p *Project) Initialize(options InitOptions) error {
	// Ensure the root directory exists and is valid
	if err := p.ensureDirectory(); err != nil {
		return err
	}

	// Walk the embedded FS and create missing files/directories
	for path, entry := range image {
		fullPath := filepath.Join(p.root, path)

		// Check if the entry already exists
		if _, err := os.Stat(fullPath); err == nil {
			// Entry exists, skip it
			continue
		} else if !os.IsNotExist(err) {
			// Some other error occurred
			return errors.Wrapf(err, "failed to stat %s", fullPath)
		}

		// Entry doesn't exist, create it
		if entry.Mode.IsDir() {
			// Create directory
			if err := os.MkdirAll(fullPath, entry.Mode.Perm()); err != nil {
				return errors.Wrapf(err, "failed to create directory %s", fullPath)
			}

			continue
		}

		// Ensure parent directory exists
		parentDir := filepath.Dir(fullPath)
		if err := os.MkdirAll(parentDir, consts.ModeDir); err != nil {
			return errors.Wrapf(err, "failed to create parent directory %s", parentDir)
		}

		// Create file with embedded content
		if err := os.WriteFile(fullPath, entry.Data, consts.ModeFile); err != nil {
			return errors.Wrapf(err, "failed to write file %s", fullPath)
		}
	}

	cfg, err := config.LoadConfigFile(filepath.Join(p.root, consts.ConfigFile))
	if err != nil {
		return errors.Wrapf(err, "failed to load %s", consts.ConfigFile)
	}

	// Apply custom options if provided
	if options.LineLength > 0 {
		cfg.Format.LineLength = options.LineLength

		// Write the updated config back to the file
		configPath := filepath.Join(p.root, consts.ConfigFile)
		configFile, err := os.Create(configPath)
		if err != nil {
			return errors.Wrapf(err, "failed to open config file for writing: %s", configPath)
		}
		defer configFile.Close()

		// Use yaml.NewEncoder to write the updated config
		encoder := yaml.NewEncoder(configFile)
		if err := encoder.Encode(cfg); err != nil {
			return errors.Wrap(err, "failed to write updated config")
		}
		if err := encoder.Close(); err != nil {
			return errors.Wrap(err, "failed to close yaml encoder")
		}
	}

	p.config = cfg

	// Create the template directory if the config points somewhere custom
	templateDir := filepath.Join(p.root, cfg.Dir)
	if _, err := os.Stat(templateDir); os.IsNotExist(err) {
		if err := os.MkdirAll(templateDir, consts.ModeDir); err != nil {
			return errors.Wrapf(err, "failed to create template directory %s", templateDir)
		}
	}

	return nil
}

// Config returns the loaded project configuration. It loads the project's
// tagfmt.yaml on first use when the project was not initialized through
// Initialize.
func (p *Project) Config() (*config.Config, error) {
	if p.config != nil {
		return p.config, nil
	}

	cfg, err := config.LoadConfigFile(filepath.Join(p.root, consts.ConfigFile))
	if err != nil {
		return nil, errors.Wrapf(err, "failed to load %s", consts.ConfigFile)
	}

	p.config = cfg
	return cfg, nil
}

// TemplateFiles returns all template files under the project's configured
// template directory, in lexicographical order. Paths are relative to the
// project root.
func (p *Project) TemplateFiles() ([]string, error) {
	cfg, err := p.Config()
	if err != nil {
		return nil, err
	}

	var files []string
	root := filepath.Join(p.root, cfg.Dir)
	err = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if !d.IsDir() && strings.HasSuffix(strings.ToLower(d.Name()), consts.TemplateExt) {
			rel, err := filepath.Rel(p.root, path)
			if err != nil {
				return err
			}

			files = append(files, rel)
		}

		return nil
	})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to walk template directory: %s", root)
	}

	sort.Strings(files)
	return files, nil
}

// Formatter returns the formatter associated with this project.
func (p *Project) Formatter() *format.Formatter {
	return p.formatter
}

func (p *Project) ensureDirectory() error {
	dir, err := os.Stat(p.root)
	if err != nil {
		return errors.Wrapf(err, "failed to stat dir: %s", p.root)
	}

	if !dir.IsDir() {
		return errors.Errorf("%s is not a directory", p.root)
	}

	return nil
}
