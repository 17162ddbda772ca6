package consts

import "os"

const (
	// ModeDir is the standard file mode for creating directories
	ModeDir = os.FileMode(0o755)

	// ModeFile is the standard file mode for creating files
	ModeFile = os.FileMode(0o644)

	// ConfigFile is the name of the project configuration file
	ConfigFile = "tagfmt.yaml"

	// TemplateExt is the file extension for tag-expression templates
	TemplateExt = ".tgx"

	// DefaultLineLength is the line-length budget used when none is configured
	DefaultLineLength = 98

	// DefaultTemplateDir is the directory scaffolded for template sources
	DefaultTemplateDir = "templates"
)
