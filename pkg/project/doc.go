// Package project provides template project management capabilities
// including project initialization and template file discovery.
//
// # Project Management
//
// The project package enables structured management of template sources
// through a standardized project layout and configuration system. It
// provides idempotent project initialization that creates the necessary
// directory structure and configuration files while preserving existing
// content.
//
// # Project Structure
//
// A tagfmt project follows this standard layout:
//
//	project-root/
//	├── tagfmt.yaml             # Formatter configuration
//	└── templates/
//	    └── index.tgx           # Template sources
//
// The templates directory name is configurable through the dir key in
// tagfmt.yaml; TemplateFiles discovers .tgx files beneath whichever
// directory the configuration names.
package project
