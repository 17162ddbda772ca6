// Package cmd provides CLI commands for the tagfmt tool.
//
// This package implements the command-line interface for tagfmt, providing
// commands for project scaffolding and template formatting. It supports both
// standalone file operations and project-based workflows.
//
// # Available Commands
//
// The cmd package currently provides:
//   - init: Initialize a new tagfmt project structure
//   - fmt: Format template files in place or to stdout
//   - check: Report files whose content is not canonically formatted
//
// # Command Structure
//
// Each command is implemented as a separate function that returns a
// *cli.Command, following the urfave/cli/v3 pattern. Commands are designed
// to be composable and testable, with proper error handling and
// comprehensive help text.
//
// # Global Options
//
// All commands support global flags:
//   - --dir, -d: Specify project directory (defaults to current directory)
//   - --help, -h: Display command help
//   - --version: Display version information
package cmd
