package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/pkg/errors"
	"github.com/pseudomuto/tagfmt/pkg/consts"
	"github.com/pseudomuto/tagfmt/pkg/format"
	"github.com/pseudomuto/tagfmt/pkg/project"
	"github.com/urfave/cli/v3"
	"go.uber.org/fx"
)

// currentProject is set by the root command's Before hook when the working
// directory contains a tagfmt.yaml. Commands with a project mode (check with
// no arguments) resolve template files through it.
var currentProject *project.Project

type (
	Params struct {
		fx.In

		Args       []string
		Commands   []*cli.Command `group:"commands"`
		Ctx        context.Context
		Formatter  *format.Formatter
		Lifecycle  fx.Lifecycle
		Shutdowner fx.Shutdowner
		Version    *Version
	}

	Version struct {
		Version   string
		Commit    string
		Timestamp string
	}
)

// Run creates and executes the main tagfmt CLI application with the given
// version and command-line arguments. This function serves as the main entry
// point for all CLI operations and handles global configuration.
//
// The function creates a CLI application with:
//   - Global --dir flag for specifying project directory
//   - Project auto-detection based on tagfmt.yaml presence
//   - Command registration and routing
//   - Context propagation for cancellation support
//
// Global Flags:
//   - --dir, -d: Project directory (defaults to current directory)
//
// The application automatically detects tagfmt projects by looking for
// tagfmt.yaml in the specified directory. If found, it initializes the
// global currentProject variable for use by subcommands.
func Run(p Params) {
	cli.VersionPrinter = func(cmd *cli.Command) {
		fmt.Fprintln(cmd.Writer, "Version:", p.Version.Version)
		fmt.Fprintln(cmd.Writer, "Commit:", p.Version.Commit)
		fmt.Fprintln(cmd.Writer, "Date:", p.Version.Timestamp)
	}

	app := &cli.Command{
		Name:  "tagfmt",
		Usage: "A formatter for tag-based template files",
		Description: `tagfmt is a CLI tool that parses tag-based template files with embedded
expressions and rewrites them in a single canonical layout, so formatting
stays consistent no matter how the source was written.`,
		Version: p.Version.Version,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "dir",
				Aliases:     []string{"d"},
				Usage:       "the project directory",
				Value:       ".",
				DefaultText: "Current directory",
				Config: cli.StringConfig{
					TrimSpace: true,
				},
			},
		},
		Before: func(ctx context.Context, cmd *cli.Command) (context.Context, error) {
			projectDir := cmd.String("dir")

			// Change to project directory first
			if err := os.Chdir(projectDir); err != nil {
				return ctx, err
			}

			// Check if this is a tagfmt project
			_, err := os.Stat(consts.ConfigFile)
			if os.IsNotExist(err) {
				return ctx, nil
			}

			if err != nil {
				return ctx, err
			}

			// Create project instance with current working directory
			pwd, err := os.Getwd()
			if err != nil {
				return ctx, errors.Wrap(err, "failed to get current working directory")
			}

			// The injected formatter carries the project configuration's
			// line length.
			currentProject = project.New(project.ProjectParams{
				Dir:       pwd,
				Formatter: p.Formatter,
			})
			return ctx, nil
		},
		Commands: p.Commands,
	}

	p.Lifecycle.Append(fx.StartHook(func() {
		if err := app.Run(p.Ctx, p.Args); err != nil {
			slog.Error("Error running command", "err", err)
			_ = p.Shutdowner.Shutdown(fx.ExitCode(1))
		}

		_ = p.Shutdowner.Shutdown(fx.ExitCode(0))
	}))
}
