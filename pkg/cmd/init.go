package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/pkg/errors"
	"github.com/pseudomuto/tagfmt/pkg/format"
	"github.com/pseudomuto/tagfmt/pkg/project"
	"github.com/urfave/cli/v3"
)

// initCmd creates a CLI command that scaffolds a new tagfmt project in the
// current directory. Initialization is idempotent: existing files and
// directories are preserved, only missing pieces are created.
//
// Flags:
//   - --line-length: Single-line budget written to the generated tagfmt.yaml
//
// Examples:
//
//	# Scaffold a project with defaults
//	tagfmt init
//
//	# Scaffold with a wider line budget
//	tagfmt init --line-length 120
func initCmd(formatter *format.Formatter) *cli.Command {
	return &cli.Command{
		Name:  "init",
		Usage: "Initialize a new tagfmt project",
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:  "line-length",
				Usage: "Single-line budget for opening tags",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			pwd, err := os.Getwd()
			if err != nil {
				return errors.Wrap(err, "failed to get current working directory")
			}

			proj := project.New(project.ProjectParams{
				Dir:       pwd,
				Formatter: formatter,
			})

			options := project.InitOptions{LineLength: int(cmd.Int("line-length"))}
			if err := proj.Initialize(options); err != nil {
				return errors.Wrap(err, "failed to initialize project")
			}

			fmt.Fprintln(cmd.Writer, "Project initialized in", pwd)
			return nil
		},
	}
}
