package cmd

import (
	"bytes"
	"context"
	"fmt"
	"os"

	"github.com/pkg/errors"
	"github.com/pseudomuto/tagfmt/pkg/consts"
	"github.com/pseudomuto/tagfmt/pkg/format"
	"github.com/urfave/cli/v3"
)

// checkCmd creates a CLI command that reports template files whose content
// differs from their canonical formatting. Nothing is rewritten; the command
// lists each unformatted file and fails when any are found, making it
// suitable for CI gates.
//
// With no arguments the command checks the detected project's configured
// template directory, which requires a tagfmt.yaml. An explicit path
// argument works without project configuration.
//
// Examples:
//
//	# Check the project's template directory
//	tagfmt check
//
//	# Check a single file
//	tagfmt check templates/index.tgx
//
//	# Check all template files in a directory tree
//	tagfmt check templates/
func checkCmd(formatter *format.Formatter) *cli.Command {
	return &cli.Command{
		Name:      "check",
		Usage:     "Report template files that are not canonically formatted",
		ArgsUsage: "[path]",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			if cmd.Args().Len() > 1 {
				return errors.New("at most one path argument is allowed")
			}

			files, err := checkTargets(cmd.Args().First())
			if err != nil {
				return err
			}

			var unformatted []string
			for _, file := range files {
				content, err := os.ReadFile(file)
				if err != nil {
					return errors.Wrapf(err, "failed to read file: %s", file)
				}

				formatted, err := formatter.Source(content)
				if err != nil {
					return errors.Wrapf(err, "failed to format template in file: %s", file)
				}

				if !bytes.Equal(content, formatted) {
					unformatted = append(unformatted, file)
				}
			}

			for _, file := range unformatted {
				fmt.Fprintln(cmd.Writer, file)
			}

			if len(unformatted) > 0 {
				return errors.Errorf("%d file(s) not formatted", len(unformatted))
			}

			return nil
		},
	}
}

// checkTargets resolves the files to check. An empty path means project
// mode: the detected project's template directory.
func checkTargets(path string) ([]string, error) {
	if path == "" {
		if currentProject == nil {
			return nil, errors.Errorf("%s not found", consts.ConfigFile)
		}

		files, err := currentProject.TemplateFiles()
		if err != nil {
			return nil, err
		}

		if len(files) == 0 {
			return nil, errors.New("no template files found in project")
		}

		return files, nil
	}

	info, err := os.Stat(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to access path: %s", path)
	}

	if !info.IsDir() {
		return []string{path}, nil
	}

	files, err := templateFilesIn(path)
	if err != nil {
		return nil, err
	}

	if len(files) == 0 {
		return nil, errors.Errorf("no template files found in directory: %s", path)
	}

	return files, nil
}
