package cmd

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/pkg/errors"
	"github.com/pseudomuto/tagfmt/pkg/consts"
	"github.com/pseudomuto/tagfmt/pkg/format"
	"github.com/urfave/cli/v3"
)

// fmtCmd creates a CLI command for formatting template files. This command
// provides gofmt-like functionality for templates, allowing users to format
// individual files or entire directory trees recursively.
//
// The command supports two output modes:
//   - Stdout mode (default): Formatted output is written to standard output
//   - Write mode (-w flag): Files are modified in-place with formatted content
//
// Path handling:
//   - File paths: Format the specified template file directly
//   - Directory paths: Recursively find and format all .tgx files
//   - Glob patterns: Not supported (use explicit file/directory paths)
//
// Flags:
//   - -w: Write formatted results back to source files instead of stdout
//
// Examples:
//
//	# Format single file to stdout
//	tagfmt fmt templates/index.tgx
//
//	# Format single file in-place
//	tagfmt fmt -w templates/index.tgx
//
//	# Format all template files in directory tree in-place
//	tagfmt fmt -w templates/
//
// All templates must be structurally valid - files with mismatched tags or
// expressions that do not parse will cause the command to fail, and no
// partial output is written for them.
func fmtCmd(formatter *format.Formatter) *cli.Command {
	return &cli.Command{
		Name:      "fmt",
		Usage:     "Format template files",
		ArgsUsage: "<path>",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:    "write",
				Aliases: []string{"w"},
				Usage:   "Write result to source files instead of stdout",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			if cmd.Args().Len() != 1 {
				return errors.New("exactly one path argument is required")
			}

			path := cmd.Args().First()
			writeBack := cmd.Bool("write")

			return formatPath(formatter, path, writeBack, cmd.Writer)
		},
	}
}

// formatPath handles formatting of either a single file or directory
// recursively. It determines the input type (file vs directory) and
// dispatches to the appropriate formatting function.
func formatPath(formatter *format.Formatter, path string, writeBack bool, writer io.Writer) error {
	info, err := os.Stat(path)
	if err != nil {
		return errors.Wrapf(err, "failed to access path: %s", path)
	}

	if info.IsDir() {
		return formatDirectory(formatter, path, writeBack, writer)
	}

	return formatFile(formatter, path, writeBack, writer)
}

// formatDirectory recursively walks through a directory and formats all .tgx
// files. It processes files in lexicographical order for consistent behavior
// across platforms.
func formatDirectory(formatter *format.Formatter, dir string, writeBack bool, writer io.Writer) error {
	files, err := templateFilesIn(dir)
	if err != nil {
		return err
	}

	if len(files) == 0 {
		return errors.Errorf("no template files found in directory: %s", dir)
	}

	for _, file := range files {
		if err := formatFile(formatter, file, writeBack, writer); err != nil {
			return errors.Wrapf(err, "failed to format file: %s", file)
		}
	}

	return nil
}

// formatFile formats a single template file and either writes to stdout or
// back to the file.
func formatFile(formatter *format.Formatter, path string, writeBack bool, writer io.Writer) error {
	// Read file content
	content, err := os.ReadFile(path)
	if err != nil {
		return errors.Wrapf(err, "failed to read file: %s", path)
	}

	formatted, err := formatter.Source(content)
	if err != nil {
		return errors.Wrapf(err, "failed to format template in file: %s", path)
	}

	if writeBack {
		// Write back to the original file
		if err := os.WriteFile(path, formatted, consts.ModeFile); err != nil {
			return errors.Wrapf(err, "failed to write formatted content to file: %s", path)
		}
	} else {
		// For single files, just write the formatted content
		// For directories, we don't need file separators since each file is processed separately
		if _, err := fmt.Fprint(writer, string(formatted)); err != nil {
			return errors.Wrap(err, "failed to write formatted content to output")
		}
	}

	return nil
}
