package cmd

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pseudomuto/tagfmt/pkg/consts"
	"github.com/pseudomuto/tagfmt/pkg/format"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v3"
)

func TestFmtCommand_RequiresPath(t *testing.T) {
	// Test that fmt command requires a path argument
	command := fmtCmd(format.New(format.Defaults))

	// Create a test CLI app (no arguments provided)
	app := &cli.Command{
		Name:   "test",
		Flags:  command.Flags,
		Action: command.Action,
	}

	ctx := context.Background()
	err := app.Run(ctx, []string{"test"}) // No path argument
	require.Error(t, err)
	require.Contains(t, err.Error(), "exactly one path argument is required")
}

func TestFmtCommand_SingleFile(t *testing.T) {
	// Test formatting a single file to stdout
	tmpDir := t.TempDir()

	// Create a template file with unformatted content
	tmplFile := filepath.Join(tmpDir, "test.tgx")
	unformatted := "<div>\n<p>Hello   there</p>\n\n\n\n<p>Goodbye</p>\n</div>"
	err := os.WriteFile(tmplFile, []byte(unformatted), consts.ModeFile)
	require.NoError(t, err)

	command := fmtCmd(format.New(format.Defaults))

	// Create a test CLI app
	var buf bytes.Buffer
	app := &cli.Command{
		Name:   "test",
		Flags:  command.Flags,
		Action: command.Action,
		Writer: &buf,
	}

	ctx := context.Background()
	err = app.Run(ctx, []string{"test", tmplFile})
	require.NoError(t, err)

	// Check that output is formatted
	output := buf.String()
	require.Equal(t, "<div>\n  <p>Hello there</p>\n\n  <p>Goodbye</p>\n</div>\n", output)

	// Source file is untouched without -w
	content, err := os.ReadFile(tmplFile)
	require.NoError(t, err)
	require.Equal(t, unformatted, string(content))
}

func TestFmtCommand_SingleFileWriteBack(t *testing.T) {
	// Test formatting a single file with write-back
	tmpDir := t.TempDir()

	// Create a template file with unformatted content
	tmplFile := filepath.Join(tmpDir, "test.tgx")
	unformatted := "<div>\n<p>Hello</p>\n</div>"
	err := os.WriteFile(tmplFile, []byte(unformatted), consts.ModeFile)
	require.NoError(t, err)

	command := fmtCmd(format.New(format.Defaults))

	// Create a test CLI app
	app := &cli.Command{
		Name:   "test",
		Flags:  command.Flags,
		Action: command.Action,
	}

	ctx := context.Background()
	err = app.Run(ctx, []string{"test", "-w", tmplFile})
	require.NoError(t, err)

	// Check that file was modified
	content, err := os.ReadFile(tmplFile)
	require.NoError(t, err)
	require.Equal(t, "<div>\n  <p>Hello</p>\n</div>\n", string(content))
}

func TestFmtCommand_RecursiveDirectory(t *testing.T) {
	// Test formatting template files recursively in subdirectories
	tmpDir := t.TempDir()
	subDir := filepath.Join(tmpDir, "partials")
	err := os.MkdirAll(subDir, consts.ModeDir)
	require.NoError(t, err)

	// Create template files in both directories
	file1 := filepath.Join(tmpDir, "root.tgx")
	file2 := filepath.Join(subDir, "card.tgx")

	err = os.WriteFile(file1, []byte("<p>root</p>"), consts.ModeFile)
	require.NoError(t, err)
	err = os.WriteFile(file2, []byte("<p>card</p>"), consts.ModeFile)
	require.NoError(t, err)

	command := fmtCmd(format.New(format.Defaults))

	// Create a test CLI app
	var buf bytes.Buffer
	app := &cli.Command{
		Name:   "test",
		Flags:  command.Flags,
		Action: command.Action,
		Writer: &buf,
	}

	ctx := context.Background()
	err = app.Run(ctx, []string{"test", tmpDir})
	require.NoError(t, err)

	// Should have formatted both files
	output := buf.String()
	require.Contains(t, output, "root")
	require.Contains(t, output, "card")
}

func TestFmtCommand_DirectoryWriteBack(t *testing.T) {
	// Test formatting directory with write-back
	tmpDir := t.TempDir()

	file1 := filepath.Join(tmpDir, "one.tgx")
	file2 := filepath.Join(tmpDir, "two.tgx")

	err := os.WriteFile(file1, []byte("<div>\n<p>one</p>\n</div>"), consts.ModeFile)
	require.NoError(t, err)
	err = os.WriteFile(file2, []byte("<div>\n<p>two</p>\n</div>"), consts.ModeFile)
	require.NoError(t, err)

	command := fmtCmd(format.New(format.Defaults))

	// Create a test CLI app
	app := &cli.Command{
		Name:   "test",
		Flags:  command.Flags,
		Action: command.Action,
	}

	ctx := context.Background()
	err = app.Run(ctx, []string{"test", "-w", tmpDir})
	require.NoError(t, err)

	// Check that both files were modified
	content1, err := os.ReadFile(file1)
	require.NoError(t, err)
	content2, err := os.ReadFile(file2)
	require.NoError(t, err)

	require.Equal(t, "<div>\n  <p>one</p>\n</div>\n", string(content1))
	require.Equal(t, "<div>\n  <p>two</p>\n</div>\n", string(content2))
}

func TestFmtCommand_NonexistentPath(t *testing.T) {
	// Test formatting nonexistent path
	command := fmtCmd(format.New(format.Defaults))

	// Create a test CLI app
	app := &cli.Command{
		Name:   "test",
		Flags:  command.Flags,
		Action: command.Action,
	}

	ctx := context.Background()
	err := app.Run(ctx, []string{"test", "/nonexistent/path"})
	require.Error(t, err)
	require.Contains(t, err.Error(), "failed to access path")
}

func TestFmtCommand_InvalidTemplate(t *testing.T) {
	// Test formatting file with mismatched tags
	tmpDir := t.TempDir()

	tmplFile := filepath.Join(tmpDir, "invalid.tgx")
	err := os.WriteFile(tmplFile, []byte("<div><p>oops</div>"), consts.ModeFile)
	require.NoError(t, err)

	command := fmtCmd(format.New(format.Defaults))

	// Create a test CLI app
	app := &cli.Command{
		Name:   "test",
		Flags:  command.Flags,
		Action: command.Action,
	}

	ctx := context.Background()
	err = app.Run(ctx, []string{"test", tmplFile})
	require.Error(t, err)
	require.Contains(t, err.Error(), "failed to format template")
}

func TestFmtCommand_EmptyDirectory(t *testing.T) {
	// Test formatting a directory with no template files
	tmpDir := t.TempDir()

	// Create non-template file
	txtFile := filepath.Join(tmpDir, "readme.txt")
	err := os.WriteFile(txtFile, []byte("Not a template"), consts.ModeFile)
	require.NoError(t, err)

	command := fmtCmd(format.New(format.Defaults))

	// Create a test CLI app
	app := &cli.Command{
		Name:   "test",
		Flags:  command.Flags,
		Action: command.Action,
	}

	ctx := context.Background()
	err = app.Run(ctx, []string{"test", tmpDir})
	require.Error(t, err)
	require.Contains(t, err.Error(), "no template files found")
}

func TestFmtCommand_FlagConfiguration(t *testing.T) {
	// Test that flags are configured correctly
	command := fmtCmd(format.New(format.Defaults))

	require.Equal(t, "fmt", command.Name)
	require.Equal(t, "Format template files", command.Usage)
	require.Equal(t, "<path>", command.ArgsUsage)
	require.Len(t, command.Flags, 1)

	// Check write flag
	writeFlag := command.Flags[0].(*cli.BoolFlag)
	require.Equal(t, "write", writeFlag.Name)
	require.Equal(t, []string{"w"}, writeFlag.Aliases)
}

func TestFmtCommand_MultipleArguments(t *testing.T) {
	// Test that command rejects multiple arguments
	command := fmtCmd(format.New(format.Defaults))

	// Create a test CLI app
	app := &cli.Command{
		Name:   "test",
		Flags:  command.Flags,
		Action: command.Action,
	}

	ctx := context.Background()
	err := app.Run(ctx, []string{"test", "one.tgx", "two.tgx"})
	require.Error(t, err)
	require.Contains(t, err.Error(), "exactly one path argument is required")
}

func TestFmtCommand_EmptyFile(t *testing.T) {
	// Test formatting an empty template file
	tmpDir := t.TempDir()

	tmplFile := filepath.Join(tmpDir, "empty.tgx")
	err := os.WriteFile(tmplFile, []byte(""), consts.ModeFile)
	require.NoError(t, err)

	command := fmtCmd(format.New(format.Defaults))

	// Create a test CLI app
	var buf bytes.Buffer
	app := &cli.Command{
		Name:   "test",
		Flags:  command.Flags,
		Action: command.Action,
		Writer: &buf,
	}

	ctx := context.Background()
	err = app.Run(ctx, []string{"test", tmplFile})
	require.NoError(t, err)

	// Empty file should produce empty output
	require.Empty(t, strings.TrimSpace(buf.String()))
}
