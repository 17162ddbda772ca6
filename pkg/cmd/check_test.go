package cmd

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/pseudomuto/tagfmt/pkg/cmd/testutil"
	"github.com/pseudomuto/tagfmt/pkg/consts"
	"github.com/pseudomuto/tagfmt/pkg/format"
	"github.com/pseudomuto/tagfmt/pkg/project"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v3"
)

func checkApp(buf *bytes.Buffer) *cli.Command {
	command := checkCmd(format.New(format.Defaults))

	return &cli.Command{
		Name:   "test",
		Flags:  command.Flags,
		Action: command.Action,
		Writer: buf,
	}
}

// setCurrentProject installs a detected project for the duration of a test.
func setCurrentProject(t *testing.T, proj *project.Project) {
	t.Helper()

	currentProject = proj
	t.Cleanup(func() { currentProject = nil })
}

func TestCheckCommand_FormattedFile(t *testing.T) {
	tmpDir := t.TempDir()

	tmplFile := filepath.Join(tmpDir, "ok.tgx")
	err := os.WriteFile(tmplFile, []byte("<p>Hello</p>\n"), consts.ModeFile)
	require.NoError(t, err)

	var buf bytes.Buffer
	err = checkApp(&buf).Run(context.Background(), []string{"test", tmplFile})
	require.NoError(t, err)
	require.Empty(t, buf.String())
}

func TestCheckCommand_UnformattedFile(t *testing.T) {
	tmpDir := t.TempDir()

	tmplFile := filepath.Join(tmpDir, "bad.tgx")
	err := os.WriteFile(tmplFile, []byte("<div>\n<p>Hello</p>\n</div>"), consts.ModeFile)
	require.NoError(t, err)

	var buf bytes.Buffer
	err = checkApp(&buf).Run(context.Background(), []string{"test", tmplFile})
	require.Error(t, err)
	require.Contains(t, err.Error(), "1 file(s) not formatted")
	require.Contains(t, buf.String(), tmplFile)

	// The file itself is never rewritten
	content, err := os.ReadFile(tmplFile)
	require.NoError(t, err)
	require.Equal(t, "<div>\n<p>Hello</p>\n</div>", string(content))
}

func TestCheckCommand_Directory(t *testing.T) {
	tmpDir := t.TempDir()

	formatted := filepath.Join(tmpDir, "ok.tgx")
	unformatted := filepath.Join(tmpDir, "bad.tgx")

	require.NoError(t, os.WriteFile(formatted, []byte("<p>Hello</p>\n"), consts.ModeFile))
	require.NoError(t, os.WriteFile(unformatted, []byte("<p>Hello</p>"), consts.ModeFile))

	var buf bytes.Buffer
	err := checkApp(&buf).Run(context.Background(), []string{"test", tmpDir})
	require.Error(t, err)
	require.Contains(t, err.Error(), "1 file(s) not formatted")
	require.Contains(t, buf.String(), unformatted)
	require.NotContains(t, buf.String(), formatted)
}

func TestCheckCommand_ProjectMode(t *testing.T) {
	fixture := testutil.TestProject(t)
	fixture.WriteTemplate("bad.tgx", "<p>x</p>")
	t.Chdir(fixture.Dir)
	setCurrentProject(t, fixture.Project)

	// No path argument: files come from the detected project
	var buf bytes.Buffer
	err := checkApp(&buf).Run(context.Background(), []string{"test"})
	require.Error(t, err)
	require.Contains(t, err.Error(), "1 file(s) not formatted")
	require.Contains(t, buf.String(), filepath.Join("templates", "bad.tgx"))
	require.NotContains(t, buf.String(), "index.tgx")
}

func TestCheckCommand_ProjectModeEmpty(t *testing.T) {
	fixture := testutil.TestProject(t)
	require.NoError(t, os.Remove(filepath.Join(fixture.Dir, "templates", "index.tgx")))
	t.Chdir(fixture.Dir)
	setCurrentProject(t, fixture.Project)

	var buf bytes.Buffer
	err := checkApp(&buf).Run(context.Background(), []string{"test"})
	require.Error(t, err)
	require.Contains(t, err.Error(), "no template files found in project")
}

func TestCheckCommand_FreshProjectIsFormatted(t *testing.T) {
	fixture := testutil.TestProject(t)

	// The scaffolded example template passes the check as-is
	var buf bytes.Buffer
	err := checkApp(&buf).Run(context.Background(), []string{"test", filepath.Join(fixture.Dir, "templates")})
	require.NoError(t, err)
	require.Empty(t, buf.String())

	// Perturbing it makes the check fail
	fixture.WriteTemplate("index.tgx", "<p>changed</p>")
	err = checkApp(&buf).Run(context.Background(), []string{"test", filepath.Join(fixture.Dir, "templates")})
	require.Error(t, err)
	require.Contains(t, err.Error(), "1 file(s) not formatted")
}

func TestCheckCommand_NoConfigNoArgs(t *testing.T) {
	var buf bytes.Buffer
	err := checkApp(&buf).Run(context.Background(), []string{"test"})
	require.Error(t, err)
	require.Contains(t, err.Error(), "tagfmt.yaml not found")
}

func TestCheckCommand_InvalidTemplate(t *testing.T) {
	tmpDir := t.TempDir()

	tmplFile := filepath.Join(tmpDir, "invalid.tgx")
	require.NoError(t, os.WriteFile(tmplFile, []byte("<div><p>oops</div>"), consts.ModeFile))

	var buf bytes.Buffer
	err := checkApp(&buf).Run(context.Background(), []string{"test", tmplFile})
	require.Error(t, err)
	require.Contains(t, err.Error(), "failed to format template")
}
