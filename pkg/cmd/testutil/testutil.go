// Package testutil provides helpers for exercising CLI commands in tests,
// including isolated project fixtures backed by temporary directories.
package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/pseudomuto/tagfmt/pkg/consts"
	"github.com/pseudomuto/tagfmt/pkg/format"
	"github.com/pseudomuto/tagfmt/pkg/project"
	"github.com/stretchr/testify/require"
)

// ProjectFixture represents a test project environment with all necessary dependencies
type ProjectFixture struct {
	Dir       string
	Project   *project.Project
	Formatter *format.Formatter
	t         *testing.T
}

// TestProject creates an isolated temp directory with an initialized tagfmt project
func TestProject(t *testing.T) *ProjectFixture {
	t.Helper()

	tmpDir := t.TempDir()

	proj := project.New(project.ProjectParams{
		Dir:       tmpDir,
		Formatter: format.New(format.Defaults),
	})

	fixture := &ProjectFixture{
		Dir:       tmpDir,
		Project:   proj,
		Formatter: format.New(format.Defaults),
		t:         t,
	}

	// Initialize the project with default settings
	err := proj.Initialize(project.InitOptions{})
	require.NoError(t, err, "Failed to initialize test project")

	return fixture
}

// WriteTemplate writes a template file beneath the fixture's templates
// directory and returns its full path.
func (f *ProjectFixture) WriteTemplate(name, content string) string {
	f.t.Helper()

	path := filepath.Join(f.Dir, consts.DefaultTemplateDir, name)
	require.NoError(f.t, os.MkdirAll(filepath.Dir(path), consts.ModeDir))
	require.NoError(f.t, os.WriteFile(path, []byte(content), consts.ModeFile))

	return path
}

// ReadTemplate reads a template file beneath the fixture's templates directory.
func (f *ProjectFixture) ReadTemplate(name string) string {
	f.t.Helper()

	content, err := os.ReadFile(filepath.Join(f.Dir, consts.DefaultTemplateDir, name))
	require.NoError(f.t, err)

	return string(content)
}
