package format_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	. "github.com/pseudomuto/tagfmt/pkg/format"
	"github.com/stretchr/testify/require"
	"gotest.tools/v3/golden"
)

func TestGoldenFiles(t *testing.T) {
	testdataDir := "testdata"

	// Find all *.in.tgx files
	pattern := filepath.Join(testdataDir, "*.in.tgx")
	matches, err := filepath.Glob(pattern)
	require.NoError(t, err)
	require.NotEmpty(t, matches, "No *.in.tgx files found in testdata directory")

	for _, inputFile := range matches {
		// Derive output filename: "example.in.tgx" -> "example.tgx"
		basename := filepath.Base(inputFile)
		outputName := strings.TrimSuffix(basename, ".in.tgx") + ".tgx"

		t.Run(outputName, func(t *testing.T) {
			src, err := os.ReadFile(inputFile)
			require.NoError(t, err, "Failed to read input file %s", inputFile)

			result, err := Source(src, Defaults)
			require.NoError(t, err, "Failed to format %s", inputFile)

			// Compare with golden file
			golden.Assert(t, string(result), outputName)

			// Formatting is a fixpoint: the golden output formats to itself.
			again, err := Source(result, Defaults)
			require.NoError(t, err)
			require.Equal(t, string(result), string(again))
		})
	}
}
