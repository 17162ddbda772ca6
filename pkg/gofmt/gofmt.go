package gofmt

import (
	"bytes"
	"go/format"
	"go/parser"
	"go/token"
	"strings"

	"github.com/pkg/errors"
)

// Formatter formats embedded Go expression snippets using go/parser and
// go/format. It is stateless: a single instance is safe for concurrent use.
type Formatter struct{}

// New returns a Go expression formatter.
func New() *Formatter {
	return &Formatter{}
}

// SyntaxError reports that a snippet is not a valid Go expression.
type SyntaxError struct {
	Raw string
	Err error
}

// Error implements the error interface.
func (e *SyntaxError) Error() string {
	return "invalid Go expression: " + e.Err.Error()
}

// Unwrap returns the underlying go/parser error.
func (e *SyntaxError) Unwrap() error {
	return e.Err
}

// FormatExpression pretty-prints a Go expression snippet. The result is
// deterministic and idempotent; leading tab indentation in multi-line output
// is converted to two-space units to match markup indentation. Invalid
// snippets fail with a *SyntaxError rather than partial output.
func (f *Formatter) FormatExpression(raw string) (string, error) {
	expr, err := parser.ParseExpr(raw)
	if err != nil {
		return "", &SyntaxError{Raw: raw, Err: err}
	}

	var buf bytes.Buffer
	if err := format.Node(&buf, token.NewFileSet(), expr); err != nil {
		return "", errors.Wrap(err, "failed to print Go expression")
	}

	return detab(buf.String()), nil
}

// detab rewrites leading tabs as two-space indents, line by line.
func detab(s string) string {
	if !strings.Contains(s, "\t") {
		return s
	}

	lines := strings.Split(s, "\n")
	for i, line := range lines {
		n := 0
		for n < len(line) && line[n] == '\t' {
			n++
		}
		if n > 0 {
			lines[i] = strings.Repeat("  ", n) + line[n:]
		}
	}

	return strings.Join(lines, "\n")
}
