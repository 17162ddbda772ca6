package format

import (
	"io"

	"github.com/pkg/errors"
	"github.com/pseudomuto/tagfmt/pkg/classify"
	"github.com/pseudomuto/tagfmt/pkg/consts"
	"github.com/pseudomuto/tagfmt/pkg/gofmt"
	"github.com/pseudomuto/tagfmt/pkg/markup"
	"github.com/pseudomuto/tagfmt/pkg/parser"
)

type (
	// ExpressionFormatter formats embedded expression snippets. It must be
	// deterministic and idempotent, and report invalid syntax with an error
	// rather than panicking. The layout engine treats it as a black box so
	// tests can substitute a stub.
	ExpressionFormatter interface {
		FormatExpression(raw string) (string, error)
	}

	// Options controls formatting behavior. The indentation unit (2 columns)
	// and blank-line collapsing are fixed by design and not configurable.
	Options struct {
		// LineLength is the budget for a single-line opening tag; a rendering
		// that exceeds it wraps attributes one per line. Zero means the
		// default of 98.
		LineLength int

		// Expressions overrides the expression formatter. Nil means the Go
		// expression formatter from pkg/gofmt.
		Expressions ExpressionFormatter
	}

	// Formatter renders annotated markup trees as canonical template text.
	Formatter struct {
		options Options
	}
)

// Defaults are the standard formatting options.
var Defaults = Options{LineLength: consts.DefaultLineLength}

// New creates a new Formatter with the specified options.
func New(options Options) *Formatter {
	if options.LineLength <= 0 {
		options.LineLength = consts.DefaultLineLength
	}
	if options.Expressions == nil {
		options.Expressions = gofmt.New()
	}
	return &Formatter{options: options}
}

// Format renders an annotated tree to w. The output is newline-terminated,
// except that a document with no content at all renders as the empty
// string, and contains no runs of more than one blank line. Formatting
// fails only when the expression formatter rejects a snippet, in which case
// nothing is written to w.
func (f *Formatter) Format(w io.Writer, doc *markup.Document) error {
	r := &renderer{options: f.options}
	if err := r.document(doc); err != nil {
		return err
	}

	if _, err := io.WriteString(w, r.buf.String()); err != nil {
		return errors.Wrap(err, "failed to write formatted document")
	}

	return nil
}

// Source formats raw template source end to end: parse, classify, render.
// A source with no content yields an empty result. Structural errors from
// the parser and expression errors from the formatter are returned as-is;
// no partial output is produced.
func (f *Formatter) Source(src []byte) ([]byte, error) {
	doc, err := parser.ParseString(string(src))
	if err != nil {
		return nil, err
	}

	tree := classify.Classify(doc, string(src))

	r := &renderer{options: f.options}
	if err := r.document(tree); err != nil {
		return nil, err
	}

	return []byte(r.buf.String()), nil
}

// Format renders an annotated tree (convenience function).
func Format(w io.Writer, options Options, doc *markup.Document) error {
	return New(options).Format(w, doc)
}

// Source formats raw template source (convenience function).
func Source(src []byte, options Options) ([]byte, error) {
	return New(options).Source(src)
}
