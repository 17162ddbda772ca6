package format

import (
	"fmt"

	"github.com/alecthomas/participle/v2/lexer"
)

// ExpressionError reports that the expression formatter rejected a snippet.
// It identifies the enclosing element, the attribute (empty for an
// interpolation child), and the offending raw text, and aborts formatting of
// the whole document so no partially formatted output is ever produced.
type ExpressionError struct {
	Element string
	Attr    string
	Raw     string
	Pos     lexer.Position
	Err     error
}

// Error implements the error interface.
func (e *ExpressionError) Error() string {
	where := "document body"
	if e.Element != "" {
		where = "<" + e.Element + ">"
	}
	if e.Attr != "" {
		where = fmt.Sprintf("attribute %q of %s", e.Attr, where)
	}

	return fmt.Sprintf("%d:%d: failed to format expression in %s: %v (snippet %q)",
		e.Pos.Line, e.Pos.Column, where, e.Err, e.Raw)
}

// Unwrap returns the expression formatter's underlying error.
func (e *ExpressionError) Unwrap() error {
	return e.Err
}
