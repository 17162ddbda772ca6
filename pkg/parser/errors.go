package parser

import (
	"fmt"

	"github.com/alecthomas/participle/v2/lexer"
)

// StructuralError reports a malformed document: input that cannot be lexed
// or parsed, or a closing tag that does not match its opening tag. It is
// returned before any formatting output is produced.
type StructuralError struct {
	Pos     lexer.Position
	Message string
}

// Error implements the error interface.
func (e *StructuralError) Error() string {
	if e.Pos.Line == 0 {
		return e.Message
	}
	return fmt.Sprintf("%d:%d: %s", e.Pos.Line, e.Pos.Column, e.Message)
}
