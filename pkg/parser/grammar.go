package parser

import (
	"strings"

	"github.com/alecthomas/participle/v2/lexer"
)

type (
	// Document is the root of a raw node tree.
	Document struct {
		Pos    lexer.Position
		EndPos lexer.Position

		Nodes []*Node `parser:"@@*"`
	}

	// Node is the union of the raw node variants. Exactly one field is set.
	Node struct {
		Comment *Comment       `parser:"@@"`
		Element *Element       `parser:"| @@"`
		Interp  *Interpolation `parser:"| @@"`
		Text    *Text          `parser:"| @@"`
	}

	// Element is a tag with its attributes and children. For self-closing
	// tags Children is empty and CloseName is unset.
	Element struct {
		Pos    lexer.Position
		EndPos lexer.Position

		Name      string  `parser:"Open @Ident"`
		Attrs     []*Attr `parser:"@@*"`
		SelfClose bool    `parser:"( @SelfClose"`
		Children  []*Node `parser:"| Close @@*"`
		CloseName string  `parser:"  CloseOpen @Ident Close )"`
	}

	// Attr is a single attribute. A nil Value means the attribute was bare
	// (boolean shorthand in the source).
	Attr struct {
		Pos    lexer.Position
		EndPos lexer.Position

		Name  string     `parser:"@Ident"`
		Value *AttrValue `parser:"( Eq @@ )?"`
	}

	// AttrValue is a quoted string literal (quotes included), an embedded
	// expression, or an unquoted integer or boolean literal. Unquoted
	// literals are the form the formatter itself emits for scalar values,
	// so formatted output parses back to an equivalent tree.
	AttrValue struct {
		Pos    lexer.Position
		EndPos lexer.Position

		String  *string `parser:"@String"`
		Expr    *Expr   `parser:"| ExprOpen @@ ExprClose"`
		Literal *string `parser:"| @( Number | Bool )"`
	}

	// Interpolation is an embedded expression used as a child node.
	Interpolation struct {
		Pos    lexer.Position
		EndPos lexer.Position

		Expr *Expr `parser:"ExprOpen @@ ExprClose"`
	}

	// Expr holds the verbatim source of an expression snippet, excluding the
	// outer "{{" and "}}" delimiters. Parts are the raw tokens in order;
	// Raw() reassembles them byte for byte.
	Expr struct {
		Pos    lexer.Position
		EndPos lexer.Position

		Parts []string `parser:"@( ExprText | LBrace | RBrace )*"`
	}

	// Text is a run of literal document text, whitespace included.
	Text struct {
		Pos    lexer.Position
		EndPos lexer.Position

		Content string `parser:"@Text+"`
	}

	// Comment is a markup comment, delimiters included.
	Comment struct {
		Pos    lexer.Position
		EndPos lexer.Position

		Raw string `parser:"@Comment"`
	}
)

// Raw returns the exact source text of the expression between its
// delimiters, including original line breaks.
func (e *Expr) Raw() string {
	return strings.Join(e.Parts, "")
}

// Position returns the start position of whichever variant is set.
func (n *Node) Position() lexer.Position {
	switch {
	case n.Comment != nil:
		return n.Comment.Pos
	case n.Element != nil:
		return n.Element.Pos
	case n.Interp != nil:
		return n.Interp.Pos
	default:
		return n.Text.Pos
	}
}

// End returns the end position of whichever variant is set.
func (n *Node) End() lexer.Position {
	switch {
	case n.Comment != nil:
		return n.Comment.EndPos
	case n.Element != nil:
		return n.Element.EndPos
	case n.Interp != nil:
		return n.Interp.EndPos
	default:
		return n.Text.EndPos
	}
}
