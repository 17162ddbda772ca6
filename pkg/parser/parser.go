package parser

import (
	"io"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
	"github.com/pkg/errors"
)

var (
	// markupLexer is a stateful lexer for tag-expression markup. Text, tags,
	// and expressions each lex in their own state so that whitespace is only
	// elided inside tags; everywhere else it is part of the token text and
	// survives for the whitespace classifier to inspect.
	markupLexer = lexer.MustStateful(lexer.Rules{
		"Root": {
			{Name: "Comment", Pattern: `<!--(?s:.*?)-->`},
			{Name: "CloseOpen", Pattern: `</`, Action: lexer.Push("Tag")},
			{Name: "Open", Pattern: `<`, Action: lexer.Push("Tag")},
			{Name: "ExprOpen", Pattern: `\{\{`, Action: lexer.Push("Expr")},
			{Name: "Text", Pattern: `[^<{]+|\{`},
		},
		"Tag": {
			{Name: "Whitespace", Pattern: `\s+`},
			{Name: "SelfClose", Pattern: `/>`, Action: lexer.Pop()},
			{Name: "Close", Pattern: `>`, Action: lexer.Pop()},
			{Name: "Eq", Pattern: `=`},
			{Name: "String", Pattern: `"[^"]*"`},
			{Name: "ExprOpen", Pattern: `\{\{`, Action: lexer.Push("Expr")},
			{Name: "Number", Pattern: `-?\d+`},
			{Name: "Bool", Pattern: `true\b|false\b`},
			{Name: "Ident", Pattern: `[#A-Za-z_][-:.A-Za-z0-9_]*`},
		},
		// Expression text is captured verbatim, including whitespace. Single
		// braces push/pop a nested state so Go composite and function
		// literals survive until the matching "}}".
		"Expr": {
			{Name: "ExprClose", Pattern: `\}\}`, Action: lexer.Pop()},
			{Name: "LBrace", Pattern: `\{`, Action: lexer.Push("Braces")},
			{Name: "RBrace", Pattern: `\}`},
			{Name: "ExprText", Pattern: `[^{}]+`},
		},
		"Braces": {
			{Name: "LBrace", Pattern: `\{`, Action: lexer.Push("Braces")},
			{Name: "RBrace", Pattern: `\}`, Action: lexer.Pop()},
			{Name: "ExprText", Pattern: `[^{}]+`},
		},
	})

	// markupParser is the participle parser instance for tgx documents.
	markupParser = participle.MustBuild[Document](
		participle.Lexer(markupLexer),
		participle.Elide("Whitespace"),
		participle.UseLookahead(2),
	)
)

// Parse parses a tgx document from an io.Reader and returns the raw node
// tree. The tree preserves source fidelity: text nodes keep every whitespace
// byte, and all nodes carry positions from which any source slice can be
// recovered.
func Parse(r io.Reader) (*Document, error) {
	src, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read template source")
	}
	return ParseString(string(src))
}

// ParseString parses a tgx document from a string. It returns a
// *StructuralError when the input cannot be lexed or parsed, or when a
// closing tag does not match its opening tag.
func ParseString(src string) (*Document, error) {
	doc, err := markupParser.ParseString("", src)
	if err != nil {
		return nil, structural(err)
	}

	if err := doc.validate(); err != nil {
		return nil, err
	}

	return doc, nil
}

// structural converts a participle error into a StructuralError, keeping the
// reported position when one is available.
func structural(err error) error {
	var perr participle.Error
	if errors.As(err, &perr) {
		return &StructuralError{Pos: perr.Position(), Message: perr.Message()}
	}
	return &StructuralError{Message: err.Error()}
}

// validate checks structural invariants the grammar alone cannot express.
func (d *Document) validate() error {
	return validateNodes(d.Nodes)
}

func validateNodes(nodes []*Node) error {
	for _, n := range nodes {
		if n.Element == nil {
			continue
		}

		el := n.Element
		if !el.SelfClose && el.CloseName != el.Name {
			return &StructuralError{
				Pos:     el.Pos,
				Message: "closing tag </" + el.CloseName + "> does not match <" + el.Name + ">",
			}
		}

		if err := validateNodes(el.Children); err != nil {
			return err
		}
	}

	return nil
}
