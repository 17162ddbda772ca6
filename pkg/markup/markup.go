package markup

import "github.com/alecthomas/participle/v2/lexer"

type (
	// Node is the union of annotated tree variants produced by the
	// whitespace classifier and consumed read-only by the renderer.
	Node interface {
		node()
	}

	// Document is the root of an annotated tree.
	Document struct {
		Children []Node
	}

	// Element is a tag with attributes and annotated children. Sensitive is
	// computed once at classification time from the tag name and never
	// changes afterward. For sensitive elements the children are a single
	// Text node holding the untouched inner source slice.
	Element struct {
		Name        string
		Attrs       []Attr
		Children    []Node
		SelfClosing bool
		Sensitive   bool
		Pos         lexer.Position
	}

	// AttrKind discriminates attribute value forms.
	AttrKind int

	// Attr is a single attribute. Value holds the quoted string literal
	// (quotes included) for AttrString, or the verbatim expression snippet
	// for AttrExpr. It is empty for AttrBare.
	Attr struct {
		Name  string
		Kind  AttrKind
		Value string
		Pos   lexer.Position
	}

	// Text is a literal run of document text. Outside sensitive content it is
	// never empty and never consists solely of whitespace.
	Text struct {
		Content string
	}

	// Expression is an embedded snippet awaiting external formatting. Raw is
	// preserved exactly, including original line breaks.
	Expression struct {
		Raw string
		Pos lexer.Position
	}

	// Boundary identifies where in the source a whitespace run occurred.
	Boundary int

	// Whitespace is a zero-width marker recording that whitespace existed at
	// a boundary. Absence of a marker means no whitespace existed there.
	// BlankLine is set when the source run contained two or more newlines,
	// allowing the renderer to emit one preserved blank line.
	Whitespace struct {
		Boundary  Boundary
		BlankLine bool
	}
)

const (
	// AttrBare marks an attribute with no value in the source.
	AttrBare AttrKind = iota
	// AttrString marks a quoted string literal value.
	AttrString
	// AttrExpr marks an embedded expression value.
	AttrExpr
)

const (
	// BoundaryDocumentStart marks whitespace before the first node of the document.
	BoundaryDocumentStart Boundary = iota
	// BoundaryFirstChild marks whitespace between an opening tag and its first child.
	BoundaryFirstChild
	// BoundarySiblings marks whitespace between two adjacent siblings.
	BoundarySiblings
	// BoundaryClosing marks whitespace between the last child and the closing tag.
	BoundaryClosing
)

func (*Element) node()    {}
func (*Text) node()       {}
func (*Expression) node() {}
func (*Whitespace) node() {}
