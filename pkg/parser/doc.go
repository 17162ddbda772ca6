// Package parser provides a participle-based parser for tgx templates.
//
// This package implements the structural front end of the formatter using
// github.com/alecthomas/participle/v2 with a stateful lexer. It turns raw
// template source into a tree of element, attribute, text, expression, and
// comment nodes. The tree is deliberately close to the source: text nodes
// retain every whitespace byte, expression nodes retain their snippet
// verbatim, and every node carries start and end positions so that any
// source slice can be recovered by offset.
//
// Key features:
//   - HTML-like tags, capitalized components, and #-prefixed macro components
//   - Embedded Go expression snippets in "{{ ... }}" delimiters, with single
//     braces tracked so composite and function literals nest correctly
//   - Structured error messages with line and column information
//   - Closing-tag validation with typed StructuralError reporting
//
// Basic usage:
//
//	doc, err := parser.ParseString(`<div class="card">{{ user.Name }}</div>`)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Printf("parsed %d top-level nodes\n", len(doc.Nodes))
//
// Known limitation: a Go string literal containing "}}" inside an expression
// snippet terminates the snippet early, since the lexer does not interpret
// string syntax of the embedded language.
package parser
