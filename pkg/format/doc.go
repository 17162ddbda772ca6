// Package format renders annotated markup trees as canonical template text.
//
// This package is the layout half of the formatter: it computes indentation,
// decides single-line versus multi-line attribute layout against a
// line-length budget, delegates embedded expression snippets to an
// ExpressionFormatter, and collapses consecutive blank lines to at most one.
// Whitespace semantics come entirely from the marker nodes placed by the
// classify package; where the source had no whitespace between nodes, the
// output has none either.
//
// Key behaviors:
//   - Fixed 2-column indentation per nesting level
//   - Attribute wrapping driven by line length and multi-line values
//   - Boolean shorthand: a literal true attribute renders as its bare name
//   - Scalar literal attribute values render without expression delimiters
//   - Verbatim content of whitespace-sensitive elements is untouched
//
// Usage:
//
//	formatted, err := format.Source(src, format.Defaults)
//
//	// or, with a tree already in hand
//	var buf bytes.Buffer
//	err := format.Format(&buf, format.Options{LineLength: 80}, tree)
//
// Formatting fails only on structural parse errors or when the expression
// formatter rejects a snippet; both abort with no output written.
package format
