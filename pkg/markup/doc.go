// Package markup defines the annotated node tree shared by the whitespace
// classifier and the layout renderer.
//
// The tree is a tagged-variant model: Element, Text, Expression, and
// Whitespace all implement Node. Whitespace markers are zero-width signals
// recording that whitespace existed at a specific source boundary; they
// carry no text and are consumed only during rendering. A tree is built
// once per format invocation and never mutated afterward.
package markup
