// Package classify implements the whitespace-classification pass of the
// formatter.
//
// Classification walks the raw node tree from the parser together with the
// original source text and produces an annotated markup tree in which the
// presence of whitespace at every boundary is explicit. Whitespace runs
// become zero-width marker nodes (tagged blank-line-eligible when the run
// contained two or more newlines), interior space runs collapse to a single
// space, comment nodes are dropped, and whitespace-sensitive elements keep
// their inner source untouched. Where the source contained no whitespace at
// all, no marker exists, so adjacency survives into rendering.
package classify
