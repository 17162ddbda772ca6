// Package gofmt provides the default expression formatter for embedded Go
// snippets. It wraps go/parser and go/format behind the formatter's
// ExpressionFormatter seam so the layout engine stays decoupled from the
// host language toolchain.
package gofmt
