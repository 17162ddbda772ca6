// Package utils provides small shared helpers for tag-name classification
// and scalar-literal detection used by the markup and format packages.
package utils
