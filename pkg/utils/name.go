package utils

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// MacroPrefix is the reserved prefix identifying macro components.
const MacroPrefix = "#"

// IsMacroName reports whether name refers to a macro component, e.g. "#Raw".
//
// Examples:
//   - "#Raw" -> true
//   - "#markdown" -> true
//   - "Card" -> false
//   - "div" -> false
func IsMacroName(name string) bool {
	return strings.HasPrefix(name, MacroPrefix)
}

// IsComponentName reports whether name refers to a component rather than a
// plain tag. Components start with an uppercase letter; macro names are
// components as well, once the prefix is stripped.
//
// Examples:
//   - "Card" -> true
//   - "#Raw" -> true
//   - "div" -> false
func IsComponentName(name string) bool {
	trimmed := strings.TrimPrefix(name, MacroPrefix)
	if trimmed == "" {
		return false
	}

	r, _ := utf8.DecodeRuneInString(trimmed)
	return unicode.IsUpper(r)
}
