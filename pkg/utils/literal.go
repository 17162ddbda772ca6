package utils

import (
	"strconv"
	"strings"
)

// ScalarLiteral reports whether an expression snippet is a plain scalar
// literal (string, integer, or boolean) and returns its trimmed text. Such
// values render bare in attribute position, without expression delimiters,
// so they are restricted to the forms an attribute value can hold: strings
// without interior quote characters, integers with at most a leading minus,
// and the bare booleans. Anything else stays in expression form, which
// always reads back.
//
// Examples:
//   - `  "hello" ` -> `"hello"`, true
//   - ` 123 `      -> `123`, true
//   - ` -7 `       -> `-7`, true
//   - ` true `     -> `true`, true
//   - ` +5 `       -> "", false
//   - ` "a\"b" `   -> "", false
//   - ` a + b `    -> "", false
func ScalarLiteral(snippet string) (string, bool) {
	trimmed := strings.TrimSpace(snippet)
	if trimmed == "" {
		return "", false
	}

	if trimmed == "true" || trimmed == "false" {
		return trimmed, true
	}

	if isInteger(trimmed) {
		return trimmed, true
	}

	if strings.HasPrefix(trimmed, `"`) {
		if _, err := strconv.Unquote(trimmed); err == nil &&
			!strings.Contains(trimmed[1:len(trimmed)-1], `"`) {
			return trimmed, true
		}
	}

	return "", false
}

// isInteger matches an optional leading minus followed by one or more
// digits. Forms like "+5" or "1_000" are valid Go integer literals but not
// bare attribute values, so they are excluded.
func isInteger(s string) bool {
	s = strings.TrimPrefix(s, "-")
	if s == "" {
		return false
	}

	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}

	return true
}
