package markup

import "github.com/pseudomuto/tagfmt/pkg/utils"

// verbatimTags are elements whose content renders exactly as written, so no
// whitespace collapsing or re-indentation may touch their subtree.
var verbatimTags = map[string]struct{}{
	"pre":      {},
	"code":     {},
	"textarea": {},
	"script":   {},
	"style":    {},
}

// IsSensitive reports whether content inside the named tag must be preserved
// byte for byte. This covers the fixed verbatim tag set plus macro
// components, whose bodies belong to the macro rather than the template.
func IsSensitive(name string) bool {
	if _, ok := verbatimTags[name]; ok {
		return true
	}
	return utils.IsMacroName(name)
}
