package format

import (
	"strings"

	"github.com/pseudomuto/tagfmt/pkg/markup"
	"github.com/pseudomuto/tagfmt/pkg/utils"
)

// renderedAttr is one attribute's rendered form. lines[0] carries
// "name=value"; any further lines are the continuation of a multi-line
// formatted expression, holding only their own relative indentation.
type renderedAttr struct {
	lines []string
}

func (a renderedAttr) multiline() bool {
	return len(a.lines) > 1
}

func (r *renderer) attrs(el *markup.Element) ([]renderedAttr, error) {
	if len(el.Attrs) == 0 {
		return nil, nil
	}

	out := make([]renderedAttr, 0, len(el.Attrs))
	for _, a := range el.Attrs {
		ra, err := r.attr(el, a)
		if err != nil {
			return nil, err
		}
		out = append(out, ra)
	}

	return out, nil
}

func (r *renderer) attr(el *markup.Element, a markup.Attr) (renderedAttr, error) {
	switch a.Kind {
	case markup.AttrBare:
		return renderedAttr{lines: []string{a.Name}}, nil
	case markup.AttrString:
		return renderedAttr{lines: []string{a.Name + "=" + a.Value}}, nil
	}

	// Scalar literals render bare, and a literal true is boolean shorthand.
	if lit, ok := utils.ScalarLiteral(a.Value); ok {
		if lit == "true" {
			return renderedAttr{lines: []string{a.Name}}, nil
		}
		return renderedAttr{lines: []string{a.Name + "=" + lit}}, nil
	}

	formatted, err := r.options.Expressions.FormatExpression(a.Value)
	if err != nil {
		return renderedAttr{}, &ExpressionError{
			Element: el.Name,
			Attr:    a.Name,
			Raw:     a.Value,
			Pos:     a.Pos,
			Err:     err,
		}
	}

	lines := strings.Split(formatted, "\n")
	if len(lines) == 1 {
		return renderedAttr{lines: []string{a.Name + "={{ " + formatted + " }}"}}, nil
	}

	// No space after the opening delimiter before a continued expression.
	out := make([]string, 0, len(lines))
	out = append(out, a.Name+"={{"+strings.TrimLeft(lines[0], " \t"))
	out = append(out, lines[1:]...)
	out[len(out)-1] += " }}"
	return renderedAttr{lines: out}, nil
}

// openTag writes an element's opening tag, choosing between one-line,
// tag-line-with-continuation (single multi-line attribute), and one
// attribute per line. The single-line decision measures the full opening
// tag, indentation and closing delimiter included, against the line budget.
func (r *renderer) openTag(el *markup.Element, attrs []renderedAttr, depth int) {
	delim := ">"
	if el.SelfClosing {
		delim = " />"
	}

	if single, ok := singleLine(el.Name, attrs); ok {
		if len(attrs) == 0 || len(indent(depth))+len(single)+len(delim) <= r.options.LineLength {
			r.buf.WriteString(single + delim)
			return
		}
	}

	pad := indent(depth) + indentUnit

	if len(attrs) == 1 && attrs[0].multiline() {
		// The lone attribute stays on the tag line; only its continuation
		// lines are re-indented under the tag.
		r.buf.WriteString("<" + el.Name + " " + attrs[0].lines[0])
		for _, line := range attrs[0].lines[1:] {
			r.buf.WriteByte('\n')
			if line != "" {
				r.buf.WriteString(pad + line)
			}
		}
		r.buf.WriteString(delim)
		return
	}

	r.buf.WriteString("<" + el.Name)
	for _, a := range attrs {
		for _, line := range a.lines {
			r.buf.WriteByte('\n')
			if line != "" {
				r.buf.WriteString(pad + line)
			}
		}
	}

	r.buf.WriteString("\n" + indent(depth))
	if el.SelfClosing {
		r.buf.WriteString("/>")
	} else {
		r.buf.WriteString(">")
	}
}

// singleLine renders the opening tag on one line, without the closing
// delimiter. It fails when any attribute's formatted value spans lines.
func singleLine(name string, attrs []renderedAttr) (string, bool) {
	var sb strings.Builder
	sb.WriteString("<" + name)

	for _, a := range attrs {
		if a.multiline() {
			return "", false
		}
		sb.WriteString(" " + a.lines[0])
	}

	return sb.String(), true
}
