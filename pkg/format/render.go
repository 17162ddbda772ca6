package format

import (
	"strings"

	"github.com/pseudomuto/tagfmt/pkg/markup"
)

// indentUnit is the fixed indentation step of 2 columns.
const indentUnit = "  "

// renderer walks an annotated tree once, accumulating output. Layout state
// is passed down the walk (depth, enclosing element) rather than shared, so
// independent documents can always be formatted concurrently.
type renderer struct {
	options Options
	buf     strings.Builder
}

func indent(depth int) string {
	return strings.Repeat(indentUnit, depth)
}

func (r *renderer) document(doc *markup.Document) error {
	return r.block(doc.Children, 0, "")
}

// block renders a sibling list with each content run on its own line at the
// given depth. A blank-line-eligible marker between two runs yields exactly
// one blank output line; other markers contribute nothing beyond the
// structural line break.
func (r *renderer) block(children []markup.Node, depth int, enclosing string) error {
	var run []markup.Node
	emitted := false
	pendingBlank := false

	flush := func() error {
		if len(run) == 0 {
			return nil
		}

		if emitted && pendingBlank {
			r.buf.WriteByte('\n')
		}

		r.buf.WriteString(indent(depth))
		if err := r.run(run, depth, enclosing); err != nil {
			return err
		}
		r.buf.WriteByte('\n')

		run = nil
		emitted = true
		pendingBlank = false
		return nil
	}

	for _, child := range children {
		if m, ok := child.(*markup.Whitespace); ok {
			if err := flush(); err != nil {
				return err
			}
			pendingBlank = m.BlankLine
			continue
		}
		run = append(run, child)
	}

	return flush()
}

// run renders adjacent siblings with zero separation between them. Nodes in
// a run were not separated by any whitespace in the source, and that absence
// is preserved verbatim.
func (r *renderer) run(nodes []markup.Node, depth int, enclosing string) error {
	for _, n := range nodes {
		switch n := n.(type) {
		case *markup.Text:
			r.buf.WriteString(n.Content)

		case *markup.Expression:
			if err := r.interpolation(n, depth, enclosing); err != nil {
				return err
			}

		case *markup.Element:
			if err := r.element(n, depth); err != nil {
				return err
			}
		}
	}

	return nil
}

func (r *renderer) element(el *markup.Element, depth int) error {
	attrs, err := r.attrs(el)
	if err != nil {
		return err
	}

	r.openTag(el, attrs, depth)

	if el.SelfClosing {
		return nil
	}

	switch {
	case el.Sensitive:
		// Children were captured byte for byte at classification time.
		for _, c := range el.Children {
			if t, ok := c.(*markup.Text); ok {
				r.buf.WriteString(t.Content)
			}
		}
		r.closeTag(el)

	case inlineable(el.Children):
		if err := r.run(el.Children, depth, el.Name); err != nil {
			return err
		}
		r.closeTag(el)

	default:
		r.buf.WriteByte('\n')
		if err := r.block(el.Children, depth+1, el.Name); err != nil {
			return err
		}
		r.buf.WriteString(indent(depth))
		r.closeTag(el)
	}

	return nil
}

func (r *renderer) closeTag(el *markup.Element) {
	r.buf.WriteString("</" + el.Name + ">")
}

// interpolation renders an expression child. Single-line expressions render
// as "{{ expr }}"; multi-line expressions keep the opening delimiter flush
// against the first token, with continuation lines re-indented to the
// surrounding depth.
func (r *renderer) interpolation(expr *markup.Expression, depth int, enclosing string) error {
	formatted, err := r.options.Expressions.FormatExpression(expr.Raw)
	if err != nil {
		return &ExpressionError{Element: enclosing, Raw: expr.Raw, Pos: expr.Pos, Err: err}
	}

	lines := strings.Split(formatted, "\n")
	if len(lines) == 1 {
		r.buf.WriteString("{{ " + formatted + " }}")
		return nil
	}

	r.buf.WriteString("{{" + strings.TrimLeft(lines[0], " \t"))
	for _, line := range lines[1:] {
		r.buf.WriteByte('\n')
		if line != "" {
			r.buf.WriteString(indent(depth) + line)
		}
	}
	r.buf.WriteString(" }}")
	return nil
}

// inlineable reports whether a subtree renders on a single run with its
// parent: no markers at any level, meaning no whitespace existed anywhere
// between the nodes in the source. Sensitive elements are always inlineable
// since their content renders verbatim wherever it starts.
func inlineable(children []markup.Node) bool {
	for _, c := range children {
		switch n := c.(type) {
		case *markup.Whitespace:
			return false
		case *markup.Element:
			if n.Sensitive {
				continue
			}
			if !inlineable(n.Children) {
				return false
			}
		}
	}

	return true
}
