package classify

import (
	"strings"

	"github.com/pseudomuto/tagfmt/pkg/markup"
	"github.com/pseudomuto/tagfmt/pkg/parser"
)

// Classify walks a raw node tree plus the original source text and produces
// the annotated tree consumed by the renderer. Every boundary at which
// whitespace existed becomes an explicit marker node, whitespace-insensitive
// space runs collapse to a single space, comments are dropped, and the
// content of whitespace-sensitive elements is captured verbatim.
//
// Classify is total: it never fails on trees produced by the parser.
func Classify(doc *parser.Document, source string) *markup.Document {
	c := &classifier{source: source}
	return &markup.Document{
		Children: c.children(doc.Nodes, markup.BoundaryDocumentStart, false),
	}
}

type classifier struct {
	source string
}

// children classifies a sibling list. The first marker emitted before any
// content uses the start boundary kind; trailing whitespace becomes a
// before-closing marker, except at document level where it is dropped.
func (c *classifier) children(raw []*parser.Node, start markup.Boundary, keepTrailing bool) []markup.Node {
	s := &siblingState{start: start}

	for _, n := range raw {
		switch {
		case n.Comment != nil:
			// Dropped: the upstream tree cannot round-trip comments.
			// Whitespace on either side merges into one boundary run.

		case n.Text != nil:
			c.text(s, n.Text.Content)

		case n.Interp != nil:
			s.flush()
			s.append(&markup.Expression{Raw: n.Interp.Expr.Raw(), Pos: n.Interp.Pos})

		case n.Element != nil:
			s.flush()
			s.append(c.element(n.Element))
		}
	}

	s.finish(keepTrailing)
	return s.out
}

// text feeds one raw text run through the sibling state, splitting it into
// whitespace and word runs. Space-only runs interior to a text run collapse
// to a single space; runs containing a newline split the text into separate
// siblings with a marker between them.
func (c *classifier) text(s *siblingState, content string) {
	for len(content) > 0 {
		i := strings.IndexFunc(content, func(r rune) bool {
			return !isSpace(r)
		})

		if i != 0 {
			// Leading run of whitespace (i < 0 means the whole rest).
			if i < 0 {
				i = len(content)
			}
			s.space(content[:i])
			content = content[i:]
			continue
		}

		j := strings.IndexFunc(content, isSpace)
		if j < 0 {
			j = len(content)
		}
		s.word(content[:j])
		content = content[j:]
	}
}

// element classifies a single raw element. Sensitivity is computed here,
// once, from the tag name; inside a sensitive element the exact inner source
// slice becomes the only child.
func (c *classifier) element(el *parser.Element) *markup.Element {
	out := &markup.Element{
		Name:        el.Name,
		Attrs:       attrs(el.Attrs),
		SelfClosing: el.SelfClose,
		Sensitive:   markup.IsSensitive(el.Name),
		Pos:         el.Pos,
	}

	switch {
	case out.Sensitive:
		if inner := c.innerSource(el); inner != "" {
			out.Children = []markup.Node{&markup.Text{Content: inner}}
		}
	default:
		out.Children = c.children(el.Children, markup.BoundaryFirstChild, true)
	}

	return out
}

// innerSource returns the untouched source slice spanning an element's
// children. The raw children tile the inner region completely, so the slice
// runs from the first child's start offset to the last child's end offset.
func (c *classifier) innerSource(el *parser.Element) string {
	if len(el.Children) == 0 {
		return ""
	}

	from := el.Children[0].Position().Offset
	to := el.Children[len(el.Children)-1].End().Offset
	return c.source[from:to]
}

// attrs converts raw attributes, preserving their order.
func attrs(raw []*parser.Attr) []markup.Attr {
	if len(raw) == 0 {
		return nil
	}

	out := make([]markup.Attr, 0, len(raw))
	for _, a := range raw {
		attr := markup.Attr{Name: a.Name, Kind: markup.AttrBare, Pos: a.Pos}

		switch {
		case a.Value == nil:
		case a.Value.String != nil:
			attr.Kind = markup.AttrString
			attr.Value = *a.Value.String
		case a.Value.Expr != nil:
			attr.Kind = markup.AttrExpr
			attr.Value = a.Value.Expr.Raw()
		case a.Value.Literal != nil:
			// Unquoted scalars classify as expressions; the renderer puts
			// them right back in bare form.
			attr.Kind = markup.AttrExpr
			attr.Value = *a.Value.Literal
		}

		out = append(out, attr)
	}

	return out
}

// siblingState accumulates classified siblings. It buffers the current text
// segment and the whitespace run seen since the last content so that text
// merging, space collapsing, and marker emission all happen in one place.
type siblingState struct {
	out     []markup.Node
	start   markup.Boundary
	segment strings.Builder
	pending string
	started bool
}

// space records boundary or interior whitespace.
func (s *siblingState) space(ws string) {
	s.pending += ws
}

// word appends a run of non-whitespace text, deciding whether the pending
// whitespace collapses into the current segment or splits it with a marker.
// After every call the pending run is consumed, so a non-empty pending run
// always trails the current segment.
func (s *siblingState) word(w string) {
	switch {
	case s.pending == "":
		s.segment.WriteString(w)
	case s.segment.Len() > 0 && !strings.Contains(s.pending, "\n"):
		s.segment.WriteString(" ")
		s.segment.WriteString(w)
		s.pending = ""
	default:
		s.flush()
		s.segment.WriteString(w)
	}
}

// flush emits the buffered segment, then one marker for the whitespace run
// that followed it (or preceded the next content, which is the same run).
func (s *siblingState) flush() {
	if s.segment.Len() > 0 {
		s.out = append(s.out, &markup.Text{Content: s.segment.String()})
		s.segment.Reset()
		s.started = true
	}

	if s.pending != "" {
		boundary := markup.BoundarySiblings
		if !s.started {
			boundary = s.start
		}
		s.markerAt(boundary)
	}
}

// finish flushes the final segment. Trailing whitespace becomes a
// before-closing marker when keepTrailing is set and is dropped otherwise.
func (s *siblingState) finish(keepTrailing bool) {
	if s.segment.Len() > 0 {
		s.out = append(s.out, &markup.Text{Content: s.segment.String()})
		s.segment.Reset()
		s.started = true
	}

	if s.pending != "" && keepTrailing {
		// Whitespace-only content yields a single start-boundary marker.
		if s.started {
			s.markerAt(markup.BoundaryClosing)
		} else {
			s.markerAt(s.start)
		}
	}
	s.pending = ""
}

// append adds a classified non-text node. Callers flush first, so no marker
// can be pending here.
func (s *siblingState) append(n markup.Node) {
	s.out = append(s.out, n)
	s.started = true
}

// markerAt emits exactly one whitespace marker for the pending run.
func (s *siblingState) markerAt(boundary markup.Boundary) {
	s.out = append(s.out, &markup.Whitespace{
		Boundary:  boundary,
		BlankLine: strings.Count(s.pending, "\n") >= 2,
	})
	s.pending = ""
}

func isSpace(r rune) bool {
	return r == ' ' || r == '\t' || r == '\n' || r == '\r'
}
