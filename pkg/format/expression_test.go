package format_test

import (
	"strings"
	"testing"

	. "github.com/pseudomuto/tagfmt/pkg/format"
	"github.com/pseudomuto/tagfmt/pkg/gofmt"
	"github.com/stretchr/testify/require"
)

// stubExpressions is a canned ExpressionFormatter so layout decisions can be
// tested independently of the Go formatter.
type stubExpressions map[string]string

func (s stubExpressions) FormatExpression(raw string) (string, error) {
	if v, ok := s[strings.TrimSpace(raw)]; ok {
		return v, nil
	}
	return strings.TrimSpace(raw), nil
}

func TestFormatSingleMultilineAttributeStaysOnTagLine(t *testing.T) {
	t.Parallel()

	opts := Options{
		LineLength:  98,
		Expressions: stubExpressions{"handler": "func() {\n  do()\n}"},
	}

	got := formatSource(t, "<Card on={{ handler }} />", opts)
	require.Equal(t, `<Card on={{func() {
    do()
  } }} />
`, got)
}

func TestFormatMultilineAttributeAmongManyWrapsAll(t *testing.T) {
	t.Parallel()

	opts := Options{
		LineLength:  98,
		Expressions: stubExpressions{"handler": "func() {\n  do()\n}"},
	}

	got := formatSource(t, `<Card id="c" on={{ handler }}>x</Card>`, opts)
	require.Equal(t, `<Card
  id="c"
  on={{func() {
    do()
  } }}
>x</Card>
`, got)
}

func TestFormatMultilineInterpolationChild(t *testing.T) {
	t.Parallel()

	opts := Options{
		LineLength:  98,
		Expressions: stubExpressions{"items": "list(\n  a,\n  b,\n)"},
	}

	got := formatSource(t, "<div>\n{{ items }}\n</div>", opts)
	require.Equal(t, `<div>
  {{list(
    a,
    b,
  ) }}
</div>
`, got)
}

func TestFormatExpressionErrorInAttribute(t *testing.T) {
	t.Parallel()

	_, err := Source([]byte(`<div title={{ a + }}>x</div>`), Defaults)
	require.Error(t, err)

	var eerr *ExpressionError
	require.ErrorAs(t, err, &eerr)
	require.Equal(t, "div", eerr.Element)
	require.Equal(t, "title", eerr.Attr)
	require.Equal(t, " a + ", eerr.Raw)
	require.Contains(t, eerr.Error(), `attribute "title" of <div>`)

	var serr *gofmt.SyntaxError
	require.ErrorAs(t, err, &serr)
}

func TestFormatExpressionErrorInInterpolation(t *testing.T) {
	t.Parallel()

	_, err := Source([]byte("<section>\n{{ func( }}\n</section>"), Defaults)
	require.Error(t, err)

	var eerr *ExpressionError
	require.ErrorAs(t, err, &eerr)
	require.Equal(t, "section", eerr.Element)
	require.Empty(t, eerr.Attr)
	require.Contains(t, eerr.Error(), "<section>")
}

func TestFormatExpressionErrorProducesNoOutput(t *testing.T) {
	t.Parallel()

	out, err := New(Defaults).Source([]byte(`<p>ok</p><p title={{ + }}>bad</p>`))
	require.Error(t, err)
	require.Nil(t, out)
}
