package grid

import (
	"strings"
	"testing"

	"github.com/sergi/go-diff/diffmatchpatch"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zhiburt/tabled-sub005/width"
)

// requireBlock fails with a character-level diff when the rendered block does
// not match, which reads far better than two multi-line dumps.
func requireBlock(t *testing.T, want, got string) {
	t.Helper()
	if want == got {
		return
	}
	dmp := diffmatchpatch.New()
	diffs := dmp.DiffMain(want, got, false)
	t.Fatalf("unexpected render:\nwant:\n%s\ngot:\n%s\ndiff:\n%s",
		want, got, dmp.DiffPrettyText(diffs))
}

func block(lines ...string) string {
	return strings.Join(lines, "\n")
}

func TestRenderASCIIWithPadding(t *testing.T) {
	g := New([][]string{{"a", "bb"}, {"ccc", "d"}}, nil)
	g.SetBorder(Global, BorderASCII())
	g.SetPadding(Global, Padding{Left: Indent{Size: 1}, Right: Indent{Size: 1}})

	requireBlock(t, block(
		"+-----+----+",
		"| a   | bb |",
		"+-----+----+",
		"| ccc | d  |",
		"+-----+----+",
	), g.String())
}

func TestRenderBorderless(t *testing.T) {
	g := New([][]string{{"a", "b"}}, nil)
	requireBlock(t, "ab", g.String())
}

func TestRenderEmptyGrid(t *testing.T) {
	assert.Equal(t, "", New(nil, nil).String())
	assert.Equal(t, "", New([][]string{{}}, nil).String())
}

func TestRenderColumnSpan(t *testing.T) {
	g := New([][]string{{"span", "x"}, {"a", "b"}}, nil)
	g.SetBorder(Global, BorderModern())
	g.SetColumnSpan(Pos(0, 0), 2)

	// The merged cell absorbs the internal vertical line in its row; the tee
	// and elbow glyphs along the span edges come out of the topology
	// correction.
	requireBlock(t, block(
		"┌────┐",
		"│span│",
		"├──┬─┤",
		"│a │b│",
		"└──┴─┘",
	), g.String())
}

func TestRenderRowSpan(t *testing.T) {
	g := New([][]string{{"tall", "x"}, {"", "y"}}, nil)
	g.SetBorder(Global, BorderModern())
	g.SetRowSpan(Pos(0, 0), 2)

	requireBlock(t, block(
		"┌────┬─┐",
		"│tall│x│",
		"│    ├─┤",
		"│    │y│",
		"└────┴─┘",
	), g.String())
}

func TestRenderRowSpanCenteredVertically(t *testing.T) {
	g := New([][]string{{"tall", "x"}, {"", "y"}}, nil)
	g.SetBorder(Global, BorderModern())
	g.SetRowSpan(Pos(0, 0), 2)
	g.SetAlignmentVertical(Cell(0, 0), AlignCenterVertical)

	// The single content line lands on the region line that replaces the
	// crossed separator.
	requireBlock(t, block(
		"┌────┬─┐",
		"│    │x│",
		"│tall├─┤",
		"│    │y│",
		"└────┴─┘",
	), g.String())
}

func TestRenderWideCharactersAndAlignment(t *testing.T) {
	g := New([][]string{{"世界", "a"}, {"b", "cc"}}, nil)
	g.SetBorder(Global, BorderASCII())
	g.SetAlignmentHorizontal(Column(1), AlignRight)

	requireBlock(t, block(
		"+----+--+",
		"|世界| a|",
		"+----+--+",
		"|b   |cc|",
		"+----+--+",
	), g.String())
}

func TestRenderVerticalAlignment(t *testing.T) {
	cases := map[string]struct {
		align AlignmentVertical
		want  string
	}{
		"top":    {AlignTop, block("1x", "2 ", "3 ")},
		"center": {AlignCenterVertical, block("1 ", "2x", "3 ")},
		"bottom": {AlignBottom, block("1 ", "2 ", "3x")},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			g := New([][]string{{"1\n2\n3", "x"}}, nil)
			g.SetAlignmentVertical(Cell(0, 1), tc.align)
			requireBlock(t, tc.want, g.String())
		})
	}
}

func TestRenderCenterHorizontalRemainderGoesRight(t *testing.T) {
	g := New([][]string{{"abcd"}, {"x"}}, nil)
	g.SetAlignmentHorizontal(Global, AlignCenterHorizontal)

	requireBlock(t, block("abcd", " x  "), g.String())
}

func TestRenderMargin(t *testing.T) {
	g := New([][]string{{"x"}}, nil)
	g.SetBorder(Global, BorderASCII())
	g.SetMargin(Margin{
		Left: Indent{Size: 2, Fill: '*'},
		Top:  Indent{Size: 1, Fill: '*'},
	})

	requireBlock(t, block(
		"*****",
		"**+-+",
		"**|x|",
		"**+-+",
	), g.String())
}

func TestRenderTextColorWrapsContentOnly(t *testing.T) {
	g := New([][]string{{"hi"}}, nil)
	g.SetBorder(Global, BorderASCII())
	g.SetTextColor(Global, FgRed)

	requireBlock(t, block(
		"+--+",
		"|\x1b[31mhi\x1b[39m|",
		"+--+",
	), g.String())
}

func TestRenderBorderColor(t *testing.T) {
	g := New([][]string{{"x"}}, nil)
	g.SetBorder(Global, BorderASCII())
	g.SetBorderColors(Global, BorderColors{Top: FgBlue})

	lines := strings.Split(g.String(), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "+\x1b[34m-\x1b[39m+", lines[0])
	assert.Equal(t, "|x|", lines[1])
}

func TestRenderGlyphOverrides(t *testing.T) {
	g := New([][]string{{"x"}}, nil)
	g.SetBorder(Global, BorderASCII())
	g.OverrideHorizontal(Pos(0, 0), '=')
	g.OverrideVertical(Pos(0, 0), '!')

	requireBlock(t, block(
		"+=+",
		"!x|",
		"+-+",
	), g.String())
}

func TestRenderBlankBorderReservesSpace(t *testing.T) {
	g := New([][]string{{"x"}}, nil)
	g.SetBorder(Global, BorderBlank())

	requireBlock(t, block(
		"   ",
		" x ",
		"   ",
	), g.String())
}

func TestRenderSharedEdgeLeftOwnerWins(t *testing.T) {
	g := New([][]string{{"a", "b"}}, nil)
	g.SetBorder(Cell(0, 0), BorderASCII())
	g.SetBorder(Cell(0, 1), BorderModern())

	lines := strings.Split(g.String(), "\n")
	require.Len(t, lines, 3)
	// On the shared vertical line, the left cell's Right glyph wins.
	assert.Equal(t, "|a|b│", lines[1])
}

func TestRenderStable(t *testing.T) {
	g := New([][]string{{"span", "x"}, {"a", "b"}}, nil)
	g.SetBorder(Global, BorderModern())
	g.SetColumnSpan(Pos(0, 0), 2)

	require.Equal(t, g.String(), g.String())
}

func TestRenderUniformLineWidths(t *testing.T) {
	g := New([][]string{
		{"merged 世界", "", "x"},
		{"a", "bb\nbb", "ccc"},
		{"d", "e", "f"},
	}, nil)
	g.SetBorder(Global, BorderModern())
	g.SetPadding(Global, Padding{Left: Indent{Size: 1}, Right: Indent{Size: 1}})
	g.SetColumnSpan(Pos(0, 0), 2)
	g.SetRowSpan(Pos(1, 2), 2)
	g.SetTextColor(Row(1), FgGreen)
	g.SetMargin(Margin{Left: Indent{Size: 1}, Right: Indent{Size: 1}})

	m := width.NewANSIAware(nil)
	lines := strings.Split(g.String(), "\n")
	require.NotEmpty(t, lines)

	want := m.Width(lines[0])
	for i, line := range lines {
		assert.Equal(t, want, m.Width(line), "line %d: %q", i, line)
	}
}

func TestResolvedBorderSuppression(t *testing.T) {
	g := New([][]string{{"span", "x"}, {"a", "b"}}, nil)
	g.SetBorder(Global, BorderModern())
	g.SetColumnSpan(Pos(0, 0), 2)

	anchor := g.ResolvedBorder(Pos(0, 0))
	assert.Equal(t, '│', anchor.Left)
	assert.Zero(t, anchor.Right, "internal edge is suppressed at the anchor")
	assert.Zero(t, anchor.TopRight)

	hidden := g.ResolvedBorder(Pos(0, 1))
	assert.Zero(t, hidden.Left, "internal edge is suppressed at the covered cell")
	assert.Equal(t, '│', hidden.Right, "the anchor's outer border extends through")
	assert.Equal(t, '┐', hidden.TopRight)
}
