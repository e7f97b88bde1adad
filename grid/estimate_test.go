package grid

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEstimateColumnWidthsWithPadding(t *testing.T) {
	g := New([][]string{{"a", "bb"}, {"ccc", "d"}}, nil)
	g.SetPadding(Global, Padding{Left: Indent{Size: 1}, Right: Indent{Size: 1}})

	dims := g.Dimensions()
	assert.Equal(t, []int{5, 4}, dims.Widths)
	assert.Equal(t, []int{1, 1}, dims.Heights)
}

func TestEstimateWideCharacters(t *testing.T) {
	g := New([][]string{{"世界", "a"}}, nil)

	dims := g.Dimensions()
	assert.Equal(t, []int{4, 1}, dims.Widths)
}

func TestEstimateMultilineHeights(t *testing.T) {
	g := New([][]string{{"one\ntwo\nthree", "x"}, {"y", "z"}}, nil)

	dims := g.Dimensions()
	assert.Equal(t, []int{3, 1}, dims.Heights)
	assert.Equal(t, []int{5, 1}, dims.Widths)
}

func TestEstimateColumnSpanFitsWithoutAdjustment(t *testing.T) {
	g := New([][]string{{"ab", ""}, {"cc", "dd"}}, nil)
	g.SetColumnSpan(Pos(0, 0), 2)

	// The merged cell needs 2 columns; the covered range already has 4.
	dims := g.Dimensions()
	assert.Equal(t, []int{2, 2}, dims.Widths)
}

func TestEstimateColumnSpanShortfallDistribution(t *testing.T) {
	g := New([][]string{{"xxxxx", ""}, {"a", "b"}}, nil)
	g.SetColumnSpan(Pos(0, 0), 2)

	// Borderless: need 5 over base [1, 1] leaves a shortfall of 3. Every
	// covered column gains 3/2 = 1, the first additionally takes the
	// remainder.
	dims := g.Dimensions()
	assert.Equal(t, []int{3, 2}, dims.Widths)
}

func TestEstimateColumnSpanCountsInternalBorderLine(t *testing.T) {
	g := New([][]string{{"xxxxx", ""}, {"a", "b"}}, nil)
	g.SetColumnSpan(Pos(0, 0), 2)
	g.SetBorder(Global, BorderASCII())

	// The absorbed internal vertical line contributes one column, so the
	// shortfall shrinks to 2 and splits evenly.
	dims := g.Dimensions()
	assert.Equal(t, []int{2, 2}, dims.Widths)
}

func TestEstimateHiddenCellsDoNotSizeColumns(t *testing.T) {
	g := New([][]string{{"ab", "covered"}, {"a", "b"}}, nil)
	g.SetColumnSpan(Pos(0, 0), 2)

	// "covered" is hidden beneath the span; only "b" sizes column 1, and the
	// merged cell itself fits the covered range without widening anything.
	dims := g.Dimensions()
	assert.Equal(t, []int{1, 1}, dims.Widths)
}

func TestEstimateRowSpanShortfallDistribution(t *testing.T) {
	g := New([][]string{{"1\n2\n3\n4\n5", "a"}, {"", "b"}}, nil)
	g.SetRowSpan(Pos(0, 0), 2)
	g.SetBorder(Global, BorderASCII())

	// need 5 lines; base heights [1, 1] plus the crossed separator give 3.
	// The shortfall of 2 splits evenly over the covered rows.
	dims := g.Dimensions()
	assert.Equal(t, []int{2, 2}, dims.Heights)
}

func TestEstimateSmallerSpansSettleFirst(t *testing.T) {
	g := New([][]string{
		{"xxxxxx", "", "y"},
		{"zzzzzzz", "", ""},
		{"a", "b", "c"},
	}, nil)
	g.SetColumnSpan(Pos(0, 0), 2)
	g.SetColumnSpan(Pos(1, 0), 3)

	// The 2-span settles columns 0-1 at 6 first; the 3-span's need of 7 is
	// then already met and inflates nothing. Widest-first ordering would
	// yield [4, 2, 2] instead.
	dims := g.Dimensions()
	assert.Equal(t, []int{3, 3, 1}, dims.Widths)
}

func TestEstimateIdempotent(t *testing.T) {
	g := New([][]string{{"span", "x"}, {"a", "b"}}, nil)
	g.SetColumnSpan(Pos(0, 0), 2)
	g.SetBorder(Global, BorderModern())

	first := Estimate(g.Matrix(), g.Config())
	second := Estimate(g.Matrix(), g.Config())
	require.Equal(t, first, second)
}

func TestEstimateParallelMatchesSequential(t *testing.T) {
	cases := map[string]func() *Grid{
		"plain": func() *Grid {
			return New([][]string{{"a", "bb", "ccc"}, {"dddd", "e", "f"}}, nil)
		},
		"spansAndBorders": func() *Grid {
			g := New([][]string{{"merged wide", "", "x"}, {"a", "b", "c"}}, nil)
			g.SetColumnSpan(Pos(0, 0), 2)
			g.SetBorder(Global, BorderASCII())
			g.SetPadding(Global, Padding{Left: Indent{Size: 1}, Right: Indent{Size: 1}})
			return g
		},
		"multiline": func() *Grid {
			g := New([][]string{{"1\n2\n3", "x"}, {"y", "z"}}, nil)
			g.SetRowSpan(Pos(0, 1), 2)
			return g
		},
	}

	for name, build := range cases {
		t.Run(name, func(t *testing.T) {
			g := build()
			require.Equal(t,
				Estimate(g.Matrix(), g.Config()),
				EstimateParallel(g.Matrix(), g.Config()))
		})
	}
}
