package grid

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCorrectIntersection(t *testing.T) {
	cases := map[string]struct {
		glyph   rune
		mask    edgeMask
		want    rune
		applied bool
	}{
		"lightCornerToCross":  {'┌', edgeUp | edgeDown | edgeLeft | edgeRight, '┼', true},
		"lightCornerToTee":    {'┘', edgeUp | edgeDown | edgeLeft, '┤', true},
		"heavyCornerToTee":    {'┏', edgeDown | edgeLeft | edgeRight, '┳', true},
		"doubleCornerToCross": {'╔', edgeUp | edgeDown | edgeLeft | edgeRight, '╬', true},
		"asciiJunction":       {'+', edgeUp | edgeDown | edgeLeft | edgeRight, '+', true},
		"asciiHorizontalOnly": {'+', edgeLeft | edgeRight, '-', true},
		"asciiVerticalOnly":   {'-', edgeUp | edgeDown, '|', true},
		"unknownGlyphKept":    {'#', edgeUp | edgeDown | edgeLeft, '#', false},
		"zeroMaskKept":        {'┌', 0, '┌', false},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			got, applied := correctIntersection(tc.glyph, tc.mask)
			assert.Equal(t, string(tc.want), string(got))
			assert.Equal(t, tc.applied, applied)
		})
	}
}

func TestGlyphFamiliesCoverAllMembers(t *testing.T) {
	for _, family := range []map[edgeMask]rune{lightFamily, heavyFamily, doubleFamily} {
		for _, glyph := range family {
			_, ok := glyphFamilies[glyph]
			assert.True(t, ok, "glyph %q missing from reverse index", glyph)
		}
	}
}
