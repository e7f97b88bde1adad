package grid

// edgeMask is the set of directions that carry a drawn line into an
// intersection point.
type edgeMask uint8

const (
	edgeUp edgeMask = 1 << iota
	edgeDown
	edgeLeft
	edgeRight
)

// A glyph family is a coherent set of box-drawing characters. When a resolved
// intersection glyph belongs to a known family, it is swapped for the family
// member matching the actual edge mask, so a configured corner never renders
// as a visually broken crossing next to a span. Unrecognized glyphs are kept
// untouched: custom border characters are the caller's business.

var lightFamily = map[edgeMask]rune{
	edgeUp:                                  '╵',
	edgeDown:                                '╷',
	edgeLeft:                                '╴',
	edgeRight:                               '╶',
	edgeUp | edgeDown:                       '│',
	edgeLeft | edgeRight:                    '─',
	edgeDown | edgeRight:                    '┌',
	edgeDown | edgeLeft:                     '┐',
	edgeUp | edgeRight:                      '└',
	edgeUp | edgeLeft:                       '┘',
	edgeUp | edgeDown | edgeRight:           '├',
	edgeUp | edgeDown | edgeLeft:            '┤',
	edgeDown | edgeLeft | edgeRight:         '┬',
	edgeUp | edgeLeft | edgeRight:           '┴',
	edgeUp | edgeDown | edgeLeft | edgeRight: '┼',
}

var heavyFamily = map[edgeMask]rune{
	edgeUp:                                  '╹',
	edgeDown:                                '╻',
	edgeLeft:                                '╸',
	edgeRight:                               '╺',
	edgeUp | edgeDown:                       '┃',
	edgeLeft | edgeRight:                    '━',
	edgeDown | edgeRight:                    '┏',
	edgeDown | edgeLeft:                     '┓',
	edgeUp | edgeRight:                      '┗',
	edgeUp | edgeLeft:                       '┛',
	edgeUp | edgeDown | edgeRight:           '┣',
	edgeUp | edgeDown | edgeLeft:            '┫',
	edgeDown | edgeLeft | edgeRight:         '┳',
	edgeUp | edgeLeft | edgeRight:           '┻',
	edgeUp | edgeDown | edgeLeft | edgeRight: '╋',
}

var doubleFamily = map[edgeMask]rune{
	edgeUp:                                  '║',
	edgeDown:                                '║',
	edgeLeft:                                '═',
	edgeRight:                               '═',
	edgeUp | edgeDown:                       '║',
	edgeLeft | edgeRight:                    '═',
	edgeDown | edgeRight:                    '╔',
	edgeDown | edgeLeft:                     '╗',
	edgeUp | edgeRight:                      '╚',
	edgeUp | edgeLeft:                       '╝',
	edgeUp | edgeDown | edgeRight:           '╠',
	edgeUp | edgeDown | edgeLeft:            '╣',
	edgeDown | edgeLeft | edgeRight:         '╦',
	edgeUp | edgeLeft | edgeRight:           '╩',
	edgeUp | edgeDown | edgeLeft | edgeRight: '╬',
}

var glyphFamilies = buildGlyphFamilies()

func buildGlyphFamilies() map[rune]map[edgeMask]rune {
	families := make(map[rune]map[edgeMask]rune)
	for _, family := range []map[edgeMask]rune{lightFamily, heavyFamily, doubleFamily} {
		for _, glyph := range family {
			families[glyph] = family
		}
	}
	return families
}

// correctIntersection replaces glyph with its family's member for mask. The
// second result reports whether a correction applied: unknown glyphs and
// family/mask combinations without a member are left to the caller.
func correctIntersection(glyph rune, mask edgeMask) (rune, bool) {
	if mask == 0 {
		// Nothing actually crosses here; keep the configured glyph so a
		// deliberate decoration survives.
		return glyph, false
	}

	switch glyph {
	case '+', '-', '|':
		// The ASCII family folds every junction onto '+'.
		switch {
		case mask&(edgeUp|edgeDown) != 0 && mask&(edgeLeft|edgeRight) != 0:
			return '+', true
		case mask&(edgeLeft|edgeRight) != 0:
			return '-', true
		default:
			return '|', true
		}
	}

	family, ok := glyphFamilies[glyph]
	if !ok {
		return glyph, false
	}
	corrected, ok := family[mask]
	if !ok {
		return glyph, false
	}
	return corrected, true
}
