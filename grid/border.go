package grid

// Border is the glyph set of one cell: four edges and four corners. A zero
// rune means the glyph is absent and no line is drawn there. Interior
// intersections of the final table (tees and crossings) are not configured
// directly; they are derived from adjacent cells' corners and corrected
// against the actual line topology, see resolve.go.
type Border struct {
	Top    rune
	Bottom rune
	Left   rune
	Right  rune

	TopLeft     rune
	TopRight    rune
	BottomLeft  rune
	BottomRight rune
}

// IsZero reports whether no glyph is set.
func (b Border) IsZero() bool {
	return b == Border{}
}

// BorderColors mirrors Border with an optional Color per glyph position.
type BorderColors struct {
	Top    Color
	Bottom Color
	Left   Color
	Right  Color

	TopLeft     Color
	TopRight    Color
	BottomLeft  Color
	BottomRight Color
}

// BorderASCII draws borders with '+', '-' and '|'.
func BorderASCII() Border {
	return Border{
		Top:         '-',
		Bottom:      '-',
		Left:        '|',
		Right:       '|',
		TopLeft:     '+',
		TopRight:    '+',
		BottomLeft:  '+',
		BottomRight: '+',
	}
}

// BorderModern draws light box-drawing borders.
func BorderModern() Border {
	return Border{
		Top:         '─',
		Bottom:      '─',
		Left:        '│',
		Right:       '│',
		TopLeft:     '┌',
		TopRight:    '┐',
		BottomLeft:  '└',
		BottomRight: '┘',
	}
}

// BorderThick draws heavy box-drawing borders.
func BorderThick() Border {
	return Border{
		Top:         '━',
		Bottom:      '━',
		Left:        '┃',
		Right:       '┃',
		TopLeft:     '┏',
		TopRight:    '┓',
		BottomLeft:  '┗',
		BottomRight: '┛',
	}
}

// BorderDouble draws double-line box-drawing borders.
func BorderDouble() Border {
	return Border{
		Top:         '═',
		Bottom:      '═',
		Left:        '║',
		Right:       '║',
		TopLeft:     '╔',
		TopRight:    '╗',
		BottomLeft:  '╚',
		BottomRight: '╝',
	}
}

// BorderBlank reserves border positions but fills them with spaces.
func BorderBlank() Border {
	return Border{
		Top:         ' ',
		Bottom:      ' ',
		Left:        ' ',
		Right:       ' ',
		TopLeft:     ' ',
		TopRight:    ' ',
		BottomLeft:  ' ',
		BottomRight: ' ',
	}
}

// BorderEmpty draws nothing: no line positions exist in the output at all.
func BorderEmpty() Border {
	return Border{}
}
