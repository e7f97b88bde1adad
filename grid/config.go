package grid

// Indent is one side of padding or margin: a number of columns filled with a
// repeated rune, optionally colored. A zero Fill means space.
type Indent struct {
	Size  int
	Fill  rune
	Color Color
}

func (in Indent) fill() rune {
	if in.Fill == 0 {
		return ' '
	}
	return in.Fill
}

// Padding is the inner spacing of a cell, between its border and its content.
type Padding struct {
	Left   Indent
	Right  Indent
	Top    Indent
	Bottom Indent
}

// Margin is the outer spacing of the whole table, applied around the finished
// block. Every emitted line keeps identical display width including margin.
type Margin struct {
	Left   Indent
	Right  Indent
	Top    Indent
	Bottom Indent
}

// AlignmentHorizontal positions a content line inside its column width.
type AlignmentHorizontal uint8

const (
	AlignLeft AlignmentHorizontal = iota
	AlignCenterHorizontal
	AlignRight
)

// AlignmentVertical positions a cell's lines inside its row height.
type AlignmentVertical uint8

const (
	AlignTop AlignmentVertical = iota
	AlignCenterVertical
	AlignBottom
)

// Formatting controls how a cell's content is fit into its available width
// when it does not fit naturally (for example inside a reshaped span region).
type Formatting struct {
	// Wrap breaks overlong lines onto continuation lines instead of
	// truncating them. Wrapping happens before height estimation.
	Wrap bool
	// KeepWords makes wrapping prefer word boundaries. Only meaningful with
	// Wrap.
	KeepWords bool
	// TruncateTail is appended when a line is truncated (e.g. "…"). Its
	// width counts against the budget. Only meaningful without Wrap.
	TruncateTail string
}

// Config carries every prioritized per-Entity setting consumed by the
// estimator, the border resolver, and the renderer. The zero value is usable:
// no borders, no padding, left/top alignment, truncating formatting.
type Config struct {
	padding    entityMap[Padding]
	alignH     entityMap[AlignmentHorizontal]
	alignV     entityMap[AlignmentVertical]
	formatting entityMap[Formatting]
	textColor  entityMap[Color]

	borders      entityMap[Border]
	borderColors entityMap[BorderColors]

	margin Margin
	spans  SpanMap

	// Explicit single-position glyph overrides, highest resolution priority.
	// Keys are border-grid coordinates: a horizontal override at (r, c) sits
	// on horizontal line r (0..rows) inside column c; a vertical override at
	// (r, c) sits on vertical line c (0..cols) inside row r.
	overrideHorizontal map[Position]rune
	overrideVertical   map[Position]rune
}

// SetPadding sets the padding for the given scope.
func (c *Config) SetPadding(e Entity, p Padding) {
	c.padding.set(e, p)
}

// Padding resolves the padding of the cell at pos.
func (c *Config) Padding(pos Position) Padding {
	return c.padding.resolve(pos.Row, pos.Col, Padding{})
}

// SetAlignmentHorizontal sets the horizontal alignment for the given scope.
func (c *Config) SetAlignmentHorizontal(e Entity, a AlignmentHorizontal) {
	c.alignH.set(e, a)
}

// AlignmentHorizontal resolves the horizontal alignment of the cell at pos.
func (c *Config) AlignmentHorizontal(pos Position) AlignmentHorizontal {
	return c.alignH.resolve(pos.Row, pos.Col, AlignLeft)
}

// SetAlignmentVertical sets the vertical alignment for the given scope.
func (c *Config) SetAlignmentVertical(e Entity, a AlignmentVertical) {
	c.alignV.set(e, a)
}

// AlignmentVertical resolves the vertical alignment of the cell at pos.
func (c *Config) AlignmentVertical(pos Position) AlignmentVertical {
	return c.alignV.resolve(pos.Row, pos.Col, AlignTop)
}

// SetFormatting sets the content formatting for the given scope.
func (c *Config) SetFormatting(e Entity, f Formatting) {
	c.formatting.set(e, f)
}

// Formatting resolves the content formatting of the cell at pos.
func (c *Config) Formatting(pos Position) Formatting {
	return c.formatting.resolve(pos.Row, pos.Col, Formatting{})
}

// SetTextColor sets the content color for the given scope.
func (c *Config) SetTextColor(e Entity, col Color) {
	c.textColor.set(e, col)
}

// TextColor resolves the content color of the cell at pos.
func (c *Config) TextColor(pos Position) Color {
	return c.textColor.resolve(pos.Row, pos.Col, Color{})
}

// SetBorder sets the border glyph set for the given scope.
func (c *Config) SetBorder(e Entity, b Border) {
	c.borders.set(e, b)
}

// Border resolves the border glyph set of the cell at pos, ignoring span
// suppression (see borderResolver for the span-aware view).
func (c *Config) Border(pos Position) Border {
	return c.borders.resolve(pos.Row, pos.Col, Border{})
}

// SetBorderColors sets the border glyph colors for the given scope.
func (c *Config) SetBorderColors(e Entity, bc BorderColors) {
	c.borderColors.set(e, bc)
}

// BorderColors resolves the border glyph colors of the cell at pos.
func (c *Config) BorderColors(pos Position) BorderColors {
	return c.borderColors.resolve(pos.Row, pos.Col, BorderColors{})
}

// SetMargin sets the table's outer margin.
func (c *Config) SetMargin(m Margin) {
	c.margin = m
}

// Margin returns the table's outer margin.
func (c *Config) Margin() Margin {
	return c.margin
}

// Spans returns the span map. Callers normally go through Grid's span
// operations, which normalize and clamp requests against the matrix bounds.
func (c *Config) Spans() *SpanMap {
	return &c.spans
}

// OverrideHorizontal forces a single glyph on horizontal border line pos.Row
// inside column pos.Col. Overrides beat every Entity-resolved value.
func (c *Config) OverrideHorizontal(pos Position, r rune) {
	if c.overrideHorizontal == nil {
		c.overrideHorizontal = make(map[Position]rune)
	}
	c.overrideHorizontal[pos] = r
}

// OverrideVertical forces a single glyph on vertical border line pos.Col
// inside row pos.Row.
func (c *Config) OverrideVertical(pos Position, r rune) {
	if c.overrideVertical == nil {
		c.overrideVertical = make(map[Position]rune)
	}
	c.overrideVertical[pos] = r
}

func (c *Config) horizontalOverride(pos Position) (rune, bool) {
	r, ok := c.overrideHorizontal[pos]
	return r, ok
}

func (c *Config) verticalOverride(pos Position) (rune, bool) {
	r, ok := c.overrideVertical[pos]
	return r, ok
}
