package grid

import (
	"github.com/zhiburt/tabled-sub005/width"
)

// Grid owns a cell matrix, its span map and config, and the cached dimension
// arrays. Mutating operations go through Grid so the cache is invalidated on
// every structural change; estimation and rendering themselves are pure. The
// zero config renders borderless, unpadded, left/top aligned text.
//
// A Grid is not safe for concurrent mutation; callers supply their own
// synchronization or treat it as single-threaded.
type Grid struct {
	matrix *Matrix
	config Config
	dims   *Dimension
}

// New builds a grid from row-major cell text. A nil measurer means plain
// display-width measurement; pass a width.TabAware or width.ANSIAware
// measurer to change how content is counted.
func New(rows [][]string, m width.Measurer) *Grid {
	return &Grid{matrix: NewMatrix(rows, m)}
}

// Rows returns the number of logical rows.
func (g *Grid) Rows() int {
	return g.matrix.Rows()
}

// Cols returns the number of logical columns.
func (g *Grid) Cols() int {
	return g.matrix.Cols()
}

// Matrix exposes the underlying cell matrix for read access.
func (g *Grid) Matrix() *Matrix {
	return g.matrix
}

// Config exposes the settings store for read access. Mutations must go
// through Grid's setters, which invalidate the dimension cache.
func (g *Grid) Config() *Config {
	return &g.config
}

// Text returns the content of the cell at pos. Panics if pos is out of
// bounds.
func (g *Grid) Text(pos Position) string {
	return g.matrix.Text(pos)
}

// SetText replaces the content of the cell at pos. Panics if pos is out of
// bounds.
func (g *Grid) SetText(pos Position, text string) {
	g.matrix.SetText(pos, text)
	g.Invalidate()
}

// SetColumnSpan declares that the cell at pos spans the given number of
// columns.
//
//   - span == 0 extends the cell to the last column.
//   - span < 0 extends leftward: the anchor shifts to pos.Col - |span|
//     (clamped at 0), the originally-anchored cell's content moves to the new
//     anchor, and the magnitude is recomputed unsigned.
//   - A span reaching past the matrix bounds is clamped, not rejected.
//   - Existing spans whose coverage intersects the new one are cleared first;
//     last write wins.
//
// Panics if pos itself is out of bounds.
func (g *Grid) SetColumnSpan(pos Position, span int) {
	g.checkBounds(pos)

	if span < 0 {
		newCol := pos.Col + span
		if newCol < 0 {
			newCol = 0
		}
		if newCol != pos.Col {
			g.matrix.SetText(Pos(pos.Row, newCol), g.matrix.Text(pos))
		}
		span = pos.Col - newCol + 1
		pos.Col = newCol
	}

	if span == 0 {
		span = g.Cols() - pos.Col
	}
	if pos.Col+span > g.Cols() {
		span = g.Cols() - pos.Col
	}

	g.config.spans.setColumn(pos, span)
	g.Invalidate()
}

// SetRowSpan declares that the cell at pos spans the given number of rows.
// Magnitude semantics mirror SetColumnSpan, with negative spans extending
// upward. Panics if pos itself is out of bounds.
func (g *Grid) SetRowSpan(pos Position, span int) {
	g.checkBounds(pos)

	if span < 0 {
		newRow := pos.Row + span
		if newRow < 0 {
			newRow = 0
		}
		if newRow != pos.Row {
			g.matrix.SetText(Pos(newRow, pos.Col), g.matrix.Text(pos))
		}
		span = pos.Row - newRow + 1
		pos.Row = newRow
	}

	if span == 0 {
		span = g.Rows() - pos.Row
	}
	if pos.Row+span > g.Rows() {
		span = g.Rows() - pos.Row
	}

	g.config.spans.setRow(pos, span)
	g.Invalidate()
}

// SetPadding sets the padding for the given scope.
func (g *Grid) SetPadding(e Entity, p Padding) {
	g.config.SetPadding(e, p)
	g.Invalidate()
}

// SetAlignmentHorizontal sets the horizontal alignment for the given scope.
func (g *Grid) SetAlignmentHorizontal(e Entity, a AlignmentHorizontal) {
	g.config.SetAlignmentHorizontal(e, a)
	g.Invalidate()
}

// SetAlignmentVertical sets the vertical alignment for the given scope.
func (g *Grid) SetAlignmentVertical(e Entity, a AlignmentVertical) {
	g.config.SetAlignmentVertical(e, a)
	g.Invalidate()
}

// SetFormatting sets the overflow formatting for the given scope.
func (g *Grid) SetFormatting(e Entity, f Formatting) {
	g.config.SetFormatting(e, f)
	g.Invalidate()
}

// SetTextColor sets the content color for the given scope.
func (g *Grid) SetTextColor(e Entity, c Color) {
	g.config.SetTextColor(e, c)
	g.Invalidate()
}

// SetBorder sets the border glyph set for the given scope.
func (g *Grid) SetBorder(e Entity, b Border) {
	g.config.SetBorder(e, b)
	g.Invalidate()
}

// SetBorderColors sets the border glyph colors for the given scope.
func (g *Grid) SetBorderColors(e Entity, bc BorderColors) {
	g.config.SetBorderColors(e, bc)
	g.Invalidate()
}

// SetMargin sets the table's outer margin.
func (g *Grid) SetMargin(m Margin) {
	g.config.SetMargin(m)
	g.Invalidate()
}

// OverrideHorizontal forces a single glyph on a horizontal border line; see
// Config.OverrideHorizontal for coordinates.
func (g *Grid) OverrideHorizontal(pos Position, r rune) {
	g.config.OverrideHorizontal(pos, r)
	g.Invalidate()
}

// OverrideVertical forces a single glyph on a vertical border line.
func (g *Grid) OverrideVertical(pos Position, r rune) {
	g.config.OverrideVertical(pos, r)
	g.Invalidate()
}

// Invalidate drops the cached dimensions. Grid's own setters call it; it is
// exported for callers that mutate the Config directly.
func (g *Grid) Invalidate() {
	g.dims = nil
}

// Dimensions returns the estimated geometry, computing and caching it on
// first use after a mutation.
func (g *Grid) Dimensions() Dimension {
	if g.dims == nil {
		d := Estimate(g.matrix, &g.config)
		g.dims = &d
	}
	return *g.dims
}

// ResolvedBorder returns the border glyphs the cell at pos contributes to
// the output once span suppression is applied: hidden cells contribute
// nothing, span anchors keep their outer border across the whole region.
func (g *Grid) ResolvedBorder(pos Position) Border {
	res := newBorderResolver(&g.config, g.Rows(), g.Cols())
	return res.borderFor(pos)
}

// String renders the grid into its final text block.
func (g *Grid) String() string {
	return Render(g.matrix, &g.config, g.Dimensions())
}

func (g *Grid) checkBounds(pos Position) {
	// Matrix access panics with the canonical message on violation.
	_ = g.matrix.Text(pos)
}
