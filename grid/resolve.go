package grid

// borderResolver decides, for every grid line and intersection, whether a
// glyph is drawn there and which one. It consumes only the config and the
// matrix shape; geometry (widths/heights) is not needed to answer presence
// questions, which lets the dimension estimator consult it for border
// counting before any dimensions exist.
//
// Glyph coordinates: horizontal line r runs above content row r (0..rows);
// vertical line c runs left of content column c (0..cols). The intersection
// (r, c) is where those two cross.
type borderResolver struct {
	cfg  *Config
	rows int
	cols int

	vlines []bool // global presence of each vertical line, len cols+1
	hlines []bool // global presence of each horizontal line, len rows+1
}

func newBorderResolver(cfg *Config, rows, cols int) *borderResolver {
	b := &borderResolver{
		cfg:    cfg,
		rows:   rows,
		cols:   cols,
		vlines: make([]bool, cols+1),
		hlines: make([]bool, rows+1),
	}

	for c := 0; c <= cols; c++ {
		b.vlines[c] = b.computeVLine(c)
	}
	for r := 0; r <= rows; r++ {
		b.hlines[r] = b.computeHLine(r)
	}

	return b
}

// computeVLine reports whether vertical line c exists anywhere in the grid.
// Span suppression is ignored here: a line hidden in one row still occupies a
// column of the output in every other row.
func (b *borderResolver) computeVLine(c int) bool {
	for r := 0; r < b.rows; r++ {
		if _, ok := b.cfg.verticalOverride(Pos(r, c)); ok {
			return true
		}
		if c < b.cols && b.cfg.Border(Pos(r, c)).Left != 0 {
			return true
		}
		if c > 0 && b.cfg.Border(Pos(r, c-1)).Right != 0 {
			return true
		}
	}
	return false
}

func (b *borderResolver) computeHLine(r int) bool {
	for c := 0; c < b.cols; c++ {
		if _, ok := b.cfg.horizontalOverride(Pos(r, c)); ok {
			return true
		}
		if r < b.rows && b.cfg.Border(Pos(r, c)).Top != 0 {
			return true
		}
		if r > 0 && b.cfg.Border(Pos(r-1, c)).Bottom != 0 {
			return true
		}
	}
	return false
}

// vline reports global presence of vertical line c: whether that line
// occupies a column of the output at all.
func (b *borderResolver) vline(c int) bool {
	return c >= 0 && c <= b.cols && b.vlines[c]
}

// hline reports global presence of horizontal line r.
func (b *borderResolver) hline(r int) bool {
	return r >= 0 && r <= b.rows && b.hlines[r]
}

// HasVertical reports whether vertical line col is actually drawn within
// content row row, i.e. the line globally exists and no column span absorbs
// it there.
func (b *borderResolver) HasVertical(col, row int) bool {
	if !b.vline(col) {
		return false
	}
	return !b.verticalSuppressed(col, row)
}

// HasHorizontal reports whether horizontal line row is actually drawn within
// content column col.
func (b *borderResolver) HasHorizontal(row, col int) bool {
	if !b.hline(row) {
		return false
	}
	return !b.horizontalSuppressed(row, col)
}

// verticalSuppressed reports whether a span region straddles vertical line
// col in content row row, absorbing the line into its content area.
func (b *borderResolver) verticalSuppressed(col, row int) bool {
	spans := &b.cfg.spans
	for anchor := range spans.columns {
		rowSpan, colSpan := spans.extent(anchor)
		if anchor.Col < col && col < anchor.Col+colSpan &&
			anchor.Row <= row && row < anchor.Row+rowSpan {
			return true
		}
	}
	return false
}

// horizontalSuppressed reports whether a span region straddles horizontal
// line row in content column col.
func (b *borderResolver) horizontalSuppressed(row, col int) bool {
	spans := &b.cfg.spans
	for anchor := range spans.rows {
		rowSpan, colSpan := spans.extent(anchor)
		if anchor.Row < row && row < anchor.Row+rowSpan &&
			anchor.Col <= col && col < anchor.Col+colSpan {
			return true
		}
	}
	return false
}

// regionInterior reports whether intersection (row, col) lies strictly
// inside some span region's coverage rectangle, in which case the point
// belongs to the region's content area and no glyph exists there.
func (b *borderResolver) regionInterior(row, col int) bool {
	spans := &b.cfg.spans
	interior := func(anchor Position) bool {
		rowSpan, colSpan := spans.extent(anchor)
		return anchor.Row < row && row < anchor.Row+rowSpan &&
			anchor.Col < col && col < anchor.Col+colSpan
	}

	for anchor := range spans.columns {
		if interior(anchor) {
			return true
		}
	}
	for anchor := range spans.rows {
		if interior(anchor) {
			return true
		}
	}
	return false
}

// borderFor returns the border glyphs the cell at pos contributes to the
// output, after span suppression:
//
//   - A visible, unspanned cell contributes its Entity-resolved set.
//   - A span anchor contributes only the edges on its coverage rectangle's
//     outline that start at the anchor corner; edges interior to the
//     rectangle are suppressed.
//   - A hidden cell contributes nothing of its own, but where it sits on its
//     anchor's rectangle outline, the anchor's glyphs extend through it: the
//     anchor's outer border is always drawn.
//
// Out-of-range positions contribute nothing.
func (b *borderResolver) borderFor(pos Position) Border {
	if pos.Row < 0 || pos.Row >= b.rows || pos.Col < 0 || pos.Col >= b.cols {
		return Border{}
	}

	spans := &b.cfg.spans
	anchor := pos
	if covering, covered := spans.coveredBy(pos); covered {
		anchor = covering
	}

	border := b.cfg.Border(anchor)
	rowSpan, colSpan := spans.extent(anchor)
	top := anchor.Row
	left := anchor.Col
	bottom := anchor.Row + rowSpan - 1
	right := anchor.Col + colSpan - 1

	var out Border
	if pos.Row == top {
		out.Top = border.Top
	}
	if pos.Row == bottom {
		out.Bottom = border.Bottom
	}
	if pos.Col == left {
		out.Left = border.Left
	}
	if pos.Col == right {
		out.Right = border.Right
	}
	if pos.Row == top && pos.Col == left {
		out.TopLeft = border.TopLeft
	}
	if pos.Row == top && pos.Col == right {
		out.TopRight = border.TopRight
	}
	if pos.Row == bottom && pos.Col == left {
		out.BottomLeft = border.BottomLeft
	}
	if pos.Row == bottom && pos.Col == right {
		out.BottomRight = border.BottomRight
	}
	return out
}

// colorsFor mirrors borderFor for the per-glyph colors.
func (b *borderResolver) colorsFor(pos Position) BorderColors {
	if pos.Row < 0 || pos.Row >= b.rows || pos.Col < 0 || pos.Col >= b.cols {
		return BorderColors{}
	}

	anchor := pos
	if covering, covered := b.cfg.spans.coveredBy(pos); covered {
		anchor = covering
	}
	return b.cfg.BorderColors(anchor)
}

// verticalGlyph resolves the glyph drawn on vertical line col within content
// row row. Resolution order: explicit override, then the left owner's Right
// glyph, then the right owner's Left glyph (left owner wins on conflict).
// A zero rune with ok=true means the line position exists but no owner set a
// glyph; the renderer fills it with a space. ok=false means the line is
// absent or suppressed here and nothing is emitted.
func (b *borderResolver) verticalGlyph(row, col int) (rune, Color, bool) {
	if !b.vline(col) {
		return 0, Color{}, false
	}
	if b.verticalSuppressed(col, row) {
		return 0, Color{}, false
	}

	if r, ok := b.cfg.verticalOverride(Pos(row, col)); ok {
		return r, Color{}, true
	}

	if left := b.borderFor(Pos(row, col-1)); left.Right != 0 {
		return left.Right, b.colorsFor(Pos(row, col-1)).Right, true
	}
	if right := b.borderFor(Pos(row, col)); right.Left != 0 {
		return right.Left, b.colorsFor(Pos(row, col)).Left, true
	}
	return 0, Color{}, true
}

// horizontalGlyph resolves the glyph drawn on horizontal line row within
// content column col. The top owner's Bottom glyph wins over the bottom
// owner's Top glyph.
func (b *borderResolver) horizontalGlyph(row, col int) (rune, Color, bool) {
	if !b.hline(row) {
		return 0, Color{}, false
	}
	if b.horizontalSuppressed(row, col) {
		return 0, Color{}, false
	}

	if r, ok := b.cfg.horizontalOverride(Pos(row, col)); ok {
		return r, Color{}, true
	}

	if top := b.borderFor(Pos(row-1, col)); top.Bottom != 0 {
		return top.Bottom, b.colorsFor(Pos(row - 1, col)).Bottom, true
	}
	if bottom := b.borderFor(Pos(row, col)); bottom.Top != 0 {
		return bottom.Top, b.colorsFor(Pos(row, col)).Top, true
	}
	return 0, Color{}, true
}

// intersectionGlyph resolves the glyph at the crossing of horizontal line row
// and vertical line col. The four adjacent cells' corners compete in
// row-major order (first owner wins); the winner is then corrected against
// the actual line topology so tees and crossings come out right next to
// spans: a corner glyph is replaced by its family's glyph for the set of
// directions that really carry a line at this point.
func (b *borderResolver) intersectionGlyph(row, col int) (rune, Color) {
	type candidate struct {
		pos   Position
		glyph rune
		color Color
	}

	topLeft := b.borderFor(Pos(row-1, col-1))
	topRight := b.borderFor(Pos(row-1, col))
	bottomLeft := b.borderFor(Pos(row, col-1))
	bottomRight := b.borderFor(Pos(row, col))

	candidates := []candidate{
		{Pos(row-1, col-1), topLeft.BottomRight, b.colorsFor(Pos(row-1, col-1)).BottomRight},
		{Pos(row-1, col), topRight.BottomLeft, b.colorsFor(Pos(row - 1, col)).BottomLeft},
		{Pos(row, col-1), bottomLeft.TopRight, b.colorsFor(Pos(row, col-1)).TopRight},
		{Pos(row, col), bottomRight.TopLeft, b.colorsFor(Pos(row, col)).TopLeft},
	}

	var winner rune
	var color Color
	for _, cand := range candidates {
		if cand.glyph != 0 {
			winner = cand.glyph
			color = cand.color
			break
		}
	}

	mask := b.intersectionMask(row, col)
	if corrected, ok := correctIntersection(winner, mask); ok {
		winner = corrected
	}

	if winner == 0 {
		// No corner configured anywhere: borrow the straight glyph of
		// whichever line runs through.
		if mask&edgeLeft != 0 {
			if g, c, ok := b.horizontalGlyph(row, col-1); ok && g != 0 {
				return g, c
			}
		}
		if mask&edgeRight != 0 {
			if g, c, ok := b.horizontalGlyph(row, col); ok && g != 0 {
				return g, c
			}
		}
		if mask&edgeUp != 0 {
			if g, c, ok := b.verticalGlyph(row-1, col); ok && g != 0 {
				return g, c
			}
		}
		if mask&edgeDown != 0 {
			if g, c, ok := b.verticalGlyph(row, col); ok && g != 0 {
				return g, c
			}
		}
	}

	return winner, color
}

// intersectionMask probes the four directions around intersection (row, col)
// for actually drawn lines, accounting for span suppression among the
// neighboring rows and columns.
func (b *borderResolver) intersectionMask(row, col int) edgeMask {
	var mask edgeMask
	if row > 0 && b.HasVertical(col, row-1) {
		mask |= edgeUp
	}
	if row < b.rows && b.HasVertical(col, row) {
		mask |= edgeDown
	}
	if col > 0 && b.HasHorizontal(row, col-1) {
		mask |= edgeLeft
	}
	if col < b.cols && b.HasHorizontal(row, col) {
		mask |= edgeRight
	}
	return mask
}
