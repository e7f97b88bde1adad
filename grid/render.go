package grid

import (
	"strings"

	"github.com/zhiburt/tabled-sub005/width"
)

// Render walks the logical grid once and emits the final text block: content
// rows interleaved with horizontal separator lines, wrapped in the configured
// margin. Every emitted line has identical display width. The output is
// linefeed separated with no trailing newline.
//
// dims is normally the cached result of Estimate over the same matrix and
// config; callers handing in stale dimensions get what they asked for.
func Render(m *Matrix, cfg *Config, dims Dimension) string {
	rows, cols := m.Rows(), m.Cols()
	if rows == 0 || cols == 0 {
		return ""
	}

	rd := renderer{
		m:    m,
		cfg:  cfg,
		res:  newBorderResolver(cfg, rows, cols),
		dims: dims,
	}

	var lines []string
	for r := 0; r <= rows; r++ {
		if rd.res.hline(r) {
			lines = append(lines, rd.separatorLine(r))
		}
		if r < rows {
			for k := 0; k < dims.Heights[r]; k++ {
				lines = append(lines, rd.contentLine(r, k))
			}
		}
	}

	return strings.Join(applyMargin(lines, cfg.Margin(), rd.totalWidth()), "\n")
}

type renderer struct {
	m    *Matrix
	cfg  *Config
	res  *borderResolver
	dims Dimension
}

// totalWidth is the display width of every core line: all column widths plus
// every globally present vertical line.
func (rd *renderer) totalWidth() int {
	total := 0
	for _, w := range rd.dims.Widths {
		total += w
	}
	for c := 0; c <= rd.m.Cols(); c++ {
		if rd.res.vline(c) {
			total++
		}
	}
	return total
}

// contentLine emits line k of logical row r.
func (rd *renderer) contentLine(r, k int) string {
	var b strings.Builder

	c := 0
	for c < rd.m.Cols() {
		rd.writeVertical(&b, r, c)

		anchor := Pos(r, c)
		if covering, covered := rd.cfg.spans.coveredBy(anchor); covered {
			anchor = covering
		}
		_, colSpan := rd.cfg.spans.extent(anchor)

		idx := rd.regionContentOffset(anchor, r, k)
		b.WriteString(rd.regionLine(anchor, idx))

		c += colSpan
	}

	rd.writeVertical(&b, r, rd.m.Cols())
	return b.String()
}

// separatorLine emits horizontal line r. Segments belonging to a row-span
// region that crosses this line carry the region's content instead of border
// glyphs.
func (rd *renderer) separatorLine(r int) string {
	var b strings.Builder

	c := 0
	for c < rd.m.Cols() {
		rd.writeIntersection(&b, r, c)

		if rd.res.horizontalSuppressed(r, c) {
			// A row span crosses this line here: the region continues.
			anchor := Pos(r, c)
			if covering, covered := rd.cfg.spans.coveredBy(anchor); covered {
				anchor = covering
			}
			_, colSpan := rd.cfg.spans.extent(anchor)

			idx := rd.regionSeparatorOffset(anchor, r)
			b.WriteString(rd.regionLine(anchor, idx))

			c += colSpan
			continue
		}

		glyph, color, ok := rd.res.horizontalGlyph(r, c)
		segment := strings.Repeat(" ", rd.dims.Widths[c])
		if ok && glyph != 0 {
			segment = color.Sprint(strings.Repeat(string(glyph), rd.dims.Widths[c]))
		}
		b.WriteString(segment)
		c++
	}

	rd.writeIntersection(&b, r, rd.m.Cols())
	return b.String()
}

// writeVertical emits the vertical line glyph at line col within content row
// row, or nothing when the line is absent or absorbed by a span there.
func (rd *renderer) writeVertical(b *strings.Builder, row, col int) {
	if !rd.res.vline(col) {
		return
	}
	if rd.res.verticalSuppressed(col, row) {
		return
	}

	glyph, color, _ := rd.res.verticalGlyph(row, col)
	if glyph == 0 {
		b.WriteByte(' ')
		return
	}
	b.WriteString(color.Sprint(string(glyph)))
}

// writeIntersection emits the crossing glyph at (row, col) on a separator
// line, or nothing when the point is interior to a span region.
func (rd *renderer) writeIntersection(b *strings.Builder, row, col int) {
	if !rd.res.vline(col) {
		return
	}
	if rd.res.regionInterior(row, col) {
		return
	}

	glyph, color := rd.res.intersectionGlyph(row, col)
	if glyph == 0 {
		b.WriteByte(' ')
		return
	}
	b.WriteString(color.Sprint(string(glyph)))
}

// regionWidth is the content width available to the region anchored at
// anchor: the covered column widths plus the absorbed internal vertical
// lines.
func (rd *renderer) regionWidth(anchor Position) int {
	_, colSpan := rd.cfg.spans.extent(anchor)
	last := anchor.Col + colSpan - 1
	if last > rd.m.Cols()-1 {
		last = rd.m.Cols() - 1
	}

	w := 0
	for c := anchor.Col; c <= last; c++ {
		w += rd.dims.Widths[c]
	}
	for line := anchor.Col + 1; line <= last; line++ {
		if rd.res.vline(line) {
			w++
		}
	}
	return w
}

// regionHeight is the number of output lines the region anchored at anchor
// occupies: the covered row heights plus the absorbed separator lines.
func (rd *renderer) regionHeight(anchor Position) int {
	rowSpan, _ := rd.cfg.spans.extent(anchor)
	last := anchor.Row + rowSpan - 1
	if last > rd.m.Rows()-1 {
		last = rd.m.Rows() - 1
	}

	h := 0
	for r := anchor.Row; r <= last; r++ {
		h += rd.dims.Heights[r]
	}
	for line := anchor.Row + 1; line <= last; line++ {
		if rd.res.hline(line) {
			h++
		}
	}
	return h
}

// regionContentOffset maps content line k of logical row r onto the region's
// own line index.
func (rd *renderer) regionContentOffset(anchor Position, r, k int) int {
	idx := k
	for rr := anchor.Row; rr < r; rr++ {
		idx += rd.dims.Heights[rr]
	}
	for line := anchor.Row + 1; line <= r; line++ {
		if rd.res.hline(line) {
			idx++
		}
	}
	return idx
}

// regionSeparatorOffset maps the separator line r (crossed by the region)
// onto the region's own line index.
func (rd *renderer) regionSeparatorOffset(anchor Position, r int) int {
	idx := 0
	for rr := anchor.Row; rr < r; rr++ {
		idx += rd.dims.Heights[rr]
	}
	for line := anchor.Row + 1; line < r; line++ {
		if rd.res.hline(line) {
			idx++
		}
	}
	return idx
}

// regionLine composes output line idx of the cell region anchored at anchor:
// vertical padding or the vertically-aligned content line, framed by the
// horizontal padding indents.
func (rd *renderer) regionLine(anchor Position, idx int) string {
	pad := rd.cfg.Padding(anchor)
	regionWidth := rd.regionWidth(anchor)
	regionHeight := rd.regionHeight(anchor)

	avail := regionWidth - pad.Left.Size - pad.Right.Size
	if avail < 0 {
		avail = 0
	}

	if idx < pad.Top.Size {
		return indentLine(pad.Top, regionWidth)
	}
	if idx >= regionHeight-pad.Bottom.Size {
		return indentLine(pad.Bottom, regionWidth)
	}

	left := indentSegment(pad.Left)
	right := indentSegment(pad.Right)

	lines := rd.fittedLines(anchor, avail)
	innerHeight := regionHeight - pad.Top.Size - pad.Bottom.Size

	deficit := innerHeight - len(lines)
	if deficit < 0 {
		deficit = 0
	}
	var offset int
	switch rd.cfg.AlignmentVertical(anchor) {
	case AlignBottom:
		offset = deficit
	case AlignCenterVertical:
		offset = deficit / 2 // odd remainder pads the bottom
	default:
		offset = 0
	}

	lineNo := idx - pad.Top.Size - offset
	if lineNo < 0 || lineNo >= len(lines) {
		return left + strings.Repeat(" ", avail) + right
	}

	return left + rd.alignedContent(anchor, lines[lineNo], avail) + right
}

// fittedLines returns the cell's lines fit to the available width: wrapped or
// truncated per the resolved formatting whenever a line overflows. With
// natural column sizing nothing overflows; this path exists for span regions
// reshaped by later mutations and for callers feeding stale dimensions.
func (rd *renderer) fittedLines(anchor Position, avail int) []string {
	lines := rd.m.Lines(anchor)
	lineWidths := rd.m.LineWidths(anchor)

	overflow := false
	for _, w := range lineWidths {
		if w > avail {
			overflow = true
			break
		}
	}
	if !overflow {
		return lines
	}

	f := rd.cfg.Formatting(anchor)
	measurer := rd.m.Measurer()
	out := make([]string, 0, len(lines))
	for i, line := range lines {
		if lineWidths[i] <= avail {
			out = append(out, line)
			continue
		}
		if f.Wrap {
			out = append(out, width.Wrap(line, avail, f.KeepWords, measurer)...)
		} else {
			out = append(out, width.Truncate(line, avail, f.TruncateTail, measurer))
		}
	}
	return out
}

// alignedContent places one content line inside the available width per the
// resolved horizontal alignment. Centering puts the odd remainder on the
// right. The text color decorates the text only, never the alignment fill.
func (rd *renderer) alignedContent(anchor Position, line string, avail int) string {
	w := rd.m.Measurer().Width(line)
	gap := avail - w
	if gap < 0 {
		gap = 0
	}

	var leftGap int
	switch rd.cfg.AlignmentHorizontal(anchor) {
	case AlignRight:
		leftGap = gap
	case AlignCenterHorizontal:
		leftGap = gap / 2
	default:
		leftGap = 0
	}

	colored := rd.cfg.TextColor(anchor).Sprint(line)
	return strings.Repeat(" ", leftGap) + colored + strings.Repeat(" ", gap-leftGap)
}

// indentSegment renders one horizontal padding or margin indent.
func indentSegment(in Indent) string {
	if in.Size <= 0 {
		return ""
	}
	return in.Color.Sprint(strings.Repeat(string(in.fill()), in.Size))
}

// indentLine renders one vertical padding line filling the whole region.
func indentLine(in Indent, total int) string {
	if total <= 0 {
		return ""
	}
	return in.Color.Sprint(strings.Repeat(string(in.fill()), total))
}

// applyMargin wraps the core lines in the configured outer margin, keeping
// every emitted line at identical display width.
func applyMargin(core []string, m Margin, coreWidth int) []string {
	if m.Left.Size == 0 && m.Right.Size == 0 && m.Top.Size == 0 && m.Bottom.Size == 0 {
		return core
	}

	left := indentSegment(m.Left)
	right := indentSegment(m.Right)
	totalWidth := coreWidth + m.Left.Size + m.Right.Size

	out := make([]string, 0, len(core)+m.Top.Size+m.Bottom.Size)
	for i := 0; i < m.Top.Size; i++ {
		out = append(out, indentLine(m.Top, totalWidth))
	}
	for _, line := range core {
		out = append(out, left+line+right)
	}
	for i := 0; i < m.Bottom.Size; i++ {
		out = append(out, indentLine(m.Bottom, totalWidth))
	}
	return out
}
