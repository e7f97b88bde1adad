package grid

import (
	"fmt"
	"strings"

	"github.com/zhiburt/tabled-sub005/width"
)

// Matrix is an ordered 2D collection of multi-line unicode text. Each cell
// lazily splits its text into lines and caches per-line display widths
// through the pluggable measurer chosen at construction.
//
// Access to a position outside the matrix bounds is a caller logic error and
// panics.
type Matrix struct {
	cells    [][]cellText
	cols     int
	measurer width.Measurer
}

type cellText struct {
	text string

	// Populated on first use; invalidated by SetText.
	split      bool
	lines      []string
	lineWidths []int
	width      int
}

// NewMatrix builds a matrix from row-major rows of cell text. Short rows are
// padded with empty cells so the matrix is rectangular. A nil measurer means
// plain measurement.
func NewMatrix(rows [][]string, m width.Measurer) *Matrix {
	if m == nil {
		m = width.NewPlain(nil)
	}

	cols := 0
	for _, row := range rows {
		if len(row) > cols {
			cols = len(row)
		}
	}

	cells := make([][]cellText, len(rows))
	for r, row := range rows {
		cells[r] = make([]cellText, cols)
		for c, text := range row {
			cells[r][c] = cellText{text: text}
		}
	}

	return &Matrix{cells: cells, cols: cols, measurer: m}
}

// Rows returns the number of rows.
func (m *Matrix) Rows() int {
	return len(m.cells)
}

// Cols returns the number of columns.
func (m *Matrix) Cols() int {
	return m.cols
}

// Measurer returns the display-width strategy in use.
func (m *Matrix) Measurer() width.Measurer {
	return m.measurer
}

// Text returns the raw text of the cell at pos.
func (m *Matrix) Text(pos Position) string {
	return m.cell(pos).text
}

// SetText replaces the text of the cell at pos and drops its cached widths.
func (m *Matrix) SetText(pos Position, text string) {
	cell := m.cell(pos)
	cell.text = text
	cell.split = false
	cell.lines = nil
	cell.lineWidths = nil
	cell.width = 0
}

// Lines returns the cell's text split on newlines. The returned slice is
// cached; callers must not mutate it.
func (m *Matrix) Lines(pos Position) []string {
	cell := m.cell(pos)
	m.ensureSplit(cell)
	return cell.lines
}

// LineWidths returns the cached display width of each line of the cell.
func (m *Matrix) LineWidths(pos Position) []int {
	cell := m.cell(pos)
	m.ensureSplit(cell)
	return cell.lineWidths
}

// Width returns the display width of the cell: the maximum of its line widths.
func (m *Matrix) Width(pos Position) int {
	cell := m.cell(pos)
	m.ensureSplit(cell)
	return cell.width
}

// Height returns the number of lines of the cell.
func (m *Matrix) Height(pos Position) int {
	cell := m.cell(pos)
	m.ensureSplit(cell)
	return len(cell.lines)
}

func (m *Matrix) cell(pos Position) *cellText {
	if pos.Row < 0 || pos.Row >= len(m.cells) || pos.Col < 0 || pos.Col >= m.cols {
		panic(fmt.Sprintf("grid: position (%d, %d) out of bounds of %dx%d matrix", pos.Row, pos.Col, len(m.cells), m.cols))
	}
	return &m.cells[pos.Row][pos.Col]
}

func (m *Matrix) ensureSplit(cell *cellText) {
	if cell.split {
		return
	}

	lines := strings.Split(cell.text, "\n")
	widths := make([]int, len(lines))
	maxWidth := 0
	for i, line := range lines {
		if strings.HasSuffix(line, "\r") {
			line = line[:len(line)-1]
			lines[i] = line
		}
		w := m.measurer.Width(line)
		widths[i] = w
		if w > maxWidth {
			maxWidth = w
		}
	}

	cell.split = true
	cell.lines = lines
	cell.lineWidths = widths
	cell.width = maxWidth
}
