package grid

// SpanMap is a sparse record of cell merges: an anchor position mapped to how
// many columns and/or rows its content visually occupies. Every position
// covered by a span other than the anchor is invisible: excluded from
// independent sizing and border drawing, and carrying no span of its own.
//
// Covered positions are not back-pointers; visibility is a derived predicate
// over the anchor records.
type SpanMap struct {
	columns map[Position]int
	rows    map[Position]int
}

// ColumnSpan returns the column span anchored at pos, if any. Returned spans
// are always >= 2; unspanned cells report no span.
func (s *SpanMap) ColumnSpan(pos Position) (int, bool) {
	n, ok := s.columns[pos]
	return n, ok
}

// RowSpan returns the row span anchored at pos, if any.
func (s *SpanMap) RowSpan(pos Position) (int, bool) {
	n, ok := s.rows[pos]
	return n, ok
}

// Visible reports whether pos is not hidden beneath another cell's span.
// Anchors are visible; every other position inside an anchor's coverage
// rectangle is not.
func (s *SpanMap) Visible(pos Position) bool {
	_, covered := s.coveredBy(pos)
	return !covered
}

// coveredBy returns the anchor whose span hides pos. The anchor itself is
// never reported as covered.
func (s *SpanMap) coveredBy(pos Position) (Position, bool) {
	for anchor := range s.columns {
		if anchor != pos && s.rectContains(anchor, pos) {
			return anchor, true
		}
	}
	for anchor := range s.rows {
		if _, alsoCol := s.columns[anchor]; alsoCol {
			continue // already checked through the columns map
		}
		if anchor != pos && s.rectContains(anchor, pos) {
			return anchor, true
		}
	}
	return Position{}, false
}

// extent returns the effective coverage of an anchor: at least 1x1.
func (s *SpanMap) extent(anchor Position) (rowSpan, colSpan int) {
	rowSpan, colSpan = 1, 1
	if n, ok := s.rows[anchor]; ok {
		rowSpan = n
	}
	if n, ok := s.columns[anchor]; ok {
		colSpan = n
	}
	return rowSpan, colSpan
}

func (s *SpanMap) rectContains(anchor, pos Position) bool {
	rowSpan, colSpan := s.extent(anchor)
	return pos.Row >= anchor.Row && pos.Row < anchor.Row+rowSpan &&
		pos.Col >= anchor.Col && pos.Col < anchor.Col+colSpan
}

func (s *SpanMap) rectsIntersect(a, b Position) bool {
	aRows, aCols := s.extent(a)
	bRows, bCols := s.extent(b)
	return a.Row < b.Row+bRows && a.Row+aRows > b.Row &&
		a.Col < b.Col+bCols && a.Col+aCols > b.Col
}

// setColumn installs a column span at pos, first clearing every existing
// column span whose coverage intersects the new one (last write wins). The
// caller has already normalized and clamped span against the matrix bounds; a
// span of 1 just removes any existing record.
func (s *SpanMap) setColumn(pos Position, span int) {
	delete(s.columns, pos)
	if span <= 1 {
		return
	}

	if s.columns == nil {
		s.columns = make(map[Position]int)
	}
	s.columns[pos] = span

	for anchor := range s.columns {
		if anchor != pos && s.rectsIntersect(pos, anchor) {
			delete(s.columns, anchor)
		}
	}
}

// setRow installs a row span at pos, clearing intersecting row spans. Row and
// column spans are independent layers; setting one never clears the other.
func (s *SpanMap) setRow(pos Position, span int) {
	delete(s.rows, pos)
	if span <= 1 {
		return
	}

	if s.rows == nil {
		s.rows = make(map[Position]int)
	}
	s.rows[pos] = span

	for anchor := range s.rows {
		if anchor != pos && s.rectsIntersect(pos, anchor) {
			delete(s.rows, anchor)
		}
	}
}

// hasSpans reports whether any merge exists at all; lets the estimator skip
// the second pass entirely for plain matrices.
func (s *SpanMap) hasSpans() bool {
	return len(s.columns) > 0 || len(s.rows) > 0
}
