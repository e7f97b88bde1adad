package grid

import (
	"sort"

	"golang.org/x/sync/errgroup"
)

// Dimension is the derived geometry of a grid: one display width per column
// and one height in lines per row. It is a pure derivation over the matrix,
// the spans, and the config; callers cache it and recompute after any
// structural mutation.
type Dimension struct {
	Widths  []int
	Heights []int
}

// Estimate computes the per-column widths and per-row heights of the grid.
//
// The first pass sizes every column (and row) from its visible, unspanned
// cells alone. The second pass walks the spans in ascending span-size order
// and widens the covered columns wherever a merged cell needs more room than
// the columns plus their internal border lines provide. The shortfall is
// distributed deterministically: every covered column gains shortfall/count,
// and the first covered column additionally takes the remainder, so the
// covered range ends up holding the merged cell exactly.
func Estimate(m *Matrix, cfg *Config) Dimension {
	res := newBorderResolver(cfg, m.Rows(), m.Cols())

	widths := make([]int, m.Cols())
	for c := 0; c < m.Cols(); c++ {
		widths[c] = columnBaseWidth(m, cfg, c)
	}

	return finishEstimate(m, cfg, res, widths)
}

// EstimateParallel is Estimate with the first-pass column maxima computed
// concurrently. Columns are independent before the span-adjustment pass; the
// wait is the synchronization barrier before spans are applied. The result is
// identical to Estimate's.
func EstimateParallel(m *Matrix, cfg *Config) Dimension {
	res := newBorderResolver(cfg, m.Rows(), m.Cols())

	widths := make([]int, m.Cols())
	var g errgroup.Group
	for c := 0; c < m.Cols(); c++ {
		c := c
		g.Go(func() error {
			widths[c] = columnBaseWidth(m, cfg, c)
			return nil
		})
	}
	_ = g.Wait() // workers never fail; Wait is only the barrier

	return finishEstimate(m, cfg, res, widths)
}

func finishEstimate(m *Matrix, cfg *Config, res *borderResolver, widths []int) Dimension {
	heights := make([]int, m.Rows())
	for r := 0; r < m.Rows(); r++ {
		heights[r] = rowBaseHeight(m, cfg, r)
	}

	if cfg.spans.hasSpans() {
		adjustForColumnSpans(m, cfg, res, widths)
		adjustForRowSpans(m, cfg, res, heights)
	}

	return Dimension{Widths: widths, Heights: heights}
}

// columnBaseWidth is the first-pass width of column c: the maximum padded
// content width over the column's visible cells that span a single column.
func columnBaseWidth(m *Matrix, cfg *Config, c int) int {
	max := 0
	for r := 0; r < m.Rows(); r++ {
		pos := Pos(r, c)
		if !cfg.spans.Visible(pos) {
			continue
		}
		if span, ok := cfg.spans.ColumnSpan(pos); ok && span > 1 {
			continue
		}

		pad := cfg.Padding(pos)
		w := m.Width(pos) + pad.Left.Size + pad.Right.Size
		if w > max {
			max = w
		}
	}
	return max
}

// rowBaseHeight is the first-pass height of row r over its visible cells that
// span a single row.
func rowBaseHeight(m *Matrix, cfg *Config, r int) int {
	max := 0
	for c := 0; c < m.Cols(); c++ {
		pos := Pos(r, c)
		if !cfg.spans.Visible(pos) {
			continue
		}
		if span, ok := cfg.spans.RowSpan(pos); ok && span > 1 {
			continue
		}

		pad := cfg.Padding(pos)
		h := m.Height(pos) + pad.Top.Size + pad.Bottom.Size
		if h > max {
			max = h
		}
	}
	return max
}

type spanRecord struct {
	anchor Position
	span   int
}

// sortSpans orders span records ascending by span size, ties broken by the
// anchor's index along the spanned axis, then the other axis. Smaller spans
// stabilize their columns first so larger overlapping-range spans distribute
// slack over settled values instead of inflating twice.
func sortSpans(records []spanRecord, byColumn bool) {
	sort.Slice(records, func(i, j int) bool {
		a, b := records[i], records[j]
		if a.span != b.span {
			return a.span < b.span
		}
		if byColumn {
			if a.anchor.Col != b.anchor.Col {
				return a.anchor.Col < b.anchor.Col
			}
			return a.anchor.Row < b.anchor.Row
		}
		if a.anchor.Row != b.anchor.Row {
			return a.anchor.Row < b.anchor.Row
		}
		return a.anchor.Col < b.anchor.Col
	})
}

func adjustForColumnSpans(m *Matrix, cfg *Config, res *borderResolver, widths []int) {
	records := make([]spanRecord, 0, len(cfg.spans.columns))
	for anchor, span := range cfg.spans.columns {
		if anchor.Row < 0 || anchor.Row >= m.Rows() || anchor.Col < 0 || anchor.Col >= m.Cols() {
			continue
		}
		records = append(records, spanRecord{anchor: anchor, span: span})
	}
	sortSpans(records, true)

	for _, rec := range records {
		first := rec.anchor.Col
		last := first + rec.span - 1
		if last > m.Cols()-1 {
			last = m.Cols() - 1
		}

		pad := cfg.Padding(rec.anchor)
		need := m.Width(rec.anchor) + pad.Left.Size + pad.Right.Size

		have := 0
		for c := first; c <= last; c++ {
			have += widths[c]
		}
		for line := first + 1; line <= last; line++ {
			if res.vline(line) {
				have++
			}
		}

		if need <= have {
			continue
		}

		distributeShortfall(widths[first:last+1], need-have)
	}
}

func adjustForRowSpans(m *Matrix, cfg *Config, res *borderResolver, heights []int) {
	records := make([]spanRecord, 0, len(cfg.spans.rows))
	for anchor, span := range cfg.spans.rows {
		if anchor.Row < 0 || anchor.Row >= m.Rows() || anchor.Col < 0 || anchor.Col >= m.Cols() {
			continue
		}
		records = append(records, spanRecord{anchor: anchor, span: span})
	}
	sortSpans(records, false)

	for _, rec := range records {
		first := rec.anchor.Row
		last := first + rec.span - 1
		if last > m.Rows()-1 {
			last = m.Rows() - 1
		}

		pad := cfg.Padding(rec.anchor)
		need := m.Height(rec.anchor) + pad.Top.Size + pad.Bottom.Size

		have := 0
		for r := first; r <= last; r++ {
			have += heights[r]
		}
		for line := first + 1; line <= last; line++ {
			if res.hline(line) {
				have++
			}
		}

		if need <= have {
			continue
		}

		distributeShortfall(heights[first:last+1], need-have)
	}
}

// distributeShortfall grows the covered sizes by exactly shortfall: everyone
// gains shortfall/n, the first covered entry additionally takes the
// remainder. Fixed remainder bias keeps the result reproducible.
func distributeShortfall(covered []int, shortfall int) {
	n := len(covered)
	if n == 0 {
		return
	}
	base := shortfall / n
	remainder := shortfall % n

	for i := range covered {
		covered[i] += base
	}
	covered[0] += remainder
}
