package grid

// Entity is the scope granularity of a setting: the whole grid, one row, one
// column, or one cell. Settings resolve most-specific-first: a value set on a
// cell beats one set on its column, which beats its row, which beats the
// global default.
type Entity struct {
	kind entityKind
	row  int
	col  int
}

type entityKind uint8

const (
	kindGlobal entityKind = iota
	kindRow
	kindColumn
	kindCell
)

// Global scopes a setting to every cell.
var Global = Entity{kind: kindGlobal}

// Row scopes a setting to every cell of row r.
func Row(r int) Entity {
	return Entity{kind: kindRow, row: r}
}

// Column scopes a setting to every cell of column c.
func Column(c int) Entity {
	return Entity{kind: kindColumn, col: c}
}

// Cell scopes a setting to the single cell at (r, c).
func Cell(r, c int) Entity {
	return Entity{kind: kindCell, row: r, col: c}
}

// entityMap is a sparse per-Entity store with ordered fallback lookup. No
// dense per-cell matrix of settings exists; only explicitly set scopes occupy
// memory.
type entityMap[T any] struct {
	global    T
	globalSet bool
	rows      map[int]T
	columns   map[int]T
	cells     map[Position]T
}

func (m *entityMap[T]) set(e Entity, v T) {
	switch e.kind {
	case kindGlobal:
		m.global = v
		m.globalSet = true
	case kindRow:
		if m.rows == nil {
			m.rows = make(map[int]T)
		}
		m.rows[e.row] = v
	case kindColumn:
		if m.columns == nil {
			m.columns = make(map[int]T)
		}
		m.columns[e.col] = v
	case kindCell:
		if m.cells == nil {
			m.cells = make(map[Position]T)
		}
		m.cells[Position{Row: e.row, Col: e.col}] = v
	}
}

// lookup resolves the value for the cell at (row, col): cell, then column,
// then row, then global. The second result reports whether any scope had a
// value.
func (m *entityMap[T]) lookup(row, col int) (T, bool) {
	if m.cells != nil {
		if v, ok := m.cells[Position{Row: row, Col: col}]; ok {
			return v, true
		}
	}
	if m.columns != nil {
		if v, ok := m.columns[col]; ok {
			return v, true
		}
	}
	if m.rows != nil {
		if v, ok := m.rows[row]; ok {
			return v, true
		}
	}
	if m.globalSet {
		return m.global, true
	}
	var zero T
	return zero, false
}

// resolve is lookup with a fallback default for unset scopes.
func (m *entityMap[T]) resolve(row, col int, def T) T {
	if v, ok := m.lookup(row, col); ok {
		return v
	}
	return def
}
