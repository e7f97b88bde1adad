// Package grid lays out a rectangular matrix of multi-line text cells into a
// fixed-width monospace block suitable for terminal display. It supports
// row/column merges (spans), per-scope padding, alignment, border glyphs, and
// color decoration, with all geometry computed in terminal display-width
// units.
//
// The engine is pure computation: estimation and rendering are deterministic
// functions over the matrix, the span map, and the config. The only mutable
// state is the dimension cache owned by Grid, invalidated on any structural
// mutation.
package grid

// Position identifies a cell by zero-based row and column.
type Position struct {
	Row int
	Col int
}

// Pos is shorthand for Position{Row: row, Col: col}.
func Pos(row, col int) Position {
	return Position{Row: row, Col: col}
}

// Less orders positions lexicographically: first by row, then by column.
func (p Position) Less(other Position) bool {
	if p.Row != other.Row {
		return p.Row < other.Row
	}
	return p.Col < other.Col
}
