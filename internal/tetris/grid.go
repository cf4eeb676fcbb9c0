package tetris

import (
	"fmt"
	"strings"
)

// Playfield dimensions.
const (
	Rows     = 20
	Columns  = 10
	NumCells = Rows * Columns
)

// Cell is a row-major index into the playfield: row*Columns + col.
type Cell int

// NoCell is the cursor value that starts a filled-cell traversal.
const NoCell Cell = -1

// InBounds reports whether (row, col) lies on the playfield.
func InBounds(row, col int) bool {
	return row >= 0 && row < Rows && col >= 0 && col < Columns
}

// CellIndex converts a row/column pair to a cell index.
// Panics if the pair is off the playfield.
func CellIndex(row, col int) Cell {
	if !InBounds(row, col) {
		panic(fmt.Sprintf("tetris: cell (%d,%d) out of bounds", row, col))
	}
	return Cell(row*Columns + col)
}

// RowCol converts a cell index back to its row and column.
// Panics if the index is off the playfield.
func RowCol(c Cell) (row, col int) {
	if !c.Valid() {
		panic(fmt.Sprintf("tetris: cell %d out of bounds", c))
	}
	return int(c) / Columns, int(c) % Columns
}

// Valid reports whether the index addresses a playfield cell.
func (c Cell) Valid() bool {
	return c >= 0 && c < NumCells
}

// Row returns the row of the cell.
func (c Cell) Row() int {
	row, _ := RowCol(c)
	return row
}

// Col returns the column of the cell.
func (c Cell) Col() int {
	_, col := RowCol(c)
	return col
}

// Grid is the occupancy matrix. Row 0 is the top row.
// The zero value is an empty playfield.
type Grid struct {
	cells [NumCells]bool
}

// NewGrid returns an empty grid.
func NewGrid() *Grid {
	return &Grid{}
}

// IsOccupied reports whether the cell holds a settled block.
func (g *Grid) IsOccupied(c Cell) bool {
	mustBeValid(c)
	return g.cells[c]
}

// Occupy marks the cell as holding a settled block.
func (g *Grid) Occupy(c Cell) {
	mustBeValid(c)
	g.cells[c] = true
}

// IsRowFilled reports whether every column of the row is occupied.
func (g *Grid) IsRowFilled(row int) bool {
	if row < 0 || row >= Rows {
		panic(fmt.Sprintf("tetris: row %d out of bounds", row))
	}
	for col := range Columns {
		if !g.cells[row*Columns+col] {
			return false
		}
	}
	return true
}

// CountFilledRows returns the number of completely occupied rows.
func (g *Grid) CountFilledRows() int {
	n := 0
	for row := range Rows {
		if g.IsRowFilled(row) {
			n++
		}
	}
	return n
}

// FilledCellAfter returns the cell that follows cursor in the clear-animation
// traversal, or false once every cell of every filled row has been visited.
// Pass NoCell to start.
//
// Filled rows are walked from the bottom of the playfield upward, and each row
// from its rightmost column to its leftmost before wrapping to the next filled
// row above. That is descending cell index restricted to filled rows.
func (g *Grid) FilledCellAfter(cursor Cell) (Cell, bool) {
	start := NumCells - 1
	if cursor != NoCell {
		mustBeValid(cursor)
		start = int(cursor) - 1
	}

	for i := start; i >= 0; {
		row := i / Columns
		if g.IsRowFilled(row) {
			return Cell(i), true
		}
		// skip to the last cell of the row above
		i = row*Columns - 1
	}
	return NoCell, false
}

// CollapseFilledRows removes every filled row, shifting the rows above it down
// by one and clearing row 0. Returns the number of rows removed.
func (g *Grid) CollapseFilledRows() int {
	removed := 0
	for row := Rows - 1; row >= 0; {
		if !g.IsRowFilled(row) {
			row--
			continue
		}
		// the row above now sits at this position, check it again
		g.shiftDown(row)
		removed++
	}
	return removed
}

// shiftDown drops every row above the given one by one row and empties row 0.
func (g *Grid) shiftDown(row int) {
	for r := row; r > 0; r-- {
		copy(g.cells[r*Columns:(r+1)*Columns], g.cells[(r-1)*Columns:r*Columns])
	}
	for col := range Columns {
		g.cells[col] = false
	}
}

// OccupiedCount returns the number of occupied cells.
func (g *Grid) OccupiedCount() int {
	n := 0
	for _, occupied := range g.cells {
		if occupied {
			n++
		}
	}
	return n
}

// Clear empties the grid.
func (g *Grid) Clear() {
	g.cells = [NumCells]bool{}
}

// Cells returns a copy of the occupancy array.
func (g *Grid) Cells() [NumCells]bool {
	return g.cells
}

// String renders the grid one row per line, '#' for occupied and '.' for empty.
func (g *Grid) String() string {
	var sb strings.Builder
	sb.Grow(NumCells + Rows)
	for row := range Rows {
		if row > 0 {
			sb.WriteByte('\n')
		}
		for col := range Columns {
			if g.cells[row*Columns+col] {
				sb.WriteByte('#')
			} else {
				sb.WriteByte('.')
			}
		}
	}
	return sb.String()
}

func mustBeValid(c Cell) {
	if !c.Valid() {
		panic(fmt.Sprintf("tetris: cell %d out of bounds", c))
	}
}
