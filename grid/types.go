package grid

import (
	"errors"
	"fmt"
)

// Sentinel errors for grid operations.
var (
	// ErrEmptyGrid indicates input grid has no rows or no columns.
	ErrEmptyGrid = errors.New("grid: input grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("grid: all rows must have the same length")
	// ErrInvalidPosition indicates a position outside the grid bounds.
	ErrInvalidPosition = errors.New("grid: position out of bounds")
)

// WallValue is the input cell value that marks a Wall.
const WallValue = 1

// Cell is the occupancy state of a single grid cell.
type Cell int

const (
	// Free cells can be entered.
	Free Cell = iota
	// Wall cells block movement.
	Wall
)

// String returns "free" or "wall".
func (c Cell) String() string {
	if c == Wall {
		return "wall"
	}
	return "free"
}

// Position addresses a cell by row and column.
type Position struct {
	Row, Col int
}

// Less orders positions by row, then column.
func (p Position) Less(q Position) bool {
	if p.Row != q.Row {
		return p.Row < q.Row
	}
	return p.Col < q.Col
}

// Add returns p shifted by d.
func (p Position) Add(d Position) Position {
	return Position{Row: p.Row + d.Row, Col: p.Col + d.Col}
}

// String formats the position as "(row,col)".
func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.Row, p.Col)
}

// Manhattan returns |Δrow| + |Δcol| between a and b.
func Manhattan(a, b Position) int {
	return abs(a.Row-b.Row) + abs(a.Col-b.Col)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// Directions used for neighbor enumeration: East, West, South, North.
// The order is part of the search contract and must not change.
var (
	East  = Position{Row: 0, Col: 1}
	West  = Position{Row: 0, Col: -1}
	South = Position{Row: 1, Col: 0}
	North = Position{Row: -1, Col: 0}
)

var neighborOffsets = [4]Position{East, West, South, North}

// Grid is an immutable rectangular occupancy grid.
// cells[r][c] holds the state of the cell at row r, column c.
type Grid struct {
	rows, cols int
	cells      [][]Cell
}
