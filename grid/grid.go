package grid

import "fmt"

// New constructs a Grid from a non-empty, rectangular 2D slice.
// A value equal to WallValue becomes a Wall; any other value is Free.
// The input is copied, so later changes to values do not affect the Grid.
// Returns ErrEmptyGrid if values has no rows or no columns,
// ErrNonRectangular if any row length differs.
// Complexity: O(R×C) time and memory.
func New(values [][]int) (*Grid, error) {
	if len(values) == 0 || len(values[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	rows, cols := len(values), len(values[0])
	for r, row := range values {
		if len(row) != cols {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrNonRectangular, r, len(row), cols)
		}
	}
	cells := make([][]Cell, rows)
	for r := 0; r < rows; r++ {
		cells[r] = make([]Cell, cols)
		for c, v := range values[r] {
			if v == WallValue {
				cells[r][c] = Wall
			}
		}
	}

	return &Grid{rows: rows, cols: cols, cells: cells}, nil
}

// Rows returns the number of rows.
func (g *Grid) Rows() int { return g.rows }

// Cols returns the number of columns.
func (g *Grid) Cols() int { return g.cols }

// InBounds reports whether p lies within the grid boundaries.
// Complexity: O(1).
func (g *Grid) InBounds(p Position) bool {
	return p.Row >= 0 && p.Row < g.rows && p.Col >= 0 && p.Col < g.cols
}

// Cell returns the state of the cell at p.
// Returns ErrInvalidPosition if p is out of bounds.
func (g *Grid) Cell(p Position) (Cell, error) {
	if !g.InBounds(p) {
		return Free, g.outOfBounds(p)
	}
	return g.cells[p.Row][p.Col], nil
}

// IsFree reports whether p is in bounds and not a Wall.
func (g *Grid) IsFree(p Position) bool {
	return g.InBounds(p) && g.cells[p.Row][p.Col] == Free
}

// IsWall reports whether p is in bounds and a Wall.
func (g *Grid) IsWall(p Position) bool {
	return g.InBounds(p) && g.cells[p.Row][p.Col] == Wall
}

// Neighbors returns every in-bounds Free cell orthogonally adjacent to p,
// in the fixed order East, West, South, North.
// Returns ErrInvalidPosition if p itself is out of bounds.
// Complexity: O(1).
func (g *Grid) Neighbors(p Position) ([]Position, error) {
	if !g.InBounds(p) {
		return nil, g.outOfBounds(p)
	}
	out := make([]Position, 0, len(neighborOffsets))
	for _, d := range neighborOffsets {
		n := p.Add(d)
		if g.IsFree(n) {
			out = append(out, n)
		}
	}
	return out, nil
}

// FreeCount returns the number of Free cells.
func (g *Grid) FreeCount() int {
	n := 0
	for _, row := range g.cells {
		for _, c := range row {
			if c == Free {
				n++
			}
		}
	}
	return n
}

// Values returns a fresh [][]int copy of the grid using 0 for Free
// and WallValue for Wall.
func (g *Grid) Values() [][]int {
	out := make([][]int, g.rows)
	for r := 0; r < g.rows; r++ {
		out[r] = make([]int, g.cols)
		for c, cell := range g.cells[r] {
			if cell == Wall {
				out[r][c] = WallValue
			}
		}
	}
	return out
}

// index maps p to a row-major index: Row*cols + Col.
func (g *Grid) index(p Position) int {
	return p.Row*g.cols + p.Col
}

func (g *Grid) outOfBounds(p Position) error {
	return fmt.Errorf("%w: %v outside %dx%d grid", ErrInvalidPosition, p, g.rows, g.cols)
}
