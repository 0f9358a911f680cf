package mazegen

import (
	"errors"
	"fmt"

	"github.com/Farhatullah0066/ai-maze-solver-comparison/grid"
)

// ErrTooSmall is returned when rows or cols is below 2.
var ErrTooSmall = errors.New("mazegen: maze must be at least 2x2")

const minDim = 2

// Layout is a generated maze: raw cell values (1 = wall) plus endpoints.
type Layout struct {
	Values [][]int
	Start  grid.Position
	Goal   grid.Position
}

// Grid builds an immutable grid.Grid from l.Values.
func (l Layout) Grid() (*grid.Grid, error) {
	return grid.New(l.Values)
}

func checkSize(method string, rows, cols int) error {
	if rows < minDim || cols < minDim {
		return fmt.Errorf("%s: rows=%d, cols=%d: %w", method, rows, cols, ErrTooSmall)
	}
	return nil
}

func filled(rows, cols, v int) [][]int {
	values := make([][]int, rows)
	for r := range values {
		values[r] = make([]int, cols)
		if v != 0 {
			for c := range values[r] {
				values[r][c] = v
			}
		}
	}
	return values
}

func corners(rows, cols int) (grid.Position, grid.Position) {
	return grid.Position{Row: 0, Col: 0}, grid.Position{Row: rows - 1, Col: cols - 1}
}
