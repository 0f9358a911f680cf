package mazegen

import "github.com/Farhatullah0066/ai-maze-solver-comparison/grid"

// Random returns a rows×cols layout where each cell is a Wall with the
// configured density. Cells are drawn in row-major order, one RNG draw per
// cell, so a given seed always yields the same layout.
func Random(rows, cols int, opts ...Option) (Layout, error) {
	if err := checkSize("Random", rows, cols); err != nil {
		return Layout{}, err
	}
	cfg := newConfig(opts...)

	values := filled(rows, cols, 0)
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			if cfg.rng.Float64() < cfg.density {
				values[r][c] = grid.WallValue
			}
		}
	}

	start, goal := corners(rows, cols)
	values[start.Row][start.Col] = 0
	values[goal.Row][goal.Col] = 0
	return Layout{Values: values, Start: start, Goal: goal}, nil
}
