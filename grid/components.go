package grid

// Components finds all contiguous regions of Free cells under 4-directional
// connectivity. Regions are returned in row-major order of their first cell;
// cells inside a region are listed in breadth-first discovery order.
//
// Time:   O(R·C).
// Memory: O(R·C) for visited flags and output.
func (g *Grid) Components() [][]Position {
	seen := make([]bool, g.rows*g.cols)
	var comps [][]Position

	for r := 0; r < g.rows; r++ {
		for c := 0; c < g.cols; c++ {
			p := Position{Row: r, Col: c}
			if g.cells[r][c] == Wall || seen[g.index(p)] {
				continue
			}
			comps = append(comps, g.flood(p, seen))
		}
	}
	return comps
}

// Reachable returns how many Free cells can be reached from `from`,
// counting `from` itself. A Wall start reaches nothing and yields 0.
// Returns ErrInvalidPosition if from is out of bounds.
func (g *Grid) Reachable(from Position) (int, error) {
	if !g.InBounds(from) {
		return 0, g.outOfBounds(from)
	}
	if g.cells[from.Row][from.Col] == Wall {
		return 0, nil
	}
	seen := make([]bool, g.rows*g.cols)
	return len(g.flood(from, seen)), nil
}

// flood collects the region containing start, marking every cell in seen.
func (g *Grid) flood(start Position, seen []bool) []Position {
	queue := []Position{start}
	seen[g.index(start)] = true

	for qi := 0; qi < len(queue); qi++ {
		u := queue[qi]
		for _, d := range neighborOffsets {
			v := u.Add(d)
			if !g.IsFree(v) {
				continue
			}
			if vi := g.index(v); !seen[vi] {
				seen[vi] = true
				queue = append(queue, v)
			}
		}
	}
	return queue
}
