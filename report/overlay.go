package report

import (
	"bufio"
	"io"

	"github.com/Farhatullah0066/ai-maze-solver-comparison/grid"
)

// Overlay symbols.
const (
	symWall  = '#'
	symFree  = '.'
	symStart = 'S'
	symGoal  = 'G'
	symPath  = '*'
)

// RenderOverlay writes g as ASCII, one row per line, marking path cells
// with '*'. Start and goal keep their own symbols.
func RenderOverlay(w io.Writer, g *grid.Grid, start, goal grid.Position, path []grid.Position) error {
	onPath := make(map[grid.Position]bool, len(path))
	for _, p := range path {
		onPath[p] = true
	}

	bw := bufio.NewWriter(w)
	for r := 0; r < g.Rows(); r++ {
		for c := 0; c < g.Cols(); c++ {
			p := grid.Position{Row: r, Col: c}
			ch := byte(symFree)
			switch {
			case p == start:
				ch = symStart
			case p == goal:
				ch = symGoal
			case g.IsWall(p):
				ch = symWall
			case onPath[p]:
				ch = symPath
			}
			if err := bw.WriteByte(ch); err != nil {
				return err
			}
		}
		if err := bw.WriteByte('\n'); err != nil {
			return err
		}
	}
	return bw.Flush()
}
