// Package searchtest provides fixtures and oracles shared by the solver
// tests: the reference scenario grid, random small grids, an exhaustive
// shortest-distance oracle and a path validity check.
package searchtest

import (
	"fmt"
	"math/rand"

	"github.com/Farhatullah0066/ai-maze-solver-comparison/grid"
)

// Scenario returns the 3×3 reference grid
//
//	. . .
//	# # .
//	. . .
//
// with start (0,0) and goal (2,2). Its only shortest route is
// (0,0)→(0,1)→(0,2)→(1,2)→(2,2).
func Scenario() (*grid.Grid, grid.Position, grid.Position) {
	g, err := grid.New([][]int{
		{0, 0, 0},
		{1, 1, 0},
		{0, 0, 0},
	})
	if err != nil {
		panic(err)
	}
	return g, grid.Position{Row: 0, Col: 0}, grid.Position{Row: 2, Col: 2}
}

// ScenarioPath is the expected route through Scenario.
func ScenarioPath() []grid.Position {
	return []grid.Position{{Row: 0, Col: 0}, {Row: 0, Col: 1}, {Row: 0, Col: 2}, {Row: 1, Col: 2}, {Row: 2, Col: 2}}
}

// RandomGrid builds a rows×cols grid where each cell is a Wall with
// probability density. start and goal are forced Free.
func RandomGrid(rng *rand.Rand, rows, cols int, density float64, start, goal grid.Position) *grid.Grid {
	values := make([][]int, rows)
	for r := range values {
		values[r] = make([]int, cols)
		for c := range values[r] {
			if rng.Float64() < density {
				values[r][c] = grid.WallValue
			}
		}
	}
	values[start.Row][start.Col] = 0
	values[goal.Row][goal.Col] = 0
	g, err := grid.New(values)
	if err != nil {
		panic(err)
	}
	return g
}

// ExhaustiveDistance enumerates every simple path from start with a
// depth-first walk and returns the fewest edges that reach goal.
// ok is false when goal is unreachable. Only use it on small grids.
func ExhaustiveDistance(g *grid.Grid, start, goal grid.Position) (best int, ok bool) {
	best = -1
	onPath := map[grid.Position]bool{start: true}
	var walk func(p grid.Position, depth int)
	walk = func(p grid.Position, depth int) {
		if best >= 0 && depth >= best {
			return
		}
		if p == goal {
			best = depth
			return
		}
		nbrs, _ := g.Neighbors(p)
		for _, n := range nbrs {
			if onPath[n] {
				continue
			}
			onPath[n] = true
			walk(n, depth+1)
			delete(onPath, n)
		}
	}
	walk(start, 0)
	return best, best >= 0
}

// CheckPath verifies that path starts at start, ends at goal, moves one
// orthogonal step at a time and never touches a Wall.
func CheckPath(g *grid.Grid, start, goal grid.Position, path []grid.Position) error {
	if len(path) == 0 {
		return fmt.Errorf("empty path")
	}
	if path[0] != start {
		return fmt.Errorf("path starts at %v, want %v", path[0], start)
	}
	if last := path[len(path)-1]; last != goal {
		return fmt.Errorf("path ends at %v, want %v", last, goal)
	}
	for i, p := range path {
		if !g.IsFree(p) {
			return fmt.Errorf("path[%d] = %v is not a free cell", i, p)
		}
		if i > 0 && grid.Manhattan(path[i-1], p) != 1 {
			return fmt.Errorf("path[%d]→path[%d] = %v→%v is not a single step", i-1, i, path[i-1], p)
		}
	}
	return nil
}
