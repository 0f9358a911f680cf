package dfs_test

import (
	"fmt"

	"github.com/Farhatullah0066/ai-maze-solver-comparison/dfs"
	"github.com/Farhatullah0066/ai-maze-solver-comparison/grid"
)

// ExampleSolve shows DFS committing to East first and taking a detour.
func ExampleSolve() {
	g, _ := grid.New([][]int{
		{0, 0, 0},
		{0, 0, 0},
		{0, 0, 0},
	})

	res, _ := dfs.Solve(g, grid.Position{Row: 0, Col: 0}, grid.Position{Row: 2, Col: 0})
	fmt.Println(res.Path())
	fmt.Println("steps:", res.Steps())
	// Output:
	// [(0,0) (0,1) (0,2) (1,2) (2,2) (2,1) (2,0)]
	// steps: 6
}
