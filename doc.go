// Package mazesolver compares shortest-path search algorithms on 2-D grid
// mazes.
//
// A maze is a rectangular grid of Free and Wall cells with a start and a
// goal. Movement is one step East, West, South or North into a Free cell,
// each step costing 1. Every solver reports the path it found, how many
// frontier entries it expanded and how long it took, so runs can be
// compared side by side.
//
// Packages:
//
//	grid/      immutable occupancy grid, positions, neighbor order, components
//	search/    shared Result type, solver hooks, endpoint validation, path rebuild
//	bfs/       breadth-first search (shortest path, FIFO frontier)
//	astar/     A* with the Manhattan heuristic (lazy or closed-set frontier)
//	dfs/       depth-first search (any path, LIFO frontier)
//	compare/   run several solvers in sequence on one maze
//	mazefile/  load and save maze documents (YAML, JSON, ASCII)
//	mazegen/   seeded random and carved maze generators
//	report/    comparison table, JSON, bar chart, ASCII and PNG overlays
//	cmd/mazesolver command-line front end (solve, generate, inspect)
//
// Determinism:
//
//   - Neighbors are always produced in East, West, South, North order.
//   - A* breaks f ties by lower g, then by (row, col).
//   - Identical inputs give identical paths and expansion counts.
//
// Quick start:
//
//	g, _ := grid.New([][]int{
//		{0, 0, 0},
//		{1, 1, 0},
//		{0, 0, 0},
//	})
//	res, _ := astar.Solve(g, grid.Position{Row: 0, Col: 0}, grid.Position{Row: 2, Col: 2})
//	fmt.Println(res.Path(), res.NodesExpanded())
package mazesolver
