// Package bfs provides breadth-first shortest-path search over a grid.Grid,
// returning the fewest-edge route from start to goal together with the
// number of expanded nodes and the elapsed time.
//
// What
//
//   - FIFO frontier seeded with start; visited set seeded with start.
//   - A position is marked visited when it is enqueued, not when it is
//     dequeued, so each cell enters the frontier at most once.
//   - Each dequeue counts as one expansion. Dequeuing the goal stops the
//     search and rebuilds the path from the parent map.
//   - Neighbors are enqueued in grid order (East, West, South, North); ties
//     between equal-length routes are broken by that order alone.
//
// Why
//
//   - Minimum-edge paths on unit-cost 4-connected grids in O(R×C).
//   - On an unreachable goal the expansion count equals the number of cells
//     reachable from start, which makes BFS a useful baseline for A*.
//
// Complexity (N = R×C cells)
//
//   - Time:   O(N)
//   - Memory: O(N) for queue, visited set and parent map.
//
// Usage
//
//	res, err := bfs.Solve(g, start, goal)
//	if err != nil {
//		// search.ErrNilGrid, search.ErrBlockedEndpoint or grid.ErrInvalidPosition
//	}
//	if !res.Found() {
//		// goal unreachable; res.NodesExpanded() == reachable cell count
//	}
//
// Hooks
//
//   - search.WithOnEnqueue(fn): called for every enqueued position, start included.
//   - search.WithOnExpand(fn):  called for every dequeued position.
package bfs
