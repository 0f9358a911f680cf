// Package dfs implements depth-first search from a start cell to a goal cell
// on a grid.Grid.
//
// DFS is the third algorithm offered next to A* and BFS. It finds a route
// whenever one exists but makes no promise that the route is short; it is
// here for comparison of expansion counts and path lengths.
//
// Key features:
//   - Iterative stack, no recursion; safe on large open grids.
//   - A position is marked visited when pushed, so it enters the stack once.
//   - Neighbors are pushed in reverse grid order so the first grid neighbor
//     (East) is explored first.
//   - Each pop counts as one expansion; popping the goal stops the search.
//
// Complexity:
//
//   - Time:   O(R×C).
//   - Memory: O(R×C) for the stack, visited set and parent map.
//
// Errors:
//
//   - search.ErrNilGrid, search.ErrBlockedEndpoint and a wrapped
//     grid.ErrInvalidPosition for invalid input.
package dfs
