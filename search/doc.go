// Package search holds what every grid solver in this module shares: the
// Result record, path reconstruction from a parent map, endpoint validation
// and the functional options for expansion hooks.
//
// What
//
//   - Result: algorithm name, optional path, nodes expanded, elapsed time.
//     Immutable once built; Path returns a copy.
//   - Reconstruct: rebuilds the start→goal route from a parent relation.
//   - ValidateEndpoints: rejects nil grids, out-of-bounds and Wall endpoints
//     before any search runs.
//   - Func: the signature shared by bfs.Solve, astar.Solve and dfs.Solve.
//
// Determinism
//
//	Solvers allocate their own frontier and maps per call and never mutate
//	the grid, so identical inputs produce identical Results (apart from
//	Elapsed).
//
// No path
//
//	An unreachable goal is not an error. It is a Result whose Found method
//	reports false and whose Path is nil.
//
// Errors
//
//   - ErrNilGrid          if the grid pointer is nil.
//   - ErrBlockedEndpoint  if start or goal is a Wall cell.
//   - grid.ErrInvalidPosition (wrapped) if start or goal is out of bounds.
package search
