// Package grid models a fixed-size occupancy grid of Free and Wall cells
// and exposes it as an implicit graph for the search packages.
//
// What:
//
//   - Grid wraps a rectangular [][]int input; the value 1 marks a Wall,
//     every other value is Free.
//   - Neighbors enumerates the walkable orthogonal neighbors of a cell in one
//     fixed order: East, West, South, North. Every solver in this module
//     relies on that order for reproducible paths and expansion counts.
//   - Components and Reachable report connected regions of Free cells.
//
// Concurrency:
//
//   - A Grid is read-only after New; concurrent solver runs may share it.
//
// Complexity:
//
//   - New:        O(R×C) time and memory (deep copy).
//   - Neighbors:  O(1).
//   - Components: O(R×C) time, O(R×C) memory.
//   - Reachable:  O(R×C) worst case.
//
// Errors:
//
//   - ErrEmptyGrid:       input grid has no rows or no columns.
//   - ErrNonRectangular:  rows have differing lengths.
//   - ErrInvalidPosition: a position lies outside the grid bounds.
package grid
