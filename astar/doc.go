// Package astar implements A* shortest-path search on a grid.Grid with the
// Manhattan distance heuristic.
//
// The frontier is a min-heap of (f, g, position) entries where
// f = g + manhattan(position, goal). Entries are ordered by f ascending,
// then g ascending, then position (row, then column) ascending (entry.less).
// The order fixes both the returned path and the expansion count.
//
// Complexity:
//
//   - Time:  O(N log N) for N = R×C cells.
//   - Space: O(N) for the g-cost and parent maps plus the heap.
//
// Notes:
//
//   - The start entry is seeded as (0, 0, start); its f is never compared
//     against anything else before it is popped.
//   - Solve keeps no closed set. A position may be pushed again whenever a
//     strictly cheaper g is found, and every pop counts as an expansion
//     (lazy deletion). Processing a stale entry can only fail to improve the
//     recorded g-cost and parent, never corrupt them.
//   - SolveClosed is the closed-set variant: a position popped a second time
//     is skipped and not counted. On unit-cost 4-connected grids with this
//     comparator no position is ever re-pushed, so both variants report the
//     same counts.
//   - Manhattan distance is admissible and consistent here, so the first time
//     the goal is popped its path is optimal.
package astar
