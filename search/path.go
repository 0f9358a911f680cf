package search

import "github.com/Farhatullah0066/ai-maze-solver-comparison/grid"

// Reconstruct rebuilds the route from start to goal by walking parent links
// backwards from goal, then reversing. The start has no parent entry.
// When start == goal the result is [start].
//
// The parent map must connect goal back to start; if a link is missing the
// walk stops and nil is returned.
// Complexity: O(L) for a path of L cells.
func Reconstruct(parent map[grid.Position]grid.Position, start, goal grid.Position) []grid.Position {
	path := []grid.Position{goal}
	for cur := goal; cur != start; {
		prev, ok := parent[cur]
		if !ok {
			return nil
		}
		path = append(path, prev)
		cur = prev
	}
	// reverse to get start → goal
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path
}
