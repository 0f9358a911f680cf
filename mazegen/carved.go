package mazegen

import "github.com/Farhatullah0066/ai-maze-solver-comparison/grid"

// roomSteps are the moves between rooms; the wall cell between two rooms
// is the midpoint.
var roomSteps = [4]grid.Position{
	{Row: 0, Col: 2},
	{Row: 0, Col: -2},
	{Row: 2, Col: 0},
	{Row: -2, Col: 0},
}

// Carved returns a rows×cols perfect maze. Rooms sit on cells whose row
// and column are both even; the backtracker opens the wall between a room
// and a randomly chosen unvisited neighbor room, and backs up when stuck.
//
// When rows or cols is even the goal corner is not a room; it is joined to
// the nearest room by opening at most two cells.
func Carved(rows, cols int, opts ...Option) (Layout, error) {
	if err := checkSize("Carved", rows, cols); err != nil {
		return Layout{}, err
	}
	cfg := newConfig(opts...)

	values := filled(rows, cols, grid.WallValue)
	inside := func(p grid.Position) bool {
		return p.Row >= 0 && p.Row < rows && p.Col >= 0 && p.Col < cols
	}

	start, goal := corners(rows, cols)
	values[start.Row][start.Col] = 0
	stack := []grid.Position{start}

	for len(stack) > 0 {
		cur := stack[len(stack)-1]

		// Collect unvisited rooms two steps away.
		var next []grid.Position
		for _, d := range roomSteps {
			p := cur.Add(d)
			if inside(p) && values[p.Row][p.Col] == grid.WallValue {
				next = append(next, p)
			}
		}
		if len(next) == 0 {
			stack = stack[:len(stack)-1]
			continue
		}

		p := next[cfg.rng.Intn(len(next))]
		mid := grid.Position{Row: (cur.Row + p.Row) / 2, Col: (cur.Col + p.Col) / 2}
		values[mid.Row][mid.Col] = 0
		values[p.Row][p.Col] = 0
		stack = append(stack, p)
	}

	// Link the goal corner to the room grid.
	at := goal
	values[at.Row][at.Col] = 0
	if at.Row%2 == 1 {
		at.Row--
		values[at.Row][at.Col] = 0
	}
	if at.Col%2 == 1 {
		at.Col--
		values[at.Row][at.Col] = 0
	}

	return Layout{Values: values, Start: start, Goal: goal}, nil
}
