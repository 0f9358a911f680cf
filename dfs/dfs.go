package dfs

import (
	"fmt"
	"time"

	"github.com/Farhatullah0066/ai-maze-solver-comparison/grid"
	"github.com/Farhatullah0066/ai-maze-solver-comparison/search"
)

// Name is the display name reported in results.
const Name = "DFS"

// walker encapsulates state during DFS.
type walker struct {
	grid     *grid.Grid
	goal     grid.Position
	opts     search.Options
	stack    []grid.Position
	visited  map[grid.Position]bool
	parent   map[grid.Position]grid.Position
	expanded int
}

// Solve performs depth-first search on g from start to goal.
// An unreachable goal yields a Result with Found() == false and a nil error.
func Solve(g *grid.Grid, start, goal grid.Position, opts ...search.Option) (search.Result, error) {
	began := time.Now()
	if err := search.ValidateEndpoints(g, start, goal); err != nil {
		return search.Result{}, err
	}

	w := &walker{
		grid:    g,
		goal:    goal,
		opts:    search.Apply(opts...),
		visited: make(map[grid.Position]bool),
		parent:  make(map[grid.Position]grid.Position),
	}
	w.push(start)

	found, err := w.traverse()
	if err != nil {
		return search.Result{}, err
	}

	var path []grid.Position
	if found {
		path = search.Reconstruct(w.parent, start, goal)
	}
	return search.NewResult(Name, path, w.expanded, time.Since(began)), nil
}

var _ search.Func = Solve

func (w *walker) push(p grid.Position) {
	w.visited[p] = true
	w.opts.OnEnqueue(p)
	w.stack = append(w.stack, p)
}

// traverse pops until the goal is reached or the stack runs dry.
func (w *walker) traverse() (bool, error) {
	for len(w.stack) > 0 {
		// 1. Pop the most recently pushed position
		last := len(w.stack) - 1
		cur := w.stack[last]
		w.stack = w.stack[:last]

		w.expanded++
		w.opts.OnExpand(cur, w.expanded)
		if cur == w.goal {
			return true, nil
		}

		// 2. Push unvisited neighbors in reverse so the first one is popped next
		nbs, err := w.grid.Neighbors(cur)
		if err != nil {
			return false, fmt.Errorf("dfs: neighbors of %v: %w", cur, err)
		}
		for i := len(nbs) - 1; i >= 0; i-- {
			if w.visited[nbs[i]] {
				continue
			}
			w.parent[nbs[i]] = cur
			w.push(nbs[i])
		}
	}
	return false, nil
}
