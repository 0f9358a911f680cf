package bfs

import (
	"fmt"
	"time"

	"github.com/Farhatullah0066/ai-maze-solver-comparison/grid"
	"github.com/Farhatullah0066/ai-maze-solver-comparison/search"
)

// Name is the display name reported in results.
const Name = "BFS"

// walker encapsulates mutable BFS state for a single Solve call.
type walker struct {
	grid     *grid.Grid
	goal     grid.Position
	opts     search.Options
	queue    []grid.Position
	visited  map[grid.Position]bool
	parent   map[grid.Position]grid.Position
	expanded int
}

// Solve runs breadth-first search on g from start to goal.
// Returns search.ErrNilGrid, search.ErrBlockedEndpoint or a wrapped
// grid.ErrInvalidPosition for invalid input. An unreachable goal yields a
// Result with Found() == false and a nil error.
func Solve(g *grid.Grid, start, goal grid.Position, opts ...search.Option) (search.Result, error) {
	began := time.Now()
	if err := search.ValidateEndpoints(g, start, goal); err != nil {
		return search.Result{}, err
	}

	n := g.FreeCount()
	w := &walker{
		grid:    g,
		goal:    goal,
		opts:    search.Apply(opts...),
		queue:   make([]grid.Position, 0, n),
		visited: make(map[grid.Position]bool, n),
		parent:  make(map[grid.Position]grid.Position, n),
	}

	// Seed queue with start (no parent)
	w.enqueue(start)
	found, err := w.loop()
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

// enqueue marks p visited, calls OnEnqueue and appends it to the queue.
func (w *walker) enqueue(p grid.Position) {
	w.visited[p] = true
	w.opts.OnEnqueue(p)
	w.queue = append(w.queue, p)
}

// loop processes the queue until the goal is dequeued or the queue is empty.
func (w *walker) loop() (bool, error) {
	for len(w.queue) > 0 {
		cur := w.dequeue()
		if cur == w.goal {
			return true, nil
		}
		if err := w.enqueueNeighbors(cur); err != nil {
			return false, err
		}
	}
	return false, nil
}

// dequeue pops the oldest position, counts it as expanded and returns it.
func (w *walker) dequeue() grid.Position {
	cur := w.queue[0]
	w.queue = w.queue[1:]
	w.expanded++
	w.opts.OnExpand(cur, w.expanded)
	return cur
}

// enqueueNeighbors records cur as parent of every unvisited neighbor and
// enqueues it.
func (w *walker) enqueueNeighbors(cur grid.Position) error {
	neighbors, err := w.grid.Neighbors(cur)
	if err != nil {
		return fmt.Errorf("bfs: neighbors of %v: %w", cur, err)
	}
	for _, nbr := range neighbors {
		if w.visited[nbr] {
			continue
		}
		w.parent[nbr] = cur
		w.enqueue(nbr)
	}
	return nil
}
