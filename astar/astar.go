package astar

import (
	"container/heap"
	"fmt"
	"time"

	"github.com/Farhatullah0066/ai-maze-solver-comparison/grid"
	"github.com/Farhatullah0066/ai-maze-solver-comparison/search"
)

// Name is the display name reported in results.
const Name = "A*"

// Heuristic is the Manhattan distance from p to goal.
func Heuristic(p, goal grid.Position) int {
	return grid.Manhattan(p, goal)
}

// Solve runs A* from start to goal without a closed set (lazy deletion).
//
// Preconditions and validation:
//  1. g must be non-nil (search.ErrNilGrid).
//  2. start and goal must be in bounds (wrapped grid.ErrInvalidPosition).
//  3. start and goal must be Free (search.ErrBlockedEndpoint).
//
// An unreachable goal yields a Result with Found() == false and a nil error.
func Solve(g *grid.Grid, start, goal grid.Position, opts ...search.Option) (search.Result, error) {
	return solve(g, start, goal, false, opts)
}

// SolveClosed is Solve with a closed set: positions already expanded are
// skipped when popped again and do not count as expansions.
func SolveClosed(g *grid.Grid, start, goal grid.Position, opts ...search.Option) (search.Result, error) {
	return solve(g, start, goal, true, opts)
}

var (
	_ search.Func = Solve
	_ search.Func = SolveClosed
)

// runner holds the mutable state for a single A* execution.
type runner struct {
	g        *grid.Grid                      // read-only input grid
	goal     grid.Position                   // target cell
	opts     search.Options                  // hooks
	pq       frontier                        // min-heap of (f, g, pos)
	parent   map[grid.Position]grid.Position // predecessor on the best known route
	gCost    map[grid.Position]int           // best known cost from start; may go stale in pq
	closed   map[grid.Position]bool          // nil unless the closed-set variant is used
	expanded int
}

func solve(g *grid.Grid, start, goal grid.Position, closed bool, opts []search.Option) (search.Result, error) {
	began := time.Now()

	// 1) Validate input before allocating anything.
	if err := search.ValidateEndpoints(g, start, goal); err != nil {
		return search.Result{}, err
	}

	// 2) Prepare solver-local state.
	n := g.FreeCount()
	r := &runner{
		g:      g,
		goal:   goal,
		opts:   search.Apply(opts...),
		pq:     make(frontier, 0, n),
		parent: make(map[grid.Position]grid.Position, n),
		gCost:  make(map[grid.Position]int, n),
	}
	if closed {
		r.closed = make(map[grid.Position]bool, n)
	}

	// 3) Seed the frontier and run the main loop.
	r.init(start)
	found, err := r.process()
	if err != nil {
		return search.Result{}, err
	}

	// 4) Rebuild the route only on success; timing covers reconstruction.
	var path []grid.Position
	if found {
		path = search.Reconstruct(r.parent, start, goal)
	}
	return search.NewResult(Name, path, r.expanded, time.Since(began)), nil
}

// init records g(start) = 0 and pushes (0, 0, start).
func (r *runner) init(start grid.Position) {
	r.gCost[start] = 0
	heap.Init(&r.pq)
	r.push(entry{f: 0, g: 0, pos: start})
}

func (r *runner) push(e entry) {
	heap.Push(&r.pq, e)
	r.opts.OnEnqueue(e.pos)
}

// process pops entries in comparator order until the goal is popped or the
// frontier is empty.
func (r *runner) process() (bool, error) {
	for r.pq.Len() > 0 {
		cur := heap.Pop(&r.pq).(entry)

		if r.closed != nil {
			if r.closed[cur.pos] {
				continue
			}
			r.closed[cur.pos] = true
		}

		r.expanded++
		r.opts.OnExpand(cur.pos, r.expanded)

		if cur.pos == r.goal {
			return true, nil
		}
		if err := r.relax(cur); err != nil {
			return false, err
		}
	}
	return false, nil
}

// relax offers cur.g+1 to every neighbor of cur. A neighbor is updated and
// pushed when it has no recorded g-cost or the candidate is strictly lower.
func (r *runner) relax(cur entry) error {
	neighbors, err := r.g.Neighbors(cur.pos)
	if err != nil {
		return fmt.Errorf("astar: neighbors of %v: %w", cur.pos, err)
	}

	cand := cur.g + 1
	for _, nbr := range neighbors {
		if known, ok := r.gCost[nbr]; ok && cand >= known {
			continue
		}
		r.gCost[nbr] = cand
		r.parent[nbr] = cur.pos
		r.push(entry{f: cand + Heuristic(nbr, r.goal), g: cand, pos: nbr})
	}
	return nil
}
