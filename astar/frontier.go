package astar

import "github.com/Farhatullah0066/ai-maze-solver-comparison/grid"

// entry is one frontier record: f = g + h for position pos.
type entry struct {
	f, g int
	pos  grid.Position
}

// less orders entries by f ascending, then g ascending, then position
// (row, then column) ascending.
func (e entry) less(o entry) bool {
	if e.f != o.f {
		return e.f < o.f
	}
	if e.g != o.g {
		return e.g < o.g
	}
	return e.pos.Less(o.pos)
}

// frontier is a min-heap of entries ordered by entry.less.
// Stale entries stay in the heap until popped (lazy deletion).
type frontier []entry

// Len returns the number of entries in the heap.
func (pq frontier) Len() int { return len(pq) }

// Less reports whether entry i sorts before entry j.
func (pq frontier) Less(i, j int) bool { return pq[i].less(pq[j]) }

// Swap swaps two entries in the heap.
func (pq frontier) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push adds x, which must be an entry. Called by heap.Push.
func (pq *frontier) Push(x interface{}) { *pq = append(*pq, x.(entry)) }

// Pop removes and returns the last element. Called by heap.Pop.
func (pq *frontier) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
