package search

import (
	"time"

	"github.com/Farhatullah0066/ai-maze-solver-comparison/grid"
)

// Result is the outcome of one solver run. The zero value is an empty,
// not-found result.
type Result struct {
	algorithm string
	path      []grid.Position
	expanded  int
	elapsed   time.Duration
}

// NewResult builds a Result, copying path so the caller cannot mutate it
// afterwards. A nil or empty path means no path was found.
func NewResult(algorithm string, path []grid.Position, expanded int, elapsed time.Duration) Result {
	var cp []grid.Position
	if len(path) > 0 {
		cp = make([]grid.Position, len(path))
		copy(cp, path)
	}
	return Result{
		algorithm: algorithm,
		path:      cp,
		expanded:  expanded,
		elapsed:   elapsed,
	}
}

// Algorithm returns the display name of the solver that produced r.
func (r Result) Algorithm() string { return r.algorithm }

// Found reports whether a path from start to goal exists.
func (r Result) Found() bool { return len(r.path) > 0 }

// Path returns a copy of the start→goal route, or nil if none was found.
func (r Result) Path() []grid.Position {
	if len(r.path) == 0 {
		return nil
	}
	out := make([]grid.Position, len(r.path))
	copy(out, r.path)
	return out
}

// NodesExpanded returns how many frontier entries the solver processed.
func (r Result) NodesExpanded() int { return r.expanded }

// Elapsed returns the wall-clock time of the whole search, reconstruction included.
func (r Result) Elapsed() time.Duration { return r.elapsed }

// Steps returns the number of edges on the path: len(path)-1, or 0 when
// there is no path or the path is the single start cell.
func (r Result) Steps() int {
	if len(r.path) == 0 {
		return 0
	}
	return len(r.path) - 1
}
