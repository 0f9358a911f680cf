// Package compare runs several grid solvers one after another on the same
// maze and collects their results in request order.
package compare

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/Farhatullah0066/ai-maze-solver-comparison/astar"
	"github.com/Farhatullah0066/ai-maze-solver-comparison/bfs"
	"github.com/Farhatullah0066/ai-maze-solver-comparison/dfs"
	"github.com/Farhatullah0066/ai-maze-solver-comparison/grid"
	"github.com/Farhatullah0066/ai-maze-solver-comparison/search"
)

// ErrUnknownAlgorithm is returned by Parse for names it does not recognize.
var ErrUnknownAlgorithm = errors.New("compare: unknown algorithm")

// Algorithm identifies a solver.
type Algorithm string

const (
	AStar Algorithm = "astar"
	BFS   Algorithm = "bfs"
	DFS   Algorithm = "dfs"
)

// DefaultAlgorithms is the run order used when none is requested: A*, then BFS.
func DefaultAlgorithms() []Algorithm {
	return []Algorithm{AStar, BFS}
}

// Parse maps a user-facing name to an Algorithm. Matching ignores case and
// surrounding spaces; "A*", "a-star" and "astar" all mean AStar.
func Parse(name string) (Algorithm, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "a*", "a-star", "astar":
		return AStar, nil
	case "bfs":
		return BFS, nil
	case "dfs":
		return DFS, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownAlgorithm, name)
}

// ParseList splits a comma-separated list and parses each element.
// An empty list yields DefaultAlgorithms.
func ParseList(list string) ([]Algorithm, error) {
	if strings.TrimSpace(list) == "" {
		return DefaultAlgorithms(), nil
	}
	parts := strings.Split(list, ",")
	out := make([]Algorithm, 0, len(parts))
	for _, p := range parts {
		a, err := Parse(p)
		if err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, nil
}

// DisplayName returns the name the solver reports in its results.
func (a Algorithm) DisplayName() string {
	switch a {
	case AStar:
		return astar.Name
	case BFS:
		return bfs.Name
	case DFS:
		return dfs.Name
	}
	return string(a)
}

// Option configures Run.
type Option func(*Options)

// Options holds the settings for Run.
type Options struct {
	// Logger receives one Debug record per solver run. Defaults to a
	// logger that discards everything.
	Logger *slog.Logger

	// ClosedSetAStar selects astar.SolveClosed instead of astar.Solve.
	ClosedSetAStar bool

	// Search is forwarded to every solver.
	Search []search.Option
}

// DefaultOptions returns Options with a discarding logger and lazy A*.
func DefaultOptions() Options {
	return Options{
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

// WithLogger sets the logger used for per-run debug records. nil is ignored.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithClosedSetAStar runs the closed-set A* variant.
func WithClosedSetAStar() Option {
	return func(o *Options) {
		o.ClosedSetAStar = true
	}
}

// WithSearchOptions forwards hooks to every solver.
func WithSearchOptions(opts ...search.Option) Option {
	return func(o *Options) {
		o.Search = append(o.Search, opts...)
	}
}

func (o Options) solver(a Algorithm) (search.Func, error) {
	switch a {
	case AStar:
		if o.ClosedSetAStar {
			return astar.SolveClosed, nil
		}
		return astar.Solve, nil
	case BFS:
		return bfs.Solve, nil
	case DFS:
		return dfs.Solve, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, string(a))
}

// Run executes algs strictly in order on g and returns one Result per entry.
// An empty algs runs DefaultAlgorithms. The first error stops the run and
// no results are returned.
func Run(g *grid.Grid, start, goal grid.Position, algs []Algorithm, opts ...Option) ([]search.Result, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if len(algs) == 0 {
		algs = DefaultAlgorithms()
	}

	// Resolve every solver before running any of them.
	solvers := make([]search.Func, len(algs))
	for i, a := range algs {
		fn, err := o.solver(a)
		if err != nil {
			return nil, err
		}
		solvers[i] = fn
	}

	results := make([]search.Result, 0, len(algs))
	for i, solve := range solvers {
		res, err := solve(g, start, goal, o.Search...)
		if err != nil {
			return nil, fmt.Errorf("compare: %s: %w", algs[i].DisplayName(), err)
		}
		o.Logger.Debug("solver finished",
			slog.String("algorithm", res.Algorithm()),
			slog.Bool("found", res.Found()),
			slog.Int("steps", res.Steps()),
			slog.Int("expanded", res.NodesExpanded()),
			slog.Duration("elapsed", res.Elapsed()),
		)
		results = append(results, res)
	}
	return results, nil
}
