package search

import (
	"errors"
	"fmt"

	"github.com/Farhatullah0066/ai-maze-solver-comparison/grid"
)

// Sentinel errors for search entry validation.
var (
	// ErrNilGrid is returned if a nil grid pointer is passed.
	ErrNilGrid = errors.New("search: grid is nil")

	// ErrBlockedEndpoint is returned when start or goal is a Wall cell.
	ErrBlockedEndpoint = errors.New("search: endpoint is a wall cell")
)

// Func is the common solver signature. Implementations validate their
// endpoints, run to completion and report an unreachable goal through
// Result.Found rather than an error.
type Func func(g *grid.Grid, start, goal grid.Position, opts ...Option) (Result, error)

// Option configures solver hooks via functional arguments.
type Option func(*Options)

// Options holds callbacks observed by every solver.
type Options struct {
	// OnExpand is called each time a position is taken off the frontier and
	// counted as expanded. expanded is the running count including this one.
	OnExpand func(pos grid.Position, expanded int)

	// OnEnqueue is called each time a position is pushed onto the frontier.
	OnEnqueue func(pos grid.Position)
}

// DefaultOptions returns Options with no-op hooks.
func DefaultOptions() Options {
	return Options{
		OnExpand:  func(grid.Position, int) {},
		OnEnqueue: func(grid.Position) {},
	}
}

// Apply builds Options from DefaultOptions and opts, in order.
func Apply(opts ...Option) Options {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// WithOnExpand registers a callback to run on every expansion.
func WithOnExpand(fn func(pos grid.Position, expanded int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnExpand = fn
		}
	}
}

// WithOnEnqueue registers a callback to run on every frontier push.
func WithOnEnqueue(fn func(pos grid.Position)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnEnqueue = fn
		}
	}
}

// ValidateEndpoints checks that g is non-nil and that start and goal are
// in-bounds Free cells.
func ValidateEndpoints(g *grid.Grid, start, goal grid.Position) error {
	if g == nil {
		return ErrNilGrid
	}
	for _, ep := range []struct {
		name string
		pos  grid.Position
	}{{"start", start}, {"goal", goal}} {
		cell, err := g.Cell(ep.pos)
		if err != nil {
			return fmt.Errorf("search: %s: %w", ep.name, err)
		}
		if cell == grid.Wall {
			return fmt.Errorf("%w: %s %v", ErrBlockedEndpoint, ep.name, ep.pos)
		}
	}
	return nil
}
