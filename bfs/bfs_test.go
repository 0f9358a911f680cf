package bfs_test

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Farhatullah0066/ai-maze-solver-comparison/bfs"
	"github.com/Farhatullah0066/ai-maze-solver-comparison/grid"
	"github.com/Farhatullah0066/ai-maze-solver-comparison/search"
	"github.com/Farhatullah0066/ai-maze-solver-comparison/search/searchtest"
)

func mustGrid(t *testing.T, values [][]int) *grid.Grid {
	t.Helper()
	g, err := grid.New(values)
	require.NoError(t, err)
	return g
}

// TestSolve_Errors verifies that invalid inputs are rejected before searching.
func TestSolve_Errors(t *testing.T) {
	g := mustGrid(t, [][]int{{0, 1}, {0, 0}})
	origin := grid.Position{Row: 0, Col: 0}

	if _, err := bfs.Solve(nil, origin, origin); !errors.Is(err, search.ErrNilGrid) {
		t.Errorf("nil grid: want ErrNilGrid, got %v", err)
	}
	if _, err := bfs.Solve(g, grid.Position{Row: -1, Col: 0}, origin); !errors.Is(err, grid.ErrInvalidPosition) {
		t.Errorf("start out of bounds: want ErrInvalidPosition, got %v", err)
	}
	if _, err := bfs.Solve(g, origin, grid.Position{Row: 0, Col: 2}); !errors.Is(err, grid.ErrInvalidPosition) {
		t.Errorf("goal out of bounds: want ErrInvalidPosition, got %v", err)
	}
	if _, err := bfs.Solve(g, origin, grid.Position{Row: 0, Col: 1}); !errors.Is(err, search.ErrBlockedEndpoint) {
		t.Errorf("goal on wall: want ErrBlockedEndpoint, got %v", err)
	}
}

// TestSolve_Scenario checks the reference 3×3 grid.
func TestSolve_Scenario(t *testing.T) {
	g, start, goal := searchtest.Scenario()

	res, err := bfs.Solve(g, start, goal)
	require.NoError(t, err)
	assert.Equal(t, bfs.Name, res.Algorithm())
	assert.Equal(t, searchtest.ScenarioPath(), res.Path())
	assert.Equal(t, 4, res.Steps())
	assert.Equal(t, 5, res.NodesExpanded())
}

// TestSolve_StartIsGoal returns the single start cell after one expansion.
func TestSolve_StartIsGoal(t *testing.T) {
	g := mustGrid(t, [][]int{{0, 0, 0}, {0, 0, 0}, {0, 0, 0}})
	s := grid.Position{Row: 1, Col: 1}

	res, err := bfs.Solve(g, s, s)
	require.NoError(t, err)
	assert.Equal(t, []grid.Position{s}, res.Path())
	assert.Zero(t, res.Steps())
	assert.Equal(t, 1, res.NodesExpanded())
}

// TestSolve_TieBreakByNeighborOrder shows East is preferred over South on
// an open grid, and pins the expansion count.
func TestSolve_TieBreakByNeighborOrder(t *testing.T) {
	g := mustGrid(t, [][]int{{0, 0, 0}, {0, 0, 0}, {0, 0, 0}})

	res, err := bfs.Solve(g, grid.Position{Row: 0, Col: 0}, grid.Position{Row: 2, Col: 2})
	require.NoError(t, err)
	assert.Equal(t, []grid.Position{{Row: 0, Col: 0}, {Row: 0, Col: 1}, {Row: 0, Col: 2}, {Row: 1, Col: 2}, {Row: 2, Col: 2}}, res.Path())
	assert.Equal(t, 9, res.NodesExpanded())
}

// TestSolve_Unreachable expands exactly the cells reachable from start.
func TestSolve_Unreachable(t *testing.T) {
	g := mustGrid(t, [][]int{
		{0, 0, 1, 0},
		{0, 0, 1, 0},
		{0, 0, 1, 0},
	})
	start := grid.Position{Row: 0, Col: 0}

	res, err := bfs.Solve(g, start, grid.Position{Row: 0, Col: 3})
	require.NoError(t, err)
	assert.False(t, res.Found())
	assert.Nil(t, res.Path())
	assert.Zero(t, res.Steps())

	reach, err := g.Reachable(start)
	require.NoError(t, err)
	assert.Equal(t, reach, res.NodesExpanded())
	assert.Equal(t, 6, res.NodesExpanded())
}

// TestSolve_Hooks asserts every cell is enqueued once and expansions are numbered 1..n.
func TestSolve_Hooks(t *testing.T) {
	g, start, goal := searchtest.Scenario()

	enqueued := map[grid.Position]int{}
	var order []int
	res, err := bfs.Solve(g, start, goal,
		search.WithOnEnqueue(func(p grid.Position) { enqueued[p]++ }),
		search.WithOnExpand(func(_ grid.Position, n int) { order = append(order, n) }),
	)
	require.NoError(t, err)

	for p, n := range enqueued {
		assert.Equal(t, 1, n, "position %v enqueued %d times", p, n)
	}
	assert.Equal(t, []int{1, 2, 3, 4, 5}, order)
	assert.Equal(t, len(order), res.NodesExpanded())
}

// TestSolve_Deterministic runs the same search twice.
func TestSolve_Deterministic(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	start, goal := grid.Position{Row: 0, Col: 0}, grid.Position{Row: 7, Col: 7}
	g := searchtest.RandomGrid(rng, 8, 8, 0.25, start, goal)

	a, err := bfs.Solve(g, start, goal)
	require.NoError(t, err)
	b, err := bfs.Solve(g, start, goal)
	require.NoError(t, err)

	assert.Equal(t, a.Path(), b.Path())
	assert.Equal(t, a.NodesExpanded(), b.NodesExpanded())
}

// TestSolve_OptimalAgainstExhaustive compares path length with an exhaustive
// oracle on many small random grids.
func TestSolve_OptimalAgainstExhaustive(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	for i := 0; i < 200; i++ {
		rows, cols := 2+rng.Intn(3), 2+rng.Intn(3)
		start := grid.Position{Row: rng.Intn(rows), Col: rng.Intn(cols)}
		goal := grid.Position{Row: rng.Intn(rows), Col: rng.Intn(cols)}
		g := searchtest.RandomGrid(rng, rows, cols, 0.3, start, goal)

		res, err := bfs.Solve(g, start, goal)
		require.NoError(t, err)

		want, ok := searchtest.ExhaustiveDistance(g, start, goal)
		require.Equal(t, ok, res.Found(), "case %d: reachability mismatch", i)
		if !ok {
			reach, _ := g.Reachable(start)
			require.Equal(t, reach, res.NodesExpanded(), "case %d", i)
			continue
		}
		require.Equal(t, want, res.Steps(), "case %d: %v→%v", i, start, goal)
		require.NoError(t, searchtest.CheckPath(g, start, goal, res.Path()), "case %d", i)
	}
}
