package search_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Farhatullah0066/ai-maze-solver-comparison/grid"
	"github.com/Farhatullah0066/ai-maze-solver-comparison/search"
)

// TestReconstruct_Chain rebuilds a three-cell route.
func TestReconstruct_Chain(t *testing.T) {
	a := grid.Position{Row: 0, Col: 0}
	b := grid.Position{Row: 0, Col: 1}
	c := grid.Position{Row: 1, Col: 1}
	parent := map[grid.Position]grid.Position{b: a, c: b}

	assert.Equal(t, []grid.Position{a, b, c}, search.Reconstruct(parent, a, c))
}

// TestReconstruct_StartIsGoal yields the single start cell.
func TestReconstruct_StartIsGoal(t *testing.T) {
	s := grid.Position{Row: 3, Col: 4}
	assert.Equal(t, []grid.Position{s}, search.Reconstruct(nil, s, s))
}

// TestReconstruct_BrokenChain returns nil rather than looping or panicking.
func TestReconstruct_BrokenChain(t *testing.T) {
	a := grid.Position{Row: 0, Col: 0}
	c := grid.Position{Row: 1, Col: 1}
	assert.Nil(t, search.Reconstruct(map[grid.Position]grid.Position{}, a, c))
}

// TestResult_Accessors covers Steps, Found and that Path returns a copy.
func TestResult_Accessors(t *testing.T) {
	path := []grid.Position{{Row: 0, Col: 0}, {Row: 0, Col: 1}, {Row: 0, Col: 2}}
	r := search.NewResult("BFS", path, 7, 3*time.Millisecond)

	assert.Equal(t, "BFS", r.Algorithm())
	assert.True(t, r.Found())
	assert.Equal(t, 2, r.Steps())
	assert.Equal(t, 7, r.NodesExpanded())
	assert.Equal(t, 3*time.Millisecond, r.Elapsed())

	path[0] = grid.Position{Row: 9, Col: 9}
	got := r.Path()
	assert.Equal(t, grid.Position{Row: 0, Col: 0}, got[0], "NewResult must copy its input")
	got[1] = grid.Position{Row: 9, Col: 9}
	assert.Equal(t, grid.Position{Row: 0, Col: 1}, r.Path()[1], "Path must return a copy")
}

// TestResult_NotFound covers the absent-path outcome and the single-cell path.
func TestResult_NotFound(t *testing.T) {
	r := search.NewResult("A*", nil, 12, 0)
	assert.False(t, r.Found())
	assert.Nil(t, r.Path())
	assert.Zero(t, r.Steps())
	assert.Equal(t, 12, r.NodesExpanded())

	single := search.NewResult("A*", []grid.Position{{Row: 1, Col: 1}}, 1, 0)
	assert.True(t, single.Found())
	assert.Zero(t, single.Steps())

	var zero search.Result
	assert.False(t, zero.Found())
}

// TestValidateEndpoints covers each rejection and the happy path.
func TestValidateEndpoints(t *testing.T) {
	g, err := grid.New([][]int{
		{0, 1},
		{0, 0},
	})
	require.NoError(t, err)

	free := grid.Position{Row: 0, Col: 0}
	wall := grid.Position{Row: 0, Col: 1}
	out := grid.Position{Row: 2, Col: 0}

	assert.NoError(t, search.ValidateEndpoints(g, free, grid.Position{Row: 1, Col: 1}))
	assert.ErrorIs(t, search.ValidateEndpoints(nil, free, free), search.ErrNilGrid)
	assert.ErrorIs(t, search.ValidateEndpoints(g, out, free), grid.ErrInvalidPosition)
	assert.ErrorIs(t, search.ValidateEndpoints(g, free, out), grid.ErrInvalidPosition)
	assert.ErrorIs(t, search.ValidateEndpoints(g, wall, free), search.ErrBlockedEndpoint)

	err = search.ValidateEndpoints(g, free, wall)
	require.ErrorIs(t, err, search.ErrBlockedEndpoint)
	assert.Contains(t, err.Error(), "goal")
}

// TestApply_Hooks checks that nil hooks keep the no-op defaults.
func TestApply_Hooks(t *testing.T) {
	o := search.Apply(search.WithOnExpand(nil), search.WithOnEnqueue(nil))
	require.NotNil(t, o.OnExpand)
	require.NotNil(t, o.OnEnqueue)
	o.OnExpand(grid.Position{}, 1)
	o.OnEnqueue(grid.Position{})

	var calls int
	o = search.Apply(search.WithOnExpand(func(grid.Position, int) { calls++ }))
	o.OnExpand(grid.Position{}, 1)
	assert.Equal(t, 1, calls)
}
