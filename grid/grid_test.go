package grid_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Farhatullah0066/ai-maze-solver-comparison/grid"
)

//----------------------------------------------------------------------------//
// New and InBounds Tests
//----------------------------------------------------------------------------//

// TestNew_Errors verifies that New rejects empty or ragged inputs.
func TestNew_Errors(t *testing.T) {
	cases := []struct {
		name string
		grid [][]int
		err  error
	}{
		{"EmptyRows", [][]int{}, grid.ErrEmptyGrid},
		{"EmptyCols", [][]int{{}}, grid.ErrEmptyGrid},
		{"NonRectangular", [][]int{{0, 1}, {0}}, grid.ErrNonRectangular},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := grid.New(tc.grid)
			if !errors.Is(err, tc.err) {
				t.Errorf("New(%v) error = %v; want %v", tc.grid, err, tc.err)
			}
		})
	}
}

// TestNew_CopiesInput ensures later edits to the input do not leak into the Grid.
func TestNew_CopiesInput(t *testing.T) {
	values := [][]int{{0, 0}, {0, 0}}
	g, err := grid.New(values)
	require.NoError(t, err)

	values[0][1] = grid.WallValue
	assert.True(t, g.IsFree(grid.Position{Row: 0, Col: 1}), "grid must not observe caller mutation")
}

// TestNew_CellValues checks that only WallValue produces a Wall.
func TestNew_CellValues(t *testing.T) {
	g, err := grid.New([][]int{{0, 1, 2, 3}})
	require.NoError(t, err)

	want := []grid.Cell{grid.Free, grid.Wall, grid.Free, grid.Free}
	for c, w := range want {
		got, err := g.Cell(grid.Position{Row: 0, Col: c})
		require.NoError(t, err)
		assert.Equal(t, w, got, "cell (0,%d)", c)
	}
	assert.Equal(t, 3, g.FreeCount())
	assert.Equal(t, [][]int{{0, 1, 0, 0}}, g.Values())
}

// TestInBounds checks InBounds on a 2×3 grid.
func TestInBounds(t *testing.T) {
	g, err := grid.New([][]int{
		{0, 1, 0},
		{1, 0, 1},
	})
	require.NoError(t, err)
	assert.Equal(t, 2, g.Rows())
	assert.Equal(t, 3, g.Cols())

	for _, p := range []grid.Position{{0, 0}, {1, 2}, {1, 1}} {
		assert.True(t, g.InBounds(p), "InBounds(%v)", p)
	}
	for _, p := range []grid.Position{{-1, 0}, {0, 3}, {2, 1}, {1, -1}} {
		assert.False(t, g.InBounds(p), "InBounds(%v)", p)
		_, err := g.Cell(p)
		assert.ErrorIs(t, err, grid.ErrInvalidPosition)
		assert.False(t, g.IsFree(p))
		assert.False(t, g.IsWall(p))
	}
}

//----------------------------------------------------------------------------//
// Neighbors Tests
//----------------------------------------------------------------------------//

// TestNeighbors_Order verifies the fixed East, West, South, North order.
func TestNeighbors_Order(t *testing.T) {
	g, err := grid.New([][]int{
		{0, 0, 0},
		{0, 0, 0},
		{0, 0, 0},
	})
	require.NoError(t, err)

	got, err := g.Neighbors(grid.Position{Row: 1, Col: 1})
	require.NoError(t, err)
	want := []grid.Position{{1, 2}, {1, 0}, {2, 1}, {0, 1}}
	assert.Equal(t, want, got)
}

// TestNeighbors_SkipsWallsAndEdges covers corners and blocked cells.
func TestNeighbors_SkipsWallsAndEdges(t *testing.T) {
	g, err := grid.New([][]int{
		{0, 1, 0},
		{0, 0, 0},
	})
	require.NoError(t, err)

	cases := []struct {
		at   grid.Position
		want []grid.Position
	}{
		{grid.Position{Row: 0, Col: 0}, []grid.Position{{1, 0}}},
		{grid.Position{Row: 1, Col: 1}, []grid.Position{{1, 2}, {1, 0}}},
		{grid.Position{Row: 0, Col: 2}, []grid.Position{{1, 2}}},
	}
	for _, tc := range cases {
		got, err := g.Neighbors(tc.at)
		require.NoError(t, err)
		assert.Equal(t, tc.want, got, "Neighbors(%v)", tc.at)
	}
}

// TestNeighbors_OutOfBounds ensures an invalid position is reported, not indexed.
func TestNeighbors_OutOfBounds(t *testing.T) {
	g, err := grid.New([][]int{{0}})
	require.NoError(t, err)

	_, err = g.Neighbors(grid.Position{Row: 5, Col: 0})
	require.ErrorIs(t, err, grid.ErrInvalidPosition)
	assert.Contains(t, err.Error(), "(5,0)")
}

//----------------------------------------------------------------------------//
// Position Tests
//----------------------------------------------------------------------------//

// TestPosition_Less checks row-then-column ordering.
func TestPosition_Less(t *testing.T) {
	a := grid.Position{Row: 0, Col: 5}
	b := grid.Position{Row: 1, Col: 0}
	c := grid.Position{Row: 1, Col: 2}

	assert.True(t, a.Less(b))
	assert.True(t, b.Less(c))
	assert.False(t, c.Less(b))
	assert.False(t, b.Less(b))
}

// TestManhattan checks the heuristic distance.
func TestManhattan(t *testing.T) {
	assert.Equal(t, 0, grid.Manhattan(grid.Position{Row: 2, Col: 2}, grid.Position{Row: 2, Col: 2}))
	assert.Equal(t, 4, grid.Manhattan(grid.Position{Row: 0, Col: 0}, grid.Position{Row: 2, Col: 2}))
	assert.Equal(t, 7, grid.Manhattan(grid.Position{Row: 3, Col: -1}, grid.Position{Row: 0, Col: 3}))
}
