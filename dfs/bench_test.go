package dfs_test

import (
	"math/rand"
	"testing"

	"github.com/Farhatullah0066/ai-maze-solver-comparison/dfs"
	"github.com/Farhatullah0066/ai-maze-solver-comparison/grid"
	"github.com/Farhatullah0066/ai-maze-solver-comparison/search/searchtest"
)

// BenchmarkSolve runs DFS on a 200×200 grid with 25% walls.
func BenchmarkSolve(b *testing.B) {
	const n = 200
	start, goal := grid.Position{Row: 0, Col: 0}, grid.Position{Row: n - 1, Col: n - 1}
	g := searchtest.RandomGrid(rand.New(rand.NewSource(42)), n, n, 0.25, start, goal)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = dfs.Solve(g, start, goal)
	}
}
