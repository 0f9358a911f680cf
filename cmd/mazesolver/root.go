package main

import (
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Farhatullah0066/ai-maze-solver-comparison/grid"
)

// newRootCmd assembles the command tree. A fresh tree per call keeps flag
// state out of package globals.
func newRootCmd() *cobra.Command {
	var debug bool

	root := &cobra.Command{
		Use:   "mazesolver",
		Short: "Compare A*, BFS and DFS on grid mazes",
		Long: `mazesolver loads a maze (YAML, JSON or ASCII text), runs the selected
search algorithms on it one after another and reports path length, nodes
expanded and run time for each.

Examples:
  # Compare A* and BFS on a maze file
  mazesolver solve maze.yaml

  # All three algorithms, path overlay and bar chart
  mazesolver solve maze.txt --algorithm a*,bfs,dfs --overlay --bars

  # Override the endpoints stored in the file
  mazesolver solve maze.yaml --start 0,0 --goal 10,12

  # Generate a 31x31 carved maze
  mazesolver generate maze.yaml --rows 31 --cols 31 --carved --seed 7`,
		SilenceUsage: true,
	}
	root.PersistentFlags().BoolVar(&debug, "debug", false, "Enable debug logging")

	logger := func(cmd *cobra.Command) *slog.Logger {
		return newLogger(cmd.ErrOrStderr(), debug)
	}
	root.AddCommand(
		newSolveCmd(logger),
		newGenerateCmd(logger),
		newInspectCmd(logger),
	)
	return root
}

func newLogger(w io.Writer, debug bool) *slog.Logger {
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// parsePosition reads "row,col".
func parsePosition(s string) (grid.Position, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 2 {
		return grid.Position{}, fmt.Errorf("position %q: want row,col", s)
	}
	row, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return grid.Position{}, fmt.Errorf("position %q: row: %w", s, err)
	}
	col, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return grid.Position{}, fmt.Errorf("position %q: col: %w", s, err)
	}
	return grid.Position{Row: row, Col: col}, nil
}
