package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Farhatullah0066/ai-maze-solver-comparison/compare"
	"github.com/Farhatullah0066/ai-maze-solver-comparison/grid"
	"github.com/Farhatullah0066/ai-maze-solver-comparison/mazefile"
	"github.com/Farhatullah0066/ai-maze-solver-comparison/report"
	"github.com/Farhatullah0066/ai-maze-solver-comparison/search"
)

type solveFlags struct {
	algorithms string
	start      string
	goal       string
	closedSet  bool
	format     string
	overlay    bool
	bars       bool
	png        string
	pngScale   int
	trace      bool
}

func newSolveCmd(logger func(*cobra.Command) *slog.Logger) *cobra.Command {
	var f solveFlags
	cmd := &cobra.Command{
		Use:   "solve MAZE",
		Short: "Run the selected algorithms on a maze and compare them",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSolve(cmd.OutOrStdout(), logger(cmd), args[0], f)
		},
	}
	cmd.Flags().StringVarP(&f.algorithms, "algorithm", "a", "a*,bfs", "Comma-separated algorithms: a*, bfs, dfs")
	cmd.Flags().StringVar(&f.start, "start", "", "Start position row,col (default: from the maze file)")
	cmd.Flags().StringVar(&f.goal, "goal", "", "Goal position row,col (default: from the maze file)")
	cmd.Flags().BoolVar(&f.closedSet, "closed-set", false, "Run A* with a closed set")
	cmd.Flags().StringVar(&f.format, "format", "table", "Output format: table, json")
	cmd.Flags().BoolVar(&f.overlay, "overlay", false, "Print each path over the maze")
	cmd.Flags().BoolVar(&f.bars, "bars", false, "Print a bar chart of nodes expanded")
	cmd.Flags().StringVar(&f.png, "png", "", "Write a PNG overlay per algorithm to this file name")
	cmd.Flags().IntVar(&f.pngScale, "png-scale", 16, "Pixels per cell in PNG output")
	cmd.Flags().BoolVar(&f.trace, "trace", false, "Log every expansion at debug level")
	return cmd
}

func runSolve(out io.Writer, logger *slog.Logger, path string, f solveFlags) error {
	m, err := mazefile.Load(path)
	if err != nil {
		return err
	}
	if err := applyEndpoints(m, f.start, f.goal); err != nil {
		return err
	}
	logger.Info("maze loaded",
		"file", path,
		"rows", m.Grid.Rows(),
		"cols", m.Grid.Cols(),
		"start", m.Start.String(),
		"goal", m.Goal.String())

	algs, err := compare.ParseList(f.algorithms)
	if err != nil {
		return err
	}

	opts := []compare.Option{compare.WithLogger(logger)}
	if f.closedSet {
		opts = append(opts, compare.WithClosedSetAStar())
	}
	if f.trace {
		opts = append(opts, compare.WithSearchOptions(search.WithOnExpand(func(p grid.Position, n int) {
			logger.Debug("expand", "pos", p.String(), "n", n)
		})))
	}

	results, err := compare.Run(m.Grid, m.Start, m.Goal, algs, opts...)
	if err != nil {
		return err
	}

	switch f.format {
	case "table":
		err = report.RenderTable(out, results)
	case "json":
		err = report.RenderJSON(out, results)
	default:
		return fmt.Errorf("unknown format: %s (must be table or json)", f.format)
	}
	if err != nil {
		return err
	}

	if f.bars {
		fmt.Fprintln(out)
		if err := report.RenderBars(out, results); err != nil {
			return err
		}
	}
	if f.overlay {
		for _, r := range results {
			fmt.Fprintf(out, "\n%s: %s\n", r.Algorithm(), summary(r))
			if err := report.RenderOverlay(out, m.Grid, m.Start, m.Goal, r.Path()); err != nil {
				return err
			}
		}
	}
	if f.png != "" {
		if err := writePNGs(logger, f.png, f.pngScale, m, results); err != nil {
			return err
		}
	}
	return nil
}

// applyEndpoints replaces the file's start and goal with flag values, when
// given, and validates the result.
func applyEndpoints(m *mazefile.Maze, start, goal string) error {
	if start == "" && goal == "" {
		return nil
	}
	if start != "" {
		p, err := parsePosition(start)
		if err != nil {
			return fmt.Errorf("--start: %w", err)
		}
		m.Start = p
	}
	if goal != "" {
		p, err := parsePosition(goal)
		if err != nil {
			return fmt.Errorf("--goal: %w", err)
		}
		m.Goal = p
	}
	return search.ValidateEndpoints(m.Grid, m.Start, m.Goal)
}

func summary(r search.Result) string {
	if !r.Found() {
		return fmt.Sprintf("no path (%d nodes expanded)", r.NodesExpanded())
	}
	return fmt.Sprintf("path found in %d steps (%d nodes expanded)", r.Steps(), r.NodesExpanded())
}

// writePNGs writes one image per result. With several results the
// algorithm name is appended to the file stem: out.png → out-astar.png.
func writePNGs(logger *slog.Logger, name string, scale int, m *mazefile.Maze, results []search.Result) error {
	for _, r := range results {
		target := name
		if len(results) > 1 {
			ext := filepath.Ext(name)
			target = strings.TrimSuffix(name, ext) + "-" + slug(r.Algorithm()) + ext
		}
		if err := writePNG(target, scale, m, r); err != nil {
			return err
		}
		logger.Info("wrote image", "file", target, "algorithm", r.Algorithm())
	}
	return nil
}

func writePNG(target string, scale int, m *mazefile.Maze, r search.Result) (err error) {
	fh, err := os.Create(target)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := fh.Close(); err == nil {
			err = cerr
		}
	}()
	return report.RenderPNG(fh, m.Grid, m.Start, m.Goal, r.Path(), scale)
}

func slug(name string) string {
	return strings.ToLower(strings.ReplaceAll(name, "*", "star"))
}
