package main

import (
	"fmt"
	"io"
	"log/slog"
	"sort"

	"github.com/spf13/cobra"

	"github.com/Farhatullah0066/ai-maze-solver-comparison/grid"
	"github.com/Farhatullah0066/ai-maze-solver-comparison/mazefile"
)

func newInspectCmd(logger func(*cobra.Command) *slog.Logger) *cobra.Command {
	return &cobra.Command{
		Use:   "inspect MAZE",
		Short: "Print size, wall count and connectivity of a maze",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInspect(cmd.OutOrStdout(), logger(cmd), args[0])
		},
	}
}

func runInspect(out io.Writer, logger *slog.Logger, path string) error {
	m, err := mazefile.Load(path)
	if err != nil {
		return err
	}
	g := m.Grid
	logger.Debug("maze loaded", "file", path)

	reach, err := g.Reachable(m.Start)
	if err != nil {
		return err
	}
	comps := g.Components()
	sizes := make([]int, len(comps))
	for i, c := range comps {
		sizes[i] = len(c)
	}
	sort.Sort(sort.Reverse(sort.IntSlice(sizes)))

	// Start and goal are connected iff they fall in the same component.
	component := make(map[grid.Position]int, g.FreeCount())
	for i, c := range comps {
		for _, p := range c {
			component[p] = i
		}
	}
	connected := component[m.Start] == component[m.Goal]

	free := g.FreeCount()
	fmt.Fprintf(out, "size:          %dx%d\n", g.Rows(), g.Cols())
	fmt.Fprintf(out, "free cells:    %d\n", free)
	fmt.Fprintf(out, "walls:         %d\n", g.Rows()*g.Cols()-free)
	fmt.Fprintf(out, "start:         %v\n", m.Start)
	fmt.Fprintf(out, "goal:          %v\n", m.Goal)
	fmt.Fprintf(out, "reachable:     %d\n", reach)
	fmt.Fprintf(out, "goal reached:  %v\n", connected)
	_, err = fmt.Fprintf(out, "components:    %d %v\n", len(comps), sizes)
	return err
}
