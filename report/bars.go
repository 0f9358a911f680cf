package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/Farhatullah0066/ai-maze-solver-comparison/search"
)

// barWidth is the length of the longest bar.
const barWidth = 40

// RenderBars writes one horizontal bar per result, scaled so the largest
// expansion count spans barWidth cells. Any non-zero count gets at least
// one cell.
func RenderBars(w io.Writer, results []search.Result) error {
	if len(results) == 0 {
		return nil
	}
	maxExpanded, nameWidth := 0, 0
	for _, r := range results {
		maxExpanded = max(maxExpanded, r.NodesExpanded())
		nameWidth = max(nameWidth, len(r.Algorithm()))
	}

	if _, err := fmt.Fprintln(w, "Nodes Expanded"); err != nil {
		return err
	}
	for _, r := range results {
		n := 0
		if maxExpanded > 0 {
			n = r.NodesExpanded() * barWidth / maxExpanded
			if n == 0 && r.NodesExpanded() > 0 {
				n = 1
			}
		}
		if _, err := fmt.Fprintf(w, "%-*s | %s %d\n", nameWidth, r.Algorithm(), strings.Repeat("#", n), r.NodesExpanded()); err != nil {
			return err
		}
	}
	return nil
}
