package report

import (
	"encoding/json"
	"fmt"
	"io"
	"math"
	"text/tabwriter"

	"github.com/Farhatullah0066/ai-maze-solver-comparison/search"
)

// timeDecimals is the precision of the Time (s) column.
const timeDecimals = 6

// Row is the tabular view of one search.Result.
type Row struct {
	Algorithm     string   `json:"algorithm"`
	Found         bool     `json:"found"`
	Steps         int      `json:"steps"`
	NodesExpanded int      `json:"nodes_expanded"`
	TimeSeconds   float64  `json:"time_s"`
	Path          [][2]int `json:"path,omitempty"`
}

// Rows converts results in order. Time is rounded to six decimals.
func Rows(results []search.Result) []Row {
	rows := make([]Row, 0, len(results))
	for _, r := range results {
		row := Row{
			Algorithm:     r.Algorithm(),
			Found:         r.Found(),
			Steps:         r.Steps(),
			NodesExpanded: r.NodesExpanded(),
			TimeSeconds:   roundTo(r.Elapsed().Seconds(), timeDecimals),
		}
		for _, p := range r.Path() {
			row.Path = append(row.Path, [2]int{p.Row, p.Col})
		}
		rows = append(rows, row)
	}
	return rows
}

func roundTo(v float64, decimals int) float64 {
	scale := math.Pow(10, float64(decimals))
	return math.Round(v*scale) / scale
}

// RenderTable writes an aligned comparison table, one line per result.
func RenderTable(w io.Writer, results []search.Result) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "Algorithm\tSteps\tNodes Expanded\tTime (s)")
	for _, row := range Rows(results) {
		fmt.Fprintf(tw, "%s\t%d\t%d\t%.*f\n", row.Algorithm, row.Steps, row.NodesExpanded, timeDecimals, row.TimeSeconds)
	}
	return tw.Flush()
}

// RenderJSON writes Rows(results) as indented JSON.
func RenderJSON(w io.Writer, results []search.Result) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(Rows(results))
}
