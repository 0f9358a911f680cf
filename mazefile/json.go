package mazefile

import (
	"encoding/json"
	"io"

	"github.com/Farhatullah0066/ai-maze-solver-comparison/grid"
)

func decodeJSON(r io.Reader) (*document, error) {
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()

	var doc document
	if err := dec.Decode(&doc); err != nil {
		return nil, err
	}
	return &doc, nil
}

func encodeJSON(w io.Writer, values [][]int, start, goal grid.Position) error {
	doc := document{
		Maze:  values,
		Start: []int{start.Row, start.Col},
		Goal:  []int{goal.Row, goal.Col},
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(doc)
}
