package mazefile

import (
	"errors"
	"io"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/Farhatullah0066/ai-maze-solver-comparison/grid"
)

func decodeYAML(r io.Reader) (*document, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var doc document
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, errors.New("empty document")
		}
		return nil, err
	}
	return &doc, nil
}

// encodeYAML writes each maze row and both positions in flow style so the
// file reads like the grid it describes.
func encodeYAML(w io.Writer, values [][]int, start, goal grid.Position) error {
	rows := &yaml.Node{Kind: yaml.SequenceNode}
	for _, row := range values {
		rows.Content = append(rows.Content, intSeq(row...))
	}

	root := &yaml.Node{Kind: yaml.MappingNode}
	root.Content = append(root.Content,
		str("maze"), rows,
		str("start_pos"), intSeq(start.Row, start.Col),
		str("goal_pos"), intSeq(goal.Row, goal.Col),
	)

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(root); err != nil {
		return err
	}
	return enc.Close()
}

func str(s string) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: s}
}

func intSeq(vs ...int) *yaml.Node {
	n := &yaml.Node{Kind: yaml.SequenceNode, Style: yaml.FlowStyle}
	for _, v := range vs {
		n.Content = append(n.Content, &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!int", Value: strconv.Itoa(v)})
	}
	return n
}
