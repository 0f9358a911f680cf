// Package mazefile reads and writes maze documents: a grid of integers
// (1 = wall) plus a start and a goal position.
//
// Three encodings are supported and chosen by file extension:
//
//	.yaml, .yml   maze / start_pos / goal_pos keys, positions as [row, col]
//	.json         the same keys as a JSON object
//	.txt, .maze   ASCII art: '#' wall, '.' free, 'S' start, 'G' goal
//
// Every failure returned by this package wraps ErrConfiguration.
package mazefile

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/Farhatullah0066/ai-maze-solver-comparison/grid"
	"github.com/Farhatullah0066/ai-maze-solver-comparison/search"
)

// ErrConfiguration marks a maze document that is missing, unreadable or invalid.
var ErrConfiguration = errors.New("mazefile: invalid maze configuration")

// Format is a maze document encoding.
type Format int

const (
	YAML Format = iota
	JSON
	Text
)

// String returns the lower-case format name.
func (f Format) String() string {
	switch f {
	case YAML:
		return "yaml"
	case JSON:
		return "json"
	case Text:
		return "text"
	}
	return fmt.Sprintf("format(%d)", int(f))
}

// FormatFor picks the Format from the extension of path.
func FormatFor(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return YAML, nil
	case ".json":
		return JSON, nil
	case ".txt", ".maze":
		return Text, nil
	}
	return 0, fmt.Errorf("%w: unsupported file extension %q", ErrConfiguration, filepath.Ext(path))
}

// Maze is a validated maze document.
type Maze struct {
	Grid  *grid.Grid
	Start grid.Position
	Goal  grid.Position
}

// document is the raw decoded form shared by the YAML and JSON codecs.
type document struct {
	Maze  [][]int `yaml:"maze" json:"maze"`
	Start []int   `yaml:"start_pos" json:"start_pos"`
	Goal  []int   `yaml:"goal_pos" json:"goal_pos"`
}

// Load reads and validates the maze document at path.
func Load(path string) (*Maze, error) {
	f, err := FormatFor(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrConfiguration, err)
	}
	m, err := Decode(bytes.NewReader(data), f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return m, nil
}

// Decode reads one maze document in format f from r and validates it:
// the grid must be non-empty and rectangular, and both endpoints must be
// in-bounds Free cells.
func Decode(r io.Reader, f Format) (*Maze, error) {
	var (
		doc *document
		err error
	)
	switch f {
	case YAML:
		doc, err = decodeYAML(r)
	case JSON:
		doc, err = decodeJSON(r)
	case Text:
		doc, err = decodeText(r)
	default:
		err = fmt.Errorf("unknown format %v", f)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrConfiguration, err)
	}
	return doc.validate()
}

func (d *document) validate() (*Maze, error) {
	start, err := position("start_pos", d.Start)
	if err != nil {
		return nil, err
	}
	goal, err := position("goal_pos", d.Goal)
	if err != nil {
		return nil, err
	}
	g, err := grid.New(d.Maze)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrConfiguration, err)
	}
	if err := search.ValidateEndpoints(g, start, goal); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrConfiguration, err)
	}
	return &Maze{Grid: g, Start: start, Goal: goal}, nil
}

func position(key string, v []int) (grid.Position, error) {
	switch len(v) {
	case 0:
		return grid.Position{}, fmt.Errorf("%w: missing %s", ErrConfiguration, key)
	case 2:
		return grid.Position{Row: v[0], Col: v[1]}, nil
	}
	return grid.Position{}, fmt.Errorf("%w: %s must be [row, col], got %d values", ErrConfiguration, key, len(v))
}

// Save writes values, start and goal to path in the format implied by its
// extension. The document is not validated; Load will do that.
func Save(path string, values [][]int, start, goal grid.Position) error {
	f, err := FormatFor(path)
	if err != nil {
		return err
	}
	var buf bytes.Buffer
	if err := Encode(&buf, f, values, start, goal); err != nil {
		return err
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("%w: %w", ErrConfiguration, err)
	}
	return nil
}

// Encode writes one maze document in format f to w.
func Encode(w io.Writer, f Format, values [][]int, start, goal grid.Position) error {
	var err error
	switch f {
	case YAML:
		err = encodeYAML(w, values, start, goal)
	case JSON:
		err = encodeJSON(w, values, start, goal)
	case Text:
		err = encodeText(w, values, start, goal)
	default:
		err = fmt.Errorf("unknown format %v", f)
	}
	if err != nil {
		return fmt.Errorf("%w: %w", ErrConfiguration, err)
	}
	return nil
}
