package mazefile

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/Farhatullah0066/ai-maze-solver-comparison/grid"
)

// ASCII symbols used by the text encoding.
const (
	SymbolWall  = '#'
	SymbolFree  = '.'
	SymbolStart = 'S'
	SymbolGoal  = 'G'
)

// decodeText parses one row per line. Blank lines are skipped and trailing
// whitespace is ignored. Exactly one 'S' and one 'G' are required.
func decodeText(r io.Reader) (*document, error) {
	var doc document
	var haveStart, haveGoal bool
	sc := bufio.NewScanner(r)
	line := 0
	for sc.Scan() {
		line++
		text := strings.TrimRight(sc.Text(), " \t\r")
		if text == "" {
			continue
		}
		row := make([]int, 0, len(text))
		for col, ch := range []rune(text) {
			pos := []int{len(doc.Maze), col}
			switch ch {
			case SymbolWall:
				row = append(row, grid.WallValue)
			case SymbolFree:
				row = append(row, 0)
			case SymbolStart:
				if haveStart {
					return nil, fmt.Errorf("line %d: second start symbol", line)
				}
				haveStart, doc.Start = true, pos
				row = append(row, 0)
			case SymbolGoal:
				if haveGoal {
					return nil, fmt.Errorf("line %d: second goal symbol", line)
				}
				haveGoal, doc.Goal = true, pos
				row = append(row, 0)
			default:
				return nil, fmt.Errorf("line %d col %d: unexpected symbol %q", line, col+1, ch)
			}
		}
		doc.Maze = append(doc.Maze, row)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return &doc, nil
}

func encodeText(w io.Writer, values [][]int, start, goal grid.Position) error {
	bw := bufio.NewWriter(w)
	for r, row := range values {
		for c, v := range row {
			p := grid.Position{Row: r, Col: c}
			ch := byte(SymbolFree)
			switch {
			case p == start:
				ch = SymbolStart
			case p == goal:
				ch = SymbolGoal
			case v == grid.WallValue:
				ch = SymbolWall
			}
			if err := bw.WriteByte(ch); err != nil {
				return err
			}
		}
		if err := bw.WriteByte('\n'); err != nil {
			return err
		}
	}
	return bw.Flush()
}
