package report

import (
	"errors"
	"fmt"
	"image/color"
	"io"

	"github.com/fogleman/gg"

	"github.com/Farhatullah0066/ai-maze-solver-comparison/grid"
)

// ErrBadScale is returned by RenderPNG when scale is not positive.
var ErrBadScale = errors.New("report: scale must be positive")

// Palette used by RenderPNG.
var (
	ColorFree  = color.RGBA{255, 255, 255, 255}
	ColorWall  = color.RGBA{30, 30, 30, 255}
	ColorPath  = color.RGBA{59, 82, 139, 255}
	ColorStart = color.RGBA{33, 145, 140, 255}
	ColorGoal  = color.RGBA{253, 231, 37, 255}
)

// RenderPNG draws g with each cell as a scale×scale square, strokes the
// path through cell centers and marks start and goal with discs, then
// writes the image to w as PNG.
func RenderPNG(w io.Writer, g *grid.Grid, start, goal grid.Position, path []grid.Position, scale int) error {
	if scale <= 0 {
		return fmt.Errorf("%w: got %d", ErrBadScale, scale)
	}
	s := float64(scale)
	center := func(p grid.Position) (float64, float64) {
		return float64(p.Col)*s + s/2, float64(p.Row)*s + s/2
	}

	dc := gg.NewContext(g.Cols()*scale, g.Rows()*scale)
	dc.SetColor(ColorFree)
	dc.Clear()

	// Walls
	dc.SetColor(ColorWall)
	for r := 0; r < g.Rows(); r++ {
		for c := 0; c < g.Cols(); c++ {
			if g.IsWall(grid.Position{Row: r, Col: c}) {
				dc.DrawRectangle(float64(c)*s, float64(r)*s, s, s)
				dc.Fill()
			}
		}
	}

	// Path
	if len(path) > 1 {
		dc.SetColor(ColorPath)
		dc.SetLineWidth(s / 2)
		dc.MoveTo(center(path[0]))
		for _, p := range path[1:] {
			dc.LineTo(center(p))
		}
		dc.Stroke()
	}

	// Endpoints
	for _, ep := range []struct {
		pos grid.Position
		c   color.Color
	}{{start, ColorStart}, {goal, ColorGoal}} {
		x, y := center(ep.pos)
		dc.SetColor(ep.c)
		dc.DrawCircle(x, y, s*0.4)
		dc.Fill()
	}

	return dc.EncodePNG(w)
}
