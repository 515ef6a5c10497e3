// Package report renders the evaluator's piece-square tables for inspection.
package report

import (
	"fmt"
	"io"

	svg "github.com/ajstarks/svgo"

	"chess-eval/engine"
)

type Options struct {
	// Kinds to draw, one board each. Empty means all six.
	Kinds []engine.PieceKind
	// Color selects the perspective: Black boards show the mirrored, negated values a
	// black piece contributes to the White-positive score.
	Color engine.Color
	// Cell is the square size in pixels.
	Cell int
}

const (
	margin = 24
	title  = 20
)

// WriteTablesSVG draws one 8x8 heat map per piece kind, rank 8 at the top. Warm cells
// favor White, cool cells favor Black.
func WriteTablesSVG(w io.Writer, opts Options) {
	kinds := opts.Kinds
	if len(kinds) == 0 {
		kinds = engine.PieceKinds[:]
	}
	cell := opts.Cell
	if cell <= 0 {
		cell = 40
	}
	boardSize := 8 * cell
	width := margin + len(kinds)*(boardSize+margin)
	height := margin + title + boardSize + margin

	canvas := svg.New(w)
	canvas.Start(width, height)
	canvas.Rect(0, 0, width, height, "fill:white")
	for i, kind := range kinds {
		x0 := margin + i*(boardSize+margin)
		y0 := margin + title
		canvas.Text(x0, margin+title/2, fmt.Sprintf("%s (%s)", kind, opts.Color), "font-family:sans-serif;font-size:14px")
		drawBoard(canvas, x0, y0, cell, kind, opts.Color)
	}
	canvas.End()
}

func drawBoard(canvas *svg.SVG, x0, y0, cell int, kind engine.PieceKind, c engine.Color) {
	canvas.Gid(kind.String())
	for sq := engine.Square(0); sq < engine.NumSquares; sq++ {
		v := engine.Bonus(kind, c, sq)
		x := x0 + sq.File()*cell
		y := y0 + (7-sq.Rank())*cell
		canvas.Rect(x, y, cell, cell, "stroke:#888;fill:"+heat(v))
		canvas.Text(x+cell/2, y+cell/2+4, fmt.Sprint(v), "text-anchor:middle;font-family:monospace;font-size:11px")
	}
	canvas.Gend()
}

// heat maps a bonus in [-50, 50] onto a blue-white-red ramp.
func heat(v int) string {
	v = max(-50, min(50, v))
	shade := 255 - engine.Abs(v)*255/50
	if v >= 0 {
		return fmt.Sprintf("rgb(255,%d,%d)", shade, shade)
	}
	return fmt.Sprintf("rgb(%d,%d,255)", shade, shade)
}
