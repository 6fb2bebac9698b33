// Package render paints a Life grid onto a drawing surface.
package render

import (
	"image/color"

	"canvas-life/internal/core"
)

// CellSize is the edge length of a cell in pixels, excluding the grid line.
const CellSize = 5

// Colours for grid lines and the two cell states.
var (
	GridColor  = color.RGBA{R: 0xCC, G: 0xCC, B: 0xCC, A: 0xFF}
	DeadColor  = color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}
	AliveColor = color.RGBA{R: 0x00, G: 0x00, B: 0x00, A: 0xFF}
)

// Surface is the 2D paint capability the renderer draws with.
type Surface interface {
	StrokeLine(x0, y0, x1, y1 float32, clr color.Color)
	FillRect(x, y, w, h float32, clr color.Color)
}

// CanvasSize returns the pixel size a surface needs for a w*h grid: one cell
// plus a one pixel border per column and row, and a closing border.
func CanvasSize(w, h int) (int, int) {
	return (CellSize+1)*w + 1, (CellSize+1)*h + 1
}

// DrawGrid strokes the w+1 vertical and h+1 horizontal separator lines.
func DrawGrid(s Surface, g *core.Grid) {
	cw, ch := CanvasSize(g.W, g.H)

	for i := 0; i <= g.W; i++ {
		x := float32(i*(CellSize+1) + 1)
		s.StrokeLine(x, 0, x, float32(ch), GridColor)
	}

	for j := 0; j <= g.H; j++ {
		y := float32(j*(CellSize+1) + 1)
		s.StrokeLine(0, y, float32(cw), y, GridColor)
	}
}

// DrawCells fills every cell square with the alive or dead colour.
func DrawCells(s Surface, g *core.Grid) {
	cells := g.Cells()
	for row := 0; row < g.H; row++ {
		for col := 0; col < g.W; col++ {
			clr := DeadColor
			if cells[g.Index(row, col)] == core.Alive {
				clr = AliveColor
			}
			s.FillRect(
				float32(col*(CellSize+1)+1),
				float32(row*(CellSize+1)+1),
				CellSize,
				CellSize,
				clr,
			)
		}
	}
}
