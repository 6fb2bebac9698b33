//go:build ebiten

package render

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// GridPainter owns the offscreen canvas a frame is drawn into and blits it
// to the screen. In pixel mode frames are rasterised on the CPU and uploaded;
// in vector mode they are drawn straight onto the canvas image.
type GridPainter struct {
	w, h    int
	img     *ebiten.Image
	pixels  *ImageSurface
	surface Surface
}

// NewGridPainter allocates a canvas sized for a gridW*gridH board.
func NewGridPainter(gridW, gridH int, useVector bool) *GridPainter {
	w, h := CanvasSize(gridW, gridH)
	gp := &GridPainter{w: w, h: h, img: ebiten.NewImage(w, h)}
	if useVector {
		gp.surface = NewVectorSurface(gp.img)
	} else {
		gp.pixels = NewImageSurface(w, h)
		gp.surface = gp.pixels
	}
	return gp
}

// Surface returns the surface frames should draw into.
func (gp *GridPainter) Surface() Surface { return gp.surface }

// Blit uploads pending CPU pixels, if any, and draws the canvas scaled.
func (gp *GridPainter) Blit(dst *ebiten.Image, scale int) {
	if gp.pixels != nil {
		gp.img.WritePixels(gp.pixels.Pix())
	}
	if scale <= 0 {
		scale = 1
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(scale), float64(scale))
	dst.DrawImage(gp.img, op)
}

// Size returns the dimensions of the canvas image.
func (gp *GridPainter) Size() (int, int) { return gp.w, gp.h }

// VectorSurface draws with ebiten's vector package onto an image.
type VectorSurface struct {
	dst *ebiten.Image
}

// NewVectorSurface wraps dst.
func NewVectorSurface(dst *ebiten.Image) *VectorSurface {
	return &VectorSurface{dst: dst}
}

// StrokeLine draws a one pixel line.
func (s *VectorSurface) StrokeLine(x0, y0, x1, y1 float32, clr color.Color) {
	vector.StrokeLine(s.dst, x0, y0, x1, y1, 1, clr, false)
}

// FillRect fills an axis-aligned rectangle.
func (s *VectorSurface) FillRect(x, y, w, h float32, clr color.Color) {
	vector.DrawFilledRect(s.dst, x, y, w, h, clr, false)
}
