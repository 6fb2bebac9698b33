package render

import (
	"image"
	"image/color"
	"math"
)

// ImageSurface is a CPU-side RGBA canvas implementing Surface.
type ImageSurface struct {
	img *image.RGBA
}

// NewImageSurface allocates a w*h transparent canvas.
func NewImageSurface(w, h int) *ImageSurface {
	return &ImageSurface{img: image.NewRGBA(image.Rect(0, 0, w, h))}
}

// Image exposes the backing image.
func (s *ImageSurface) Image() *image.RGBA { return s.img }

// Pix exposes the raw RGBA bytes in row-major order.
func (s *ImageSurface) Pix() []byte { return s.img.Pix }

// Size returns the canvas dimensions.
func (s *ImageSurface) Size() (int, int) {
	b := s.img.Bounds()
	return b.Dx(), b.Dy()
}

// FillRect paints the pixels covered by the rectangle, clipped to the canvas.
func (s *ImageSurface) FillRect(x, y, w, h float32, clr color.Color) {
	px := rgba(clr)
	x0, y0 := int(math.Floor(float64(x))), int(math.Floor(float64(y)))
	x1, y1 := int(math.Ceil(float64(x+w))), int(math.Ceil(float64(y+h)))
	r := image.Rect(x0, y0, x1, y1).Intersect(s.img.Bounds())
	for cy := r.Min.Y; cy < r.Max.Y; cy++ {
		for cx := r.Min.X; cx < r.Max.X; cx++ {
			s.put(cx, cy, px)
		}
	}
}

// StrokeLine draws a one pixel wide line. A stroke centred on integer
// coordinate v straddles pixels v-1 and v; it is snapped to pixel v-1, which
// is where it stays visible once cells are filled from v onwards.
func (s *ImageSurface) StrokeLine(x0, y0, x1, y1 float32, clr color.Color) {
	px := rgba(clr)
	dx, dy := float64(x1-x0), float64(y1-y0)
	steps := int(math.Ceil(math.Max(math.Abs(dx), math.Abs(dy))))
	if steps == 0 {
		s.plot(float64(x0), float64(y0), px)
		return
	}
	for i := 0; i <= steps; i++ {
		t := float64(i) / float64(steps)
		s.plot(float64(x0)+t*dx, float64(y0)+t*dy, px)
	}
}

func (s *ImageSurface) plot(x, y float64, px [4]uint8) {
	ix, iy := int(math.Floor(x-0.5)), int(math.Floor(y-0.5))
	if !(image.Point{X: ix, Y: iy}.In(s.img.Bounds())) {
		return
	}
	s.put(ix, iy, px)
}

func (s *ImageSurface) put(x, y int, px [4]uint8) {
	base := s.img.PixOffset(x, y)
	buf := s.img.Pix
	buf[base+0] = px[0]
	buf[base+1] = px[1]
	buf[base+2] = px[2]
	buf[base+3] = px[3]
}

// rgba converts clr to premultiplied 8-bit components.
func rgba(clr color.Color) [4]uint8 {
	r, g, b, a := clr.RGBA()
	return [4]uint8{uint8(r >> 8), uint8(g >> 8), uint8(b >> 8), uint8(a >> 8)}
}
