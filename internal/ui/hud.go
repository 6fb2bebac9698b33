//go:build ebiten

package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

// Height is the pixel height of the HUD strip.
const Height = 20

// HUD renders a one line status strip beneath the simulation view. It
// implements core.Label for the FPS value.
type HUD struct {
	prefix string
	text   string
	panel  *ebiten.Image
}

// NewHUD constructs a HUD whose text is shown after prefix.
func NewHUD(prefix string) *HUD {
	return &HUD{prefix: prefix, text: "0"}
}

// SetText replaces the displayed value.
func (h *HUD) SetText(text string) {
	if h == nil {
		return
	}
	h.text = text
}

// Text returns the displayed value.
func (h *HUD) Text() string { return h.text }

// Draw paints the strip at offsetY with the given width.
func (h *HUD) Draw(screen *ebiten.Image, offsetY, width int) {
	if h == nil || width <= 0 {
		return
	}
	if h.panel == nil || h.panel.Bounds().Dx() != width {
		h.panel = ebiten.NewImage(width, Height)
	}
	h.panel.Fill(color.RGBA{R: 16, G: 16, B: 20, A: 255})
	text.Draw(h.panel, h.prefix+h.text, basicfont.Face7x13, 6, 14, color.White)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(0, float64(offsetY))
	screen.DrawImage(h.panel, op)
}
