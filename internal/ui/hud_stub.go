//go:build !ebiten

package ui

// Height is the pixel height of the HUD strip.
const Height = 20

// HUD is a no-op placeholder for headless builds.
type HUD struct{}

// NewHUD returns nil in the headless build.
func NewHUD(string) *HUD { return nil }

// SetText is a no-op in the headless build.
func (h *HUD) SetText(string) {}

// Text returns an empty string in the headless build.
func (h *HUD) Text() string { return "" }

// Draw is a no-op in the headless build.
func (h *HUD) Draw(any, int, int) {}
