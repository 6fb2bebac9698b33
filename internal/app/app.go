//go:build ebiten

package app

import (
	"canvas-life/internal/core"
	"canvas-life/internal/loop"
	"canvas-life/internal/render"
	"canvas-life/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Game adapts a core simulation to the ebiten.Game interface. Every Draw call
// is one display refresh and fires the scheduler once.
type Game struct {
	sim     core.Sim
	painter *render.GridPainter
	hud     *ui.HUD
	frame   *Frame
	sched   *loop.Scheduler

	scale int
}

// New constructs a Game for the provided simulation and paints the seed
// generation.
func New(sim core.Sim, cfg *Config) *Game {
	size := sim.Size()
	painter := render.NewGridPainter(size.W, size.H, cfg.Vector)
	hud := ui.NewHUD("FPS ")
	frame := NewFrame(sim, painter.Surface(), core.NewMonotonicClock(), hud)
	frame.Paint()

	sched := loop.New()
	sched.Run(frame.Run)

	scale := cfg.Scale
	if scale <= 0 {
		scale = 1
	}
	return &Game{
		sim:     sim,
		painter: painter,
		hud:     hud,
		frame:   frame,
		sched:   sched,
		scale:   scale,
	}
}

// Scheduler exposes the frame scheduler so callers can stop the loop.
func (g *Game) Scheduler() *loop.Scheduler { return g.sched }

// Update handles input. The simulation itself advances in Draw.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		g.sched.Stop()
	}
	if g.sched.Stopped() {
		return ebiten.Termination
	}
	return nil
}

// Draw runs one frame and presents the canvas and HUD.
func (g *Game) Draw(screen *ebiten.Image) {
	g.sched.Refresh()
	g.painter.Blit(screen, g.scale)
	w, h := g.painter.Size()
	g.hud.Draw(screen, h*g.scale, w*g.scale)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	w, h := g.painter.Size()
	return w * g.scale, h*g.scale + ui.Height
}
