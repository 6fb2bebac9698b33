package app

import (
	"canvas-life/internal/core"
	"canvas-life/internal/render"
)

// Frame performs one iteration of the render loop: advance the simulation,
// repaint the whole board, then measure and display the frame rate.
type Frame struct {
	Sim     core.Sim
	Surface render.Surface
	Clock   core.Clock
	Meter   *core.FPSMeter
	Label   core.Label
}

// NewFrame wires a frame around sim and opens the FPS window at the clock's
// current time.
func NewFrame(sim core.Sim, surface render.Surface, clock core.Clock, label core.Label) *Frame {
	return &Frame{
		Sim:     sim,
		Surface: surface,
		Clock:   clock,
		Meter:   core.NewFPSMeter(clock.NowMs()),
		Label:   label,
	}
}

// Paint draws the current generation without advancing it.
func (f *Frame) Paint() {
	g := f.Sim.Grid()
	render.DrawGrid(f.Surface, g)
	render.DrawCells(f.Surface, g)
}

// Run executes a full frame.
func (f *Frame) Run() {
	f.Sim.Step()
	f.Paint()
	f.Meter.RecordFrame(f.Clock.NowMs())
	core.Display(f.Label, f.Meter.Rate())
}
