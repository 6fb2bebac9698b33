package core

import (
	"math"
	"strconv"
	"time"
)

// fpsWindowMs is the minimum span a measurement window must exceed before the
// rate is recomputed.
const fpsWindowMs = 1000

// Clock reports monotonic time in milliseconds.
type Clock interface {
	NowMs() float64
}

// MonotonicClock measures milliseconds elapsed since it was created.
type MonotonicClock struct {
	origin time.Time
}

// NewMonotonicClock starts a clock at zero.
func NewMonotonicClock() *MonotonicClock {
	return &MonotonicClock{origin: time.Now()}
}

// NowMs returns the elapsed time in fractional milliseconds.
func (c *MonotonicClock) NowMs() float64 {
	return float64(time.Since(c.origin)) / float64(time.Millisecond)
}

// Label receives display text for a measured value.
type Label interface {
	SetText(text string)
}

// FPSMeter counts frames over windows of just over one second and keeps the
// rate measured for the last closed window.
type FPSMeter struct {
	frames  int
	startMs float64
	rate    float64
}

// NewFPSMeter opens the first measurement window at startMs.
func NewFPSMeter(startMs float64) *FPSMeter {
	return &FPSMeter{startMs: startMs}
}

// RecordFrame registers a frame rendered at nowMs. The window is checked
// before the frame is counted, so the frame that closes a window opens the
// next one.
func (m *FPSMeter) RecordFrame(nowMs float64) {
	if dt := nowMs - m.startMs; dt > fpsWindowMs {
		m.rate = float64(m.frames) * 1000 / dt
		m.frames = 0
		m.startMs = nowMs
	}
	m.frames++
}

// Rate returns the last computed frames per second, or 0 before the first
// window has closed.
func (m *FPSMeter) Rate() float64 { return m.rate }

// Frames returns the number of frames counted in the open window.
func (m *FPSMeter) Frames() int { return m.frames }

// WindowStart returns the timestamp the open window started at.
func (m *FPSMeter) WindowStart() float64 { return m.startMs }

// FormatRate renders rate rounded to the nearest integer.
func FormatRate(rate float64) string {
	return strconv.Itoa(int(math.Round(rate)))
}

// Display writes the formatted rate to label.
func Display(label Label, rate float64) {
	if label == nil {
		return
	}
	label.SetText(FormatRate(rate))
}
