package core

import (
	"math"
	"testing"
)

type recordingLabel struct {
	texts []string
}

func (l *recordingLabel) SetText(text string) { l.texts = append(l.texts, text) }

func TestFPSMeterWindow(t *testing.T) {
	m := NewFPSMeter(0)
	for ts := 0.0; ts <= 900; ts += 100 {
		m.RecordFrame(ts)
		if m.Rate() != 0 {
			t.Fatalf("rate = %v at %vms, want 0 before the window closes", m.Rate(), ts)
		}
	}
	if m.Frames() != 10 {
		t.Fatalf("frames = %d, want 10", m.Frames())
	}

	m.RecordFrame(1100)
	want := 10.0 * 1000 / 1100
	if math.Abs(m.Rate()-want) > 1e-9 {
		t.Fatalf("rate = %v, want %v", m.Rate(), want)
	}
	if m.WindowStart() != 1100 {
		t.Fatalf("window start = %v, want 1100", m.WindowStart())
	}
	// The counter resets to zero, then counts the frame that closed the window.
	if m.Frames() != 1 {
		t.Fatalf("frames = %d, want 1 after reset", m.Frames())
	}
}

func TestFPSMeterWindowBoundaryIsExclusive(t *testing.T) {
	m := NewFPSMeter(500)
	m.RecordFrame(700)
	m.RecordFrame(1500)
	if m.Rate() != 0 {
		t.Fatalf("rate = %v, want 0 at exactly 1000ms", m.Rate())
	}
	if m.Frames() != 2 {
		t.Fatalf("frames = %d, want 2", m.Frames())
	}
	m.RecordFrame(1500.5)
	if want := 2 * 1000 / 1000.5; math.Abs(m.Rate()-want) > 1e-9 {
		t.Fatalf("rate = %v, want %v", m.Rate(), want)
	}
}

func TestFormatRate(t *testing.T) {
	cases := []struct {
		rate float64
		want string
	}{
		{0, "0"},
		{9.09, "9"},
		{59.5, "60"},
		{60.49, "60"},
		{144.7, "145"},
	}
	for _, c := range cases {
		if got := FormatRate(c.rate); got != c.want {
			t.Errorf("FormatRate(%v) = %q, want %q", c.rate, got, c.want)
		}
	}
}

func TestDisplayWritesLabel(t *testing.T) {
	l := &recordingLabel{}
	Display(l, 59.6)
	Display(nil, 12)
	if len(l.texts) != 1 || l.texts[0] != "60" {
		t.Fatalf("label texts = %v, want [60]", l.texts)
	}
}

func TestMonotonicClockAdvances(t *testing.T) {
	c := NewMonotonicClock()
	a := c.NowMs()
	b := c.NowMs()
	if a < 0 || b < a {
		t.Fatalf("clock went backwards: %v then %v", a, b)
	}
}
