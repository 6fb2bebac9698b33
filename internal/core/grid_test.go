package core

import (
	"errors"
	"math"
	"slices"
	"testing"
)

func TestNewGridSeedPattern(t *testing.T) {
	sizes := []Size{{W: 1, H: 1}, {W: 3, H: 5}, {W: 7, H: 2}, {W: 64, H: 64}}
	for _, size := range sizes {
		g, err := NewGrid(size.W, size.H)
		if err != nil {
			t.Fatalf("NewGrid(%d, %d): %v", size.W, size.H, err)
		}
		for row := 0; row < size.H; row++ {
			for col := 0; col < size.W; col++ {
				i := row*size.W + col
				want := Dead
				if i%2 == 0 || i%7 == 0 {
					want = Alive
				}
				if got := g.Get(row, col); got != want {
					t.Fatalf("%dx%d cell (%d,%d) = %d, want %d", size.W, size.H, row, col, got, want)
				}
			}
		}
	}
}

func TestNewGridRejectsInvalidDimensions(t *testing.T) {
	cases := []Size{
		{W: 0, H: 4},
		{W: 4, H: 0},
		{W: -1, H: 3},
		{W: 3, H: -2},
		{W: 1 << 32, H: 1 << 32},
		{W: math.MaxInt, H: 2},
	}
	for _, c := range cases {
		g, err := NewGrid(c.W, c.H)
		if !errors.Is(err, ErrInvalidDimensions) {
			t.Fatalf("NewGrid(%d, %d) error = %v, want ErrInvalidDimensions", c.W, c.H, err)
		}
		if g != nil {
			t.Fatalf("NewGrid(%d, %d) returned a grid alongside an error", c.W, c.H)
		}
	}
}

func TestIndexDoesNotWrap(t *testing.T) {
	g, err := NewGrid(5, 4)
	if err != nil {
		t.Fatal(err)
	}
	if got := g.Index(2, 3); got != 13 {
		t.Fatalf("Index(2,3) = %d, want 13", got)
	}
	if got := g.Index(4, 0); got != 20 {
		t.Fatalf("Index(4,0) = %d, want 20 (no wrapping)", got)
	}
}

func TestGetWrapsToroidally(t *testing.T) {
	g, err := NewGrid(5, 4)
	if err != nil {
		t.Fatal(err)
	}
	cells := g.Cells()
	for i := range cells {
		cells[i] = Dead
	}
	cells[g.Index(3, 4)] = Alive

	if g.Get(-1, -1) != Alive {
		t.Fatal("Get(-1,-1) should wrap to the bottom-right cell")
	}
	if g.Get(7, 9) != Alive {
		t.Fatal("Get(7,9) should wrap to (3,4)")
	}
	if g.Get(0, 0) != Dead {
		t.Fatal("Get(0,0) should be dead")
	}
}

func TestReplaceSwapsBuffers(t *testing.T) {
	g, err := NewGrid(4, 3)
	if err != nil {
		t.Fatal(err)
	}
	prev := g.Cells()
	next := g.Scratch()
	for i := range next {
		next[i] = Alive
	}
	if err := g.Replace(next); err != nil {
		t.Fatalf("Replace: %v", err)
	}
	if g.Population() != 12 {
		t.Fatalf("population = %d, want 12", g.Population())
	}
	if &g.Scratch()[0] != &prev[0] {
		t.Fatal("previous generation should become the scratch buffer")
	}
}

func TestReplaceRejectsMismatchedBuffer(t *testing.T) {
	g, err := NewGrid(4, 3)
	if err != nil {
		t.Fatal(err)
	}
	before := slices.Clone(g.Cells())
	err = g.Replace(make([]Cell, 11))
	if !errors.Is(err, ErrDimensionMismatch) {
		t.Fatalf("Replace error = %v, want ErrDimensionMismatch", err)
	}
	if !slices.Equal(before, g.Cells()) {
		t.Fatal("failed Replace must leave the grid untouched")
	}
}

func TestReplaceRejectsLiveBuffer(t *testing.T) {
	g, err := NewGrid(8, 8)
	if err != nil {
		t.Fatal(err)
	}
	live := g.Cells()
	scratch := g.Scratch()

	if err := g.Replace(live); !errors.Is(err, ErrAliasedBuffer) {
		t.Fatalf("Replace(Cells()) error = %v, want ErrAliasedBuffer", err)
	}
	if &g.Cells()[0] != &live[0] || &g.Scratch()[0] != &scratch[0] {
		t.Fatal("rejected Replace must keep both buffers in place")
	}
	if &g.Scratch()[0] == &g.Cells()[0] {
		t.Fatal("scratch buffer aliases the current generation")
	}
}

func TestReplaceRejectsResizedGrid(t *testing.T) {
	g, err := NewGrid(4, 3)
	if err != nil {
		t.Fatal(err)
	}
	g.W = 2
	if err := g.Replace(make([]Cell, 6)); !errors.Is(err, ErrDimensionMismatch) {
		t.Fatalf("Replace after resize error = %v, want ErrDimensionMismatch", err)
	}
}
