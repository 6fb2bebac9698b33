package core

import (
	"errors"
	"fmt"
	"math"
)

// Cell is the state of a single grid position.
type Cell uint8

const (
	// Dead marks an empty cell.
	Dead Cell = 0
	// Alive marks a populated cell.
	Alive Cell = 1
)

var (
	// ErrInvalidDimensions is returned when a grid is created with a
	// non-positive width or height, or one whose cell count overflows int.
	ErrInvalidDimensions = errors.New("core: invalid grid dimensions")
	// ErrDimensionMismatch is returned when a replacement buffer does not
	// match the grid size.
	ErrDimensionMismatch = errors.New("core: cell buffer dimension mismatch")
	// ErrAliasedBuffer is returned when a replacement buffer shares storage
	// with the current generation.
	ErrAliasedBuffer = errors.New("core: cell buffer aliases current generation")
)

// Grid stores a toroidal 2D grid of cells in row-major order. It keeps a
// second buffer of the same size so a new generation can be computed without
// allocating. W and H are fixed at construction and must be treated as
// read-only.
type Grid struct {
	W, H  int
	cells []Cell
	back  []Cell
}

// NewGrid allocates a w*h grid and applies the startup seed: the cell at
// linear index i is alive when i is divisible by 2 or by 7.
func NewGrid(w, h int) (*Grid, error) {
	if w <= 0 || h <= 0 || h > math.MaxInt/w {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, w, h)
	}
	g := &Grid{W: w, H: h, cells: make([]Cell, w*h), back: make([]Cell, w*h)}
	Seed(g.cells)
	return g, nil
}

// Seed writes the deterministic startup pattern into cells.
func Seed(cells []Cell) {
	for i := range cells {
		if i%2 == 0 || i%7 == 0 {
			cells[i] = Alive
			continue
		}
		cells[i] = Dead
	}
}

// Size returns the grid dimensions.
func (g *Grid) Size() Size { return Size{W: g.W, H: g.H} }

// Cells exposes the current generation. Callers must treat it as read-only.
func (g *Grid) Cells() []Cell { return g.cells }

// Scratch exposes the back buffer, which is free to overwrite until the next
// Replace.
func (g *Grid) Scratch() []Cell { return g.back }

// Index returns the linear slice index for (row, column). It does not wrap.
func (g *Grid) Index(row, column int) int { return row*g.W + column }

// Wrap applies toroidal wrapping to the provided coordinates.
func (g *Grid) Wrap(row, column int) (int, int) {
	row = (row%g.H + g.H) % g.H
	column = (column%g.W + g.W) % g.W
	return row, column
}

// Get returns the cell at (row, column) after wrapping.
func (g *Grid) Get(row, column int) Cell {
	row, column = g.Wrap(row, column)
	return g.cells[g.Index(row, column)]
}

// Replace swaps next in as the current generation. The previous buffer becomes
// the new scratch buffer.
func (g *Grid) Replace(next []Cell) error {
	if len(next) != g.W*g.H {
		return fmt.Errorf("%w: got %d cells, want %d", ErrDimensionMismatch, len(next), g.W*g.H)
	}
	if len(g.cells) != g.W*g.H {
		return fmt.Errorf("%w: grid holds %d cells for %dx%d", ErrDimensionMismatch, len(g.cells), g.W, g.H)
	}
	if &next[0] == &g.cells[0] {
		return ErrAliasedBuffer
	}
	g.cells, g.back = next, g.cells
	return nil
}

// Population counts the alive cells in the current generation.
func (g *Grid) Population() int {
	n := 0
	for _, c := range g.cells {
		if c == Alive {
			n++
		}
	}
	return n
}
