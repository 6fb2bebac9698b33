package life

import (
	"fmt"

	"canvas-life/internal/core"
)

// Life implements Conway's Game of Life on a toroidal grid.
type Life struct {
	grid       *core.Grid
	generation uint64
}

// New returns a Life simulation seeded with the startup pattern.
func New(w, h int) (*Life, error) {
	g, err := core.NewGrid(w, h)
	if err != nil {
		return nil, fmt.Errorf("life: %w", err)
	}
	return &Life{grid: g}, nil
}

// Name returns the simulation identifier.
func (l *Life) Name() string { return "life" }

// Size returns the grid dimensions.
func (l *Life) Size() core.Size { return l.grid.Size() }

// Grid exposes the board for rendering.
func (l *Life) Grid() *core.Grid { return l.grid }

// Generation returns the number of completed steps.
func (l *Life) Generation() uint64 { return l.generation }

// Step advances the simulation by one generation.
func (l *Life) Step() {
	next := l.grid.Scratch()
	Tick(l.grid, next)
	if err := l.grid.Replace(next); err != nil {
		panic(err)
	}
	l.generation++
}

// Tick writes the generation following src into dst. src is only read, so
// every cell sees the same frozen prior state. dst must hold W*H cells and
// must not alias src's current buffer.
func Tick(src *core.Grid, dst []core.Cell) {
	cells := src.Cells()
	for row := 0; row < src.H; row++ {
		for col := 0; col < src.W; col++ {
			idx := src.Index(row, col)
			dst[idx] = Next(cells[idx], LiveNeighbors(src, row, col))
		}
	}
}

// LiveNeighbors counts the alive cells among the eight toroidal neighbours of
// (row, column). The -1 offsets are expressed as H-1 and W-1 so the modulo
// never sees a negative operand.
func LiveNeighbors(g *core.Grid, row, column int) int {
	cells := g.Cells()
	count := 0
	for _, dr := range [3]int{g.H - 1, 0, 1} {
		for _, dc := range [3]int{g.W - 1, 0, 1} {
			if dr == 0 && dc == 0 {
				continue
			}
			nr := (row + dr) % g.H
			nc := (column + dc) % g.W
			if cells[g.Index(nr, nc)] == core.Alive {
				count++
			}
		}
	}
	return count
}

// Next applies the Life rules to a single cell. The cases are checked in
// order and the first match wins.
func Next(cell core.Cell, live int) core.Cell {
	alive := cell == core.Alive
	switch {
	case alive && live < 2:
		return core.Dead
	case alive && (live == 2 || live == 3):
		return core.Alive
	case alive && live > 3:
		return core.Dead
	case !alive && live == 3:
		return core.Alive
	default:
		return cell
	}
}

func init() {
	core.Register("life", func(cfg map[string]string) (core.Sim, error) {
		c := FromMap(cfg)
		l, err := New(c.Width, c.Height)
		if err != nil {
			return nil, err
		}
		return l, nil
	})
}
