package geom

import "fmt"

// Grid is a dense row-major 2D array. Access through At and Set is bounds
// checked and panics outside [0,W) x [0,H); out of range access is a
// programming error, not a recoverable condition, since clamping it
// silently would corrupt undo replay.
type Grid[T any] struct {
	dimen Dimen
	cells []T
}

// NewGrid allocates a zero-filled grid with the given dimensions.
func NewGrid[T any](d Dimen) *Grid[T] {
	if d.W < 0 || d.H < 0 {
		panic(fmt.Sprintf("geom: negative grid dimension %dx%d", d.W, d.H))
	}
	return &Grid[T]{dimen: d, cells: make([]T, d.Area())}
}

// Dimen returns the grid dimensions.
func (g *Grid[T]) Dimen() Dimen {
	return g.dimen
}

// Cells exposes the backing slice in row-major order.
func (g *Grid[T]) Cells() []T {
	return g.cells
}

func (g *Grid[T]) index(c Coord) int {
	if !InBounds(c, g.dimen) {
		panic(fmt.Sprintf("geom: coordinate (%d,%d) out of range %dx%d", c.X, c.Y, g.dimen.W, g.dimen.H))
	}
	return c.Y*g.dimen.W + c.X
}

// At returns the cell at c.
func (g *Grid[T]) At(c Coord) T {
	return g.cells[g.index(c)]
}

// Set stores v at c.
func (g *Grid[T]) Set(c Coord, v T) {
	g.cells[g.index(c)] = v
}

// Fill sets every cell to v.
func (g *Grid[T]) Fill(v T) {
	for i := range g.cells {
		g.cells[i] = v
	}
}

// Resize changes the grid dimensions in place. Cells inside both the old
// and new bounds keep their values; new cells are zero.
func (g *Grid[T]) Resize(d Dimen) {
	if d == g.dimen {
		return
	}
	n := NewGrid[T](d)
	w := g.dimen.W
	if d.W < w {
		w = d.W
	}
	h := g.dimen.H
	if d.H < h {
		h = d.H
	}
	for y := 0; y < h; y++ {
		copy(n.cells[y*d.W:y*d.W+w], g.cells[y*g.dimen.W:y*g.dimen.W+w])
	}
	*g = *n
}

// Clone returns an independent copy of the grid.
func (g *Grid[T]) Clone() *Grid[T] {
	n := &Grid[T]{dimen: g.dimen, cells: make([]T, len(g.cells))}
	copy(n.cells, g.cells)
	return n
}

// Equal reports whether two grids have the same dimensions and cells.
func Equal[T comparable](a, b *Grid[T]) bool {
	if a.dimen != b.dimen {
		return false
	}
	for i := range a.cells {
		if a.cells[i] != b.cells[i] {
			return false
		}
	}
	return true
}
