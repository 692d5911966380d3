package xfab

import "github.com/bodgit/xfab/geom"

// SelectMap is a boolean mask over a grid together with the tight bounding
// rectangle of all selected cells. The rectangle is the zero Rect exactly
// when nothing is selected.
//
// Selecting only ever grows the rectangle, which is cheap; deselecting
// rescans within the rectangle that existed before the change.
type SelectMap struct {
	sel  *geom.Grid[bool]
	rect geom.Rect
}

// NewSelectMap returns an empty selection over the given dimensions.
func NewSelectMap(d geom.Dimen) *SelectMap {
	return &SelectMap{sel: geom.NewGrid[bool](d)}
}

// Dimen returns the dimensions of the mask.
func (m *SelectMap) Dimen() geom.Dimen {
	return m.sel.Dimen()
}

// HasSelection reports whether any cell is selected.
func (m *SelectMap) HasSelection() bool {
	return !m.rect.Empty()
}

// Rect returns the bounding rectangle of the selection, or the zero Rect
// if nothing is selected.
func (m *SelectMap) Rect() geom.Rect {
	return m.rect
}

// Selected reports whether the cell at c is selected. Out of range
// coordinates are not selected.
func (m *SelectMap) Selected(c geom.Coord) bool {
	return geom.InBounds(c, m.Dimen()) && m.sel.At(c)
}

// SelectAll selects or deselects every cell.
func (m *SelectMap) SelectAll(on bool) {
	m.sel.Fill(on)
	if on {
		m.rect = geom.ToRect(m.Dimen())
	} else {
		m.rect = geom.Rect{}
	}
}

// Invert flips every cell. This is the one operation that must rescan the
// whole grid to rebuild the bounding rectangle.
func (m *SelectMap) Invert() {
	for i, v := range m.sel.Cells() {
		m.sel.Cells()[i] = !v
	}
	m.recalc(geom.ToRect(m.Dimen()))
}

// SelectCoord selects or deselects a single cell. Out of range coordinates
// are a no-op.
func (m *SelectMap) SelectCoord(c geom.Coord, on bool) {
	if !geom.InBounds(c, m.Dimen()) {
		return
	}
	m.sel.Set(c, on)
	if on {
		m.rect = geom.GrowToCoord(m.rect, c)
	} else {
		m.recalc(m.rect)
	}
}

// SelectRect selects or deselects every cell of r that lies within the
// grid.
func (m *SelectMap) SelectRect(r geom.Rect, on bool) {
	r = geom.Crop(r, m.Dimen())
	if r.Empty() {
		return
	}
	r.ForEach(func(c geom.Coord) {
		m.sel.Set(c, on)
	})
	if on {
		m.rect = geom.GrowToRect(m.rect, r)
	} else {
		m.recalc(m.rect)
	}
}

// SelectIndex selects the cell at the given row-major index.
func (m *SelectMap) SelectIndex(i int, on bool) {
	m.SelectCoord(geom.Coord{X: i % m.Dimen().W, Y: i / m.Dimen().W}, on)
}

// SelectIndexTransposed selects the cell at the given column-major index.
func (m *SelectMap) SelectIndexTransposed(i int, on bool) {
	m.SelectCoord(geom.Coord{X: i / m.Dimen().H, Y: i % m.Dimen().H}, on)
}

// Resize changes the mask dimensions, dropping cells outside the new
// bounds and rebuilding the bounding rectangle.
func (m *SelectMap) Resize(d geom.Dimen) {
	m.sel.Resize(d)
	m.recalc(geom.ToRect(d))
}

// ForEachSelected calls fn for every selected cell, scanning only the
// bounding rectangle.
func (m *SelectMap) ForEachSelected(fn func(geom.Coord)) {
	m.rect.ForEach(func(c geom.Coord) {
		if m.sel.At(c) {
			fn(c)
		}
	})
}

// recalc recomputes the bounding rectangle, scanning only within range.
func (m *SelectMap) recalc(within geom.Rect) {
	found := false
	var min, max geom.Coord
	within.ForEach(func(c geom.Coord) {
		if !m.sel.At(c) {
			return
		}
		if !found {
			min, max = c, c
			found = true
			return
		}
		if c.X < min.X {
			min.X = c.X
		}
		if c.Y < min.Y {
			min.Y = c.Y
		}
		if c.X > max.X {
			max.X = c.X
		}
		if c.Y > max.Y {
			max.Y = c.Y
		}
	})
	if !found {
		m.rect = geom.Rect{}
		return
	}
	m.rect = geom.FromCoords(min, max)
}
