package xfab

import "github.com/bodgit/xfab/geom"

// Copy buffer and layer format tags.
const (
	FormatColor = iota
	FormatChr
	FormatCollision
	FormatMetatile
	FormatObjects
)

// NoTile marks an absent cell in a copy buffer. A transparent cell is
// absence, not tile zero.
const NoTile = ^uint32(0)

// Tile values pack a 14-bit tile index, a 2-bit attribute and a 16-bit CHR
// source identifier.

// TileIndex returns the tile index bits of a tile value.
func TileIndex(tile uint32) uint32 {
	return tile & 0x3fff
}

// TileAttr returns the sub-palette attribute bits of a tile value.
func TileAttr(tile uint32) uint32 {
	return tile >> 14 & 3
}

// TileChrID returns the CHR source identifier of a tile value.
func TileChrID(tile uint32) uint16 {
	return uint16(tile >> 16)
}

// WithChrID replaces the CHR source identifier of a tile value.
func WithChrID(tile uint32, id uint16) uint32 {
	return tile&0xffff | uint32(id)<<16
}

// TileLayer is the contract shared by the color, collision and CHR layers:
// a canvas grid of packed tile values plus selection maps for the canvas
// and for the picker. The picker is a fixed palette of pickable tiles,
// independent in size from the canvas.
type TileLayer interface {
	Format() int
	TileSize(p *Project) geom.Dimen
	CanvasDimen() geom.Dimen
	CanvasResize(d geom.Dimen)
	Get(c geom.Coord) uint32
	Set(c geom.Coord, v uint32)
	Reset(c geom.Coord)
	ToTile(pick geom.Coord) uint32
	ToPick(tile uint32) geom.Coord
	Dropper(at geom.Coord)
	Picker() *SelectMap
	Canvas() *SelectMap
	Tiles() *geom.Grid[uint32]
}

// baseLayer carries the state and default behavior common to all layers.
// Concrete layers embed it and shadow the methods they specialize.
type baseLayer struct {
	picker *SelectMap
	canvas *SelectMap
	tiles  *geom.Grid[uint32]
}

func newBaseLayer(pickerDimen, canvasDimen geom.Dimen) baseLayer {
	return baseLayer{
		picker: NewSelectMap(pickerDimen),
		canvas: NewSelectMap(canvasDimen),
		tiles:  geom.NewGrid[uint32](canvasDimen),
	}
}

func (l *baseLayer) TileSize(p *Project) geom.Dimen {
	return geom.Dimen{W: 8, H: 8}
}

func (l *baseLayer) CanvasDimen() geom.Dimen {
	return l.tiles.Dimen()
}

func (l *baseLayer) CanvasResize(d geom.Dimen) {
	l.canvas.Resize(d)
	l.tiles.Resize(d)
}

func (l *baseLayer) Get(c geom.Coord) uint32 {
	return l.tiles.At(c)
}

func (l *baseLayer) Set(c geom.Coord, v uint32) {
	l.tiles.Set(c, v)
}

func (l *baseLayer) Reset(c geom.Coord) {
	l.Set(c, 0)
}

func (l *baseLayer) ToTile(pick geom.Coord) uint32 {
	return uint32(pick.X + pick.Y*l.picker.Dimen().W)
}

func (l *baseLayer) ToPick(tile uint32) geom.Coord {
	w := l.picker.Dimen().W
	return geom.Coord{X: int(tile) % w, Y: int(tile) / w}
}

func (l *baseLayer) Picker() *SelectMap {
	return l.picker
}

func (l *baseLayer) Canvas() *SelectMap {
	return l.canvas
}

func (l *baseLayer) Tiles() *geom.Grid[uint32] {
	return l.tiles
}

// dropper implements the shared part of Dropper: point the picker at the
// cell corresponding to the tile under at.
func dropper(l TileLayer, at geom.Coord) {
	l.Picker().SelectAll(false)
	l.Picker().SelectCoord(l.ToPick(l.Get(at)), true)
}

// Copy snapshots the cropped canvas selection into a dense buffer, using
// NoTile for unselected cells inside the bounding rectangle. With cut set
// it also clears the selected cells and returns an undo command restoring
// them.
func Copy(l TileLayer, cut bool) (*TileCopy, Undo) {
	rect := geom.Crop(l.Canvas().Rect(), l.CanvasDimen())
	tiles := geom.NewGrid[uint32](rect.D)

	var undo Undo
	if cut {
		undo = SaveRect(l, rect)
	}

	rect.ForEach(func(c geom.Coord) {
		if l.Canvas().Selected(c) {
			tiles.Set(c.Sub(rect.C), l.Get(c))
			if cut {
				l.Reset(c)
			}
		} else {
			tiles.Set(c.Sub(rect.C), NoTile)
		}
	})

	return &TileCopy{Format: l.Format(), Tiles: tiles}, undo
}

// Paste writes every present cell of the buffer onto the canvas at
// at+offset, skipping NoTile cells and out of bounds destinations.
func Paste(l TileLayer, tc *TileCopy, at geom.Coord) {
	if tc == nil || tc.Tiles == nil {
		return
	}
	geom.ForEachCoord(tc.Tiles.Dimen(), func(c geom.Coord) {
		v := tc.Tiles.At(c)
		if v != NoTile && geom.InBounds(at.Add(c), l.CanvasDimen()) {
			l.Set(at.Add(c), v)
		}
	})
}

// Fill tiles the canvas selection with the picker selection, repeating the
// picker pattern modulo its own dimensions, anchored at the canvas
// selection's top left. Returns nil if either selection is empty.
func Fill(l TileLayer) Undo {
	canvasRect := geom.Crop(l.Canvas().Rect(), l.CanvasDimen())
	pickerRect := l.Picker().Rect()

	if canvasRect.Empty() || pickerRect.Empty() {
		return nil
	}

	undo := SaveRect(l, canvasRect)

	l.Canvas().ForEachSelected(func(c geom.Coord) {
		o := c.Sub(canvasRect.C)
		p := geom.Coord{X: o.X % pickerRect.D.W, Y: o.Y % pickerRect.D.H}.Add(pickerRect.C)
		l.Set(c, l.ToTile(p))
	})

	return undo
}

// FillPaste is Fill with a copy buffer as the source pattern, honoring
// NoTile cells as "skip".
func FillPaste(l TileLayer, tc *TileCopy) Undo {
	if tc == nil || tc.Tiles == nil {
		return nil
	}

	canvasRect := geom.Crop(l.Canvas().Rect(), l.CanvasDimen())
	copyDimen := tc.Tiles.Dimen()

	if canvasRect.Empty() || copyDimen.Empty() {
		return nil
	}

	undo := SaveRect(l, canvasRect)

	l.Canvas().ForEachSelected(func(c geom.Coord) {
		o := c.Sub(canvasRect.C)
		v := tc.Tiles.At(geom.Coord{X: o.X % copyDimen.W, Y: o.Y % copyDimen.H})
		if v != NoTile {
			l.Set(c, v)
		}
	})

	return undo
}

// SaveCoord snapshots a picker-sized rectangle anchored at at.
func SaveCoord(l TileLayer, at geom.Coord) Undo {
	return SaveRect(l, geom.Rect{C: at, D: l.Picker().Dimen()})
}

// SaveRect snapshots the given rectangle, cropped to the canvas, without
// mutating anything. Every mutating operation uses this before it writes.
func SaveRect(l TileLayer, rect geom.Rect) Undo {
	rect = geom.Crop(rect, l.CanvasDimen())
	u := &UndoTiles{Layer: l, Rect: rect}
	rect.ForEach(func(c geom.Coord) {
		u.Tiles = append(u.Tiles, l.Get(c))
	})
	return u
}

// ForEachPicked calls fn for every selected picker cell, translated so the
// picker selection's top left lands on pen, skipping cells that fall
// outside the canvas.
func ForEachPicked(l TileLayer, pen geom.Coord, fn func(at geom.Coord, tile uint32)) {
	rect := l.Picker().Rect()
	l.Picker().ForEachSelected(func(c geom.Coord) {
		at := pen.Add(c).Sub(rect.C)
		if geom.InBounds(at, l.CanvasDimen()) {
			fn(at, l.ToTile(c))
		}
	})
}
