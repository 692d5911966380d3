package xfab

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bodgit/xfab/geom"
)

func testChrLayer(d geom.Dimen) *ChrLayer {
	l := NewChrLayer()
	l.CanvasResize(d)
	return l
}

func TestTileBits(t *testing.T) {
	tile := uint32(0x1234) | 2<<14 | uint32(0xabcd)<<16

	assert.Equal(t, uint32(0x1234), TileIndex(tile))
	assert.Equal(t, uint32(2), TileAttr(tile))
	assert.Equal(t, uint16(0xabcd), TileChrID(tile))
	assert.Equal(t, uint32(0x1234)|2<<14|uint32(7)<<16, WithChrID(tile, 7))
}

func TestCopyPaste(t *testing.T) {
	l := testChrLayer(geom.Dimen{W: 8, H: 8})
	l.Set(geom.Coord{X: 2, Y: 2}, 10)
	l.Set(geom.Coord{X: 3, Y: 2}, 11)
	l.Set(geom.Coord{X: 3, Y: 3}, 12)

	l.Canvas().SelectCoord(geom.Coord{X: 2, Y: 2}, true)
	l.Canvas().SelectCoord(geom.Coord{X: 3, Y: 3}, true)

	tc, undo := Copy(l, false)
	assert.Nil(t, undo)
	require.NotNil(t, tc)
	assert.Equal(t, FormatChr, tc.Format)
	assert.Equal(t, geom.Dimen{W: 2, H: 2}, tc.Tiles.Dimen())

	// Cells inside the bounding rectangle but not selected are absent.
	assert.Equal(t, uint32(10), tc.Tiles.At(geom.Coord{X: 0, Y: 0}))
	assert.Equal(t, NoTile, tc.Tiles.At(geom.Coord{X: 1, Y: 0}))
	assert.Equal(t, uint32(12), tc.Tiles.At(geom.Coord{X: 1, Y: 1}))

	dst := testChrLayer(geom.Dimen{W: 8, H: 8})
	dst.Set(geom.Coord{X: 6, Y: 5}, 99)
	Paste(dst, tc, geom.Coord{X: 5, Y: 5})

	assert.Equal(t, uint32(10), dst.Get(geom.Coord{X: 5, Y: 5}))
	assert.Equal(t, uint32(99), dst.Get(geom.Coord{X: 6, Y: 5}))
	assert.Equal(t, uint32(12), dst.Get(geom.Coord{X: 6, Y: 6}))
}

func TestPasteClipped(t *testing.T) {
	l := testChrLayer(geom.Dimen{W: 4, H: 4})
	tc := &TileCopy{Format: FormatChr, Tiles: geom.NewGrid[uint32](geom.Dimen{W: 2, H: 2})}
	tc.Tiles.Fill(7)

	Paste(l, tc, geom.Coord{X: 3, Y: 3})
	assert.Equal(t, uint32(7), l.Get(geom.Coord{X: 3, Y: 3}))
	assert.Equal(t, uint32(0), l.Get(geom.Coord{X: 2, Y: 2}))
}

func TestCutUndo(t *testing.T) {
	p := New()
	l := testChrLayer(geom.Dimen{W: 4, H: 4})
	l.Set(geom.Coord{X: 1, Y: 1}, 5)
	l.Canvas().SelectCoord(geom.Coord{X: 1, Y: 1}, true)

	_, undo := Copy(l, true)
	require.NotNil(t, undo)
	assert.Equal(t, uint32(0), l.Get(geom.Coord{X: 1, Y: 1}))

	p.Apply(undo)
	assert.Equal(t, uint32(5), l.Get(geom.Coord{X: 1, Y: 1}))
}

func TestFill(t *testing.T) {
	p := New()
	l := testChrLayer(geom.Dimen{W: 8, H: 8})

	// A two-wide picker pattern over a selection whose width it does not
	// divide.
	l.Picker().SelectRect(geom.Rect{C: geom.Coord{X: 0, Y: 0}, D: geom.Dimen{W: 2, H: 1}}, true)
	l.Canvas().SelectRect(geom.Rect{C: geom.Coord{X: 1, Y: 1}, D: geom.Dimen{W: 3, H: 2}}, true)

	undo := Fill(l)
	require.NotNil(t, undo)

	for y := 1; y < 3; y++ {
		assert.Equal(t, uint32(0), l.Get(geom.Coord{X: 1, Y: y}))
		assert.Equal(t, uint32(1), l.Get(geom.Coord{X: 2, Y: y}))
		assert.Equal(t, uint32(0), l.Get(geom.Coord{X: 3, Y: y}))
	}

	p.Apply(undo)
	assert.Equal(t, uint32(0), l.Get(geom.Coord{X: 2, Y: 1}))
}

func TestFillEmptySelection(t *testing.T) {
	l := testChrLayer(geom.Dimen{W: 4, H: 4})
	assert.Nil(t, Fill(l))

	l.Canvas().SelectAll(true)
	assert.Nil(t, Fill(l))
}

func TestFillPaste(t *testing.T) {
	l := testChrLayer(geom.Dimen{W: 4, H: 4})
	l.Set(geom.Coord{X: 1, Y: 0}, 42)

	tc := &TileCopy{Format: FormatChr, Tiles: geom.NewGrid[uint32](geom.Dimen{W: 2, H: 1})}
	tc.Tiles.Set(geom.Coord{X: 0, Y: 0}, 9)
	tc.Tiles.Set(geom.Coord{X: 1, Y: 0}, NoTile)

	l.Canvas().SelectRect(geom.Rect{C: geom.Coord{X: 0, Y: 0}, D: geom.Dimen{W: 4, H: 1}}, true)
	require.NotNil(t, FillPaste(l, tc))

	assert.Equal(t, uint32(9), l.Get(geom.Coord{X: 0, Y: 0}))
	// Absent buffer cells leave the canvas alone.
	assert.Equal(t, uint32(42), l.Get(geom.Coord{X: 1, Y: 0}))
	assert.Equal(t, uint32(9), l.Get(geom.Coord{X: 2, Y: 0}))
}

func TestDropper(t *testing.T) {
	l := testChrLayer(geom.Dimen{W: 4, H: 4})
	l.Set(geom.Coord{X: 2, Y: 2}, uint32(17)|1<<14|uint32(3)<<16)

	l.Dropper(geom.Coord{X: 2, Y: 2})

	assert.Equal(t, uint16(3), l.ChrID)
	assert.True(t, l.Picker().Selected(geom.Coord{X: 1, Y: 1}))
	assert.Equal(t, geom.Dimen{W: 1, H: 1}, l.Picker().Rect().D)
}

func TestChrLayerToTile(t *testing.T) {
	l := NewChrLayer()
	l.ChrID = 2
	l.Active = 3

	tile := l.ToTile(geom.Coord{X: 5, Y: 1})
	assert.Equal(t, uint32(21), TileIndex(tile))
	assert.Equal(t, uint32(3), TileAttr(tile))
	assert.Equal(t, uint16(2), TileChrID(tile))

	assert.Equal(t, geom.Coord{X: 5, Y: 1}, l.ToPick(tile))
}

func TestFillAttribute(t *testing.T) {
	p := New()
	l := testChrLayer(geom.Dimen{W: 4, H: 4})
	tile := uint32(100) | 1<<14 | uint32(6)<<16
	l.Set(geom.Coord{X: 0, Y: 0}, tile)

	l.Active = 3
	l.Canvas().SelectCoord(geom.Coord{X: 0, Y: 0}, true)

	undo := l.FillAttribute()
	require.NotNil(t, undo)

	got := l.Get(geom.Coord{X: 0, Y: 0})
	assert.Equal(t, uint32(100), TileIndex(got))
	assert.Equal(t, uint32(3), TileAttr(got))
	assert.Equal(t, uint16(6), TileChrID(got))

	p.Apply(undo)
	assert.Equal(t, tile, l.Get(geom.Coord{X: 0, Y: 0}))

	l.Active = 4
	assert.Nil(t, l.FillAttribute())
}

func TestColorLayerMapping(t *testing.T) {
	l := NewColorLayer()

	// The color picker maps column-major.
	assert.Equal(t, uint32(0), l.ToTile(geom.Coord{X: 0, Y: 0}))
	assert.Equal(t, uint32(1), l.ToTile(geom.Coord{X: 0, Y: 1}))
	assert.Equal(t, uint32(16), l.ToTile(geom.Coord{X: 1, Y: 0}))
	assert.Equal(t, geom.Coord{X: 1, Y: 2}, l.ToPick(18))

	assert.Equal(t, geom.Dimen{W: 25, H: 1}, l.CanvasDimen())
	l.Num = 3
	assert.Equal(t, geom.Dimen{W: 25, H: 3}, l.CanvasDimen())

	l.Set(geom.Coord{X: 0, Y: 0}, 0x21)
	l.Reset(geom.Coord{X: 0, Y: 0})
	assert.Equal(t, uint32(colorReset), l.Get(geom.Coord{X: 0, Y: 0}))
}

func TestForEachPicked(t *testing.T) {
	l := testChrLayer(geom.Dimen{W: 4, H: 4})
	l.Picker().SelectRect(geom.Rect{C: geom.Coord{X: 2, Y: 1}, D: geom.Dimen{W: 2, H: 1}}, true)

	got := make(map[geom.Coord]uint32)
	ForEachPicked(l, geom.Coord{X: 3, Y: 0}, func(at geom.Coord, tile uint32) {
		got[at] = tile
	})

	// The second picker cell lands outside the 4x4 canvas.
	assert.Equal(t, map[geom.Coord]uint32{
		{X: 3, Y: 0}: 18,
	}, got)
}
