package xfab

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bodgit/xfab/geom"
)

func TestUndoTiles(t *testing.T) {
	p := New()
	l := p.Levels[0].Chr

	rect := geom.Rect{C: geom.Coord{X: 1, Y: 1}, D: geom.Dimen{W: 2, H: 2}}
	undo := SaveRect(l, rect)
	rect.ForEach(func(c geom.Coord) {
		l.Set(c, 7)
	})

	redo := p.Apply(undo)
	assert.Equal(t, uint32(0), l.Get(geom.Coord{X: 1, Y: 1}))

	p.Apply(redo)
	assert.Equal(t, uint32(7), l.Get(geom.Coord{X: 2, Y: 2}))
}

func TestUndoPaletteNum(t *testing.T) {
	p := New()
	undo := &UndoPaletteNum{Num: 4}

	redo := p.Apply(undo)
	assert.Equal(t, 4, p.Palette.Num)

	p.Apply(redo)
	assert.Equal(t, 1, p.Palette.Num)
}

func TestUndoGrid(t *testing.T) {
	p := New()
	l := p.Levels[0].Chr
	l.Set(geom.Coord{X: 0, Y: 0}, 3)

	undo := l.SaveGrid()
	l.CanvasResize(geom.Dimen{W: 4, H: 4})
	l.Set(geom.Coord{X: 0, Y: 0}, 9)

	redo := p.Apply(undo)
	assert.Equal(t, geom.Dimen{W: 24, H: 24}, l.Tiles().Dimen())
	assert.Equal(t, uint32(3), l.Get(geom.Coord{X: 0, Y: 0}))

	p.Apply(redo)
	assert.Equal(t, geom.Dimen{W: 4, H: 4}, l.Tiles().Dimen())
	assert.Equal(t, uint32(9), l.Get(geom.Coord{X: 0, Y: 0}))
}

func TestUndoObjects(t *testing.T) {
	p := New()
	level := p.Levels[0]

	level.Objects = append(level.Objects,
		Object{Name: "a", Class: "object", Fields: map[string]string{}},
		Object{Name: "b", Class: "object", Fields: map[string]string{}},
		Object{Name: "c", Class: "object", Fields: map[string]string{}},
	)

	// Deleting indices 0 and 2; removal runs high to low.
	undo := p.Apply(&UndoNewObject{Level: level, Indices: []int{2, 0}})
	require.Len(t, level.Objects, 1)
	assert.Equal(t, "b", level.Objects[0].Name)

	redo := p.Apply(undo)
	require.Len(t, level.Objects, 3)
	assert.Equal(t, "a", level.Objects[0].Name)
	assert.Equal(t, "b", level.Objects[1].Name)
	assert.Equal(t, "c", level.Objects[2].Name)

	p.Apply(redo)
	require.Len(t, level.Objects, 1)
	assert.Equal(t, "b", level.Objects[0].Name)
}

func TestUndoEditObject(t *testing.T) {
	p := New()
	level := p.Levels[0]
	level.Objects = append(level.Objects, Object{Name: "old", Class: "object", Fields: map[string]string{"hp": "1"}})

	undo := p.Apply(&UndoEditObject{
		Level:  level,
		Index:  0,
		Object: Object{Name: "new", Class: "object", Fields: map[string]string{"hp": "2"}},
	})
	assert.Equal(t, "new", level.Objects[0].Name)
	assert.Equal(t, "2", level.Objects[0].Fields["hp"])

	p.Apply(undo)
	assert.Equal(t, "old", level.Objects[0].Name)
	assert.Equal(t, "1", level.Objects[0].Fields["hp"])
}

func TestUndoMoveObjects(t *testing.T) {
	p := New()
	level := p.Levels[0]
	level.Objects = append(level.Objects,
		Object{Position: geom.Coord{X: 1, Y: 1}},
		Object{Position: geom.Coord{X: 2, Y: 2}},
	)

	undo := p.Apply(&UndoMoveObjects{
		Level:     level,
		Indices:   []int{0, 1},
		Positions: []geom.Coord{{X: 5, Y: 5}, {X: 6, Y: 6}},
	})
	assert.Equal(t, geom.Coord{X: 5, Y: 5}, level.Objects[0].Position)

	p.Apply(undo)
	assert.Equal(t, geom.Coord{X: 1, Y: 1}, level.Objects[0].Position)
	assert.Equal(t, geom.Coord{X: 2, Y: 2}, level.Objects[1].Position)
}

func TestUndoHistory(t *testing.T) {
	p := New()
	l := p.Levels[0].Chr
	h := &UndoHistory{}

	for i := 1; i <= 3; i++ {
		c := geom.Coord{X: i, Y: 0}
		undo := SaveCoord(l, c)
		l.Set(c, uint32(i))
		h.Push(undo)
	}

	assert.True(t, h.CanUndo())
	assert.False(t, h.CanRedo())

	h.Undo(p)
	h.Undo(p)
	assert.Equal(t, uint32(1), l.Get(geom.Coord{X: 1, Y: 0}))
	assert.Equal(t, uint32(0), l.Get(geom.Coord{X: 2, Y: 0}))
	assert.True(t, h.CanRedo())

	h.Redo(p)
	assert.Equal(t, uint32(2), l.Get(geom.Coord{X: 2, Y: 0}))

	// A fresh edit discards the remaining redo.
	undo := SaveCoord(l, geom.Coord{X: 0, Y: 1})
	l.Set(geom.Coord{X: 0, Y: 1}, 9)
	h.Push(undo)
	assert.False(t, h.CanRedo())

	// Undo past the beginning is a silent no-op.
	for i := 0; i < 10; i++ {
		h.Undo(p)
	}
	assert.False(t, h.CanUndo())
	assert.Equal(t, uint32(0), l.Get(geom.Coord{X: 1, Y: 0}))
}

func TestUndoHistoryNilAndLimit(t *testing.T) {
	p := New()
	l := p.Levels[0].Chr
	h := &UndoHistory{}

	h.Push(nil)
	assert.False(t, h.CanUndo())

	for i := 0; i < UndoLimit+10; i++ {
		undo := SaveCoord(l, geom.Coord{X: 0, Y: 0})
		l.Set(geom.Coord{X: 0, Y: 0}, uint32(i))
		h.Push(undo)
	}
	for i := 0; i < UndoLimit+10; i++ {
		h.Undo(p)
	}
	assert.False(t, h.CanUndo())
	// The oldest edits fell off the end, so the first surviving snapshot
	// is what undo lands on.
	assert.Equal(t, uint32(9), l.Get(geom.Coord{X: 0, Y: 0}))
}

func TestOnTop(t *testing.T) {
	h := &UndoHistory{}
	assert.False(t, OnTop[*UndoTiles](h))

	h.Push(&UndoPaletteNum{Num: 2})
	assert.True(t, OnTop[*UndoPaletteNum](h))
	assert.False(t, OnTop[*UndoTiles](h))
}

func TestApplyMarksModified(t *testing.T) {
	p := New()
	assert.False(t, p.Modified)

	assert.Nil(t, p.Apply(nil))
	assert.False(t, p.Modified)

	p.Apply(&UndoPaletteNum{Num: 2})
	assert.True(t, p.Modified)
	assert.True(t, p.ModifiedSinceSave)
}

func ExampleUndoHistory() {
	p := New()
	l := p.Levels[0].Chr
	h := &UndoHistory{}

	undo := SaveCoord(l, geom.Coord{})
	l.Set(geom.Coord{}, 42)
	h.Push(undo)

	h.Undo(p)
	fmt.Println(l.Get(geom.Coord{}))
	h.Redo(p)
	fmt.Println(l.Get(geom.Coord{}))
	// Output:
	// 0
	// 42
}
