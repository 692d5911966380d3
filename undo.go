package xfab

import "github.com/bodgit/xfab/geom"

// UndoLimit bounds the number of commands kept in history.
const UndoLimit = 256

// Undo is one edit command. Applying a command both performs the edit and
// returns its exact inverse, so redo is simply applying what undo
// returned. A nil Undo is the no-op and is never pushed onto history.
//
// The set of commands is closed; apply is unexported to keep it that way.
type Undo interface {
	apply(p *Project) Undo
}

// UndoTiles swaps a rectangle of stored tiles with the snapshot held in
// the command.
type UndoTiles struct {
	Layer TileLayer
	Rect  geom.Rect
	Tiles []uint32
}

func (u *UndoTiles) apply(p *Project) Undo {
	inverse := SaveRect(u.Layer, u.Rect)
	i := 0
	u.Rect.ForEach(func(c geom.Coord) {
		u.Layer.Set(c, u.Tiles[i])
		i++
	})
	return inverse
}

// UndoPaletteNum swaps the active palette count.
type UndoPaletteNum struct {
	Num int
}

func (u *UndoPaletteNum) apply(p *Project) Undo {
	inverse := &UndoPaletteNum{Num: p.Palette.Num}
	p.Palette.Num = u.Num
	return inverse
}

// UndoGrid swaps a layer's entire tile grid; used for resizes and other
// whole-canvas replacements.
type UndoGrid struct {
	Layer TileLayer
	Tiles *geom.Grid[uint32]
}

func (u *UndoGrid) apply(p *Project) Undo {
	inverse := &UndoGrid{Layer: u.Layer, Tiles: u.Layer.Tiles().Clone()}
	*u.Layer.Tiles() = *u.Tiles.Clone()
	return inverse
}

// UndoNewObject removes objects by index; it is the inverse of
// UndoDeleteObject. Indices are listed high to low so removing in order
// keeps the remaining indices valid.
type UndoNewObject struct {
	Level   *Level
	Indices []int
}

func (u *UndoNewObject) apply(p *Project) Undo {
	inverse := &UndoDeleteObject{Level: u.Level}
	for i := len(u.Indices) - 1; i >= 0; i-- {
		index := u.Indices[i]
		inverse.Objects = append(inverse.Objects, IndexedObject{
			Index:  index,
			Object: u.Level.Objects[index].Clone(),
		})
	}
	for _, index := range u.Indices {
		u.Level.Objects = append(u.Level.Objects[:index], u.Level.Objects[index+1:]...)
	}
	u.Level.ReindexObjects()
	return inverse
}

// IndexedObject pairs an object with its list position.
type IndexedObject struct {
	Index  int
	Object Object
}

// UndoDeleteObject reinserts objects at their recorded indices, listed low
// to high so insertion in order restores the original positions.
type UndoDeleteObject struct {
	Level   *Level
	Objects []IndexedObject
}

func (u *UndoDeleteObject) apply(p *Project) Undo {
	inverse := &UndoNewObject{Level: u.Level}
	for i := len(u.Objects) - 1; i >= 0; i-- {
		inverse.Indices = append(inverse.Indices, u.Objects[i].Index)
	}
	for _, io := range u.Objects {
		objects := u.Level.Objects
		objects = append(objects, Object{})
		copy(objects[io.Index+1:], objects[io.Index:])
		objects[io.Index] = io.Object.Clone()
		u.Level.Objects = objects
	}
	return inverse
}

// UndoEditObject replaces one object at a fixed index.
type UndoEditObject struct {
	Level  *Level
	Index  int
	Object Object
}

func (u *UndoEditObject) apply(p *Project) Undo {
	inverse := &UndoEditObject{
		Level:  u.Level,
		Index:  u.Index,
		Object: u.Level.Objects[u.Index].Clone(),
	}
	u.Level.Objects[u.Index] = u.Object.Clone()
	return inverse
}

// UndoMoveObjects batch-updates positions for a list of indices.
type UndoMoveObjects struct {
	Level     *Level
	Indices   []int
	Positions []geom.Coord
}

func (u *UndoMoveObjects) apply(p *Project) Undo {
	inverse := &UndoMoveObjects{Level: u.Level, Indices: u.Indices}
	for _, index := range u.Indices {
		inverse.Positions = append(inverse.Positions, u.Level.Objects[index].Position)
	}
	for i, index := range u.Indices {
		u.Level.Objects[index].Position = u.Positions[i]
	}
	return inverse
}

// UndoHistory is a bounded pair of stacks. Pushing a new command clears
// the redo stack; undo moves the inverse of the front undo command onto
// the redo stack, and redo mirrors it.
type UndoHistory struct {
	history [2][]Undo
}

const (
	undoStack = iota
	redoStack
)

// Push records a freshly applied command's inverse. Pushing nil is a
// no-op.
func (h *UndoHistory) Push(u Undo) {
	if u == nil {
		return
	}
	h.history[redoStack] = nil
	h.history[undoStack] = append([]Undo{u}, h.history[undoStack]...)
	h.cull()
}

func (h *UndoHistory) cull() {
	if len(h.history[undoStack]) > UndoLimit {
		h.history[undoStack] = h.history[undoStack][:UndoLimit]
	}
}

func (h *UndoHistory) shift(p *Project, from, to int) {
	if len(h.history[from]) == 0 {
		return
	}
	u := h.history[from][0]
	h.history[from] = h.history[from][1:]
	h.history[to] = append([]Undo{p.Apply(u)}, h.history[to]...)
}

// Undo reverts the most recent command. An empty history is a silent
// no-op.
func (h *UndoHistory) Undo(p *Project) {
	h.shift(p, undoStack, redoStack)
}

// Redo reapplies the most recently undone command.
func (h *UndoHistory) Redo(p *Project) {
	h.shift(p, redoStack, undoStack)
}

// CanUndo reports whether the undo stack is non-empty.
func (h *UndoHistory) CanUndo() bool {
	return len(h.history[undoStack]) > 0
}

// CanRedo reports whether the redo stack is non-empty.
func (h *UndoHistory) CanRedo() bool {
	return len(h.history[redoStack]) > 0
}

// OnTop reports whether the front of the undo stack is a command of type
// T, so an editor can coalesce consecutive like edits.
func OnTop[T Undo](h *UndoHistory) bool {
	if len(h.history[undoStack]) == 0 {
		return false
	}
	_, ok := h.history[undoStack][0].(T)
	return ok
}
