package xfab

import (
	"encoding/binary"

	"github.com/bodgit/xfab/chr"
	"github.com/bodgit/xfab/geom"
)

// CollisionLayer holds one collision class value per metatile-sized block
// of the level.
type CollisionLayer struct {
	baseLayer
}

// NewCollisionLayer returns an empty collision layer.
func NewCollisionLayer() *CollisionLayer {
	return &CollisionLayer{
		baseLayer: newBaseLayer(geom.Dimen{W: 4, H: 64}, geom.Dimen{W: 16, H: 16}),
	}
}

func (l *CollisionLayer) Format() int {
	return FormatCollision
}

func (l *CollisionLayer) TileSize(p *Project) geom.Dimen {
	s := 8 * p.CollisionScale()
	return geom.Dimen{W: s, H: s}
}

func (l *CollisionLayer) Dropper(at geom.Coord) {
	dropper(l, at)
}

// ChrLayer is the pattern layer of a level. ToTile folds the active
// attribute and CHR source identifier into the picked tile value.
type ChrLayer struct {
	baseLayer

	// ChrID is the CHR source stamped into newly picked tiles.
	ChrID uint16

	// Active is the attribute (sub-palette) stamped into newly picked
	// tiles, 0 to 3.
	Active uint8
}

// NewChrLayer returns an empty CHR layer.
func NewChrLayer() *ChrLayer {
	return &ChrLayer{
		baseLayer: newBaseLayer(geom.Dimen{W: 16, H: 16 * 4}, geom.Dimen{W: 16 * 3, H: 16 * 3}),
	}
}

func (l *ChrLayer) Format() int {
	return FormatChr
}

func (l *ChrLayer) ToTile(pick geom.Coord) uint32 {
	return l.baseLayer.ToTile(pick) | uint32(l.Active&3)<<14 | uint32(l.ChrID)<<16
}

func (l *ChrLayer) ToPick(tile uint32) geom.Coord {
	return l.baseLayer.ToPick(TileIndex(tile))
}

// Dropper additionally switches the active CHR source to match the
// sampled tile.
func (l *ChrLayer) Dropper(at geom.Coord) {
	l.ChrID = TileChrID(l.Get(at))
	dropper(l, at)
}

// FillAttribute overwrites only the attribute bits of every selected cell
// with the active attribute, leaving tile index and source untouched.
// Returns nil if nothing is selected or the attribute is out of range.
func (l *ChrLayer) FillAttribute() Undo {
	rect := geom.Crop(l.canvas.Rect(), l.CanvasDimen())
	if rect.Empty() || l.Active >= 4 {
		return nil
	}

	undo := SaveRect(l, rect)

	l.canvas.ForEachSelected(func(c geom.Coord) {
		v := l.tiles.At(c) &^ (3 << 14)
		l.tiles.Set(c, v|uint32(l.Active&3)<<14)
	})

	return undo
}

// SaveGrid snapshots the whole canvas grid; resizes are undone by swapping
// the grid back wholesale.
func (l *ChrLayer) SaveGrid() Undo {
	return &UndoGrid{Layer: l, Tiles: l.tiles.Clone()}
}

// EditLayer selects which layer of a level is being edited.
type EditLayer int

const (
	EditAttr0 EditLayer = iota
	EditAttr1
	EditAttr2
	EditAttr3
	EditCollision
	EditObjects
)

// Level composes a CHR layer, a collision layer and the objects placed in
// the level. The collision layer's dimensions track the CHR layer's,
// divided by the collision scale.
type Level struct {
	Name      string
	MacroName string
	ChrName   string
	Palette   uint8

	Chr       *ChrLayer
	Collision *CollisionLayer

	// ChrBitmaps caches the decoded bitmaps of every CHR source, keyed by
	// source id, one bitmap per sub-palette per tile.
	ChrBitmaps map[uint16][]chr.AttrBitmaps

	Current EditLayer

	Objects         []Object
	ObjectSelection map[int]struct{}
}

// NewLevel returns an empty 24x24 level.
func NewLevel() *Level {
	l := &Level{
		Name:            "level",
		Chr:             NewChrLayer(),
		Collision:       NewCollisionLayer(),
		ObjectSelection: make(map[int]struct{}),
	}
	l.Resize(geom.Dimen{W: 24, H: 24}, geom.Dimen{W: 24, H: 24})
	return l
}

// Collisions reports whether the collision layer is being edited.
func (l *Level) Collisions() bool {
	return l.Current == EditCollision
}

// Layer returns the tile layer currently being edited.
func (l *Level) Layer() TileLayer {
	if l.Collisions() {
		return l.Collision
	}
	return l.Chr
}

// Dimen returns the CHR layer canvas dimensions.
func (l *Level) Dimen() geom.Dimen {
	return l.Chr.CanvasDimen()
}

// Resize resizes both layers' canvases and selection maps. The two layers
// need not share a cell-to-pixel scale.
func (l *Level) Resize(d, collisionDimen geom.Dimen) {
	l.Chr.CanvasResize(d)
	l.Collision.CanvasResize(collisionDimen)
}

// ClearChr discards the cached bitmap decodes.
func (l *Level) ClearChr() {
	l.ChrBitmaps = nil
}

// RefreshChr decodes every CHR source into one bitmap per sub-palette per
// tile, replacing any prior cached decode.
func (l *Level) RefreshChr(files []*ChrFile, palette [16]uint8) {
	l.ChrBitmaps = make(map[uint16][]chr.AttrBitmaps, len(files))
	for _, f := range files {
		l.ChrBitmaps[f.ID] = chr.Decode(f.Chr[:], palette, f.Indices)
	}
}

// ReindexObjects drops object selection entries that no longer name an
// object.
func (l *Level) ReindexObjects() {
	for i := range l.ObjectSelection {
		if i >= len(l.Objects) {
			delete(l.ObjectSelection, i)
		}
	}
}

// metatileKey forms a comparable key for one blockSize x blockSize block:
// the ordered tile values padded with zeroes past the canvas edge, plus
// the collision value covering the block.
func (l *Level) metatileKey(x, y, blockSize int) string {
	d := l.Chr.CanvasDimen()
	key := make([]byte, 0, blockSize*blockSize*4+1)

	for yy := 0; yy < blockSize; yy++ {
		for xx := 0; xx < blockSize; xx++ {
			var v uint32
			if c := (geom.Coord{X: x + xx, Y: y + yy}); geom.InBounds(c, d) {
				v = l.Chr.Get(c)
			}
			key = binary.LittleEndian.AppendUint32(key, v)
		}
	}

	var collision uint32
	if c := (geom.Coord{X: x / blockSize, Y: y / blockSize}); geom.InBounds(c, l.Collision.Tiles().Dimen()) {
		collision = l.Collision.Tiles().At(c)
	}
	return string(append(key, byte(collision)))
}

// CountMetatiles partitions the CHR canvas into non-overlapping blockSize
// x blockSize blocks and returns the number of distinct blocks, where a
// block is keyed by its tile values and its collision value. If
// selectThreshold is positive, every cell belonging to a block occurring
// at most that many times is selected afterwards, so rare patterns can be
// isolated visually.
func (l *Level) CountMetatiles(blockSize, selectThreshold int) int {
	if blockSize <= 0 {
		return 0
	}

	if selectThreshold > 0 {
		l.Chr.Canvas().SelectAll(false)
	}

	d := l.Chr.CanvasDimen()
	counts := make(map[string]int)

	for y := 0; y < d.H; y += blockSize {
		for x := 0; x < d.W; x += blockSize {
			counts[l.metatileKey(x, y, blockSize)]++
		}
	}

	if selectThreshold > 0 {
		for y := 0; y < d.H; y += blockSize {
			for x := 0; x < d.W; x += blockSize {
				if counts[l.metatileKey(x, y, blockSize)] > selectThreshold {
					continue
				}
				for yy := 0; yy < blockSize; yy++ {
					for xx := 0; xx < blockSize; xx++ {
						l.Chr.Canvas().SelectCoord(geom.Coord{X: x + xx, Y: y + yy}, true)
					}
				}
			}
		}
	}

	return len(counts)
}
