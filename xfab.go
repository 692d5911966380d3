/*
Package xfab is the engine behind a 2D tile level-authoring tool: the
project data model, the selection and editing operations over tile grids,
a self-inverting undo engine, the versioned binary project container, and
loading of CHR tile sources.

The package owns no display surface; it only produces and consumes raw
pixel buffers and palette arrays. All operations are synchronous and
single threaded.
*/
package xfab

import (
	"image"

	"github.com/bodgit/xfab/geom"
)

// Project owns every level, the shared palette, the CHR sources and the
// object class definitions. Cross references between entities are by id
// or name, resolved by lookup, so undo snapshots and serialization stay
// trivially copyable.
type Project struct {
	// Modified is set by every applied edit; ModifiedSinceSave is cleared
	// on successful save and load.
	Modified          bool
	ModifiedSinceSave bool

	// Path of the project file, once saved or loaded.
	Path string

	Palette       *ColorLayer
	Levels        []*Level
	ObjectClasses []*ObjectClass
	ChrFiles      []*ChrFile

	// ObjectPicker is the template stamped when placing new objects.
	ObjectPicker Object

	// Paste holds the current copy buffer, if any.
	Paste *TileCopy

	// MetatileSize is the metatile grouping size; zero means ungrouped.
	MetatileSize int

	// CollisionPath locates the collision overlay image, sliced into
	// CollisionBitmaps at load time.
	CollisionPath    string
	CollisionBitmaps []*image.RGBA
}

// New returns an empty project holding one default level, one CHR source
// and one object class.
func New() *Project {
	p := &Project{
		Palette:       NewColorLayer(),
		ObjectClasses: []*ObjectClass{NewObjectClass("object")},
		ChrFiles:      []*ChrFile{{Name: "chr"}},
	}
	level := NewLevel()
	level.ChrName = "chr"
	p.Levels = append(p.Levels, level)
	return p
}

// Modify marks the project dirty.
func (p *Project) Modify() {
	p.Modified = true
	p.ModifiedSinceSave = true
}

// Apply performs an undo command against the project and returns its
// inverse. Applying nil is a no-op.
func (p *Project) Apply(u Undo) Undo {
	if u == nil {
		return nil
	}
	p.Modify()
	return u.apply(p)
}

// CollisionScale is the edge length, in tiles, of one collision cell.
func (p *Project) CollisionScale() int {
	if p.MetatileSize > 1 {
		return p.MetatileSize
	}
	return 1
}

// CollisionDiv converts a CHR canvas dimension to the matching collision
// layer dimension, rounding up.
func (p *Project) CollisionDiv(d geom.Dimen) geom.Dimen {
	s := p.CollisionScale()
	return geom.Dimen{W: (d.W + s - 1) / s, H: (d.H + s - 1) / s}
}

// PaletteArray derives the 16-entry sub-palette array for one palette
// row: four sub-palettes of four color table indices, each led by the
// shared backdrop color from the final column.
func (p *Project) PaletteArray(index int) [16]uint8 {
	var ret [16]uint8
	for i := 0; i < 4; i++ {
		ret[i*4] = uint8(p.Palette.Tiles().At(geom.Coord{X: 24, Y: index}))
		for j := 0; j < 3; j++ {
			ret[i*4+j+1] = uint8(p.Palette.Tiles().At(geom.Coord{X: i*3 + j, Y: index}))
		}
	}
	return ret
}

// ChrFile returns the named CHR source, or nil.
func (p *Project) ChrFile(name string) *ChrFile {
	for _, f := range p.ChrFiles {
		if f.Name == name {
			return f
		}
	}
	return nil
}

// ObjectClass returns the named object class, or nil.
func (p *Project) ObjectClass(name string) *ObjectClass {
	for _, oc := range p.ObjectClasses {
		if oc.Name == name {
			return oc
		}
	}
	return nil
}

// Level returns the named level, or nil.
func (p *Project) Level(name string) *Level {
	for _, l := range p.Levels {
		if l.Name == name {
			return l
		}
	}
	return nil
}
