package xfab

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bodgit/xfab/geom"
)

func TestNew(t *testing.T) {
	p := New()

	require.Len(t, p.Levels, 1)
	assert.Equal(t, "level", p.Levels[0].Name)
	assert.Equal(t, "chr", p.Levels[0].ChrName)

	require.Len(t, p.ChrFiles, 1)
	assert.Equal(t, "chr", p.ChrFiles[0].Name)

	require.Len(t, p.ObjectClasses, 1)
	assert.Equal(t, "object", p.ObjectClasses[0].Name)
	assert.Equal(t, RGB{255, 255, 255}, p.ObjectClasses[0].Color)

	assert.Equal(t, 1, p.Palette.Num)
	assert.False(t, p.Modified)
}

func TestLookups(t *testing.T) {
	p := New()

	assert.NotNil(t, p.ChrFile("chr"))
	assert.Nil(t, p.ChrFile("missing"))

	assert.NotNil(t, p.ObjectClass("object"))
	assert.Nil(t, p.ObjectClass("missing"))

	assert.NotNil(t, p.Level("level"))
	assert.Nil(t, p.Level("missing"))
}

func TestCollisionScale(t *testing.T) {
	p := New()
	assert.Equal(t, 1, p.CollisionScale())

	p.MetatileSize = 1
	assert.Equal(t, 1, p.CollisionScale())

	p.MetatileSize = 4
	assert.Equal(t, 4, p.CollisionScale())
	assert.Equal(t, geom.Dimen{W: 2, H: 3}, p.CollisionDiv(geom.Dimen{W: 8, H: 9}))
}

func TestPaletteArray(t *testing.T) {
	p := New()
	for i := 0; i < 12; i++ {
		p.Palette.Tiles().Set(geom.Coord{X: i}, uint32(i+1))
	}
	p.Palette.Tiles().Set(geom.Coord{X: 24}, 0x2a)

	pa := p.PaletteArray(0)

	// Every sub-palette leads with the shared backdrop color.
	for i := 0; i < 4; i++ {
		assert.Equal(t, uint8(0x2a), pa[i*4])
	}
	assert.Equal(t, [3]uint8{1, 2, 3}, [3]uint8{pa[1], pa[2], pa[3]})
	assert.Equal(t, [3]uint8{10, 11, 12}, [3]uint8{pa[13], pa[14], pa[15]})
}

func TestObjectClassField(t *testing.T) {
	oc := NewObjectClass("enemy")
	oc.Fields = []ClassField{
		{Type: FieldTypeUnsigned, Name: "hp"},
		{Type: FieldTypeFlag, Name: "boss"},
	}

	f := oc.Field("boss")
	require.NotNil(t, f)
	assert.Equal(t, FieldTypeFlag, f.Type)
	assert.Nil(t, oc.Field("missing"))
}

func TestObjectEqualClone(t *testing.T) {
	o := Object{
		Position: geom.Coord{X: 1, Y: 2},
		Name:     "a",
		Class:    "object",
		Fields:   map[string]string{"k": "v"},
	}

	c := o.Clone()
	assert.True(t, o.Equal(c))

	c.Fields["k"] = "w"
	assert.False(t, o.Equal(c))
	assert.Equal(t, "v", o.Fields["k"])

	assert.False(t, o.Equal(Object{Position: o.Position, Name: "b", Class: o.Class, Fields: o.Fields}))
}
