package xfab

import "github.com/bodgit/xfab/geom"

// colorReset is the neutral palette entry color cells reset to.
const colorReset = 0x0f

// examplePalette seeds the first palette row of a new project.
var examplePalette = [25]uint32{
	0x11, 0x2b, 0x39,
	0x13, 0x21, 0x3b,
	0x15, 0x23, 0x31,
	0x17, 0x25, 0x33,

	0x02, 0x14, 0x26,
	0x04, 0x16, 0x28,
	0x06, 0x18, 0x2a,
	0x08, 0x1a, 0x2c,

	0x0f,
}

// ColorLayer is the shared palette layer. Each canvas row is one palette:
// twelve colors in four sub-palettes of three, plus the shared backdrop
// color in the final column. Only the first Num rows are active.
//
// The picker maps tiles column-major, unlike every other layer.
type ColorLayer struct {
	baseLayer

	// Num is the active palette count.
	Num int
}

// NewColorLayer returns a color layer seeded with the example palette.
func NewColorLayer() *ColorLayer {
	l := &ColorLayer{
		baseLayer: newBaseLayer(geom.Dimen{W: 4, H: 16}, geom.Dimen{W: 25, H: 256}),
		Num:       1,
	}
	l.tiles.Fill(colorReset)
	for i, v := range examplePalette {
		l.tiles.Set(geom.Coord{X: i}, v)
	}
	return l
}

func (l *ColorLayer) Format() int {
	return FormatColor
}

func (l *ColorLayer) TileSize(p *Project) geom.Dimen {
	return geom.Dimen{W: 16, H: 16}
}

func (l *ColorLayer) CanvasDimen() geom.Dimen {
	return geom.Dimen{W: l.tiles.Dimen().W, H: l.Num}
}

func (l *ColorLayer) Reset(c geom.Coord) {
	l.Set(c, colorReset)
}

func (l *ColorLayer) ToTile(pick geom.Coord) uint32 {
	return uint32(pick.Y + pick.X*l.picker.Dimen().H)
}

func (l *ColorLayer) ToPick(tile uint32) geom.Coord {
	h := l.picker.Dimen().H
	return geom.Coord{X: int(tile) / h, Y: int(tile) % h}
}

func (l *ColorLayer) Dropper(at geom.Coord) {
	dropper(l, at)
}
