package xfab

import (
	"fmt"
	"image"

	"github.com/fogleman/gg"

	"github.com/bodgit/xfab/geom"
)

// RenderLevel composes a level's CHR canvas into a single bitmap using
// the cached tile decodes, one 8x8 tile per cell. Cells whose tile index
// is out of range draw the placeholder like any other dropped tile.
func RenderLevel(p *Project, level *Level) (image.Image, error) {
	level.RefreshChr(p.ChrFiles, p.PaletteArray(int(level.Palette)))

	d := level.Dimen()
	if d.Empty() {
		return nil, fmt.Errorf("xfab: level %q has no canvas", level.Name)
	}

	dc := gg.NewContext(d.W*8, d.H*8)
	geom.ForEachCoord(d, func(c geom.Coord) {
		tile := level.Chr.Get(c)
		bitmaps := level.ChrBitmaps[TileChrID(tile)]
		index := int(TileIndex(tile))
		if index >= len(bitmaps) {
			return
		}
		dc.DrawImage(bitmaps[index][TileAttr(tile)], c.X*8, c.Y*8)
	})

	return dc.Image(), nil
}
