package xfab

import (
	"image"
	"image/color"
	"image/draw"
	"os"

	"github.com/bodgit/xfab/geom"
)

// collisionGrid is the fixed layout of the collision overlay image: 4
// columns by 64 rows of collision classes.
var collisionGrid = geom.Dimen{W: 4, H: 64}

// LoadCollisionImage slices the collision overlay image into one bitmap
// per collision class, each 8*scale pixels square, in row-major grid
// order. Area beyond the image edge is filled with magenta. An empty path
// or missing file yields no bitmaps.
func LoadCollisionImage(path string, scale int) ([]*image.RGBA, error) {
	if path == "" || scale <= 0 {
		return nil, nil
	}

	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}
	defer f.Close()

	base, _, err := image.Decode(f)
	if err != nil {
		return nil, err
	}

	s := 8 * scale
	fill := image.NewUniform(color.RGBA{255, 0, 255, 255})

	tiles := make([]*image.RGBA, 0, collisionGrid.Area())
	geom.ForEachCoord(collisionGrid, func(c geom.Coord) {
		tile := image.NewRGBA(image.Rect(0, 0, s, s))
		draw.Draw(tile, tile.Bounds(), fill, image.Point{}, draw.Src)
		src := image.Pt(base.Bounds().Min.X+c.X*s, base.Bounds().Min.Y+c.Y*s)
		draw.Draw(tile, tile.Bounds(), base, src, draw.Src)
		tiles = append(tiles, tile)
	})

	return tiles, nil
}
