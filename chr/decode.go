package chr

import (
	"image"
	"image/color"
)

// AttrBitmaps holds one decoded bitmap per sub-palette for a single tile.
type AttrBitmaps [NumPalettes]*image.RGBA

// Placeholder drawn in place of dropped or out-of-range tiles.
var missing = func() *image.RGBA {
	pattern := [TileHeight]string{
		"  ....++",
		"   ..+++",
		".   +++.",
		".. @@+..",
		"..+@@ ..",
		".+++   .",
		"+++..   ",
		"++....  ",
	}
	colors := map[byte]color.RGBA{
		' ': {0x39, 0x00, 0x00, 0xff},
		'.': {0x00, 0x39, 0x39, 0xff},
		'+': {0x00, 0x00, 0x39, 0xff},
		'@': {0x39, 0x00, 0x39, 0xff},
	}
	m := image.NewRGBA(image.Rect(0, 0, TileWidth, TileHeight))
	for y, row := range pattern {
		for x := 0; x < TileWidth; x++ {
			m.SetRGBA(x, y, colors[row[x]])
		}
	}
	return m
}()

// Missing returns the placeholder image substituted for dropped tiles.
func Missing() *image.RGBA {
	return missing
}

// Decode converts packed tile data into one bitmap per sub-palette per
// tile. The palette holds four sub-palettes of four color table indices
// each. A tile whose index list entry repeats the previous entry, or whose
// position runs past the index list, decodes to the placeholder image.
func Decode(data []byte, palette [NumPalettes * ColorsPerPalette]uint8, indices []uint16) []AttrBitmaps {
	var ret []AttrBitmaps

	for i := 0; i+TileBytes <= len(data); i += TileBytes {
		j := i / TileBytes
		if j >= len(indices) || (j != 0 && indices[j] == indices[j-1]) {
			ret = append(ret, AttrBitmaps{missing, missing, missing, missing})
			continue
		}

		var bm AttrBitmaps
		for a := range bm {
			bm[a] = image.NewRGBA(image.Rect(0, 0, TileWidth, TileHeight))
		}

		plane0 := data[i : i+TileHeight]
		plane1 := data[i+TileHeight : i+TileBytes]

		for y := 0; y < TileHeight; y++ {
			for x := 0; x < TileWidth; x++ {
				rx := uint(TileWidth - 1 - x)
				entry := (plane0[y] >> rx & 1) | (plane1[y] >> rx & 1 << 1)

				for a := range bm {
					c := palette[int(entry)+a*ColorsPerPalette] % 64
					bm[a].SetRGBA(x, y, Colors[c])
				}
			}
		}

		ret = append(ret, bm)
	}

	return ret
}
