/*
Package chr implements a decoder and encoder for the 2-bit-per-pixel packed
tile format used by the NES PPU.

Each 8 by 8 tile is stored as 16 bytes: two 8-byte bitplanes where plane 0
holds the low bit and plane 1 the high bit of each pixel's 2-bit color
index. Rows are packed MSB first, so bit 7 is the leftmost pixel.

Encoding a raster image also produces an index list with one entry per 8x8
block recording which compacted tile slot the block maps to. A block whose
pixels are all transparent keeps the previous block's slot instead of
claiming a new one; the decoder treats a repeated slot as a dropped tile
and substitutes a fixed placeholder image.
*/
package chr

import "errors"

const (
	// TileWidth and TileHeight are the pixel dimensions of one tile.
	TileWidth  = 8
	TileHeight = TileWidth

	// TileBytes is the packed size of one tile; two 8-byte bitplanes.
	TileBytes = 16

	// NumPalettes is the number of selectable sub-palettes.
	NumPalettes = 4

	// ColorsPerPalette is the number of colors in one sub-palette.
	ColorsPerPalette = 4
)

var (
	errWidth  = errors.New("chr: image width is not a multiple of 8")
	errHeight = errors.New("chr: image height is not a multiple of 8")
)

// Patterns is the result of encoding a raster image: the packed tile data
// and the per-block index list mapping block positions to compacted tile
// slots.
type Patterns struct {
	Data    []byte
	Indices []uint16
}

// Tiles returns the number of 8x8 blocks covered by the index list.
func (p *Patterns) Tiles() int {
	return len(p.Indices)
}

// Identity returns the trivial index list for raw tile data of the given
// byte size, where no tile is deduplicated.
func Identity(size int) []uint16 {
	indices := make([]uint16, size/TileBytes)
	for i := range indices {
		indices[i] = uint16(i)
	}
	return indices
}
