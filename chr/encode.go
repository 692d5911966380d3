package chr

import (
	"image"
	"image/color"
	"image/draw"

	"github.com/ericpauley/go-quantize/quantize"
)

// paletteMap renumbers the opaque entries of an indexed palette densely in
// encounter order. Pixels referencing a non-opaque entry are transparent.
type paletteMap struct {
	opaque []uint8
}

func newPaletteMap(p color.Palette) *paletteMap {
	m := &paletteMap{}
	for i, c := range p {
		_, _, _, a := c.RGBA()
		if a>>8 >= 128 {
			m.opaque = append(m.opaque, uint8(i))
		}
	}
	return m
}

func (m *paletteMap) lookup(i uint8) uint8 {
	for j, o := range m.opaque {
		if o == i {
			return uint8(j)
		}
	}
	return 0
}

func (m *paletteMap) isTransparent(i uint8) bool {
	for _, o := range m.opaque {
		if o == i {
			return false
		}
	}
	return true
}

type encoder struct {
	width, height int

	// One entry per pixel; pixels hold 2-bit color indices.
	pixels      []uint8
	transparent []bool
}

func (e *encoder) readPixels(m image.Image) {
	b := m.Bounds()
	e.width = b.Dx()
	e.height = b.Dy()
	n := e.width * e.height
	e.pixels = make([]uint8, n)
	e.transparent = make([]bool, n)

	switch m := m.(type) {
	case *image.Paletted:
		pm := newPaletteMap(m.Palette)
		for y := 0; y < e.height; y++ {
			for x := 0; x < e.width; x++ {
				i := m.ColorIndexAt(b.Min.X+x, b.Min.Y+y)
				e.pixels[y*e.width+x] = pm.lookup(i)
				e.transparent[y*e.width+x] = pm.isTransparent(i)
			}
		}
	case *image.Gray:
		for y := 0; y < e.height; y++ {
			for x := 0; x < e.width; x++ {
				e.pixels[y*e.width+x] = m.GrayAt(b.Min.X+x, b.Min.Y+y).Y >> 6
			}
		}
	default:
		// Treat anything else as greyscale with alpha.
		for y := 0; y < e.height; y++ {
			for x := 0; x < e.width; x++ {
				c := color.NRGBAModel.Convert(m.At(b.Min.X+x, b.Min.Y+y)).(color.NRGBA)
				grey := color.GrayModel.Convert(c).(color.Gray).Y
				e.pixels[y*e.width+x] = grey >> 6
				e.transparent[y*e.width+x] = c.A < 128
			}
		}
	}
}

func (e *encoder) encode() *Patterns {
	p := &Patterns{
		Data:    make([]byte, 0, e.width*e.height/4),
		Indices: make([]uint16, 0, e.width*e.height/(TileWidth*TileHeight)),
	}

	var index uint16
	for ty := 0; ty < e.height; ty += TileHeight {
		for tx := 0; tx < e.width; tx += TileWidth {
			opaque := false
			for y := 0; y < TileHeight; y++ {
				for x := 0; x < TileWidth; x++ {
					if !e.transparent[tx+x+(ty+y)*e.width] {
						opaque = true
					}
				}
			}

			if !opaque {
				// A fully transparent block emits zeroed planes and keeps
				// the previous block's slot so the decoder drops it. Before
				// the first real tile there is no slot to repeat; 0xffff
				// keeps such blocks from colliding with slot 0.
				p.Data = append(p.Data, make([]byte, TileBytes)...)
				prev := uint16(0xffff)
				if len(p.Indices) > 0 {
					prev = p.Indices[len(p.Indices)-1]
				}
				p.Indices = append(p.Indices, prev)
				continue
			}

			for y := 0; y < TileHeight; y++ {
				var v uint8
				for x := 0; x < TileWidth; x++ {
					v |= (e.pixels[tx+x+(ty+y)*e.width] & 1) << uint(TileWidth-1-x)
				}
				p.Data = append(p.Data, v)
			}
			for y := 0; y < TileHeight; y++ {
				var v uint8
				for x := 0; x < TileWidth; x++ {
					v |= (e.pixels[tx+x+(ty+y)*e.width] >> 1 & 1) << uint(TileWidth-1-x)
				}
				p.Data = append(p.Data, v)
			}

			p.Indices = append(p.Indices, index)
			index++
		}
	}

	return p
}

// Encode converts a raster image into packed tile data plus the per-block
// index list. Palette-indexed images keep their color indices, renumbered
// over the opaque palette entries; greyscale and full color images are
// reduced to 2-bit greyscale; images with an alpha channel mark pixels
// with alpha below 128 as transparent. Width and height must both be
// multiples of 8.
func Encode(m image.Image) (*Patterns, error) {
	b := m.Bounds()
	if b.Dx()%TileWidth != 0 {
		return nil, errWidth
	}
	if b.Dy()%TileHeight != 0 {
		return nil, errHeight
	}

	var e encoder
	e.readPixels(m)
	return e.encode(), nil
}

// Quantize reduces an arbitrary image to at most four opaque colors so it
// can round-trip through Encode without losing more than color depth.
func Quantize(m image.Image) *image.Paletted {
	b := m.Bounds()
	q := quantize.MedianCutQuantizer{}
	pm := image.NewPaletted(b, q.Quantize(make(color.Palette, 0, ColorsPerPalette), m))
	draw.Draw(pm, b, m, b.Min, draw.Src)
	return pm
}
