package xfab

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bodgit/xfab/geom"
)

func writePNG(t *testing.T, path string, m image.Image) {
	t.Helper()

	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()
	require.NoError(t, png.Encode(f, m))
}

func TestLoadCollisionImage(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "collision.png")

	// Covers only the first two columns of the first two rows.
	m := image.NewRGBA(image.Rect(0, 0, 16, 16))
	for y := 0; y < 16; y++ {
		for x := 0; x < 16; x++ {
			m.SetRGBA(x, y, color.RGBA{R: 0xff, A: 0xff})
		}
	}
	writePNG(t, path, m)

	tiles, err := LoadCollisionImage(path, 1)
	require.NoError(t, err)
	require.Len(t, tiles, collisionGrid.Area())

	assert.Equal(t, image.Rect(0, 0, 8, 8), tiles[0].Bounds())
	assert.Equal(t, color.RGBA{R: 0xff, A: 0xff}, tiles[0].RGBAAt(0, 0))
	assert.Equal(t, color.RGBA{R: 0xff, A: 0xff}, tiles[1].RGBAAt(7, 7))

	// Cells beyond the image edge are magenta.
	assert.Equal(t, color.RGBA{R: 255, B: 255, A: 255}, tiles[2].RGBAAt(0, 0))
	assert.Equal(t, color.RGBA{R: 255, B: 255, A: 255}, tiles[collisionGrid.Area()-1].RGBAAt(3, 3))
}

func TestLoadCollisionImageAbsent(t *testing.T) {
	tiles, err := LoadCollisionImage("", 1)
	require.NoError(t, err)
	assert.Nil(t, tiles)

	tiles, err = LoadCollisionImage(filepath.Join(t.TempDir(), "nope.png"), 1)
	require.NoError(t, err)
	assert.Nil(t, tiles)

	tiles, err = LoadCollisionImage("whatever.png", 0)
	require.NoError(t, err)
	assert.Nil(t, tiles)
}

func TestLoadCollisionImageBadData(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "collision.png")
	require.NoError(t, os.WriteFile(path, []byte("not an image"), 0o644))

	_, err := LoadCollisionImage(path, 1)
	assert.Error(t, err)
}

func TestRenderLevel(t *testing.T) {
	p := New()
	level := p.Levels[0]
	level.Resize(geom.Dimen{W: 8, H: 8}, geom.Dimen{W: 8, H: 8})

	m, err := RenderLevel(p, level)
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, 64, 64), m.Bounds())
}
