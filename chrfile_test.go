package xfab

import (
	"image"
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChrFileLoadRaw(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "tiles.chr")

	raw := make([]byte, 32)
	for i := range raw {
		raw[i] = byte(i + 1)
	}
	require.NoError(t, os.WriteFile(path, raw, 0o644))

	f := &ChrFile{Path: path}
	require.NoError(t, f.Load())

	assert.Equal(t, raw, f.Chr[:32])
	assert.Equal(t, byte(0), f.Chr[32])
	assert.Equal(t, []uint16{0, 1}, f.Indices)
}

func TestChrFileLoadPNG(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "tiles.png")

	m := image.NewGray(image.Rect(0, 0, 8, 8))
	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			m.SetGray(x, y, color.Gray{Y: 0xff})
		}
	}
	writePNG(t, path, m)

	f := &ChrFile{Path: path}
	require.NoError(t, f.Load())

	assert.Equal(t, []uint16{0}, f.Indices)
	for i := 0; i < 16; i++ {
		assert.Equal(t, byte(0xff), f.Chr[i])
	}
}

func TestChrFileLoadAbsent(t *testing.T) {
	f := &ChrFile{Path: filepath.Join(t.TempDir(), "nope.chr")}
	f.Chr[0] = 9
	f.Indices = []uint16{1}

	require.NoError(t, f.Load())
	assert.Equal(t, byte(0), f.Chr[0])
	assert.Nil(t, f.Indices)

	f = &ChrFile{}
	require.NoError(t, f.Load())
}

func TestChrFileLoadBadPNG(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "tiles.png")
	require.NoError(t, os.WriteFile(path, []byte("not a png"), 0o644))

	f := &ChrFile{Path: path}
	assert.Error(t, f.Load())
}
