package xfab

import (
	"bytes"
	"fmt"
	"image"
	_ "image/png" // CHR sources may be PNG images
	"os"
	"path/filepath"
	"strings"

	"github.com/bodgit/xfab/chr"
)

// ChrBufferSize is the fixed size of a source's packed tile buffer: 1024
// tiles of 16 bytes.
const ChrBufferSize = 16 * 256 * 4

// ChrFile is one CHR source: a named, on-disk tile sheet decoded into a
// fixed-size packed buffer plus the dedup index list mapping original tile
// positions to compacted slots.
type ChrFile struct {
	ID      uint16
	Name    string
	Path    string
	Chr     [ChrBufferSize]byte
	Indices []uint16
}

// Load re-reads the source from its path. PNG files go through the
// bitplane encoder; anything else is taken as raw packed tiles with a
// trivial identity index list. A missing file leaves the buffer empty so
// a project can reference assets that are restored later; a file that
// exists but cannot be decoded is an error.
func (f *ChrFile) Load() error {
	f.Chr = [ChrBufferSize]byte{}
	f.Indices = nil

	if f.Path == "" {
		return nil
	}

	data, err := os.ReadFile(f.Path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}
	if len(data) == 0 {
		return nil
	}

	if strings.EqualFold(filepath.Ext(f.Path), ".png") {
		m, _, err := image.Decode(bytes.NewReader(data))
		if err != nil {
			return fmt.Errorf("xfab: decode %s: %w", f.Path, err)
		}
		p, err := chr.Encode(m)
		if err != nil {
			return fmt.Errorf("xfab: encode %s: %w", f.Path, err)
		}
		data = p.Data
		f.Indices = p.Indices
	} else {
		f.Indices = chr.Identity(len(data))
	}

	copy(f.Chr[:], data)
	return nil
}
