package xfab

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/bodgit/xfab/geom"
)

// The container starts with seven magic bytes and a version byte. Files
// written by a newer version than this refuse to load.
const saveVersion = 1

var fileMagic = []byte("8x8Fab\x00")

var (
	// ErrMagic means the file is not a project file at all.
	ErrMagic = errors.New("xfab: incorrect magic number")

	// ErrVersion means the file was written by a newer version.
	ErrVersion = errors.New("xfab: file is from a newer version of xfab")
)

// Strings are stored NUL terminated, so they cannot themselves contain
// NUL.
var errStringNUL = errors.New("xfab: string contains NUL byte")

type fileWriter struct {
	w    *bufio.Writer
	base string
}

func (w *fileWriter) write8(v uint8) error {
	return w.w.WriteByte(v)
}

func (w *fileWriter) write16(v uint16) error {
	if err := w.w.WriteByte(byte(v)); err != nil {
		return err
	}
	return w.w.WriteByte(byte(v >> 8))
}

func (w *fileWriter) write32(v uint32) error {
	for i := 0; i < 4; i++ {
		if err := w.w.WriteByte(byte(v >> (8 * i))); err != nil {
			return err
		}
	}
	return nil
}

func (w *fileWriter) writeString(s string) error {
	if strings.ContainsRune(s, 0) {
		return errStringNUL
	}
	if _, err := w.w.WriteString(s); err != nil {
		return err
	}
	return w.w.WriteByte(0)
}

// writePath stores a path relative to the project file's directory, with
// forward slashes.
func (w *fileWriter) writePath(path string) error {
	if path == "" {
		return w.writeString("")
	}
	rel, err := filepath.Rel(w.base, path)
	if err != nil {
		rel = path
	}
	return w.writeString(filepath.ToSlash(rel))
}

type fileReader struct {
	r    *bufio.Reader
	base string
}

func (r *fileReader) read8() (uint8, error) {
	b, err := r.r.ReadByte()
	if err == io.EOF {
		err = io.ErrUnexpectedEOF
	}
	if err != nil {
		return 0, fmt.Errorf("xfab: read 8-bit value: %w", err)
	}
	return b, nil
}

// readCount reads an 8-bit count where a stored zero means 256.
func (r *fileReader) readCount() (int, error) {
	b, err := r.read8()
	if err != nil {
		return 0, err
	}
	if b == 0 {
		return 256, nil
	}
	return int(b), nil
}

func (r *fileReader) read16() (uint16, error) {
	var v uint16
	for i := 0; i < 2; i++ {
		b, err := r.read8()
		if err != nil {
			return 0, err
		}
		v |= uint16(b) << (8 * i)
	}
	return v, nil
}

func (r *fileReader) read32() (uint32, error) {
	var v uint32
	for i := 0; i < 4; i++ {
		b, err := r.read8()
		if err != nil {
			return 0, err
		}
		v |= uint32(b) << (8 * i)
	}
	return v, nil
}

func (r *fileReader) readString() (string, error) {
	s, err := r.r.ReadString(0)
	if err != nil {
		if err == io.EOF {
			err = io.ErrUnexpectedEOF
		}
		return "", fmt.Errorf("xfab: read string: %w", err)
	}
	return s[:len(s)-1], nil
}

// readPath resolves a stored relative path against the project file's
// directory.
func (r *fileReader) readPath() (string, error) {
	s, err := r.readString()
	if err != nil {
		return "", err
	}
	if s == "" {
		return "", nil
	}
	path := filepath.FromSlash(s)
	if !filepath.IsAbs(path) {
		path = filepath.Join(r.base, path)
	}
	return path, nil
}

// Write serializes the project to w. Paths are stored relative to base,
// the directory the file will live in.
func (p *Project) Write(w io.Writer, base string) error {
	fw := &fileWriter{w: bufio.NewWriter(w), base: base}

	if _, err := fw.w.Write(fileMagic); err != nil {
		return err
	}
	if err := fw.write8(saveVersion); err != nil {
		return err
	}

	// Collision overlay.
	if err := fw.write8(uint8(p.MetatileSize)); err != nil {
		return err
	}
	if err := fw.writePath(p.CollisionPath); err != nil {
		return err
	}

	// CHR sources.
	if err := fw.write8(uint8(len(p.ChrFiles))); err != nil {
		return err
	}
	for _, f := range p.ChrFiles {
		if err := fw.write16(f.ID); err != nil {
			return err
		}
		if err := fw.writeString(f.Name); err != nil {
			return err
		}
		if err := fw.writePath(f.Path); err != nil {
			return err
		}
	}

	// Palettes: the full color layer, one byte per cell, row major.
	if err := fw.write8(uint8(p.Palette.Num)); err != nil {
		return err
	}
	for _, v := range p.Palette.Tiles().Cells() {
		if err := fw.write8(uint8(v)); err != nil {
			return err
		}
	}

	// Object classes.
	if err := fw.write8(uint8(len(p.ObjectClasses))); err != nil {
		return err
	}
	for _, oc := range p.ObjectClasses {
		if err := fw.writeString(oc.Name); err != nil {
			return err
		}
		if err := fw.writeString(oc.Macro); err != nil {
			return err
		}
		for _, v := range []uint8{oc.Color.R, oc.Color.G, oc.Color.B} {
			if err := fw.write8(v); err != nil {
				return err
			}
		}
		if err := fw.write8(uint8(len(oc.Fields))); err != nil {
			return err
		}
		for _, field := range oc.Fields {
			if err := fw.writeString(field.Name); err != nil {
				return err
			}
			if err := fw.writeString(field.Type); err != nil {
				return err
			}
		}
	}

	// Levels.
	if err := fw.write16(uint16(len(p.Levels))); err != nil {
		return err
	}
	for _, level := range p.Levels {
		if err := p.writeLevel(fw, level); err != nil {
			return err
		}
	}

	return fw.w.Flush()
}

func (p *Project) writeLevel(fw *fileWriter, level *Level) error {
	for _, s := range []string{level.Name, level.MacroName, level.ChrName} {
		if err := fw.writeString(s); err != nil {
			return err
		}
	}
	if err := fw.write8(level.Palette); err != nil {
		return err
	}

	d := level.Dimen()
	if err := fw.write16(uint16(d.W)); err != nil {
		return err
	}
	if err := fw.write16(uint16(d.H)); err != nil {
		return err
	}
	for _, v := range level.Chr.Tiles().Cells() {
		if err := fw.write32(v); err != nil {
			return err
		}
	}
	for _, v := range level.Collision.Tiles().Cells() {
		if err := fw.write8(uint8(v)); err != nil {
			return err
		}
	}

	if err := fw.write16(uint16(len(level.Objects))); err != nil {
		return err
	}
	for _, o := range level.Objects {
		if err := fw.writeString(o.Name); err != nil {
			return err
		}
		if err := fw.writeString(o.Class); err != nil {
			return err
		}
		if err := fw.write16(uint16(o.Position.X)); err != nil {
			return err
		}
		if err := fw.write16(uint16(o.Position.Y)); err != nil {
			return err
		}

		// Only fields the matching class defines are persisted, in the
		// class's field order.
		oc := p.ObjectClass(o.Class)
		if oc == nil {
			continue
		}
		for _, field := range oc.Fields {
			if v, ok := o.Fields[field.Name]; ok {
				if err := fw.writeString(v); err != nil {
					return err
				}
			} else if err := fw.write8(0); err != nil {
				return err
			}
		}
	}

	return nil
}

// Read replaces the project's contents with the file read from r. Paths
// are resolved against base, the directory the file was read from. On
// failure the project may be partially replaced and should be discarded.
func (p *Project) Read(r io.Reader, base string) error {
	fr := &fileReader{r: bufio.NewReader(r), base: base}

	magic := make([]byte, len(fileMagic)+1)
	if _, err := io.ReadFull(fr.r, magic); err != nil {
		if err == io.EOF {
			err = io.ErrUnexpectedEOF
		}
		return fmt.Errorf("xfab: read magic number: %w", err)
	}
	if string(magic[:len(fileMagic)]) != string(fileMagic) {
		return ErrMagic
	}
	if magic[len(fileMagic)] > saveVersion {
		return ErrVersion
	}

	// Collision overlay.
	size, err := fr.read8()
	if err != nil {
		return err
	}
	p.MetatileSize = int(size)
	if p.CollisionPath, err = fr.readPath(); err != nil {
		return err
	}
	if p.CollisionBitmaps, err = LoadCollisionImage(p.CollisionPath, p.CollisionScale()); err != nil {
		return err
	}

	// CHR sources.
	numChr, err := fr.readCount()
	if err != nil {
		return err
	}
	p.ChrFiles = nil
	for i := 0; i < numChr; i++ {
		f := &ChrFile{}
		if f.ID, err = fr.read16(); err != nil {
			return err
		}
		if f.Name, err = fr.readString(); err != nil {
			return err
		}
		if f.Path, err = fr.readPath(); err != nil {
			return err
		}
		if err = f.Load(); err != nil {
			return err
		}
		p.ChrFiles = append(p.ChrFiles, f)
	}

	// Palettes.
	p.Palette = NewColorLayer()
	if p.Palette.Num, err = fr.readCount(); err != nil {
		return err
	}
	for i := range p.Palette.Tiles().Cells() {
		b, err := fr.read8()
		if err != nil {
			return err
		}
		p.Palette.Tiles().Cells()[i] = uint32(b)
	}

	// Object classes.
	numClasses, err := fr.readCount()
	if err != nil {
		return err
	}
	p.ObjectClasses = nil
	for i := 0; i < numClasses; i++ {
		oc := &ObjectClass{}
		if oc.Name, err = fr.readString(); err != nil {
			return err
		}
		if oc.Macro, err = fr.readString(); err != nil {
			return err
		}
		for _, v := range []*uint8{&oc.Color.R, &oc.Color.G, &oc.Color.B} {
			if *v, err = fr.read8(); err != nil {
				return err
			}
		}
		numFields, err := fr.read8()
		if err != nil {
			return err
		}
		for j := 0; j < int(numFields); j++ {
			var field ClassField
			if field.Name, err = fr.readString(); err != nil {
				return err
			}
			if field.Type, err = fr.readString(); err != nil {
				return err
			}
			oc.Fields = append(oc.Fields, field)
		}
		p.ObjectClasses = append(p.ObjectClasses, oc)
	}

	// Levels.
	numLevels, err := fr.read16()
	if err != nil {
		return err
	}
	p.Levels = nil
	for i := 0; i < int(numLevels); i++ {
		level, err := p.readLevel(fr)
		if err != nil {
			return err
		}
		p.Levels = append(p.Levels, level)
	}

	p.Modified = false
	p.ModifiedSinceSave = false
	return nil
}

func (p *Project) readLevel(fr *fileReader) (*Level, error) {
	level := NewLevel()

	var err error
	if level.Name, err = fr.readString(); err != nil {
		return nil, err
	}
	if level.MacroName, err = fr.readString(); err != nil {
		return nil, err
	}
	if level.ChrName, err = fr.readString(); err != nil {
		return nil, err
	}
	if f := p.ChrFile(level.ChrName); f != nil {
		level.Chr.ChrID = f.ID
	}
	if level.Palette, err = fr.read8(); err != nil {
		return nil, err
	}

	w, err := fr.read16()
	if err != nil {
		return nil, err
	}
	h, err := fr.read16()
	if err != nil {
		return nil, err
	}
	d := geom.Dimen{W: int(w), H: int(h)}
	level.Resize(d, p.CollisionDiv(d))

	for i := range level.Chr.Tiles().Cells() {
		if level.Chr.Tiles().Cells()[i], err = fr.read32(); err != nil {
			return nil, err
		}
	}
	for i := range level.Collision.Tiles().Cells() {
		b, err := fr.read8()
		if err != nil {
			return nil, err
		}
		level.Collision.Tiles().Cells()[i] = uint32(b)
	}

	numObjects, err := fr.read16()
	if err != nil {
		return nil, err
	}
	for j := 0; j < int(numObjects); j++ {
		var o Object
		if o.Name, err = fr.readString(); err != nil {
			return nil, err
		}
		if o.Class, err = fr.readString(); err != nil {
			return nil, err
		}
		x, err := fr.read16()
		if err != nil {
			return nil, err
		}
		y, err := fr.read16()
		if err != nil {
			return nil, err
		}
		o.Position = geom.Coord{X: int(int16(x)), Y: int(int16(y))}

		// Fields follow only for classes known at save time; an unknown
		// class simply has none to read.
		if oc := p.ObjectClass(o.Class); oc != nil {
			o.Fields = make(map[string]string, len(oc.Fields))
			for _, field := range oc.Fields {
				if o.Fields[field.Name], err = fr.readString(); err != nil {
					return nil, err
				}
			}
		}
		level.Objects = append(level.Objects, o)
	}

	return level, nil
}

// WriteFile saves the project to path and records it as the project path.
func (p *Project) WriteFile(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := p.Write(f, filepath.Dir(path)); err != nil {
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	p.Path = path
	p.ModifiedSinceSave = false
	return nil
}

// ReadFile loads the project from path.
func (p *Project) ReadFile(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := p.Read(f, filepath.Dir(path)); err != nil {
		return err
	}
	p.Path = path
	return nil
}
