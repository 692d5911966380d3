package xfab

import (
	"fmt"

	"github.com/bodgit/xfab/geom"
)

// TileCopy is a clipboard-like copy buffer: either a dense tile grid
// (with NoTile marking absent cells) or a list of objects, tagged with the
// format of the layer it came from.
type TileCopy struct {
	Format  int
	Tiles   *geom.Grid[uint32]
	Objects []Object
}

// ObjectCopy wraps a list of objects as a copy buffer.
func ObjectCopy(objects []Object) *TileCopy {
	cloned := make([]Object, len(objects))
	for i, o := range objects {
		cloned[i] = o.Clone()
	}
	return &TileCopy{Format: FormatObjects, Objects: cloned}
}

// ToVec flattens the buffer to a sequence of integers for interchange
// with a host clipboard: tile grids as [format, width, height, cells...],
// object lists as [format, count, objects...].
func (tc *TileCopy) ToVec() []uint32 {
	if tc.Format == FormatObjects {
		vec := []uint32{uint32(tc.Format), uint32(len(tc.Objects))}
		for _, o := range tc.Objects {
			vec = o.appendVec(vec)
		}
		return vec
	}

	d := tc.Tiles.Dimen()
	vec := make([]uint32, 0, 3+d.Area())
	vec = append(vec, uint32(tc.Format), uint32(d.W), uint32(d.H))
	return append(vec, tc.Tiles.Cells()...)
}

// TileCopyFromVec is the inverse of ToVec. Every element access is bounds
// checked; truncated sequences fail rather than read garbage.
func TileCopyFromVec(vec []uint32) (*TileCopy, error) {
	r := &vecReader{vec: vec}

	format, err := r.next()
	if err != nil {
		return nil, err
	}
	tc := &TileCopy{Format: int(format)}

	if tc.Format == FormatObjects {
		count, err := r.next()
		if err != nil {
			return nil, err
		}
		for i := uint32(0); i < count; i++ {
			o, err := objectFromVec(r)
			if err != nil {
				return nil, err
			}
			tc.Objects = append(tc.Objects, o)
		}
		return tc, nil
	}

	w, err := r.next()
	if err != nil {
		return nil, err
	}
	h, err := r.next()
	if err != nil {
		return nil, err
	}
	if int(w)*int(h) > len(vec) {
		return nil, fmt.Errorf("xfab: copy buffer dimensions %dx%d exceed data", w, h)
	}
	tc.Tiles = geom.NewGrid[uint32](geom.Dimen{W: int(w), H: int(h)})
	for i := range tc.Tiles.Cells() {
		v, err := r.next()
		if err != nil {
			return nil, err
		}
		tc.Tiles.Cells()[i] = v
	}
	return tc, nil
}
