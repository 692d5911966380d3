package xfab

import (
	"errors"
	"sort"

	"github.com/bodgit/xfab/geom"
)

var errVecBounds = errors.New("xfab: copy buffer data out of bounds")

// Object is a named entity placed in a level. Its class names an
// ObjectClass by value; fields the class does not define are carried but
// not persisted.
type Object struct {
	Position geom.Coord
	Name     string
	Class    string
	Fields   map[string]string
}

// Equal reports structural equality, which is what undo correctness
// depends on; objects have no identity beyond their list position.
func (o Object) Equal(other Object) bool {
	if o.Position != other.Position || o.Name != other.Name || o.Class != other.Class {
		return false
	}
	if len(o.Fields) != len(other.Fields) {
		return false
	}
	for k, v := range o.Fields {
		if w, ok := other.Fields[k]; !ok || v != w {
			return false
		}
	}
	return true
}

// Clone returns a deep copy of the object.
func (o Object) Clone() Object {
	if o.Fields != nil {
		fields := make(map[string]string, len(o.Fields))
		for k, v := range o.Fields {
			fields[k] = v
		}
		o.Fields = fields
	}
	return o
}

func appendVecString(vec []uint32, s string) []uint32 {
	for _, c := range []byte(s) {
		vec = append(vec, uint32(c))
	}
	return append(vec, 0)
}

// appendVec flattens the object onto a copy buffer sequence: x, y, name,
// class, field count, then each key/value pair, with strings as
// NUL-terminated byte runs.
func (o Object) appendVec(vec []uint32) []uint32 {
	vec = append(vec, uint32(o.Position.X), uint32(o.Position.Y))
	vec = appendVecString(vec, o.Name)
	vec = appendVecString(vec, o.Class)
	vec = append(vec, uint32(len(o.Fields)))
	for _, k := range sortedKeys(o.Fields) {
		vec = appendVecString(vec, k)
		vec = appendVecString(vec, o.Fields[k])
	}
	return vec
}

// sortedKeys keeps the flattened field order deterministic.
func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

type vecReader struct {
	vec []uint32
	pos int
}

func (r *vecReader) next() (uint32, error) {
	if r.pos >= len(r.vec) {
		return 0, errVecBounds
	}
	v := r.vec[r.pos]
	r.pos++
	return v, nil
}

func (r *vecReader) str() (string, error) {
	var b []byte
	for {
		v, err := r.next()
		if err != nil {
			return "", err
		}
		if v == 0 {
			return string(b), nil
		}
		b = append(b, byte(v))
	}
}

// objectFromVec is the inverse of appendVec.
func objectFromVec(r *vecReader) (Object, error) {
	var o Object
	x, err := r.next()
	if err != nil {
		return o, err
	}
	y, err := r.next()
	if err != nil {
		return o, err
	}
	o.Position = geom.Coord{X: int(int32(x)), Y: int(int32(y))}

	if o.Name, err = r.str(); err != nil {
		return o, err
	}
	if o.Class, err = r.str(); err != nil {
		return o, err
	}

	n, err := r.next()
	if err != nil {
		return o, err
	}
	o.Fields = make(map[string]string, n)
	for i := uint32(0); i < n; i++ {
		k, err := r.str()
		if err != nil {
			return o, err
		}
		v, err := r.str()
		if err != nil {
			return o, err
		}
		o.Fields[k] = v
	}
	return o, nil
}
