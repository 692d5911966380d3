/*
Package geom provides the integer 2D geometry used throughout xfab:
coordinates, dimensions, rectangles and a dense row-major grid.

A zero Rect is the "no region" sentinel; every operation that can shrink a
region to nothing returns the zero Rect rather than a degenerate one.
*/
package geom

// Coord is a signed 2D coordinate.
type Coord struct {
	X, Y int
}

// Add returns c translated by o.
func (c Coord) Add(o Coord) Coord {
	return Coord{c.X + o.X, c.Y + o.Y}
}

// Sub returns c translated by -o.
func (c Coord) Sub(o Coord) Coord {
	return Coord{c.X - o.X, c.Y - o.Y}
}

// Dimen is a width and height pair.
type Dimen struct {
	W, H int
}

// Empty reports whether the dimension encloses no cells.
func (d Dimen) Empty() bool {
	return d.W <= 0 || d.H <= 0
}

// Area returns the number of cells enclosed by d.
func (d Dimen) Area() int {
	if d.Empty() {
		return 0
	}
	return d.W * d.H
}

// InBounds reports whether c lies within [0,d.W) x [0,d.H).
func InBounds(c Coord, d Dimen) bool {
	return c.X >= 0 && c.Y >= 0 && c.X < d.W && c.Y < d.H
}

// Rect is an axis-aligned rectangle with origin C and size D.
type Rect struct {
	C Coord
	D Dimen
}

// Empty reports whether the rectangle encloses no cells.
func (r Rect) Empty() bool {
	return r.D.Empty()
}

// End returns the exclusive far corner of r.
func (r Rect) End() Coord {
	return Coord{r.C.X + r.D.W, r.C.Y + r.D.H}
}

// Contains reports whether c lies within r.
func (r Rect) Contains(c Coord) bool {
	return c.X >= r.C.X && c.Y >= r.C.Y && c.X < r.C.X+r.D.W && c.Y < r.C.Y+r.D.H
}

// ToRect returns the rectangle covering all of d, anchored at the origin.
func ToRect(d Dimen) Rect {
	return Rect{D: d}
}

// FromCoords returns the smallest rectangle containing both a and b as
// cells. The corners may be given in any order.
func FromCoords(a, b Coord) Rect {
	if b.X < a.X {
		a.X, b.X = b.X, a.X
	}
	if b.Y < a.Y {
		a.Y, b.Y = b.Y, a.Y
	}
	return Rect{a, Dimen{b.X - a.X + 1, b.Y - a.Y + 1}}
}

// Crop clips r to [0,d.W) x [0,d.H), returning the zero Rect if nothing
// remains.
func Crop(r Rect, d Dimen) Rect {
	if r.Empty() {
		return Rect{}
	}
	min := r.C
	max := r.End()
	if min.X < 0 {
		min.X = 0
	}
	if min.Y < 0 {
		min.Y = 0
	}
	if max.X > d.W {
		max.X = d.W
	}
	if max.Y > d.H {
		max.Y = d.H
	}
	if min.X >= max.X || min.Y >= max.Y {
		return Rect{}
	}
	return Rect{min, Dimen{max.X - min.X, max.Y - min.Y}}
}

// GrowToCoord returns the smallest rectangle containing both r and c.
func GrowToCoord(r Rect, c Coord) Rect {
	if r.Empty() {
		return Rect{c, Dimen{1, 1}}
	}
	return GrowToRect(r, Rect{c, Dimen{1, 1}})
}

// GrowToRect returns the smallest rectangle containing both r and o.
func GrowToRect(r, o Rect) Rect {
	if r.Empty() {
		return o
	}
	if o.Empty() {
		return r
	}
	min := r.C
	max := r.End()
	if o.C.X < min.X {
		min.X = o.C.X
	}
	if o.C.Y < min.Y {
		min.Y = o.C.Y
	}
	if e := o.End(); e.X > max.X {
		max.X = e.X
	}
	if e := o.End(); e.Y > max.Y {
		max.Y = e.Y
	}
	return Rect{min, Dimen{max.X - min.X, max.Y - min.Y}}
}

// ForEach calls fn for every cell of r in row-major order.
func (r Rect) ForEach(fn func(Coord)) {
	for y := r.C.Y; y < r.C.Y+r.D.H; y++ {
		for x := r.C.X; x < r.C.X+r.D.W; x++ {
			fn(Coord{x, y})
		}
	}
}

// ForEachCoord calls fn for every cell of d in row-major order.
func ForEachCoord(d Dimen, fn func(Coord)) {
	ToRect(d).ForEach(fn)
}
