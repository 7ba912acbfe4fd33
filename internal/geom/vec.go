// Package geom holds the integer and floating point vector types shared by the
// map model and the renderer, plus the cached trigonometry table.
package geom

// Vec2i is a world or screen coordinate.
type Vec2i struct {
	X, Y int
}

// Vec2f is a unit direction vector.
type Vec2f struct {
	X, Y float64
}

// V constructs a Vec2i.
func V(x, y int) Vec2i { return Vec2i{X: x, Y: y} }

func (v Vec2i) Add(o Vec2i) Vec2i { return Vec2i{X: v.X + o.X, Y: v.Y + o.Y} }

func (v Vec2i) Sub(o Vec2i) Vec2i { return Vec2i{X: v.X - o.X, Y: v.Y - o.Y} }

// Cross returns the z component of the 2D cross product v × o.
func (v Vec2i) Cross(o Vec2i) int { return v.X*o.Y - v.Y*o.X }

func (v Vec2i) Dot(o Vec2i) int { return v.X*o.X + v.Y*o.Y }

// LengthSq returns the squared length of v.
func (v Vec2i) LengthSq() int { return v.X*v.X + v.Y*v.Y }

// Scale multiplies both components by f and truncates toward zero.
func (v Vec2f) Scale(f float64) Vec2i {
	return Vec2i{X: int(v.X * f), Y: int(v.Y * f)}
}

// Abs returns |v|.
func Abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// Clamp constrains v to lie within the inclusive [lo, hi] range.
func Clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
