package geom

import "math"

// Degrees is the size of the trig table; rotations are whole degrees.
const Degrees = 360

// Trig caches cosine and sine for every whole degree. It is built once by
// NewTrig and read-only afterwards.
type Trig struct {
	cos [Degrees]float64
	sin [Degrees]float64
}

// NewTrig fills the table.
func NewTrig() *Trig {
	t := &Trig{}
	for a := 0; a < Degrees; a++ {
		rad := float64(a) / 180.0 * math.Pi
		t.cos[a] = math.Cos(rad)
		t.sin[a] = math.Sin(rad)
	}
	return t
}

// Cos returns the cached cosine of deg, which may be any integer.
func (t *Trig) Cos(deg int) float64 { return t.cos[WrapDegrees(deg)] }

// Sin returns the cached sine of deg, which may be any integer.
func (t *Trig) Sin(deg int) float64 { return t.sin[WrapDegrees(deg)] }

// Direction returns the facing vector for a rotation. Rotation 0 faces +Y and
// rotation grows clockwise when X points right and Y points up.
func (t *Trig) Direction(deg int) Vec2f {
	d := WrapDegrees(deg)
	return Vec2f{X: t.sin[d], Y: t.cos[d]}
}

// WrapDegrees maps deg onto [0, 360).
func WrapDegrees(deg int) int {
	deg %= Degrees
	if deg < 0 {
		deg += Degrees
	}
	return deg
}
