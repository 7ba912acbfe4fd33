// Package level is the static sector/portal map model: walls, convex sectors
// and the fixed sector table portals index into.
package level

import (
	"portalview/internal/geom"
	"portalview/internal/palette"
)

// SectorID indexes a sector in a Map.
type SectorID int

// NoSector is the target of an opaque wall.
const NoSector SectorID = -1

// Wall is one oriented edge of a sector. Seen from inside the sector, A is on
// the viewer's left and B on the right.
type Wall struct {
	A, B     geom.Vec2i
	LengthSq int
	Color    uint8

	// Portal walls are never drawn; the renderer recurses into Target
	// instead. TargetWall is the index of the matching edge in Target.
	Portal     bool
	Target     SectorID
	TargetWall int
}

func newWall(a, b geom.Vec2i) Wall {
	d := b.Sub(a)
	lengthSq := d.LengthSq()
	return Wall{
		A:          a,
		B:          b,
		LengthSq:   lengthSq,
		Color:      WallColor(d, lengthSq),
		Target:     NoSector,
		TargetWall: -1,
	}
}

// WallColor shades an edge by how closely it runs along the X axis, so that
// walls meeting at a corner get distinguishable colours. d must not be zero.
func WallColor(d geom.Vec2i, lengthSq int) uint8 {
	t := d.X * geom.Abs(d.X) * palette.WallShades / lengthSq
	return palette.WallBase + uint8(t+palette.WallShades)
}

// Edge returns B - A.
func (w *Wall) Edge() geom.Vec2i { return w.B.Sub(w.A) }
