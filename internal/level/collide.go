package level

import (
	"math"

	"portalview/internal/geom"
)

// Collide resolves pos against the walls of sector. Opaque walls push pos out
// to radius along the direction from the closest point on the wall. Stepping
// over a portal line moves the result into the portal's target sector; the
// remaining walls of the old sector are not considered.
func (m *Map) Collide(pos geom.Vec2i, sector SectorID, radius int) (geom.Vec2i, SectorID) {
	if !m.Valid(sector) {
		return pos, sector
	}
	radiusSq := radius * radius
	for _, w := range m.Sector(sector).Walls() {
		if w.Portal {
			if w.A.Sub(pos).Cross(w.B.Sub(pos)) > 0 {
				return pos, w.Target
			}
			continue
		}
		pos = pushOut(pos, &w, radius, radiusSq)
	}
	return pos, sector
}

func pushOut(p geom.Vec2i, w *Wall, radius, radiusSq int) geom.Vec2i {
	ab := w.Edge()
	ap := p.Sub(w.A)
	tNum, tDen := ab.Dot(ap), w.LengthSq
	if tNum > tDen {
		tNum = tDen
	}
	if tNum < 0 {
		tNum = 0
	}
	q := geom.V(w.A.X+ab.X*tNum/tDen, w.A.Y+ab.Y*tNum/tDen)
	qp := q.Sub(p)
	distSq := qp.LengthSq()
	if distSq >= radiusSq {
		return p
	}
	dist := int(math.Sqrt(float64(distSq)))
	if dist == 0 {
		return p
	}
	overlap := radius - dist
	return geom.V(p.X-qp.X*overlap/dist, p.Y-qp.Y*overlap/dist)
}
