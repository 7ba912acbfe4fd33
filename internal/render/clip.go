package render

import "portalview/internal/geom"

// WallDrawCall is a clipped, projected wall. X is a screen column; Y is the
// half-height of the wall above and below the horizon at that column.
type WallDrawCall struct {
	A, B geom.Vec2i
}

// noBound marks an endpoint that was not moved onto a column bound.
const noBound = -1 << 31

// ClipWall clips the camera-space wall a-b to the frustum spanned by screen
// columns [minX, maxX] and projects what is left. The near plane and both
// column bounds are half-planes through the eye, so one pass before the
// perspective divide handles all three. It reports false when nothing of the
// wall is visible or the wall faces away from the camera.
func ClipWall(cfg Config, a, b geom.Vec2i, minX, maxX int) (WallDrawCall, bool) {
	if a.Y <= 0 && b.Y <= 0 {
		return WallDrawCall{}, false
	}

	half := cfg.halfWidth()
	minP, maxP := minX-half, maxX-half
	scale := cfg.PerspectiveScale

	// scale*x against bound*y is the sign test of x/y against bound/scale
	// without dividing.
	aOverMax := scale*a.X > maxP*a.Y
	aUnderMin := scale*a.X < minP*a.Y
	bOverMax := scale*b.X > maxP*b.Y
	bUnderMin := scale*b.X < minP*b.Y

	if (aOverMax && bOverMax) || (aUnderMin && bUnderMin) {
		return WallDrawCall{}, false
	}

	aOut := aOverMax || aUnderMin
	bOut := bOverMax || bUnderMin
	minHit, hasMin := intersectBound(a, b, scale, minP)
	maxHit, hasMax := intersectBound(a, b, scale, maxP)
	aBound, bBound := noBound, noBound

	switch {
	case hasMin && hasMax:
		// Weighting by |y| keeps the ordering right when one endpoint sits
		// at or behind the eye.
		if a.X*geom.Abs(b.Y) > b.X*geom.Abs(a.Y) {
			a, b = maxHit, minHit
			aBound, bBound = maxX, minX
		} else {
			a, b = minHit, maxHit
			aBound, bBound = minX, maxX
		}
	case hasMin:
		if aOut {
			a, aBound = minHit, minX
		} else if bOut {
			b, bBound = minHit, minX
		}
	case hasMax:
		if aOut {
			a, aBound = maxHit, maxX
		} else if bOut {
			b, bBound = maxHit, maxX
		}
	case aOut || bOut:
		return WallDrawCall{}, false
	}

	// Seen from the front, A projects left of B. Equal means zero width.
	if a.X*b.Y >= b.X*a.Y {
		return WallDrawCall{}, false
	}

	call := WallDrawCall{A: Project(cfg, a), B: Project(cfg, b)}
	if aBound != noBound {
		call.A.X = aBound
	}
	if bBound != noBound {
		call.B.X = bBound
	}
	call.A.X = geom.Clamp(call.A.X, minX, maxX)
	call.B.X = geom.Clamp(call.B.X, minX, maxX)
	return call, true
}

// intersectBound intersects segment a-b with the half-line from the eye on
// which scale*x == bound*y. The hit must lie within the segment and at
// non-negative depth.
func intersectBound(a, b geom.Vec2i, scale, bound int) (geom.Vec2i, bool) {
	d := b.Sub(a)
	num := bound*a.Y - scale*a.X
	den := scale*d.X - bound*d.Y
	if den == 0 {
		return geom.Vec2i{}, false
	}
	if den < 0 {
		num, den = -num, -den
	}
	if num < 0 || num > den {
		return geom.Vec2i{}, false
	}
	p := geom.V(a.X+d.X*num/den, a.Y+d.Y*num/den)
	if p.Y < 0 {
		return geom.Vec2i{}, false
	}
	return p, true
}

// Project maps a camera-space point to a screen column and wall half-height.
// Depths below 1 project as 1.
func Project(cfg Config, p geom.Vec2i) geom.Vec2i {
	depth := p.Y
	if depth < 1 {
		depth = 1
	}
	return geom.Vec2i{
		X: cfg.PerspectiveScale*p.X/depth + cfg.halfWidth(),
		Y: cfg.WallHeight * cfg.PerspectiveScale / depth,
	}
}

// ColumnRay returns the camera-space direction (lateral, depth) seen through
// screen column x, the inverse of Project's horizontal mapping.
func ColumnRay(cfg Config, x int) (lateral, depth int) {
	return x - cfg.halfWidth(), cfg.PerspectiveScale
}
