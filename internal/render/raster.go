package render

import "portalview/internal/geom"

// DrawWall fills the trapezoid of call, mirrored about the horizon, using the
// surface's current colour. Nothing is written outside the screen.
func DrawWall(s Surface, cfg Config, call WallDrawCall) {
	halfH := cfg.halfHeight()
	x0, y0 := call.A.X, call.A.Y
	x1, y1 := call.B.X, call.B.Y

	// Taller than the screen at both ends: the whole span is solid.
	if y0 > halfH && y1 > halfH {
		fillColumns(s, cfg, x0, x1)
		return
	}

	// The walk below only ever grows y.
	if y0 > y1 {
		x0, x1 = x1, x0
		y0, y1 = y1, y0
	}

	if x0 == x1 {
		if x0 < 0 || x0 > cfg.Width-1 {
			return
		}
		y := min(y1, halfH)
		s.VertLine(x0, halfH-y, 2*y)
		return
	}

	dx, dy := x1-x0, y1-y0
	dirx := 1
	if dx < 0 {
		dirx = -1
		dx = -dx
	}
	x1 = geom.Clamp(x1, 0, cfg.Width-1)

	p := 2*dy - dx
	x, y := x0, y0
	for ; x*dirx <= x1*dirx; x += dirx {
		for p > 0 && y < halfH {
			y++
			p -= 2 * dx
		}
		p += 2 * dy

		if x < 0 || x > cfg.Width-1 {
			continue
		}

		// From here on every column reaches past the screen edges.
		if y >= halfH {
			fillColumns(s, cfg, x, x1)
			return
		}

		s.VertLine(x, halfH-y, 2*y)
	}
}

// fillColumns fills columns xa..xb (either order) top to bottom.
func fillColumns(s Surface, cfg Config, xa, xb int) {
	if xa > xb {
		xa, xb = xb, xa
	}
	xa = max(xa, 0)
	xb = min(xb, cfg.Width-1)
	if xa > xb {
		return
	}
	s.FillRect(xa, 0, xb-xa+1, cfg.Height)
}
