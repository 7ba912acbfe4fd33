package framebuffer

// DrawLine plots a line segment using Bresenham's integer algorithm. Points
// outside the buffer are skipped.
func (f *Framebuffer) DrawLine(x0, y0, x1, y1 int, c uint8) {
	dx := abs(x1 - x0)
	sx := -1
	if x0 < x1 {
		sx = 1
	}
	dy := -abs(y1 - y0)
	sy := -1
	if y0 < y1 {
		sy = 1
	}
	err := dx + dy
	for {
		f.Set(x0, y0, c)
		if x0 == x1 && y0 == y1 {
			break
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

// StrokeRect outlines the w by h rectangle at x, y.
func (f *Framebuffer) StrokeRect(x, y, w, h int, c uint8) {
	if w <= 0 || h <= 0 {
		return
	}
	f.DrawLine(x, y, x+w-1, y, c)
	f.DrawLine(x, y+h-1, x+w-1, y+h-1, c)
	f.DrawLine(x, y, x, y+h-1, c)
	f.DrawLine(x+w-1, y, x+w-1, y+h-1, c)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
