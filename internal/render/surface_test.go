package render

import (
	"fmt"
	"testing"
)

type opKind int

const (
	opFill opKind = iota
	opVLine
)

type op struct {
	kind       opKind
	color      uint8
	group      int
	x, y, w, h int
}

// recorder is a Surface that remembers every call and fails the test on any
// write outside the screen. Each SetColor starts a new group.
type recorder struct {
	t      *testing.T
	cfg    Config
	color  uint8
	group  int
	ops    []op
	pixels []int
}

func newRecorder(t *testing.T, cfg Config) *recorder {
	return &recorder{t: t, cfg: cfg, group: -1}
}

// withPixels makes the recorder count writes per pixel.
func (r *recorder) withPixels() *recorder {
	r.pixels = make([]int, r.cfg.Width*r.cfg.Height)
	return r
}

func (r *recorder) SetColor(c uint8) {
	r.color = c
	r.group++
}

func (r *recorder) FillRect(x, y, w, h int) {
	r.t.Helper()
	r.check(fmt.Sprintf("FillRect(%d, %d, %d, %d)", x, y, w, h), x, y, w, h)
	r.ops = append(r.ops, op{kind: opFill, color: r.color, group: r.group, x: x, y: y, w: w, h: h})
}

func (r *recorder) VertLine(x, y, length int) {
	r.t.Helper()
	r.check(fmt.Sprintf("VertLine(%d, %d, %d)", x, y, length), x, y, 1, length)
	r.ops = append(r.ops, op{kind: opVLine, color: r.color, group: r.group, x: x, y: y, w: 1, h: length})
}

func (r *recorder) check(desc string, x, y, w, h int) {
	r.t.Helper()
	if w < 0 || h < 0 || x < 0 || y < 0 || x+w > r.cfg.Width || y+h > r.cfg.Height {
		r.t.Fatalf("%s writes outside %dx%d", desc, r.cfg.Width, r.cfg.Height)
	}
	if r.pixels == nil {
		return
	}
	for yy := y; yy < y+h; yy++ {
		for xx := x; xx < x+w; xx++ {
			r.pixels[yy*r.cfg.Width+xx]++
		}
	}
}

// columns returns the lowest and highest column touched by ops of group g,
// or by all ops when g is negative.
func (r *recorder) columns(g int) (lo, hi int, ok bool) {
	lo, hi = r.cfg.Width, -1
	for _, o := range r.ops {
		if g >= 0 && o.group != g {
			continue
		}
		if o.h == 0 {
			continue
		}
		lo = min(lo, o.x)
		hi = max(hi, o.x+o.w-1)
	}
	return lo, hi, hi >= lo
}

func (r *recorder) pixelsIn(x0, x1 int) int {
	n := 0
	for y := 0; y < r.cfg.Height; y++ {
		for x := x0; x <= x1; x++ {
			n += r.pixels[y*r.cfg.Width+x]
		}
	}
	return n
}
