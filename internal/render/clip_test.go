package render

import (
	"math"
	"testing"

	"portalview/internal/geom"
)

func TestRelative(t *testing.T) {
	trig := geom.NewTrig()
	cases := []struct {
		origin geom.Vec2i
		deg    int
		p      geom.Vec2i
		want   geom.Vec2i
	}{
		{geom.V(0, 0), 0, geom.V(100, 200), geom.V(100, 200)},
		{geom.V(0, 0), 90, geom.V(100, 200), geom.V(-200, 100)},
		{geom.V(0, 0), 180, geom.V(100, 200), geom.V(-100, -200)},
		{geom.V(50, 50), 0, geom.V(100, 200), geom.V(50, 150)},
		{geom.V(10, 10), 270, geom.V(10, 10), geom.V(0, 0)},
	}
	for _, c := range cases {
		got := Relative(c.origin, trig.Direction(c.deg), c.p)
		if geom.Abs(got.X-c.want.X) > 1 || geom.Abs(got.Y-c.want.Y) > 1 {
			t.Errorf("Relative(%v, %d°, %v) = %v, want %v", c.origin, c.deg, c.p, got, c.want)
		}
	}
}

func TestClipRejectsWallsBehindCamera(t *testing.T) {
	cfg := DefaultConfig()
	for ax := -500; ax <= 500; ax += 125 {
		for ay := -300; ay <= 0; ay += 100 {
			for bx := -500; bx <= 500; bx += 125 {
				for by := -300; by <= 0; by += 150 {
					a, b := geom.V(ax, ay), geom.V(bx, by)
					if _, ok := ClipWall(cfg, a, b, 0, cfg.Width-1); ok {
						t.Fatalf("wall %v-%v behind the camera was accepted", a, b)
					}
				}
			}
		}
	}
}

func TestClipRejectsWallsOutsideRange(t *testing.T) {
	cfg := DefaultConfig()
	cases := []struct {
		name       string
		a, b       geom.Vec2i
		minX, maxX int
	}{
		{"left of min", geom.V(-500, 300), geom.V(-300, 300), 100, 319},
		{"right of max", geom.V(300, 300), geom.V(500, 200), 0, 200},
		{"left of narrow window", geom.V(-100, 400), geom.V(0, 400), 250, 319},
		{"back face", geom.V(200, 400), geom.V(-200, 400), 0, 319},
		{"edge on", geom.V(0, 400), geom.V(0, 600), 0, 319},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if call, ok := ClipWall(cfg, c.a, c.b, c.minX, c.maxX); ok {
				t.Fatalf("accepted as %+v", call)
			}
		})
	}
}

func TestClipStraddlingWallLandsOnBound(t *testing.T) {
	cfg := DefaultConfig()
	cases := []struct {
		name       string
		a, b       geom.Vec2i
		minX, maxX int
		wantA      int
		wantB      int
	}{
		{"both bounds", geom.V(-1000, 500), geom.V(1000, 500), 0, 319, 0, 319},
		{"both bounds narrow", geom.V(-1000, 700), geom.V(900, 300), 90, 170, 90, 170},
		{"min only", geom.V(-500, 500), geom.V(100, 500), 100, 319, 100, 200},
		{"max only", geom.V(-100, 500), geom.V(700, 450), 0, 250, 120, 250},
		{"behind and across", geom.V(-300, -100), geom.V(300, 400), 0, 319, 0, 310},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			call, ok := ClipWall(cfg, c.a, c.b, c.minX, c.maxX)
			if !ok {
				t.Fatal("wall rejected")
			}
			if call.A.X != c.wantA || call.B.X != c.wantB {
				t.Fatalf("columns = %d..%d, want %d..%d", call.A.X, call.B.X, c.wantA, c.wantB)
			}
			if call.A.Y <= 0 || call.B.Y <= 0 {
				t.Fatalf("half-heights %d, %d", call.A.Y, call.B.Y)
			}
		})
	}
}

func TestClipKeepsVisibleWallUnchanged(t *testing.T) {
	cfg := DefaultConfig()
	a, b := geom.V(-200, 400), geom.V(200, 400)
	call, ok := ClipWall(cfg, a, b, 0, cfg.Width-1)
	if !ok {
		t.Fatal("visible wall rejected")
	}
	want := WallDrawCall{A: Project(cfg, a), B: Project(cfg, b)}
	if call != want {
		t.Fatalf("call = %+v, want %+v", call, want)
	}
	if want.A != geom.V(60, 50) || want.B != geom.V(260, 50) {
		t.Fatalf("projection = %+v", want)
	}
}

func TestClipEndpointOnBoundIsKept(t *testing.T) {
	cfg := DefaultConfig()
	// a lies exactly on column 60; the bound touches the segment at t = 0.
	call, ok := ClipWall(cfg, geom.V(-200, 400), geom.V(200, 600), 60, 260)
	if !ok {
		t.Fatal("wall rejected")
	}
	if call.A.X != 60 {
		t.Fatalf("A.X = %d, want 60", call.A.X)
	}
	if call.B.X <= call.A.X {
		t.Fatalf("B.X = %d collapsed onto A", call.B.X)
	}
}

func TestProjectColumnRoundTrip(t *testing.T) {
	cfg := DefaultConfig()
	for y := 40; y <= 4000; y += 97 {
		for x := -y; x <= y; x += y/7 + 1 {
			p := Project(cfg, geom.V(x, y))
			lateral, depth := ColumnRay(cfg, p.X)
			got := float64(lateral) / float64(depth)
			want := float64(x) / float64(y)
			if math.Abs(got-want) > 1.0/float64(cfg.PerspectiveScale) {
				t.Fatalf("(%d, %d): ray ratio %g, want %g", x, y, got, want)
			}
		}
	}
}

func TestProjectClampsDepth(t *testing.T) {
	cfg := DefaultConfig()
	if got := Project(cfg, geom.V(0, 0)); got != geom.V(160, cfg.WallHeight*cfg.PerspectiveScale) {
		t.Fatalf("Project at the eye = %v", got)
	}
}
