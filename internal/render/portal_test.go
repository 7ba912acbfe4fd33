package render

import (
	"math"
	"testing"

	"portalview/internal/geom"
	"portalview/internal/level"
)

// pentagon returns a regular pentagon around the origin whose wall k faces
// bearing 72k degrees.
func pentagon(t *testing.T, radius float64) *level.Map {
	t.Helper()
	corners := make([]geom.Vec2i, 5)
	for k := range corners {
		rad := float64(-36+72*k) * math.Pi / 180
		corners[k] = geom.V(int(math.Round(radius*math.Sin(rad))), int(math.Round(radius*math.Cos(rad))))
	}
	m := &level.Map{Name: "pentagon"}
	if _, err := m.NewSector(corners...); err != nil {
		t.Fatal(err)
	}
	if err := level.Validate(m); err != nil {
		t.Fatal(err)
	}
	return m
}

func TestRenderPentagonFacingEachWall(t *testing.T) {
	cfg := DefaultConfig()
	trig := geom.NewTrig()
	m := pentagon(t, 124)
	for k := 0; k < 5; k++ {
		r := NewRenderer(cfg)
		r.Record = true
		rec := newRecorder(t, cfg)
		cam := NewCamera(trig, level.Spawn{Sector: 0, Rotation: 72 * k})
		stats := r.Render(rec, m, cam)

		drawn := map[int]int{}
		for _, d := range r.Drawn() {
			drawn[d.Wall]++
		}
		if drawn[k] != 1 {
			t.Fatalf("facing wall %d: drawn %d times", k, drawn[k])
		}
		for w, n := range drawn {
			if n != 1 {
				t.Fatalf("facing wall %d: wall %d drawn %d times", k, w, n)
			}
		}
		if stats.Walls != len(rec.ops) {
			t.Fatalf("facing wall %d: %d walls but %d draw ops", k, stats.Walls, len(rec.ops))
		}
		covered := make([]bool, cfg.Width)
		for _, o := range rec.ops {
			if o.kind != opFill || o.y != 0 || o.h != cfg.Height {
				t.Fatalf("facing wall %d: %+v is not a full-height rectangle", k, o)
			}
			for x := o.x; x < o.x+o.w; x++ {
				covered[x] = true
			}
		}
		for x, ok := range covered {
			if !ok {
				t.Fatalf("facing wall %d: column %d left empty", k, x)
			}
		}
	}
}

func TestRenderPortalConfinesNextSector(t *testing.T) {
	cfg := DefaultConfig()
	trig := geom.NewTrig()
	m := level.Default()
	r := NewRenderer(cfg)
	r.Record = true
	rec := newRecorder(t, cfg)
	cam := NewCamera(trig, level.Spawn{Sector: 0, Position: geom.V(200, 0)})
	stats := r.Render(rec, m, cam)

	if stats.Portals != 1 || stats.MaxDepth != 1 {
		t.Fatalf("stats = %+v", stats)
	}

	lo, hi := -1, -1
	group := 0
	annexWalls := 0
	for _, d := range r.Drawn() {
		if d.Portal {
			if d.Sector != 0 || d.Wall != 1 {
				t.Fatalf("unexpected portal %+v", d)
			}
			lo, hi = d.Call.A.X, d.Call.B.X
			continue
		}
		if d.Depth == 1 {
			annexWalls++
			if d.MinX != lo || d.MaxX != hi {
				t.Fatalf("annex wall %d clipped to %d..%d, portal spans %d..%d", d.Wall, d.MinX, d.MaxX, lo, hi)
			}
			glo, ghi, ok := rec.columns(group)
			if !ok {
				t.Fatalf("annex wall %d produced no pixels", d.Wall)
			}
			if glo < lo || ghi > hi {
				t.Fatalf("annex wall %d drew columns %d..%d outside portal %d..%d", d.Wall, glo, ghi, lo, hi)
			}
		}
		group++
	}
	if lo != 60 || hi != 260 {
		t.Fatalf("portal spans %d..%d, want 60..260", lo, hi)
	}
	if annexWalls != 3 {
		t.Fatalf("annex walls drawn = %d, want 3", annexWalls)
	}
}

func TestRenderWallLeftOfWindowDrawsNothing(t *testing.T) {
	cfg := DefaultConfig()
	trig := geom.NewTrig()
	m := level.Default()
	r := NewRenderer(cfg)
	r.Record = true
	rec := newRecorder(t, cfg).withPixels()
	dir := trig.Direction(0)
	r.DrawSector(rec, m, 0, geom.V(0, 0), dir, 250, cfg.Width-1)

	for _, d := range r.Drawn() {
		if d.Sector == 0 && d.Wall == 0 {
			t.Fatalf("wall left of the window was accepted: %+v", d)
		}
	}
	if n := rec.pixelsIn(0, 249); n != 0 {
		t.Fatalf("%d pixels written left of column 250", n)
	}
	if n := rec.pixelsIn(250, cfg.Width-1); n == 0 {
		t.Fatal("nothing drawn inside the window")
	}
}

func TestRenderStopsAtMaxDepth(t *testing.T) {
	cfg := DefaultConfig()
	trig := geom.NewTrig()
	m := &level.Map{}
	id, err := m.NewSector(geom.V(0, 0), geom.V(0, 100), geom.V(100, 100), geom.V(100, 0))
	if err != nil {
		t.Fatal(err)
	}
	// A wall that opens onto itself never narrows the window.
	if err := m.LinkPortal(id, 1, id, 1); err != nil {
		t.Fatal(err)
	}
	cam := NewCamera(trig, level.Spawn{Sector: id, Position: geom.V(50, 50)})

	r := NewRenderer(cfg)
	stats := r.Render(newRecorder(t, cfg), m, cam)
	if stats.MaxDepth != cfg.MaxDepth || stats.Portals != cfg.MaxDepth || stats.DepthLimited != 1 {
		t.Fatalf("stats = %+v", stats)
	}

	r.SetMaxDepth(0)
	stats = r.Render(newRecorder(t, cfg), m, cam)
	if stats.Portals != 0 || stats.DepthLimited != 1 || stats.Sectors != 1 {
		t.Fatalf("portals disabled: stats = %+v", stats)
	}
}

func TestRenderChildRangesNest(t *testing.T) {
	cfg := DefaultConfig()
	trig := geom.NewTrig()
	m := level.Demo()
	positions := []struct {
		sector level.SectorID
		pos    geom.Vec2i
	}{
		{0, geom.V(0, 0)},
		{0, geom.V(-250, -250)},
		{0, geom.V(300, 300)},
		{1, geom.V(200, 500)},
		{2, geom.V(100, 900)},
		{3, geom.V(0, -600)},
	}
	r := NewRenderer(cfg)
	r.Record = true
	for _, p := range positions {
		for deg := 0; deg < 360; deg += 10 {
			cam := NewCamera(trig, level.Spawn{Sector: p.sector, Position: p.pos, Rotation: deg})
			r.Render(newRecorder(t, cfg), m, cam)

			var portal [64][2]int
			for _, d := range r.Drawn() {
				if d.MinX < 0 || d.MaxX > cfg.Width-1 || d.MinX > d.MaxX {
					t.Fatalf("%v %d°: bad window %+v", p.pos, deg, d)
				}
				if d.Call.A.X < d.MinX || d.Call.B.X > d.MaxX || d.Call.A.X > d.Call.B.X {
					t.Fatalf("%v %d°: wall outside its window %+v", p.pos, deg, d)
				}
				if d.Depth > 0 {
					parent := portal[d.Depth-1]
					if d.MinX < parent[0] || d.MaxX > parent[1] {
						t.Fatalf("%v %d°: window %d..%d escapes portal %v", p.pos, deg, d.MinX, d.MaxX, parent)
					}
				}
				if d.Portal {
					portal[d.Depth] = [2]int{d.Call.A.X, d.Call.B.X}
				}
			}
		}
	}
}
