package render

import (
	"portalview/internal/geom"
	"portalview/internal/level"
)

// Stats counts what the last Render did.
type Stats struct {
	Sectors      int // sector visits, including revisits through other portals
	Walls        int // opaque walls drawn
	Portals      int // portals recursed through
	Culled       int // walls rejected by ClipWall
	MaxDepth     int // deepest portal nesting reached
	DepthLimited int // portals skipped because of Config.MaxDepth
}

// DrawnWall records one accepted wall of a frame.
type DrawnWall struct {
	Sector level.SectorID
	Wall   int
	Portal bool
	Depth  int
	Call   WallDrawCall

	// MinX and MaxX are the column range the wall was clipped against.
	MinX, MaxX int
}

// Renderer walks sectors and draws them onto a Surface. It is not safe for
// concurrent use.
type Renderer struct {
	cfg   Config
	stats Stats

	// Record keeps every accepted wall of the last frame for Drawn.
	Record bool
	drawn  []DrawnWall
}

// NewRenderer returns a Renderer for cfg. A MaxDepth below 1 disables portals.
func NewRenderer(cfg Config) *Renderer {
	return &Renderer{cfg: cfg}
}

// Config returns the renderer's configuration.
func (r *Renderer) Config() Config { return r.cfg }

// SetMaxDepth changes the portal recursion limit.
func (r *Renderer) SetMaxDepth(depth int) { r.cfg.MaxDepth = depth }

// Drawn returns the walls accepted during the last frame when Record is set.
// The slice is reused by the next frame.
func (r *Renderer) Drawn() []DrawnWall { return r.drawn }

// Render draws the view from cam across the full screen width, starting in
// the camera's sector.
func (r *Renderer) Render(s Surface, m *level.Map, cam Camera) Stats {
	return r.DrawSector(s, m, cam.Sector, cam.Position, cam.Direction, 0, r.cfg.Width-1)
}

// DrawSector draws sector id as seen from origin facing dir, restricted to
// screen columns [minX, maxX], and recurses through its visible portals.
func (r *Renderer) DrawSector(s Surface, m *level.Map, id level.SectorID, origin geom.Vec2i, dir geom.Vec2f, minX, maxX int) Stats {
	r.stats = Stats{}
	r.drawn = r.drawn[:0]
	if !m.Valid(id) || minX > maxX {
		return r.stats
	}
	v := view{s: s, m: m, origin: origin, dir: dir}
	r.drawSector(&v, id, minX, maxX, 0)
	return r.stats
}

type view struct {
	s      Surface
	m      *level.Map
	origin geom.Vec2i
	dir    geom.Vec2f
}

func (r *Renderer) drawSector(v *view, id level.SectorID, minX, maxX, depth int) {
	r.stats.Sectors++
	r.stats.MaxDepth = max(r.stats.MaxDepth, depth)

	sector := v.m.Sector(id)
	for i := 0; i < sector.Len(); i++ {
		w := sector.Wall(i)
		a := Relative(v.origin, v.dir, w.A)
		b := Relative(v.origin, v.dir, w.B)
		call, ok := ClipWall(r.cfg, a, b, minX, maxX)
		if !ok {
			r.stats.Culled++
			continue
		}
		if r.Record {
			r.drawn = append(r.drawn, DrawnWall{
				Sector: id, Wall: i, Portal: w.Portal, Depth: depth,
				Call: call, MinX: minX, MaxX: maxX,
			})
		}

		if !w.Portal {
			v.s.SetColor(w.Color)
			DrawWall(v.s, r.cfg, call)
			r.stats.Walls++
			continue
		}

		// The portal can only reveal the columns it covers itself.
		lo, hi := max(call.A.X, minX), min(call.B.X, maxX)
		if lo > hi || !v.m.Valid(w.Target) {
			continue
		}
		if depth+1 > r.cfg.MaxDepth {
			r.stats.DepthLimited++
			continue
		}
		r.stats.Portals++
		r.drawSector(v, w.Target, lo, hi, depth+1)
	}
}
