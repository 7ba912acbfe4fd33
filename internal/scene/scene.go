// Package scene composes a full frame: backdrop, the portal render, corner
// markers and the minimap, all into one framebuffer that any frontend can
// present.
package scene

import (
	"portalview/internal/framebuffer"
	"portalview/internal/level"
	"portalview/internal/palette"
	"portalview/internal/render"
)

// Minimap geometry in screen pixels. MinimapZoom is world units per pixel.
const (
	MinimapSize   = 80
	MinimapZoom   = 20
	MinimapMargin = 4

	cornerRadius  = 2
	headingLength = 8
)

// Options selects the optional overlays.
type Options struct {
	Corners bool
	Minimap bool
}

// Scene owns the frame buffers and the renderer.
type Scene struct {
	Frame   *framebuffer.Framebuffer
	Minimap *framebuffer.Framebuffer

	renderer *render.Renderer
	corner   []framebuffer.Offset
	marker   []framebuffer.Offset
}

// New allocates buffers for cfg's screen size.
func New(cfg render.Config) *Scene {
	return &Scene{
		Frame:    framebuffer.New(cfg.Width, cfg.Height),
		Minimap:  framebuffer.New(MinimapSize, MinimapSize),
		renderer: render.NewRenderer(cfg),
		corner:   framebuffer.Footprint(cornerRadius),
		marker:   framebuffer.Footprint(cornerRadius),
	}
}

// Renderer exposes the renderer, e.g. to change its depth limit.
func (s *Scene) Renderer() *render.Renderer { return s.renderer }

// Draw renders world from cam into Frame.
func (s *Scene) Draw(world *level.Map, cam render.Camera, opt Options) render.Stats {
	s.Frame.FillSplit(palette.Sky, palette.Floor)
	s.renderer.Record = opt.Corners
	stats := s.renderer.Render(s.Frame, world, cam)
	if opt.Corners {
		s.drawCorners()
	}
	if opt.Minimap {
		s.drawMinimap(world, cam)
		s.Frame.Blit(s.Minimap, MinimapMargin, MinimapMargin)
	}
	return stats
}

// drawCorners marks the top and bottom of both projected ends of every
// accepted wall, portals included.
func (s *Scene) drawCorners() {
	halfH := s.Frame.Height / 2
	for _, d := range s.renderer.Drawn() {
		a, b := d.Call.A, d.Call.B
		s.Frame.FillDisc(a.X, halfH+a.Y, s.corner, palette.CornerA)
		s.Frame.FillDisc(a.X, halfH-a.Y, s.corner, palette.CornerA)
		s.Frame.FillDisc(b.X, halfH+b.Y, s.corner, palette.CornerB)
		s.Frame.FillDisc(b.X, halfH-b.Y, s.corner, palette.CornerB)
	}
}

// drawMinimap draws the map top-down, north up, centred on the camera.
func (s *Scene) drawMinimap(world *level.Map, cam render.Camera) {
	mm := s.Minimap
	mm.Fill(palette.DarkGrey)
	half := MinimapSize / 2
	toMap := func(x, y int) (int, int) {
		return half + (x-cam.Position.X)/MinimapZoom, half - (y-cam.Position.Y)/MinimapZoom
	}

	for id := level.SectorID(0); int(id) < world.Len(); id++ {
		for _, w := range world.Sector(id).Walls() {
			c := palette.MapWall
			switch {
			case w.Portal:
				c = palette.MapPortal
			case id == cam.Sector:
				c = palette.White
			}
			x0, y0 := toMap(w.A.X, w.A.Y)
			x1, y1 := toMap(w.B.X, w.B.Y)
			mm.DrawLine(x0, y0, x1, y1, c)
		}
	}

	mm.FillDisc(half, half, s.marker, palette.Yellow)
	hx := half + int(cam.Direction.X*headingLength)
	hy := half - int(cam.Direction.Y*headingLength)
	mm.DrawLine(half, half, hx, hy, palette.Yellow)
}
