package scene

import (
	"testing"

	"portalview/internal/geom"
	"portalview/internal/level"
	"portalview/internal/palette"
	"portalview/internal/render"
)

func countIn(pix []uint8, c uint8) int {
	n := 0
	for _, p := range pix {
		if p == c {
			n++
		}
	}
	return n
}

func defaultView() (*level.Map, render.Camera) {
	m := level.Default()
	return m, render.NewCamera(geom.NewTrig(), m.Spawn)
}

func TestDrawPlain(t *testing.T) {
	s := New(render.DefaultConfig())
	m, cam := defaultView()
	stats := s.Draw(m, cam, Options{})
	if stats.Walls == 0 {
		t.Fatal("no walls drawn")
	}
	if len(s.Renderer().Drawn()) != 0 {
		t.Fatal("walls recorded without corner markers")
	}
	for _, c := range []uint8{palette.CornerA, palette.CornerB, palette.MapPortal, palette.Yellow} {
		if n := countIn(s.Frame.Pix, c); n != 0 {
			t.Fatalf("overlay colour %d present %d times", c, n)
		}
	}
	if s.Frame.At(0, 0) != palette.Sky {
		t.Fatal("top left should show sky")
	}
}

func TestDrawCorners(t *testing.T) {
	s := New(render.DefaultConfig())
	m, cam := defaultView()
	s.Draw(m, cam, Options{Corners: true})
	if len(s.Renderer().Drawn()) == 0 {
		t.Fatal("no walls recorded")
	}
	if countIn(s.Frame.Pix, palette.CornerA) == 0 || countIn(s.Frame.Pix, palette.CornerB) == 0 {
		t.Fatal("corner markers missing")
	}
	// The annex's back wall starts at the portal's left edge, column 160,
	// with half-height 33.
	if s.Frame.At(160, 120-33) != palette.CornerA {
		t.Fatalf("expected an A marker at (160, 87), got %d", s.Frame.At(160, 87))
	}
}

func TestDrawMinimap(t *testing.T) {
	s := New(render.DefaultConfig())
	m, cam := defaultView()
	s.Draw(m, cam, Options{Minimap: true})

	half := MinimapSize / 2
	if s.Minimap.At(half, half) != palette.Yellow {
		t.Fatal("player marker missing")
	}
	// The portal runs from (0,400) to (400,400): 20 pixels above centre.
	if s.Minimap.At(half+10, half-20) != palette.MapPortal {
		t.Fatalf("portal missing, got %d", s.Minimap.At(half+10, half-20))
	}
	// Walls of the current sector are highlighted.
	if s.Minimap.At(half-20, half) != palette.White {
		t.Fatalf("west wall missing, got %d", s.Minimap.At(half-20, half))
	}
	if s.Minimap.At(half-30, half) != palette.DarkGrey {
		t.Fatal("minimap background missing")
	}
	if s.Frame.At(MinimapMargin+half, MinimapMargin+half) != palette.Yellow {
		t.Fatal("minimap not blitted into the frame")
	}
}
