package main

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"portalview/internal/scene"
)

// Draw presents the composed frame and the HUD.
func (g *Game) Draw(screen *ebiten.Image) {
	g.composeFrame()
	screen.WritePixels(g.scene.Frame.RGBA())

	if g.showMinimap {
		g.drawMinimapOverlay(screen)
	}
	g.drawFPS(screen)

	if *debugFlag {
		cam := g.player.Camera
		s := g.stats
		debugMsg := fmt.Sprintf("Sector %d  pos %d,%d  rot %d\nWalls %d  culled %d\nPortals %d  depth %d/%d  limited %d",
			cam.Sector, cam.Position.X, cam.Position.Y, cam.Rotation,
			s.Walls, s.Culled,
			s.Portals, s.MaxDepth, g.scene.Renderer().Config().MaxDepth, s.DepthLimited)
		ebitenutil.DebugPrintAt(screen, debugMsg, 0, screenH-3*16)
	}
}

// Layout reports the logical screen size used by Ebiten.
func (g *Game) Layout(_, _ int) (int, int) { return screenW, screenH }

// drawMinimapOverlay frames the minimap and rings the player's collision
// radius.
func (g *Game) drawMinimapOverlay(screen *ebiten.Image) {
	x := float32(scene.MinimapMargin) - 0.5
	size := float32(scene.MinimapSize) + 1
	vector.StrokeRect(screen, x, x, size, size, 1, color.RGBA{200, 200, 200, 255}, false)

	c := float32(scene.MinimapMargin + scene.MinimapSize/2)
	r := float32(collisionRadius) / scene.MinimapZoom
	vector.StrokeCircle(screen, c, c, r, 1, color.RGBA{240, 220, 40, 160}, true)
}

// drawFPS prints the frame rate at the top right.
func (g *Game) drawFPS(screen *ebiten.Image) {
	if g.hudFace == nil {
		return
	}
	msg := fmt.Sprintf("%.0f", ebiten.ActualFPS())
	w, _ := text.Measure(msg, g.hudFace, 0)
	op := &text.DrawOptions{}
	op.GeoM.Translate(float64(screenW-fpsMarginX)-w, fpsMarginY)
	op.ColorScale.ScaleWithColor(color.White)
	text.Draw(screen, msg, g.hudFace, op)
}
