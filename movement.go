package main

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"portalview/internal/player"
)

// enableAutoWalk schedules scripted movement for a limited duration.
func (g *Game) enableAutoWalk(duration time.Duration) {
	g.autoWalk = true
	g.autoWalkDeadline = time.Now().Add(duration)
	g.autoWalkFrames = 0
}

// movementInput selects either manual or automatic controls.
func (g *Game) movementInput() player.Input {
	if g.autoWalk {
		if time.Now().After(g.autoWalkDeadline) {
			g.autoWalk = false
			g.autoWalkDone = true
			return player.Input{}
		}
		return g.autoWalkStep()
	}
	return manualInput()
}

// manualInput reads arrow keys and WASD. Arrows turn, A and D strafe.
func manualInput() player.Input {
	return player.Input{
		Forward:     ebiten.IsKeyPressed(ebiten.KeyW) || ebiten.IsKeyPressed(ebiten.KeyArrowUp),
		Back:        ebiten.IsKeyPressed(ebiten.KeyS) || ebiten.IsKeyPressed(ebiten.KeyArrowDown),
		StrafeLeft:  ebiten.IsKeyPressed(ebiten.KeyA),
		StrafeRight: ebiten.IsKeyPressed(ebiten.KeyD),
		TurnLeft:    ebiten.IsKeyPressed(ebiten.KeyArrowLeft) || ebiten.IsKeyPressed(ebiten.KeyQ),
		TurnRight:   ebiten.IsKeyPressed(ebiten.KeyArrowRight) || ebiten.IsKeyPressed(ebiten.KeyE),
	}
}

// autoWalkStep walks forward while turning in randomly chosen bursts. A step
// that does not move the player, such as into a wall, picks a new burst.
func (g *Game) autoWalkStep() player.Input {
	if g.autoWalkFrames <= 0 {
		g.randomizeAutoWalk()
	}
	g.autoWalkFrames--
	return g.autoWalkInput
}

// randomizeAutoWalk chooses a new turn direction and burst length.
func (g *Game) randomizeAutoWalk() {
	in := player.Input{Forward: true}
	switch g.autoWalkRand.Intn(3) {
	case 0:
		in.TurnLeft = true
	case 1:
		in.TurnRight = true
	}
	g.autoWalkInput = in
	g.autoWalkFrames = 20 + g.autoWalkRand.Intn(50)
}

// handleDebugControls processes overlay and renderer hotkeys.
func (g *Game) handleDebugControls() {
	if inpututil.IsKeyJustPressed(ebiten.KeyTab) {
		g.showMinimap = !g.showMinimap
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyC) {
		g.showCorners = !g.showCorners
	}
	if !*debugFlag {
		return
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyMinus) || inpututil.IsKeyJustPressed(ebiten.KeyKPSubtract) {
		g.adjustMaxDepth(-1)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEqual) || inpututil.IsKeyJustPressed(ebiten.KeyKPAdd) {
		g.adjustMaxDepth(1)
	}
}

// adjustMaxDepth changes the portal depth limit, never below zero.
func (g *Game) adjustMaxDepth(delta int) {
	r := g.scene.Renderer()
	r.SetMaxDepth(max(0, r.Config().MaxDepth+delta))
}
