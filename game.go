package main

import (
	"bytes"
	"log"
	"math/rand"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/gomono"

	"portalview/internal/footstep"
	"portalview/internal/geom"
	"portalview/internal/level"
	"portalview/internal/player"
	"portalview/internal/render"
	"portalview/internal/scene"
)

// Game holds the map, the player, the frame being composed, and the audio
// pipeline.
type Game struct {
	world  *level.Map
	player *player.Player
	scene  *scene.Scene
	stats  render.Stats

	showMinimap bool
	showCorners bool
	stepTimer   int

	autoWalk         bool
	autoWalkDone     bool
	autoWalkDeadline time.Time
	autoWalkRand     *rand.Rand
	autoWalkInput    player.Input
	autoWalkFrames   int

	hudFace *text.GoTextFace

	audioCtx    *audio.Context
	footsteps   *footstep.Stream
	audioPlayer *audio.Player
}

// newGame constructs a Game for world. Audio starts only when requested.
func newGame(world *level.Map, withAudio bool) *Game {
	cfg := render.DefaultConfig()
	cfg.Width, cfg.Height = screenW, screenH
	cfg.MaxDepth = *maxDepthFlag

	speed, look := moveSpeed, lookSpeed
	if tps := *tpsFlag; tps > 0 && tps != defaultTPS {
		speed = max(1, moveSpeed*defaultTPS/tps)
		look = max(1, lookSpeed*defaultTPS/tps)
	}

	g := &Game{
		world:        world,
		player:       player.New(geom.NewTrig(), world, speed, look, collisionRadius),
		scene:        scene.New(cfg),
		showMinimap:  *minimapFlag,
		showCorners:  *showCornersFlag,
		autoWalkRand: rand.New(rand.NewSource(time.Now().UnixNano())),
	}

	src, err := text.NewGoTextFaceSource(bytes.NewReader(gomono.TTF))
	if err != nil {
		log.Printf("HUD font unavailable: %v", err)
	} else {
		g.hudFace = &text.GoTextFace{Source: src, Size: hudFontSize}
	}

	if withAudio {
		g.startFootsteps()
	}
	return g
}

// Update applies input and collision and schedules footsteps.
func (g *Game) Update() error {
	g.handleDebugControls()

	in := g.movementInput()
	if g.autoWalkDone {
		return ebiten.Termination
	}
	moved := g.player.Step(in)
	if g.autoWalk && !moved {
		g.autoWalkFrames = 0
	}

	if moved {
		g.stepTimer++
		if g.stepTimer >= stepDelay {
			g.stepTimer = 0
			if g.footsteps != nil {
				g.footsteps.Trigger()
			}
		}
	} else {
		g.stepTimer = stepDelay
	}
	return nil
}

// composeFrame renders the current view into the scene's framebuffer.
func (g *Game) composeFrame() {
	g.stats = g.scene.Draw(g.world, g.player.Camera, scene.Options{
		Corners: g.showCorners,
		Minimap: g.showMinimap,
	})
}
