package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	flag.Parse()

	world, err := loadWorld(*mapFlag, *builtinFlag)
	if err != nil {
		log.Fatalf("Failed to load map: %v", err)
	}

	if *snapshotFlag != "" {
		g := newGame(world, false)
		g.composeFrame()
		if err := g.scene.Frame.SaveBMP(*snapshotFlag); err != nil {
			log.Fatalf("Snapshot failed: %v", err)
		}
		log.Printf("Wrote %s (%d walls, %d portals)", *snapshotFlag, g.stats.Walls, g.stats.Portals)
		return
	}

	g := newGame(world, *enableAudioFlag)

	var stopProfile func()
	if *recordDefaultPGO {
		stop, err := startDefaultPGORecording("default.pgo")
		if err != nil {
			log.Fatalf("Failed to start PGO capture: %v", err)
		}
		stopProfile = stop
		g.enableAutoWalk(pgoRecordDuration)
		log.Printf("Recording default.pgo for %s", pgoRecordDuration)
	}

	ebiten.SetWindowSize(screenW*max(1, *scaleFlag), screenH*max(1, *scaleFlag))
	ebiten.SetWindowTitle("portalview: " + world.Name)
	ebiten.SetTPS(*tpsFlag)
	runErr := ebiten.RunGame(g)
	if stopProfile != nil {
		stopProfile()
	}
	if runErr != nil {
		log.Fatalf("Game exited with error: %v", runErr)
	}
}
