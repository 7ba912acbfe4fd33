package main

import "flag"

// Command-line flags that control the map, optional overlays, and runtime
// behavior.
var (
	// mapFlag names a JSON map file; the built-in demo map is used when empty.
	mapFlag = flag.String("map", "", "JSON map file to load (default: built-in demo map)")

	// builtinFlag picks the built-in map when no file is given.
	builtinFlag = flag.String("builtin", "demo", "built-in map to use without -map: default or demo")

	// debugFlag enables the render statistics overlay and depth hotkeys.
	debugFlag = flag.Bool("debug", false, "show render statistics overlay")

	// minimapFlag starts with the minimap visible; Tab toggles it.
	minimapFlag = flag.Bool("minimap", false, "show the top-down minimap")

	// showCornersFlag marks the projected ends of every accepted wall.
	showCornersFlag = flag.Bool("show-corners", false, "mark projected wall corners")

	// maxDepthFlag bounds portal recursion.
	maxDepthFlag = flag.Int("max-depth", 32, "maximum portal recursion depth")

	// scaleFlag sets the window scale factor.
	scaleFlag = flag.Int("scale", windowScale, "window scale factor")

	// tpsFlag sets the update rate.
	tpsFlag = flag.Int("tps", defaultTPS, "updates per second")

	// snapshotFlag renders one frame from the spawn point to a BMP file and exits.
	snapshotFlag = flag.String("snapshot", "", "render one frame to this BMP file and exit")

	// recordDefaultPGO triggers a scripted walk to produce default.pgo.
	recordDefaultPGO = flag.Bool("record-default-pgo", false, "walk randomly for 15s while capturing default.pgo")

	// enableAudioFlag plays a click for every footstep.
	enableAudioFlag = flag.Bool("enable-audio", false, "play footstep sounds")

	// footstepWAVFlag replaces the synthesized footstep with a WAV sample.
	footstepWAVFlag = flag.String("footstep-wav", "", "WAV file to use as the footstep sound")
)
