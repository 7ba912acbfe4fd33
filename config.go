package main

import "time"

// Display, movement, and audio constants for the interactive viewer. Movement
// speeds are per tick at defaultTPS; distances are world units.
const (
	screenW, screenH  = 320, 240
	windowScale       = 3
	defaultTPS        = 60
	moveSpeed         = 300 / defaultTPS
	lookSpeed         = 2
	collisionRadius   = 100
	stepDelay         = defaultTPS / 3
	fpsMarginX        = 10
	fpsMarginY        = 10
	hudFontSize       = 10
	pgoRecordDuration = 15 * time.Second
	audioSampleRate   = 48000
	footstepDuration  = 45 * time.Millisecond
	footstepFrequency = 110.0
	footstepGain      = 0.35
)
