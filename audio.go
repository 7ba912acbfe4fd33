package main

import (
	"bytes"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/audio/wav"

	"portalview/internal/footstep"
)

// loadFootstepSample decodes the WAV at path and returns mono samples at
// sampleRate.
func loadFootstepSample(sampleRate int, path string) ([]float32, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	stream, err := wav.DecodeWithSampleRate(sampleRate, bytes.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("decoding %q: %w", path, err)
	}
	decoded, err := io.ReadAll(stream)
	if err != nil {
		return nil, fmt.Errorf("reading decoded %q: %w", path, err)
	}
	samples := footstep.DecodeStereo(decoded)
	if len(samples) == 0 {
		return nil, fmt.Errorf("wav %q has no usable samples", path)
	}
	return samples, nil
}

// startFootsteps opens the audio device and returns the stream to trigger.
// Failures are logged and leave the game silent.
func (g *Game) startFootsteps() {
	sample := footstep.Synth(audioSampleRate, footstepDuration, footstepFrequency, footstepGain)
	if *footstepWAVFlag != "" {
		loaded, err := loadFootstepSample(audioSampleRate, *footstepWAVFlag)
		if err != nil {
			log.Printf("Footstep sample unavailable, using synthesized click: %v", err)
		} else {
			sample = loaded
		}
	}

	ctx := audio.NewContext(audioSampleRate)
	stream := footstep.NewStream(sample)
	player, err := ctx.NewPlayer(stream)
	if err != nil {
		log.Printf("Audio player creation failed: %v", err)
		return
	}
	g.audioCtx = ctx
	g.footsteps = stream
	g.audioPlayer = player
	g.audioPlayer.Play()
}
