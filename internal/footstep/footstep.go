// Package footstep produces the click played for every step the player takes,
// as a 16-bit little-endian stereo PCM stream.
package footstep

import (
	"encoding/binary"
	"math"
	"sync"
	"time"
)

const frameBytes = 4

// Stream is an io.ReadCloser that plays its sample once per Trigger and is
// silent otherwise. Trigger may be called from another goroutine than Read.
type Stream struct {
	mu     sync.Mutex
	sample []float32
	pos    int
}

// NewStream returns an idle stream playing sample, given as mono values in
// [-1, 1].
func NewStream(sample []float32) *Stream {
	return &Stream{sample: sample, pos: len(sample)}
}

// Trigger restarts the sample from the beginning.
func (s *Stream) Trigger() {
	s.mu.Lock()
	s.pos = 0
	s.mu.Unlock()
}

// Playing reports whether part of the sample is still pending.
func (s *Stream) Playing() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.pos < len(s.sample)
}

func (s *Stream) Read(p []byte) (int, error) {
	// Whole stereo frames only.
	n := len(p) - len(p)%frameBytes
	if n == 0 {
		return 0, nil
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := 0; i < n; i += frameBytes {
		var v float32
		if s.pos < len(s.sample) {
			v = s.sample[s.pos]
			s.pos++
		}
		pcm := uint16(toPCM(v))
		binary.LittleEndian.PutUint16(p[i:], pcm)
		binary.LittleEndian.PutUint16(p[i+2:], pcm)
	}
	return n, nil
}

func (s *Stream) Close() error {
	return nil
}

func toPCM(v float32) int16 {
	if v > 1 {
		v = 1
	} else if v < -1 {
		v = -1
	}
	return int16(v * math.MaxInt16)
}

// Synth returns a sine burst of freq Hz lasting d with a linear decay.
func Synth(sampleRate int, d time.Duration, freq, gain float64) []float32 {
	n := int(d.Seconds() * float64(sampleRate))
	out := make([]float32, n)
	for i := range out {
		t := float64(i) / float64(sampleRate)
		env := 1 - float64(i)/float64(n)
		out[i] = float32(gain * env * math.Sin(2*math.Pi*freq*t))
	}
	return out
}

// DecodeStereo averages 16-bit little-endian stereo PCM down to mono floats.
func DecodeStereo(pcm []byte) []float32 {
	frames := len(pcm) / frameBytes
	samples := make([]float32, frames)
	for i := range samples {
		offset := i * frameBytes
		left := int16(binary.LittleEndian.Uint16(pcm[offset : offset+2]))
		right := int16(binary.LittleEndian.Uint16(pcm[offset+2 : offset+4]))
		samples[i] = (float32(left) + float32(right)) * (0.5 / 32768.0)
	}
	return samples
}
