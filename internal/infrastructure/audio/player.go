// Package audio plays the game's sound cues through the system speaker.
//
// Cues are synthesized rather than loaded from files: each one is a short
// sequence of enveloped tones built with gopxl/beep.
package audio

import (
	"fmt"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/younwookim/pong/internal/application/system"
)

// BeepPlayer implements system.SoundPlayer on top of beep's speaker
type BeepPlayer struct {
	mu          sync.Mutex
	rate        beep.SampleRate
	initialized bool

	// play hands a streamer to the output; speaker.Play outside tests
	play func(beep.Streamer)
}

// NewBeepPlayer creates a player for the given sample rate.
// Call Initialize before playing.
func NewBeepPlayer(sampleRate int) *BeepPlayer {
	return &BeepPlayer{
		rate: beep.SampleRate(sampleRate),
		play: func(s beep.Streamer) { speaker.Play(s) },
	}
}

// Initialize opens the audio device with a 100ms buffer
func (p *BeepPlayer) Initialize() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.initialized {
		return nil
	}
	if err := speaker.Init(p.rate, p.rate.N(time.Second/10)); err != nil {
		return fmt.Errorf("init speaker: %w", err)
	}
	p.initialized = true
	return nil
}

// Play queues cue at volume in [0, 1]. It never blocks on playback.
func (p *BeepPlayer) Play(cue system.Cue, volume float64) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}
	if s := cueSound(cue, volume, p.rate); s != nil {
		p.play(s)
	}
}

// Close stops all sounds and releases the device
func (p *BeepPlayer) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}
	speaker.Clear()
	speaker.Close()
	p.initialized = false
}
