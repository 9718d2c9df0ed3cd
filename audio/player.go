// Package audio synthesizes game sound effects with beep
package audio

import (
	"fmt"
	"math/rand/v2"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

// Player plays effects through a single mixer attached to the speaker
type Player struct {
	mu      sync.Mutex
	mixer   *beep.Mixer
	rate    beep.SampleRate
	volume  float64
	rng     *rand.Rand
	running bool
}

// NewPlayer creates a stopped player
func NewPlayer(sampleRate int, volume float64, rng *rand.Rand) *Player {
	return &Player{
		mixer:  &beep.Mixer{},
		rate:   beep.SampleRate(sampleRate),
		volume: volume,
		rng:    rng,
	}
}

// Start opens the audio device and begins mixing
func (p *Player) Start() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.running {
		return nil
	}
	if err := speaker.Init(p.rate, p.rate.N(100*time.Millisecond)); err != nil {
		return fmt.Errorf("init speaker: %w", err)
	}
	speaker.Play(p.mixer)
	p.running = true
	return nil
}

// Stop silences pending sounds and releases the device
func (p *Player) Stop() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.running {
		return
	}
	speaker.Lock()
	p.mixer.Clear()
	speaker.Unlock()
	speaker.Close()
	p.running = false
}

// IsRunning reports whether the device is open
func (p *Player) IsRunning() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.running
}

// PlayExplosion queues an explosion sized by category
// Returns false when the device is not running
func (p *Player) PlayExplosion(category int) bool {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.running {
		return false
	}
	s := CreateExplosionSound(category, p.volume, p.rate, p.rng)
	speaker.Lock()
	p.mixer.Add(s)
	speaker.Unlock()
	return true
}
