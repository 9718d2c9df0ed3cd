package audio

import (
	"math/rand/v2"
	"time"

	"github.com/gopxl/beep"
)

// Explosion timing; larger categories ring longer and lower
const (
	explosionBase     = 180 * time.Millisecond
	explosionPerCat   = 90 * time.Millisecond
	explosionAttack   = 4 * time.Millisecond
	explosionThumpHz  = 140.0
	explosionThumpEnd = 0.35 // Pitch multiplier at the end of the thump
)

// ExplosionDuration returns the length of the sound for category
func ExplosionDuration(category int) time.Duration {
	return explosionBase + time.Duration(max(category, 1))*explosionPerCat
}

// CreateExplosionSound mixes a noise burst with a falling sine thump
func CreateExplosionSound(category int, volume float64, rate beep.SampleRate, rng *rand.Rand) beep.Streamer {
	category = max(category, 1)
	d := ExplosionDuration(category)

	noise := NewOscillator(0, d, WaveNoise, rate, rng)
	noiseShaped := NewEnvelope(noise, d, explosionAttack, d*3/4, rate)

	thump := NewSweep(explosionThumpHz/float64(category), explosionThumpEnd, d, WaveSine, rate, rng)
	thumpShaped := NewEnvelope(thump, d, explosionAttack, d/2, rate)

	mixed := beep.Mix(
		newVolume(noiseShaped, 0.55),
		newVolume(thumpShaped, 0.45),
	)
	return newVolume(mixed, volume)
}
