package audio

import (
	"math/rand/v2"
	"testing"
	"time"

	"github.com/gopxl/beep"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testRate = beep.SampleRate(44100)

func testRNG() *rand.Rand {
	return rand.New(rand.NewPCG(1, 2))
}

// drain streams s to completion and returns all samples
func drain(s beep.Streamer) [][2]float64 {
	var out [][2]float64
	buf := make([][2]float64, 512)
	for {
		n, ok := s.Stream(buf)
		out = append(out, buf[:n]...)
		if !ok || n == 0 {
			return out
		}
	}
}

func TestOscillator_Waves(t *testing.T) {
	for _, wave := range []WaveType{WaveSine, WaveSquare, WaveSaw, WaveNoise} {
		osc := NewOscillator(440, 50*time.Millisecond, wave, testRate, testRNG())
		samples := drain(osc)
		assert.Len(t, samples, testRate.N(50*time.Millisecond))
		for _, s := range samples {
			assert.GreaterOrEqual(t, s[0], -1.0)
			assert.LessOrEqual(t, s[0], 1.0)
			assert.Equal(t, s[0], s[1])
		}
		assert.NoError(t, osc.Err())
	}
}

func TestEnvelope_Shape(t *testing.T) {
	d := 100 * time.Millisecond
	osc := NewOscillator(0, d, WaveSquare, testRate, testRNG())
	env := NewEnvelope(osc, d, 10*time.Millisecond, 20*time.Millisecond, testRate)
	samples := drain(env)
	require.Len(t, samples, testRate.N(d))

	assert.InDelta(t, 0, samples[0][0], 1e-9, "attack starts silent")
	mid := samples[len(samples)/2][0]
	assert.InDelta(t, 1, mid, 1e-9, "sustain at full level")
	assert.Less(t, samples[len(samples)-1][0], 0.01, "release fades out")
}

func TestExplosion_LengthByCategory(t *testing.T) {
	small := drain(CreateExplosionSound(1, 1, testRate, testRNG()))
	large := drain(CreateExplosionSound(3, 1, testRate, testRNG()))
	assert.Len(t, small, testRate.N(ExplosionDuration(1)))
	assert.Greater(t, len(large), len(small))
	assert.Equal(t, ExplosionDuration(1), ExplosionDuration(0))
}

func TestExplosion_Silent(t *testing.T) {
	for _, s := range drain(CreateExplosionSound(2, 0, testRate, testRNG())) {
		assert.Zero(t, s[0])
	}
}

func TestPlayer_NotRunning(t *testing.T) {
	p := NewPlayer(44100, 0.5, testRNG())
	assert.False(t, p.IsRunning())
	assert.False(t, p.PlayExplosion(3))
	p.Stop()
}
