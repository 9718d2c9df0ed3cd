package system

import (
	"math"
	"sync"
	"testing"
	"time"

	"github.com/jakecoffman/cp/v2"

	"github.com/abey79/rusteroid/component"
	"github.com/abey79/rusteroid/core"
	"github.com/abey79/rusteroid/engine"
	"github.com/abey79/rusteroid/event"
	"github.com/abey79/rusteroid/generator"
	"github.com/abey79/rusteroid/parameter"
)

// recordingPlayer captures explosion playback
type recordingPlayer struct {
	mu     sync.Mutex
	played []int
}

func (p *recordingPlayer) PlayExplosion(category int) bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.played = append(p.played, category)
	return true
}

func (p *recordingPlayer) IsRunning() bool { return true }

func (p *recordingPlayer) Played() []int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]int(nil), p.played...)
}

func newTestWorld(t *testing.T) (*engine.World, *recordingPlayer) {
	t.Helper()
	w := engine.NewWorld()
	w.Resources.Rand = core.NewRandSource(42)
	player := &recordingPlayer{}
	w.Resources.Audio = &engine.AudioResource{Player: player}
	Install(w)
	return w, player
}

func step(w *engine.World, n int) {
	for i := 0; i < n; i++ {
		w.Step(parameter.GameUpdateInterval)
	}
}

// stillAsteroid places a motionless asteroid whose outline surrounds pos
func stillAsteroid(w *engine.World, cat int, pos cp.Vector) core.Entity {
	res := generator.JitteredCircle{}.Generate(w.Resources.Rand.Next(), cat)
	return engine.SpawnAsteroid(w, engine.AsteroidSpec{
		Category: cat,
		Position: pos,
		Size:     parameter.AsteroidSizePerCategory * float64(cat),
		Geometry: res,
	})
}

func missile(w *engine.World, pos, vel cp.Vector) core.Entity {
	return engine.SpawnMissile(w, pos, vel, 0, component.MissileComponent{TimeToLive: 10 * time.Second})
}

// stepUntilGone runs ticks until e has no asteroid component and returns the tick count
func stepUntilGone(t *testing.T, w *engine.World, e core.Entity, limit int) int {
	t.Helper()
	for i := 1; i <= limit; i++ {
		step(w, 1)
		if !w.Components.Asteroid.HasEntity(e) {
			return i
		}
	}
	t.Fatalf("asteroid %d survived %d ticks", e, limit)
	return 0
}

// fireAtNearest aims a shot from the field center at the first asteroid
func fireAtNearest(w *engine.World) event.FireRequest {
	req := event.FireRequest{}
	entities := w.Components.Asteroid.GetAllEntities()
	if len(entities) == 0 {
		return req
	}
	tr, _ := w.Components.Transform.GetComponent(entities[0])
	// Heading rotates local +Y onto the target direction
	req.Heading = tr.Position.ToAngle() - math.Pi/2
	return req
}
