package engine

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestClockScheduler_Step(t *testing.T) {
	w := NewWorld()
	var log []string
	w.AddSystem(&recordingSystem{name: "s", priority: 1, log: &log})

	cs, done := NewClockScheduler(w, 10*time.Millisecond)
	cs.Step()
	cs.Step()

	assert.Equal(t, uint64(2), cs.TickCount())
	assert.Len(t, log, 2)
	assert.Equal(t, 20*time.Millisecond, w.Resources.Time.GameTime)

	select {
	case <-done:
	default:
		t.Fatal("expected tick-done signal")
	}
}

func TestClockScheduler_StartStop(t *testing.T) {
	w := NewWorld()
	cs, _ := NewClockScheduler(w, time.Millisecond)

	cs.Start()
	assert.Eventually(t, func() bool { return cs.TickCount() >= 3 }, time.Second, time.Millisecond)
	cs.Stop()
	cs.Stop()

	n := cs.TickCount()
	time.Sleep(5 * time.Millisecond)
	assert.Equal(t, n, cs.TickCount(), "no ticks after stop")
}

func TestClockScheduler_Pause(t *testing.T) {
	w := NewWorld()
	cs, _ := NewClockScheduler(w, time.Millisecond)
	cs.SetPaused(true)
	assert.True(t, cs.Paused())

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()
	err := cs.Run(ctx)

	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Zero(t, cs.TickCount())
}
