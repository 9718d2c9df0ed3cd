package engine

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"go.uber.org/zap"

	"github.com/abey79/rusteroid/core"
)

// ClockScheduler runs world ticks on a fixed interval in its own goroutine
// Simulated time advances by exactly one interval per tick regardless of wall-clock jitter
type ClockScheduler struct {
	world *World

	tickInterval     time.Duration
	nextTickDeadline time.Time

	tickCount atomic.Uint64
	paused    atomic.Bool

	stopChan chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup
	running  atomic.Bool

	// updateDone signals the frame loop that a tick completed
	updateDone chan struct{}
}

// NewClockScheduler creates a scheduler and returns it with its tick-done channel
func NewClockScheduler(world *World, tickInterval time.Duration) (*ClockScheduler, <-chan struct{}) {
	updateDone := make(chan struct{}, 1)
	cs := &ClockScheduler{
		world:        world,
		tickInterval: tickInterval,
		stopChan:     make(chan struct{}),
		updateDone:   updateDone,
	}
	return cs, updateDone
}

// Start begins the scheduler loop
func (cs *ClockScheduler) Start() {
	if cs.running.CompareAndSwap(false, true) {
		cs.wg.Add(1)
		core.Go(cs.schedulerLoop)
	}
}

// Stop halts the scheduler loop and waits for the running tick to finish
func (cs *ClockScheduler) Stop() {
	cs.stopOnce.Do(func() {
		if cs.running.CompareAndSwap(true, false) {
			close(cs.stopChan)
			cs.wg.Wait()
		}
	})
}

// Run starts the scheduler and blocks until ctx is done
func (cs *ClockScheduler) Run(ctx context.Context) error {
	cs.Start()
	defer cs.Stop()
	<-ctx.Done()
	return ctx.Err()
}

// SetPaused suspends or resumes ticking
func (cs *ClockScheduler) SetPaused(paused bool) {
	cs.paused.Store(paused)
}

// Paused reports whether ticking is suspended
func (cs *ClockScheduler) Paused() bool {
	return cs.paused.Load()
}

// TickCount returns the number of ticks run by this scheduler
func (cs *ClockScheduler) TickCount() uint64 {
	return cs.tickCount.Load()
}

// Step runs one tick synchronously, used by tests and single-step mode
func (cs *ClockScheduler) Step() {
	cs.processTick()
}

// schedulerLoop sleeps until the next deadline and runs a tick, correcting drift
func (cs *ClockScheduler) schedulerLoop() {
	defer cs.wg.Done()

	cs.nextTickDeadline = time.Now().Add(cs.tickInterval)

	timer := time.NewTimer(cs.tickInterval)
	defer timer.Stop()

	for {
		select {
		case <-cs.stopChan:
			return
		case <-timer.C:
		}

		now := time.Now()
		if !cs.paused.Load() {
			cs.processTick()
		}

		cs.nextTickDeadline = cs.nextTickDeadline.Add(cs.tickInterval)
		// Drop ticks instead of bursting after a long stall
		if now.Sub(cs.nextTickDeadline) > cs.tickInterval*2 {
			cs.world.Resources.Log.Debug("scheduler behind, skipping ticks",
				zap.Duration("lag", now.Sub(cs.nextTickDeadline)))
			cs.nextTickDeadline = now.Add(cs.tickInterval)
		}

		sleep := time.Until(cs.nextTickDeadline)
		if sleep < 0 {
			sleep = 0
		}
		timer.Reset(sleep)
	}
}

// processTick executes one clock cycle under the world lock
func (cs *ClockScheduler) processTick() {
	cs.world.Step(cs.tickInterval)
	cs.tickCount.Add(1)

	select {
	case cs.updateDone <- struct{}{}:
	default:
	}
}
