package engine

import (
	"slices"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/abey79/rusteroid/core"
	"github.com/abey79/rusteroid/generator"
)

// World contains all entities and their components using typed stores
// Creation and destruction requested during a tick are buffered and applied
// after the last system ran, so every system of a tick sees the same entity set
type World struct {
	mu           sync.RWMutex
	nextEntityID core.Entity

	Resources  Resource
	Components ComponentStore
	allStores  []AnyStore

	// Deferred commands, applied by flushCommands
	pendingSpawn   []func(*World)
	pendingDestroy []core.Entity

	systems     []System
	updateMutex sync.Mutex
}

// NewWorld creates a world with default resources
func NewWorld() *World {
	w := &World{
		nextEntityID: 1,
		Resources: Resource{
			Time:       &TimeResource{},
			Config:     DefaultConfigResource(),
			Event:      NewEventResource(),
			Rand:       core.NewRandSource(0),
			Generators: generator.Default(),
			Log:        zap.NewNop(),
			Stats:      &StatsResource{},
		},
		systems: make([]System, 0),
	}

	initComponentStores(w)

	return w
}

// CreateEntity reserves a new entity ID
func (w *World) CreateEntity() core.Entity {
	w.mu.Lock()
	defer w.mu.Unlock()

	id := w.nextEntityID
	w.nextEntityID++
	return id
}

// DeferSpawn schedules fn to create entities at the end of the current tick
// Spawns run in the order they were deferred
func (w *World) DeferSpawn(fn func(*World)) {
	w.mu.Lock()
	w.pendingSpawn = append(w.pendingSpawn, fn)
	w.mu.Unlock()
}

// DeferDestroy schedules e for removal at the end of the current tick
// Scheduling the same entity twice is harmless
func (w *World) DeferDestroy(e core.Entity) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if !slices.Contains(w.pendingDestroy, e) {
		w.pendingDestroy = append(w.pendingDestroy, e)
	}
}

// PendingDestroy reports whether e is scheduled for removal this tick
func (w *World) PendingDestroy(e core.Entity) bool {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return slices.Contains(w.pendingDestroy, e)
}

// flushCommands applies deferred destruction, then deferred creation
func (w *World) flushCommands() {
	w.mu.Lock()
	destroy := w.pendingDestroy
	spawn := w.pendingSpawn
	w.pendingDestroy = nil
	w.pendingSpawn = nil
	w.mu.Unlock()

	for _, store := range w.allStores {
		if batch, ok := store.(interface{ RemoveBatch([]core.Entity) }); ok {
			batch.RemoveBatch(destroy)
			continue
		}
		for _, e := range destroy {
			store.RemoveEntity(e)
		}
	}
	for _, fn := range spawn {
		fn(w)
	}
}

// Clear removes all entities, components, pending commands and queued events,
// and resets the statistics
func (w *World) Clear() {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.nextEntityID = 1
	w.pendingSpawn = nil
	w.pendingDestroy = nil
	for _, store := range w.allStores {
		store.ClearAllComponents()
	}
	if w.Resources.Event != nil {
		w.Resources.Event.Clear()
	}
	if w.Resources.Stats != nil {
		*w.Resources.Stats = StatsResource{}
	}
}

// AddSystem adds a system to the world and sorts by priority
// Systems with equal priority keep their registration order
func (w *World) AddSystem(system System) {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.systems = append(w.systems, system)
	slices.SortStableFunc(w.systems, func(a, b System) int {
		return a.Priority() - b.Priority()
	})
}

// Systems returns a copy of all registered systems in run order
func (w *World) Systems() []System {
	w.mu.RLock()
	defer w.mu.RUnlock()
	result := make([]System, len(w.systems))
	copy(result, w.systems)
	return result
}

// RunSafe executes a function while holding the world's update lock
func (w *World) RunSafe(fn func()) {
	w.updateMutex.Lock()
	defer w.updateMutex.Unlock()
	fn()
}

// Lock acquires a lock on the world's update mutex
func (w *World) Lock() {
	w.updateMutex.Lock()
}

// Unlock releases the update mutex
func (w *World) Unlock() {
	w.updateMutex.Unlock()
}

// Step advances time by dt and runs one tick
func (w *World) Step(dt time.Duration) {
	w.RunSafe(func() {
		w.StepLocked(dt)
	})
}

// StepLocked runs one tick assuming the caller already holds updateMutex
func (w *World) StepLocked(dt time.Duration) {
	w.Resources.Time.Update(dt)

	w.mu.RLock()
	systems := make([]System, len(w.systems))
	copy(systems, w.systems)
	w.mu.RUnlock()

	for _, system := range systems {
		system.Update()
	}

	w.flushCommands()
}
