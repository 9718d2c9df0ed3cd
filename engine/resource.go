package engine

import (
	"time"

	"go.uber.org/zap"

	"github.com/abey79/rusteroid/core"
	"github.com/abey79/rusteroid/event"
	"github.com/abey79/rusteroid/generator"
	"github.com/abey79/rusteroid/parameter"
)

// Resource holds singleton world resources, accessed via World.Resources
// Fields may be replaced during wiring, before the first tick
type Resource struct {
	Time       *TimeResource
	Config     *ConfigResource
	Event      *EventResource
	Rand       *core.RandSource
	Generators *generator.Registry
	Log        *zap.Logger
	Stats      *StatsResource

	// Optional collaborators
	Audio *AudioResource
}

// TimeResource wraps time data for systems
// It is updated by World.Step at the start of each tick
type TimeResource struct {
	// GameTime is the simulated time, advanced by exactly DeltaTime per tick
	GameTime time.Duration

	// DeltaTime is the fixed tick interval
	DeltaTime time.Duration

	// FrameNumber is the current tick count
	FrameNumber int64
}

// Update modifies TimeResource fields in-place
// Must be called under world lock to prevent races with systems reads
func (tr *TimeResource) Update(dt time.Duration) {
	tr.DeltaTime = dt
	tr.GameTime += dt
	tr.FrameNumber++
}

// Seconds returns DeltaTime as float seconds for integration
func (tr *TimeResource) Seconds() float64 {
	return tr.DeltaTime.Seconds()
}

// StatsResource counts gameplay outcomes for the status line
type StatsResource struct {
	Kills int
}

// ConfigResource holds the gameplay tunables systems read at runtime
type ConfigResource struct {
	FieldWidth  float64
	FieldHeight float64
	MaxCategory int

	MissileSpeed            float64
	MissileTimeToLive       time.Duration
	MissileMomentumTransfer float64
}

// DefaultConfigResource returns tunables from compile-time parameters
func DefaultConfigResource() *ConfigResource {
	return &ConfigResource{
		FieldWidth:              parameter.FieldWidth,
		FieldHeight:             parameter.FieldHeight,
		MaxCategory:             parameter.MaxCategory,
		MissileSpeed:            parameter.MissileSpeed,
		MissileTimeToLive:       parameter.MissileTimeToLive,
		MissileMomentumTransfer: parameter.MissileMomentumTransfer,
	}
}

// EventResource holds the typed event queues
// Each queue has exactly one consuming system
type EventResource struct {
	Spawn *event.Queue[event.SpawnRequest]
	Kill  *event.Queue[event.KillEvent]
	Fire  *event.Queue[event.FireRequest]
}

// NewEventResource creates empty queues
func NewEventResource() *EventResource {
	return &EventResource{
		Spawn: event.NewQueue[event.SpawnRequest](event.EventSpawnRequest),
		Kill:  event.NewQueue[event.KillEvent](event.EventKill),
		Fire:  event.NewQueue[event.FireRequest](event.EventFire),
	}
}

// Clear drops every queued event
func (er *EventResource) Clear() {
	er.Spawn.Clear()
	er.Kill.Clear()
	er.Fire.Clear()
}

// AudioPlayer defines the minimal audio interface used by game systems
type AudioPlayer interface {
	PlayExplosion(category int) bool
	IsRunning() bool
}

// AudioResource wraps the audio player interface
type AudioResource struct {
	Player AudioPlayer
}
