// Package event defines the messages exchanged between systems within a tick
package event

// EventType names a message kind for logging
type EventType int

const (
	// EventSpawnRequest asks for a new asteroid
	// Trigger: SeedSystem on an empty field, CollisionSystem on a split
	// Consumer: BirthSystem | Payload: SpawnRequest
	EventSpawnRequest EventType = iota

	// EventKill reports a destroyed asteroid
	// Trigger: CollisionSystem
	// Consumer: ExplosionSystem | Payload: KillEvent
	EventKill

	// EventFire launches a missile
	// Trigger: Input collaborator on the fire key edge
	// Consumer: FireSystem | Payload: FireRequest
	EventFire
)

func (t EventType) String() string {
	switch t {
	case EventSpawnRequest:
		return "spawn_request"
	case EventKill:
		return "kill"
	case EventFire:
		return "fire"
	default:
		return "unknown"
	}
}
