package event

import "sync"

// Queue is a FIFO of events of one type
// Thread-Safety:
//   - Push: any goroutine
//   - Drain: single consumer system, once per tick
type Queue[T any] struct {
	mu    sync.Mutex
	items []T
	kind  EventType
}

// NewQueue creates an empty queue for events of kind
func NewQueue[T any](kind EventType) *Queue[T] {
	return &Queue[T]{kind: kind}
}

// Type returns the event kind carried by the queue
func (q *Queue[T]) Type() EventType {
	return q.kind
}

// Push appends an event
func (q *Queue[T]) Push(ev T) {
	q.mu.Lock()
	q.items = append(q.items, ev)
	q.mu.Unlock()
}

// Drain returns all pending events in push order and empties the queue
func (q *Queue[T]) Drain() []T {
	q.mu.Lock()
	defer q.mu.Unlock()
	if len(q.items) == 0 {
		return nil
	}
	out := q.items
	q.items = nil
	return out
}

// Len returns the number of pending events
func (q *Queue[T]) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.items)
}

// Pending reports whether any event is waiting
func (q *Queue[T]) Pending() bool {
	return q.Len() > 0
}

// Clear discards pending events
func (q *Queue[T]) Clear() {
	q.mu.Lock()
	q.items = nil
	q.mu.Unlock()
}
