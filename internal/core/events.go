package core

// Event is an intent emitted by a game during a tick. The platform decides
// what to do with it (play audio, spawn entities, log it).
type Event interface {
	gameEvent()
}

// SoundEvent asks the host to play a named sound effect.
type SoundEvent struct {
	Name string
}

func (SoundEvent) gameEvent() {}

// SpawnProjectileEvent reports a projectile fired at (X, Y) travelling along
// Direction (-1 left, +1 right).
type SpawnProjectileEvent struct {
	X, Y      int
	Direction int
}

func (SpawnProjectileEvent) gameEvent() {}

// EventQueue is a FIFO of events collected during a tick.
type EventQueue struct {
	items []Event
}

// Push appends an event. A nil queue discards it.
func (q *EventQueue) Push(evt Event) {
	if q == nil {
		return
	}
	q.items = append(q.items, evt)
}

// Sound is shorthand for Push(SoundEvent{Name: name}).
func (q *EventQueue) Sound(name string) {
	q.Push(SoundEvent{Name: name})
}

// Len returns the number of queued events.
func (q *EventQueue) Len() int {
	if q == nil {
		return 0
	}
	return len(q.items)
}

// Drain returns all events and clears the queue.
func (q *EventQueue) Drain() []Event {
	if q == nil || len(q.items) == 0 {
		return nil
	}
	out := q.items
	q.items = nil
	return out
}
