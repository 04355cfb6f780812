package core

import "testing"

func TestEventQueueDrain(t *testing.T) {
	var q EventQueue

	q.Sound("wing")
	q.Push(SpawnProjectileEvent{X: 120, Y: 262, Direction: 1})

	if q.Len() != 2 {
		t.Fatalf("Len() = %d, expected 2", q.Len())
	}

	events := q.Drain()
	if len(events) != 2 {
		t.Fatalf("Drain() returned %d events, expected 2", len(events))
	}
	if s, ok := events[0].(SoundEvent); !ok || s.Name != "wing" {
		t.Errorf("first event = %#v, expected wing sound", events[0])
	}
	if p, ok := events[1].(SpawnProjectileEvent); !ok || p.Direction != 1 {
		t.Errorf("second event = %#v, expected projectile", events[1])
	}

	if q.Len() != 0 || q.Drain() != nil {
		t.Error("queue should be empty after Drain")
	}
}

func TestNilEventQueue(t *testing.T) {
	var q *EventQueue
	q.Sound("ignored") // Should not panic
	if q.Len() != 0 {
		t.Error("nil queue should report zero length")
	}
}
