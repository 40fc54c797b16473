package ecs

// Event is a world-level notification pushed by systems and receivers and
// drained by the game loop.
type Event struct {
	Type string
	Data any
}

const (
	EventScore  = "score"
	EventHazard = "hazard"
)

// ScoreEvent reports points collected from a pickup.
type ScoreEvent struct {
	Entity Entity
	Points int
}

// HazardEvent reports an entity sent back to its spawn point.
type HazardEvent struct {
	Entity Entity
	Hazard Entity
}

// EventQueue is a simple FIFO queue.
type EventQueue struct {
	items []Event
}

// Push adds an event.
func (q *EventQueue) Push(evt Event) {
	if q == nil {
		return
	}
	q.items = append(q.items, evt)
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

// Len returns the number of queued events.
func (q *EventQueue) Len() int {
	if q == nil {
		return 0
	}
	return len(q.items)
}
