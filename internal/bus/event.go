package bus

import "time"

// Event is a state change published on the bus.
type Event struct {
	Kind      string
	Timestamp time.Time
	Payload   any
}

// Handler receives events. It runs on the publisher's goroutine.
type Handler func(Event)
