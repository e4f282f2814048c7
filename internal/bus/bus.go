package bus

import (
	"strings"
	"time"
)

// Bus is a synchronous in-process publish/subscribe bus with namespace filtering.
// Handlers run inline, in subscription order, before Publish returns. It is
// meant to be used from the single UI event goroutine and is not safe for
// concurrent use.
type Bus struct {
	subs []*subscription
	next int
}

type subscription struct {
	id        int
	namespace string
	fn        Handler
}

// New creates an empty bus.
func New() *Bus {
	return &Bus{}
}

// Publish delivers evt to every handler whose namespace is a prefix of evt.Kind.
// A zero Timestamp is filled in with the current time.
func (b *Bus) Publish(evt Event) {
	if evt.Timestamp.IsZero() {
		evt.Timestamp = time.Now()
	}
	// Snapshot so handlers may unsubscribe while being called.
	subs := make([]*subscription, len(b.subs))
	copy(subs, b.subs)
	for _, sub := range subs {
		if strings.HasPrefix(evt.Kind, sub.namespace) {
			sub.fn(evt)
		}
	}
}

// Subscribe registers fn for events whose kind starts with namespace.
// An empty namespace matches everything. Returns an unsubscribe function.
func (b *Bus) Subscribe(namespace string, fn Handler) func() {
	id := b.next
	b.next++
	b.subs = append(b.subs, &subscription{id: id, namespace: namespace, fn: fn})

	return func() {
		for i, sub := range b.subs {
			if sub.id == id {
				b.subs = append(b.subs[:i], b.subs[i+1:]...)
				return
			}
		}
	}
}

// Len returns the number of active subscriptions.
func (b *Bus) Len() int {
	return len(b.subs)
}
