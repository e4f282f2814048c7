package selection

import (
	"fmt"
	"time"

	"github.com/matheus3301/messenger/internal/bus"
	"github.com/matheus3301/messenger/internal/chat"
)

// EventChanged is published when the active contact changes.
const EventChanged = "selection.changed"

// Initial names the starting state of a Controller.
type Initial string

const (
	InitialFirst Initial = "first"
	InitialNone  Initial = "none"
)

// ParseInitial validates an initial-selection setting. Empty means InitialFirst.
func ParseInitial(s string) (Initial, error) {
	switch Initial(s) {
	case "", InitialFirst:
		return InitialFirst, nil
	case InitialNone:
		return InitialNone, nil
	}
	return "", fmt.Errorf("invalid initial selection %q: want %q or %q", s, InitialFirst, InitialNone)
}

// Change is the payload of EventChanged. An empty id means none selected.
type Change struct {
	From string
	To   string
}

// Controller tracks which single contact is active.
// It has two states: none selected and contact selected. Only ids present in
// the roster can be selected.
type Controller struct {
	roster *chat.Roster
	bus    *bus.Bus
	active string
}

// New creates a controller over roster. b may be nil.
func New(roster *chat.Roster, b *bus.Bus, initial Initial) *Controller {
	c := &Controller{roster: roster, bus: b}
	if initial == InitialFirst {
		if first, ok := roster.First(); ok {
			c.active = first.ID
		}
	}
	return c
}

// Select makes id the active contact. Unknown ids are ignored and false is returned.
func (c *Controller) Select(id string) bool {
	if _, ok := c.roster.Get(id); !ok {
		return false
	}
	c.transition(id)
	return true
}

// Clear returns to the none-selected state.
func (c *Controller) Clear() {
	c.transition("")
}

// Current returns the active contact, or false when none is selected.
func (c *Controller) Current() (chat.Contact, bool) {
	if c.active == "" {
		return chat.Contact{}, false
	}
	return c.roster.Get(c.active)
}

// ActiveID returns the active contact id, or empty.
func (c *Controller) ActiveID() string {
	return c.active
}

// IsActive reports whether id is the active contact.
func (c *Controller) IsActive(id string) bool {
	return id != "" && c.active == id
}

func (c *Controller) transition(to string) {
	from := c.active
	if from == to {
		return
	}
	c.active = to
	if c.bus != nil {
		c.bus.Publish(bus.Event{
			Kind:      EventChanged,
			Timestamp: time.Now(),
			Payload:   Change{From: from, To: to},
		})
	}
}
