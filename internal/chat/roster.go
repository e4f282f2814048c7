package chat

import (
	"errors"
	"fmt"
	"strings"
)

// ErrDuplicateContact is returned when two roster entries share an id.
var ErrDuplicateContact = errors.New("duplicate contact id")

// Roster is the ordered, immutable list of known contacts.
type Roster struct {
	contacts []Contact
	index    map[string]int
}

// NewRoster validates contacts and builds a roster preserving their order.
func NewRoster(contacts []Contact) (*Roster, error) {
	r := &Roster{
		contacts: make([]Contact, 0, len(contacts)),
		index:    make(map[string]int, len(contacts)),
	}
	for _, c := range contacts {
		if c.ID == "" {
			return nil, fmt.Errorf("contact %q: empty id", c.Name)
		}
		if _, ok := r.index[c.ID]; ok {
			return nil, fmt.Errorf("contact %q: %w", c.ID, ErrDuplicateContact)
		}
		if c.UnreadCount < 0 {
			return nil, fmt.Errorf("contact %q: negative unread count %d", c.ID, c.UnreadCount)
		}
		r.index[c.ID] = len(r.contacts)
		r.contacts = append(r.contacts, c)
	}
	return r, nil
}

// Len returns the number of contacts.
func (r *Roster) Len() int {
	return len(r.contacts)
}

// All returns a copy of the roster in order.
func (r *Roster) All() []Contact {
	out := make([]Contact, len(r.contacts))
	copy(out, r.contacts)
	return out
}

// Get returns the contact with the given id.
func (r *Roster) Get(id string) (Contact, bool) {
	i, ok := r.index[id]
	if !ok {
		return Contact{}, false
	}
	return r.contacts[i], true
}

// Index returns the roster position of id, or -1.
func (r *Roster) Index(id string) int {
	if i, ok := r.index[id]; ok {
		return i
	}
	return -1
}

// First returns the first roster entry, if any.
func (r *Roster) First() (Contact, bool) {
	if len(r.contacts) == 0 {
		return Contact{}, false
	}
	return r.contacts[0], true
}

// Filter returns contacts whose name contains query, ignoring case.
// Roster order is kept. An empty or blank query matches everything.
func (r *Roster) Filter(query string) []Contact {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return r.All()
	}
	var out []Contact
	for _, c := range r.contacts {
		if strings.Contains(strings.ToLower(c.Name), q) {
			out = append(out, c)
		}
	}
	return out
}
