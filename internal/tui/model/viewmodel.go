package model

import (
	"fmt"
	"iter"

	"github.com/matheus3301/messenger/internal/bus"
	"github.com/matheus3301/messenger/internal/chat"
	"github.com/matheus3301/messenger/internal/mockdata"
	"github.com/matheus3301/messenger/internal/selection"
	"github.com/matheus3301/messenger/internal/store"
	"github.com/matheus3301/messenger/internal/transcript"
	"go.uber.org/zap"
)

// EventFiltered is published when the roster filter changes.
const EventFiltered = "roster.filtered"

// ViewModel owns the application state the views render: roster,
// conversations, active contact, composer draft and roster filter.
// It is driven from the UI event goroutine only.
type ViewModel struct {
	Roster    *chat.Roster
	Store     *store.Conversations
	Selection *selection.Controller
	Flash     Flash

	bus    *bus.Bus
	draft  transcript.Draft
	filter string
	logger *zap.Logger
}

// NewViewModel builds the state from seed data.
func NewViewModel(seed *mockdata.Seed, initial selection.Initial, b *bus.Bus, logger *zap.Logger, opts ...store.Option) (*ViewModel, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	if b == nil {
		b = bus.New()
	}

	roster, err := chat.NewRoster(seed.Contacts)
	if err != nil {
		return nil, fmt.Errorf("build roster: %w", err)
	}

	opts = append([]store.Option{store.WithLogger(logger)}, opts...)
	conversations := store.New(b, opts...)
	for _, conv := range seed.Conversations {
		conversations.Seed(conv.Contact, conv.Messages...)
	}

	vm := &ViewModel{
		Roster:    roster,
		Store:     conversations,
		Selection: selection.New(roster, b, initial),
		bus:       b,
		logger:    logger,
	}
	logger.Info("state initialized",
		zap.Int("contacts", roster.Len()),
		zap.Int("conversations", len(seed.Conversations)),
		zap.String("active", vm.Selection.ActiveID()))
	return vm, nil
}

// Subscribe registers fn for state events under namespace.
func (vm *ViewModel) Subscribe(namespace string, fn bus.Handler) func() {
	return vm.bus.Subscribe(namespace, fn)
}

// SelectContact makes id the active conversation. Unknown ids are ignored.
func (vm *ViewModel) SelectContact(id string) bool {
	if !vm.Selection.Select(id) {
		vm.logger.Debug("ignored selection of unknown contact", zap.String("contact", id))
		return false
	}
	return true
}

// Active returns the active contact.
func (vm *ViewModel) Active() (chat.Contact, bool) {
	return vm.Selection.Current()
}

// SetFilter changes the roster name filter.
func (vm *ViewModel) SetFilter(query string) {
	if query == vm.filter {
		return
	}
	vm.filter = query
	vm.bus.Publish(bus.Event{Kind: EventFiltered, Payload: query})
}

// Filter returns the current roster filter.
func (vm *ViewModel) Filter() string {
	return vm.filter
}

// VisibleContacts returns the roster filtered by the current filter.
func (vm *ViewModel) VisibleContacts() []chat.Contact {
	return vm.Roster.Filter(vm.filter)
}

// Rows returns display rows for the visible contacts. Previews come from the
// newest message of each conversation when there is one.
func (vm *ViewModel) Rows() []chat.Row {
	visible := vm.VisibleContacts()
	rows := make([]chat.Row, 0, len(visible))
	for _, c := range visible {
		rows = append(rows, vm.Row(c))
	}
	return rows
}

// Row returns the display row for c.
func (vm *ViewModel) Row(c chat.Contact) chat.Row {
	if last, ok := vm.Store.Last(c.ID); ok {
		return chat.RowFor(c, &last)
	}
	return chat.RowFor(c, nil)
}

// Messages returns the conversation for contactID.
func (vm *ViewModel) Messages(contactID string) []chat.Message {
	return vm.Store.Messages(contactID)
}

// Transcript returns the annotated entries of the active conversation.
// It is empty when nothing is selected.
func (vm *ViewModel) Transcript() iter.Seq[transcript.Entry] {
	c, ok := vm.Active()
	if !ok {
		return transcript.Render(nil)
	}
	return transcript.Render(vm.Store.Messages(c.ID))
}

// SetDraft replaces the composer text.
func (vm *ViewModel) SetDraft(text string) {
	vm.draft.SetText(text)
}

// Draft returns the composer text.
func (vm *ViewModel) Draft() string {
	return vm.draft.Text()
}

// CanSend reports whether submitting now would append a message.
func (vm *ViewModel) CanSend() bool {
	_, ok := vm.Active()
	return ok && vm.draft.CanSubmit()
}

// Send appends the trimmed draft to the active conversation and clears the
// draft. It is a no-op for a blank draft or when no contact is active.
func (vm *ViewModel) Send() bool {
	c, ok := vm.Active()
	if !ok {
		if vm.draft.CanSubmit() {
			vm.Flash.Warn("Select a conversation first")
		}
		return false
	}
	return vm.draft.Submit(func(content string) bool {
		m, ok := vm.Store.Append(c.ID, content)
		if ok {
			vm.logger.Info("message sent", zap.String("contact", c.ID), zap.String("msg_id", m.ID))
		}
		return ok
	})
}
