package store

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/matheus3301/messenger/internal/bus"
	"github.com/matheus3301/messenger/internal/chat"
	"go.uber.org/zap"
)

// EventAppended is published after a message is appended to a conversation.
const EventAppended = "conversation.appended"

// TimestampLayout formats the display timestamp of appended messages.
const TimestampLayout = "15:04"

// Appended is the payload of EventAppended.
type Appended struct {
	ContactID string
	Message   chat.Message
}

// Option configures a Conversations store.
type Option func(*Conversations)

// WithClock sets the wall-clock source used for timestamps.
func WithClock(now func() time.Time) Option {
	return func(c *Conversations) { c.now = now }
}

// WithIDFunc sets the message id generator.
func WithIDFunc(fn func() string) Option {
	return func(c *Conversations) { c.newID = fn }
}

// WithLogger sets the logger.
func WithLogger(l *zap.Logger) Option {
	return func(c *Conversations) { c.logger = l }
}

// Conversations maps contact ids to their ordered message history.
// It is the only writer of that mapping. Sequences are append-only.
type Conversations struct {
	msgs   map[string][]chat.Message
	bus    *bus.Bus
	now    func() time.Time
	newID  func() string
	logger *zap.Logger
}

// New creates an empty store. b may be nil.
func New(b *bus.Bus, opts ...Option) *Conversations {
	c := &Conversations{
		msgs:   make(map[string][]chat.Message),
		bus:    b,
		now:    time.Now,
		newID:  NewMessageID,
		logger: zap.NewNop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// NewMessageID returns a fresh unique message id.
func NewMessageID() string {
	return "m" + uuid.NewString()
}

// Seed appends msgs to the conversation of contactID without publishing events.
func (c *Conversations) Seed(contactID string, msgs ...chat.Message) {
	c.msgs[contactID] = append(c.msgs[contactID], msgs...)
}

// Messages returns a copy of the conversation for contactID in display order.
// The result is empty, never nil, when no conversation exists yet.
func (c *Conversations) Messages(contactID string) []chat.Message {
	seq := c.msgs[contactID]
	out := make([]chat.Message, len(seq))
	copy(out, seq)
	return out
}

// Len returns the number of messages in the conversation for contactID.
func (c *Conversations) Len(contactID string) int {
	return len(c.msgs[contactID])
}

// Last returns the newest message of the conversation for contactID.
func (c *Conversations) Last(contactID string) (chat.Message, bool) {
	seq := c.msgs[contactID]
	if len(seq) == 0 {
		return chat.Message{}, false
	}
	return seq[len(seq)-1], true
}

// Append adds a text message from the local user to the end of the
// conversation for contactID, creating it if needed. Content is trimmed; if
// nothing is left the call is a no-op and returns false.
func (c *Conversations) Append(contactID, content string) (chat.Message, bool) {
	content = strings.TrimSpace(content)
	if content == "" {
		return chat.Message{}, false
	}

	now := c.now()
	m := chat.Message{
		ID:        c.newID(),
		SenderID:  chat.LocalUser,
		Content:   content,
		Timestamp: now.Format(TimestampLayout),
		Type:      chat.TypeText,
		Read:      true,
	}
	c.msgs[contactID] = append(c.msgs[contactID], m)

	c.logger.Debug("message appended",
		zap.String("contact", contactID),
		zap.String("msg_id", m.ID),
		zap.Int("len", len(c.msgs[contactID])))

	if c.bus != nil {
		c.bus.Publish(bus.Event{
			Kind:      EventAppended,
			Timestamp: now,
			Payload:   Appended{ContactID: contactID, Message: m},
		})
	}
	return m, true
}
