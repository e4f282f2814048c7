// Package transcript turns a conversation into annotated display entries and
// holds the composer draft.
package transcript

import (
	"iter"

	"github.com/matheus3301/messenger/internal/chat"
)

// Entry is one message annotated for display.
type Entry struct {
	Message chat.Message
	// Own is true for messages from the local user (right-aligned).
	Own bool
	// ShowAvatar is true for a remote message that starts a run of
	// consecutive messages from the same sender.
	ShowAvatar bool
	// Receipt marks local-user messages that carry the read flag.
	Receipt bool
}

// Render yields msgs in order as display entries. The sequence is lazy and
// finite, and ranging over it again starts from the first message.
func Render(msgs []chat.Message) iter.Seq[Entry] {
	return func(yield func(Entry) bool) {
		for i, m := range msgs {
			own := m.FromLocalUser()
			e := Entry{
				Message:    m,
				Own:        own,
				ShowAvatar: !own && (i == 0 || msgs[i-1].SenderID != m.SenderID),
				Receipt:    own && m.Read,
			}
			if !yield(e) {
				return
			}
		}
	}
}

// Typing reports whether a typing bubble should follow the transcript of c.
func Typing(c chat.Contact) bool {
	return c.Typing
}
