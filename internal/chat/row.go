package chat

import (
	"strconv"

	"github.com/mattn/go-runewidth"
)

// TypingIndicator replaces the preview while a contact is typing.
const TypingIndicator = "typing…"

// PreviewWidth is the maximum display width of a roster preview.
const PreviewWidth = 36

// Row holds the display values of a single roster entry.
type Row struct {
	ID      string
	Name    string
	Preview string
	Time    string
	Badge   string // empty when there is nothing unread
	Online  bool
	Typing  bool
}

// RowFor computes the display values for c. When last is non-nil the preview
// and time come from it; otherwise the seeded values of c are used.
func RowFor(c Contact, last *Message) Row {
	row := Row{
		ID:      c.ID,
		Name:    c.Name,
		Preview: c.LastMessage,
		Time:    c.LastMessageTime,
		Online:  c.Online,
		Typing:  c.Typing,
	}
	if last != nil {
		row.Preview = previewOf(*last)
		row.Time = last.Timestamp
	}
	if c.Typing {
		row.Preview = TypingIndicator
	}
	row.Preview = runewidth.Truncate(row.Preview, PreviewWidth, "…")
	if c.UnreadCount > 0 {
		row.Badge = strconv.Itoa(c.UnreadCount)
	}
	return row
}

func previewOf(m Message) string {
	var s string
	switch m.Type {
	case TypeImage:
		s = "[image]"
	case TypeFile:
		s = "[file]"
	default:
		s = m.Content
	}
	if m.FromLocalUser() {
		return "You: " + s
	}
	return s
}
