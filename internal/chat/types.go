package chat

// LocalUser is the sender id used for messages authored by the local user.
const LocalUser = "me"

// MessageType tags the payload kind of a message. Only text is rendered as content.
type MessageType string

const (
	TypeText  MessageType = "text"
	TypeImage MessageType = "image"
	TypeFile  MessageType = "file"
)

// Contact is a roster entry.
// LastMessage and LastMessageTime are display values from the seed and are not
// kept in step with the conversation.
type Contact struct {
	ID              string `toml:"id"`
	Name            string `toml:"name"`
	Avatar          string `toml:"avatar"`
	Online          bool   `toml:"online"`
	UnreadCount     int    `toml:"unread_count"`
	Typing          bool   `toml:"typing"`
	LastMessage     string `toml:"last_message"`
	LastMessageTime string `toml:"last_message_time"`
}

// Message is a single entry of a conversation.
type Message struct {
	ID        string      `toml:"id"`
	SenderID  string      `toml:"sender"`
	Content   string      `toml:"content"`
	Timestamp string      `toml:"timestamp"`
	Type      MessageType `toml:"type"`
	Read      bool        `toml:"read"`
}

// FromLocalUser reports whether the message was authored by the local user.
func (m Message) FromLocalUser() bool {
	return m.SenderID == LocalUser
}
