package model

import "time"

// FlashLevel is the severity of a flash message.
type FlashLevel int

const (
	FlashInfo FlashLevel = iota
	FlashWarn
	FlashErr
)

// FlashMessage is a transient notification.
type FlashMessage struct {
	Text    string
	Level   FlashLevel
	Expires time.Time
}

// Flash holds the current transient notification.
type Flash struct {
	current FlashMessage
	now     func() time.Time
}

func (f *Flash) clock() time.Time {
	if f.now != nil {
		return f.now()
	}
	return time.Now()
}

// Info shows msg for five seconds.
func (f *Flash) Info(msg string) {
	f.Set(msg, FlashInfo, 5*time.Second)
}

// Warn shows msg for eight seconds.
func (f *Flash) Warn(msg string) {
	f.Set(msg, FlashWarn, 8*time.Second)
}

// Set stores a flash message that expires after d.
func (f *Flash) Set(msg string, level FlashLevel, d time.Duration) {
	f.current = FlashMessage{
		Text:    msg,
		Level:   level,
		Expires: f.clock().Add(d),
	}
}

// Get returns the current flash message, or nil once it has expired.
func (f *Flash) Get() *FlashMessage {
	if f.current.Text == "" || f.clock().After(f.current.Expires) {
		return nil
	}
	m := f.current
	return &m
}
