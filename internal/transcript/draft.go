package transcript

import "strings"

// Draft is the unsent composer text.
type Draft struct {
	text string
}

// SetText replaces the draft.
func (d *Draft) SetText(s string) {
	d.text = s
}

// Text returns the draft as typed.
func (d *Draft) Text() string {
	return d.text
}

// CanSubmit reports whether the trimmed draft is non-empty.
func (d *Draft) CanSubmit() bool {
	return strings.TrimSpace(d.text) != ""
}

// Submit hands the trimmed draft to send and clears the draft when send
// accepts it. A blank draft is left untouched and send is not called.
func (d *Draft) Submit(send func(content string) bool) bool {
	content := strings.TrimSpace(d.text)
	if content == "" {
		return false
	}
	if !send(content) {
		return false
	}
	d.text = ""
	return true
}
