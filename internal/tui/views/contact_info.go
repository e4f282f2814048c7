package views

import (
	"fmt"

	"github.com/matheus3301/messenger/internal/chat"
	"github.com/matheus3301/messenger/internal/tui/ui"
	"github.com/rivo/tview"
)

// ContactInfo displays details about the active contact.
type ContactInfo struct {
	*tview.TextView
	theme *ui.Theme
}

// NewContactInfo creates a new contact details view.
func NewContactInfo(theme *ui.Theme) *ContactInfo {
	tv := tview.NewTextView().
		SetDynamicColors(true)
	tv.SetBorder(true)
	tv.SetBorderColor(theme.BorderColor)
	tv.SetBackgroundColor(theme.BgColor)
	tv.SetTextColor(theme.FgColor)
	tv.SetTitle(" Contact Details ")
	tv.SetTitleColor(theme.TitleColor)

	return &ContactInfo{
		TextView: tv,
		theme:    theme,
	}
}

// Name implements Component.
func (ci *ContactInfo) Name() string { return "Details" }

// Hints implements Component.
func (ci *ContactInfo) Hints() []ui.MenuHint {
	return []ui.MenuHint{
		{Key: "Esc", Description: "Back"},
	}
}

// Update renders details for c; messages is the conversation length.
func (ci *ContactInfo) Update(c chat.Contact, messages int) {
	ci.Clear()

	fg := ui.Tag(ci.theme.FgColor)
	ct := ui.Tag(ci.theme.CounterColor)

	status := "Last seen recently"
	if c.Online {
		status = "Active now"
	}
	if c.Typing {
		status += ", typing"
	}

	avatar := c.Avatar
	if avatar == "" {
		avatar = "-"
	}

	_, _ = fmt.Fprintf(ci,
		"\n [%s::b]Name:[-:-:-]     [%s]%s[-]\n"+
			" [%s::b]ID:[-:-:-]       [%s]%s[-]\n"+
			" [%s::b]Status:[-:-:-]   [%s]%s[-]\n"+
			" [%s::b]Unread:[-:-:-]   [%s]%d[-]\n"+
			" [%s::b]Messages:[-:-:-] [%s]%d[-]\n"+
			" [%s::b]Avatar:[-:-:-]   [%s]%s[-]",
		fg, ct, tview.Escape(cleanText(c.Name)),
		fg, ct, tview.Escape(c.ID),
		fg, ct, status,
		fg, ct, c.UnreadCount,
		fg, ct, messages,
		fg, ct, tview.Escape(avatar),
	)
	ci.SetTitle(fmt.Sprintf(" %s ", tview.Escape(c.Name)))
}
