package views

import (
	"fmt"
	"iter"

	"github.com/gdamore/tcell/v2"
	"github.com/matheus3301/messenger/internal/chat"
	"github.com/matheus3301/messenger/internal/transcript"
	"github.com/matheus3301/messenger/internal/tui/ui"
	"github.com/rivo/tview"
)

// ChatWindow displays the active conversation: a header, the transcript and
// the composer.
type ChatWindow struct {
	*tview.Flex
	theme      *ui.Theme
	header     *tview.TextView
	transcript *TranscriptView
	composer   *tview.InputField
	contact    chat.Contact
	active     bool
	onSubmit   func()
	onDraft    func(text string)
}

// NewChatWindow creates a new chat window.
func NewChatWindow(theme *ui.Theme) *ChatWindow {
	header := tview.NewTextView().
		SetDynamicColors(true)
	header.SetBackgroundColor(theme.BgColor)
	header.SetBorderPadding(0, 0, 1, 1)

	tr := NewTranscriptView(theme)

	composer := tview.NewInputField().
		SetLabel(" > ").
		SetFieldWidth(0)
	composer.SetBorder(true)
	composer.SetBorderColor(theme.BorderColor)
	composer.SetBackgroundColor(theme.BgColor)
	composer.SetFieldBackgroundColor(theme.BgColor)
	composer.SetFieldTextColor(theme.FgColor)
	composer.SetLabelColor(theme.MenuKeyColor)
	composer.SetPlaceholderTextColor(theme.MutedColor)
	composer.SetTitleAlign(tview.AlignRight)

	flex := tview.NewFlex().
		SetDirection(tview.FlexRow).
		AddItem(header, 2, 0, false).
		AddItem(tr, 0, 1, false).
		AddItem(composer, 3, 0, true)
	flex.SetBorder(true)
	flex.SetBorderColor(theme.BorderColor)
	flex.SetBackgroundColor(theme.BgColor)

	cw := &ChatWindow{
		Flex:       flex,
		theme:      theme,
		header:     header,
		transcript: tr,
		composer:   composer,
	}

	composer.SetChangedFunc(func(text string) {
		if cw.onDraft != nil {
			cw.onDraft(text)
		}
	})
	composer.SetDoneFunc(func(key tcell.Key) {
		if key == tcell.KeyEnter {
			cw.Submit()
		}
	})

	cw.SetCanSend(false)
	return cw
}

// Name implements Component.
func (cw *ChatWindow) Name() string {
	if cw.active {
		return cw.contact.Name
	}
	return "Chat"
}

// Hints implements Component.
func (cw *ChatWindow) Hints() []ui.MenuHint {
	return []ui.MenuHint{
		{Key: "i", Description: "Compose"},
		{Key: "Enter", Description: "Send"},
		{Key: "d", Description: "Details"},
		{Key: "Esc", Description: "Back"},
	}
}

// SetOnSubmit sets the callback for Enter in the composer.
func (cw *ChatWindow) SetOnSubmit(fn func()) {
	cw.onSubmit = fn
}

// SetOnDraftChanged sets the callback fired on every composer edit.
func (cw *ChatWindow) SetOnDraftChanged(fn func(text string)) {
	cw.onDraft = fn
}

// Submit fires the submit callback.
func (cw *ChatWindow) Submit() {
	if cw.onSubmit != nil {
		cw.onSubmit()
	}
}

// SetDraft replaces the composer text when it differs.
func (cw *ChatWindow) SetDraft(text string) {
	if cw.composer.GetText() != text {
		cw.composer.SetText(text)
	}
}

// Draft returns the composer text.
func (cw *ChatWindow) Draft() string {
	return cw.composer.GetText()
}

// SetCanSend dims the send affordance while there is nothing to send.
func (cw *ChatWindow) SetCanSend(ok bool) {
	if ok {
		cw.composer.SetTitle(" Send ⏎ ")
		cw.composer.SetTitleColor(cw.theme.MenuKeyColor)
		cw.composer.SetBorderColor(cw.theme.BorderFocusColor)
		return
	}
	cw.composer.SetTitle(" Send ")
	cw.composer.SetTitleColor(cw.theme.MutedColor)
	cw.composer.SetBorderColor(cw.theme.BorderColor)
}

// Update shows contact's conversation. active is false when nothing is selected.
func (cw *ChatWindow) Update(contact chat.Contact, active bool, entries iter.Seq[transcript.Entry]) {
	cw.contact = contact
	cw.active = active
	cw.renderHeader()
	cw.transcript.Update(contact, active, entries)

	if active {
		cw.composer.SetPlaceholder(fmt.Sprintf("Message %s...", contact.Name))
	} else {
		cw.composer.SetPlaceholder("")
	}
}

func (cw *ChatWindow) renderHeader() {
	cw.header.Clear()
	if !cw.active {
		cw.SetTitle("")
		return
	}
	cw.SetTitle(fmt.Sprintf(" %s ", tview.Escape(cw.contact.Name)))
	cw.SetTitleColor(cw.theme.TitleColor)

	dot, color, presence := offlineDot, cw.theme.OfflineColor, "Last seen recently"
	if cw.contact.Online {
		dot, color, presence = onlineDot, cw.theme.OnlineColor, "Active now"
	}
	_, _ = fmt.Fprintf(cw.header, "[%s]%s[-] [::b]%s[-:-:-]\n[%s]%s[-]",
		ui.Tag(color), dot,
		tview.Escape(cleanText(cw.contact.Name)),
		ui.Tag(cw.theme.MutedColor), presence)
}

// Transcript returns the transcript pane (for focus management).
func (cw *ChatWindow) Transcript() *TranscriptView {
	return cw.transcript
}

// Composer returns the composer input field (for focus management).
func (cw *ChatWindow) Composer() *tview.InputField {
	return cw.composer
}
