package ui

import (
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
)

// Prompt is the ':' command input bar.
type Prompt struct {
	*tview.InputField
	theme    *Theme
	onSubmit func(text string)
	onCancel func()
}

// NewPrompt creates a new command prompt.
func NewPrompt(theme *Theme) *Prompt {
	input := tview.NewInputField().
		SetLabel(":").
		SetFieldWidth(0)
	input.SetBorder(true)
	input.SetBorderColor(theme.PromptBorderColor)
	input.SetBackgroundColor(theme.BgColor)
	input.SetFieldBackgroundColor(theme.BgColor)
	input.SetFieldTextColor(theme.FgColor)
	input.SetLabelColor(theme.MenuKeyColor)
	input.SetTitle(" Command ")

	p := &Prompt{
		InputField: input,
		theme:      theme,
	}

	input.SetDoneFunc(func(key tcell.Key) {
		switch key {
		case tcell.KeyEnter:
			p.Submit()
		case tcell.KeyEscape:
			p.Cancel()
		}
	})

	return p
}

// SetOnSubmit sets the callback when the prompt is submitted.
func (p *Prompt) SetOnSubmit(fn func(text string)) {
	p.onSubmit = fn
}

// SetOnCancel sets the callback when the prompt is cancelled.
func (p *Prompt) SetOnCancel(fn func()) {
	p.onCancel = fn
}

// Submit hands the typed command to the submit callback and clears the field.
// An empty command cancels instead.
func (p *Prompt) Submit() {
	text := p.GetText()
	p.SetText("")
	if text == "" {
		if p.onCancel != nil {
			p.onCancel()
		}
		return
	}
	if p.onSubmit != nil {
		p.onSubmit(text)
	}
}

// Cancel clears the field and fires the cancel callback.
func (p *Prompt) Cancel() {
	p.SetText("")
	if p.onCancel != nil {
		p.onCancel()
	}
}
