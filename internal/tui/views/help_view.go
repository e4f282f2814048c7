package views

import (
	"fmt"
	"strings"

	"github.com/matheus3301/messenger/internal/tui/ui"
	"github.com/rivo/tview"
)

// HelpView displays key binding reference.
type HelpView struct {
	*tview.TextView
	theme *ui.Theme
}

// NewHelpView creates a new help view.
func NewHelpView(theme *ui.Theme) *HelpView {
	tv := tview.NewTextView().
		SetDynamicColors(true).
		SetScrollable(true)
	tv.SetBorder(true)
	tv.SetBorderColor(theme.BorderColor)
	tv.SetBackgroundColor(theme.BgColor)
	tv.SetTextColor(theme.FgColor)
	tv.SetTitle(" Help ")
	tv.SetTitleColor(theme.TitleColor)

	hv := &HelpView{
		TextView: tv,
		theme:    theme,
	}
	_, _ = fmt.Fprint(hv, hv.format())
	return hv
}

// Name implements Component.
func (hv *HelpView) Name() string { return "Help" }

// Hints implements Component.
func (hv *HelpView) Hints() []ui.MenuHint {
	return []ui.MenuHint{
		{Key: "Esc", Description: "Back"},
	}
}

var helpSections = []struct {
	title string
	keys  [][2]string
}{
	{"Global", [][2]string{
		{":", "Command mode"},
		{"/", "Search contacts"},
		{"?", "Help"},
		{"Tab", "Switch between contacts and chat"},
		{"Esc", "Leave input / go back"},
		{"q", "Quit"},
	}},
	{"Contacts", [][2]string{
		{"Enter", "Open conversation"},
		{"1-9", "Open Nth visible contact"},
		{"j/k", "Move down / up"},
	}},
	{"Chat", [][2]string{
		{"i", "Focus composer"},
		{"Enter", "Send message (in composer)"},
		{"d", "Contact details"},
	}},
	{"Commands", [][2]string{
		{":open <name>", "Open the first contact matching name"},
		{":filter <text>", "Filter contacts (empty clears)"},
		{":close", "Close the conversation"},
		{":details", "Contact details"},
		{":help", "Show this help"},
		{":quit", "Quit"},
	}},
}

func (hv *HelpView) format() string {
	kc := ui.Tag(hv.theme.MenuKeyColor)
	var b strings.Builder
	for _, s := range helpSections {
		_, _ = fmt.Fprintf(&b, "\n  [::b]%s[-:-:-]\n\n", s.title)
		for _, k := range s.keys {
			_, _ = fmt.Fprintf(&b, "  [%s]%-16s[-] %s\n", kc, tview.Escape(k[0]), k[1])
		}
	}
	return b.String()
}
