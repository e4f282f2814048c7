package views

import (
	"fmt"
	"time"

	"github.com/matheus3301/messenger/internal/tui/model"
	"github.com/matheus3301/messenger/internal/tui/ui"
	"github.com/rivo/tview"
)

// StatusBar displays roster size, the active contact, a clock and flash messages.
type StatusBar struct {
	*tview.TextView
	theme    *ui.Theme
	contacts int
	active   string
	online   bool
	flash    *model.FlashMessage
	now      func() time.Time
}

// NewStatusBar creates a new status bar.
func NewStatusBar(theme *ui.Theme) *StatusBar {
	tv := tview.NewTextView().
		SetDynamicColors(true)
	tv.SetBackgroundColor(theme.BgColor)

	return &StatusBar{TextView: tv, theme: theme, now: time.Now}
}

// SetContacts updates the roster size display.
func (sb *StatusBar) SetContacts(n int) {
	sb.contacts = n
	sb.render()
}

// SetActive updates the active contact display. An empty name means none.
func (sb *StatusBar) SetActive(name string, online bool) {
	sb.active = name
	sb.online = online
	sb.render()
}

// SetFlash sets or clears (nil) the flash message.
func (sb *StatusBar) SetFlash(msg *model.FlashMessage) {
	sb.flash = msg
	sb.render()
}

func (sb *StatusBar) render() {
	sb.Clear()
	_, _ = fmt.Fprint(sb, sb.format())
}

func (sb *StatusBar) format() string {
	active := "no conversation"
	if sb.active != "" {
		color := ui.Tag(sb.theme.OfflineColor)
		if sb.online {
			color = ui.Tag(sb.theme.OnlineColor)
		}
		active = fmt.Sprintf("[%s]%s[-] %s", color, onlineDot, tview.Escape(sb.active))
	}

	line := fmt.Sprintf(" [::b]messenger[-:-:-] | [%s]%d[-] contacts | %s | %s",
		ui.Tag(sb.theme.CounterColor), sb.contacts, active, sb.now().Format("15:04"))

	if sb.flash != nil {
		var color string
		switch sb.flash.Level {
		case model.FlashWarn:
			color = ui.Tag(sb.theme.FlashWarnColor)
		case model.FlashErr:
			color = ui.Tag(sb.theme.FlashErrColor)
		default:
			color = ui.Tag(sb.theme.FlashInfoColor)
		}
		line += fmt.Sprintf(" | [%s]%s[-]", color, tview.Escape(sb.flash.Text))
	}
	return line
}
