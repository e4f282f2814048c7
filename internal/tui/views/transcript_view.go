package views

import (
	"fmt"
	"iter"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/matheus3301/messenger/internal/chat"
	"github.com/matheus3301/messenger/internal/transcript"
	"github.com/matheus3301/messenger/internal/tui/ui"
	"github.com/mattn/go-runewidth"
	"github.com/rivo/tview"
	"github.com/rivo/uniseg"
)

const (
	receiptMark  = "✓"
	typingBubble = "• • •"
	minBubble    = 16
	// used until the pane has been laid out
	fallbackWidth = 60
)

// TranscriptView renders the active conversation as chat bubbles. Own
// messages are right-aligned; text is re-wrapped whenever the pane width changes.
type TranscriptView struct {
	*tview.TextView
	theme   *ui.Theme
	contact chat.Contact
	active  bool
	entries iter.Seq[transcript.Entry]
	width   int
}

// NewTranscriptView creates an empty transcript pane.
func NewTranscriptView(theme *ui.Theme) *TranscriptView {
	tv := tview.NewTextView().
		SetDynamicColors(true).
		SetScrollable(true).
		SetWrap(false)
	tv.SetBackgroundColor(theme.BgColor)
	tv.SetTextColor(theme.FgColor)
	tv.SetBorderPadding(0, 0, 1, 1)

	return &TranscriptView{TextView: tv, theme: theme}
}

// Update replaces the conversation and scrolls to the newest message.
// entries must be restartable; it is ranged over again on resize.
func (t *TranscriptView) Update(contact chat.Contact, active bool, entries iter.Seq[transcript.Entry]) {
	t.contact = contact
	t.active = active
	t.entries = entries
	_, _, t.width, _ = t.GetInnerRect()
	t.render()
}

// Draw re-renders when the pane was resized since the last render.
func (t *TranscriptView) Draw(screen tcell.Screen) {
	if _, _, w, _ := t.GetInnerRect(); w != t.width {
		t.width = w
		t.render()
	}
	t.TextView.Draw(screen)
}

func (t *TranscriptView) render() {
	t.Clear()
	if !t.active {
		t.SetTextAlign(tview.AlignCenter)
		_, _ = fmt.Fprintf(t, "\n\n[::b]Select a conversation[-:-:-]\n[%s]Choose a contact from the sidebar to start messaging[-]",
			ui.Tag(t.theme.MutedColor))
		return
	}
	width := t.width
	if width <= 0 {
		width = fallbackWidth
	}
	t.SetTextAlign(tview.AlignLeft)
	_, _ = fmt.Fprint(t, formatTranscript(t.entries, t.contact, width, t.theme))
	t.ScrollToEnd()
}

// formatTranscript lays out entries for a pane width columns wide.
func formatTranscript(entries iter.Seq[transcript.Entry], contact chat.Contact, width int, theme *ui.Theme) string {
	if entries == nil {
		entries = transcript.Render(nil)
	}
	bubble := max(min(width, minBubble), width*2/3)
	avatar := initials(contact.Name)
	gutter := runewidth.StringWidth(avatar) + 3 // "(XX) "

	var b strings.Builder
	for e := range entries {
		body := bodyOf(e.Message)
		if e.Own {
			writeOwn(&b, e, body, width, bubble, theme)
		} else {
			writeRemote(&b, e, body, avatar, gutter, bubble, theme)
		}
		b.WriteByte('\n')
	}
	if transcript.Typing(contact) {
		_, _ = fmt.Fprintf(&b, "[%s](%s)[-] [%s]%s[-]\n",
			ui.Tag(theme.TypingColor), tview.Escape(avatar),
			ui.Tag(theme.TypingColor), typingBubble)
	}
	return b.String()
}

func writeOwn(b *strings.Builder, e transcript.Entry, body string, width, bubble int, theme *ui.Theme) {
	color := ui.Tag(theme.OwnBubbleColor)
	for _, line := range wrap(body, bubble) {
		pad := max(0, width-runewidth.StringWidth(line))
		_, _ = fmt.Fprintf(b, "%s[%s]%s[-]\n", strings.Repeat(" ", pad), color, tview.Escape(line))
	}

	meta := e.Message.Timestamp
	metaWidth := runewidth.StringWidth(meta)
	receipt := ""
	if e.Receipt {
		receipt = fmt.Sprintf(" [%s]%s[-]", ui.Tag(theme.ReceiptColor), receiptMark)
		metaWidth += 1 + runewidth.StringWidth(receiptMark)
	}
	pad := max(0, width-metaWidth)
	_, _ = fmt.Fprintf(b, "%s[%s]%s[-]%s\n", strings.Repeat(" ", pad), ui.Tag(theme.MutedColor), tview.Escape(meta), receipt)
}

func writeRemote(b *strings.Builder, e transcript.Entry, body, avatar string, gutter, bubble int, theme *ui.Theme) {
	color := ui.Tag(theme.RemoteBubbleColor)
	blank := strings.Repeat(" ", gutter)
	for i, line := range wrap(body, max(1, bubble-gutter)) {
		prefix := blank
		if i == 0 && e.ShowAvatar {
			prefix = fmt.Sprintf("[%s::b](%s)[-:-:-] ", ui.Tag(theme.TitleColor), tview.Escape(avatar))
		}
		_, _ = fmt.Fprintf(b, "%s[%s]%s[-]\n", prefix, color, tview.Escape(line))
	}
	_, _ = fmt.Fprintf(b, "%s[%s]%s[-]\n", blank, ui.Tag(theme.MutedColor), tview.Escape(e.Message.Timestamp))
}

func bodyOf(m chat.Message) string {
	switch m.Type {
	case chat.TypeImage:
		return "[image]"
	case chat.TypeFile:
		return "[file]"
	}
	return cleanText(m.Content)
}

// wrap splits s into lines no wider than w columns.
func wrap(s string, w int) []string {
	if w < 1 {
		w = 1
	}
	var lines []string
	for _, para := range strings.Split(s, "\n") {
		lines = append(lines, wrapWords(para, w)...)
	}
	return lines
}

func wrapWords(s string, w int) []string {
	words := strings.Fields(s)
	if len(words) == 0 {
		return []string{""}
	}
	var lines []string
	var cur strings.Builder
	curWidth := 0
	for _, word := range words {
		ww := runewidth.StringWidth(word)
		if ww > w {
			// Hard-break words that can never fit.
			if curWidth > 0 {
				lines = append(lines, cur.String())
				cur.Reset()
				curWidth = 0
			}
			broken := strings.Split(runewidth.Wrap(word, w), "\n")
			lines = append(lines, broken[:len(broken)-1]...)
			word = broken[len(broken)-1]
			ww = runewidth.StringWidth(word)
		}
		switch {
		case curWidth == 0:
			cur.WriteString(word)
			curWidth = ww
		case curWidth+1+ww <= w:
			cur.WriteByte(' ')
			cur.WriteString(word)
			curWidth += 1 + ww
		default:
			lines = append(lines, cur.String())
			cur.Reset()
			cur.WriteString(word)
			curWidth = ww
		}
	}
	return append(lines, cur.String())
}

// initials returns the first grapheme of up to two words of name, uppercased.
func initials(name string) string {
	var out []string
	for _, word := range strings.Fields(name) {
		cluster, _, _, _ := uniseg.FirstGraphemeClusterInString(word, -1)
		out = append(out, strings.ToUpper(cluster))
		if len(out) == 2 {
			break
		}
	}
	if len(out) == 0 {
		return "?"
	}
	return strings.Join(out, "")
}
