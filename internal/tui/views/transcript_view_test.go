package views

import (
	"fmt"
	"regexp"
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/matheus3301/messenger/internal/chat"
	"github.com/matheus3301/messenger/internal/transcript"
	"github.com/matheus3301/messenger/internal/tui/ui"
	"github.com/mattn/go-runewidth"
)

var colorTag = regexp.MustCompile(`\[[#a-zA-Z0-9:\-]*\]`)

func visible(line string) string {
	return colorTag.ReplaceAllString(line, "")
}

func TestFormatTranscriptAlignment(t *testing.T) {
	sarah := chat.Contact{ID: "1", Name: "Sarah Wilson"}
	msgs := []chat.Message{
		{ID: "m1", SenderID: "1", Content: "Hey there", Timestamp: "10:30 AM"},
		{ID: "m2", SenderID: chat.LocalUser, Content: "Hi Sarah", Timestamp: "10:32 AM", Read: true},
	}
	const width = 40
	out := formatTranscript(transcript.Render(msgs), sarah, width, ui.DefaultTheme())
	lines := strings.Split(out, "\n")

	if got := visible(lines[0]); got != "(SW) Hey there" {
		t.Errorf("remote line = %q, want %q", got, "(SW) Hey there")
	}

	var own, meta string
	for _, l := range lines {
		v := visible(l)
		if strings.HasSuffix(v, "Hi Sarah") {
			own = v
		}
		if strings.HasSuffix(v, "10:32 AM "+receiptMark) {
			meta = v
		}
	}
	if own == "" {
		t.Fatalf("own message not found in:\n%s", out)
	}
	if w := runewidth.StringWidth(own); w != width {
		t.Errorf("own line width = %d, want %d (right-aligned)", w, width)
	}
	if meta == "" {
		t.Fatalf("receipt not found in:\n%s", out)
	}
	if w := runewidth.StringWidth(meta); w != width {
		t.Errorf("meta line width = %d, want %d", w, width)
	}
}

func TestFormatTranscriptAvatarOnlyOnRunStart(t *testing.T) {
	c := chat.Contact{ID: "4", Name: "Dev Team"}
	msgs := []chat.Message{
		{ID: "a", SenderID: "4", Content: "first"},
		{ID: "b", SenderID: "4", Content: "second"},
	}
	out := visible(formatTranscript(transcript.Render(msgs), c, 40, ui.DefaultTheme()))
	if n := strings.Count(out, "(DT)"); n != 1 {
		t.Errorf("avatar shown %d times, want 1:\n%s", n, out)
	}
	if !strings.Contains(out, "     second") {
		t.Errorf("second message should be indented under the avatar:\n%s", out)
	}
}

func TestFormatTranscriptNoReceiptWhenUnread(t *testing.T) {
	c := chat.Contact{ID: "1", Name: "Sarah Wilson"}
	msgs := []chat.Message{{ID: "a", SenderID: chat.LocalUser, Content: "pending", Timestamp: "9:00"}}
	out := formatTranscript(transcript.Render(msgs), c, 40, ui.DefaultTheme())
	if strings.Contains(out, receiptMark) {
		t.Errorf("unread own message shows a receipt:\n%s", out)
	}
}

func TestFormatTranscriptTyping(t *testing.T) {
	john := chat.Contact{ID: "2", Name: "John Martinez", Typing: true}
	out := visible(formatTranscript(transcript.Render(nil), john, 40, ui.DefaultTheme()))
	if !strings.Contains(out, "(JM) "+typingBubble) {
		t.Errorf("typing bubble missing:\n%s", out)
	}
}

func TestFormatTranscriptNonText(t *testing.T) {
	c := chat.Contact{ID: "1", Name: "Sarah"}
	msgs := []chat.Message{{ID: "a", SenderID: "1", Type: chat.TypeImage, Content: "ignored"}}
	out := formatTranscript(transcript.Render(msgs), c, 40, ui.DefaultTheme())
	if strings.Contains(out, "ignored") {
		t.Error("image content should not be rendered as text")
	}
	if !strings.Contains(out, "image") {
		t.Errorf("image placeholder missing:\n%s", out)
	}
}

func TestWrap(t *testing.T) {
	tests := []struct {
		name string
		in   string
		w    int
		want []string
	}{
		{"fits", "hello world", 20, []string{"hello world"}},
		{"word wrap", "hello big world", 9, []string{"hello big", "world"}},
		{"long word", "abcdefghij", 4, []string{"abcd", "efgh", "ij"}},
		{"newline", "a\nb", 10, []string{"a", "b"}},
		{"empty", "", 10, []string{""}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := wrap(tt.in, tt.w)
			if strings.Join(got, "|") != strings.Join(tt.want, "|") {
				t.Errorf("wrap(%q, %d) = %q, want %q", tt.in, tt.w, got, tt.want)
			}
			for _, line := range got {
				if runewidth.StringWidth(line) > tt.w {
					t.Errorf("line %q wider than %d", line, tt.w)
				}
			}
		})
	}
}

func TestInitials(t *testing.T) {
	tests := map[string]string{
		"Sarah Wilson":     "SW",
		"Dev Team":         "DT",
		"emma":             "E",
		"Anna Maria Lopez": "AM",
		"":                 "?",
		"e\u0301mile zola": "E\u0301Z",
	}
	for in, want := range tests {
		if got := initials(in); got != want {
			t.Errorf("initials(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestTranscriptViewEmptyState(t *testing.T) {
	tv := NewTranscriptView(ui.DefaultTheme())
	tv.Update(chat.Contact{}, false, nil)
	if got := tv.GetText(true); !strings.Contains(got, "Select a conversation") {
		t.Errorf("empty state text = %q", got)
	}
}

func TestTranscriptViewScrollsToNewest(t *testing.T) {
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("screen init: %v", err)
	}
	defer screen.Fini()
	screen.SetSize(40, 5)

	sarah := chat.Contact{ID: "1", Name: "Sarah Wilson"}
	var msgs []chat.Message
	for i := range 20 {
		sender := sarah.ID
		if i%2 == 1 {
			sender = chat.LocalUser
		}
		msgs = append(msgs, chat.Message{ID: fmt.Sprintf("m%d", i), SenderID: sender, Content: fmt.Sprintf("message %d", i), Timestamp: "10:00"})
	}

	tv := NewTranscriptView(ui.DefaultTheme())
	tv.SetRect(0, 0, 40, 5)
	tv.Update(sarah, true, transcript.Render(msgs))
	tv.Draw(screen)

	first, _ := tv.GetScrollOffset()
	if first == 0 {
		t.Fatal("transcript still shows the first line after drawing")
	}

	msgs = append(msgs, chat.Message{ID: "m20", SenderID: chat.LocalUser, Content: "newest", Timestamp: "10:01"})
	tv.Update(sarah, true, transcript.Render(msgs))
	tv.Draw(screen)

	offset, _ := tv.GetScrollOffset()
	lines := strings.Split(strings.TrimRight(tv.GetText(true), "\n"), "\n")
	if offset <= first {
		t.Errorf("offset = %d after append, want more than %d", offset, first)
	}
	if _, _, _, height := tv.GetInnerRect(); offset+height < len(lines) {
		t.Errorf("offset %d with height %d does not reach line %d", offset, height, len(lines))
	}
	if !strings.Contains(lines[len(lines)-2], "newest") {
		t.Errorf("second-to-last line = %q, want the new message", lines[len(lines)-2])
	}
}
