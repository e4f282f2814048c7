package tui

import (
	"strings"
	"testing"

	"github.com/matheus3301/messenger/internal/bus"
	"github.com/matheus3301/messenger/internal/mockdata"
	"github.com/matheus3301/messenger/internal/selection"
	"github.com/matheus3301/messenger/internal/tui/model"
)

func newTestApp(t *testing.T, initial selection.Initial) *App {
	t.Helper()
	seed, err := mockdata.Default()
	if err != nil {
		t.Fatalf("Default() error: %v", err)
	}
	vm, err := model.NewViewModel(seed, initial, bus.New(), nil)
	if err != nil {
		t.Fatalf("NewViewModel() error: %v", err)
	}
	return NewApp(vm, nil)
}

func TestNewAppInitialState(t *testing.T) {
	a := newTestApp(t, selection.InitialFirst)

	c, ok := a.vm.Active()
	if !ok || c.ID != "1" {
		t.Fatalf("active = %q (%v), want 1", c.ID, ok)
	}
	if a.focused != a.chat {
		t.Error("chat window should be focused when a conversation is open")
	}
	if a.pages.Current() != pageMain {
		t.Errorf("page = %q, want %q", a.pages.Current(), pageMain)
	}
	if got := a.contacts.Table().GetRowCount(); got != 4 {
		t.Errorf("contact rows = %d, want 4", got)
	}

	b := newTestApp(t, selection.InitialNone)
	if _, ok := b.vm.Active(); ok {
		t.Error("no conversation should be active")
	}
	if b.focused != b.contacts {
		t.Error("contact list should be focused with nothing selected")
	}
}

func TestRunCommandOpen(t *testing.T) {
	a := newTestApp(t, selection.InitialNone)

	a.runCommand(ParseCommand("open dev"))
	if got := a.vm.Selection.ActiveID(); got != "4" {
		t.Errorf("active = %q, want 4", got)
	}
	if got := a.chat.Name(); got != "Dev Team" {
		t.Errorf("chat window = %q, want Dev Team", got)
	}

	a.runCommand(ParseCommand("open nobody"))
	if got := a.vm.Selection.ActiveID(); got != "4" {
		t.Errorf("active changed to %q on a failed open", got)
	}
	if f := a.vm.Flash.Get(); f == nil || !strings.Contains(f.Text, "nobody") {
		t.Errorf("flash = %+v, want no-match warning", f)
	}
}

func TestRunCommandCloseAndDetails(t *testing.T) {
	a := newTestApp(t, selection.InitialFirst)

	a.runCommand(ParseCommand("details"))
	if a.pages.Current() != pageDetails {
		t.Fatalf("page = %q, want %q", a.pages.Current(), pageDetails)
	}

	a.runCommand(ParseCommand("close"))
	if _, ok := a.vm.Active(); ok {
		t.Error("close should clear the active conversation")
	}
	if a.pages.Current() != pageMain {
		t.Errorf("page = %q, want %q", a.pages.Current(), pageMain)
	}
	if a.chat.Name() != "Chat" {
		t.Errorf("chat window = %q after close", a.chat.Name())
	}

	a.runCommand(ParseCommand("d"))
	if a.pages.Current() != pageMain {
		t.Error("details should not open without a conversation")
	}
}

func TestRunCommandFilter(t *testing.T) {
	a := newTestApp(t, selection.InitialFirst)

	a.runCommand(ParseCommand("filter em"))
	if a.vm.Filter() != "em" {
		t.Errorf("filter = %q, want em", a.vm.Filter())
	}
	if got := a.contacts.Table().GetRowCount(); got != 1 {
		t.Errorf("rows = %d, want 1", got)
	}
	if got := a.contacts.ContactByIndex(1); got != "3" {
		t.Errorf("first visible = %q, want 3", got)
	}

	a.runCommand(ParseCommand("filter"))
	if got := a.contacts.Table().GetRowCount(); got != 4 {
		t.Errorf("rows after clearing = %d, want 4", got)
	}
}

func TestRunCommandUnknown(t *testing.T) {
	a := newTestApp(t, selection.InitialFirst)
	a.runCommand(ParseCommand("frobnicate"))

	f := a.vm.Flash.Get()
	if f == nil || f.Text != "Unknown command: frobnicate" || f.Level != model.FlashWarn {
		t.Errorf("flash = %+v", f)
	}
}

func TestSendAppendsAndClearsComposer(t *testing.T) {
	a := newTestApp(t, selection.InitialFirst)
	before := a.vm.Store.Len("1")

	a.vm.SetDraft("  see you at 5  ")
	a.send()

	msgs := a.vm.Messages("1")
	if len(msgs) != before+1 {
		t.Fatalf("messages = %d, want %d", len(msgs), before+1)
	}
	if got := msgs[len(msgs)-1].Content; got != "see you at 5" {
		t.Errorf("content = %q", got)
	}
	if a.vm.Draft() != "" || a.chat.Draft() != "" {
		t.Errorf("draft not cleared: vm=%q composer=%q", a.vm.Draft(), a.chat.Draft())
	}
	if got := a.contacts.Table().GetCell(0, 2).Text; !strings.Contains(got, "see you at 5") {
		t.Errorf("row preview = %q, want newest message", got)
	}
	if got := a.chat.Transcript().GetText(true); !strings.Contains(got, "see you at 5") {
		t.Errorf("transcript missing new message:\n%s", got)
	}
}

func TestSendWithoutConversationFlashes(t *testing.T) {
	a := newTestApp(t, selection.InitialNone)

	a.vm.SetDraft("hello")
	a.send()

	if f := a.vm.Flash.Get(); f == nil || f.Level != model.FlashWarn {
		t.Errorf("flash = %+v, want warning", f)
	}
	for _, id := range []string{"1", "2", "3", "4"} {
		for _, m := range a.vm.Messages(id) {
			if m.Content == "hello" {
				t.Fatalf("message appended to %s with no active conversation", id)
			}
		}
	}
}

func TestRunCommandOpenUnderCursor(t *testing.T) {
	a := newTestApp(t, selection.InitialNone)

	a.runCommand(ParseCommand("filter em"))
	a.runCommand(ParseCommand("open"))
	if got := a.vm.Selection.ActiveID(); got != "3" {
		t.Errorf("active = %q, want contact under the cursor (3)", got)
	}

	a.runCommand(ParseCommand("filter nobody"))
	a.runCommand(ParseCommand("o"))
	if got := a.vm.Selection.ActiveID(); got != "3" {
		t.Errorf("active = %q, empty list should leave it unchanged", got)
	}
}
