package transcript

import (
	"slices"
	"testing"

	"github.com/matheus3301/messenger/internal/chat"
)

func sample() []chat.Message {
	return []chat.Message{
		{ID: "m1", SenderID: "1", Content: "Hey there!", Read: true},
		{ID: "m2", SenderID: chat.LocalUser, Content: "Hi Sarah!", Read: true},
		{ID: "m3", SenderID: "1", Content: "Want to celebrate later?", Read: true},
		{ID: "m4", SenderID: "1", Content: "Hey! How's your day going?"},
		{ID: "m5", SenderID: chat.LocalUser, Content: "Sure"},
		{ID: "m6", SenderID: chat.LocalUser, Content: "On my way", Read: true},
	}
}

func TestRenderAnnotations(t *testing.T) {
	got := slices.Collect(Render(sample()))

	want := []struct {
		id      string
		own     bool
		avatar  bool
		receipt bool
	}{
		{"m1", false, true, false},
		{"m2", true, false, true},
		{"m3", false, true, false},
		{"m4", false, false, false},
		{"m5", true, false, false},
		{"m6", true, false, true},
	}
	if len(got) != len(want) {
		t.Fatalf("len = %d, want %d", len(got), len(want))
	}
	for i, w := range want {
		e := got[i]
		if e.Message.ID != w.id {
			t.Errorf("[%d] id = %q, want %q", i, e.Message.ID, w.id)
		}
		if e.Own != w.own {
			t.Errorf("[%d] Own = %v, want %v", i, e.Own, w.own)
		}
		if e.ShowAvatar != w.avatar {
			t.Errorf("[%d] ShowAvatar = %v, want %v", i, e.ShowAvatar, w.avatar)
		}
		if e.Receipt != w.receipt {
			t.Errorf("[%d] Receipt = %v, want %v", i, e.Receipt, w.receipt)
		}
	}
}

func TestRenderRestartable(t *testing.T) {
	seq := Render(sample())
	first := slices.Collect(seq)
	second := slices.Collect(seq)
	if !slices.Equal(first, second) {
		t.Error("second iteration differs from the first")
	}
}

func TestRenderStopsEarly(t *testing.T) {
	n := 0
	for range Render(sample()) {
		n++
		if n == 2 {
			break
		}
	}
	if n != 2 {
		t.Errorf("visited %d entries, want 2", n)
	}
}

func TestRenderEmpty(t *testing.T) {
	for range Render(nil) {
		t.Fatal("empty conversation yielded an entry")
	}
}

func TestTyping(t *testing.T) {
	if !Typing(chat.Contact{Typing: true}) {
		t.Error("Typing() = false for typing contact")
	}
	if Typing(chat.Contact{}) {
		t.Error("Typing() = true for idle contact")
	}
}
