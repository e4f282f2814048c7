package keys

import (
	"testing"

	"github.com/gdamore/tcell/v2"
)

func TestHintsOrder(t *testing.T) {
	r := NewRegistry()
	r.AddGlobal(&Action{Key: tcell.KeyRune, Rune: 'q', Description: "Quit", Visible: true})
	r.AddGlobal(&Action{Key: tcell.KeyRune, Rune: 'x', Description: "Hidden"})
	r.AddView("main", &Action{Key: tcell.KeyEnter, Label: "Enter", Description: "Open", Visible: true})
	r.AddView("main", &Action{Key: tcell.KeyRune, Rune: 'i', Description: "Compose", Visible: true})

	got := r.Hints("main")
	want := []Hint{
		{Key: "Enter", Description: "Open"},
		{Key: "i", Description: "Compose"},
		{Key: "q", Description: "Quit"},
	}
	if len(got) != len(want) {
		t.Fatalf("Hints() = %+v, want %+v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Hints()[%d] = %+v, want %+v", i, got[i], want[i])
		}
	}

	if got := r.Hints("help"); len(got) != 1 || got[0].Key != "q" {
		t.Errorf("Hints(help) = %+v, want only globals", got)
	}
}

func TestLabelFallback(t *testing.T) {
	a := &Action{Key: tcell.KeyEscape}
	if got := a.label(); got != tcell.KeyNames[tcell.KeyEscape] {
		t.Errorf("label() = %q", got)
	}
	b := &Action{Key: tcell.KeyRune, Rune: '?'}
	if got := b.label(); got != "?" {
		t.Errorf("label() = %q, want ?", got)
	}
}
