package chat

import (
	"errors"
	"testing"
)

func testRoster(t *testing.T) *Roster {
	t.Helper()
	r, err := NewRoster([]Contact{
		{ID: "1", Name: "Sarah Wilson"},
		{ID: "2", Name: "John Martinez"},
		{ID: "3", Name: "Emma Thompson"},
		{ID: "4", Name: "Dev Team"},
	})
	if err != nil {
		t.Fatal(err)
	}
	return r
}

func TestNewRosterRejectsDuplicates(t *testing.T) {
	_, err := NewRoster([]Contact{{ID: "1", Name: "A"}, {ID: "1", Name: "B"}})
	if !errors.Is(err, ErrDuplicateContact) {
		t.Fatalf("NewRoster() error = %v, want ErrDuplicateContact", err)
	}
}

func TestNewRosterRejectsInvalid(t *testing.T) {
	tests := []struct {
		name    string
		contact Contact
	}{
		{"empty id", Contact{Name: "Nobody"}},
		{"negative unread", Contact{ID: "1", Name: "A", UnreadCount: -1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := NewRoster([]Contact{tt.contact}); err == nil {
				t.Error("NewRoster() expected error")
			}
		})
	}
}

func TestRosterLookup(t *testing.T) {
	r := testRoster(t)

	if r.Len() != 4 {
		t.Errorf("Len() = %d, want 4", r.Len())
	}
	c, ok := r.Get("3")
	if !ok || c.Name != "Emma Thompson" {
		t.Errorf("Get(3) = %+v, %v", c, ok)
	}
	if _, ok := r.Get("99"); ok {
		t.Error("Get(99) should not find a contact")
	}
	if got := r.Index("4"); got != 3 {
		t.Errorf("Index(4) = %d, want 3", got)
	}
	if got := r.Index("99"); got != -1 {
		t.Errorf("Index(99) = %d, want -1", got)
	}
	first, ok := r.First()
	if !ok || first.ID != "1" {
		t.Errorf("First() = %+v, %v", first, ok)
	}
}

func TestRosterAllIsCopy(t *testing.T) {
	r := testRoster(t)
	all := r.All()
	all[0].Name = "changed"
	if c, _ := r.Get("1"); c.Name != "Sarah Wilson" {
		t.Errorf("roster mutated through All(): %q", c.Name)
	}
}

func TestFilter(t *testing.T) {
	r := testRoster(t)

	tests := []struct {
		name  string
		query string
		want  []string
	}{
		{"lowercase match", "sarah", []string{"1"}},
		{"uppercase query", "SARAH", []string{"1"}},
		{"substring in middle", "tin", []string{"2"}},
		{"multiple keep roster order", "son", []string{"1", "3"}},
		{"empty query", "", []string{"1", "2", "3", "4"}},
		{"blank query", "   ", []string{"1", "2", "3", "4"}},
		{"no match", "zed", nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := r.Filter(tt.query)
			if len(got) != len(tt.want) {
				t.Fatalf("Filter(%q) returned %d contacts, want %d", tt.query, len(got), len(tt.want))
			}
			for i, c := range got {
				if c.ID != tt.want[i] {
					t.Errorf("Filter(%q)[%d] = %q, want %q", tt.query, i, c.ID, tt.want[i])
				}
			}
		})
	}
}

func TestFilterTwoContactRoster(t *testing.T) {
	r, err := NewRoster([]Contact{
		{ID: "1", Name: "Sarah Wilson"},
		{ID: "2", Name: "John Martinez"},
	})
	if err != nil {
		t.Fatal(err)
	}
	got := r.Filter("sarah")
	if len(got) != 1 || got[0].ID != "1" {
		t.Errorf("Filter(sarah) = %+v, want only Sarah Wilson", got)
	}
}
