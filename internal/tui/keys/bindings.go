package keys

import "github.com/gdamore/tcell/v2"

// Action represents a keybinding action.
type Action struct {
	Key         tcell.Key
	Rune        rune
	Label       string // key as shown in hints, e.g. "Enter"
	Description string
	Handler     func()
	Visible     bool
}

// Matches returns true if the event matches this action.
func (a *Action) Matches(ev *tcell.EventKey) bool {
	if a.Key != tcell.KeyRune {
		return ev.Key() == a.Key
	}
	return ev.Key() == tcell.KeyRune && ev.Rune() == a.Rune
}

// Hint is a visible binding as shown in the menu bar.
type Hint struct {
	Key         string
	Description string
}

// Registry holds keybindings organized by scope, in registration order.
type Registry struct {
	global []*Action
	views  map[string][]*Action
}

// NewRegistry creates a new keybinding registry.
func NewRegistry() *Registry {
	return &Registry{
		views: make(map[string][]*Action),
	}
}

// AddGlobal registers a binding active in every view.
func (r *Registry) AddGlobal(action *Action) {
	r.global = append(r.global, action)
}

// AddView registers a view-specific binding.
func (r *Registry) AddView(view string, action *Action) {
	r.views[view] = append(r.views[view], action)
}

// Hints returns visible bindings for view: view bindings first, then globals.
func (r *Registry) Hints(view string) []Hint {
	var hints []Hint
	for _, scope := range [][]*Action{r.views[view], r.global} {
		for _, a := range scope {
			if a.Visible {
				hints = append(hints, Hint{Key: a.label(), Description: a.Description})
			}
		}
	}
	return hints
}

// HandleEvent dispatches a key event to the first matching action in view,
// falling back to global bindings. Returns true if a handler ran.
func (r *Registry) HandleEvent(view string, ev *tcell.EventKey) bool {
	for _, scope := range [][]*Action{r.views[view], r.global} {
		for _, a := range scope {
			if a.Matches(ev) {
				a.Handler()
				return true
			}
		}
	}
	return false
}

func (a *Action) label() string {
	if a.Label != "" {
		return a.Label
	}
	if a.Key == tcell.KeyRune {
		return string(a.Rune)
	}
	return tcell.KeyNames[a.Key]
}
