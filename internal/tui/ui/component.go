package ui

// MenuHint describes a keyboard shortcut for display in the menu bar.
type MenuHint struct {
	Key         string
	Description string
}

// Component is implemented by the views that can be shown as a page.
type Component interface {
	Name() string
	Hints() []MenuHint
}
