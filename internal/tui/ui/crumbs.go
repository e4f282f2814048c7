package ui

import (
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
)

// Crumbs is a breadcrumb bar showing the current navigation path.
type Crumbs struct {
	*tview.TextView
	theme *Theme
}

// NewCrumbs creates a new breadcrumb bar.
func NewCrumbs(theme *Theme) *Crumbs {
	tv := tview.NewTextView().
		SetDynamicColors(true)
	tv.SetBackgroundColor(theme.BgColor)

	return &Crumbs{
		TextView: tv,
		theme:    theme,
	}
}

// Update renders the breadcrumb trail.
func (c *Crumbs) Update(trail []string) {
	c.Clear()
	_, _ = fmt.Fprint(c, c.format(trail))
}

func (c *Crumbs) format(trail []string) string {
	parts := make([]string, 0, len(trail))
	for i, name := range trail {
		name = tview.Escape(name)
		if i == len(trail)-1 {
			parts = append(parts, fmt.Sprintf("[%s:%s:b] %s [-:-:-]",
				colorName(c.theme.CrumbActiveFg), colorName(c.theme.CrumbActiveBg), name))
		} else {
			parts = append(parts, fmt.Sprintf("[%s:%s:] %s [-:-:-]",
				colorName(c.theme.CrumbInactiveFg), colorName(c.theme.CrumbInactiveBg), name))
		}
	}
	return strings.Join(parts, " ")
}

// colorName returns a tview-compatible color name string.
func colorName(c tcell.Color) string {
	return fmt.Sprintf("#%06x", c.Hex())
}
