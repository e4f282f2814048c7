package views

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/matheus3301/messenger/internal/chat"
	"github.com/matheus3301/messenger/internal/tui/ui"
	"github.com/rivo/tview"
)

const (
	onlineDot  = "●"
	offlineDot = "○"
)

// ContactList is the roster sidebar: a name search field above a table of
// contacts.
type ContactList struct {
	*tview.Flex
	theme    *ui.Theme
	search   *tview.InputField
	table    *tview.Table
	rows     []chat.Row
	active   string
	onSelect func(id string)
	onFilter func(query string)
}

// NewContactList creates an empty roster sidebar.
func NewContactList(theme *ui.Theme) *ContactList {
	search := tview.NewInputField().
		SetLabel(" / ").
		SetPlaceholder("Search conversations...").
		SetFieldWidth(0)
	search.SetBackgroundColor(theme.BgColor)
	search.SetFieldBackgroundColor(theme.BgColor)
	search.SetFieldTextColor(theme.FgColor)
	search.SetLabelColor(theme.MenuKeyColor)
	search.SetPlaceholderTextColor(theme.MutedColor)

	table := tview.NewTable().
		SetSelectable(true, false).
		SetBorders(false)
	table.SetBackgroundColor(theme.BgColor)
	table.SetSelectedStyle(tcell.StyleDefault.
		Foreground(theme.TableCursorFg).
		Background(theme.TableCursorBg))

	flex := tview.NewFlex().
		SetDirection(tview.FlexRow).
		AddItem(search, 1, 0, false).
		AddItem(table, 0, 1, true)
	flex.SetBorder(true)
	flex.SetBorderColor(theme.BorderColor)
	flex.SetBackgroundColor(theme.BgColor)
	flex.SetTitle(" Messenger ")
	flex.SetTitleColor(theme.TitleColor)

	cl := &ContactList{
		Flex:   flex,
		theme:  theme,
		search: search,
		table:  table,
	}

	search.SetChangedFunc(func(text string) {
		if cl.onFilter != nil {
			cl.onFilter(text)
		}
	})
	table.SetSelectedFunc(func(row, _ int) {
		if id := cl.contactAt(row); id != "" && cl.onSelect != nil {
			cl.onSelect(id)
		}
	})

	return cl
}

// Name implements Component.
func (cl *ContactList) Name() string { return "Contacts" }

// Hints implements Component.
func (cl *ContactList) Hints() []ui.MenuHint {
	return []ui.MenuHint{
		{Key: "Enter", Description: "Open"},
		{Key: "/", Description: "Search"},
		{Key: "Tab", Description: "Chat"},
	}
}

// SetOnSelect sets the callback when a contact row is chosen.
func (cl *ContactList) SetOnSelect(fn func(id string)) {
	cl.onSelect = fn
}

// SetOnFilter sets the callback fired on every change of the search text.
func (cl *ContactList) SetOnFilter(fn func(query string)) {
	cl.onFilter = fn
}

// SetSearchText replaces the search text when it differs.
func (cl *ContactList) SetSearchText(query string) {
	if cl.search.GetText() != query {
		cl.search.SetText(query)
	}
}

// Search returns the search input (for focus management).
func (cl *ContactList) Search() *tview.InputField {
	return cl.search
}

// Table returns the contact table (for focus management).
func (cl *ContactList) Table() *tview.Table {
	return cl.table
}

// Update renders rows, highlighting activeID. total is the unfiltered roster size.
func (cl *ContactList) Update(rows []chat.Row, activeID string, total int) {
	cl.rows = rows
	cl.active = activeID
	cl.table.Clear()

	cursor := 0
	for i, r := range rows {
		cl.setRow(i, r)
		if r.ID == activeID {
			cursor = i
		}
	}
	if len(rows) > 0 {
		cl.table.Select(cursor, 0)
	}

	if len(rows) != total {
		cl.SetTitle(fmt.Sprintf(" Messenger (%d/%d) ", len(rows), total))
	} else {
		cl.SetTitle(fmt.Sprintf(" Messenger (%d) ", total))
	}
}

func (cl *ContactList) setRow(i int, r chat.Row) {
	bg := cl.theme.BgColor
	if r.ID == cl.active {
		bg = cl.theme.ActiveRowBg
	}

	dot, dotColor := offlineDot, cl.theme.OfflineColor
	if r.Online {
		dot, dotColor = onlineDot, cl.theme.OnlineColor
	}

	nameAttr := tcell.AttrNone
	if r.Badge != "" {
		nameAttr = tcell.AttrBold
	}

	previewColor, previewAttr := cl.theme.MutedColor, tcell.AttrNone
	switch {
	case r.Typing:
		previewColor, previewAttr = cl.theme.TypingColor, tcell.AttrItalic
	case r.Badge != "":
		previewColor = cl.theme.FgColor
	}

	badge := ""
	if r.Badge != "" {
		badge = " " + r.Badge + " "
	}

	cells := []*tview.TableCell{
		tview.NewTableCell(" " + dot).SetTextColor(dotColor),
		tview.NewTableCell(tview.Escape(cleanText(r.Name))).SetTextColor(cl.theme.FgColor).SetAttributes(nameAttr).SetMaxWidth(20),
		tview.NewTableCell(tview.Escape(cleanText(r.Preview))).SetTextColor(previewColor).SetAttributes(previewAttr).SetExpansion(1),
		tview.NewTableCell(tview.Escape(r.Time)).SetTextColor(cl.theme.MutedColor).SetAlign(tview.AlignRight),
		tview.NewTableCell(badge).SetTextColor(cl.theme.BgColor).SetBackgroundColor(cl.theme.BadgeColor).SetAlign(tview.AlignRight),
	}
	for col, cell := range cells {
		if col != len(cells)-1 || badge == "" {
			cell.SetBackgroundColor(bg)
		}
		cl.table.SetCell(i, col, cell)
	}
}

// SelectedContact returns the id of the contact under the cursor.
func (cl *ContactList) SelectedContact() string {
	row, _ := cl.table.GetSelection()
	return cl.contactAt(row)
}

// ContactByIndex returns the id of the Nth visible contact (1-based).
func (cl *ContactList) ContactByIndex(n int) string {
	return cl.contactAt(n - 1)
}

func (cl *ContactList) contactAt(row int) string {
	if row >= 0 && row < len(cl.rows) {
		return cl.rows[row].ID
	}
	return ""
}
