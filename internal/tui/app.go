package tui

import (
	"context"
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/matheus3301/messenger/internal/bus"
	"github.com/matheus3301/messenger/internal/tui/keys"
	"github.com/matheus3301/messenger/internal/tui/model"
	"github.com/matheus3301/messenger/internal/tui/ui"
	"github.com/matheus3301/messenger/internal/tui/views"
	"github.com/rivo/tview"
	"go.uber.org/zap"
)

const (
	pageMain    = "main"
	pageHelp    = "help"
	pageDetails = "details"

	clockInterval = 15 * time.Second
)

// Key binding scopes.
const (
	scopeContacts = "contacts"
	scopeChat     = "chat"
)

// App is the main TUI application shell.
type App struct {
	app      *tview.Application
	vm       *model.ViewModel
	logger   *zap.Logger
	registry *keys.Registry

	root     *tview.Flex
	pages    *ui.Pages
	crumbs   *ui.Crumbs
	menu     *ui.Menu
	prompt   *ui.Prompt
	contacts *views.ContactList
	chat     *views.ChatWindow
	info     *views.ContactInfo
	help     *views.HelpView
	status   *views.StatusBar

	focused     ui.Component
	promptShown bool
	unsubscribe []func()

	ctx    context.Context
	cancel context.CancelFunc
}

// NewApp creates the TUI application over vm.
func NewApp(vm *model.ViewModel, logger *zap.Logger) *App {
	if logger == nil {
		logger = zap.NewNop()
	}
	theme := ui.DefaultTheme()
	ctx, cancel := context.WithCancel(context.Background())

	a := &App{
		app:      tview.NewApplication(),
		vm:       vm,
		logger:   logger,
		registry: keys.NewRegistry(),
		pages:    ui.NewPages(),
		crumbs:   ui.NewCrumbs(theme),
		menu:     ui.NewMenu(theme),
		prompt:   ui.NewPrompt(theme),
		contacts: views.NewContactList(theme),
		chat:     views.NewChatWindow(theme),
		info:     views.NewContactInfo(theme),
		help:     views.NewHelpView(theme),
		status:   views.NewStatusBar(theme),
		ctx:      ctx,
		cancel:   cancel,
	}

	a.setupBindings()
	a.setupCallbacks()
	a.setupLayout()
	a.subscribe()

	a.refreshRows()
	a.refreshChat()
	a.status.SetContacts(vm.Roster.Len())
	if _, ok := vm.Active(); ok {
		a.focusChat()
	} else {
		a.focusContacts()
	}

	return a
}

func (a *App) setupBindings() {
	a.registry.AddGlobal(&keys.Action{
		Key: tcell.KeyRune, Rune: 'q', Description: "Quit", Visible: true,
		Handler: a.Stop,
	})
	a.registry.AddGlobal(&keys.Action{
		Key: tcell.KeyRune, Rune: '?', Description: "Help", Visible: true,
		Handler: a.showHelp,
	})
	a.registry.AddGlobal(&keys.Action{
		Key: tcell.KeyRune, Rune: ':', Description: "Command", Visible: true,
		Handler: a.showPrompt,
	})
	a.registry.AddGlobal(&keys.Action{
		Key: tcell.KeyRune, Rune: '/', Description: "Search", Visible: true,
		Handler: a.focusSearch,
	})
	a.registry.AddGlobal(&keys.Action{
		Key: tcell.KeyTab, Description: "Switch pane",
		Handler: a.togglePane,
	})

	// Advertised by the chat window's own hints.
	a.registry.AddView(scopeChat, &keys.Action{
		Key: tcell.KeyRune, Rune: 'i', Description: "Compose",
		Handler: a.focusComposer,
	})
	a.registry.AddView(scopeChat, &keys.Action{
		Key: tcell.KeyRune, Rune: 'd', Description: "Details",
		Handler: a.showDetails,
	})
}

func (a *App) setupCallbacks() {
	a.contacts.SetOnSelect(a.open)
	a.contacts.SetOnFilter(a.vm.SetFilter)
	a.contacts.Search().SetDoneFunc(func(key tcell.Key) {
		switch key {
		case tcell.KeyEnter, tcell.KeyTab, tcell.KeyDown:
			a.focusContacts()
		}
	})

	a.chat.SetOnDraftChanged(func(text string) {
		a.vm.SetDraft(text)
		a.chat.SetCanSend(a.vm.CanSend())
	})
	a.chat.SetOnSubmit(a.send)

	a.prompt.SetOnSubmit(func(text string) {
		a.hidePrompt()
		a.runCommand(ParseCommand(text))
	})
	a.prompt.SetOnCancel(a.hidePrompt)

	a.pages.SetOnChange(func([]string) { a.updateChrome() })
}

func (a *App) setupLayout() {
	layout := tview.NewFlex().
		AddItem(a.contacts, 0, 1, true).
		AddItem(a.chat, 0, 2, false)

	a.pages.AddPage(pageMain, layout, true, false)
	a.pages.AddPage(pageHelp, a.help, true, false)
	a.pages.AddPage(pageDetails, a.info, true, false)
	a.pages.Reset(pageMain)

	a.root = tview.NewFlex().
		SetDirection(tview.FlexRow).
		AddItem(a.crumbs, 1, 0, false).
		AddItem(a.pages, 0, 1, true).
		AddItem(a.prompt, 0, 0, false).
		AddItem(a.menu, 1, 0, false).
		AddItem(a.status, 1, 0, false)

	a.app.SetRoot(a.root, true)
	a.app.SetInputCapture(a.handleKey)
}

func (a *App) subscribe() {
	a.unsubscribe = append(a.unsubscribe,
		a.vm.Subscribe("conversation.", func(bus.Event) {
			a.refreshRows()
			a.refreshChat()
		}),
		a.vm.Subscribe("selection.", func(bus.Event) {
			a.refreshRows()
			a.refreshChat()
		}),
		a.vm.Subscribe("roster.", func(bus.Event) {
			a.refreshRows()
		}),
	)
}

func (a *App) handleKey(ev *tcell.EventKey) *tcell.EventKey {
	focus := a.app.GetFocus()

	if ev.Key() == tcell.KeyEscape {
		switch {
		case a.promptShown:
			// The prompt's done func cancels it.
			return ev
		case focus == a.contacts.Search():
			a.focusContacts()
			return nil
		case focus == a.chat.Composer():
			a.focusChat()
			return nil
		case a.pages.Pop() != "":
			a.restoreFocus()
			return nil
		}
		return ev
	}

	// Text inputs get every other key.
	if _, ok := focus.(*tview.InputField); ok {
		return ev
	}

	if a.pages.Current() == pageMain && ev.Key() == tcell.KeyRune && ev.Rune() >= '1' && ev.Rune() <= '9' {
		if id := a.contacts.ContactByIndex(int(ev.Rune() - '0')); id != "" {
			a.open(id)
		}
		return nil
	}

	if a.registry.HandleEvent(a.scope(), ev) {
		return nil
	}
	return ev
}

func (a *App) scope() string {
	switch a.pages.Current() {
	case pageMain:
		if a.focused == a.chat {
			return scopeChat
		}
		return scopeContacts
	default:
		return a.pages.Current()
	}
}

// open activates the conversation with id and moves focus to it.
func (a *App) open(id string) {
	if !a.vm.SelectContact(id) {
		return
	}
	if a.pages.Current() != pageMain {
		a.pages.Reset(pageMain)
	}
	a.focusChat()
}

func (a *App) send() {
	if !a.vm.Send() {
		a.status.SetFlash(a.vm.Flash.Get())
		return
	}
	a.chat.SetDraft(a.vm.Draft())
	a.chat.SetCanSend(a.vm.CanSend())
}

func (a *App) runCommand(cmd Command) {
	a.logger.Debug("command", zap.String("name", cmd.Name), zap.String("args", cmd.Args))

	switch cmd.Name {
	case CmdOpen:
		if cmd.Args == "" {
			// Bare :open opens the contact under the cursor.
			if id := a.contacts.SelectedContact(); id != "" {
				a.open(id)
			}
			break
		}
		matches := a.vm.Roster.Filter(cmd.Args)
		if len(matches) == 0 {
			a.vm.Flash.Warn(fmt.Sprintf("No contact matches %q", cmd.Args))
			break
		}
		a.open(matches[0].ID)
	case CmdFilter:
		a.contacts.SetSearchText(cmd.Args)
		a.vm.SetFilter(cmd.Args)
		a.focusContacts()
	case CmdClose:
		a.vm.Selection.Clear()
		a.pages.Reset(pageMain)
		a.focusContacts()
	case CmdDetails:
		a.showDetails()
	case CmdHelp:
		a.showHelp()
	case CmdQuit:
		a.Stop()
	case "":
	default:
		a.vm.Flash.Warn("Unknown command: " + cmd.Name)
	}
	a.status.SetFlash(a.vm.Flash.Get())
}

func (a *App) refreshRows() {
	a.contacts.Update(a.vm.Rows(), a.vm.Selection.ActiveID(), a.vm.Roster.Len())
}

func (a *App) refreshChat() {
	c, ok := a.vm.Active()
	a.chat.Update(c, ok, a.vm.Transcript())
	a.chat.SetCanSend(a.vm.CanSend())
	if ok {
		a.status.SetActive(c.Name, c.Online)
		a.info.Update(c, a.vm.Store.Len(c.ID))
	} else {
		a.status.SetActive("", false)
		if a.pages.Current() == pageDetails {
			a.pages.Pop()
			a.focusContacts()
		}
	}
	a.updateChrome()
}

// updateChrome refreshes breadcrumbs and key hints for the focused component.
func (a *App) updateChrome() {
	var comp ui.Component = a.contacts
	switch a.pages.Current() {
	case pageHelp:
		comp = a.help
	case pageDetails:
		comp = a.info
	default:
		if a.focused != nil {
			comp = a.focused
		}
	}

	trail := []string{"Messenger"}
	if c, ok := a.vm.Active(); ok {
		trail = append(trail, c.Name)
	}
	if comp == a.help || comp == a.info {
		trail = append(trail, comp.Name())
	}
	a.crumbs.Update(trail)

	hints := comp.Hints()
	for _, h := range a.registry.Hints(a.scope()) {
		hints = append(hints, ui.MenuHint{Key: h.Key, Description: h.Description})
	}
	a.menu.Update(hints)
}

func (a *App) setFocus(comp ui.Component, p tview.Primitive) {
	a.focused = comp
	a.app.SetFocus(p)
	a.updateChrome()
}

func (a *App) focusContacts() { a.setFocus(a.contacts, a.contacts.Table()) }

func (a *App) focusSearch() {
	if a.pages.Current() != pageMain {
		a.pages.Reset(pageMain)
	}
	a.setFocus(a.contacts, a.contacts.Search())
}

func (a *App) focusChat() { a.setFocus(a.chat, a.chat.Transcript()) }

func (a *App) focusComposer() {
	if _, ok := a.vm.Active(); !ok {
		return
	}
	a.setFocus(a.chat, a.chat.Composer())
}

func (a *App) togglePane() {
	if a.pages.Current() != pageMain {
		return
	}
	if a.focused == a.chat {
		a.focusContacts()
		return
	}
	if _, ok := a.vm.Active(); ok {
		a.focusChat()
	}
}

// restoreFocus focuses the component that was active on the main page.
func (a *App) restoreFocus() {
	if a.pages.Current() != pageMain {
		return
	}
	if a.focused == a.chat {
		a.focusChat()
		return
	}
	a.focusContacts()
}

func (a *App) showHelp() {
	a.pages.Push(pageHelp)
	a.app.SetFocus(a.help)
}

func (a *App) showDetails() {
	c, ok := a.vm.Active()
	if !ok {
		a.vm.Flash.Info("No conversation selected")
		a.status.SetFlash(a.vm.Flash.Get())
		return
	}
	a.info.Update(c, a.vm.Store.Len(c.ID))
	a.pages.Push(pageDetails)
	a.app.SetFocus(a.info)
}

func (a *App) showPrompt() {
	a.promptShown = true
	a.root.ResizeItem(a.prompt, 3, 0)
	a.app.SetFocus(a.prompt)
}

func (a *App) hidePrompt() {
	a.promptShown = false
	a.root.ResizeItem(a.prompt, 0, 0)
	switch a.pages.Current() {
	case pageHelp:
		a.app.SetFocus(a.help)
	case pageDetails:
		a.app.SetFocus(a.info)
	default:
		a.restoreFocus()
	}
}

// Run starts the TUI and blocks until it exits.
func (a *App) Run() error {
	go a.tick()
	a.logger.Info("tui started")
	return a.app.Run()
}

// tick keeps the clock and flash messages current.
func (a *App) tick() {
	ticker := time.NewTicker(clockInterval)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			a.app.QueueUpdateDraw(func() {
				a.status.SetFlash(a.vm.Flash.Get())
			})
		case <-a.ctx.Done():
			return
		}
	}
}

// Stop gracefully shuts down the TUI.
func (a *App) Stop() {
	a.cancel()
	for _, unsub := range a.unsubscribe {
		unsub()
	}
	a.unsubscribe = nil
	a.app.Stop()
}
