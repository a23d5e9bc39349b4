package ui

import (
	"reflect"
	"time"

	"github.com/atomicstack/training-mod-tui/internal/backend"
	"github.com/atomicstack/training-mod-tui/internal/data/dispatcher"
	"github.com/atomicstack/training-mod-tui/internal/menu"
	"github.com/atomicstack/training-mod-tui/internal/state"
	"github.com/atomicstack/training-mod-tui/internal/theme"
	"github.com/atomicstack/training-mod-tui/internal/ui/command"
	uistate "github.com/atomicstack/training-mod-tui/internal/ui/state"
	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
)

type Mode int

const (
	ModeMenu Mode = iota
	ModeSearch
)

var styles = theme.Default()

type msgHandler func(tea.Msg) tea.Cmd

// Options configures a Model. Zero values give a free-sized, footerless
// model with in-memory defaults and no backend.
type Options struct {
	Width      int
	Height     int
	ShowFooter bool
	Verbose    bool
	Defaults   state.DefaultsStore
	Backend    *backend.Service
}

// Model implements the Bubble Tea model for the training menu.
type Model struct {
	app  *menu.App
	keys KeyMap
	help help.Model
	mode Mode

	search            *uistate.Search
	filterCursor      cursor.Model
	filterCursorDirty bool

	errMsg      string
	infoMsg     string
	infoExpire  time.Time
	width       int
	height      int
	fixedWidth  bool
	fixedHeight bool
	showFooter  bool
	verbose     bool
	quitting    bool

	backend        *backend.Service
	backendLastErr string
	dispatcher     *dispatcher.Dispatcher
	defaults       state.DefaultsStore
	bus            *command.Bus
	lastJSON       string

	handlers map[reflect.Type]msgHandler
}

// NewModel wraps app in a Bubble Tea model.
func NewModel(app *menu.App, opts Options) *Model {
	defaults := opts.Defaults
	if defaults == nil {
		defaults = state.NewDefaultsStore("")
	}
	m := &Model{
		app:        app,
		keys:       DefaultKeyMap(),
		help:       help.New(),
		mode:       ModeMenu,
		showFooter: opts.ShowFooter,
		verbose:    opts.Verbose,
		backend:    opts.Backend,
		dispatcher: dispatcher.New(app),
		defaults:   defaults,
		bus:        command.New(),
		lastJSON:   app.JSON(),
	}
	if opts.Width > 0 {
		m.width = opts.Width
		m.fixedWidth = true
		m.help.Width = opts.Width
	}
	if opts.Height > 0 {
		m.height = opts.Height
		m.fixedHeight = true
	}
	c := cursor.New()
	if styles.Cursor != nil {
		c.Style = styles.Cursor.Copy()
	}
	if styles.Filter != nil {
		c.TextStyle = styles.Filter.Copy()
	}
	c.SetChar(" ")
	m.filterCursor = c
	m.registerHandlers()
	return m
}

// App exposes the menu the model drives.
func (m *Model) App() *menu.App { return m.app }

// Init is part of the tea.Model interface.
func (m *Model) Init() tea.Cmd {
	cmds := []tea.Cmd{}
	if m.backend != nil {
		cmds = append(cmds, waitForBackendEvent(m.backend))
	}
	if cmd := m.filterCursor.Focus(); cmd != nil {
		cmds = append(cmds, cmd)
	}
	if len(cmds) == 0 {
		return nil
	}
	return tea.Batch(cmds...)
}

// Update responds to Bubble Tea messages.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	cmds := make([]tea.Cmd, 0, 4)
	if cmd := m.updateFilterCursorModel(msg); cmd != nil {
		cmds = append(cmds, cmd)
	}
	if handler := m.handlerFor(msg); handler != nil {
		if cmd := handler(msg); cmd != nil {
			cmds = append(cmds, cmd)
		}
	}
	return m, m.finishUpdate(cmds)
}

func (m *Model) registerHandlers() {
	m.handlers = map[reflect.Type]msgHandler{
		reflect.TypeOf(tea.KeyMsg{}):        m.handleKeyMsg,
		reflect.TypeOf(tea.WindowSizeMsg{}): m.handleWindowSizeMsg,
		reflect.TypeOf(command.Result{}):    m.handleActionResultMsg,
		reflect.TypeOf(backendEventMsg{}):   m.handleBackendEventMsg,
		reflect.TypeOf(backendDoneMsg{}):    m.handleBackendDoneMsg,
	}
}

func (m *Model) handlerFor(msg tea.Msg) msgHandler {
	if msg == nil || m.handlers == nil {
		return nil
	}
	t := reflect.TypeOf(msg)
	if handler, ok := m.handlers[t]; ok {
		return handler
	}
	if t.Kind() == reflect.Ptr {
		if handler, ok := m.handlers[t.Elem()]; ok {
			return handler
		}
	}
	return nil
}

func (m *Model) finishUpdate(cmds []tea.Cmd) tea.Cmd {
	m.publishIfChanged()
	if m.filterCursorDirty {
		m.filterCursorDirty = false
		m.filterCursor.Blink = false
		if cmd := m.filterCursor.BlinkCmd(); cmd != nil {
			cmds = append(cmds, cmd)
		}
	}
	if len(cmds) == 0 {
		return nil
	}
	return tea.Batch(cmds...)
}

// publishIfChanged hands a snapshot to the backend whenever the serialized
// selections differ from the last one seen.
func (m *Model) publishIfChanged() {
	current := m.app.JSON()
	if current == m.lastJSON {
		return
	}
	m.lastJSON = current
	if m.backend != nil {
		m.backend.Publish(m.app.Selections())
	}
}
