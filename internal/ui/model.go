package ui

import (
	"context"
	"reflect"
	"time"

	"github.com/atomicstack/lcd-menu/internal/display"
	"github.com/atomicstack/lcd-menu/internal/menu"
	"github.com/atomicstack/lcd-menu/internal/theme"
	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
)

const (
	menuHeaderSeparator = "→"
	refreshInterval     = 50 * time.Millisecond
	jumpResetAfter      = time.Second
)

var styles = theme.Default()

type msgHandler func(tea.Msg) tea.Cmd

// sessionDoneMsg carries the outcome of a menu session.
type sessionDoneMsg struct {
	value    string
	selected bool
	err      error
}

type refreshMsg struct{}

// Model implements the Bubble Tea model that emulates the character display.
type Model struct {
	controller *menu.Controller[string]
	screen     *display.Buffer
	keys       keyMap
	help       help.Model

	width      int
	height     int
	showFooter bool

	revision uint64
	frame    []string
	hidden   bool
	query    string
	lastJump time.Time
	errMsg   string

	ctx     context.Context
	cancel  context.CancelFunc
	results chan sessionDoneMsg
	started bool
	done    bool
	outcome sessionDoneMsg

	handlers map[reflect.Type]msgHandler
}

// NewModel binds the controller and the display buffer it renders onto.
func NewModel(controller *menu.Controller[string], screen *display.Buffer, showFooter bool) *Model {
	ctx, cancel := context.WithCancel(context.Background())
	m := &Model{
		controller: controller,
		screen:     screen,
		keys:       defaultKeyMap(),
		help:       help.New(),
		showFooter: showFooter,
		ctx:        ctx,
		cancel:     cancel,
		results:    make(chan sessionDoneMsg, 1),
	}
	m.registerHandlers()
	m.syncScreen()
	return m
}

// Start runs the menu session in the background. The outcome is delivered
// through the channel read by waitForSession.
func (m *Model) Start() {
	if m.started {
		return
	}
	m.started = true
	go func() {
		value, selected, err := m.controller.Show(m.ctx)
		m.results <- sessionDoneMsg{value: value, selected: selected, err: err}
	}()
}

// Init is part of the tea.Model interface.
func (m *Model) Init() tea.Cmd {
	m.Start()
	return tea.Batch(waitForSession(m.results), refreshTick())
}

// Update responds to Bubble Tea messages.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if handler := m.handlerFor(msg); handler != nil {
		return m, handler(msg)
	}
	return m, nil
}

// Result reports the session outcome once the program has finished.
func (m *Model) Result() (value string, selected bool, err error) {
	return m.outcome.value, m.outcome.selected, m.outcome.err
}

// Done reports whether the session has ended.
func (m *Model) Done() bool {
	return m.done
}

func (m *Model) registerHandlers() {
	m.handlers = map[reflect.Type]msgHandler{
		reflect.TypeOf(tea.KeyMsg{}):        m.handleKeyMsg,
		reflect.TypeOf(tea.WindowSizeMsg{}): m.handleWindowSizeMsg,
		reflect.TypeOf(sessionDoneMsg{}):    m.handleSessionDoneMsg,
		reflect.TypeOf(refreshMsg{}):        m.handleRefreshMsg,
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

func waitForSession(results <-chan sessionDoneMsg) tea.Cmd {
	return func() tea.Msg {
		msg, ok := <-results
		if !ok {
			return nil
		}
		return msg
	}
}

func refreshTick() tea.Cmd {
	return tea.Tick(refreshInterval, func(time.Time) tea.Msg {
		return refreshMsg{}
	})
}

func (m *Model) handleSessionDoneMsg(msg tea.Msg) tea.Cmd {
	done, ok := msg.(sessionDoneMsg)
	if !ok {
		return nil
	}
	m.done = true
	m.outcome = done
	if done.err != nil {
		m.errMsg = done.err.Error()
	}
	m.syncScreen()
	return tea.Quit
}

func (m *Model) handleRefreshMsg(msg tea.Msg) tea.Cmd {
	if m.done {
		return nil
	}
	m.syncScreen()
	return refreshTick()
}

func (m *Model) handleWindowSizeMsg(msg tea.Msg) tea.Cmd {
	size, ok := msg.(tea.WindowSizeMsg)
	if !ok {
		return nil
	}
	m.width = size.Width
	m.height = size.Height
	m.help.Width = size.Width
	return nil
}

// syncScreen snapshots the display buffer when it changed since the last frame.
func (m *Model) syncScreen() {
	if m.screen == nil {
		return
	}
	rev := m.screen.Revision()
	if m.frame != nil && rev == m.revision {
		return
	}
	m.revision = rev
	m.frame = m.screen.Lines()
}
