package ui

import (
	"reflect"
	"time"

	"github.com/atomicstack/player-remote-control/internal/backend"
	"github.com/atomicstack/player-remote-control/internal/command"
	"github.com/atomicstack/player-remote-control/internal/display"
	"github.com/atomicstack/player-remote-control/internal/mode"
	"github.com/atomicstack/player-remote-control/internal/player"
	"github.com/atomicstack/player-remote-control/internal/sched"
	"github.com/atomicstack/player-remote-control/internal/session"
	"github.com/atomicstack/player-remote-control/internal/stack"
	"github.com/atomicstack/player-remote-control/internal/theme"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

var styles = theme.Default()

type msgHandler func(tea.Msg) tea.Cmd

// TimerFiredMsg funnels a refresh-timer fire back onto the UI loop. The
// timer service callback must send this instead of touching session state.
type TimerFiredMsg struct {
	SessionID  string
	CallbackID string
}

type animFrameMsg struct{}

// Options configures the simulator model.
type Options struct {
	SessionName     string
	Width           int
	Height          int
	Verbose         bool
	ScreenWidth     int
	Screen2Interval time.Duration
	Tunables        player.Tunables
}

// Model implements the Bubble Tea model for the player remote simulator.
type Model struct {
	store     *session.Store
	s         *session.Session
	registry  *mode.Registry
	mgr       *stack.Manager
	bus       *command.Bus
	scheduler *sched.Scheduler
	player    *player.Player
	screen    *Screen
	watcher   *backend.Watcher

	keys    keyMap
	verbose bool

	width       int
	height      int
	fixedWidth  bool
	fixedHeight bool

	lines      display.Snapshot
	screen2    string
	errMsg     string
	infoMsg    string
	infoExpire time.Time

	handlers map[reflect.Type]msgHandler

	now func() time.Time
}

// NewModel wires the control core to the simulator: registry, mode set,
// session store, transition manager and screen.
func NewModel(opts Options, p *player.Player, scheduler *sched.Scheduler, watcher *backend.Watcher) *Model {
	registry := mode.NewRegistry()
	screen := NewScreen(opts.ScreenWidth, true, true)
	mgr := stack.New(registry, screen, scheduler)
	store := session.NewStore(mgr.Teardown)

	m := &Model{
		store:     store,
		registry:  registry,
		mgr:       mgr,
		bus:       command.New(registry),
		scheduler: scheduler,
		player:    p,
		screen:    screen,
		watcher:   watcher,
		keys:      defaultKeyMap(),
		verbose:   opts.Verbose,
		now:       time.Now,
	}
	if opts.Width > 0 {
		m.width = opts.Width
		m.fixedWidth = true
	}
	if opts.Height > 0 {
		m.height = opts.Height
		m.fixedHeight = true
	}

	modes := player.RegisterModes(registry, mgr, p, opts.Tunables)
	modes.SetClock(func() time.Time { return m.now() })

	name := opts.SessionName
	if name == "" {
		name = "default"
	}
	m.s = session.New(name)
	m.s.Periodic.Screen2Tick = opts.Screen2Interval
	m.s.Hold.Window = opts.Tunables.RepeatWindow
	store.Add(m.s)

	screen.SetRenderer(m.renderLines)
	mgr.Push(m.s, player.ModeHome, nil)
	m.refresh()
	m.registerHandlers()
	return m
}

// Session exposes the active control session, primarily for tests.
func (m *Model) Session() *session.Session {
	return m.s
}

// Screen exposes the simulated display, primarily for tests.
func (m *Model) Screen() *Screen {
	return m.screen
}

// Init is part of the tea.Model interface.
func (m *Model) Init() tea.Cmd {
	if m.watcher != nil {
		return waitForBackendEvent(m.watcher)
	}
	return nil
}

// Update responds to Bubble Tea messages.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if handler := m.handlerFor(msg); handler != nil {
		return m, handler(msg)
	}
	return m, nil
}

func (m *Model) registerHandlers() {
	m.handlers = map[reflect.Type]msgHandler{
		reflect.TypeOf(tea.KeyMsg{}):        m.handleKeyMsg,
		reflect.TypeOf(tea.WindowSizeMsg{}): m.handleWindowSizeMsg,
		reflect.TypeOf(TimerFiredMsg{}):     m.handleTimerFired,
		reflect.TypeOf(animFrameMsg{}):      m.handleAnimFrame,
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

func (m *Model) handleKeyMsg(msg tea.Msg) tea.Cmd {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}
	if key.Matches(keyMsg, m.keys.Quit) {
		if m.watcher != nil {
			m.watcher.Stop()
		}
		return tea.Quit
	}
	token, ok := m.tokenFor(keyMsg)
	if !ok {
		return nil
	}
	m.s.Hold.Observe(token, m.now(), 0)
	if !m.bus.Execute(m.s, token) && m.verbose {
		m.setInfo("no binding for " + token)
	}
	return m.afterDispatch()
}

func (m *Model) handleWindowSizeMsg(msg tea.Msg) tea.Cmd {
	sizeMsg, ok := msg.(tea.WindowSizeMsg)
	if !ok {
		return nil
	}
	if !m.fixedWidth {
		m.width = sizeMsg.Width
	}
	if !m.fixedHeight {
		m.height = sizeMsg.Height
	}
	return nil
}

// handleTimerFired services a periodic refresh fire on the UI goroutine.
func (m *Model) handleTimerFired(msg tea.Msg) tea.Cmd {
	fired, ok := msg.(TimerFiredMsg)
	if !ok {
		return nil
	}
	if fired.CallbackID != sched.CallbackRefresh {
		return nil
	}
	s, ok := m.store.Get(fired.SessionID)
	if !ok {
		return nil
	}
	m.scheduler.OnFire(s.ID, &s.Periodic, m.now(), m.screen)
	return m.afterDispatch()
}

func (m *Model) handleAnimFrame(msg tea.Msg) tea.Cmd {
	if m.screen.Step() {
		m.lines = m.screen.FrameLines()
		return animFrame()
	}
	m.refresh()
	return nil
}

// afterDispatch consumes pending refresh requests and starts the animation
// ticker when a transition began during dispatch.
func (m *Model) afterDispatch() tea.Cmd {
	if m.screen.AnimationInProgress() {
		m.screen.ConsumePrimaryUpdate()
		m.lines = m.screen.FrameLines()
		return animFrame()
	}
	if m.screen.ConsumePrimaryUpdate() {
		m.lines = m.screen.CurrentLines()
	}
	if m.screen.ConsumeScreen2Update() {
		m.screen2 = m.renderScreen2()
	}
	return nil
}

// refresh redraws both screens unconditionally.
func (m *Model) refresh() {
	m.screen.ConsumePrimaryUpdate()
	m.screen.ConsumeScreen2Update()
	m.lines = m.screen.CurrentLines()
	if m.s.Screen2 == session.Screen2Periodic {
		m.screen2 = m.renderScreen2()
	}
}

func (m *Model) setInfo(text string) {
	m.infoMsg = text
	m.infoExpire = m.now().Add(3 * time.Second)
}

func animFrame() tea.Cmd {
	return tea.Tick(time.Second/60, func(time.Time) tea.Msg {
		return animFrameMsg{}
	})
}

