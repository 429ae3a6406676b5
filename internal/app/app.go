package app

import (
	"errors"
	"sort"
	"sync/atomic"
	"time"

	"github.com/atomicstack/player-remote-control/internal/backend"
	"github.com/atomicstack/player-remote-control/internal/mode"
	"github.com/atomicstack/player-remote-control/internal/player"
	"github.com/atomicstack/player-remote-control/internal/sched"
	"github.com/atomicstack/player-remote-control/internal/stack"
	"github.com/atomicstack/player-remote-control/internal/ui"
	tea "github.com/charmbracelet/bubbletea"
)

// Config describes user-provided application options.
type Config struct {
	SessionName     string
	Width           int
	Height          int
	Verbose         bool
	ListModes       bool
	Screen2Interval time.Duration
}

// Run bootstraps and executes the Bubble Tea program.
func Run(cfg Config, tun player.Tunables) error {
	p := player.New(player.DemoLibrary())

	watcher := backend.NewWatcher(p, time.Second)
	defer func() {
		watcher.Stop()
		watcher.Wait()
	}()

	// Timer fires happen on timer goroutines; funnel them onto the UI
	// loop through the program. The program does not exist yet when the
	// timer service is built, hence the indirection.
	var sink atomic.Pointer[tea.Program]
	timers := sched.NewTimers(func(sessionID, callbackID string) {
		if prog := sink.Load(); prog != nil {
			prog.Send(ui.TimerFiredMsg{SessionID: sessionID, CallbackID: callbackID})
		}
	})
	defer timers.Stop()

	model := ui.NewModel(ui.Options{
		SessionName:     cfg.SessionName,
		Width:           cfg.Width,
		Height:          cfg.Height,
		Verbose:         cfg.Verbose,
		Screen2Interval: cfg.Screen2Interval,
		Tunables:        tun,
	}, p, sched.New(timers), watcher)

	program := tea.NewProgram(model, tea.WithAltScreen())
	sink.Store(program)
	_, err := program.Run()
	if errors.Is(err, tea.ErrProgramKilled) {
		return nil
	}
	return err
}

// ModeDefinitions builds the standard registry and returns its definitions
// sorted by name, for the mode listing command.
func ModeDefinitions(tun player.Tunables) []mode.Definition {
	registry := mode.NewRegistry()
	p := player.New(player.DemoLibrary())
	timers := sched.NewTimers(nil)
	mgr := stack.New(registry, nil, sched.New(timers))
	player.RegisterModes(registry, mgr, p, tun)

	names := registry.Names()
	sort.Strings(names)
	defs := make([]mode.Definition, 0, len(names))
	for _, name := range names {
		if def, ok := registry.Definition(name); ok {
			defs = append(defs, *def)
		}
	}
	return defs
}
