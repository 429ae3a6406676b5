// Package stack orchestrates mode transitions for a session: push, pop and
// set over the mode stack, the parallel scroll-state substack, hook
// invocation, secondary-screen policy, and scheduler re-arming. Transition
// failures are reported and contained; nothing here is fatal to a session.
package stack

import (
	"fmt"
	"time"

	"github.com/atomicstack/player-remote-control/internal/display"
	"github.com/atomicstack/player-remote-control/internal/logging"
	"github.com/atomicstack/player-remote-control/internal/logging/events"
	"github.com/atomicstack/player-remote-control/internal/mode"
	"github.com/atomicstack/player-remote-control/internal/sched"
	"github.com/atomicstack/player-remote-control/internal/scroll"
	"github.com/atomicstack/player-remote-control/internal/session"
)

// Manager drives mode transitions against the registry, display and
// scheduler collaborators.
type Manager struct {
	registry *mode.Registry
	display  display.Display
	sched    *sched.Scheduler

	now func() time.Time
}

// New creates a transition manager.
func New(registry *mode.Registry, d display.Display, scheduler *sched.Scheduler) *Manager {
	return &Manager{
		registry: registry,
		display:  d,
		sched:    scheduler,
		now:      time.Now,
	}
}

// Registry exposes the mode registry for consumers that dispatch buttons.
func (m *Manager) Registry() *mode.Registry {
	return m.registry
}

// Push enters a new mode on top of the stack. Pushing an unregistered mode
// name is a reported internal error: the transition is aborted and the
// session stays in its prior mode. Hook failures are logged and do not
// unwind the stack mutation already applied.
func (m *Manager) Push(s *session.Session, name string, params map[string]interface{}) bool {
	if !m.registry.IsValid(name) {
		logging.Error(fmt.Errorf("push of unregistered mode %q on session %s", name, s.ID))
		events.Mode.Invalid(s.ID, name)
		return false
	}
	if cur, ok := s.CurrentMode(); ok {
		m.runHook(s, cur.Name, hookLeave, mode.ActionPush)
	}
	s.Scroll = append(s.Scroll, scroll.NewState(1))
	if params == nil {
		params = make(map[string]interface{})
	}
	s.Modes = append(s.Modes, session.ModeEntry{Name: name, Params: params})
	m.runHook(s, name, hookEnter, mode.ActionPush)
	m.recomputeScreen2(s, name)
	m.rearm(s)
	m.display.RequestUpdate()
	events.Mode.Push(s.ID, name, s.Depth())
	return true
}

// Pop leaves the current mode and returns its name. Popping an empty stack
// is a no-op that still re-arms the scheduler and requests a refresh. The
// revealed mode is re-entered with action "pop" unless it suppresses
// re-entry.
func (m *Manager) Pop(s *session.Session) (string, bool) {
	if len(s.Modes) == 0 {
		events.Mode.PopEmpty(s.ID)
		m.rearm(s)
		m.display.RequestUpdate()
		return "", false
	}
	popped := s.Modes[len(s.Modes)-1]
	m.runHook(s, popped.Name, hookLeave, mode.ActionPop)
	s.Modes = s.Modes[:len(s.Modes)-1]
	s.Scroll = s.Scroll[:len(s.Scroll)-1]

	if next, ok := s.CurrentMode(); ok {
		if def, found := m.registry.Definition(next.Name); !found || !def.SuppressReenterOnPop {
			m.runHook(s, next.Name, hookEnter, mode.ActionPop)
		}
		m.recomputeScreen2(s, next.Name)
	}
	m.rearm(s)
	m.display.RequestUpdate()
	events.Mode.Pop(s.ID, popped.Name, s.Depth())
	return popped.Name, true
}

// Set drains the stack and pushes the given mode as the new root. Every
// intermediate mode's leave hook fires in LIFO order before the new mode is
// entered. An unregistered name aborts before the drain so the session
// keeps its stack.
func (m *Manager) Set(s *session.Session, name string, params map[string]interface{}) bool {
	if !m.registry.IsValid(name) {
		logging.Error(fmt.Errorf("set of unregistered mode %q on session %s", name, s.ID))
		events.Mode.Invalid(s.ID, name)
		return false
	}
	for len(s.Modes) > 0 {
		m.Pop(s)
	}
	events.Mode.Set(s.ID, name)
	return m.Push(s, name, params)
}

// PushTransition wraps Push with a leftward transition animation built from
// the snapshots before and after the transition. Modes that handle their
// own transition rendering skip the animation.
func (m *Manager) PushTransition(s *session.Session, name string, params map[string]interface{}) bool {
	old := m.display.CurrentLines()
	if !m.Push(s, name, params) {
		return false
	}
	if def, ok := m.registry.Definition(name); ok && def.HandlesTransition {
		return true
	}
	m.display.PushLeft(old, m.display.CurrentLines())
	return true
}

// PopTransition wraps Pop with a rightward transition animation.
func (m *Manager) PopTransition(s *session.Session) (string, bool) {
	old := m.display.CurrentLines()
	name, ok := m.Pop(s)
	if !ok {
		return "", false
	}
	if def, found := m.registry.Definition(name); found && def.HandlesTransition {
		return name, true
	}
	m.display.PushRight(old, m.display.CurrentLines())
	return name, true
}

// Rearm recomputes the session's periodic refresh from its current mode.
// Exposed for collaborators that change refresh-relevant state outside a
// transition.
func (m *Manager) Rearm(s *session.Session) {
	m.rearm(s)
}

// Teardown cancels the session's refresh timer; wired as the session-store
// teardown so disconnects never leave timers firing against dead sessions.
func (m *Manager) Teardown(s *session.Session) {
	m.sched.Cancel(s.ID, &s.Periodic)
}

const (
	hookEnter = "enter"
	hookLeave = "leave"
)

// runHook invokes a mode's enter or leave hook. Hooks are best-effort:
// errors and panics are logged with context and never abort the transition.
func (m *Manager) runHook(s *session.Session, modeName, kind, action string) {
	def, ok := m.registry.Definition(modeName)
	if !ok {
		return
	}
	hook := def.OnEnter
	if kind == hookLeave {
		hook = def.OnLeave
	}
	if hook == nil {
		return
	}
	defer func() {
		if r := recover(); r != nil {
			err := fmt.Errorf("mode %q %s hook panicked on %s: %v", modeName, kind, action, r)
			logging.Error(err)
			events.Mode.HookError(s.ID, modeName, kind, action, err)
		}
	}()
	if err := hook(s, action); err != nil {
		logging.Error(fmt.Errorf("mode %q %s hook on %s: %w", modeName, kind, action, err))
		events.Mode.HookError(s.ID, modeName, kind, action, err)
	}
}

// recomputeScreen2 applies the entered mode's secondary-screen policy. An
// inherit policy keeps the session's prior value; the default policy
// derives periodic refreshes from ShowExtendedText when the display shows
// extended text at all.
func (m *Manager) recomputeScreen2(s *session.Session, modeName string) {
	def, ok := m.registry.Definition(modeName)
	if !ok {
		return
	}
	switch def.Screen2 {
	case mode.Screen2Inherit:
		// Carry the prior state forward; a non-periodic carry is marked
		// inherited so the display knows the content is borrowed.
		if s.Screen2 != session.Screen2Periodic {
			s.Screen2 = session.Screen2Inherited
		}
	case mode.Screen2Periodic:
		s.Screen2 = session.Screen2Periodic
	case mode.Screen2Off:
		s.Screen2 = session.Screen2None
	default:
		if def.ShowExtendedText && m.display.ShowsExtendedText() {
			s.Screen2 = session.Screen2Periodic
		} else {
			s.Screen2 = session.Screen2None
		}
	}
	events.Mode.Screen2(s.ID, s.Screen2.String())
}

func (m *Manager) rearm(s *session.Session) {
	var interval time.Duration
	if cur, ok := s.CurrentMode(); ok {
		if def, found := m.registry.Definition(cur.Name); found {
			interval = def.UpdateInterval
		}
	}
	m.sched.Rearm(s.ID, &s.Periodic, interval, s.Screen2 == session.Screen2Periodic, m.now())
}
