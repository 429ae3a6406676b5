// Package session holds per-client state for the remote-control core: the
// mode stack, its parallel scroll-state stack, periodic refresh state, and
// the input trackers. A session exists from client connect to disconnect
// and is only ever touched from the event loop.
package session

import (
	"github.com/atomicstack/player-remote-control/internal/input"
	"github.com/atomicstack/player-remote-control/internal/sched"
	"github.com/atomicstack/player-remote-control/internal/scroll"
	"github.com/google/uuid"
)

// Screen2Mode describes how the secondary screen is driven for the current
// mode.
type Screen2Mode int

const (
	// Screen2None leaves the secondary screen alone.
	Screen2None Screen2Mode = iota

	// Screen2Periodic refreshes the secondary screen on the periodic tick.
	Screen2Periodic

	// Screen2Inherited carries the previous mode's secondary-screen state.
	Screen2Inherited
)

func (m Screen2Mode) String() string {
	switch m {
	case Screen2Periodic:
		return "periodic"
	case Screen2Inherited:
		return "inherited"
	default:
		return "none"
	}
}

// ModeEntry is one element of the mode stack: the mode name plus the
// parameters it was pushed with.
type ModeEntry struct {
	Name   string
	Params map[string]interface{}
}

// Session is the per-client state. Modes and Scroll always have equal
// length; the top of each is the current context.
type Session struct {
	ID   string
	Name string

	Modes  []ModeEntry
	Scroll []*scroll.State

	Periodic sched.State
	Screen2  Screen2Mode

	MultiTap scroll.MultiTap
	Hold     input.HoldState
}

// New creates a session for a freshly connected client.
func New(name string) *Session {
	return &Session{
		ID:   uuid.NewString(),
		Name: name,
	}
}

// Depth returns the mode stack depth.
func (s *Session) Depth() int {
	return len(s.Modes)
}

// CurrentMode returns the top of the mode stack.
func (s *Session) CurrentMode() (ModeEntry, bool) {
	if len(s.Modes) == 0 {
		return ModeEntry{}, false
	}
	return s.Modes[len(s.Modes)-1], true
}

// CurrentScroll returns the top of the scroll-state stack, or nil when the
// stack is empty.
func (s *Session) CurrentScroll() *scroll.State {
	if len(s.Scroll) == 0 {
		return nil
	}
	return s.Scroll[len(s.Scroll)-1]
}

// Param reads a parameter from the current mode entry.
func (s *Session) Param(key string) (interface{}, bool) {
	cur, ok := s.CurrentMode()
	if !ok || cur.Params == nil {
		return nil, false
	}
	v, ok := cur.Params[key]
	return v, ok
}

// SetParam writes a parameter on the current mode entry. A no-op when the
// stack is empty.
func (s *Session) SetParam(key string, value interface{}) {
	if len(s.Modes) == 0 {
		return
	}
	entry := &s.Modes[len(s.Modes)-1]
	if entry.Params == nil {
		entry.Params = make(map[string]interface{})
	}
	entry.Params[key] = value
}

// IntParam reads an integer parameter from the current mode entry,
// returning fallback when absent or of another type.
func (s *Session) IntParam(key string, fallback int) int {
	v, ok := s.Param(key)
	if !ok {
		return fallback
	}
	n, ok := v.(int)
	if !ok {
		return fallback
	}
	return n
}
