// Package mode defines the process-wide registry of UI modes: their button
// function tables, enter/leave hooks, and display policies. The registry is
// built once at startup and resolved on every button press.
package mode

import (
	"time"

	"github.com/atomicstack/player-remote-control/internal/session"
)

// Handler executes one button function. token is the full action token the
// press resolved from; arg carries the suffix when the token matched a
// prefix entry (e.g. "volume_up" matching "volume" yields arg "up").
type Handler func(s *session.Session, token, arg string) error

// Hook runs on mode enter or leave. action is "push" when the transition
// was a push onto the stack and "pop" when the mode is being returned to or
// left by a pop.
type Hook func(s *session.Session, action string) error

// Transition action names passed to hooks.
const (
	ActionPush = "push"
	ActionPop  = "pop"
)

// Screen2Policy declares how a mode drives the secondary screen.
type Screen2Policy string

const (
	// Screen2Default derives the policy from ShowExtendedText.
	Screen2Default Screen2Policy = ""

	// Screen2Inherit keeps whatever the session had before the transition.
	Screen2Inherit Screen2Policy = "inherit"

	// Screen2Periodic forces periodic secondary refreshes.
	Screen2Periodic Screen2Policy = "periodic"

	// Screen2Off forces the secondary screen off.
	Screen2Off Screen2Policy = "off"
)

// Definition describes one registered mode. Definitions are immutable after
// registration.
type Definition struct {
	Name      string
	Functions map[string]Handler
	OnEnter   Hook
	OnLeave   Hook

	// UpdateInterval, when positive, arms the periodic refresh for this
	// mode.
	UpdateInterval time.Duration

	// ShowExtendedText marks modes with continuous secondary-screen text.
	ShowExtendedText bool

	// Screen2 overrides the derived secondary-screen policy.
	Screen2 Screen2Policy

	// SuppressReenterOnPop skips re-running the enter hook when the stack
	// pops back to this mode, for modes with in-flight async work that a
	// re-enter would disrupt.
	SuppressReenterOnPop bool

	// HandlesTransition marks modes that render their own transition;
	// the stack skips the directional slide for them.
	HandlesTransition bool
}
