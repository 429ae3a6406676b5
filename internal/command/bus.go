// Package command dispatches button-press events to the handler the mode
// registry resolves for them. Handler failures are contained: an erroring
// or panicking handler never takes the session down.
package command

import (
	"fmt"

	"github.com/atomicstack/player-remote-control/internal/logging"
	"github.com/atomicstack/player-remote-control/internal/logging/events"
	"github.com/atomicstack/player-remote-control/internal/mode"
	"github.com/atomicstack/player-remote-control/internal/session"
)

// Bus routes action tokens through the registry's two-stage lookup.
type Bus struct {
	registry *mode.Registry
}

// New initialises a command bus over the registry.
func New(registry *mode.Registry) *Bus {
	return &Bus{registry: registry}
}

// Execute resolves token against the session's current mode and runs the
// handler. Returns false when no handler matched at any lookup stage.
func (b *Bus) Execute(s *session.Session, token string) bool {
	modeName := ""
	if cur, ok := s.CurrentMode(); ok {
		modeName = cur.Name
	}
	handler, arg, ok := b.registry.Resolve(modeName, token)
	if !ok {
		events.Command.Unmapped(s.ID, modeName, token)
		return false
	}
	events.Command.Queue(s.ID, modeName, token)
	b.run(s, token, arg, handler)
	return true
}

func (b *Bus) run(s *session.Session, token, arg string, handler mode.Handler) {
	defer func() {
		if r := recover(); r != nil {
			err := fmt.Errorf("handler for %q panicked: %v", token, r)
			logging.Error(err)
			events.Command.Error(s.ID, token, err)
		}
	}()
	if err := handler(s, token, arg); err != nil {
		logging.Error(fmt.Errorf("handler for %q: %w", token, err))
		events.Command.Error(s.ID, token, err)
	}
}
