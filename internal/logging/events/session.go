package events

import "github.com/atomicstack/player-remote-control/internal/logging"

type SessionTracer struct{}

var Session = SessionTracer{}

func (SessionTracer) Connect(sessionID, name string) {
	logging.Trace("session.connect", map[string]interface{}{"session": sessionID, "name": name})
}

func (SessionTracer) Disconnect(sessionID string) {
	logging.Trace("session.disconnect", map[string]interface{}{"session": sessionID})
}
