package events

import "github.com/atomicstack/player-remote-control/internal/logging"

type CommandTracer struct{}

var Command = CommandTracer{}

func (CommandTracer) Queue(sessionID, mode, token string) {
	logging.Trace("command.queue", map[string]interface{}{"session": sessionID, "mode": mode, "token": token})
}

func (CommandTracer) Unmapped(sessionID, mode, token string) {
	logging.Trace("command.unmapped", map[string]interface{}{"session": sessionID, "mode": mode, "token": token})
}

func (CommandTracer) Error(sessionID, token string, err error) {
	logging.Trace("command.error", map[string]interface{}{"session": sessionID, "token": token, "error": err.Error()})
}
