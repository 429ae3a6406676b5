package events

import "github.com/atomicstack/player-remote-control/internal/logging"

type ModeTracer struct{}

var Mode = ModeTracer{}

func (ModeTracer) Push(sessionID, name string, depth int) {
	logging.Trace("mode.push", map[string]interface{}{"session": sessionID, "mode": name, "depth": depth})
}

func (ModeTracer) Pop(sessionID, name string, depth int) {
	logging.Trace("mode.pop", map[string]interface{}{"session": sessionID, "mode": name, "depth": depth})
}

func (ModeTracer) PopEmpty(sessionID string) {
	logging.Trace("mode.pop.empty", map[string]interface{}{"session": sessionID})
}

func (ModeTracer) Set(sessionID, name string) {
	logging.Trace("mode.set", map[string]interface{}{"session": sessionID, "mode": name})
}

func (ModeTracer) Invalid(sessionID, name string) {
	logging.Trace("mode.invalid", map[string]interface{}{"session": sessionID, "mode": name})
}

func (ModeTracer) HookError(sessionID, name, hook, action string, err error) {
	logging.Trace("mode.hook.error", map[string]interface{}{
		"session": sessionID,
		"mode":    name,
		"hook":    hook,
		"action":  action,
		"error":   err.Error(),
	})
}

func (ModeTracer) Screen2(sessionID, state string) {
	logging.Trace("mode.screen2", map[string]interface{}{"session": sessionID, "state": state})
}
