package events

import (
	"time"

	"github.com/atomicstack/player-remote-control/internal/logging"
)

type TimerTracer struct{}

var Timer = TimerTracer{}

func (TimerTracer) Arm(sessionID string, at time.Time, interval time.Duration) {
	logging.Trace("timer.arm", map[string]interface{}{
		"session":  sessionID,
		"at":       at.UTC(),
		"interval": interval.String(),
	})
}

func (TimerTracer) Disarm(sessionID string) {
	logging.Trace("timer.disarm", map[string]interface{}{"session": sessionID})
}

func (TimerTracer) Fire(sessionID string, next time.Time) {
	logging.Trace("timer.fire", map[string]interface{}{"session": sessionID, "next": next.UTC()})
}

func (TimerTracer) SkipBusy(sessionID string) {
	logging.Trace("timer.skip.busy", map[string]interface{}{"session": sessionID})
}

func (TimerTracer) Resync(sessionID string, at time.Time) {
	logging.Trace("timer.resync", map[string]interface{}{"session": sessionID, "at": at.UTC()})
}
