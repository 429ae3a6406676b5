package sched

import (
	"sync"
	"time"
)

type timerKey struct {
	sessionID  string
	callbackID string
}

// Timers is the production TimerService. Fires are delivered through a
// single callback so the owner can funnel them back onto its event loop;
// the callback runs on a timer goroutine and must not touch session state
// directly.
type Timers struct {
	fire func(sessionID, callbackID string)

	mu     sync.Mutex
	active map[timerKey]*time.Timer
}

// NewTimers returns a TimerService delivering fires via the callback.
func NewTimers(fire func(sessionID, callbackID string)) *Timers {
	return &Timers{
		fire:   fire,
		active: make(map[timerKey]*time.Timer),
	}
}

// SetTimer arms a timer for the identity, replacing any existing one.
func (t *Timers) SetTimer(sessionID string, at time.Time, callbackID string) {
	key := timerKey{sessionID, callbackID}
	t.mu.Lock()
	defer t.mu.Unlock()
	if prev, ok := t.active[key]; ok {
		prev.Stop()
	}
	delay := time.Until(at)
	if delay < 0 {
		delay = 0
	}
	t.active[key] = time.AfterFunc(delay, func() {
		t.mu.Lock()
		delete(t.active, key)
		t.mu.Unlock()
		if t.fire != nil {
			t.fire(sessionID, callbackID)
		}
	})
}

// CancelTimers stops the timer for the identity and reports whether one
// was armed.
func (t *Timers) CancelTimers(sessionID, callbackID string) bool {
	key := timerKey{sessionID, callbackID}
	t.mu.Lock()
	defer t.mu.Unlock()
	timer, ok := t.active[key]
	if !ok {
		return false
	}
	timer.Stop()
	delete(t.active, key)
	return true
}

// CancelSession stops every timer armed for the session.
func (t *Timers) CancelSession(sessionID string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	for key, timer := range t.active {
		if key.sessionID == sessionID {
			timer.Stop()
			delete(t.active, key)
		}
	}
}

// Stop cancels all armed timers. Used at shutdown.
func (t *Timers) Stop() {
	t.mu.Lock()
	defer t.mu.Unlock()
	for key, timer := range t.active {
		timer.Stop()
		delete(t.active, key)
	}
}
