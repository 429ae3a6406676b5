// Package sched provides the per-session periodic refresh scheduler. One
// recurring timer exists per session and callback identity; re-arming
// always cancels the previous timer first, and the next fire time is
// derived from the previously scheduled time rather than from "now" so
// handler latency never accumulates into drift.
package sched

import (
	"time"

	"github.com/atomicstack/player-remote-control/internal/display"
	"github.com/atomicstack/player-remote-control/internal/logging/events"
)

// CallbackRefresh identifies the periodic display-refresh timer.
const CallbackRefresh = "periodic-refresh"

// DefaultScreen2Interval is the tick used when only the secondary screen
// needs refreshing and the mode declares no interval of its own.
const DefaultScreen2Interval = time.Second

// TimerService is the external timer collaborator. Implementations must
// support cancelling by session and callback identity.
type TimerService interface {
	SetTimer(sessionID string, at time.Time, callbackID string)
	CancelTimers(sessionID, callbackID string) bool
}

// State is the per-session scheduling state, owned by the session.
type State struct {
	// Interval is the mode-declared refresh interval; zero means the mode
	// wants no primary refresh.
	Interval time.Duration

	// SecondaryActive records whether the secondary screen refreshes
	// periodically.
	SecondaryActive bool

	// Screen2Tick overrides DefaultScreen2Interval when positive.
	Screen2Tick time.Duration

	// NextFireAt is the absolute time of the next scheduled fire.
	NextFireAt time.Time

	// Armed reports whether a timer is currently set.
	Armed bool
}

// Tick returns the effective recurrence interval.
func (st *State) Tick() time.Duration {
	if st.Interval > 0 {
		return st.Interval
	}
	if st.Screen2Tick > 0 {
		return st.Screen2Tick
	}
	return DefaultScreen2Interval
}

// Scheduler arms and services the periodic refresh timers.
type Scheduler struct {
	timers TimerService
}

// New returns a Scheduler backed by the given timer service.
func New(timers TimerService) *Scheduler {
	return &Scheduler{timers: timers}
}

// Rearm cancels any existing refresh timer for the session and arms a new
// one when the mode declares an update interval or the secondary screen is
// periodic. Otherwise the session is left disarmed.
func (s *Scheduler) Rearm(sessionID string, st *State, interval time.Duration, screen2Periodic bool, now time.Time) {
	s.timers.CancelTimers(sessionID, CallbackRefresh)
	st.Interval = interval
	st.SecondaryActive = screen2Periodic
	if interval <= 0 && !screen2Periodic {
		st.Armed = false
		st.NextFireAt = time.Time{}
		events.Timer.Disarm(sessionID)
		return
	}
	st.NextFireAt = now.Add(st.Tick())
	st.Armed = true
	s.timers.SetTimer(sessionID, st.NextFireAt, CallbackRefresh)
	events.Timer.Arm(sessionID, st.NextFireAt, st.Tick())
}

// OnFire services one timer fire at the given time. The next fire is the
// first whole multiple of the interval past now, counted from the
// previously scheduled fire time. A busy display skips the visible refresh
// for this tick but never the reschedule.
func (s *Scheduler) OnFire(sessionID string, st *State, now time.Time, d display.Display) {
	if !st.Armed {
		return
	}
	next := st.NextFireAt
	if next.IsZero() {
		next = now
	}
	tick := st.Tick()
	for !next.After(now) {
		next = next.Add(tick)
	}
	st.NextFireAt = next
	s.timers.SetTimer(sessionID, next, CallbackRefresh)
	events.Timer.Fire(sessionID, next)

	if d == nil {
		return
	}
	if d.IsUpdateInProgress() {
		events.Timer.SkipBusy(sessionID)
		return
	}
	if st.Interval > 0 {
		d.RequestUpdate()
	}
	if st.SecondaryActive && d.HasSecondaryScreen() && !d.AnimationInProgress() {
		d.RequestScreen2Update()
	}
}

// Resync re-arms an armed session's timer at an absolute time, aligning
// the refresh to an external clock boundary. Disarmed sessions are left
// alone.
func (s *Scheduler) Resync(sessionID string, st *State, at time.Time) {
	if !st.Armed {
		return
	}
	s.timers.CancelTimers(sessionID, CallbackRefresh)
	st.NextFireAt = at
	s.timers.SetTimer(sessionID, at, CallbackRefresh)
	events.Timer.Resync(sessionID, at)
}

// Cancel tears down the session's refresh timer, for disconnect.
func (s *Scheduler) Cancel(sessionID string, st *State) {
	s.timers.CancelTimers(sessionID, CallbackRefresh)
	st.Armed = false
	st.NextFireAt = time.Time{}
	events.Timer.Disarm(sessionID)
}
