package sched

import (
	"testing"
	"time"

	"github.com/atomicstack/player-remote-control/internal/display"
)

type fakeTimers struct {
	set      []time.Time
	cancels  int
	wasArmed bool
}

func (f *fakeTimers) SetTimer(sessionID string, at time.Time, callbackID string) {
	f.set = append(f.set, at)
}

func (f *fakeTimers) CancelTimers(sessionID, callbackID string) bool {
	f.cancels++
	return f.wasArmed
}

type fakeDisplay struct {
	busy       bool
	animating  bool
	secondary  bool
	updates    int
	s2Updates  int
	snapshots  int
	pushLefts  int
	pushRights int
}

func (f *fakeDisplay) CurrentLines() display.Snapshot {
	f.snapshots++
	return display.Snapshot{}
}
func (f *fakeDisplay) PushLeft(old, new display.Snapshot)  { f.pushLefts++ }
func (f *fakeDisplay) PushRight(old, new display.Snapshot) { f.pushRights++ }
func (f *fakeDisplay) RequestUpdate()                      { f.updates++ }
func (f *fakeDisplay) RequestScreen2Update()               { f.s2Updates++ }
func (f *fakeDisplay) HasSecondaryScreen() bool            { return f.secondary }
func (f *fakeDisplay) ShowsExtendedText() bool             { return f.secondary }
func (f *fakeDisplay) IsUpdateInProgress() bool            { return f.busy }
func (f *fakeDisplay) AnimationInProgress() bool           { return f.animating }

func TestRearmCancelsBeforeArming(t *testing.T) {
	timers := &fakeTimers{}
	s := New(timers)
	st := &State{}
	now := time.Unix(0, 0)

	s.Rearm("p1", st, time.Second, false, now)
	if timers.cancels != 1 {
		t.Fatalf("expected one cancel before arming, got %d", timers.cancels)
	}
	if len(timers.set) != 1 || !timers.set[0].Equal(now.Add(time.Second)) {
		t.Fatalf("expected timer at t+1s, got %v", timers.set)
	}
	if !st.Armed || !st.NextFireAt.Equal(now.Add(time.Second)) {
		t.Fatalf("expected armed state with NextFireAt t+1s, got %+v", st)
	}
}

func TestRearmDisarmsWhenNothingToRefresh(t *testing.T) {
	timers := &fakeTimers{}
	s := New(timers)
	st := &State{Armed: true, NextFireAt: time.Unix(5, 0)}

	s.Rearm("p1", st, 0, false, time.Unix(0, 0))
	if st.Armed {
		t.Fatalf("expected disarmed state")
	}
	if len(timers.set) != 0 {
		t.Fatalf("expected no timer set, got %v", timers.set)
	}
	if timers.cancels != 1 {
		t.Fatalf("expected existing timer cancelled, got %d cancels", timers.cancels)
	}
}

func TestRearmScreen2OnlyUsesDefaultTick(t *testing.T) {
	timers := &fakeTimers{}
	s := New(timers)
	st := &State{}
	now := time.Unix(0, 0)

	s.Rearm("p1", st, 0, true, now)
	if !st.Armed || !st.SecondaryActive {
		t.Fatalf("expected armed secondary state, got %+v", st)
	}
	if !st.NextFireAt.Equal(now.Add(DefaultScreen2Interval)) {
		t.Fatalf("expected default screen2 tick, got %v", st.NextFireAt)
	}
}

func TestOnFireDriftCorrection(t *testing.T) {
	timers := &fakeTimers{}
	s := New(timers)
	st := &State{}
	epoch := time.Unix(0, 0)
	s.Rearm("p1", st, time.Second, false, epoch)

	// Handler runs late at t=2.3s; the next fire must land on the whole
	// interval multiple t=3.0s, not t=3.3s.
	d := &fakeDisplay{}
	s.OnFire("p1", st, epoch.Add(2300*time.Millisecond), d)
	if want := epoch.Add(3 * time.Second); !st.NextFireAt.Equal(want) {
		t.Fatalf("expected next fire %v, got %v", want, st.NextFireAt)
	}
	if d.updates != 1 {
		t.Fatalf("expected one primary refresh, got %d", d.updates)
	}
}

func TestOnFireBusyDisplaySkipsRefreshButReschedules(t *testing.T) {
	timers := &fakeTimers{}
	s := New(timers)
	st := &State{}
	epoch := time.Unix(0, 0)
	s.Rearm("p1", st, time.Second, false, epoch)
	before := len(timers.set)

	d := &fakeDisplay{busy: true}
	s.OnFire("p1", st, epoch.Add(time.Second), d)
	if d.updates != 0 {
		t.Fatalf("expected no visible refresh while busy, got %d", d.updates)
	}
	if len(timers.set) != before+1 {
		t.Fatalf("expected reschedule despite busy display")
	}
}

func TestOnFireScreen2IndependentOfPrimary(t *testing.T) {
	timers := &fakeTimers{}
	s := New(timers)
	st := &State{}
	epoch := time.Unix(0, 0)
	s.Rearm("p1", st, 0, true, epoch)

	d := &fakeDisplay{secondary: true}
	s.OnFire("p1", st, epoch.Add(DefaultScreen2Interval), d)
	if d.updates != 0 {
		t.Fatalf("expected no primary refresh without an interval, got %d", d.updates)
	}
	if d.s2Updates != 1 {
		t.Fatalf("expected one screen2 refresh, got %d", d.s2Updates)
	}

	// A running animation suppresses the screen2 refresh for this tick.
	d.animating = true
	s.OnFire("p1", st, epoch.Add(2*DefaultScreen2Interval), d)
	if d.s2Updates != 1 {
		t.Fatalf("expected screen2 refresh suppressed during animation, got %d", d.s2Updates)
	}
}

func TestOnFireDisarmedIsNoop(t *testing.T) {
	timers := &fakeTimers{}
	s := New(timers)
	st := &State{}
	d := &fakeDisplay{}
	s.OnFire("p1", st, time.Unix(10, 0), d)
	if len(timers.set) != 0 || d.updates != 0 {
		t.Fatalf("expected disarmed fire to do nothing")
	}
}

func TestResyncOnlyWhenArmed(t *testing.T) {
	timers := &fakeTimers{}
	s := New(timers)
	st := &State{}
	at := time.Unix(42, 0)

	s.Resync("p1", st, at)
	if len(timers.set) != 0 {
		t.Fatalf("expected no arming for disarmed session")
	}

	s.Rearm("p1", st, time.Second, false, time.Unix(0, 0))
	s.Resync("p1", st, at)
	if !st.NextFireAt.Equal(at) {
		t.Fatalf("expected NextFireAt %v, got %v", at, st.NextFireAt)
	}
	if last := timers.set[len(timers.set)-1]; !last.Equal(at) {
		t.Fatalf("expected timer re-armed at %v, got %v", at, last)
	}
}

func TestCancelClearsState(t *testing.T) {
	timers := &fakeTimers{wasArmed: true}
	s := New(timers)
	st := &State{}
	s.Rearm("p1", st, time.Second, false, time.Unix(0, 0))
	s.Cancel("p1", st)
	if st.Armed || !st.NextFireAt.IsZero() {
		t.Fatalf("expected cleared state, got %+v", st)
	}
}

func TestTimersCancelIdentity(t *testing.T) {
	fired := make(chan string, 4)
	timers := NewTimers(func(sessionID, callbackID string) {
		fired <- sessionID + "/" + callbackID
	})
	defer timers.Stop()

	timers.SetTimer("p1", time.Now().Add(time.Hour), CallbackRefresh)
	if !timers.CancelTimers("p1", CallbackRefresh) {
		t.Fatalf("expected cancel to report an armed timer")
	}
	if timers.CancelTimers("p1", CallbackRefresh) {
		t.Fatalf("expected second cancel to report nothing armed")
	}

	timers.SetTimer("p1", time.Now(), CallbackRefresh)
	select {
	case got := <-fired:
		if got != "p1/"+CallbackRefresh {
			t.Fatalf("unexpected fire %q", got)
		}
	case <-time.After(2 * time.Second):
		t.Fatalf("timeout waiting for timer fire")
	}
}
