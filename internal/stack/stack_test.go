package stack

import (
	"errors"
	"testing"
	"time"

	"github.com/atomicstack/player-remote-control/internal/display"
	"github.com/atomicstack/player-remote-control/internal/mode"
	"github.com/atomicstack/player-remote-control/internal/sched"
	"github.com/atomicstack/player-remote-control/internal/session"
)

type fakeTimers struct {
	set     int
	cancels int
}

func (f *fakeTimers) SetTimer(sessionID string, at time.Time, callbackID string) { f.set++ }
func (f *fakeTimers) CancelTimers(sessionID, callbackID string) bool {
	f.cancels++
	return false
}

type fakeDisplay struct {
	extendedText bool
	lines        display.Snapshot
	updates      int
	pushLefts    []display.Snapshot
	pushRights   []display.Snapshot
}

func (f *fakeDisplay) CurrentLines() display.Snapshot { return f.lines }
func (f *fakeDisplay) PushLeft(old, new display.Snapshot) {
	f.pushLefts = append(f.pushLefts, old, new)
}
func (f *fakeDisplay) PushRight(old, new display.Snapshot) {
	f.pushRights = append(f.pushRights, old, new)
}
func (f *fakeDisplay) RequestUpdate()            { f.updates++ }
func (f *fakeDisplay) RequestScreen2Update()     {}
func (f *fakeDisplay) HasSecondaryScreen() bool  { return true }
func (f *fakeDisplay) ShowsExtendedText() bool   { return f.extendedText }
func (f *fakeDisplay) IsUpdateInProgress() bool  { return false }
func (f *fakeDisplay) AnimationInProgress() bool { return false }

type fixture struct {
	manager  *Manager
	registry *mode.Registry
	display  *fakeDisplay
	timers   *fakeTimers
	session  *session.Session
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	registry := mode.NewRegistry()
	d := &fakeDisplay{}
	timers := &fakeTimers{}
	m := New(registry, d, sched.New(timers))
	m.now = func() time.Time { return time.Unix(1000, 0) }
	return &fixture{
		manager:  m,
		registry: registry,
		display:  d,
		timers:   timers,
		session:  session.New("test"),
	}
}

func TestPushPopDepth(t *testing.T) {
	f := newFixture(t)
	f.registry.Register(mode.Definition{Name: "home"})
	f.registry.Register(mode.Definition{Name: "browse"})

	if !f.manager.Push(f.session, "home", nil) {
		t.Fatalf("expected push to succeed")
	}
	if f.session.Depth() != 1 {
		t.Fatalf("expected depth 1, got %d", f.session.Depth())
	}
	f.manager.Push(f.session, "browse", nil)
	if f.session.Depth() != 2 {
		t.Fatalf("expected depth 2, got %d", f.session.Depth())
	}
	if len(f.session.Scroll) != f.session.Depth() {
		t.Fatalf("expected scroll stack parallel to mode stack, got %d vs %d", len(f.session.Scroll), f.session.Depth())
	}

	name, ok := f.manager.Pop(f.session)
	if !ok || name != "browse" {
		t.Fatalf("expected popped browse, got %q ok=%v", name, ok)
	}
	if f.session.Depth() != 1 {
		t.Fatalf("expected depth 1 after pop, got %d", f.session.Depth())
	}
}

func TestPopEmptyStackIsNoop(t *testing.T) {
	f := newFixture(t)
	updates := f.display.updates

	name, ok := f.manager.Pop(f.session)
	if ok || name != "" {
		t.Fatalf("expected empty pop to return none, got %q ok=%v", name, ok)
	}
	if f.session.Depth() != 0 {
		t.Fatalf("expected depth 0, got %d", f.session.Depth())
	}
	// The idempotent safety net still re-arms and refreshes.
	if f.display.updates != updates+1 {
		t.Fatalf("expected refresh request on empty pop")
	}
	if f.timers.cancels == 0 {
		t.Fatalf("expected scheduler re-arm (cancel) on empty pop")
	}
}

func TestPushThenPopRestoresScrollState(t *testing.T) {
	f := newFixture(t)
	f.registry.Register(mode.Definition{Name: "browse"})
	f.registry.Register(mode.Definition{Name: "details"})

	f.manager.Push(f.session, "browse", nil)
	st := f.session.CurrentScroll()
	st.EstimateStart = 10
	st.EstimateEnd = 20
	st.Velocity = 7.5
	st.LastPosition = 14.25

	f.manager.Push(f.session, "details", nil)
	if f.session.CurrentScroll() == st {
		t.Fatalf("expected a fresh scroll state for the pushed mode")
	}

	f.manager.Pop(f.session)
	got := f.session.CurrentScroll()
	if got != st {
		t.Fatalf("expected the exact prior scroll state restored")
	}
	if got.EstimateStart != 10 || got.EstimateEnd != 20 || got.Velocity != 7.5 || got.LastPosition != 14.25 {
		t.Fatalf("expected prior scroll values intact, got %+v", got)
	}
}

func TestPushInvalidModeAborts(t *testing.T) {
	f := newFixture(t)
	f.registry.Register(mode.Definition{Name: "home"})
	f.manager.Push(f.session, "home", nil)

	if f.manager.Push(f.session, "no-such-mode", nil) {
		t.Fatalf("expected push of unregistered mode to fail")
	}
	if f.session.Depth() != 1 {
		t.Fatalf("expected session to stay in prior mode, depth %d", f.session.Depth())
	}
	if cur, _ := f.session.CurrentMode(); cur.Name != "home" {
		t.Fatalf("expected current mode home, got %q", cur.Name)
	}
}

func TestSetInvalidModeKeepsStack(t *testing.T) {
	f := newFixture(t)
	f.registry.Register(mode.Definition{Name: "home"})
	f.registry.Register(mode.Definition{Name: "browse"})
	f.manager.Push(f.session, "home", nil)
	f.manager.Push(f.session, "browse", nil)

	if f.manager.Set(f.session, "no-such-mode", nil) {
		t.Fatalf("expected set of unregistered mode to fail")
	}
	if f.session.Depth() != 2 {
		t.Fatalf("expected session to keep its stack, depth %d", f.session.Depth())
	}
	if cur, _ := f.session.CurrentMode(); cur.Name != "browse" {
		t.Fatalf("expected current mode browse, got %q", cur.Name)
	}
}

func TestEnterHookErrorDoesNotUnwind(t *testing.T) {
	f := newFixture(t)
	f.registry.Register(mode.Definition{
		Name: "flaky",
		OnEnter: func(s *session.Session, action string) error {
			return errors.New("init failed")
		},
	})

	if !f.manager.Push(f.session, "flaky", nil) {
		t.Fatalf("expected push to report success despite enter hook error")
	}
	if cur, _ := f.session.CurrentMode(); cur.Name != "flaky" {
		t.Fatalf("expected mode entered despite hook error, got %q", cur.Name)
	}
}

func TestEnterHookPanicIsContained(t *testing.T) {
	f := newFixture(t)
	f.registry.Register(mode.Definition{
		Name: "panicky",
		OnEnter: func(s *session.Session, action string) error {
			panic("boom")
		},
	})
	if !f.manager.Push(f.session, "panicky", nil) {
		t.Fatalf("expected push to survive a panicking hook")
	}
	if f.session.Depth() != 1 {
		t.Fatalf("expected stack mutation to stand, depth %d", f.session.Depth())
	}
}

func TestSetDrainsInLIFOOrder(t *testing.T) {
	f := newFixture(t)
	var order []string
	leave := func(name string) mode.Hook {
		return func(s *session.Session, action string) error {
			order = append(order, "leave:"+name+":"+action)
			return nil
		}
	}
	enter := func(name string) mode.Hook {
		return func(s *session.Session, action string) error {
			order = append(order, "enter:"+name+":"+action)
			return nil
		}
	}
	f.registry.Register(mode.Definition{Name: "home", OnEnter: enter("home"), OnLeave: leave("home")})
	f.registry.Register(mode.Definition{Name: "browse", OnEnter: enter("browse"), OnLeave: leave("browse")})
	f.registry.Register(mode.Definition{Name: "details", OnEnter: enter("details"), OnLeave: leave("details")})

	f.manager.Push(f.session, "home", nil)
	f.manager.Push(f.session, "browse", nil)
	f.manager.Push(f.session, "details", nil)
	order = nil

	f.manager.Set(f.session, "home", nil)

	if f.session.Depth() != 1 {
		t.Fatalf("expected final depth 1, got %d", f.session.Depth())
	}
	if cur, _ := f.session.CurrentMode(); cur.Name != "home" {
		t.Fatalf("expected final mode home, got %q", cur.Name)
	}
	var leaves []string
	for _, entry := range order {
		if entry == "leave:details:pop" || entry == "leave:browse:pop" || entry == "leave:home:pop" {
			leaves = append(leaves, entry)
		}
	}
	if len(leaves) != 3 || leaves[0] != "leave:details:pop" || leaves[1] != "leave:browse:pop" || leaves[2] != "leave:home:pop" {
		t.Fatalf("expected LIFO leave order, got %v", order)
	}
	if last := order[len(order)-1]; last != "enter:home:push" {
		t.Fatalf("expected final home enter after the drain, got %v", order)
	}
}

func TestPopReentersRevealedMode(t *testing.T) {
	f := newFixture(t)
	var entries []string
	f.registry.Register(mode.Definition{
		Name: "home",
		OnEnter: func(s *session.Session, action string) error {
			entries = append(entries, action)
			return nil
		},
	})
	f.registry.Register(mode.Definition{Name: "browse"})

	f.manager.Push(f.session, "home", nil)
	f.manager.Push(f.session, "browse", nil)
	f.manager.Pop(f.session)

	if len(entries) != 2 || entries[0] != "push" || entries[1] != "pop" {
		t.Fatalf("expected home re-entered with action pop, got %v", entries)
	}
}

func TestSuppressReenterOnPop(t *testing.T) {
	f := newFixture(t)
	var entries int
	f.registry.Register(mode.Definition{
		Name:                 "transfer",
		SuppressReenterOnPop: true,
		OnEnter: func(s *session.Session, action string) error {
			entries++
			return nil
		},
	})
	f.registry.Register(mode.Definition{Name: "confirm"})

	f.manager.Push(f.session, "transfer", nil)
	f.manager.Push(f.session, "confirm", nil)
	f.manager.Pop(f.session)

	if entries != 1 {
		t.Fatalf("expected enter hook only on the original push, got %d calls", entries)
	}
}

func TestScreen2PolicyFromExtendedText(t *testing.T) {
	f := newFixture(t)
	f.display.extendedText = true
	f.registry.Register(mode.Definition{Name: "nowplaying", ShowExtendedText: true})
	f.registry.Register(mode.Definition{Name: "overlay", Screen2: mode.Screen2Inherit})
	f.registry.Register(mode.Definition{Name: "settings"})

	f.manager.Push(f.session, "nowplaying", nil)
	if f.session.Screen2 != session.Screen2Periodic {
		t.Fatalf("expected periodic screen2, got %v", f.session.Screen2)
	}

	f.manager.Push(f.session, "overlay", nil)
	if f.session.Screen2 != session.Screen2Periodic {
		t.Fatalf("expected inherit to keep periodic screen2, got %v", f.session.Screen2)
	}

	f.manager.Push(f.session, "settings", nil)
	if f.session.Screen2 != session.Screen2None {
		t.Fatalf("expected plain mode to clear screen2, got %v", f.session.Screen2)
	}
}

func TestScreen2ExtendedTextRequiresDisplaySupport(t *testing.T) {
	f := newFixture(t)
	f.display.extendedText = false
	f.registry.Register(mode.Definition{Name: "nowplaying", ShowExtendedText: true})
	f.manager.Push(f.session, "nowplaying", nil)
	if f.session.Screen2 != session.Screen2None {
		t.Fatalf("expected no periodic screen2 without display support, got %v", f.session.Screen2)
	}
}

func TestPushTransitionAnimatesSnapshots(t *testing.T) {
	f := newFixture(t)
	f.registry.Register(mode.Definition{Name: "browse"})
	f.display.lines = display.Snapshot{Line1: "before"}

	f.manager.PushTransition(f.session, "browse", nil)
	if len(f.display.pushLefts) != 2 {
		t.Fatalf("expected one left transition with two snapshots, got %d", len(f.display.pushLefts))
	}
	if f.display.pushLefts[0].Line1 != "before" {
		t.Fatalf("expected old snapshot captured before the transition, got %+v", f.display.pushLefts[0])
	}
}

func TestPushTransitionSkippedWhenModeHandlesIt(t *testing.T) {
	f := newFixture(t)
	f.registry.Register(mode.Definition{Name: "screensaver", HandlesTransition: true})
	f.manager.PushTransition(f.session, "screensaver", nil)
	if len(f.display.pushLefts) != 0 {
		t.Fatalf("expected no animation for self-rendering mode")
	}
}

func TestPopTransitionAnimatesRightward(t *testing.T) {
	f := newFixture(t)
	f.registry.Register(mode.Definition{Name: "home"})
	f.registry.Register(mode.Definition{Name: "browse"})
	f.manager.Push(f.session, "home", nil)
	f.manager.Push(f.session, "browse", nil)

	f.manager.PopTransition(f.session)
	if len(f.display.pushRights) != 2 {
		t.Fatalf("expected one right transition, got %d snapshots", len(f.display.pushRights))
	}

	if _, ok := f.manager.PopTransition(f.session); !ok {
		t.Fatalf("expected pop of root to succeed")
	}
	if _, ok := f.manager.PopTransition(f.session); ok {
		t.Fatalf("expected empty pop transition to report none")
	}
}

func TestUpdateIntervalArmsScheduler(t *testing.T) {
	f := newFixture(t)
	f.registry.Register(mode.Definition{Name: "nowplaying", UpdateInterval: time.Second})
	f.manager.Push(f.session, "nowplaying", nil)
	if !f.session.Periodic.Armed {
		t.Fatalf("expected periodic state armed for mode with update interval")
	}
	if f.timers.set == 0 {
		t.Fatalf("expected a timer to be set")
	}
}

func TestTeardownCancelsTimers(t *testing.T) {
	f := newFixture(t)
	f.registry.Register(mode.Definition{Name: "nowplaying", UpdateInterval: time.Second})
	f.manager.Push(f.session, "nowplaying", nil)

	store := session.NewStore(f.manager.Teardown)
	store.Add(f.session)
	cancelsBefore := f.timers.cancels
	store.Remove(f.session.ID)
	if f.timers.cancels != cancelsBefore+1 {
		t.Fatalf("expected disconnect to cancel the session timer")
	}
	if f.session.Periodic.Armed {
		t.Fatalf("expected periodic state disarmed after teardown")
	}
}
