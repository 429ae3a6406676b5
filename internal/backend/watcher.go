package backend

import (
	"context"
	"sync"
	"time"

	"github.com/atomicstack/player-remote-control/internal/player"
)

// Kind represents the type of data emitted by the playback watcher.
type Kind int

const (
	KindPlayback Kind = iota
	KindLibrary
)

// Event conveys an updated playback snapshot or library listing.
type Event struct {
	Kind Kind
	Data interface{}
}

// Watcher drives the playback clock: it advances the player once per second
// and publishes snapshots, plus the library listing at a slower cadence.
type Watcher struct {
	player   *player.Player
	interval time.Duration

	ctx    context.Context
	cancel context.CancelFunc

	events chan Event
	wg     sync.WaitGroup
}

// NewWatcher creates a watcher that ticks the player every interval.
func NewWatcher(p *player.Player, interval time.Duration) *Watcher {
	if interval <= 0 {
		interval = time.Second
	}
	ctx, cancel := context.WithCancel(context.Background())
	w := &Watcher{
		player:   p,
		interval: interval,
		ctx:      ctx,
		cancel:   cancel,
		events:   make(chan Event, 16),
	}

	w.startPlaybackClock()
	w.startLibraryPoller()

	go func() {
		w.wg.Wait()
		close(w.events)
	}()

	return w
}

// Events returns a channel of playback events.
func (w *Watcher) Events() <-chan Event {
	return w.events
}

// Stop cancels the watcher. Pollers exit after their current emit completes;
// use Wait if a clean drain is required (e.g. in tests).
func (w *Watcher) Stop() {
	w.cancel()
}

// Wait blocks until all poller goroutines have exited and the events channel
// is closed. Call after Stop when a clean shutdown is required.
func (w *Watcher) Wait() {
	w.wg.Wait()
}

func (w *Watcher) startPlaybackClock() {
	throttle := newThrottle(w.interval / 2)
	w.wg.Add(1)
	go w.poll(KindPlayback, w.interval, func(ctx context.Context) interface{} {
		throttle.wait()
		w.player.Tick()
		return w.player.Snapshot()
	})
}

func (w *Watcher) startLibraryPoller() {
	throttle := newThrottle(time.Second)
	w.wg.Add(1)
	go w.poll(KindLibrary, 30*time.Second, func(ctx context.Context) interface{} {
		throttle.wait()
		return w.player.Library()
	})
}

func (w *Watcher) poll(kind Kind, interval time.Duration, fetch func(context.Context) interface{}) {
	defer w.wg.Done()

	emit := func() bool {
		evt := Event{Kind: kind, Data: fetch(w.ctx)}
		select {
		case <-w.ctx.Done():
			return false
		case w.events <- evt:
			return true
		}
	}

	if !emit() {
		return
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-w.ctx.Done():
			return
		case <-ticker.C:
			if !emit() {
				return
			}
		}
	}
}
