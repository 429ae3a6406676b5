package backend

import (
	"testing"
	"time"

	"github.com/atomicstack/player-remote-control/internal/player"
)

func TestWatcherEmitsPlaybackSnapshots(t *testing.T) {
	p := player.New(player.DemoLibrary())
	p.Play(0)
	w := NewWatcher(p, 10*time.Millisecond)
	defer func() {
		w.Stop()
		w.Wait()
	}()

	deadline := time.After(2 * time.Second)
	for {
		select {
		case evt, ok := <-w.Events():
			if !ok {
				t.Fatal("events channel closed early")
			}
			if evt.Kind != KindPlayback {
				continue
			}
			snap, ok := evt.Data.(player.Snapshot)
			if !ok {
				t.Fatalf("unexpected payload %T", evt.Data)
			}
			if snap.Status != player.StatusPlay {
				t.Fatalf("expected playing snapshot, got %q", snap.Status)
			}
			return
		case <-deadline:
			t.Fatal("no playback event")
		}
	}
}

func TestWatcherEmitsLibrary(t *testing.T) {
	p := player.New(player.DemoLibrary())
	w := NewWatcher(p, 10*time.Millisecond)
	defer func() {
		w.Stop()
		w.Wait()
	}()

	deadline := time.After(2 * time.Second)
	for {
		select {
		case evt, ok := <-w.Events():
			if !ok {
				t.Fatal("events channel closed early")
			}
			if evt.Kind != KindLibrary {
				continue
			}
			tracks, ok := evt.Data.([]player.Track)
			if !ok {
				t.Fatalf("unexpected payload %T", evt.Data)
			}
			if len(tracks) == 0 {
				t.Fatal("empty library")
			}
			return
		case <-deadline:
			t.Fatal("no library event")
		}
	}
}

func TestWatcherStopClosesEvents(t *testing.T) {
	p := player.New(player.DemoLibrary())
	w := NewWatcher(p, 10*time.Millisecond)
	w.Stop()
	w.Wait()

	deadline := time.After(time.Second)
	for {
		select {
		case _, ok := <-w.Events():
			if !ok {
				return
			}
		case <-deadline:
			t.Fatal("events channel not closed after Stop")
		}
	}
}
