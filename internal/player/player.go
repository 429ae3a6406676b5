// Package player provides the demo player model and the standard mode set
// the simulator registers against the control core. It stands in for the
// real playback backend: a small in-memory state with the same shape the
// remote-control handlers operate on.
package player

import (
	"math/rand/v2"
	"sync"
)

// Playback status values.
const (
	StatusPlay  = "play"
	StatusPause = "pause"
	StatusStop  = "stop"
)

// Track holds the metadata the display renders.
type Track struct {
	Title    string
	Artist   string
	Album    string
	Duration int // seconds
}

// Player is the shared playback state. Handlers mutate it from the event
// loop; the playback clock reads it from its poll goroutine, so access is
// guarded.
type Player struct {
	mu sync.RWMutex

	status  string
	index   int // current library index
	elapsed int // seconds into the current track

	volume int
	mute   bool

	repeat  bool
	shuffle bool

	library []Track

	// pick draws a random int in [0,n) for shuffle; tests replace it.
	pick func(n int) int
}

// New creates a player over the given library, stopped at the first track.
func New(library []Track) *Player {
	return &Player{
		status:  StatusStop,
		volume:  50,
		library: library,
		pick:    rand.IntN,
	}
}

// pickOther returns a random library index different from cur. Caller holds
// the lock.
func (p *Player) pickOther(cur int) int {
	if len(p.library) < 2 {
		return cur
	}
	n := p.pick(len(p.library) - 1)
	if n >= cur {
		n++
	}
	return n
}

// Library returns the track list. The slice is shared and must not be
// mutated.
func (p *Player) Library() []Track {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.library
}

// Current returns the current track and whether one exists.
func (p *Player) Current() (Track, bool) {
	p.mu.RLock()
	defer p.mu.RUnlock()
	if p.index < 0 || p.index >= len(p.library) {
		return Track{}, false
	}
	return p.library[p.index], true
}

// Status returns the playback status.
func (p *Player) Status() string {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.status
}

// Elapsed returns seconds into the current track.
func (p *Player) Elapsed() int {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.elapsed
}

// Volume returns the mixer volume in [0,100].
func (p *Player) Volume() int {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.volume
}

// Muted reports whether the mixer is muted.
func (p *Player) Muted() bool {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.mute
}

// Repeat reports the repeat option.
func (p *Player) Repeat() bool {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.repeat
}

// Shuffle reports the shuffle option.
func (p *Player) Shuffle() bool {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.shuffle
}

// ToggleRepeat flips the repeat option and returns the new value.
func (p *Player) ToggleRepeat() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.repeat = !p.repeat
	return p.repeat
}

// ToggleShuffle flips the shuffle option and returns the new value.
func (p *Player) ToggleShuffle() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.shuffle = !p.shuffle
	return p.shuffle
}

// Play starts playback of the track at the given library index.
func (p *Player) Play(index int) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if index < 0 || index >= len(p.library) {
		return
	}
	p.index = index
	p.elapsed = 0
	p.status = StatusPlay
}

// TogglePause flips between play and pause; a stopped player starts the
// current track from the top.
func (p *Player) TogglePause() string {
	p.mu.Lock()
	defer p.mu.Unlock()
	switch p.status {
	case StatusPlay:
		p.status = StatusPause
	case StatusPause:
		p.status = StatusPlay
	default:
		p.elapsed = 0
		p.status = StatusPlay
	}
	return p.status
}

// Stop halts playback.
func (p *Player) Stop() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.status = StatusStop
	p.elapsed = 0
}

// Skip moves delta tracks through the library, wrapping at either end, and
// keeps playing if the player was playing. With shuffle on it jumps to a
// random other track instead.
func (p *Player) Skip(delta int) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if len(p.library) == 0 {
		return
	}
	if p.shuffle && delta != 0 {
		p.index = p.pickOther(p.index)
		p.elapsed = 0
		return
	}
	p.index = ((p.index+delta)%len(p.library) + len(p.library)) % len(p.library)
	p.elapsed = 0
}

// SetVolume clamps and stores the mixer volume, clearing mute on any
// explicit change.
func (p *Player) SetVolume(v int) int {
	p.mu.Lock()
	defer p.mu.Unlock()
	if v < 0 {
		v = 0
	}
	if v > 100 {
		v = 100
	}
	p.volume = v
	p.mute = false
	return p.volume
}

// ToggleMute flips the mute state.
func (p *Player) ToggleMute() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.mute = !p.mute
	return p.mute
}

// Tick advances playback by one second, moving to the next track at the
// end. Repeat restarts the track, shuffle draws a random other track and
// never runs off the end of the library. Called by the playback clock.
func (p *Player) Tick() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.status != StatusPlay || p.index >= len(p.library) {
		return
	}
	p.elapsed++
	if p.elapsed >= p.library[p.index].Duration {
		p.elapsed = 0
		if p.repeat {
			return
		}
		if p.shuffle {
			p.index = p.pickOther(p.index)
			return
		}
		p.index++
		if p.index >= len(p.library) {
			p.index = 0
			p.status = StatusStop
		}
	}
}

// Snapshot is the read-only view the playback clock publishes.
type Snapshot struct {
	Status  string
	Index   int
	Elapsed int
	Volume  int
	Mute    bool
}

// Snapshot returns a consistent view of the mutable playback fields.
func (p *Player) Snapshot() Snapshot {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return Snapshot{
		Status:  p.status,
		Index:   p.index,
		Elapsed: p.elapsed,
		Volume:  p.volume,
		Mute:    p.mute,
	}
}
