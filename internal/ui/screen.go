package ui

import (
	"math"

	"github.com/atomicstack/player-remote-control/internal/display"
	"github.com/charmbracelet/harmonica"
	"github.com/muesli/reflow/padding"
	"github.com/muesli/reflow/truncate"
)

// DefaultScreenWidth is the character width of the simulated player display.
const DefaultScreenWidth = 40

// Screen simulates the two-line player display. It satisfies the display
// contract the control core drives: snapshot rendering, refresh requests,
// and sliding transition animation between mode snapshots.
type Screen struct {
	width int

	render func() display.Snapshot

	hasScreen2   bool
	extendedText bool

	primaryDirty bool
	screen2Dirty bool

	animating bool
	leftward  bool
	from      display.Snapshot
	to        display.Snapshot
	offset    float64
	velocity  float64
	spring    harmonica.Spring
}

// NewScreen creates a screen of the given width. A secondary screen is
// simulated as an extra text row below the main display.
func NewScreen(width int, hasScreen2, extendedText bool) *Screen {
	if width <= 0 {
		width = DefaultScreenWidth
	}
	return &Screen{
		width:        width,
		hasScreen2:   hasScreen2,
		extendedText: extendedText,
		spring:       harmonica.NewSpring(harmonica.FPS(60), 9.0, 1.0),
	}
}

// SetRenderer installs the snapshot source. The screen never renders on its
// own; it pulls lines from the owner when asked.
func (sc *Screen) SetRenderer(render func() display.Snapshot) {
	sc.render = render
}

// Width returns the display width in characters.
func (sc *Screen) Width() int {
	return sc.width
}

func (sc *Screen) CurrentLines() display.Snapshot {
	if sc.render == nil {
		return display.Snapshot{}
	}
	return sc.render()
}

// PushLeft starts a transition where the new snapshot slides in from the
// right, used when entering a deeper mode.
func (sc *Screen) PushLeft(old, new display.Snapshot) {
	sc.startAnimation(old, new, true)
}

// PushRight starts a transition where the new snapshot slides in from the
// left, used when returning to a parent mode.
func (sc *Screen) PushRight(old, new display.Snapshot) {
	sc.startAnimation(old, new, false)
}

func (sc *Screen) startAnimation(old, new display.Snapshot, leftward bool) {
	sc.from = old
	sc.to = new
	sc.leftward = leftward
	sc.offset = float64(sc.width)
	sc.velocity = 0
	sc.animating = true
}

// Step advances the transition spring by one frame and reports whether the
// animation is still running.
func (sc *Screen) Step() bool {
	if !sc.animating {
		return false
	}
	sc.offset, sc.velocity = sc.spring.Update(sc.offset, sc.velocity, 0)
	if math.Abs(sc.offset) < 0.5 && math.Abs(sc.velocity) < 0.5 {
		sc.offset = 0
		sc.animating = false
	}
	return sc.animating
}

// FrameLines composes the current animation frame from the stored
// snapshots. Outside an animation it returns the target snapshot.
func (sc *Screen) FrameLines() display.Snapshot {
	if !sc.animating {
		return sc.to
	}
	shift := sc.width - int(math.Round(sc.offset))
	if shift < 0 {
		shift = 0
	}
	if shift > sc.width {
		shift = sc.width
	}
	return display.Snapshot{
		Line1: sc.compose(sc.from.Line1, sc.to.Line1, shift),
		Line2: sc.compose(sc.from.Line2, sc.to.Line2, shift),
	}
}

func (sc *Screen) compose(oldLine, newLine string, shift int) string {
	old := sc.clip(oldLine)
	new := sc.clip(newLine)
	if sc.leftward {
		return string(old[shift:]) + string(new[:shift])
	}
	return string(new[sc.width-shift:]) + string(old[:sc.width-shift])
}

// clip pads and truncates a line to exactly the screen width.
func (sc *Screen) clip(line string) []rune {
	fitted := padding.String(truncate.String(line, uint(sc.width)), uint(sc.width))
	runes := []rune(fitted)
	for len(runes) < sc.width {
		runes = append(runes, ' ')
	}
	return runes[:sc.width]
}

func (sc *Screen) RequestUpdate() {
	sc.primaryDirty = true
}

func (sc *Screen) RequestScreen2Update() {
	sc.screen2Dirty = true
}

// ConsumePrimaryUpdate reports and clears the pending primary refresh.
func (sc *Screen) ConsumePrimaryUpdate() bool {
	dirty := sc.primaryDirty
	sc.primaryDirty = false
	return dirty
}

// ConsumeScreen2Update reports and clears the pending secondary refresh.
func (sc *Screen) ConsumeScreen2Update() bool {
	dirty := sc.screen2Dirty
	sc.screen2Dirty = false
	return dirty
}

func (sc *Screen) HasSecondaryScreen() bool {
	return sc.hasScreen2
}

func (sc *Screen) ShowsExtendedText() bool {
	return sc.extendedText
}

// IsUpdateInProgress reports whether a requested refresh has not been drawn
// yet. The scheduler skips its visible work while this holds.
func (sc *Screen) IsUpdateInProgress() bool {
	return sc.primaryDirty || sc.screen2Dirty
}

func (sc *Screen) AnimationInProgress() bool {
	return sc.animating
}
