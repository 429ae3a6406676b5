// Package input tracks how long remote buttons have been held and derives
// the hold-time and repeat-count values the control core consumes.
package input

import (
	"math"
	"time"
)

// NotHeld is returned by HoldTimeSeconds for buttons that are not currently
// depressed.
const NotHeld = -1.0

// DefaultRepeatWindow is the largest gap between observations of the same
// button that still counts as a continuous hold. It must sit above the
// initial key-repeat delay of common terminals (around 500 ms) or the first
// repeat of a held key restarts the hold instead of extending it.
const DefaultRepeatWindow = 600 * time.Millisecond

// HoldState tracks press timestamps per button for one session.
type HoldState struct {
	// Window overrides DefaultRepeatWindow when positive.
	Window time.Duration

	firstPress map[string]time.Time
	lastPress  map[string]time.Time
	observed   map[string]float64
}

func (h *HoldState) window() time.Duration {
	if h.Window > 0 {
		return h.Window
	}
	return DefaultRepeatWindow
}

// Observe records one occurrence of a button at the given time and returns
// the hold time in seconds: 0 for a fresh press, the elapsed time since the
// first press while the button repeats inside the window. The value is also
// recorded so HoldTimeSeconds reports it unchanged until the next
// observation; handlers dispatched after Observe must see exactly the hold
// time the press carried, not the slightly later wall-clock elapsed.
func (h *HoldState) Observe(button string, now time.Time, window time.Duration) float64 {
	if h.firstPress == nil {
		h.firstPress = make(map[string]time.Time)
		h.lastPress = make(map[string]time.Time)
		h.observed = make(map[string]float64)
	}
	if window <= 0 {
		window = h.window()
	}
	last, seen := h.lastPress[button]
	if !seen || now.Sub(last) > window {
		h.firstPress[button] = now
		h.lastPress[button] = now
		h.observed[button] = 0
		return 0
	}
	h.lastPress[button] = now
	hold := now.Sub(h.firstPress[button]).Seconds()
	h.observed[button] = hold
	return hold
}

// HoldTimeSeconds reports the hold duration recorded by the most recent
// Observe, or NotHeld when the button is up or its repeat window has
// lapsed.
func (h *HoldState) HoldTimeSeconds(button string, now time.Time) float64 {
	last, seen := h.lastPress[button]
	if !seen || now.Sub(last) > h.window() {
		return NotHeld
	}
	return h.observed[button]
}

// Release clears the hold state for a button.
func (h *HoldState) Release(button string) {
	delete(h.firstPress, button)
	delete(h.lastPress, button)
	delete(h.observed, button)
}

// RepeatCount converts a hold duration into the number of repeats an
// accelerating mixer-style control should apply: a base rate plus a ramp
// that grows with the square of the hold time.
func RepeatCount(holdTime, rateHz, accelHz float64) int {
	if holdTime <= 0 {
		return 1
	}
	if rateHz <= 0 {
		rateHz = 1
	}
	n := rateHz*holdTime + 0.5*accelHz*holdTime*holdTime
	if n < 1 {
		return 1
	}
	return int(math.Floor(n))
}
