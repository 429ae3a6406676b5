// Package scroll implements kinetic list scrolling for remote-control
// sessions: a discrete step regime, a hold dead-zone, and an accelerating
// regime whose target range is re-estimated exponentially as the cursor
// escapes the current estimate window.
package scroll

import "math"

const (
	// HoldThreshold is the hold duration in seconds below which a held
	// button produces no movement.
	HoldThreshold = 0.300

	// DefaultTc is the default time constant in seconds to traverse the
	// estimated span at full acceleration.
	DefaultTc = 5.0

	// DefaultMinimumVelocity is the default single-step velocity in rows
	// per second applied on a discrete press.
	DefaultMinimumVelocity = 1.0
)

// State holds the per-context scroll state. One State is pushed for every
// mode the session enters and restored exactly when the mode is left, so
// returning to a list resumes with its previous estimate window.
type State struct {
	MinimumVelocity float64
	Tc              float64
	EstimateStart   int
	EstimateEnd     int
	Velocity        float64
	Acceleration    float64
	LastHoldTime    float64

	// LastPosition carries the fractional position between calls. Rounding
	// it away between calls stalls the engine at low velocities, so only
	// the returned value is ever rounded.
	LastPosition         float64
	LastPositionReturned int
	LastDirection        int
}

// NewState returns a State sized for a list of the given length with a
// full-span estimate window. Lengths below one are treated as one.
func NewState(listLength int) *State {
	if listLength < 1 {
		listLength = 1
	}
	return &State{
		MinimumVelocity: DefaultMinimumVelocity,
		Tc:              DefaultTc,
		EstimateStart:   0,
		EstimateEnd:     listLength - 1,
		LastDirection:   1,
	}
}

// Scroll advances the cursor for one input event and returns the new list
// position, always within [0, listLength-1]. holdTime is the number of
// seconds the button has been continuously depressed; zero means a fresh
// press. direction is +1 or -1.
func Scroll(st *State, direction, listLength, currentPosition int, holdTime float64) int {
	if st == nil || listLength < 1 {
		return 0
	}

	var result int
	switch {
	case holdTime == 0:
		// Discrete step with wrap-around at either end of the list.
		if currentPosition >= listLength-1 && direction > 0 {
			currentPosition = -1
		} else if currentPosition <= 0 && direction < 0 {
			currentPosition = listLength
		}
		st.EstimateStart = 0
		st.EstimateEnd = listLength - 1
		st.Velocity = st.MinimumVelocity * float64(direction)
		st.Acceleration = 0
		st.LastHoldTime = 0
		result = currentPosition + direction
		st.LastPosition = float64(result)

	case holdTime < HoldThreshold:
		// Dead-zone before acceleration engages.
		result = currentPosition

	default:
		tc := st.Tc
		if tc <= 0 {
			tc = DefaultTc
		}
		st.Acceleration = 2 * float64(st.EstimateEnd-st.EstimateStart) / (tc * tc) * float64(direction)
		dt := holdTime - st.LastHoldTime
		newVelocity := st.Acceleration*dt + st.Velocity
		pos := st.LastPosition
		if currentPosition != st.LastPositionReturned {
			// Something external moved the cursor since the last
			// answer; rebase on what the caller sees.
			pos = float64(currentPosition)
		}
		x := 0.5*st.Acceleration*dt*dt + st.Velocity*dt + pos
		result = int(math.Round(x))
		st.LastPosition = x
		st.Velocity = newVelocity
		st.LastHoldTime = holdTime
	}

	if result > listLength-1 {
		result = listLength - 1
		st.LastPosition = float64(result)
	}
	if result < 0 {
		result = 0
		st.LastPosition = 0
	}

	st.widenEstimate(result, listLength)
	st.LastPositionReturned = result
	st.LastDirection = direction
	return result
}

// widenEstimate doubles the estimate window on whichever side the result
// escaped, clamped to the list bounds. The exponential growth lets
// acceleration ramp smoothly without knowing the true target in advance.
func (st *State) widenEstimate(result, listLength int) {
	span := st.EstimateEnd - st.EstimateStart + 1
	if result > st.EstimateEnd {
		st.EstimateEnd += span
		if st.EstimateEnd > listLength-1 {
			st.EstimateEnd = listLength - 1
		}
	}
	if result < st.EstimateStart {
		st.EstimateStart -= span
		if st.EstimateStart < 0 {
			st.EstimateStart = 0
		}
	}
	if st.EstimateStart > st.EstimateEnd {
		st.EstimateStart = st.EstimateEnd
	}
}
