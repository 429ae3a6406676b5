package scroll

import "time"

// DefaultMultiTapTimeout is how long a repeated press of the same digit
// keeps cycling the current glyph before a new cycle starts.
const DefaultMultiTapTimeout = 1100 * time.Millisecond

// Table maps a numeric key to the glyph cycle it produces on repeated
// presses.
type Table map[rune][]rune

// DefaultTable returns the phone-keypad glyph cycles.
func DefaultTable() Table {
	return Table{
		'0': []rune{' ', '0'},
		'1': []rune{'.', ',', '\'', '?', '!', '1'},
		'2': []rune{'A', 'B', 'C', '2'},
		'3': []rune{'D', 'E', 'F', '3'},
		'4': []rune{'G', 'H', 'I', '4'},
		'5': []rune{'J', 'K', 'L', '5'},
		'6': []rune{'M', 'N', 'O', '6'},
		'7': []rune{'P', 'Q', 'R', 'S', '7'},
		'8': []rune{'T', 'U', 'V', '8'},
		'9': []rune{'W', 'X', 'Y', 'Z', '9'},
	}
}

// MultiTap tracks multi-tap text entry for one session: which digit was
// pressed last, where in its glyph cycle the entry is, and when the press
// happened.
type MultiTap struct {
	Timeout time.Duration

	lastDigit rune
	index     int
	lastPress time.Time
}

// Next advances the multi-tap state for a digit press at the given time and
// returns the resulting glyph. replace reports whether the glyph replaces
// the previously returned one (same digit within the timeout) rather than
// starting a new position. ok is false for digits without a cycle.
func (m *MultiTap) Next(digit rune, now time.Time, table Table) (glyph rune, replace, ok bool) {
	seq := table[digit]
	if len(seq) == 0 {
		return 0, false, false
	}
	timeout := m.Timeout
	if timeout <= 0 {
		timeout = DefaultMultiTapTimeout
	}
	if digit == m.lastDigit && !m.lastPress.IsZero() && now.Sub(m.lastPress) <= timeout {
		m.index = (m.index + 1) % len(seq)
		replace = true
	} else {
		m.index = 0
	}
	m.lastDigit = digit
	m.lastPress = now
	return seq[m.index], replace, true
}

// Reset clears the cycle so the next press starts fresh.
func (m *MultiTap) Reset() {
	m.lastDigit = 0
	m.index = 0
	m.lastPress = time.Time{}
}
