package events

import "github.com/atomicstack/player-remote-control/internal/logging"

type ScrollTracer struct{}

var Scroll = ScrollTracer{}

func (ScrollTracer) Move(sessionID string, from, to, estimateStart, estimateEnd int) {
	logging.Trace("scroll.move", map[string]interface{}{
		"session": sessionID,
		"from":    from,
		"to":      to,
		"window":  []int{estimateStart, estimateEnd},
	})
}

func (ScrollTracer) LetterJump(sessionID string, letter string, index int) {
	logging.Trace("scroll.letter", map[string]interface{}{"session": sessionID, "letter": letter, "index": index})
}
