package ui

import (
	"github.com/atomicstack/player-remote-control/internal/backend"
	"github.com/atomicstack/player-remote-control/internal/player"
	tea "github.com/charmbracelet/bubbletea"
)

func waitForBackendEvent(w *backend.Watcher) tea.Cmd {
	return func() tea.Msg {
		evt, ok := <-w.Events()
		if !ok {
			return backendDoneMsg{}
		}
		return backendEventMsg{event: evt}
	}
}

type backendEventMsg struct {
	event backend.Event
}

type backendDoneMsg struct{}

func (m *Model) handleBackendEventMsg(msg tea.Msg) tea.Cmd {
	eventMsg, ok := msg.(backendEventMsg)
	if !ok {
		return nil
	}
	m.applyBackendEvent(eventMsg.event)
	if m.watcher != nil {
		return waitForBackendEvent(m.watcher)
	}
	return nil
}

func (m *Model) handleBackendDoneMsg(msg tea.Msg) tea.Cmd {
	m.watcher = nil
	return nil
}

// applyBackendEvent folds a playback-clock event into the view. The player
// itself is the source of truth; the event only tells us its mutable state
// moved, so redraw whichever screens currently show it.
func (m *Model) applyBackendEvent(evt backend.Event) {
	switch evt.Kind {
	case backend.KindPlayback:
		cur, ok := m.s.CurrentMode()
		if !ok {
			return
		}
		switch cur.Name {
		case player.ModeNowPlaying, player.ModeVolume:
			if !m.screen.AnimationInProgress() {
				m.lines = m.screen.CurrentLines()
			}
		}
	case backend.KindLibrary:
		// The demo library is static; a real backend would refresh the
		// browse list here the way playback refreshes above.
	}
}
