package ui

import (
	"fmt"
	"strings"

	"github.com/atomicstack/player-remote-control/internal/display"
	"github.com/atomicstack/player-remote-control/internal/player"
)

// renderLines produces the plain-text display snapshot for the session's
// current mode. Styling happens in View; the display itself only ever sees
// unstyled characters.
func (m *Model) renderLines() display.Snapshot {
	cur, ok := m.s.CurrentMode()
	if !ok {
		return display.Snapshot{Line1: m.s.Name, Line2: "(no mode)"}
	}
	switch cur.Name {
	case player.ModeHome:
		return m.renderList("Player", player.HomeItems())
	case player.ModeBrowse:
		return m.renderBrowse()
	case player.ModeSearch:
		return m.renderSearch()
	case player.ModeNowPlaying:
		return m.renderNowPlaying()
	case player.ModeVolume:
		return m.renderVolume()
	case player.ModeSettings:
		return m.renderSettings()
	case player.ModeMessage:
		return m.renderMessage(cur.Params)
	}
	return display.Snapshot{Line1: cur.Name}
}

func (m *Model) renderList(title string, items []string) display.Snapshot {
	idx := m.s.IntParam("listIndex", 0)
	if idx < 0 || idx >= len(items) {
		idx = 0
	}
	return display.Snapshot{
		Line1: fmt.Sprintf("%s (%d of %d)", title, idx+1, len(items)),
		Line2: "> " + items[idx],
	}
}

func (m *Model) renderBrowse() display.Snapshot {
	lib := m.player.Library()
	if len(lib) == 0 {
		return display.Snapshot{Line1: "Browse Music", Line2: "(empty library)"}
	}
	idx := m.s.IntParam("listIndex", 0)
	if idx < 0 || idx >= len(lib) {
		idx = 0
	}
	track := lib[idx]
	return display.Snapshot{
		Line1: fmt.Sprintf("Browse Music (%d of %d)", idx+1, len(lib)),
		Line2: fmt.Sprintf("%s / %s", track.Title, track.Artist),
	}
}

func (m *Model) renderSearch() display.Snapshot {
	query, _ := m.s.Param("query")
	text, _ := query.(string)
	line2 := "spell with 0-9, PLAY to search"
	if text != "" {
		line2 = "PLAY to search"
	}
	return display.Snapshot{
		Line1: "Search: " + text + "_",
		Line2: line2,
	}
}

func (m *Model) renderNowPlaying() display.Snapshot {
	snap := m.player.Snapshot()
	lib := m.player.Library()
	track, ok := m.player.Current()
	if !ok || len(lib) == 0 {
		return display.Snapshot{Line1: "Now Playing", Line2: "(nothing queued)"}
	}
	status := statusGlyph(snap.Status)
	return display.Snapshot{
		Line1: fmt.Sprintf("%s %d of %d  %s/%s", status, snap.Index+1, len(lib),
			formatTime(snap.Elapsed), formatTime(track.Duration)),
		Line2: fmt.Sprintf("%s / %s", track.Title, track.Artist),
	}
}

func (m *Model) renderVolume() display.Snapshot {
	snap := m.player.Snapshot()
	label := fmt.Sprintf("Volume %d%%", snap.Volume)
	if snap.Mute {
		label = "Volume muted"
	}
	return display.Snapshot{
		Line1: label,
		Line2: volumeBar(snap.Volume, 20),
	}
}

func (m *Model) renderSettings() display.Snapshot {
	items := player.SettingsItems()
	idx := m.s.IntParam("listIndex", 0)
	if idx < 0 || idx >= len(items) {
		idx = 0
	}
	state := "off"
	switch idx {
	case 0:
		if m.player.Repeat() {
			state = "on"
		}
	case 1:
		if m.player.Shuffle() {
			state = "on"
		}
	}
	return display.Snapshot{
		Line1: fmt.Sprintf("Settings (%d of %d)", idx+1, len(items)),
		Line2: fmt.Sprintf("> %s [%s]", items[idx], state),
	}
}

func (m *Model) renderMessage(params map[string]interface{}) display.Snapshot {
	text, _ := params["text"].(string)
	if text == "" {
		text = "(no message)"
	}
	return display.Snapshot{Line1: "Notice", Line2: text}
}

// renderScreen2 produces the extended-text row shown on the secondary
// screen while a mode keeps it periodic.
func (m *Model) renderScreen2() string {
	snap := m.player.Snapshot()
	track, ok := m.player.Current()
	if !ok {
		return ""
	}
	lib := m.player.Library()
	next := lib[(snap.Index+1)%len(lib)]
	return fmt.Sprintf("%s, %s. Next: %s", track.Album, track.Artist, next.Title)
}

func statusGlyph(status string) string {
	switch status {
	case player.StatusPlay:
		return "PLAY"
	case player.StatusPause:
		return "PAUSE"
	default:
		return "STOP"
	}
}

func volumeBar(volume, cells int) string {
	if volume < 0 {
		volume = 0
	}
	if volume > 100 {
		volume = 100
	}
	filled := volume * cells / 100
	return strings.Repeat("#", filled) + strings.Repeat("-", cells-filled)
}

func formatTime(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}
	return fmt.Sprintf("%d:%02d", seconds/60, seconds%60)
}
