package ui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// keyMap binds terminal keys to remote buttons.
type keyMap struct {
	Up         key.Binding
	Down       key.Binding
	Left       key.Binding
	Right      key.Binding
	Play       key.Binding
	Stop       key.Binding
	Pause      key.Binding
	Home       key.Binding
	VolumeUp   key.Binding
	VolumeDown key.Binding
	Mute       key.Binding
	Quit       key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Up:         key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("up", "scroll up")),
		Down:       key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("down", "scroll down")),
		Left:       key.NewBinding(key.WithKeys("left", "h", "backspace"), key.WithHelp("left", "back")),
		Right:      key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("right", "select")),
		Play:       key.NewBinding(key.WithKeys("enter", "p"), key.WithHelp("enter", "play")),
		Stop:       key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "stop")),
		Pause:      key.NewBinding(key.WithKeys(" "), key.WithHelp("space", "pause")),
		Home:       key.NewBinding(key.WithKeys("esc", "H"), key.WithHelp("esc", "home")),
		VolumeUp:   key.NewBinding(key.WithKeys("+", "="), key.WithHelp("+", "volume up")),
		VolumeDown: key.NewBinding(key.WithKeys("-", "_"), key.WithHelp("-", "volume down")),
		Mute:       key.NewBinding(key.WithKeys("m"), key.WithHelp("m", "mute")),
		Quit:       key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// tokenFor translates a key press into the remote button token dispatched
// through the command bus. Digits map to the multi-tap number buttons.
func (m *Model) tokenFor(msg tea.KeyMsg) (string, bool) {
	switch {
	case key.Matches(msg, m.keys.Up):
		return "up", true
	case key.Matches(msg, m.keys.Down):
		return "down", true
	case key.Matches(msg, m.keys.Left):
		return "left", true
	case key.Matches(msg, m.keys.Right):
		return "right", true
	case key.Matches(msg, m.keys.Play):
		return "play", true
	case key.Matches(msg, m.keys.Stop):
		return "stop", true
	case key.Matches(msg, m.keys.Pause):
		return "pause", true
	case key.Matches(msg, m.keys.Home):
		return "home", true
	case key.Matches(msg, m.keys.VolumeUp):
		return "volume_up", true
	case key.Matches(msg, m.keys.VolumeDown):
		return "volume_down", true
	case key.Matches(msg, m.keys.Mute):
		return "mute", true
	}
	if msg.Type == tea.KeyRunes && len(msg.Runes) == 1 {
		r := msg.Runes[0]
		if r >= '0' && r <= '9' {
			return "numberScroll_" + string(r), true
		}
	}
	return "", false
}
