package ui

import (
	"strings"

	"github.com/atomicstack/player-remote-control/internal/session"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/padding"
	"github.com/muesli/reflow/truncate"
)

// View renders the simulator: a framed two-line display, the secondary
// screen row when active, and a footer of key hints.
func (m *Model) View() string {
	var sections []string

	header := m.s.Name + "  " + m.modePath()
	if styles.Header != nil {
		header = styles.Header.Render(header)
	}
	sections = append(sections, header)

	line1 := m.fit(m.lines.Line1)
	line2 := m.fit(m.lines.Line2)
	if styles.Line1 != nil {
		line1 = styles.Line1.Render(line1)
	}
	if styles.Line2 != nil {
		line2 = styles.Line2.Render(line2)
	}
	frame := line1 + "\n" + line2
	if styles.Frame != nil {
		frame = styles.Frame.Render(frame)
	}
	sections = append(sections, frame)

	if m.s.Screen2 != session.Screen2None && m.screen2 != "" {
		title := "screen2"
		body := m.fit(m.screen2)
		if styles.Screen2Title != nil {
			title = styles.Screen2Title.Render(title)
		}
		if styles.Screen2Body != nil {
			body = styles.Screen2Body.Render(body)
		}
		sections = append(sections, title+" "+body)
	}

	if m.errMsg != "" {
		msg := m.errMsg
		if styles.Error != nil {
			msg = styles.Error.Render(msg)
		}
		sections = append(sections, msg)
	} else if m.infoMsg != "" && m.now().Before(m.infoExpire) {
		msg := m.infoMsg
		if styles.Info != nil {
			msg = styles.Info.Render(msg)
		}
		sections = append(sections, msg)
	}

	footer := m.footerHints()
	if styles.Footer != nil {
		footer = styles.Footer.Render(footer)
	}
	sections = append(sections, footer)

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// modePath renders the session's mode stack as a breadcrumb.
func (m *Model) modePath() string {
	names := make([]string, 0, m.s.Depth())
	for _, entry := range m.s.Modes {
		names = append(names, entry.Name)
	}
	if len(names) == 0 {
		return "(empty)"
	}
	return strings.Join(names, " > ")
}

func (m *Model) footerHints() string {
	hints := []string{
		m.keys.Up.Help().Key + "/" + m.keys.Down.Help().Key,
		m.keys.Left.Help().Key + " " + m.keys.Left.Help().Desc,
		m.keys.Play.Help().Key + " " + m.keys.Play.Help().Desc,
		m.keys.VolumeUp.Help().Key + "/" + m.keys.VolumeDown.Help().Key + " volume",
		m.keys.Quit.Help().Key + " " + m.keys.Quit.Help().Desc,
	}
	return strings.Join(hints, "  ")
}

// fit pads a display line to the screen width so animation frames do not
// change the frame geometry.
func (m *Model) fit(line string) string {
	w := uint(m.screen.Width())
	return padding.String(truncate.String(line, w), w)
}
