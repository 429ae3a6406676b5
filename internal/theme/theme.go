package theme

import "github.com/charmbracelet/lipgloss"

// Styles describes reusable Lip Gloss styles shared across the UI.
type Styles struct {
	Header        *lipgloss.Style
	Footer        *lipgloss.Style
	Frame         *lipgloss.Style
	Line1         *lipgloss.Style
	Line2         *lipgloss.Style
	Screen2Title  *lipgloss.Style
	Screen2Body   *lipgloss.Style
	Error         *lipgloss.Style
	Info          *lipgloss.Style
	VolumeFilled  *lipgloss.Style
	VolumeEmpty   *lipgloss.Style
	QueryPrompt   *lipgloss.Style
	QueryText     *lipgloss.Style
	StatusPlaying *lipgloss.Style
	StatusPaused  *lipgloss.Style
	StatusStopped *lipgloss.Style
}

var defaultStyles = Styles{
	Header: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Bold(true),
	),
	Footer: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("249")),
	),
	Frame: ptr(
		lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("238")).Padding(0, 1),
	),
	Line1: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Bold(true),
	),
	Line2: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("250")),
	),
	Screen2Title: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Bold(true),
	),
	Screen2Body: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("244")).Italic(true),
	),
	Error: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true),
	),
	Info: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("249")),
	),
	VolumeFilled: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("33")),
	),
	VolumeEmpty: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("238")),
	),
	QueryPrompt: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("34")).Bold(true),
	),
	QueryText: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("249")),
	),
	StatusPlaying: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("34")),
	),
	StatusPaused: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("178")),
	),
	StatusStopped: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
	),
}

// Default exposes the standard style set used across the application.
func Default() *Styles {
	return &defaultStyles
}

func ptr(style lipgloss.Style) *lipgloss.Style {
	return &style
}
