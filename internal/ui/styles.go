package ui

import (
	"github.com/charmbracelet/lipgloss"
)

// Styles contains all lipgloss styles for terminal output
type Styles struct {
	enabled bool

	// Verdict styles
	Pass    lipgloss.Style
	Fail    lipgloss.Style
	Warning lipgloss.Style
	Info    lipgloss.Style

	// Structural styles
	Header    lipgloss.Style
	Section   lipgloss.Style
	Path      lipgloss.Style
	LineNo    lipgloss.Style
	Muted     lipgloss.Style
	Separator lipgloss.Style

	// Icons (degraded to ASCII when not interactive)
	IconPass    string
	IconFail    string
	IconWarning string
	IconBullet  string
}

// NewStyles creates a new Styles instance
// When enabled is false, styles return text unchanged (for non-TTY output)
func NewStyles(enabled bool) *Styles {
	s := &Styles{enabled: enabled}

	if enabled {
		s.Pass = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10")) // Green
		s.Fail = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9"))  // Red
		s.Warning = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))         // Yellow
		s.Info = lipgloss.NewStyle().Foreground(lipgloss.Color("12"))            // Blue

		s.Header = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("15")) // White bold
		s.Section = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("14"))
		s.Path = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
		s.LineNo = lipgloss.NewStyle().Foreground(lipgloss.Color("13"))
		s.Muted = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
		s.Separator = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))

		s.IconPass = "✓"
		s.IconFail = "✗"
		s.IconWarning = "⚠"
		s.IconBullet = "•"
	} else {
		// No-op styles for non-TTY (plain text output)
		s.Pass = lipgloss.NewStyle()
		s.Fail = lipgloss.NewStyle()
		s.Warning = lipgloss.NewStyle()
		s.Info = lipgloss.NewStyle()

		s.Header = lipgloss.NewStyle()
		s.Section = lipgloss.NewStyle()
		s.Path = lipgloss.NewStyle()
		s.LineNo = lipgloss.NewStyle()
		s.Muted = lipgloss.NewStyle()
		s.Separator = lipgloss.NewStyle()

		s.IconPass = "OK:"
		s.IconFail = "FAIL:"
		s.IconWarning = "WARN:"
		s.IconBullet = "-"
	}

	return s
}

// Enabled returns whether styling is enabled
func (s *Styles) Enabled() bool {
	return s.enabled
}
