package report

import "github.com/charmbracelet/lipgloss"

// Color constants using the ANSI 256-color palette, matching the scheme
// used by the output formatters.
const (
	colorDanger  = lipgloss.Color("196")
	colorWarning = lipgloss.Color("214")
	colorMuted   = lipgloss.Color("245")
)

var (
	// errorStyle marks fatal diagnostics and caret spans.
	errorStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorDanger)

	// warningStyle marks recoverable diagnostics.
	warningStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorWarning)

	// messageStyle renders the diagnostic message text.
	messageStyle = lipgloss.NewStyle().
			Bold(true)

	// mutedStyle renders location lines.
	mutedStyle = lipgloss.NewStyle().
			Foreground(colorMuted)
)
