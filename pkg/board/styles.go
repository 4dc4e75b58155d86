package board

import "github.com/charmbracelet/lipgloss"

// Palette
var (
	primaryColor = lipgloss.Color("212")
	successColor = lipgloss.Color("42")
	warningColor = lipgloss.Color("214")
	errorColor   = lipgloss.Color("196")
	cyanColor    = lipgloss.Color("45")
	mutedColor   = lipgloss.Color("241")
	borderColor  = lipgloss.Color("240")
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(primaryColor)

	subtleStyle = lipgloss.NewStyle().
			Foreground(mutedColor)

	sectionStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(borderColor).
			Padding(0, 1)

	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252"))

	statusErrorStyle = lipgloss.NewStyle().
				Foreground(errorColor)

	tableHeaderStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(cyanColor)

	invalidInputStyle = lipgloss.NewStyle().
				Foreground(errorColor).
				Underline(true)

	focusedLabelStyle = lipgloss.NewStyle().
				Foreground(primaryColor).
				Bold(true)

	buttonStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252")).
			Background(lipgloss.Color("238")).
			Padding(0, 1)

	tooltipStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("230")).
			Background(lipgloss.Color("236")).
			Padding(0, 1)
)

// flashStyles maps a flash category class to its item style.
func flashStyle(category string, fading bool) lipgloss.Style {
	var fg lipgloss.Color
	switch category {
	case "success":
		fg = successColor
	case "warning":
		fg = warningColor
	case "danger":
		fg = errorColor
	default:
		fg = cyanColor
	}
	s := lipgloss.NewStyle().Foreground(fg)
	if fading {
		s = s.Faint(true)
	}
	return s
}
