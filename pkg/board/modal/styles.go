package modal

import "github.com/charmbracelet/lipgloss"

// Colors matching the board palette in board/styles.go.
var (
	Primary = lipgloss.Color("212")
	Danger  = lipgloss.Color("196")
	Muted   = lipgloss.Color("241")
	Border  = lipgloss.Color("240")
)

var (
	BoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Primary).
			Padding(0, 1)

	TitleStyle = lipgloss.NewStyle().Bold(true)
	BodyStyle  = lipgloss.NewStyle()
	KeyStyle   = lipgloss.NewStyle().Foreground(Muted)
)

// Button styles
var (
	ButtonStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252")).
			Background(lipgloss.Color("238")).
			Padding(0, 2)

	ButtonFocusedStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("255")).
				Background(Primary).
				Bold(true).
				Padding(0, 2)

	ButtonDangerStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("252")).
				Background(lipgloss.Color("238")).
				Padding(0, 2)

	ButtonDangerFocusedStyle = lipgloss.NewStyle().
					Foreground(lipgloss.Color("255")).
					Background(Danger).
					Bold(true).
					Padding(0, 2)
)
