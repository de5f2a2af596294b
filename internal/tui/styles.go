package tui

import "github.com/charmbracelet/lipgloss"

// Styles
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("205")).
			Padding(0, 1)

	selectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("229")).
			Background(lipgloss.Color("57")).
			Bold(true)

	normalStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252"))

	authorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("245"))

	favoriteStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("204"))

	badgeStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("39"))

	installedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("34"))

	notInstalledStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("42"))

	pendingStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Italic(true)

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196"))

	cardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("238")).
			Padding(0, 1)

	cardSelectedStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(lipgloss.Color("205")).
				Padding(0, 1)

	previewStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("62")).
			Padding(1)

	modalStyle = lipgloss.NewStyle().
			Border(lipgloss.DoubleBorder()).
			BorderForeground(lipgloss.Color("205")).
			Padding(1, 2)

	modalTitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("99"))

	modalOptionStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("252"))

	modalSelectedStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("205"))

	modalDescStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			PaddingLeft(2)

	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))

	linkStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("33")).
			Underline(true)

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))
)

// setTheme restyles the text foregrounds for the host-reported theme.
// The defaults above assume a dark terminal; a light host flips the
// shades that would otherwise wash out.
func setTheme(theme string) {
	switch theme {
	case "light":
		normalStyle = normalStyle.Foreground(lipgloss.Color("235"))
		authorStyle = authorStyle.Foreground(lipgloss.Color("242"))
		modalOptionStyle = modalOptionStyle.Foreground(lipgloss.Color("235"))
		modalDescStyle = modalDescStyle.Foreground(lipgloss.Color("243"))
		statusStyle = statusStyle.Foreground(lipgloss.Color("243"))
		helpStyle = helpStyle.Foreground(lipgloss.Color("243"))
	default:
		normalStyle = normalStyle.Foreground(lipgloss.Color("252"))
		authorStyle = authorStyle.Foreground(lipgloss.Color("245"))
		modalOptionStyle = modalOptionStyle.Foreground(lipgloss.Color("252"))
		modalDescStyle = modalDescStyle.Foreground(lipgloss.Color("241"))
		statusStyle = statusStyle.Foreground(lipgloss.Color("241"))
		helpStyle = helpStyle.Foreground(lipgloss.Color("241"))
	}
}
