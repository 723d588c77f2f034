package preview

import "github.com/charmbracelet/lipgloss"

var (
	slate    = lipgloss.Color("#94A3B8")
	slateDim = lipgloss.Color("#64748B")
	panelBg  = lipgloss.Color("#111827")
	line     = lipgloss.Color("#1F2937")
	ink      = lipgloss.Color("#E5E7EB")
	link     = lipgloss.Color("#38BDF8")

	cardStyle = lipgloss.NewStyle().
			Background(panelBg).
			BorderStyle(lipgloss.ThickBorder()).
			BorderLeft(true).
			BorderTop(false).
			BorderRight(false).
			BorderBottom(false).
			Padding(0, 1)

	usernameStyle = lipgloss.NewStyle().Bold(true).Foreground(ink)
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(ink)
	linkStyle     = lipgloss.NewStyle().Underline(true).Foreground(link)
	bodyStyle     = lipgloss.NewStyle().Foreground(slate)
	dimStyle      = lipgloss.NewStyle().Foreground(slateDim)
)

// accentColor is the card's left border colour, grey when the embed colour
// did not parse.
func accentColor(hex string) lipgloss.TerminalColor {
	if hex == "" {
		return line
	}
	return lipgloss.Color(hex)
}
