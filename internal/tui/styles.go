package tui

import (
	"github.com/charmbracelet/lipgloss"
)

const swatchWidth = 24

var (
	// Colors
	primaryColor = lipgloss.Color("99")  // Purple
	warningColor = lipgloss.Color("226") // Yellow
	errorColor   = lipgloss.Color("196") // Red
	mutedColor   = lipgloss.Color("245") // Gray
	accentColor  = lipgloss.Color("212") // Pink

	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(primaryColor).
			PaddingLeft(1).
			PaddingRight(1)

	headerStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.NormalBorder()).
			BorderBottom(true).
			BorderForeground(mutedColor).
			MarginBottom(1)

	swatchStyle = lipgloss.NewStyle().
			Width(swatchWidth).
			Padding(1, 1).
			BorderStyle(lipgloss.HiddenBorder())

	removingStyle = lipgloss.NewStyle().
			Width(swatchWidth).
			Padding(1, 1).
			BorderStyle(lipgloss.HiddenBorder()).
			Foreground(mutedColor).
			Faint(true)

	formatOffStyle = lipgloss.NewStyle().
			Foreground(mutedColor)

	noticeStyle = lipgloss.NewStyle().
			Foreground(warningColor)

	errorBannerStyle = lipgloss.NewStyle().
				Foreground(errorColor).
				Bold(true).
				BorderStyle(lipgloss.ThickBorder()).
				BorderForeground(errorColor).
				Padding(0, 1)

	footerStyle = lipgloss.NewStyle().
			Foreground(mutedColor).
			BorderStyle(lipgloss.NormalBorder()).
			BorderTop(true).
			BorderForeground(mutedColor).
			MarginTop(1)

	helpKeyStyle = lipgloss.NewStyle().
			Foreground(accentColor).
			Bold(true).
			Width(16)

	helpDescStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252"))
)

// swatchColors returns the entry style for a hex background and its
// contrasting text color.
func swatchColors(base lipgloss.Style, hex, text string) lipgloss.Style {
	fg := lipgloss.Color("#000000")
	if text == "white" {
		fg = lipgloss.Color("#ffffff")
	}
	return base.Background(lipgloss.Color(hex)).Foreground(fg)
}
