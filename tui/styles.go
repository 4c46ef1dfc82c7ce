package tui

import "github.com/charmbracelet/lipgloss"

// Colors
var (
	colorAccent  = lipgloss.Color("#F25F5C")
	colorLightFg = lipgloss.Color("#E1E8ED")
	colorMuted   = lipgloss.Color("#808080")
	colorLink    = lipgloss.Color("#70C1B3")
	colorRed     = lipgloss.Color("#E0245E")
	colorWhite   = lipgloss.Color("#FFFFFF")
)

// Styles
var (
	headerStyle = lipgloss.NewStyle().
			Background(colorAccent).
			Foreground(colorWhite).
			Bold(true).
			Padding(0, 1)

	bannerTextStyle = lipgloss.NewStyle().
			Foreground(colorLightFg).
			Bold(true)

	bannerCursorStyle = lipgloss.NewStyle().
				Foreground(colorAccent)

	taglineStyle = lipgloss.NewStyle().
			Foreground(colorMuted)

	socialStyle = lipgloss.NewStyle().
			Foreground(colorMuted).
			MarginRight(3)

	scrollHintStyle = lipgloss.NewStyle().
			Foreground(colorAccent).
			Bold(true)

	postTitleStyle = lipgloss.NewStyle().
			Foreground(colorAccent).
			Bold(true)

	postTitleSelectedStyle = lipgloss.NewStyle().
				Foreground(colorWhite).
				Background(colorAccent).
				Bold(true)

	metaStyle = lipgloss.NewStyle().
			Foreground(colorMuted).
			Italic(true)

	spoilerStyle = lipgloss.NewStyle().
			Foreground(colorLightFg)

	linkStyle = lipgloss.NewStyle().
			Foreground(colorLink).
			Underline(true)

	bioStyle = lipgloss.NewStyle().
			Foreground(colorLightFg).
			Border(lipgloss.NormalBorder(), true, false, false, false).
			BorderForeground(colorMuted).
			PaddingTop(1)

	errorMsgStyle = lipgloss.NewStyle().
			Foreground(colorRed).
			Bold(true)

	statusBarStyle = lipgloss.NewStyle().
			Foreground(colorMuted).
			Padding(0, 1)
)
