package ui

import (
	"github.com/charmbracelet/lipgloss"
)

// Soft retro gruvbox palette, carried over from the prototype's escape-code
// color table.
var (
	colorFg     = lipgloss.Color("#d5c4a1")
	colorRed    = lipgloss.Color("#cc8f81")
	colorGreen  = lipgloss.Color("#a4a73a")
	colorYellow = lipgloss.Color("#d7a957")
	colorBlue   = lipgloss.Color("#79918e")
	colorPurple = lipgloss.Color("#b57c91")
	colorAqua   = lipgloss.Color("#84ac72")
	colorOrange = lipgloss.Color("#d68a4b")
	colorDark   = lipgloss.Color("#282828")
)

var (
	borderStyle = lipgloss.NewStyle().Foreground(colorAqua)
	ruleStyle   = lipgloss.NewStyle().Foreground(colorOrange)

	nameStyle = lipgloss.NewStyle().Foreground(colorYellow).Bold(true)

	sectionLabelStyle = lipgloss.NewStyle().
				Foreground(colorDark).
				Background(colorOrange).
				Padding(0, 1)

	bioStyle  = lipgloss.NewStyle().Foreground(colorFg)
	linkStyle = lipgloss.NewStyle().Foreground(colorOrange)
	hintStyle = lipgloss.NewStyle().Foreground(colorBlue)

	localMsgStyle   = lipgloss.NewStyle().Foreground(colorGreen)
	remoteMsgStyle  = lipgloss.NewStyle().Foreground(colorFg)
	localTimeStyle  = lipgloss.NewStyle().Foreground(colorAqua)
	remoteTimeStyle = lipgloss.NewStyle().Foreground(colorPurple)

	promptStyle = lipgloss.NewStyle().
			Foreground(colorDark).
			Background(colorBlue).
			Padding(0, 1)

	selectedStyle = lipgloss.NewStyle().
			Foreground(colorDark).
			Background(colorYellow).
			Padding(0, 1)

	fieldLabelStyle = lipgloss.NewStyle().Foreground(colorOrange)
	fieldValueStyle = lipgloss.NewStyle().Foreground(colorFg)

	placeholderStyle = lipgloss.NewStyle().Foreground(colorRed)
)
