package model

import "github.com/charmbracelet/lipgloss"

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("86")).
			MarginBottom(1)

	selectedStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("170")).
			Width(14).
			Padding(0, 1)

	normalStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252")).
			Width(14).
			Padding(0, 1)

	numericStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252")).
			Width(24).
			Padding(0, 1).
			Align(lipgloss.Right)

	barFilledStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("170"))
	barEmptyStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("239"))

	messageStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("86")).
			Italic(true).
			MarginTop(1)

	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))
)
