package tui

import "github.com/charmbracelet/lipgloss"

var (
	primaryColor = lipgloss.Color("99")
	mutedColor   = lipgloss.Color("245")
	accentColor  = lipgloss.Color("212")
	errorColor   = lipgloss.Color("196")

	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(primaryColor).
			PaddingLeft(1).
			MarginBottom(1)

	cardStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(mutedColor).
			PaddingLeft(1).
			PaddingRight(1)

	cardTitleStyle = lipgloss.NewStyle().Bold(true)

	labelStyle   = lipgloss.NewStyle().Foreground(mutedColor).Width(3)
	focusedStyle = lipgloss.NewStyle().Foreground(accentColor).Bold(true)
	valueStyle   = lipgloss.NewStyle().Width(5)

	statusStyle = lipgloss.NewStyle().Foreground(mutedColor).MarginTop(1)
	errorStyle  = lipgloss.NewStyle().Foreground(errorColor).Bold(true).MarginTop(1)
)
