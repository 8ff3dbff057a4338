package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/avatint/internal/avatar"
	"github.com/alexisbeaulieu97/avatint/internal/controls"
)

// View renders the control panel beside the avatar preview.
func (m Model) View() string {
	panel := m.renderPanel()
	body := panel
	if preview := m.renderPreview(); preview != "" {
		body = lipgloss.JoinHorizontal(lipgloss.Top, panel, "  ", preview)
	}

	sections := []string{titleStyle.Render("avatint"), body}
	if m.status != "" {
		style := statusStyle
		if m.statusErr {
			style = errorStyle
		}
		sections = append(sections, style.Render(m.status))
	}
	sections = append(sections, m.help.View(m.keys))
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m Model) renderPanel() string {
	var cards []string
	var current avatar.Key
	var lines []string
	flush := func() {
		if len(lines) > 0 {
			cards = append(cards, cardStyle.Render(strings.Join(lines, "\n")))
		}
		lines = nil
	}

	for i, c := range m.controls {
		if c.Part != current {
			flush()
			current = c.Part
			p, _ := m.view.State().Part(c.Part)
			swatch := lipgloss.NewStyle().Foreground(lipgloss.Color(m.view.PartColor(c.Part))).Render("■")
			lines = append(lines, fmt.Sprintf("%s %s", swatch, cardTitleStyle.Render(p.Label)))
		}
		lines = append(lines, m.renderControl(i, c))
	}
	flush()

	return lipgloss.NewStyle().Width(panelWidth).Render(lipgloss.JoinVertical(lipgloss.Left, cards...))
}

func (m Model) renderControl(i int, c controls.Control) string {
	label := c.Label
	if c.Type == controls.InputRange {
		label = "Br"
	}
	input := valueStyle.Render(m.inputs[i].View())
	line := fmt.Sprintf("%s %s", labelStyle.Render(label), input)
	if c.Type == controls.InputRange {
		line += " " + slider(c, 12) + fmt.Sprintf(" %d%%", c.Value)
	}
	if i == m.focus {
		return focusedStyle.Render("›") + line
	}
	return " " + line
}

// slider draws a bar proportional to the control's position within its bounds.
func slider(c controls.Control, width int) string {
	span := c.Max - c.Min
	filled := 0
	if span > 0 {
		filled = (c.Value - c.Min) * width / span
	}
	return strings.Repeat("━", filled) + "●" + strings.Repeat("─", width-filled)
}
