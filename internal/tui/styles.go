package tui

import (
	"github.com/charmbracelet/lipgloss"

	"taskboard/internal/config"
)

type styles struct {
	title        lipgloss.Style
	columnHeader lipgloss.Style

	column        lipgloss.Style
	focusedColumn lipgloss.Style
	dropTarget    lipgloss.Style

	card         lipgloss.Style
	focusedCard  lipgloss.Style
	draggingCard lipgloss.Style
	matchedCard  lipgloss.Style

	placeholder lipgloss.Style
	status      lipgloss.Style
}

func newStyles(t config.Theme) styles {
	column := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(t.Border)).
		Padding(0, 1)

	card := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(t.Border)).
		Padding(0, 1)

	return styles{
		title: lipgloss.NewStyle().
			Bold(true).
			Align(lipgloss.Center).
			MarginBottom(1),
		columnHeader: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(t.Accent)),

		column:        column,
		focusedColumn: column.BorderForeground(lipgloss.Color(t.Accent)),
		// Thick borders are one cell wide like rounded ones, so hovering
		// never shifts the layout.
		dropTarget: column.
			Border(lipgloss.ThickBorder()).
			BorderForeground(lipgloss.Color(t.DropTarget)),

		card:        card,
		focusedCard: card.BorderForeground(lipgloss.Color(t.Accent)),
		draggingCard: card.
			Border(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color(t.Dragging)).
			Foreground(lipgloss.Color(t.Dragging)).
			Faint(true),
		matchedCard: card.BorderForeground(lipgloss.Color(t.Match)),

		placeholder: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Placeholder)).
			Italic(true).
			Align(lipgloss.Center).
			Padding(1, 0),
		status: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Status)),
	}
}
