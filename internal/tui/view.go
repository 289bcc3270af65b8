package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"taskboard/internal/column"
	"taskboard/internal/dnd"
	"taskboard/internal/item"
)

const (
	boardTitle      = "Drag and Drop Board"
	defaultWidth    = 90
	minColumnWidth  = 20
	minColumnHeight = 10
	// title, status line, help line
	chromeHeight = 4
)

type cardRegion struct {
	itemID int
	column column.Key
	rect   dnd.Rect
}

type columnRegion struct {
	key  column.Key
	rect dnd.Rect
}

// layout records where each column and card was drawn, in screen cells.
type layout struct {
	columns []columnRegion
	cards   []cardRegion
}

func (m *Model) View() string {
	if m.mode == finderMode {
		return m.finder.View()
	}

	title := m.renderTitle()
	boardView, _ := m.renderBoard(lipgloss.Height(title))

	return lipgloss.JoinVertical(lipgloss.Left,
		title,
		boardView,
		m.renderStatus(),
		m.renderHelp(),
	)
}

// syncRegions registers the current layout with the drag manager.
func (m *Model) syncRegions() layout {
	_, lay := m.renderBoard(lipgloss.Height(m.renderTitle()))

	m.dnd.ClearRegions()
	for _, c := range lay.columns {
		m.dnd.RegisterTarget(string(c.key), c.rect, dnd.Card)
	}
	for _, c := range lay.cards {
		m.dnd.RegisterSource(c.rect, dnd.Payload{
			Type:   dnd.Card,
			ItemID: c.itemID,
			Origin: string(c.column),
		})
	}
	return lay
}

func (m *Model) columnWidth() int {
	w := m.width
	if w <= 0 {
		w = defaultWidth
	}
	if len(m.board.Columns) == 0 {
		return w
	}
	cw := w / len(m.board.Columns)
	if cw < minColumnWidth {
		cw = minColumnWidth
	}
	return cw
}

func (m *Model) columnHeight() int {
	h := m.height - chromeHeight - 2
	if h < minColumnHeight {
		h = minColumnHeight
	}
	return h
}

func (m *Model) renderTitle() string {
	width := m.columnWidth() * len(m.board.Columns)
	return m.styles.title.Width(width).Render(boardTitle)
}

func (m *Model) renderBoard(top int) (string, layout) {
	var lay layout
	var rendered []string

	x := 0
	width := m.columnWidth()
	for i, col := range m.board.Columns {
		view, cards := m.renderColumn(col, i, width)
		rect := dnd.Rect{X: x, Y: top, W: lipgloss.Width(view), H: lipgloss.Height(view)}
		lay.columns = append(lay.columns, columnRegion{key: col.Key, rect: rect})
		for _, c := range cards {
			c.rect.X += x
			c.rect.Y += top
			lay.cards = append(lay.cards, c)
		}
		rendered = append(rendered, view)
		x += rect.W
	}

	return lipgloss.JoinHorizontal(lipgloss.Top, rendered...), lay
}

// renderColumn draws a column box and returns the card regions relative to
// the box's top-left corner.
func (m *Model) renderColumn(c column.Column, columnIndex, width int) (string, []cardRegion) {
	// border and horizontal padding on each side
	inner := width - 4

	header := m.styles.columnHeader.Render(fmt.Sprintf("%s %d", c.Title, c.ItemCount()))
	parts := []string{header}

	var cards []cardRegion
	y := 1 + lipgloss.Height(header)
	for i, it := range c.Items {
		view := m.renderCard(it, columnIndex, i+1, inner)
		h := lipgloss.Height(view)
		cards = append(cards, cardRegion{
			itemID: it.ID,
			column: c.Key,
			rect:   dnd.Rect{X: 2, Y: y, W: lipgloss.Width(view), H: h},
		})
		parts = append(parts, view)
		y += h
	}

	if c.IsEmpty() {
		parts = append(parts, m.styles.placeholder.Width(inner).Render(c.Placeholder))
	}

	style := m.styles.column
	switch {
	case m.dnd.IsOver(string(c.Key)):
		style = m.styles.dropTarget
	case columnIndex == m.focusedColumn && m.mode != dragMode:
		style = m.styles.focusedColumn
	}

	body := lipgloss.JoinVertical(lipgloss.Left, parts...)
	return style.Width(width - 2).Height(m.columnHeight()).Render(body), cards
}

func (m *Model) renderCard(it item.Item, columnIndex, cardIndex, width int) string {
	isFocused := m.focusedColumn == columnIndex && m.columnCardFocus[columnIndex] == cardIndex

	style := m.styles.card
	switch {
	case m.dnd.IsDraggingItem(it.ID):
		style = m.styles.draggingCard
	case isFocused && m.mode != dragMode:
		style = m.styles.focusedCard
	case m.matchesSearch(it):
		style = m.styles.matchedCard
	}

	return style.Width(width - 2).Render(it.Text)
}

func (m *Model) matchesSearch(it item.Item) bool {
	query := m.lastSearchQuery
	if m.mode == searchMode {
		query = m.textInput.Value()
	}
	if query == "" {
		return false
	}
	return strings.Contains(strings.ToLower(it.Text), strings.ToLower(query))
}

func (m *Model) renderStatus() string {
	switch m.mode {
	case searchMode, commandMode:
		return m.textInput.View()
	}

	if p, ok := m.dnd.Dragging(); ok {
		text := m.itemText(p.ItemID)
		if over, ok := m.dnd.Over(); ok {
			return m.styles.status.Render(fmt.Sprintf("Dragging %q over %s", text, m.columnTitle(column.Key(over))))
		}
		return m.styles.status.Render(fmt.Sprintf("Dragging %q", text))
	}

	return m.styles.status.Render(m.statusMessage)
}

func (m *Model) renderHelp() string {
	if m.mode == dragMode {
		return m.help.View(dragKeyMap{m.keys})
	}
	return m.help.View(m.keys)
}

func (m *Model) itemText(id int) string {
	for _, col := range m.board.Columns {
		if idx := col.IndexOf(id); idx >= 0 {
			return col.Items[idx].Text
		}
	}
	return ""
}

func (m *Model) columnTitle(key column.Key) string {
	if c, ok := m.board.Column(key); ok {
		return c.Title
	}
	return string(key)
}
