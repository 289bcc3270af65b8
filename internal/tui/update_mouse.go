package tui

import (
	tea "github.com/charmbracelet/bubbletea"
)

func (m *Model) updateMouse(msg tea.MouseMsg) tea.Cmd {
	if !m.mouse || m.mode != normalMode {
		return nil
	}

	lay := m.syncRegions()

	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			return nil
		}
		if p, ok := m.dnd.Press(msg.X, msg.Y); ok {
			m.focusItem(p.ItemID)
			return nil
		}
		for i, c := range lay.columns {
			if c.rect.Contains(msg.X, msg.Y) {
				m.focusedColumn = i
				m.clampFocusedCard()
				break
			}
		}

	case tea.MouseActionMotion:
		wasActive := m.dnd.Active()
		m.dnd.Motion(msg.X, msg.Y)
		if p, ok := m.dnd.Dragging(); ok && !wasActive {
			m.statusMessage = ""
			m.log.Debug("drag started", "item", p.ItemID, "origin", p.Origin, "input", "mouse")
		}

	case tea.MouseActionRelease:
		p, wasActive := m.dnd.Dragging()
		d, ok := m.dnd.Release(msg.X, msg.Y)
		if ok {
			return m.applyDrop(dropEvent(d))
		}
		if wasActive {
			m.log.Debug("drag released outside any column", "item", p.ItemID)
		}
	}
	return nil
}
