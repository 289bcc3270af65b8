package tui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"taskboard/internal/board"
	"taskboard/internal/column"
	"taskboard/internal/dnd"
)

// pickUp starts a keyboard drag of the focused item.
func (m *Model) pickUp() tea.Cmd {
	it, ok := m.focusedItem()
	if !ok {
		return nil
	}

	origin := m.board.Columns[m.focusedColumn].Key
	m.syncRegions()
	m.dnd.Begin(dnd.Payload{Type: dnd.Card, ItemID: it.ID, Origin: string(origin)})
	m.mode = dragMode
	m.statusMessage = ""
	m.log.Debug("drag started", "item", it.ID, "origin", origin, "input", "keyboard")
	return nil
}

func (m *Model) updateDragMode(msg tea.Msg) tea.Cmd {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}

	switch {
	case keyMsg.Type == tea.KeyCtrlC:
		m.dnd.Cancel()
		return tea.Quit

	case key.Matches(keyMsg, m.keys.CancelDrag):
		m.cancelDrag()

	case key.Matches(keyMsg, m.keys.PrevColumn):
		m.hoverAdjacent(-1)

	case key.Matches(keyMsg, m.keys.NextColumn):
		m.hoverAdjacent(1)

	case key.Matches(keyMsg, m.keys.Drop):
		m.mode = normalMode
		d, ok := m.dnd.Drop()
		if !ok {
			return nil
		}
		return m.applyDrop(dropEvent(d))
	}
	return nil
}

func (m *Model) cancelDrag() {
	if p, ok := m.dnd.Dragging(); ok {
		m.log.Debug("drag cancelled", "item", p.ItemID)
	}
	m.dnd.Cancel()
	m.mode = normalMode
}

func (m *Model) hoverAdjacent(delta int) {
	over, ok := m.dnd.Over()
	if !ok {
		return
	}
	keys := m.board.Keys()
	for i, k := range keys {
		if string(k) != over {
			continue
		}
		next := i + delta
		if next >= 0 && next < len(keys) {
			m.dnd.Hover(string(keys[next]))
		}
		return
	}
}

// moveFocusedItem drags the focused item onto the neighbouring column in a
// single step.
func (m *Model) moveFocusedItem(delta int) tea.Cmd {
	it, ok := m.focusedItem()
	if !ok {
		return nil
	}
	next := m.focusedColumn + delta
	if next < 0 || next >= len(m.board.Columns) {
		return nil
	}
	origin := m.board.Columns[m.focusedColumn].Key
	return m.dragTo(dnd.Payload{Type: dnd.Card, ItemID: it.ID, Origin: string(origin)}, m.board.Columns[next].Key)
}

func (m *Model) dragTo(p dnd.Payload, dest column.Key) tea.Cmd {
	m.syncRegions()
	m.dnd.Begin(p)
	if !m.dnd.Hover(string(dest)) {
		m.dnd.Cancel()
		return nil
	}
	d, ok := m.dnd.Drop()
	if !ok {
		return nil
	}
	return m.applyDrop(dropEvent(d))
}

func dropEvent(d dnd.Drop) board.DropEvent {
	return board.DropEvent{
		ItemID: d.Payload.ItemID,
		Source: column.Key(d.Payload.Origin),
		Dest:   column.Key(d.Target),
	}
}

// applyDrop relocates the dropped item. Drops that cannot be applied leave
// the board untouched and are only logged.
func (m *Model) applyDrop(ev board.DropEvent) tea.Cmd {
	next, err := m.board.Relocate(ev)
	if err != nil {
		m.log.Debug("drop ignored", "item", ev.ItemID, "source", ev.Source, "dest", ev.Dest, "err", err)
		return nil
	}
	if ev.Source == ev.Dest {
		m.log.Debug("dropped on origin column", "item", ev.ItemID, "column", ev.Source)
		return nil
	}

	m.board = next
	m.focusItem(ev.ItemID)
	m.clampFocusedCard()
	if m.lastSearchQuery != "" {
		m.performSearch(m.lastSearchQuery)
	}

	m.log.Info("item relocated", "item", ev.ItemID, "source", ev.Source, "dest", ev.Dest)
	m.statusMessage = fmt.Sprintf("Moved %q to %s", m.itemText(ev.ItemID), m.columnTitle(ev.Dest))
	return clearStatusCmd(2 * time.Second)
}
