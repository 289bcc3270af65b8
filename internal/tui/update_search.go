package tui

import (
	tea "github.com/charmbracelet/bubbletea"
)

func (m *Model) updateSearchMode(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd

	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.Type {
		case tea.KeyEscape, tea.KeyCtrlC:
			m.mode = normalMode
			m.textInput.Blur()
			m.textInput.SetValue("")
			m.performSearch(m.lastSearchQuery)
			return nil
		case tea.KeyEnter:
			query := m.textInput.Value()
			if query == "" {
				query = m.lastSearchQuery
			}
			m.lastSearchQuery = query
			m.performSearch(query)
			cmd = m.jumpToFirstResult(true)
			m.mode = normalMode
			m.textInput.Blur()
			return cmd
		}
	}

	prevVal := m.textInput.Value()
	m.textInput, cmd = m.textInput.Update(msg)

	if m.textInput.Value() != prevVal {
		m.performSearch(m.textInput.Value())
		// Don't show "not found" message during incremental search
		if len(m.searchResults) > 0 {
			m.jumpToFirstResult(false)
		}
	}

	return cmd
}
