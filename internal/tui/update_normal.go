package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

func (m *Model) updateNormalMode(msg tea.Msg) tea.Cmd {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}

	switch {
	case key.Matches(keyMsg, m.keys.Quit):
		return tea.Quit

	case key.Matches(keyMsg, m.keys.ShowHelp):
		m.help.ShowAll = !m.help.ShowAll

	case keyMsg.Type == tea.KeyEsc:
		m.statusMessage = ""
		m.clearSearch()

	case key.Matches(keyMsg, m.keys.PrevColumn):
		if m.focusedColumn > 0 {
			m.focusedColumn--
			m.clampFocusedCard()
		}

	case key.Matches(keyMsg, m.keys.NextColumn):
		if m.focusedColumn < len(m.board.Columns)-1 {
			m.focusedColumn++
			m.clampFocusedCard()
		}

	case key.Matches(keyMsg, m.keys.PrevItem):
		if currentFocus := m.currentFocusedCard(); currentFocus > 1 {
			m.setCurrentFocusedCard(currentFocus - 1)
		}

	case key.Matches(keyMsg, m.keys.NextItem):
		currentFocus := m.currentFocusedCard()
		if currentFocus < m.board.Columns[m.focusedColumn].ItemCount() {
			m.setCurrentFocusedCard(currentFocus + 1)
		}

	case key.Matches(keyMsg, m.keys.PickUp):
		return m.pickUp()

	case key.Matches(keyMsg, m.keys.MoveItemLeft):
		return m.moveFocusedItem(-1)

	case key.Matches(keyMsg, m.keys.MoveItemRight):
		return m.moveFocusedItem(1)

	case key.Matches(keyMsg, m.keys.Search):
		m.statusMessage = ""
		m.mode = searchMode
		m.textInput.Prompt = "/"
		m.textInput.SetValue("")
		return m.textInput.Focus()

	case key.Matches(keyMsg, m.keys.NextMatch):
		return m.findNext()

	case key.Matches(keyMsg, m.keys.PrevMatch):
		return m.findPrev()

	case key.Matches(keyMsg, m.keys.FuzzyFind):
		return m.openFinder()

	case key.Matches(keyMsg, m.keys.CommandLine):
		m.statusMessage = ""
		m.mode = commandMode
		m.textInput.Prompt = ":"
		m.textInput.SetValue("")
		return m.textInput.Focus()
	}
	return nil
}
