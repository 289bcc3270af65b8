package tui

import (
	tea "github.com/charmbracelet/bubbletea"
)

func (m *Model) updateCommandMode(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd

	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.Type {
		case tea.KeyEscape, tea.KeyCtrlC:
			m.mode = normalMode
			m.textInput.Blur()
			return nil
		case tea.KeyTab:
			m.textInput.SetValue(m.completeCommandLine(m.textInput.Value()))
			m.textInput.CursorEnd()
			return nil
		case tea.KeyEnter:
			line := m.textInput.Value()
			// Commands may switch modes themselves (e.g. :find).
			m.mode = normalMode
			m.textInput.Blur()
			return m.executeCommand(line)
		}
	}

	m.textInput, cmd = m.textInput.Update(msg)
	return cmd
}
