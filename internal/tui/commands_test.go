package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"taskboard/internal/board"
	"taskboard/internal/column"
)

func runCommand(m *Model, line string) tea.Cmd {
	return send(m, runes(":"), runes(line), enterKey)
}

func TestCommandMove(t *testing.T) {
	m := newTestModel(t, nil)

	cmd := runCommand(m, "move 4 paused")

	assert.NotNil(t, cmd)
	assert.Equal(t, normalMode, m.mode)
	assert.Equal(t, []int{3}, columnIDs(t, m, column.InProgress))
	assert.Equal(t, []int{4}, columnIDs(t, m, column.Paused))
	assert.Equal(t, 2, m.focusedColumn)

	runCommand(m, "move 4 1")
	assert.Equal(t, []int{1, 2, 4}, columnIDs(t, m, column.AllTasks))
	assert.Empty(t, columnIDs(t, m, column.Paused))

	runCommand(m, "move 1 column2")
	assert.Equal(t, []int{3, 1}, columnIDs(t, m, column.InProgress))
}

func TestCommandMoveErrors(t *testing.T) {
	tests := []struct {
		line   string
		status string
	}{
		{"move", "Usage: :move <item-id> <column>"},
		{"move 1", "Usage: :move <item-id> <column>"},
		{"move x paused", "Invalid item id: x"},
		{"move 9 paused", "No item with id 9"},
		{"move 1 nowhere", "Unknown column: nowhere"},
		{"frobnicate", "Not a command: frobnicate"},
	}
	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			m := newTestModel(t, nil)

			cmd := runCommand(m, tt.line)

			assert.NotNil(t, cmd)
			assert.Equal(t, tt.status, m.statusMessage)
			assert.Equal(t, board.Default(), m.Board())
		})
	}
}

func TestCommandMoveToOwnColumn(t *testing.T) {
	m := newTestModel(t, nil)

	cmd := runCommand(m, "move 1 all tasks")
	assert.NotNil(t, cmd, "titles with spaces are a usage error")

	cmd = runCommand(m, "move 1 column1")
	assert.NotNil(t, cmd)
	assert.Equal(t, "Item 1 is already in All Tasks", m.statusMessage)
	assert.Equal(t, board.Default(), m.Board())
}

func TestCommandCancel(t *testing.T) {
	m := newTestModel(t, nil)

	send(m, runes(":"), runes("move 1 paused"), escKey)

	assert.Equal(t, normalMode, m.mode)
	assert.Equal(t, board.Default(), m.Board())
}

func TestCommandQuit(t *testing.T) {
	m := newTestModel(t, nil)

	cmd := runCommand(m, "q")
	require.NotNil(t, cmd)
	assert.Equal(t, tea.QuitMsg{}, cmd())
}

func TestCompleteCommandLine(t *testing.T) {
	m := newTestModel(t, nil)

	tests := []struct {
		line string
		want string
	}{
		{"mo", "move"},
		{"qu", "quit"},
		{"zz", "zz"},
		{"move 1 col", "move 1 column1"},
		{"move 1 column3", "move 1 column3"},
		{"move 1", "move 1"},
		{"help x", "help x"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, m.completeCommandLine(tt.line), tt.line)
	}
}

func TestCommandTabCompletion(t *testing.T) {
	m := newTestModel(t, nil)

	send(m, runes(":"), runes("mo"), tea.KeyMsg{Type: tea.KeyTab})
	assert.Equal(t, "move", m.textInput.Value())

	send(m, runes(" 2 column3"), enterKey)
	assert.Equal(t, []int{2}, columnIDs(t, m, column.Paused))
}

func TestSearch(t *testing.T) {
	m := newTestModel(t, nil)

	send(m, runes("/"))
	require.Equal(t, searchMode, m.mode)
	send(m, runes("a"), enterKey)

	assert.Equal(t, normalMode, m.mode)
	assert.Equal(t, "a", m.lastSearchQuery)
	require.Len(t, m.searchResults, 2)
	assert.Equal(t, 0, m.focusedColumn)
	assert.Equal(t, 2, m.currentFocusedCard())

	send(m, runes("n"))
	assert.Equal(t, 1, m.focusedColumn)
	assert.Equal(t, 2, m.currentFocusedCard())

	send(m, runes("n"))
	assert.Equal(t, 0, m.focusedColumn)

	send(m, runes("N"))
	assert.Equal(t, 1, m.focusedColumn)
}

func TestSearchNotFound(t *testing.T) {
	m := newTestModel(t, nil)

	cmd := send(m, runes("/"), runes("xyz"), enterKey)

	assert.NotNil(t, cmd)
	assert.Equal(t, "Pattern not found: xyz", m.statusMessage)
	assert.Equal(t, 0, m.focusedColumn)
	assert.Equal(t, 1, m.currentFocusedCard())
}

func TestSearchWithoutQuery(t *testing.T) {
	m := newTestModel(t, nil)

	send(m, runes("n"))
	assert.Equal(t, "No previous search", m.statusMessage)
}

func TestSearchFollowsMovedItem(t *testing.T) {
	m := newTestModel(t, nil)

	send(m, runes("/"), runes("zoo"), enterKey)
	require.Len(t, m.searchResults, 1)
	assert.Equal(t, searchResult{colIndex: 1, cardIndex: 1}, m.searchResults[0])

	runCommand(m, "move 3 paused")
	require.Len(t, m.searchResults, 1)
	assert.Equal(t, searchResult{colIndex: 2, cardIndex: 1}, m.searchResults[0])
}

func TestClearSearch(t *testing.T) {
	m := newTestModel(t, nil)

	send(m, runes("/"), runes("zoo"), enterKey)
	runCommand(m, "noh")

	assert.Empty(t, m.lastSearchQuery)
	assert.Empty(t, m.searchResults)
}

func TestFinderSelectsItem(t *testing.T) {
	m := newTestModel(t, nil)

	send(m, tea.KeyMsg{Type: tea.KeyCtrlP})
	require.Equal(t, finderMode, m.mode)
	assert.Contains(t, m.View(), "Find Item")

	cmd := send(m, runes("zoo"), enterKey)
	require.NotNil(t, cmd)
	msg := cmd()
	assert.Equal(t, fzfItemSelectedMsg{itemID: 3}, msg)

	send(m, msg)
	assert.Equal(t, normalMode, m.mode)
	assert.Equal(t, 1, m.focusedColumn)
	assert.Equal(t, 1, m.currentFocusedCard())
}

func TestFinderCancel(t *testing.T) {
	m := newTestModel(t, nil)

	runCommand(m, "find")
	require.Equal(t, finderMode, m.mode)

	cmd := send(m, escKey)
	require.NotNil(t, cmd)
	send(m, cmd())

	assert.Equal(t, normalMode, m.mode)
	assert.Equal(t, 0, m.focusedColumn)
}

func TestFinderFilter(t *testing.T) {
	f := NewFZFModel()
	f.SetItems([]FzfItem{
		{Item: board.Default().Columns[0].Items[0], ColTitle: "All Tasks"},
		{Item: board.Default().Columns[1].Items[1], ColTitle: "In progress"},
	})
	assert.Len(t, f.matches, 2)

	f.Focus()
	model, _ := f.Update(runes("cloth"))
	f = model.(FZFModel)
	require.Len(t, f.matches, 1)
	assert.Equal(t, "Wash Clothes", f.matches[0].Str)
}
