package tui

import (
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

func (m *Model) performSearch(query string) {
	m.searchResults = []searchResult{}
	m.currentSearchResultIdx = -1

	if query == "" {
		return
	}

	lowerQuery := strings.ToLower(query)

	for colIdx, col := range m.board.Columns {
		for cardIdx, it := range col.Items {
			if strings.Contains(strings.ToLower(it.Text), lowerQuery) {
				m.searchResults = append(m.searchResults, searchResult{
					colIndex:  colIdx,
					cardIndex: cardIdx + 1,
				})
			}
		}
	}
}

func (m *Model) clearSearch() {
	m.lastSearchQuery = ""
	m.searchResults = []searchResult{}
	m.currentSearchResultIdx = -1
}

func (m *Model) jumpTo(res searchResult) {
	m.focusedColumn = res.colIndex
	m.columnCardFocus[res.colIndex] = res.cardIndex
}

// jumpToFirstResult focuses the first match after the current focus,
// wrapping around the board.
func (m *Model) jumpToFirstResult(showMessageOnFail bool) tea.Cmd {
	if len(m.searchResults) == 0 {
		if showMessageOnFail {
			m.statusMessage = "Pattern not found: " + m.lastSearchQuery
			return clearStatusCmd(2 * time.Second)
		}
		return nil
	}

	currentCol := m.focusedColumn
	currentCard := m.currentFocusedCard()

	nextIdx := 0
	for i, res := range m.searchResults {
		if res.colIndex > currentCol || (res.colIndex == currentCol && res.cardIndex >= currentCard) {
			nextIdx = i
			break
		}
	}
	m.currentSearchResultIdx = nextIdx
	m.jumpTo(m.searchResults[nextIdx])
	return nil
}

func (m *Model) findNext() tea.Cmd {
	return m.cycleSearch(1)
}

func (m *Model) findPrev() tea.Cmd {
	return m.cycleSearch(-1)
}

func (m *Model) cycleSearch(delta int) tea.Cmd {
	if m.lastSearchQuery == "" {
		m.statusMessage = "No previous search"
		return clearStatusCmd(2 * time.Second)
	}
	if len(m.searchResults) == 0 {
		m.performSearch(m.lastSearchQuery)
		if len(m.searchResults) == 0 {
			m.statusMessage = "Pattern not found: " + m.lastSearchQuery
			return clearStatusCmd(2 * time.Second)
		}
	}

	n := len(m.searchResults)
	m.currentSearchResultIdx = ((m.currentSearchResultIdx+delta)%n + n) % n
	m.jumpTo(m.searchResults[m.currentSearchResultIdx])
	return nil
}
