package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/sahilm/fuzzy"

	"taskboard/internal/item"
)

type fzfItemSelectedMsg struct{ itemID int }
type fzfCancelledMsg struct{}

type FzfItem struct {
	Item     item.Item
	ColTitle string
}

type itemSource []FzfItem

func (s itemSource) String(i int) string {
	return s[i].Item.Text
}

func (s itemSource) Len() int {
	return len(s)
}

var (
	fzfPopupStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("62"))

	fzfPromptStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205"))

	fzfSelectedItemStyle = lipgloss.NewStyle().
				Background(lipgloss.Color("236")).
				Foreground(lipgloss.Color("229"))

	fzfMatchedCharStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("205")).
				Underline(true)
)

type FZFModel struct {
	textinput     textinput.Model
	viewport      viewport.Model
	items         itemSource
	matches       fuzzy.Matches
	selectedIndex int
	width         int
	height        int
}

func NewFZFModel() FZFModel {
	ti := textinput.New()
	ti.Prompt = "> "
	ti.Placeholder = "Find an item..."
	ti.PromptStyle = fzfPromptStyle

	m := FZFModel{
		textinput: ti,
		viewport:  viewport.New(0, 0),
	}
	m.SetSize(defaultWidth, 24)
	return m
}

func (m *FZFModel) popupSize() (int, int) {
	popupWidth := int(float64(m.width) * 0.8)
	if popupWidth > 120 {
		popupWidth = 120
	}
	popupHeight := int(float64(m.height) * 0.6)
	if popupHeight < 6 {
		popupHeight = 6
	}
	return popupWidth, popupHeight
}

func (m *FZFModel) SetSize(w, h int) {
	m.width = w
	m.height = h

	popupWidth, popupHeight := m.popupSize()
	m.textinput.Width = popupWidth - 4
	m.viewport.Width = popupWidth - 4
	m.viewport.Height = popupHeight - 3
}

func (m *FZFModel) SetItems(items []FzfItem) {
	m.items = items
	m.filter()
}

func (m *FZFModel) Focus() tea.Cmd {
	m.textinput.SetValue("")
	m.filter()
	m.textinput.Focus()
	return textinput.Blink
}

func (m *FZFModel) Blur() {
	m.textinput.Blur()
	m.textinput.SetValue("")
}

func (m FZFModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m FZFModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.Type {
		case tea.KeyEscape, tea.KeyCtrlC:
			return m, func() tea.Msg { return fzfCancelledMsg{} }

		case tea.KeyEnter:
			if len(m.matches) > 0 {
				selected := m.items[m.matches[m.selectedIndex].Index]
				return m, func() tea.Msg { return fzfItemSelectedMsg{itemID: selected.Item.ID} }
			}
			return m, func() tea.Msg { return fzfCancelledMsg{} }

		case tea.KeyDown, tea.KeyCtrlN:
			if m.selectedIndex < len(m.matches)-1 {
				m.selectedIndex++
			} else {
				m.selectedIndex = 0
			}
			return m, nil

		case tea.KeyUp, tea.KeyCtrlP:
			if m.selectedIndex > 0 {
				m.selectedIndex--
			} else if len(m.matches) > 0 {
				m.selectedIndex = len(m.matches) - 1
			}
			return m, nil
		}
	}

	prev := m.textinput.Value()
	var cmd tea.Cmd
	m.textinput, cmd = m.textinput.Update(msg)
	if m.textinput.Value() != prev {
		m.filter()
	}

	return m, cmd
}

// filter lists every item for an empty query, fuzzy matches otherwise.
func (m *FZFModel) filter() {
	m.selectedIndex = 0
	query := m.textinput.Value()
	if query == "" {
		m.matches = make(fuzzy.Matches, len(m.items))
		for i, it := range m.items {
			m.matches[i] = fuzzy.Match{Str: it.Item.Text, Index: i}
		}
		return
	}
	m.matches = fuzzy.FindFrom(query, m.items)
}

func (m FZFModel) renderResults() string {
	var b strings.Builder
	for i, match := range m.matches {
		it := m.items[match.Index]

		line := "  "
		if i == m.selectedIndex {
			line = "> "
		}

		matchedIndexes := make(map[int]struct{}, len(match.MatchedIndexes))
		for _, idx := range match.MatchedIndexes {
			matchedIndexes[idx] = struct{}{}
		}

		var title strings.Builder
		for charIdx, char := range it.Item.Text {
			if _, ok := matchedIndexes[charIdx]; ok {
				title.WriteString(fzfMatchedCharStyle.Render(string(char)))
			} else {
				title.WriteRune(char)
			}
		}

		line += fmt.Sprintf("%s [%s]", title.String(), it.ColTitle)

		if i == m.selectedIndex {
			b.WriteString(fzfSelectedItemStyle.Render(line))
		} else {
			b.WriteString(line)
		}
		b.WriteRune('\n')
	}
	return b.String()
}

func (m FZFModel) View() string {
	popupWidth, popupHeight := m.popupSize()

	m.viewport.SetContent(m.renderResults())
	if m.selectedIndex >= m.viewport.Height {
		m.viewport.SetYOffset(m.selectedIndex - m.viewport.Height + 1)
	}

	content := lipgloss.JoinVertical(lipgloss.Left, "Find Item", m.viewport.View(), m.textinput.View())
	popup := fzfPopupStyle.Width(popupWidth).Height(popupHeight).Render(content)

	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, popup)
}

// openFinder shows the fuzzy finder over every item on the board.
func (m *Model) openFinder() tea.Cmd {
	var items []FzfItem
	for _, col := range m.board.Columns {
		for _, it := range col.Items {
			items = append(items, FzfItem{Item: it, ColTitle: col.Title})
		}
	}

	if m.width > 0 {
		m.finder.SetSize(m.width, m.height)
	}
	m.finder.SetItems(items)
	m.mode = finderMode
	return m.finder.Focus()
}
