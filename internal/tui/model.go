package tui

import (
	"log/slog"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"taskboard/internal/board"
	"taskboard/internal/config"
	"taskboard/internal/dnd"
	"taskboard/internal/item"
	"taskboard/internal/logging"
)

type mode int

const (
	normalMode mode = iota
	dragMode
	searchMode
	commandMode
	finderMode
)

type searchResult struct {
	colIndex  int
	cardIndex int
}

type clearStatusMsg struct{}

func clearStatusCmd(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return clearStatusMsg{}
	})
}

type Model struct {
	board  board.Board
	keys   keyMap
	styles styles
	help   help.Model
	log    *slog.Logger
	mouse  bool

	dnd *dnd.Manager

	mode          mode
	focusedColumn int
	// columnCardFocus holds the focused card per column: 0 is the column
	// header, 1..n are its cards.
	columnCardFocus []int

	textInput textinput.Model
	finder    FZFModel

	statusMessage string

	lastSearchQuery        string
	searchResults          []searchResult
	currentSearchResultIdx int

	width  int
	height int
}

func NewModel(b board.Board, cfg *config.Config, logger *slog.Logger) Model {
	if cfg == nil {
		cfg = config.Default()
	}
	if logger == nil {
		logger = logging.Logger
	}

	ti := textinput.New()
	ti.Prompt = ":"

	m := Model{
		board:                  b,
		keys:                   newKeyMap(cfg.KeyMappings),
		styles:                 newStyles(cfg.Theme),
		help:                   help.New(),
		log:                    logger,
		mouse:                  !cfg.DisableMouse,
		dnd:                    dnd.NewManager(),
		columnCardFocus:        make([]int, len(b.Columns)),
		textInput:              ti,
		finder:                 NewFZFModel(),
		currentSearchResultIdx: -1,
	}
	for i, col := range b.Columns {
		if !col.IsEmpty() {
			m.columnCardFocus[i] = 1
		}
	}
	return m
}

func (m *Model) Init() tea.Cmd {
	return nil
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.finder.SetSize(msg.Width, msg.Height)
		return m, nil

	case clearStatusMsg:
		m.statusMessage = ""
		return m, nil

	case fzfItemSelectedMsg:
		m.mode = normalMode
		m.finder.Blur()
		m.focusItem(msg.itemID)
		return m, nil

	case fzfCancelledMsg:
		m.mode = normalMode
		m.finder.Blur()
		return m, nil

	case tea.MouseMsg:
		return m, m.updateMouse(msg)
	}

	var cmd tea.Cmd
	switch m.mode {
	case dragMode:
		cmd = m.updateDragMode(msg)
	case searchMode:
		cmd = m.updateSearchMode(msg)
	case commandMode:
		cmd = m.updateCommandMode(msg)
	case finderMode:
		var finder tea.Model
		finder, cmd = m.finder.Update(msg)
		m.finder = finder.(FZFModel)
	default:
		cmd = m.updateNormalMode(msg)
		// Pointer gestures do not survive leaving normal mode.
		if m.mode != normalMode && m.mode != dragMode {
			m.dnd.Cancel()
		}
	}
	return m, cmd
}

// Board returns the current board state.
func (m *Model) Board() board.Board {
	return m.board
}

func (m *Model) currentFocusedCard() int {
	if m.focusedColumn >= len(m.columnCardFocus) {
		return 0
	}
	return m.columnCardFocus[m.focusedColumn]
}

func (m *Model) setCurrentFocusedCard(i int) {
	if m.focusedColumn < len(m.columnCardFocus) {
		m.columnCardFocus[m.focusedColumn] = i
	}
}

func (m *Model) clampFocusedCard() {
	for i, col := range m.board.Columns {
		n := col.ItemCount()
		if m.columnCardFocus[i] > n {
			m.columnCardFocus[i] = n
		}
		if m.columnCardFocus[i] == 0 && n > 0 && i != m.focusedColumn {
			m.columnCardFocus[i] = 1
		}
	}
}

func (m *Model) focusedItem() (item.Item, bool) {
	f := m.currentFocusedCard()
	if f == 0 || m.focusedColumn >= len(m.board.Columns) {
		return item.Item{}, false
	}
	return m.board.Columns[m.focusedColumn].Items[f-1], true
}

// focusItem moves the focus to the item wherever it lives on the board.
func (m *Model) focusItem(id int) bool {
	for ci, col := range m.board.Columns {
		if idx := col.IndexOf(id); idx >= 0 {
			m.focusedColumn = ci
			m.columnCardFocus[ci] = idx + 1
			return true
		}
	}
	return false
}
