package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"taskboard/internal/board"
	"taskboard/internal/column"
	"taskboard/internal/config"
	"taskboard/internal/dnd"
)

func center(r dnd.Rect) (int, int) {
	return r.X + r.W/2, r.Y + r.H/2
}

func cardAt(t *testing.T, lay layout, id int) (int, int) {
	t.Helper()
	for _, c := range lay.cards {
		if c.itemID == id {
			return center(c.rect)
		}
	}
	require.Failf(t, "card not drawn", "item %d", id)
	return 0, 0
}

func columnAt(t *testing.T, lay layout, key column.Key) (int, int) {
	t.Helper()
	for _, c := range lay.columns {
		if c.key == key {
			return center(c.rect)
		}
	}
	require.Failf(t, "column not drawn", "column %s", key)
	return 0, 0
}

func mouse(action tea.MouseAction, x, y int) tea.MouseMsg {
	return tea.MouseMsg{X: x, Y: y, Action: action, Button: tea.MouseButtonLeft}
}

func TestLayoutRegions(t *testing.T) {
	m := newTestModel(t, nil)
	lay := m.syncRegions()

	require.Len(t, lay.columns, 3)
	require.Len(t, lay.cards, 4)

	for i := 1; i < len(lay.columns); i++ {
		prev, cur := lay.columns[i-1].rect, lay.columns[i].rect
		assert.LessOrEqual(t, prev.X+prev.W, cur.X, "columns overlap")
	}

	for _, card := range lay.cards {
		var col dnd.Rect
		for _, c := range lay.columns {
			if c.key == card.column {
				col = c.rect
			}
		}
		x, y := center(card.rect)
		assert.True(t, col.Contains(x, y), "card %d outside its column", card.itemID)
	}
}

func TestMouseDragAndDrop(t *testing.T) {
	m := newTestModel(t, nil)
	lay := m.syncRegions()

	px, py := cardAt(t, lay, 1)
	tx, ty := columnAt(t, lay, column.Paused)

	send(m, mouse(tea.MouseActionPress, px, py))
	assert.False(t, m.dnd.Active(), "a press alone is not a drag")

	send(m, mouse(tea.MouseActionMotion, tx, ty))
	assert.True(t, m.dnd.IsDraggingItem(1))
	assert.True(t, m.dnd.IsOver(string(column.Paused)))

	cmd := send(m, mouse(tea.MouseActionRelease, tx, ty))
	assert.NotNil(t, cmd)
	assert.False(t, m.dnd.Active())

	assert.Equal(t, []int{2}, columnIDs(t, m, column.AllTasks))
	assert.Equal(t, []int{1}, columnIDs(t, m, column.Paused))
	assert.Equal(t, 2, m.focusedColumn)
}

func TestMouseDropAppendsToTail(t *testing.T) {
	m := newTestModel(t, nil)
	lay := m.syncRegions()

	px, py := cardAt(t, lay, 2)
	tx, ty := cardAt(t, lay, 3)

	send(m,
		mouse(tea.MouseActionPress, px, py),
		mouse(tea.MouseActionMotion, tx, ty),
		mouse(tea.MouseActionRelease, tx, ty),
	)

	assert.Equal(t, []int{1}, columnIDs(t, m, column.AllTasks))
	assert.Equal(t, []int{3, 4, 2}, columnIDs(t, m, column.InProgress))
}

func TestMouseSelfDrop(t *testing.T) {
	m := newTestModel(t, nil)
	lay := m.syncRegions()

	px, py := cardAt(t, lay, 3)
	tx, ty := cardAt(t, lay, 4)

	cmd := send(m,
		mouse(tea.MouseActionPress, px, py),
		mouse(tea.MouseActionMotion, tx, ty),
		mouse(tea.MouseActionRelease, tx, ty),
	)

	assert.Nil(t, cmd)
	assert.Equal(t, board.Default(), m.Board())
}

func TestMouseReleaseOutsideColumns(t *testing.T) {
	m := newTestModel(t, nil)
	lay := m.syncRegions()

	px, py := cardAt(t, lay, 1)

	cmd := send(m,
		mouse(tea.MouseActionPress, px, py),
		mouse(tea.MouseActionMotion, 500, 500),
		mouse(tea.MouseActionRelease, 500, 500),
	)

	assert.Nil(t, cmd)
	assert.False(t, m.dnd.Active())
	assert.Equal(t, board.Default(), m.Board())
}

func TestMouseClickFocuses(t *testing.T) {
	m := newTestModel(t, nil)
	lay := m.syncRegions()

	x, y := cardAt(t, lay, 4)
	send(m, mouse(tea.MouseActionPress, x, y), mouse(tea.MouseActionRelease, x, y))

	assert.Equal(t, 1, m.focusedColumn)
	assert.Equal(t, 2, m.currentFocusedCard())
	assert.Equal(t, board.Default(), m.Board())

	x, y = columnAt(t, lay, column.Paused)
	send(m, mouse(tea.MouseActionPress, x, y), mouse(tea.MouseActionRelease, x, y))
	assert.Equal(t, 2, m.focusedColumn)
}

func TestMouseDisabled(t *testing.T) {
	cfg := config.Default()
	cfg.DisableMouse = true
	m := newTestModel(t, cfg)
	lay := m.syncRegions()

	px, py := cardAt(t, lay, 1)
	tx, ty := columnAt(t, lay, column.Paused)

	send(m,
		mouse(tea.MouseActionPress, px, py),
		mouse(tea.MouseActionMotion, tx, ty),
		mouse(tea.MouseActionRelease, tx, ty),
	)

	assert.False(t, m.dnd.Active())
	assert.Equal(t, board.Default(), m.Board())
}

func TestMouseIgnoredDuringKeyboardDrag(t *testing.T) {
	m := newTestModel(t, nil)
	lay := m.syncRegions()
	px, py := cardAt(t, lay, 3)

	send(m, spaceKey, mouse(tea.MouseActionPress, px, py))

	assert.Equal(t, dragMode, m.mode)
	assert.True(t, m.dnd.IsDraggingItem(1))
}

func TestModeSwitchEndsPointerDrag(t *testing.T) {
	tests := []struct {
		name  string
		enter tea.Msg
		leave tea.Msg
	}{
		{"command line", runes(":"), escKey},
		{"search", runes("/"), escKey},
		{"finder", tea.KeyMsg{Type: tea.KeyCtrlP}, fzfCancelledMsg{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := newTestModel(t, nil)
			lay := m.syncRegions()
			px, py := cardAt(t, lay, 1)
			tx, ty := columnAt(t, lay, column.Paused)

			send(m, mouse(tea.MouseActionPress, px, py), mouse(tea.MouseActionMotion, tx, ty))
			require.True(t, m.dnd.IsDraggingItem(1))

			send(m, tt.enter, mouse(tea.MouseActionRelease, tx, ty), tt.leave)

			assert.Equal(t, normalMode, m.mode)
			_, dragging := m.dnd.Dragging()
			assert.False(t, dragging)
			assert.NotContains(t, m.renderStatus(), "Dragging")
			assert.Equal(t, board.Default(), m.Board())
		})
	}
}
