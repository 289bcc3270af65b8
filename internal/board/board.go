package board

import (
	"fmt"
	"strconv"
	"strings"

	"taskboard/internal/column"
	"taskboard/internal/item"
)

type Board struct {
	Columns []column.Column
}

func New(columns ...column.Column) Board {
	return Board{Columns: columns}
}

// Default returns the three-column board with its seed items.
func Default() Board {
	return New(
		column.New(column.AllTasks, "All Tasks", "No items",
			item.New(1, "Fix workshop"),
			item.New(2, "Meeting at 9AM"),
		),
		column.New(column.InProgress, "In progress", "Drag items here",
			item.New(3, "Visit the zoo"),
			item.New(4, "Wash Clothes"),
		),
		column.New(column.Paused, "Paused", "Drag items here"),
	)
}

func (b Board) index(key column.Key) int {
	for i, c := range b.Columns {
		if c.Key == key {
			return i
		}
	}
	return -1
}

func (b Board) Column(key column.Key) (column.Column, bool) {
	i := b.index(key)
	if i < 0 {
		return column.Column{}, false
	}
	return b.Columns[i], true
}

func (b Board) Keys() []column.Key {
	keys := make([]column.Key, len(b.Columns))
	for i, c := range b.Columns {
		keys[i] = c.Key
	}
	return keys
}

// Locate reports which column currently holds the item.
func (b Board) Locate(id int) (column.Key, bool) {
	for _, c := range b.Columns {
		if c.Contains(id) {
			return c.Key, true
		}
	}
	return "", false
}

// ResolveKey maps user input to a column key. It accepts the key itself,
// the column title (case-insensitive) or the 1-based column position.
func (b Board) ResolveKey(s string) (column.Key, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", false
	}
	if n, err := strconv.Atoi(s); err == nil {
		if n >= 1 && n <= len(b.Columns) {
			return b.Columns[n-1].Key, true
		}
		return "", false
	}
	for _, c := range b.Columns {
		if string(c.Key) == s || strings.EqualFold(c.Title, s) {
			return c.Key, true
		}
	}
	return "", false
}

func (b Board) ItemCount() int {
	n := 0
	for _, c := range b.Columns {
		n += c.ItemCount()
	}
	return n
}

func (b Board) DeepCopy() Board {
	cols := make([]column.Column, len(b.Columns))
	for i, c := range b.Columns {
		cols[i] = c.Clone()
	}
	return Board{Columns: cols}
}

// Validate checks that column keys are distinct and every item id appears
// exactly once on the board.
func (b Board) Validate() error {
	keys := make(map[column.Key]struct{}, len(b.Columns))
	seen := make(map[int]column.Key, b.ItemCount())
	for _, c := range b.Columns {
		if _, dup := keys[c.Key]; dup {
			return fmt.Errorf("duplicate column key %q", c.Key)
		}
		keys[c.Key] = struct{}{}
		for _, it := range c.Items {
			if prev, dup := seen[it.ID]; dup {
				return fmt.Errorf("item %d present in both %q and %q", it.ID, prev, c.Key)
			}
			seen[it.ID] = c.Key
		}
	}
	return nil
}
