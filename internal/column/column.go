package column

import "taskboard/internal/item"

// Key identifies one of the board's fixed columns.
type Key string

const (
	AllTasks   Key = "column1"
	InProgress Key = "column2"
	Paused     Key = "column3"
)

type Column struct {
	Key   Key
	Title string
	// Placeholder is shown instead of the card list when the column is empty.
	Placeholder string
	Items       []item.Item
}

func New(key Key, title, placeholder string, items ...item.Item) Column {
	return Column{
		Key:         key,
		Title:       title,
		Placeholder: placeholder,
		Items:       items,
	}
}

func (c Column) ItemCount() int {
	return len(c.Items)
}

func (c Column) IsEmpty() bool {
	return len(c.Items) == 0
}

// IndexOf returns the position of the item with the given id, or -1.
func (c Column) IndexOf(id int) int {
	for i, it := range c.Items {
		if it.ID == id {
			return i
		}
	}
	return -1
}

func (c Column) Contains(id int) bool {
	return c.IndexOf(id) >= 0
}

// Clone returns a copy whose item slice does not share storage with c.
func (c Column) Clone() Column {
	if c.Items == nil {
		return c
	}
	items := make([]item.Item, len(c.Items))
	copy(items, c.Items)
	c.Items = items
	return c
}
