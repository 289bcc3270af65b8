package board

import (
	"errors"

	"taskboard/internal/column"
	"taskboard/internal/item"
)

var (
	ErrUnknownColumn = errors.New("unknown column")
	ErrItemNotFound  = errors.New("item not in source column")
)

// DropEvent asks the board to move an item from Source to Dest.
type DropEvent struct {
	ItemID int
	Source column.Key
	Dest   column.Key
}

// Relocate returns a board with the item moved to the tail of the
// destination column. The receiver is never modified. A drop onto the
// source column is a no-op; so is any event naming an unknown column or an
// item the source column does not hold, in which case the unchanged board
// is returned together with the reason.
func (b Board) Relocate(ev DropEvent) (Board, error) {
	if ev.Source == ev.Dest {
		return b, nil
	}

	src, dst := b.index(ev.Source), b.index(ev.Dest)
	if src < 0 || dst < 0 {
		return b, ErrUnknownColumn
	}

	pos := b.Columns[src].IndexOf(ev.ItemID)
	if pos < 0 {
		return b, ErrItemNotFound
	}

	next := b.DeepCopy()
	moved := next.Columns[src].Items[pos]

	kept := make([]item.Item, 0, len(next.Columns[src].Items)-1)
	for _, it := range next.Columns[src].Items {
		if it.ID != ev.ItemID {
			kept = append(kept, it)
		}
	}
	next.Columns[src].Items = kept
	next.Columns[dst].Items = append(next.Columns[dst].Items, moved)

	return next, nil
}
