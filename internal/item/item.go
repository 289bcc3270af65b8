package item

// Item is a single unit of draggable content. IDs are unique across the
// whole board, not just within a column.
type Item struct {
	ID   int
	Text string
}

func New(id int, text string) Item {
	return Item{ID: id, Text: text}
}
