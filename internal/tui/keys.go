package tui

import (
	"github.com/charmbracelet/bubbles/key"

	"taskboard/internal/config"
)

type keyMap struct {
	PrevColumn key.Binding
	NextColumn key.Binding
	PrevItem   key.Binding
	NextItem   key.Binding

	PickUp        key.Binding
	Drop          key.Binding
	CancelDrag    key.Binding
	MoveItemLeft  key.Binding
	MoveItemRight key.Binding

	Search      key.Binding
	NextMatch   key.Binding
	PrevMatch   key.Binding
	FuzzyFind   key.Binding
	CommandLine key.Binding

	ShowHelp key.Binding
	Quit     key.Binding
}

// keysFor expands a configured key into every name bubbletea may report
// for it.
func keysFor(k string) []string {
	switch k {
	case " ", "space":
		return []string{" ", "space"}
	}
	return []string{k}
}

func helpName(k string) string {
	if k == " " {
		return "space"
	}
	return k
}

func newKeyMap(km config.KeyMappings) keyMap {
	return keyMap{
		PrevColumn: key.NewBinding(
			key.WithKeys(append(keysFor(km.PrevColumn), "left")...),
			key.WithHelp(helpName(km.PrevColumn)+"/←", "prev column"),
		),
		NextColumn: key.NewBinding(
			key.WithKeys(append(keysFor(km.NextColumn), "right")...),
			key.WithHelp(helpName(km.NextColumn)+"/→", "next column"),
		),
		PrevItem: key.NewBinding(
			key.WithKeys(append(keysFor(km.PrevItem), "up")...),
			key.WithHelp(helpName(km.PrevItem)+"/↑", "up"),
		),
		NextItem: key.NewBinding(
			key.WithKeys(append(keysFor(km.NextItem), "down")...),
			key.WithHelp(helpName(km.NextItem)+"/↓", "down"),
		),
		PickUp: key.NewBinding(
			key.WithKeys(keysFor(km.PickUp)...),
			key.WithHelp(helpName(km.PickUp), "pick up"),
		),
		Drop: key.NewBinding(
			key.WithKeys(append(keysFor(km.Drop), keysFor(km.PickUp)...)...),
			key.WithHelp(helpName(km.PickUp)+"/"+helpName(km.Drop), "drop"),
		),
		CancelDrag: key.NewBinding(
			key.WithKeys(keysFor(km.CancelDrag)...),
			key.WithHelp(helpName(km.CancelDrag), "cancel"),
		),
		MoveItemLeft: key.NewBinding(
			key.WithKeys(keysFor(km.MoveItemLeft)...),
			key.WithHelp(helpName(km.MoveItemLeft), "move left"),
		),
		MoveItemRight: key.NewBinding(
			key.WithKeys(keysFor(km.MoveItemRight)...),
			key.WithHelp(helpName(km.MoveItemRight), "move right"),
		),
		Search: key.NewBinding(
			key.WithKeys(keysFor(km.Search)...),
			key.WithHelp(helpName(km.Search), "search"),
		),
		NextMatch: key.NewBinding(
			key.WithKeys(keysFor(km.NextMatch)...),
			key.WithHelp(helpName(km.NextMatch), "next match"),
		),
		PrevMatch: key.NewBinding(
			key.WithKeys(keysFor(km.PrevMatch)...),
			key.WithHelp(helpName(km.PrevMatch), "prev match"),
		),
		FuzzyFind: key.NewBinding(
			key.WithKeys(keysFor(km.FuzzyFind)...),
			key.WithHelp(helpName(km.FuzzyFind), "find"),
		),
		CommandLine: key.NewBinding(
			key.WithKeys(keysFor(km.CommandLine)...),
			key.WithHelp(helpName(km.CommandLine), "command"),
		),
		ShowHelp: key.NewBinding(
			key.WithKeys(keysFor(km.ShowHelp)...),
			key.WithHelp(helpName(km.ShowHelp), "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys(append(keysFor(km.Quit), "ctrl+c")...),
			key.WithHelp(helpName(km.Quit), "quit"),
		),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.PickUp, k.MoveItemLeft, k.MoveItemRight, k.Search, k.FuzzyFind, k.ShowHelp, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.PrevColumn, k.NextColumn, k.PrevItem, k.NextItem},
		{k.PickUp, k.Drop, k.CancelDrag, k.MoveItemLeft, k.MoveItemRight},
		{k.Search, k.NextMatch, k.PrevMatch, k.FuzzyFind, k.CommandLine},
		{k.ShowHelp, k.Quit},
	}
}

// dragKeyMap is the help shown while an item is picked up.
type dragKeyMap struct {
	keyMap
}

func (k dragKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.PrevColumn, k.NextColumn, k.Drop, k.CancelDrag}
}

func (k dragKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}
