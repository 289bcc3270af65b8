package config

// KeyMappings defines all configurable key bindings
type KeyMappings struct {
	// Navigation
	PrevColumn string `yaml:"prev_column"`
	NextColumn string `yaml:"next_column"`
	PrevItem   string `yaml:"prev_item"`
	NextItem   string `yaml:"next_item"`

	// Dragging
	PickUp        string `yaml:"pick_up"`
	Drop          string `yaml:"drop"`
	CancelDrag    string `yaml:"cancel_drag"`
	MoveItemLeft  string `yaml:"move_item_left"`
	MoveItemRight string `yaml:"move_item_right"`

	// Finding
	Search      string `yaml:"search"`
	NextMatch   string `yaml:"next_match"`
	PrevMatch   string `yaml:"prev_match"`
	FuzzyFind   string `yaml:"fuzzy_find"`
	CommandLine string `yaml:"command_line"`

	// Other
	ShowHelp string `yaml:"show_help"`
	Quit     string `yaml:"quit"`
}

// DefaultKeyMappings returns the default key mappings
func DefaultKeyMappings() KeyMappings {
	return KeyMappings{
		PrevColumn: "h",
		NextColumn: "l",
		PrevItem:   "k",
		NextItem:   "j",

		PickUp:        " ",
		Drop:          "enter",
		CancelDrag:    "esc",
		MoveItemLeft:  "H",
		MoveItemRight: "L",

		Search:      "/",
		NextMatch:   "n",
		PrevMatch:   "N",
		FuzzyFind:   "ctrl+p",
		CommandLine: ":",

		ShowHelp: "?",
		Quit:     "q",
	}
}

// applyDefaults fills in missing key mappings with defaults
func (k *KeyMappings) applyDefaults() {
	defaults := DefaultKeyMappings()

	fill := func(v *string, def string) {
		if *v == "" {
			*v = def
		}
	}

	fill(&k.PrevColumn, defaults.PrevColumn)
	fill(&k.NextColumn, defaults.NextColumn)
	fill(&k.PrevItem, defaults.PrevItem)
	fill(&k.NextItem, defaults.NextItem)
	fill(&k.PickUp, defaults.PickUp)
	fill(&k.Drop, defaults.Drop)
	fill(&k.CancelDrag, defaults.CancelDrag)
	fill(&k.MoveItemLeft, defaults.MoveItemLeft)
	fill(&k.MoveItemRight, defaults.MoveItemRight)
	fill(&k.Search, defaults.Search)
	fill(&k.NextMatch, defaults.NextMatch)
	fill(&k.PrevMatch, defaults.PrevMatch)
	fill(&k.FuzzyFind, defaults.FuzzyFind)
	fill(&k.CommandLine, defaults.CommandLine)
	fill(&k.ShowHelp, defaults.ShowHelp)
	fill(&k.Quit, defaults.Quit)
}
