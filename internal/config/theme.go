package config

// Theme holds the terminal colors used by the board. Values are anything
// lipgloss.Color accepts: ANSI numbers ("205") or hex ("#ff5f87").
type Theme struct {
	Accent      string `yaml:"accent"`
	Border      string `yaml:"border"`
	DropTarget  string `yaml:"drop_target"`
	Dragging    string `yaml:"dragging"`
	Placeholder string `yaml:"placeholder"`
	Match       string `yaml:"match"`
	Status      string `yaml:"status"`
}

func DefaultTheme() Theme {
	return Theme{
		Accent:      "205",
		Border:      "240",
		DropTarget:  "42",
		Dragging:    "244",
		Placeholder: "245",
		Match:       "214",
		Status:      "62",
	}
}

// MergeFrom overrides fields with the non-empty values of other.
func (t *Theme) MergeFrom(other Theme) {
	merge := func(dst *string, src string) {
		if src != "" {
			*dst = src
		}
	}
	merge(&t.Accent, other.Accent)
	merge(&t.Border, other.Border)
	merge(&t.DropTarget, other.DropTarget)
	merge(&t.Dragging, other.Dragging)
	merge(&t.Placeholder, other.Placeholder)
	merge(&t.Match, other.Match)
	merge(&t.Status, other.Status)
}

func (t *Theme) applyDefaults() {
	merged := DefaultTheme()
	merged.MergeFrom(*t)
	*t = merged
}
