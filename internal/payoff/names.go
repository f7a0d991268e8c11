package payoff

import (
	"fmt"
	"strings"
)

// DefaultChoiceNames is used when no labels are configured.
var DefaultChoiceNames = ChoiceNames{Cooperate: "Cooperate", Defect: "Defect"}

// ChoiceNames holds the display labels for the two choices. Labels never
// affect scoring.
type ChoiceNames struct {
	Cooperate string `yaml:"cooperate" json:"cooperate"`
	Defect    string `yaml:"defect" json:"defect"`
}

// Validate checks that both labels are non-blank and distinguishable.
func (n ChoiceNames) Validate() error {
	c, d := strings.TrimSpace(n.Cooperate), strings.TrimSpace(n.Defect)
	if c == "" {
		return fmt.Errorf("cooperate label: %w", ErrEmptyChoiceName)
	}
	if d == "" {
		return fmt.Errorf("defect label: %w", ErrEmptyChoiceName)
	}
	if strings.EqualFold(c, d) {
		return fmt.Errorf("%q and %q: %w", c, d, ErrDuplicateChoiceName)
	}
	return nil
}

// Name returns the label for c.
func (n ChoiceNames) Name(c Choice) string {
	if c == Defect {
		return n.Defect
	}
	return n.Cooperate
}

// Lookup resolves user input back to a Choice. It accepts the full label,
// case-insensitively, then the label's first letter when the two labels start
// differently, then "A"/"B" for the first/second choice. A first letter takes
// precedence over the A/B shortcut it collides with.
func (n ChoiceNames) Lookup(input string) (Choice, bool) {
	in := strings.TrimSpace(input)
	if in == "" {
		return Cooperate, false
	}
	switch {
	case strings.EqualFold(in, n.Cooperate):
		return Cooperate, true
	case strings.EqualFold(in, n.Defect):
		return Defect, true
	}

	if len([]rune(in)) == 1 {
		ci, di := initial(n.Cooperate), initial(n.Defect)
		if ci != di {
			switch initial(in) {
			case ci:
				return Cooperate, true
			case di:
				return Defect, true
			}
		}
	}

	switch {
	case strings.EqualFold(in, "a"):
		return Cooperate, true
	case strings.EqualFold(in, "b"):
		return Defect, true
	}
	return Cooperate, false
}

func initial(s string) string {
	for _, r := range strings.ToLower(strings.TrimSpace(s)) {
		return string(r)
	}
	return ""
}

// NameCatalogue is the set of alternative label pairs WithRandomChoiceNames
// picks from.
var NameCatalogue = []ChoiceNames{
	{"cooperate", "defect"},
	{"swerve", "straight"},
	{"macro", "micro"},
	{"fight", "back_down"},
	{"bet", "fold"},
	{"raise_price", "lower_price"},
	{"opera", "football"},
	{"go", "stay"},
	{"heads", "tails"},
	{"particle", "wave"},
	{"discrete", "continuous"},
	{"peace", "war"},
	{"search", "evaluate"},
	{"lead", "follow"},
	{"accept", "reject"},
	{"accept", "deny"},
	{"attack", "decay"},
}

// RandomChoiceNames draws one pair from NameCatalogue.
func RandomChoiceNames(src Source) (ChoiceNames, error) {
	i, err := src.NextInRange(0, len(NameCatalogue)-1)
	if err != nil {
		return ChoiceNames{}, err
	}
	return NameCatalogue[i], nil
}
