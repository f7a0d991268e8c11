package payoff

import "fmt"

// Choice is one participant's action in a round.
type Choice int

const (
	Cooperate Choice = iota
	Defect
)

// Choices lists both variants in canonical order.
var Choices = [2]Choice{Cooperate, Defect}

func (c Choice) String() string {
	switch c {
	case Cooperate:
		return "Cooperate"
	case Defect:
		return "Defect"
	default:
		return fmt.Sprintf("Choice(%d)", int(c))
	}
}

// Valid reports whether c is one of the two variants.
func (c Choice) Valid() bool {
	return c == Cooperate || c == Defect
}

// Opposite returns the other variant.
func (c Choice) Opposite() Choice {
	if c == Cooperate {
		return Defect
	}
	return Cooperate
}

// NumberPair is the pair of scores awarded to (self, other) for one outcome.
type NumberPair struct {
	Own   int `yaml:"own" json:"own"`
	Other int `yaml:"other" json:"other"`
}

// Pair is shorthand for NumberPair{Own: own, Other: other}.
func Pair(own, other int) NumberPair {
	return NumberPair{Own: own, Other: other}
}

func (p NumberPair) String() string {
	return fmt.Sprintf("(%d, %d)", p.Own, p.Other)
}

// Swap returns the pair as seen by the other participant.
func (p NumberPair) Swap() NumberPair {
	return NumberPair{Own: p.Other, Other: p.Own}
}

func (p NumberPair) within(low, high int) bool {
	return p.Own >= low && p.Own <= high && p.Other >= low && p.Other <= high
}
