package ai

import (
	"fmt"
	"strings"

	"dilemma-tactix/internal/payoff"
)

// Chooser defines an interface for selecting an action each round.
// This allows us to swap out random and fixed selection strategies.
type Chooser interface {
	Choose() payoff.Choice
}

// --- Implementations ---

// RandomChooser implements the Chooser interface by drawing uniformly from a source.
type RandomChooser struct {
	src payoff.Source
}

// NewRandomChooser creates a new random chooser.
func NewRandomChooser(src payoff.Source) *RandomChooser {
	return &RandomChooser{src: src}
}

func (r *RandomChooser) Choose() payoff.Choice {
	v, err := r.src.NextInRange(0, 1)
	if err != nil {
		return payoff.Cooperate
	}
	return payoff.Choices[v]
}

// FixedChooser implements the Chooser interface by always returning the same
// choice. This is used for predictable testing.
type FixedChooser struct {
	Choice payoff.Choice
}

func (f *FixedChooser) Choose() payoff.Choice {
	return f.Choice
}

// Kind names a chooser on the command line.
type Kind string

const (
	KindCooperate Kind = "cooperate"
	KindDefect    Kind = "defect"
	KindRandom    Kind = "random"
)

// Kinds lists every accepted Kind.
var Kinds = []Kind{KindCooperate, KindDefect, KindRandom}

// ParseKind accepts a Kind name case-insensitively.
func ParseKind(s string) (Kind, error) {
	k := Kind(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Kinds {
		if k == known {
			return k, nil
		}
	}
	return "", fmt.Errorf("unknown opponent %q (want one of %v)", s, Kinds)
}

// NewChooser builds the chooser for k. Random choosers draw from src.
func (k Kind) NewChooser(src payoff.Source) Chooser {
	switch k {
	case KindDefect:
		return &FixedChooser{Choice: payoff.Defect}
	case KindRandom:
		return NewRandomChooser(src)
	default:
		return &FixedChooser{Choice: payoff.Cooperate}
	}
}
