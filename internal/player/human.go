package player

import (
	"dilemma-tactix/internal/events"
	"dilemma-tactix/internal/payoff"
)

// Prompter asks a person for their action. The CLI supplies one backed by a
// line editor.
type Prompter interface {
	PromptChoice(playerName string, round int, names payoff.ChoiceNames) payoff.Choice
}

// HumanPlayer represents a player controlled by a person.
type HumanPlayer struct {
	name     string
	names    payoff.ChoiceNames
	prompter Prompter
}

// NewHumanPlayer builds a human player that reads choices from prompter.
func NewHumanPlayer(name string, names payoff.ChoiceNames, prompter Prompter) *HumanPlayer {
	return &HumanPlayer{
		name:     name,
		names:    names,
		prompter: prompter,
	}
}

func (h *HumanPlayer) Name() string  { return h.name }
func (h *HumanPlayer) IsHuman() bool { return true }

func (h *HumanPlayer) Choose(round int, history []Round) payoff.Choice {
	return h.prompter.PromptChoice(h.name, round, h.names)
}

// HandleEvent is a no-op; the CLI renderer shows results to the person.
func (h *HumanPlayer) HandleEvent(e events.Event) {}
