package player

import (
	"dilemma-tactix/internal/events"
	"dilemma-tactix/internal/payoff"
)

// Round is one resolved round as seen by a single player.
type Round struct {
	Mine   payoff.Choice
	Theirs payoff.Choice
	Pair   payoff.NumberPair
}

// Player is the interface that all player types (human or AI) must implement.
// It also implements events.Listener to react to game events.
type Player interface {
	events.Listener // Embed the Listener interface

	Name() string
	IsHuman() bool
	// Choose picks this player's action for round (1-based). history holds
	// every earlier round from this player's perspective.
	Choose(round int, history []Round) payoff.Choice
}
