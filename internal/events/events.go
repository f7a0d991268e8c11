package events

import "dilemma-tactix/internal/payoff"

// Event is a marker interface for all event types.
type Event interface{}

// Listener defines an interface for any component that wants to react to events.
type Listener interface {
	HandleEvent(e Event)
}

// Manager (or Event Bus) manages listeners and dispatches events.
type Manager struct {
	listeners []Listener
}

func NewManager() *Manager {
	return &Manager{}
}
func (em *Manager) Subscribe(l Listener) {
	em.listeners = append(em.listeners, l)
}
func (em *Manager) Publish(e Event) {
	for _, l := range em.listeners {
		l.HandleEvent(e)
	}
}

// --- Event Types for Rendering ---

// GridReadyEvent is published once a match is built, before the first round.
type GridReadyEvent struct {
	MatchID string
	Grid    *payoff.Grid
	PlayerA string
	PlayerB string
	Rounds  int
}

type RoundStartEvent struct {
	MatchID string
	Round   int
}

// RoundPlayedEvent carries a resolved round from player A's view.
type RoundPlayedEvent struct {
	MatchID string
	Round   int
	PlayerA string
	PlayerB string
	ChoiceA payoff.Choice
	ChoiceB payoff.Choice
	Pair    payoff.NumberPair
	TotalA  int
	TotalB  int
}

type MatchOverEvent struct {
	MatchID string
	Rounds  int
	ScoreA  int
	ScoreB  int
	Winner  string // Empty on a draw
}
