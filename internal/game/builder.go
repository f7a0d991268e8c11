package game

import (
	"errors"
	"fmt"
	"math"

	"dilemma-tactix/internal/ai"
	"dilemma-tactix/internal/events"
	"dilemma-tactix/internal/payoff"
	"dilemma-tactix/internal/player"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// MatchBuilder provides a step-by-step API for constructing a Match object.
type MatchBuilder struct {
	grid         *payoff.Grid
	eventManager *events.Manager
	log          *logrus.Logger
	src          payoff.Source
	players      []player.Player
	rounds       int
	err          error
}

// NewBuilder creates a new MatchBuilder with its required dependencies.
func NewBuilder(grid *payoff.Grid, logger *logrus.Logger, src payoff.Source) *MatchBuilder {
	return &MatchBuilder{
		grid:         grid,
		log:          logger,
		src:          src,
		eventManager: events.NewManager(),
		rounds:       1,
	}
}

// EventManager is a public getter for the unexported field.
func (b *MatchBuilder) EventManager() *events.Manager {
	return b.eventManager
}

// WithPlayer seats p. The first player seated is A, the second is B.
func (b *MatchBuilder) WithPlayer(p player.Player) *MatchBuilder {
	b.players = append(b.players, p)
	return b
}

// WithBot seats a computer player of the given kind. Random bots get their
// own source derived from the builder's.
func (b *MatchBuilder) WithBot(name string, kind ai.Kind) *MatchBuilder {
	var src payoff.Source
	if kind == ai.KindRandom {
		seed, err := b.src.NextInRange(0, math.MaxInt)
		if err != nil {
			b.err = err
			return b
		}
		src = payoff.NewDeterministicSource(int64(seed))
	}
	return b.WithPlayer(ai.NewBot(name, b.log, kind.NewChooser(src)))
}

func (b *MatchBuilder) WithRounds(n int) *MatchBuilder {
	b.rounds = n
	return b
}

// Build constructs the Match object after all options have been configured.
func (b *MatchBuilder) Build() (*Match, error) {
	if b.err != nil {
		return nil, fmt.Errorf("failed to seat player: %w", b.err)
	}
	if b.grid == nil {
		return nil, errors.New("no payoff grid")
	}
	if len(b.players) != 2 {
		return nil, fmt.Errorf("a match needs exactly 2 players, got %d", len(b.players))
	}
	for _, p := range b.players {
		if p == nil {
			return nil, errors.New("nil player")
		}
	}
	if b.players[0].Name() == b.players[1].Name() {
		return nil, fmt.Errorf("players must have distinct names, both are %q", b.players[0].Name())
	}
	if b.rounds < 1 {
		return nil, fmt.Errorf("invalid number of rounds: %d", b.rounds)
	}

	m := &Match{
		ID:           uuid.NewString(),
		Grid:         b.grid,
		PlayerA:      b.players[0],
		PlayerB:      b.players[1],
		EventManager: b.eventManager,
		rounds:       b.rounds,
		log:          b.log,
	}
	b.eventManager.Subscribe(m.PlayerA)
	b.eventManager.Subscribe(m.PlayerB)

	b.eventManager.Publish(events.GridReadyEvent{
		MatchID: m.ID,
		Grid:    m.Grid,
		PlayerA: m.PlayerA.Name(),
		PlayerB: m.PlayerB.Name(),
		Rounds:  m.rounds,
	})
	return m, nil
}
