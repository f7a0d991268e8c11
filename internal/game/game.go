package game

import (
	"context"

	"dilemma-tactix/internal/events"
	"dilemma-tactix/internal/payoff"
	"dilemma-tactix/internal/player"

	"github.com/sirupsen/logrus"
)

// Match represents the state and logic of a single iterated game between two players.
type Match struct {
	ID           string
	Grid         *payoff.Grid
	PlayerA      player.Player
	PlayerB      player.Player
	EventManager *events.Manager
	rounds       int
	round        int
	historyA     []player.Round
	historyB     []player.Round
	scoreA       int
	scoreB       int
	log          *logrus.Logger
}

// Result summarizes a finished (or interrupted) match.
type Result struct {
	MatchID string
	Rounds  int
	ScoreA  int
	ScoreB  int
	Winner  string // Empty on a draw
	History []player.Round
}

// playRound resolves a single round and updates both histories. A round
// whose choices were interrupted by ctx is discarded.
func (m *Match) playRound(ctx context.Context) (events.RoundPlayedEvent, error) {
	choiceA := m.PlayerA.Choose(m.round+1, m.historyA)
	choiceB := m.PlayerB.Choose(m.round+1, m.historyB)
	if err := ctx.Err(); err != nil {
		return events.RoundPlayedEvent{}, err
	}
	m.round++

	pair := m.Grid.PayoffFor(choiceA, choiceB)
	m.scoreA += pair.Own
	m.scoreB += pair.Other

	m.historyA = append(m.historyA, player.Round{Mine: choiceA, Theirs: choiceB, Pair: pair})
	m.historyB = append(m.historyB, player.Round{Mine: choiceB, Theirs: choiceA, Pair: pair.Swap()})

	m.log.WithField("match", m.ID).Debugf("Round %d: %s/%s -> %s", m.round, choiceA, choiceB, pair)
	return events.RoundPlayedEvent{
		MatchID: m.ID,
		Round:   m.round,
		PlayerA: m.PlayerA.Name(),
		PlayerB: m.PlayerB.Name(),
		ChoiceA: choiceA,
		ChoiceB: choiceB,
		Pair:    pair,
		TotalA:  m.scoreA,
		TotalB:  m.scoreB,
	}, nil
}

// Run executes the match loop until every round is played or ctx is done.
// An interrupted match still reports the rounds played so far.
func (m *Match) Run(ctx context.Context) (Result, error) {
	for m.round < m.rounds {
		if err := ctx.Err(); err != nil {
			return m.result(), err
		}
		m.EventManager.Publish(events.RoundStartEvent{MatchID: m.ID, Round: m.round + 1})
		played, err := m.playRound(ctx)
		if err != nil {
			return m.result(), err
		}
		m.EventManager.Publish(played)
	}

	res := m.result()
	m.EventManager.Publish(events.MatchOverEvent{
		MatchID: m.ID,
		Rounds:  res.Rounds,
		ScoreA:  res.ScoreA,
		ScoreB:  res.ScoreB,
		Winner:  res.Winner,
	})
	return res, nil
}

func (m *Match) result() Result {
	res := Result{
		MatchID: m.ID,
		Rounds:  m.round,
		ScoreA:  m.scoreA,
		ScoreB:  m.scoreB,
		History: m.historyA,
	}
	switch {
	case m.scoreA > m.scoreB:
		res.Winner = m.PlayerA.Name()
	case m.scoreB > m.scoreA:
		res.Winner = m.PlayerB.Name()
	}
	return res
}
