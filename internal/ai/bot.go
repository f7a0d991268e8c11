package ai

import (
	"dilemma-tactix/internal/events"
	"dilemma-tactix/internal/payoff"
	"dilemma-tactix/internal/player"

	"github.com/sirupsen/logrus"
)

// Bot implements the Player interface around a Chooser.
type Bot struct {
	name    string
	chooser Chooser
	log     logrus.FieldLogger
	score   int
}

// NewBot is the constructor for the AI player. It injects dependencies.
func NewBot(name string, logger logrus.FieldLogger, chooser Chooser) *Bot {
	return &Bot{
		name:    name,
		chooser: chooser,
		log:     logger.WithField("player", name),
	}
}

func (b *Bot) Name() string  { return b.name }
func (b *Bot) IsHuman() bool { return false }

// Score is the running total the bot has observed through match events.
func (b *Bot) Score() int { return b.score }

func (b *Bot) Choose(round int, history []player.Round) payoff.Choice {
	c := b.chooser.Choose()
	b.log.Debugf("Round %d: choosing %s", round, c)
	return c
}

func (b *Bot) HandleEvent(e events.Event) {
	switch event := e.(type) {
	case events.GridReadyEvent:
		b.score = 0
	case events.RoundPlayedEvent:
		switch b.name {
		case event.PlayerA:
			b.score = event.TotalA
		case event.PlayerB:
			b.score = event.TotalB
		}
	}
}
