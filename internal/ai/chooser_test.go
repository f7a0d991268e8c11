package ai

import (
	"io"
	"testing"

	"dilemma-tactix/internal/events"
	"dilemma-tactix/internal/payoff"

	"github.com/sirupsen/logrus"
)

func TestRandomChooser(t *testing.T) {
	// GIVEN two random choosers on identically seeded sources
	a := NewRandomChooser(payoff.NewDeterministicSource(1))
	b := NewRandomChooser(payoff.NewDeterministicSource(1))

	// WHEN each makes a long run of choices
	seen := map[payoff.Choice]int{}
	for i := 0; i < 200; i++ {
		ca, cb := a.Choose(), b.Choose()
		if ca != cb {
			t.Fatalf("choice %d diverged: %s vs %s", i, ca, cb)
		}
		seen[ca]++
	}

	// THEN both variants show up
	if seen[payoff.Cooperate] == 0 || seen[payoff.Defect] == 0 {
		t.Errorf("expected both choices to appear, got %v", seen)
	}
}

func TestParseKind(t *testing.T) {
	t.Run("known kinds", func(t *testing.T) {
		for _, in := range []string{"cooperate", "DEFECT", " random "} {
			if _, err := ParseKind(in); err != nil {
				t.Errorf("ParseKind(%q) failed: %v", in, err)
			}
		}
	})

	t.Run("unknown kind", func(t *testing.T) {
		if _, err := ParseKind("tit-for-tat"); err == nil {
			t.Error("expected an error for an unknown kind")
		}
	})

	t.Run("fixed kinds ignore the source", func(t *testing.T) {
		if c := KindDefect.NewChooser(nil).Choose(); c != payoff.Defect {
			t.Errorf("expected Defect, got %s", c)
		}
		if c := KindCooperate.NewChooser(nil).Choose(); c != payoff.Cooperate {
			t.Errorf("expected Cooperate, got %s", c)
		}
	})
}

func TestBotTracksScore(t *testing.T) {
	// GIVEN a bot with a discarding logger
	log := logrus.New()
	log.SetOutput(io.Discard)
	bot := NewBot("B", log, &FixedChooser{Choice: payoff.Defect})

	// WHEN it sees a played round where it sits in seat B
	bot.HandleEvent(events.RoundPlayedEvent{PlayerA: "A", PlayerB: "B", TotalA: 1, TotalB: 7})

	// THEN it records seat B's total
	if bot.Score() != 7 {
		t.Errorf("expected score 7, got %d", bot.Score())
	}

	bot.HandleEvent(events.GridReadyEvent{})
	if bot.Score() != 0 {
		t.Errorf("expected score reset, got %d", bot.Score())
	}

	if c := bot.Choose(1, nil); c != payoff.Defect {
		t.Errorf("expected Defect, got %s", c)
	}
}
