package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"dilemma-tactix/internal/payoff"

	"gopkg.in/yaml.v3"
)

// DefaultRounds is used when a config does not say how many rounds to play.
const DefaultRounds = 10

// Bounds is the inclusive payoff range.
type Bounds struct {
	Low  int `yaml:"low" json:"low"`
	High int `yaml:"high" json:"high"`
}

// PayoffOverride pins one outcome cell.
type PayoffOverride struct {
	Mine   string `yaml:"mine" json:"mine"`
	Theirs string `yaml:"theirs" json:"theirs"`
	Own    int    `yaml:"own" json:"own"`
	Other  int    `yaml:"other" json:"other"`
}

// GameConfig holds the settings for a game as read from disk.
type GameConfig struct {
	Bounds      *Bounds             `yaml:"bounds" json:"bounds"`
	Names       *payoff.ChoiceNames `yaml:"names" json:"names"`
	RandomNames bool                `yaml:"random_names" json:"random_names"`
	Seed        *int64              `yaml:"seed" json:"seed"`
	Payoffs     []PayoffOverride    `yaml:"payoffs" json:"payoffs"`
	Rounds      int                 `yaml:"rounds" json:"rounds"`
}

// Default returns the classic textbook game.
func Default() *GameConfig {
	return &GameConfig{
		Bounds: &Bounds{Low: 0, High: 5},
		Names:  &payoff.ChoiceNames{Cooperate: "Cooperate", Defect: "Defect"},
		Payoffs: []PayoffOverride{
			{Mine: "cooperate", Theirs: "cooperate", Own: 4, Other: 4},
			{Mine: "cooperate", Theirs: "defect", Own: 0, Other: 5},
			{Mine: "defect", Theirs: "cooperate", Own: 5, Other: 0},
			{Mine: "defect", Theirs: "defect", Own: 3, Other: 3},
		},
		Rounds: DefaultRounds,
	}
}

// Load reads a game configuration. Files ending in .json are parsed as JSON,
// anything else as YAML.
func Load(path string) (*GameConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read game config: %w", err)
	}

	var cfg GameConfig
	if strings.ToLower(filepath.Ext(path)) == ".json" {
		if err := json.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", filepath.Base(path), err)
		}
	} else {
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", filepath.Base(path), err)
		}
	}

	for i, p := range cfg.Payoffs {
		if _, err := ParseChoice(p.Mine); err != nil {
			return nil, fmt.Errorf("payoffs[%d].mine: %w", i, err)
		}
		if _, err := ParseChoice(p.Theirs); err != nil {
			return nil, fmt.Errorf("payoffs[%d].theirs: %w", i, err)
		}
	}
	if cfg.Rounds == 0 {
		cfg.Rounds = DefaultRounds
	}
	return &cfg, nil
}

// ParseChoice maps a config tag ("cooperate"/"c", "defect"/"d") to a Choice.
func ParseChoice(tag string) (payoff.Choice, error) {
	switch strings.ToLower(strings.TrimSpace(tag)) {
	case "cooperate", "c":
		return payoff.Cooperate, nil
	case "defect", "d":
		return payoff.Defect, nil
	default:
		return payoff.Cooperate, fmt.Errorf("%q: %w", tag, payoff.ErrUnknownChoice)
	}
}

// Builder maps the configuration onto a payoff builder. Validation is left
// to the builder.
func (c *GameConfig) Builder() *payoff.Builder {
	b := payoff.NewBuilder()
	if c.Bounds != nil {
		b.WithBounds(c.Bounds.Low, c.Bounds.High)
	}
	switch {
	case c.Names != nil:
		b.WithChoiceNames(c.Names.Cooperate, c.Names.Defect)
	case c.RandomNames:
		b.WithRandomChoiceNames()
	}
	if c.Seed != nil {
		b.WithRandomness(payoff.Deterministic(*c.Seed))
	}
	for _, p := range c.Payoffs {
		mine, _ := ParseChoice(p.Mine)
		theirs, _ := ParseChoice(p.Theirs)
		b.WithPayoff(mine, theirs, payoff.Pair(p.Own, p.Other))
	}
	return b
}

// DeepCopy returns a copy that shares no pointers or slices with c.
func (c *GameConfig) DeepCopy() *GameConfig {
	n := *c
	if c.Bounds != nil {
		b := *c.Bounds
		n.Bounds = &b
	}
	if c.Names != nil {
		names := *c.Names
		n.Names = &names
	}
	if c.Seed != nil {
		s := *c.Seed
		n.Seed = &s
	}
	n.Payoffs = make([]PayoffOverride, len(c.Payoffs))
	copy(n.Payoffs, c.Payoffs)
	return &n
}
