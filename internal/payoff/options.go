package payoff

import (
	"fmt"
	"io"
	"strings"

	"github.com/sirupsen/logrus"
)

// Cell is one outcome of the grid from the row player's view.
type Cell struct {
	Mine   Choice
	Theirs Choice
	Pair   NumberPair
}

// GameOptions is a validated, fully realized game configuration. It is
// created only by a Builder and never changes afterwards.
type GameOptions struct {
	low, high  int
	names      ChoiceNames
	randomness Randomness
	cells      [2][2]NumberPair
}

func (o *GameOptions) Low() int               { return o.low }
func (o *GameOptions) High() int              { return o.high }
func (o *GameOptions) Names() ChoiceNames     { return o.names }
func (o *GameOptions) Randomness() Randomness { return o.randomness }

func (o *GameOptions) Cell(mine, theirs Choice) NumberPair { return o.cells[mine][theirs] }

func (o *GameOptions) String() string {
	return fmt.Sprintf("low: %d, high: %d, cooperate: %s, defect: %s, randomness: %s",
		o.low, o.high, o.names.Cooperate, o.names.Defect, o.randomness)
}

// Builder accumulates game settings. Nothing is validated until Options or
// Build is called, so setters may be called in any order.
type Builder struct {
	low, high   *int
	names       *ChoiceNames
	randomNames bool
	randomness  Randomness
	overrides   map[[2]Choice]NumberPair
	log         logrus.FieldLogger
}

// NewBuilder returns an empty builder. Bounds must be set before building.
// The zero Builder is equally usable.
func NewBuilder() *Builder {
	return &Builder{
		overrides: make(map[[2]Choice]NumberPair),
	}
}

// DefaultBuilder is preset with bounds [1, 10] and the default labels.
func DefaultBuilder() *Builder {
	return NewBuilder().WithBounds(1, 10)
}

// ClassicBuilder is preset with the textbook payoffs T=5, R=4, P=3, S=0.
func ClassicBuilder() *Builder {
	return NewBuilder().
		WithBounds(0, 5).
		WithPayoff(Cooperate, Cooperate, Pair(4, 4)).
		WithPayoff(Cooperate, Defect, Pair(0, 5)).
		WithPayoff(Defect, Cooperate, Pair(5, 0)).
		WithPayoff(Defect, Defect, Pair(3, 3))
}

func (b *Builder) WithBounds(low, high int) *Builder {
	b.low, b.high = &low, &high
	return b
}

func (b *Builder) WithLow(low int) *Builder {
	b.low = &low
	return b
}

func (b *Builder) WithHigh(high int) *Builder {
	b.high = &high
	return b
}

func (b *Builder) WithChoiceNames(cooperate, defect string) *Builder {
	b.names = &ChoiceNames{Cooperate: cooperate, Defect: defect}
	b.randomNames = false
	return b
}

// WithRandomChoiceNames picks a label pair from NameCatalogue at build time.
func (b *Builder) WithRandomChoiceNames() *Builder {
	b.names = nil
	b.randomNames = true
	return b
}

func (b *Builder) WithRandomness(r Randomness) *Builder {
	b.randomness = r
	return b
}

// WithPayoff fixes the pair for one outcome so it is not sampled.
func (b *Builder) WithPayoff(mine, theirs Choice, pair NumberPair) *Builder {
	if b.overrides == nil {
		b.overrides = make(map[[2]Choice]NumberPair)
	}
	b.overrides[[2]Choice{mine, theirs}] = pair
	return b
}

func (b *Builder) WithLogger(log logrus.FieldLogger) *Builder {
	b.log = log
	return b
}

func (b *Builder) logger() logrus.FieldLogger {
	if b.log != nil {
		return b.log
	}
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

func (b *Builder) validate() error {
	verr := &BuilderError{}

	boundsOK := false
	switch {
	case b.low == nil && b.high == nil:
		verr.add("bounds", fmt.Errorf("payoff bounds not set: %w", ErrIncompleteConfiguration))
	case b.low == nil:
		verr.add("bounds", fmt.Errorf("lower bound not set: %w", ErrIncompleteConfiguration))
	case b.high == nil:
		verr.add("bounds", fmt.Errorf("upper bound not set: %w", ErrIncompleteConfiguration))
	case *b.low > *b.high:
		verr.add("bounds", fmt.Errorf("low %d exceeds high %d: %w", *b.low, *b.high, ErrInvalidRange))
	default:
		boundsOK = true
	}

	if b.names != nil {
		if err := b.names.Validate(); err != nil {
			verr.add("names", err)
		}
	}

	for _, mine := range Choices {
		for _, theirs := range Choices {
			p, ok := b.overrides[[2]Choice{mine, theirs}]
			if !ok || !boundsOK || p.within(*b.low, *b.high) {
				continue
			}
			verr.add(fmt.Sprintf("payoff[%s,%s]", mine, theirs),
				fmt.Errorf("%s outside [%d, %d]: %w", p, *b.low, *b.high, ErrInvalidRange))
		}
	}
	for k := range b.overrides {
		if !k[0].Valid() || !k[1].Valid() {
			verr.add("payoff", fmt.Errorf("%s/%s: %w", k[0], k[1], ErrUnknownChoice))
		}
	}
	return verr.orNil()
}

// Options validates the accumulated settings and realizes every cell. Each
// call draws from a fresh source, so a deterministic builder yields the same
// options every time. On failure the error is a *BuilderError.
func (b *Builder) Options() (*GameOptions, error) {
	if err := b.validate(); err != nil {
		return nil, err
	}

	src := b.randomness.NewSource()
	log := b.logger().WithField("randomness", b.randomness.String())

	opts := &GameOptions{
		low:        *b.low,
		high:       *b.high,
		names:      DefaultChoiceNames,
		randomness: b.randomness,
	}
	switch {
	case b.names != nil:
		opts.names = ChoiceNames{
			Cooperate: strings.TrimSpace(b.names.Cooperate),
			Defect:    strings.TrimSpace(b.names.Defect),
		}
	case b.randomNames:
		names, err := RandomChoiceNames(src)
		if err != nil {
			return nil, err
		}
		opts.names = names
	}

	for _, mine := range Choices {
		for _, theirs := range Choices {
			if p, ok := b.overrides[[2]Choice{mine, theirs}]; ok {
				opts.cells[mine][theirs] = p
				continue
			}
			own, err := src.NextInRange(opts.low, opts.high)
			if err != nil {
				return nil, err
			}
			other, err := src.NextInRange(opts.low, opts.high)
			if err != nil {
				return nil, err
			}
			opts.cells[mine][theirs] = Pair(own, other)
			log.Debugf("Sampled %s/%s: %s", mine, theirs, opts.cells[mine][theirs])
		}
	}
	return opts, nil
}

// Build validates the settings and returns the resulting grid.
func (b *Builder) Build() (*Grid, error) {
	opts, err := b.Options()
	if err != nil {
		return nil, err
	}
	return NewGrid(opts), nil
}
