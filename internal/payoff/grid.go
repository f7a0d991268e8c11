package payoff

import "fmt"

// Grid is the realized 2×2 payoff matrix. It has no mutators, so any number of
// goroutines may read it concurrently.
type Grid struct {
	opts *GameOptions
}

// NewGrid wraps validated options. Use Builder.Build in normal code.
func NewGrid(opts *GameOptions) *Grid {
	return &Grid{opts: opts}
}

// PayoffFor returns the scores for the row player choosing mine against
// theirs. It panics if either choice is not a valid variant.
func (g *Grid) PayoffFor(mine, theirs Choice) NumberPair {
	if !mine.Valid() || !theirs.Valid() {
		panic(fmt.Sprintf("payoff: invalid choice pair %s/%s", mine, theirs))
	}
	return g.opts.cells[mine][theirs]
}

// Play resolves two typed labels and returns their payoff.
func (g *Grid) Play(mine, theirs string) (NumberPair, error) {
	names := g.opts.names
	m, ok := names.Lookup(mine)
	if !ok {
		return NumberPair{}, fmt.Errorf("%q: %w", mine, ErrUnknownChoice)
	}
	t, ok := names.Lookup(theirs)
	if !ok {
		return NumberPair{}, fmt.Errorf("%q: %w", theirs, ErrUnknownChoice)
	}
	return g.PayoffFor(m, t), nil
}

func (g *Grid) Options() *GameOptions { return g.opts }
func (g *Grid) Names() ChoiceNames    { return g.opts.names }

// Bounds returns the inclusive payoff range the grid was built with.
func (g *Grid) Bounds() (low, high int) {
	return g.opts.low, g.opts.high
}

// Cells returns the four outcomes in canonical order: CC, CD, DC, DD.
func (g *Grid) Cells() []Cell {
	cells := make([]Cell, 0, 4)
	for _, mine := range Choices {
		for _, theirs := range Choices {
			cells = append(cells, Cell{Mine: mine, Theirs: theirs, Pair: g.opts.cells[mine][theirs]})
		}
	}
	return cells
}

// IsClassicDilemma reports whether the row player's payoffs satisfy
// temptation > reward > punishment > sucker. It is never enforced.
func (g *Grid) IsClassicDilemma() bool {
	c := g.opts.cells
	t := c[Defect][Cooperate].Own
	r := c[Cooperate][Cooperate].Own
	p := c[Defect][Defect].Own
	s := c[Cooperate][Defect].Own
	return t > r && r > p && p > s
}

func (g *Grid) String() string {
	return "game grid: " + g.opts.String()
}
