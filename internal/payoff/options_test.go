package payoff

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuild_ValidBoundsFillEveryCell(t *testing.T) {
	bounds := [][2]int{{1, 5}, {0, 0}, {-3, 3}, {7, 8}}
	modes := []Randomness{Deterministic(42), NonDeterministic()}

	for _, b := range bounds {
		for _, mode := range modes {
			grid, err := NewBuilder().WithBounds(b[0], b[1]).WithRandomness(mode).Build()
			require.NoError(t, err, "bounds %v mode %s", b, mode)

			for _, mine := range Choices {
				for _, theirs := range Choices {
					p := grid.PayoffFor(mine, theirs)
					assert.GreaterOrEqual(t, p.Own, b[0])
					assert.LessOrEqual(t, p.Own, b[1])
					assert.GreaterOrEqual(t, p.Other, b[0])
					assert.LessOrEqual(t, p.Other, b[1])
				}
			}
		}
	}
}

func TestBuild_InvalidRange(t *testing.T) {
	grid, err := NewBuilder().WithBounds(3, 1).Build()
	require.Error(t, err)
	assert.Nil(t, grid)
	assert.True(t, errors.Is(err, ErrInvalidRange))

	var berr *BuilderError
	require.ErrorAs(t, err, &berr)
	require.Len(t, berr.Fields, 1)
	assert.Equal(t, "bounds", berr.Fields[0].Field)
}

func TestBuild_IncompleteConfiguration(t *testing.T) {
	t.Run("no bounds", func(t *testing.T) {
		_, err := NewBuilder().Build()
		assert.ErrorIs(t, err, ErrIncompleteConfiguration)
	})
	t.Run("only low", func(t *testing.T) {
		_, err := NewBuilder().WithLow(1).Build()
		assert.ErrorIs(t, err, ErrIncompleteConfiguration)
	})
	t.Run("only high", func(t *testing.T) {
		_, err := NewBuilder().WithHigh(9).Build()
		assert.ErrorIs(t, err, ErrIncompleteConfiguration)
	})
	t.Run("split setters complete", func(t *testing.T) {
		_, err := NewBuilder().WithHigh(9).WithLow(1).Build()
		assert.NoError(t, err)
	})
}

func TestBuild_ChoiceNames(t *testing.T) {
	t.Run("duplicate", func(t *testing.T) {
		_, err := NewBuilder().WithBounds(1, 5).WithChoiceNames("Same", "Same").Build()
		assert.ErrorIs(t, err, ErrDuplicateChoiceName)
	})
	t.Run("duplicate ignoring case and spaces", func(t *testing.T) {
		_, err := NewBuilder().WithBounds(1, 5).WithChoiceNames("Peace ", "peace").Build()
		assert.ErrorIs(t, err, ErrDuplicateChoiceName)
	})
	t.Run("empty", func(t *testing.T) {
		_, err := NewBuilder().WithBounds(1, 5).WithChoiceNames("", "Defect").Build()
		assert.ErrorIs(t, err, ErrEmptyChoiceName)
	})
	t.Run("blank", func(t *testing.T) {
		_, err := NewBuilder().WithBounds(1, 5).WithChoiceNames("Swerve", "   ").Build()
		assert.ErrorIs(t, err, ErrEmptyChoiceName)
	})
	t.Run("defaults", func(t *testing.T) {
		grid, err := NewBuilder().WithBounds(1, 5).Build()
		require.NoError(t, err)
		assert.Equal(t, DefaultChoiceNames, grid.Names())
	})
	t.Run("trimmed", func(t *testing.T) {
		grid, err := NewBuilder().WithBounds(1, 5).WithChoiceNames(" Swerve ", "Straight").Build()
		require.NoError(t, err)
		assert.Equal(t, "Swerve", grid.Names().Name(Cooperate))
	})
}

func TestBuild_CollectsEveryFailure(t *testing.T) {
	_, err := NewBuilder().WithBounds(5, 1).WithChoiceNames("x", "x").Build()
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidRange)
	assert.ErrorIs(t, err, ErrDuplicateChoiceName)
}

func TestBuild_DeterministicIsReproducible(t *testing.T) {
	build := func() *Grid {
		grid, err := NewBuilder().
			WithBounds(1, 5).
			WithChoiceNames("Cooperate", "Defect").
			WithRandomness(Deterministic(42)).
			Build()
		require.NoError(t, err)
		return grid
	}

	first, second := build(), build()
	assert.Equal(t, first.Cells(), second.Cells())

	t.Run("repeated builds on one builder", func(t *testing.T) {
		b := NewBuilder().WithBounds(-10, 10).WithRandomness(Deterministic(7))
		g1, err := b.Build()
		require.NoError(t, err)
		g2, err := b.Build()
		require.NoError(t, err)
		assert.Equal(t, g1.Cells(), g2.Cells())
	})

	t.Run("different seeds usually differ", func(t *testing.T) {
		b1, err := NewBuilder().WithBounds(0, 1_000_000).WithRandomness(Deterministic(1)).Build()
		require.NoError(t, err)
		b2, err := NewBuilder().WithBounds(0, 1_000_000).WithRandomness(Deterministic(2)).Build()
		require.NoError(t, err)
		assert.NotEqual(t, b1.Cells(), b2.Cells())
	})
}

func TestBuild_OverridesSurvive(t *testing.T) {
	override := Pair(2, 4)
	for _, mode := range []Randomness{Deterministic(42), NonDeterministic()} {
		grid, err := NewBuilder().
			WithBounds(1, 5).
			WithRandomness(mode).
			WithPayoff(Defect, Cooperate, override).
			Build()
		require.NoError(t, err)
		assert.Equal(t, override, grid.PayoffFor(Defect, Cooperate))
	}
}

func TestBuild_OverrideDoesNotShiftOtherCells(t *testing.T) {
	// Cells are visited CC, CD, DC, DD; overriding the last cell leaves the
	// draws for the first three untouched.
	plain, err := NewBuilder().WithBounds(1, 9).WithRandomness(Deterministic(3)).Build()
	require.NoError(t, err)
	overridden, err := NewBuilder().WithBounds(1, 9).WithRandomness(Deterministic(3)).
		WithPayoff(Defect, Defect, Pair(1, 1)).Build()
	require.NoError(t, err)

	assert.Equal(t, plain.Cells()[:3], overridden.Cells()[:3])
	assert.Equal(t, Pair(1, 1), overridden.PayoffFor(Defect, Defect))
}

func TestBuild_OverrideOutsideBounds(t *testing.T) {
	_, err := NewBuilder().WithBounds(1, 5).WithPayoff(Cooperate, Cooperate, Pair(6, 1)).Build()
	assert.ErrorIs(t, err, ErrInvalidRange)
}

func TestBuild_InvalidChoiceOverride(t *testing.T) {
	_, err := NewBuilder().WithBounds(1, 5).WithPayoff(Choice(7), Cooperate, Pair(1, 1)).Build()
	assert.ErrorIs(t, err, ErrUnknownChoice)
}

func TestBuild_RandomChoiceNames(t *testing.T) {
	b := NewBuilder().WithBounds(1, 5).WithRandomChoiceNames().WithRandomness(Deterministic(11))
	g1, err := b.Build()
	require.NoError(t, err)
	g2, err := b.Build()
	require.NoError(t, err)

	assert.Equal(t, g1.Names(), g2.Names())
	assert.Contains(t, NameCatalogue, g1.Names())
	assert.NoError(t, g1.Names().Validate())
}

func TestClassicBuilder(t *testing.T) {
	grid, err := ClassicBuilder().Build()
	require.NoError(t, err)

	assert.Equal(t, Pair(4, 4), grid.PayoffFor(Cooperate, Cooperate))
	assert.Equal(t, Pair(0, 5), grid.PayoffFor(Cooperate, Defect))
	assert.Equal(t, Pair(5, 0), grid.PayoffFor(Defect, Cooperate))
	assert.Equal(t, Pair(3, 3), grid.PayoffFor(Defect, Defect))
	assert.True(t, grid.IsClassicDilemma())
}

func TestDefaultBuilder(t *testing.T) {
	grid, err := DefaultBuilder().Build()
	require.NoError(t, err)
	low, high := grid.Bounds()
	assert.Equal(t, 1, low)
	assert.Equal(t, 10, high)
	assert.Equal(t, "non-deterministic", grid.Options().Randomness().String())
}

func TestBuilder_ZeroValueIsUsable(t *testing.T) {
	var b Builder
	grid, err := b.WithBounds(0, 5).
		WithPayoff(Defect, Defect, Pair(2, 2)).
		WithRandomness(Deterministic(3)).
		Build()
	require.NoError(t, err)
	assert.Equal(t, Pair(2, 2), grid.PayoffFor(Defect, Defect))
}
