package main

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"testing"

	"dilemma-tactix/internal/config"

	"github.com/fatih/color"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runRoot(t *testing.T, args ...string) (string, error) {
	t.Helper()
	color.NoColor = true
	log := logrus.New()
	log.SetOutput(io.Discard)

	root := newRootCmd(log)
	out := &bytes.Buffer{}
	root.SetOut(out)
	root.SetErr(out)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestGridCommand_ClassicByDefault(t *testing.T) {
	out, err := runRoot(t, "grid")
	require.NoError(t, err)
	assert.Contains(t, out, "(4, 4)")
	assert.Contains(t, out, "Payoff Grid [0, 5]")
}

func TestGridCommand_SeededBoundsAreReproducible(t *testing.T) {
	first, err := runRoot(t, "grid", "--low", "1", "--high", "5", "--seed", "42")
	require.NoError(t, err)
	second, err := runRoot(t, "grid", "--low", "1", "--high", "5", "--seed", "42")
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Contains(t, first, "Payoff Grid [1, 5]")
}

func TestGridCommand_InvalidRange(t *testing.T) {
	_, err := runRoot(t, "grid", "--low", "3", "--high", "1")
	assert.Error(t, err)
}

func TestGridCommand_DuplicateNames(t *testing.T) {
	_, err := runRoot(t, "grid", "--cooperate", "Same", "--defect", "Same")
	assert.Error(t, err)
}

func TestGridCommand_ConfigFileWithFlagOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "game.yaml")
	require.NoError(t, os.WriteFile(path, []byte("bounds: {low: 2, high: 4}\nseed: 7\n"), 0644))

	out, err := runRoot(t, "grid", "--config", path, "--high", "6")
	require.NoError(t, err)
	assert.Contains(t, out, "Payoff Grid [2, 6]")
}

func TestBenchCommand(t *testing.T) {
	out, err := runRoot(t, "bench", "--a", "defect", "--b", "cooperate", "--matches", "3", "--rounds", "4")
	require.NoError(t, err)
	assert.Contains(t, out, "Bench: 3 matches × 4 rounds")
	assert.Contains(t, out, "20.000")
}

func TestBenchCommand_UnknownOpponent(t *testing.T) {
	_, err := runRoot(t, "bench", "--a", "grim-trigger")
	assert.Error(t, err)
}

func TestBenchSeed(t *testing.T) {
	seed := int64(99)
	assert.Equal(t, int64(99), benchSeed(&config.GameConfig{Seed: &seed}))

	// Unseeded benches draw a fresh base seed every time.
	first, second := benchSeed(&config.GameConfig{}), benchSeed(&config.GameConfig{})
	assert.NotEqual(t, first, second)
}
