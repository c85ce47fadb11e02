package main

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/plus3/tilematch/board"
	"github.com/plus3/tilematch/config"
	"github.com/plus3/tilematch/game"
)

func testConfig() config.Config {
	cfg := config.Default()
	cfg.Seed = 7
	cfg.Cycles = 500
	return cfg
}

func TestSimulationKeepsInvariant(t *testing.T) {
	for _, gravity := range []string{"step", "settle"} {
		t.Run(gravity, func(t *testing.T) {
			cfg := testConfig()
			cfg.Gravity = gravity
			sim := newSimulation(cfg, zerolog.Nop(), true)
			sim.run(context.Background())

			assert.Equal(t, cfg.Cycles, sim.cyclesRun)
			assert.Equal(t, 0, sim.violations)
			assert.Equal(t, cfg.Width*cfg.Height, sim.events[board.TileCreated], "every cell is filled once at start")
			assert.Equal(t, sim.destroyed, cfg.Width*cfg.Height-sim.board.Len())
		})
	}
}

func TestSimulationIsDeterministic(t *testing.T) {
	a := newSimulation(testConfig(), zerolog.Nop(), true)
	b := newSimulation(testConfig(), zerolog.Nop(), true)
	a.run(context.Background())
	b.run(context.Background())

	assert.Equal(t, a.board.String(), b.board.String())
	assert.Equal(t, a.matches, b.matches)
	assert.Equal(t, a.moves, b.moves)
}

func TestSimulationPacedRun(t *testing.T) {
	cfg := testConfig()
	cfg.Cycles = 5
	cfg.Interval = time.Millisecond

	sim := newSimulation(cfg, zerolog.Nop(), false)
	sim.run(context.Background())
	assert.Equal(t, 5, sim.cyclesRun)
}

func TestReportGenerate(t *testing.T) {
	cfg := testConfig()
	cfg.Cycles = 50
	sim := newSimulation(cfg, zerolog.Nop(), true)
	sim.run(context.Background())

	report := &Report{RunID: "test-run", Config: cfg, ClearFailed: true}
	sim.fillReport(report)
	report.FinalBoard = sim.board.String()

	var buf bytes.Buffer
	require.NoError(t, report.Generate(&buf))
	out := buf.String()
	assert.Contains(t, out, "# Tile Match Simulation Report")
	assert.Contains(t, out, "**Run:** test-run")
	assert.Contains(t, out, "**Board:** 12x12")
	assert.Contains(t, out, "**Invariant Violations:** 0")
	assert.Contains(t, out, "GravitySystem")
	assert.Contains(t, out, "## Final Board")
}

func TestNewStats(t *testing.T) {
	assert.Equal(t, Stats{}, NewStats(nil))

	s := NewStats([]float64{30, 10, 20})
	assert.Equal(t, time.Duration(10), s.Min)
	assert.Equal(t, time.Duration(30), s.Max)
	assert.Equal(t, time.Duration(20), s.Mean)
	assert.Equal(t, time.Duration(10), s.StdDev)
}

func TestFailedAttemptCountedOncePerSelect(t *testing.T) {
	cfg := testConfig()
	cfg.Cycles = 0
	sim := newSimulation(cfg, zerolog.Nop(), defaultClearFailed)
	assert.False(t, defaultClearFailed)

	for x := range 3 {
		require.True(t, sim.board.Mark(board.Position{X: x}))
	}
	failed := board.MatchResult{Considered: 3}

	sim.record(game.CycleResult{Cycle: 1, Marked: 1, Match: failed})
	sim.record(game.CycleResult{Cycle: 2, Match: failed})
	sim.record(game.CycleResult{Cycle: 3, Match: failed})
	assert.Equal(t, 1, sim.failed)
	assert.Equal(t, 3, sim.board.MarkCount(), "marks persist by default")

	sim.record(game.CycleResult{Cycle: 4, Marked: 1, Match: board.MatchResult{Considered: 4}})
	assert.Equal(t, 2, sim.failed)
}
