package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"math/rand/v2"
	"os"
	"runtime"
	"time"

	"github.com/cheggaaa/pb/v3"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/plus3/tilematch/board"
	"github.com/plus3/tilematch/config"
	"github.com/plus3/tilematch/game"
)

// Marks persist after a failed match unless the host opts in to clearing.
const defaultClearFailed = false

func main() {
	configPath := flag.String("config", "", "Path to a YAML config file.")
	cycles := flag.Int("cycles", -1, "Number of update cycles to run (overrides config).")
	seed := flag.Uint64("seed", 0, "Random seed (overrides config; 0 keeps the configured seed).")
	dump := flag.Bool("dump", false, "Include the final board in the report.")
	progress := flag.Bool("progress", true, "Show a progress bar.")
	clearFailed := flag.Bool("clear-failed", defaultClearFailed, "Clear marks after a failed match attempt.")
	flag.Parse()

	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.TimeOnly}).With().Timestamp().Logger()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatal().Err(err).Msg("invalid configuration")
	}
	if *cycles >= 0 {
		cfg.Cycles = *cycles
	}
	if *seed != 0 {
		cfg.Seed = *seed
	}
	if cfg.Seed == 0 {
		cfg.Seed = rand.Uint64()
	}
	zerolog.SetGlobalLevel(cfg.Level())

	runID := uuid.New()
	log = log.With().Str("run", runID.String()).Logger()
	log.Info().Int("width", cfg.Width).Int("height", cfg.Height).Uint64("seed", cfg.Seed).
		Str("gravity", cfg.Gravity).Int("cycles", cfg.Cycles).Msg("starting simulation")

	sim := newSimulation(cfg, log, *clearFailed)

	report := &Report{
		RunID:       runID.String(),
		Config:      cfg,
		ClearFailed: *clearFailed,
	}
	runtime.ReadMemStats(&report.MemStatsStart)

	bar := pb.StartNew(cfg.Cycles)
	if !*progress {
		bar.SetWriter(io.Discard)
	}
	sim.onCycle = func(game.CycleResult) { bar.Increment() }

	start := time.Now()
	sim.run(context.Background())
	report.TotalTime = time.Since(start)
	bar.Finish()

	runtime.ReadMemStats(&report.MemStatsEnd)
	sim.fillReport(report)
	if *dump {
		report.FinalBoard = sim.board.String()
	}

	log.Info().Int("matches", report.Matches).Int("destroyed", report.Destroyed).
		Int("violations", report.Violations).Msg("simulation finished")

	if err := report.Generate(os.Stdout); err != nil {
		log.Fatal().Err(err).Msg("failed to generate report")
	}
	if report.Violations > 0 {
		os.Exit(1)
	}
}

// simulation drives a board with a random player.
type simulation struct {
	cfg         config.Config
	log         zerolog.Logger
	board       *board.Board
	scheduler   *game.Scheduler
	player      *rand.Rand
	clearFailed bool
	onCycle     func(game.CycleResult)

	cyclesRun  int
	selects    int
	marked     int
	matches    int
	failed     int
	destroyed  int
	moves      int
	events     map[board.EventKind]int
	violations int
	samples    []float64
}

func newSimulation(cfg config.Config, log zerolog.Logger, clearFailed bool) *simulation {
	s := &simulation{
		cfg:         cfg,
		log:         log,
		player:      rand.New(rand.NewPCG(cfg.Seed, cfg.Seed^0x9e3779b97f4a7c15)),
		clearFailed: clearFailed,
		events:      make(map[board.EventKind]int),
	}

	s.board = board.New(cfg.Width, cfg.Height,
		board.WithLogger(log),
		board.WithRand(rand.New(rand.NewPCG(cfg.Seed, cfg.Seed))),
		board.WithObserver(board.ObserverFunc(func(ev board.Event) {
			s.events[ev.Kind]++
		})),
	)
	s.board.Fill()

	s.scheduler = game.NewGame(s.board, board.NewCursor(s.board), cfg.GravityMode())
	return s
}

// nextInput draws the player's actions for one cycle.
func (s *simulation) nextInput() []game.Action {
	var in []game.Action
	for range s.player.IntN(3) {
		in = append(in, game.Move(board.Direction(s.player.IntN(4))))
	}
	if s.player.IntN(3) == 0 {
		in = append(in, game.Select())
	}
	return in
}

func (s *simulation) record(res game.CycleResult) {
	var cycleTime time.Duration
	for _, st := range s.scheduler.GetStats().Systems {
		cycleTime += st.LastDuration
	}
	s.samples = append(s.samples, float64(cycleTime))
	s.cyclesRun++
	s.moves += res.Moved
	s.marked += res.Marked
	if res.Match.Matched {
		s.matches++
		s.destroyed += len(res.Match.Destroyed)
		s.log.Debug().Int64("cycle", res.Cycle).Int("destroyed", len(res.Match.Destroyed)).Msg("match")
	} else if res.Marked > 0 && res.Match.Considered >= board.MinMatch {
		s.failed++
		if s.clearFailed {
			s.board.ClearMarks()
		}
	}

	if err := s.board.CheckInvariant(); err != nil {
		s.violations++
		s.log.Error().Err(err).Int64("cycle", res.Cycle).Msg("board invariant violated")
	}

	if s.onCycle != nil {
		s.onCycle(res)
	}
}

func (s *simulation) push() {
	in := s.nextInput()
	for _, a := range in {
		if a.Select {
			s.selects++
		}
	}
	s.scheduler.Push(in...)
}

func (s *simulation) run(ctx context.Context) {
	if s.cfg.Cycles == 0 {
		return
	}

	if s.cfg.Interval <= 0 {
		for range s.cfg.Cycles {
			s.push()
			s.record(s.scheduler.Once(0))
		}
		return
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	s.scheduler.OnCycle(func(res game.CycleResult) {
		s.record(res)
		if s.cyclesRun >= s.cfg.Cycles {
			cancel()
			return
		}
		s.push()
	})
	s.push()
	s.scheduler.Run(ctx, s.cfg.Interval)
}

func (s *simulation) fillReport(r *Report) {
	r.Cycles = s.cyclesRun
	r.Selects = s.selects
	r.Marked = s.marked
	r.Matches = s.matches
	r.FailedMatches = s.failed
	r.Destroyed = s.destroyed
	r.TileMoves = s.moves
	r.TilesLeft = s.board.Len()
	r.Violations = s.violations
	r.Created = s.events[board.TileCreated]
	r.MovedEvents = s.events[board.TileMoved]
	r.DestroyedEvents = s.events[board.TileDestroyed]
	r.CycleTime = NewStats(s.samples)
	r.Systems = s.scheduler.GetStats().Systems
}

func init() {
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "Usage: %s [flags]\n\nRuns a headless tile-matching session with a random player.\n\n", os.Args[0])
		flag.PrintDefaults()
	}
}
