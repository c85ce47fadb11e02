package game

import (
	"context"
	"reflect"
	"sync"
	"time"

	"github.com/plus3/tilematch/board"
)

// SchedulerStats provides statistics about scheduler execution.
type SchedulerStats struct {
	SystemCount     int
	Cycles          int64
	TotalExecutions int64
	Systems         []SystemStats
}

// SystemStats provides execution statistics for a single system.
type SystemStats struct {
	Name           string
	ExecutionCount int64
	MinDuration    time.Duration
	MaxDuration    time.Duration
	AvgDuration    time.Duration
	LastDuration   time.Duration
	TotalDuration  time.Duration
}

type systemStatsInternal struct {
	name           string
	executionCount int64
	minDuration    time.Duration
	maxDuration    time.Duration
	totalDuration  time.Duration
	lastDuration   time.Duration
}

// Scheduler runs the registered systems once per cycle against a single
// board. Systems never run concurrently with each other; Push is the only
// method that may be called from another goroutine.
type Scheduler struct {
	board       *board.Board
	cursor      *board.Cursor
	systems     []System
	systemStats []*systemStatsInternal
	cycle       int64
	onCycle     func(CycleResult)

	mu      sync.Mutex
	pending []Action
}

// NewScheduler creates a scheduler with no systems registered.
func NewScheduler(b *board.Board, cursor *board.Cursor) *Scheduler {
	return &Scheduler{
		board:   b,
		cursor:  cursor,
		systems: make([]System, 0),
	}
}

// Register appends a system to the cycle.
func (s *Scheduler) Register(system System) {
	s.systems = append(s.systems, system)

	systemType := reflect.TypeOf(system)
	if systemType.Kind() == reflect.Ptr {
		systemType = systemType.Elem()
	}

	s.systemStats = append(s.systemStats, &systemStatsInternal{
		name:        systemType.Name(),
		minDuration: time.Duration(1<<63 - 1),
	})
}

// OnCycle sets a callback invoked with the result of every cycle.
func (s *Scheduler) OnCycle(fn func(CycleResult)) {
	s.onCycle = fn
}

// Push queues actions for the next cycle after any already pending.
// Safe for concurrent use.
func (s *Scheduler) Push(actions ...Action) {
	s.mu.Lock()
	s.pending = append(s.pending, actions...)
	s.mu.Unlock()
}

func (s *Scheduler) takeInput() []Action {
	s.mu.Lock()
	defer s.mu.Unlock()
	in := s.pending
	s.pending = nil
	return in
}

// Once executes all registered systems once with the given delta time,
// consuming the actions queued since the previous cycle.
func (s *Scheduler) Once(dt float64) CycleResult {
	s.cycle++
	frame := newUpdateFrame(dt, s.cycle, s.board, s.cursor, s.takeInput())

	for i, system := range s.systems {
		start := time.Now()
		system.Execute(frame)
		duration := time.Since(start)

		stats := s.systemStats[i]
		stats.executionCount++
		stats.lastDuration = duration
		stats.totalDuration += duration

		if duration < stats.minDuration {
			stats.minDuration = duration
		}
		if duration > stats.maxDuration {
			stats.maxDuration = duration
		}
	}

	if s.cursor != nil {
		frame.Result.Cursor = s.cursor.Position()
	}
	if s.onCycle != nil {
		s.onCycle(*frame.Result)
	}
	return *frame.Result
}

// Run executes all systems repeatedly at the given interval until the context is cancelled.
func (s *Scheduler) Run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	lastTime := time.Now()

	for {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.C:
			dt := now.Sub(lastTime).Seconds()
			lastTime = now
			s.Once(dt)
		}
	}
}

// GetStats returns statistics about system execution.
func (s *Scheduler) GetStats() *SchedulerStats {
	stats := &SchedulerStats{
		SystemCount: len(s.systems),
		Cycles:      s.cycle,
		Systems:     make([]SystemStats, len(s.systemStats)),
	}

	var totalExecs int64
	for i, internal := range s.systemStats {
		avgDuration := time.Duration(0)
		if internal.executionCount > 0 {
			avgDuration = internal.totalDuration / time.Duration(internal.executionCount)
		}

		stats.Systems[i] = SystemStats{
			Name:           internal.name,
			ExecutionCount: internal.executionCount,
			MinDuration:    internal.minDuration,
			MaxDuration:    internal.maxDuration,
			AvgDuration:    avgDuration,
			LastDuration:   internal.lastDuration,
			TotalDuration:  internal.totalDuration,
		}
		totalExecs += internal.executionCount
	}

	stats.TotalExecutions = totalExecs
	return stats
}
