package game_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/plus3/tilematch/board"
	"github.com/plus3/tilematch/game"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type CountingSystem struct {
	ExecuteCount int
	LastInput    []game.Action
}

func (s *CountingSystem) Execute(frame *game.UpdateFrame) {
	s.ExecuteCount++
	s.LastInput = frame.Input
}

type orderSystem struct {
	name  string
	order *[]string
}

func (s *orderSystem) Execute(frame *game.UpdateFrame) {
	*s.order = append(*s.order, s.name)
}

func TestScheduler(t *testing.T) {
	t.Run("system execution order", func(t *testing.T) {
		b := board.New(3, 3)
		scheduler := game.NewScheduler(b, board.NewCursor(b))

		var order []string
		scheduler.Register(&orderSystem{name: "first", order: &order})
		scheduler.Register(&orderSystem{name: "second", order: &order})

		scheduler.Once(1.0)
		scheduler.Once(1.0)
		assert.Equal(t, []string{"first", "second", "first", "second"}, order)
	})

	t.Run("input is consumed once in arrival order", func(t *testing.T) {
		b := board.New(3, 3)
		scheduler := game.NewScheduler(b, board.NewCursor(b))
		counting := &CountingSystem{}
		scheduler.Register(counting)

		scheduler.Push(game.Select(), game.Move(board.Up))
		scheduler.Push(game.Move(board.Right), game.Select())

		res := scheduler.Once(1.0)
		assert.Equal(t, int64(1), res.Cycle)
		assert.Equal(t, []game.Action{
			game.Select(), game.Move(board.Up), game.Move(board.Right), game.Select(),
		}, counting.LastInput)

		scheduler.Once(1.0)
		assert.Empty(t, counting.LastInput)
		assert.Equal(t, 2, counting.ExecuteCount)
	})

	t.Run("stats", func(t *testing.T) {
		b := board.New(3, 3)
		scheduler := game.NewScheduler(b, board.NewCursor(b))
		scheduler.Register(&CountingSystem{})

		for range 5 {
			scheduler.Once(0.016)
		}

		stats := scheduler.GetStats()
		assert.Equal(t, 1, stats.SystemCount)
		assert.Equal(t, int64(5), stats.Cycles)
		assert.Equal(t, int64(5), stats.TotalExecutions)
		require.Len(t, stats.Systems, 1)
		assert.Equal(t, "CountingSystem", stats.Systems[0].Name)
		assert.Equal(t, int64(5), stats.Systems[0].ExecutionCount)
		assert.LessOrEqual(t, stats.Systems[0].MinDuration, stats.Systems[0].MaxDuration)
	})

	t.Run("context cancellation in run", func(t *testing.T) {
		b := board.New(3, 3)
		scheduler := game.NewScheduler(b, board.NewCursor(b))
		counting := &CountingSystem{}
		scheduler.Register(counting)

		var mu sync.Mutex
		cycles := 0
		ctx, cancel := context.WithCancel(context.Background())
		scheduler.OnCycle(func(res game.CycleResult) {
			mu.Lock()
			cycles++
			if cycles == 3 {
				cancel()
			}
			mu.Unlock()
		})

		done := make(chan struct{})
		go func() {
			scheduler.Run(ctx, time.Millisecond)
			close(done)
		}()

		select {
		case <-done:
		case <-time.After(2 * time.Second):
			t.Fatal("Run did not return after cancellation")
		}

		mu.Lock()
		defer mu.Unlock()
		assert.GreaterOrEqual(t, cycles, 3)
	})
}
