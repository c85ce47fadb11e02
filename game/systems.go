package game

import (
	"fmt"

	"github.com/plus3/tilematch/board"
)

// GravityMode selects how far tiles fall per cycle.
type GravityMode string

const (
	// GravityStep drops tiles at most one row per cycle.
	GravityStep GravityMode = "step"
	// GravitySettle drops tiles until every column is compact.
	GravitySettle GravityMode = "settle"
)

// ParseGravityMode parses "step" or "settle".
func ParseGravityMode(s string) (GravityMode, error) {
	switch GravityMode(s) {
	case GravityStep, GravitySettle:
		return GravityMode(s), nil
	default:
		return "", fmt.Errorf("unknown gravity mode: %q", s)
	}
}

// CursorSystem replays queued actions in order, moving the cursor and
// recording where it stood at each select.
type CursorSystem struct{}

func (s *CursorSystem) Execute(frame *UpdateFrame) {
	if frame.Cursor == nil {
		return
	}
	for _, a := range frame.Input {
		if a.Select {
			frame.Selections = append(frame.Selections, frame.Cursor.Position())
			continue
		}
		frame.Cursor.Move(a.Dir)
	}
}

// MarkSystem marks the tile at every recorded selection.
type MarkSystem struct{}

func (s *MarkSystem) Execute(frame *UpdateFrame) {
	for _, pos := range frame.Selections {
		if frame.Board.Mark(pos) {
			frame.Result.Marked++
		}
	}
}

// MatchSystem evaluates the marked set every cycle.
type MatchSystem struct {
	Matches int
}

func (s *MatchSystem) Execute(frame *UpdateFrame) {
	frame.Result.Match = frame.Board.EvaluateMatch()
	if frame.Result.Match.Matched {
		s.Matches++
	}
}

// GravitySystem compacts columns after matches have been removed.
type GravitySystem struct {
	Mode GravityMode
}

func (s *GravitySystem) Execute(frame *UpdateFrame) {
	if s.Mode == GravitySettle {
		frame.Result.Moved = frame.Board.SettleGravity()
		return
	}
	frame.Result.Moved = frame.Board.ApplyGravity()
}

// NewGame returns a scheduler with the gameplay systems registered in
// cycle order: cursor, mark, match, gravity.
func NewGame(b *board.Board, cursor *board.Cursor, mode GravityMode) *Scheduler {
	s := NewScheduler(b, cursor)
	s.Register(&CursorSystem{})
	s.Register(&MarkSystem{})
	s.Register(&MatchSystem{})
	s.Register(&GravitySystem{Mode: mode})
	return s
}
