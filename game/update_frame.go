package game

import "github.com/plus3/tilematch/board"

// Action is one player action: a cursor move, or a select when Select is set.
type Action struct {
	Select bool
	Dir    board.Direction
}

// Move returns an action that moves the cursor one cell in d.
func Move(d board.Direction) Action {
	return Action{Dir: d}
}

// Select returns an action that marks the cell under the cursor.
func Select() Action {
	return Action{Select: true}
}

func (a Action) String() string {
	if a.Select {
		return "select"
	}
	return a.Dir.String()
}

// CycleResult is what one cycle did to the board.
type CycleResult struct {
	Cycle  int64
	Cursor board.Position
	// Marked counts the selects that landed on a tile.
	Marked int
	Match  board.MatchResult
	Moved  int
}

type UpdateFrame struct {
	DeltaTime float64
	Cycle     int64
	Board     *board.Board
	Cursor    *board.Cursor
	// Input holds the actions queued since the previous cycle, in arrival order.
	Input []Action
	// Selections holds the cursor position at each select in Input.
	Selections []board.Position
	Result     *CycleResult
}

func newUpdateFrame(dt float64, cycle int64, b *board.Board, cursor *board.Cursor, in []Action) *UpdateFrame {
	return &UpdateFrame{
		DeltaTime: dt,
		Cycle:     cycle,
		Board:     b,
		Cursor:    cursor,
		Input:     in,
		Result:    &CycleResult{Cycle: cycle},
	}
}
