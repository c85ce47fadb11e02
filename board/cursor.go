package board

type Direction uint8

const (
	Up Direction = iota
	Down
	Left
	Right
)

func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Down:
		return "down"
	case Left:
		return "left"
	case Right:
		return "right"
	default:
		return "unknown"
	}
}

// Delta returns the unit step for d. Up is towards higher rows.
func (d Direction) Delta() (dx, dy int) {
	switch d {
	case Up:
		return 0, 1
	case Down:
		return 0, -1
	case Left:
		return -1, 0
	case Right:
		return 1, 0
	default:
		return 0, 0
	}
}

// Cursor is the player's highlighted cell. It never leaves the board.
type Cursor struct {
	pos           Position
	width, height int
}

// NewCursor creates a cursor at (0,0) bounded by b.
func NewCursor(b *Board) *Cursor {
	return &Cursor{width: b.Width(), height: b.Height()}
}

func (c *Cursor) Position() Position {
	return c.pos
}

// Move steps the cursor one cell, saturating at the board edges.
func (c *Cursor) Move(d Direction) Position {
	dx, dy := d.Delta()
	c.pos.X = min(max(c.pos.X+dx, 0), c.width-1)
	c.pos.Y = min(max(c.pos.Y+dy, 0), c.height-1)
	return c.pos
}
