package board

import (
	"fmt"
	"math/rand/v2"
)

// TileId encodes both the slot generation (upper 32 bits) and the slot index (lower 32 bits)
type TileId uint64

// NewTileId creates a TileId from a slot generation and slot index
func NewTileId(generation uint32, index uint32) TileId {
	return TileId(uint64(generation)<<32 | uint64(index))
}

// Generation extracts the slot generation from the tile ID
func (t TileId) Generation() uint32 {
	return uint32(t >> 32)
}

// Index extracts the slot index from the tile ID
func (t TileId) Index() uint32 {
	return uint32(t & 0xFFFFFFFF)
}

func (t TileId) String() string {
	return fmt.Sprintf("tile(%d#%d)", t.Index(), t.Generation())
}

// Position is a cell coordinate. Row 0 is the floor.
type Position struct {
	X, Y int
}

// Less orders positions by row only.
func (p Position) Less(o Position) bool {
	return p.Y < o.Y
}

func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

type Color uint8

const (
	Blue Color = iota
	Red
	Yellow
)

// NumColors is the size of the Color enumeration.
const NumColors = 3

func (c Color) String() string {
	switch c {
	case Blue:
		return "blue"
	case Red:
		return "red"
	case Yellow:
		return "yellow"
	default:
		return "unknown"
	}
}

type Shape uint8

const (
	Diamond Shape = iota
	Circle
	Triangle
)

// NumShapes is the size of the Shape enumeration.
const NumShapes = 3

func (s Shape) String() string {
	switch s {
	case Diamond:
		return "diamond"
	case Circle:
		return "circle"
	case Triangle:
		return "triangle"
	default:
		return "unknown"
	}
}

// RandomColor draws a color uniformly from r.
func RandomColor(r *rand.Rand) Color {
	return Color(r.IntN(NumColors))
}

// RandomShape draws a shape uniformly from r.
func RandomShape(r *rand.Rand) Shape {
	return Shape(r.IntN(NumShapes))
}

// Tile is the record stored for every live tile. Color and Shape never
// change after creation; Position is owned by the board.
type Tile struct {
	Position Position
	Color    Color
	Shape    Shape
}

// AtlasIndex returns the frame of a 3x3 sprite atlas laid out with one
// color per column and one shape per row.
func (t Tile) AtlasIndex() int {
	return int(t.Color) + int(t.Shape)*NumColors
}

// glyph is the two-rune form used by Board.String.
func (t Tile) glyph() string {
	var c, s byte
	switch t.Color {
	case Blue:
		c = 'B'
	case Red:
		c = 'R'
	default:
		c = 'Y'
	}
	switch t.Shape {
	case Diamond:
		s = 'd'
	case Circle:
		s = 'o'
	default:
		s = 't'
	}
	return string([]byte{c, s})
}
