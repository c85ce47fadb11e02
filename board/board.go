package board

import (
	"errors"
	"iter"
	"math/rand/v2"
	"strings"

	"github.com/kamstrup/intmap"
	"github.com/rs/zerolog"
)

const (
	DefaultWidth  = 12
	DefaultHeight = 12
)

var (
	ErrOutOfBounds  = errors.New("position out of bounds")
	ErrCellOccupied = errors.New("cell already occupied")
)

// Board owns the grid, the tile registry and the mark set. All mutation
// goes through its methods, each of which leaves the grid and the tile
// positions consistent before returning.
type Board struct {
	grid      *Grid
	tiles     *tileArena
	marks     *intmap.Map[TileId, struct{}]
	observers []Observer
	rng       *rand.Rand
	log       zerolog.Logger
}

type Option func(*Board)

// WithLogger sets the logger used for match and gravity diagnostics.
func WithLogger(log zerolog.Logger) Option {
	return func(b *Board) {
		b.log = log
	}
}

// WithRand sets the random source used to draw tile attributes in Fill.
func WithRand(r *rand.Rand) Option {
	return func(b *Board) {
		b.rng = r
	}
}

// WithObserver registers an observer at construction time.
func WithObserver(o Observer) Option {
	return func(b *Board) {
		b.observers = append(b.observers, o)
	}
}

// New creates an empty board of the given size.
func New(width, height int, opts ...Option) *Board {
	if width <= 0 || height <= 0 {
		panic("board dimensions must be positive")
	}

	b := &Board{
		grid:  NewGrid(width, height),
		tiles: newTileArena(),
		marks: intmap.New[TileId, struct{}](16),
		log:   zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(b)
	}
	if b.rng == nil {
		b.rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return b
}

// Observe registers an observer. Observers run in registration order.
func (b *Board) Observe(o Observer) {
	b.observers = append(b.observers, o)
}

func (b *Board) emit(ev Event) {
	for _, o := range b.observers {
		o.OnTileEvent(ev)
	}
}

func (b *Board) Width() int  { return b.grid.Width }
func (b *Board) Height() int { return b.grid.Height }

// Contains reports whether pos is on the board.
func (b *Board) Contains(pos Position) bool {
	return b.grid.InBounds(pos.X, pos.Y)
}

// OccupantAt returns the tile occupying pos according to the grid.
func (b *Board) OccupantAt(pos Position) (TileId, bool) {
	return b.occupant(pos.X, pos.Y)
}

// Tile returns a copy of a live tile.
func (b *Board) Tile(id TileId) (Tile, bool) {
	t := b.tiles.Get(id)
	if t == nil {
		return Tile{}, false
	}
	return *t, true
}

// Tiles iterates over all live tiles in registry order.
func (b *Board) Tiles() iter.Seq2[TileId, Tile] {
	return func(yield func(TileId, Tile) bool) {
		for id, t := range b.tiles.Iter() {
			if !yield(id, *t) {
				return
			}
		}
	}
}

// Len returns the number of live tiles.
func (b *Board) Len() int {
	return b.tiles.Len()
}

// CreateTile registers a tile at pos and places it in the grid.
func (b *Board) CreateTile(pos Position, color Color, shape Shape) (TileId, error) {
	if !b.Contains(pos) {
		return 0, ErrOutOfBounds
	}
	if _, occupied := b.occupant(pos.X, pos.Y); occupied {
		return 0, ErrCellOccupied
	}

	id := b.tiles.Add(Tile{Position: pos, Color: color, Shape: shape})
	b.onTileCreated(id, pos)
	b.emit(Event{Kind: TileCreated, Tile: id, Position: pos})
	return id, nil
}

// DestroyTile removes a tile from the registry and clears its cell.
// Returns false if id does not name a live tile.
func (b *Board) DestroyTile(id TileId) bool {
	t := b.tiles.Get(id)
	if t == nil {
		return false
	}
	pos := t.Position

	b.tiles.Delete(id)
	b.marks.Del(id)
	b.onTileDestroyed(id, pos)
	b.emit(Event{Kind: TileDestroyed, Tile: id, Position: pos})
	return true
}

// Fill places a randomly drawn tile in every empty cell, column by column.
// Returns the number of tiles created.
func (b *Board) Fill() int {
	created := 0
	for x := 0; x < b.grid.Width; x++ {
		for y := 0; y < b.grid.Height; y++ {
			pos := Position{X: x, Y: y}
			if _, occupied := b.occupant(x, y); occupied {
				continue
			}
			if _, err := b.CreateTile(pos, RandomColor(b.rng), RandomShape(b.rng)); err == nil {
				created++
			}
		}
	}
	b.log.Debug().Int("created", created).Msg("board filled")
	return created
}

// Reset destroys every tile and clears all marks.
func (b *Board) Reset() {
	ids := make([]TileId, 0, b.tiles.Len())
	for id := range b.tiles.Iter() {
		ids = append(ids, id)
	}
	for _, id := range ids {
		b.DestroyTile(id)
	}
	b.marks.Clear()
}

// String renders the board top row first. Marked tiles are upper-cased
// on both runes; empty cells are "..".
func (b *Board) String() string {
	var sb strings.Builder
	for y := b.grid.Height - 1; y >= 0; y-- {
		for x := 0; x < b.grid.Width; x++ {
			if x > 0 {
				sb.WriteByte(' ')
			}
			id, ok := b.occupant(x, y)
			if !ok {
				sb.WriteString("..")
				continue
			}
			g := b.tiles.Get(id).glyph()
			if b.IsMarked(id) {
				g = strings.ToUpper(g)
			}
			sb.WriteString(g)
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
