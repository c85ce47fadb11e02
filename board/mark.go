package board

import "slices"

// Mark tags the tile at pos for the next match evaluation. Returns false if
// the cell is empty or off the board. Marking an already-marked tile is a
// no-op that still returns true.
func (b *Board) Mark(pos Position) bool {
	id, ok := b.occupant(pos.X, pos.Y)
	if !ok {
		return false
	}
	b.marks.Put(id, struct{}{})
	return true
}

func (b *Board) IsMarked(id TileId) bool {
	_, ok := b.marks.Get(id)
	return ok
}

// MarkCount returns the number of marked tiles.
func (b *Board) MarkCount() int {
	return b.marks.Len()
}

// Marked returns the marked tiles in registry order.
func (b *Board) Marked() []TileId {
	out := make([]TileId, 0, b.marks.Len())
	for id := range b.tiles.Iter() {
		if b.IsMarked(id) {
			out = append(out, id)
		}
	}
	return slices.Clip(out)
}

// ClearMarks drops every mark. Nothing in the board calls this on its own:
// marks from a failed match stay until a successful one consumes them.
func (b *Board) ClearMarks() {
	b.marks.Clear()
}
