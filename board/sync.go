package board

// onTileCreated writes a new tile into the cell matching its position.
func (b *Board) onTileCreated(id TileId, pos Position) {
	if !b.grid.InBounds(pos.X, pos.Y) {
		return
	}
	b.grid.Set(pos.X, pos.Y, id)
}

// onTileDestroyed clears the cell at the tile's last known position, but
// only if the grid still points at this tile. A mismatch means the tile
// was displaced without the grid being told; the grid is authoritative,
// so the cell is left alone and the next gravity pass works from it.
func (b *Board) onTileDestroyed(id TileId, pos Position) {
	current, ok := b.grid.Get(pos.X, pos.Y)
	if !ok || current != id {
		b.log.Debug().Stringer("tile", id).Stringer("pos", pos).Msg("stale destroy, grid cell untouched")
		return
	}
	b.grid.Clear(pos.X, pos.Y)
}

// moveTile moves the occupant of from into the empty cell to, updating the
// tile's position from the grid's view of where it is.
func (b *Board) moveTile(id TileId, from, to Position) {
	b.grid.Clear(from.X, from.Y)
	b.grid.Set(to.X, to.Y, id)
	if t := b.tiles.Get(id); t != nil {
		t.Position = to
	}
	b.emit(Event{Kind: TileMoved, Tile: id, Position: to, From: from})
}

// occupant reads the grid, treating a cell that still references a
// destroyed tile as empty. Such a cell is overwritten by the next tile
// that falls or is created into it.
func (b *Board) occupant(x, y int) (TileId, bool) {
	id, ok := b.grid.Get(x, y)
	if !ok || b.tiles.Get(id) == nil {
		return 0, false
	}
	return id, true
}
