package board

// ApplyGravity runs one sweep over every column, bottom row first: whenever
// the cell below an occupied cell is empty, the occupant drops one row.
// Because the sweep moves upward, a tile that lands in a gap can leave a
// gap behind it that the tile above fills in the same sweep, but no tile
// falls more than one row per call. Returns the number of tiles moved.
func (b *Board) ApplyGravity() int {
	moved := 0
	for x := 0; x < b.grid.Width; x++ {
		for y := 1; y < b.grid.Height; y++ {
			if _, below := b.occupant(x, y-1); below {
				continue
			}
			id, ok := b.occupant(x, y)
			if !ok {
				continue
			}
			b.moveTile(id, Position{X: x, Y: y}, Position{X: x, Y: y - 1})
			moved++
		}
	}
	if moved > 0 {
		b.log.Trace().Int("moved", moved).Msg("gravity sweep")
	}
	return moved
}

// SettleGravity repeats ApplyGravity until no tile moves and returns the
// total number of single-row moves.
func (b *Board) SettleGravity() int {
	total := 0
	for {
		moved := b.ApplyGravity()
		if moved == 0 {
			return total
		}
		total += moved
	}
}
