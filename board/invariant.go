package board

import (
	"errors"
	"fmt"
)

// CheckInvariant verifies that the grid and the tile positions agree in
// both directions. A cell still naming a destroyed tile counts as empty.
// It returns every violation joined into one error.
func (b *Board) CheckInvariant() error {
	var errs []error

	for x := 0; x < b.grid.Width; x++ {
		for y := 0; y < b.grid.Height; y++ {
			id, ok := b.occupant(x, y)
			if !ok {
				continue
			}
			pos := Position{X: x, Y: y}
			if t := b.tiles.Get(id); t.Position != pos {
				errs = append(errs, fmt.Errorf("cell %s holds %s which claims %s", pos, id, t.Position))
			}
		}
	}

	for id, t := range b.tiles.Iter() {
		occupant, ok := b.grid.Get(t.Position.X, t.Position.Y)
		if !ok || occupant != id {
			errs = append(errs, fmt.Errorf("%s at %s is missing from the grid", id, t.Position))
		}
	}

	return errors.Join(errs...)
}
