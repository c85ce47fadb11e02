package board

import "iter"

const (
	arenaBlockSize = 64
)

// tileSlot holds one tile record plus the generation that a TileId must
// carry to resolve to it.
type tileSlot struct {
	tile       Tile
	generation uint32
	live       bool
}

// tileArena is the tile registry. Tiles are stored in fixed-size blocks so
// pointers handed out by Get stay valid while the arena grows. Deleted
// slots are reused; bumping the slot generation on delete keeps stale
// TileIds from resolving to the new occupant.
type tileArena struct {
	blocks    [][arenaBlockSize]tileSlot
	freeSlots []int
	nextIndex int
	count     int
}

func newTileArena() *tileArena {
	return &tileArena{}
}

func (a *tileArena) slot(index int) *tileSlot {
	if index < 0 || index >= a.nextIndex {
		return nil
	}
	return &a.blocks[index/arenaBlockSize][index%arenaBlockSize]
}

// Add stores a tile and returns its id.
func (a *tileArena) Add(t Tile) TileId {
	var index int
	if len(a.freeSlots) > 0 {
		index = a.freeSlots[len(a.freeSlots)-1]
		a.freeSlots = a.freeSlots[:len(a.freeSlots)-1]
	} else {
		index = a.nextIndex
		a.nextIndex++
		if index/arenaBlockSize >= len(a.blocks) {
			a.blocks = append(a.blocks, [arenaBlockSize]tileSlot{})
		}
	}

	s := a.slot(index)
	if s.generation == 0 {
		// generation 0 is reserved so the zero TileId never resolves
		s.generation = 1
	}
	s.tile = t
	s.live = true
	a.count++
	return NewTileId(s.generation, uint32(index))
}

// Get returns a pointer to the tile, or nil if id is stale or unknown.
func (a *tileArena) Get(id TileId) *Tile {
	s := a.slot(int(id.Index()))
	if s == nil || !s.live || s.generation != id.Generation() {
		return nil
	}
	return &s.tile
}

// Delete frees the slot held by id. Returns false if id was not live.
func (a *tileArena) Delete(id TileId) bool {
	s := a.slot(int(id.Index()))
	if s == nil || !s.live || s.generation != id.Generation() {
		return false
	}
	s.live = false
	s.tile = Tile{}
	s.generation++
	if s.generation == 0 {
		s.generation = 1
	}
	a.freeSlots = append(a.freeSlots, int(id.Index()))
	a.count--
	return true
}

// Len returns the number of live tiles.
func (a *tileArena) Len() int {
	return a.count
}

// Iter yields live tiles in slot order.
func (a *tileArena) Iter() iter.Seq2[TileId, *Tile] {
	return func(yield func(TileId, *Tile) bool) {
		for i := 0; i < a.nextIndex; i++ {
			s := a.slot(i)
			if !s.live {
				continue
			}
			if !yield(NewTileId(s.generation, uint32(i)), &s.tile) {
				return
			}
		}
	}
}
