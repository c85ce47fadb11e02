package board

// Grid is the authoritative occupancy map. Cells are stored column-major
// (index = x*Height + y) so a column sweep walks contiguous memory.
// The zero TileId marks an empty cell.
type Grid struct {
	Width  int
	Height int
	Cells  []TileId
}

// NewGrid creates an empty grid with the specified dimensions
func NewGrid(width, height int) *Grid {
	return &Grid{
		Width:  width,
		Height: height,
		Cells:  make([]TileId, width*height),
	}
}

// InBounds reports whether (x, y) addresses a cell.
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.Width && y >= 0 && y < g.Height
}

// Get returns the occupant of (x, y). Out-of-bounds reads are empty.
func (g *Grid) Get(x, y int) (TileId, bool) {
	if !g.InBounds(x, y) {
		return 0, false
	}
	id := g.Cells[x*g.Height+y]
	return id, id != 0
}

// Set writes id into (x, y). No-op when out of bounds.
func (g *Grid) Set(x, y int, id TileId) {
	if !g.InBounds(x, y) {
		return
	}
	g.Cells[x*g.Height+y] = id
}

// Clear empties (x, y). No-op when out of bounds.
func (g *Grid) Clear(x, y int) {
	g.Set(x, y, 0)
}
