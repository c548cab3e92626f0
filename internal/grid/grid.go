// Package grid holds the floor data for one level: a static terrain layer
// and a dynamic occupant layer, both addressed by signed game coordinates
// centered on the origin.
package grid

// Wall is the default terrain code painted by a fresh Pen.
const Wall = 1

// Floor is a bounded 2D level. Terrain and occupants are parallel grids:
// terrain codes are 0 (open) or a wall code, occupant codes are 0 (empty)
// or the slot number of a live entity. Signed coordinates in [-XRad, XRad]
// and [-YRad, YRad] map onto the dense arrays; everything outside is
// treated as a tile that does not exist.
type Floor struct {
	XRad, YRad int
	terrain    [][]int
	occupants  [][]int
}

// New creates an open Floor with the given radii. The level spans
// 2*xRad+1 by 2*yRad+1 tiles.
func New(xRad, yRad int) *Floor {
	w, h := 2*xRad+1, 2*yRad+1
	terrain := make([][]int, w)
	occupants := make([][]int, w)
	for i := range terrain {
		terrain[i] = make([]int, h)
		occupants[i] = make([]int, h)
	}
	return &Floor{XRad: xRad, YRad: yRad, terrain: terrain, occupants: occupants}
}

// Width returns the number of tiles across.
func (f *Floor) Width() int { return 2*f.XRad + 1 }

// Height returns the number of tiles top to bottom.
func (f *Floor) Height() int { return 2*f.YRad + 1 }

// InBounds reports whether the signed coordinates name a tile on the floor.
func (f *Floor) InBounds(x, y int) bool {
	return x >= -f.XRad && x <= f.XRad && y >= -f.YRad && y <= f.YRad
}

// ix maps a signed coordinate to its dense array index.
func (f *Floor) ix(x int) int { return x + f.XRad }

func (f *Floor) iy(y int) int { return y + f.YRad }

// TileClear reports whether the terrain at (x, y) is passable.
// Out-of-bounds tiles are never clear.
func (f *Floor) TileClear(x, y int) bool {
	if !f.InBounds(x, y) {
		return false
	}
	return f.terrain[f.ix(x)][f.iy(y)] == 0
}

// TileOccupied reports whether an entity sits at (x, y).
// Out-of-bounds tiles are never occupied.
func (f *Floor) TileOccupied(x, y int) bool {
	if !f.InBounds(x, y) {
		return false
	}
	return f.occupants[f.ix(x)][f.iy(y)] != 0
}

// Terrain returns the terrain code at (x, y), or Wall if out of bounds.
func (f *Floor) Terrain(x, y int) int {
	if !f.InBounds(x, y) {
		return Wall
	}
	return f.terrain[f.ix(x)][f.iy(y)]
}

// Occupant returns the occupant slot number at (x, y), or 0.
func (f *Floor) Occupant(x, y int) int {
	if !f.InBounds(x, y) {
		return 0
	}
	return f.occupants[f.ix(x)][f.iy(y)]
}

// SetOccupant writes an occupant slot number (0 clears the tile).
// No-op out of bounds.
func (f *Floor) SetOccupant(x, y, slot int) {
	if !f.InBounds(x, y) {
		return
	}
	f.occupants[f.ix(x)][f.iy(y)] = slot
}

// setTerrain writes a terrain code. No-op out of bounds. The Pen is the
// public face of terrain mutation.
func (f *Floor) setTerrain(x, y, code int) {
	if !f.InBounds(x, y) {
		return
	}
	f.terrain[f.ix(x)][f.iy(y)] = code
}
