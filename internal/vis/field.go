package vis

import "psyspy/internal/grid"

// Field is the visibility of every tile on a floor from one origin, with
// fractional clarity recorded for Partial tiles. A Field is a snapshot:
// the renderer reads it, nothing mutates it.
type Field struct {
	xRad, yRad int
	states     [][]State
	frac       [][]float64
}

// At returns the visibility state of the tile at signed coordinates (x, y).
// Tiles off the floor are Blocked.
func (fd *Field) At(x, y int) State {
	if x < -fd.xRad || x > fd.xRad || y < -fd.yRad || y > fd.yRad {
		return Blocked
	}
	return fd.states[x+fd.xRad][y+fd.yRad]
}

// Clarity returns the brightness of the tile at (x, y): 1 for Clear,
// 0 for Blocked, the fractional aperture for Partial.
func (fd *Field) Clarity(x, y int) float64 {
	switch fd.At(x, y) {
	case Clear:
		return 1
	case Partial:
		return fd.frac[x+fd.xRad][y+fd.yRad]
	default:
		return 0
	}
}

// FloorField computes the visibility of every tile on f from the origin
// (ox, oy), expanding diamond rings of increasing Manhattan radius.
//
// The ring order matters: tiles on strictly smaller rings are already
// finalized, so most tiles resolve by two O(1) inferences from their inward
// neighbors: both neighbors clear open floor means the sight cone passes
// through, both blocked-or-wall means it cannot. Only the ambiguous
// remainder pays for a full LineOfSight test against the origin. The four
// axis midpoints of each ring are classified directly from the single
// inward tile.
func FloorField(f *grid.Floor, ox, oy int) *Field {
	width, height := f.Width(), f.Height()
	fd := &Field{
		xRad:   f.XRad,
		yRad:   f.YRad,
		states: make([][]State, width),
		frac:   make([][]float64, width),
	}
	for i := range fd.states {
		fd.states[i] = make([]State, height)
		fd.frac[i] = make([]float64, height)
	}

	// Dense origin indices and the distances (exclusive) from the origin to
	// the north, east, south, and west floor edges.
	x, y := ox+f.XRad, oy+f.YRad
	n := height - y - 1
	e := width - x - 1
	s := y
	w := x

	// A tile at the dense corner shows up on the ring whose radius is the
	// sum of the two adjacent edge distances, so the largest such sum
	// covers the whole floor.
	max := n + w
	for _, sum := range []int{n + e, e + s, s + w} {
		if sum > max {
			max = sum
		}
	}

	fd.states[x][y] = Clear

	// openFloor: finalized Clear and open terrain at dense (xi, yi).
	openFloor := func(xi, yi int) bool {
		return fd.states[xi][yi] == Clear && f.TileClear(xi-f.XRad, yi-f.YRad)
	}
	// blockedOff: finalized Blocked, or a wall in its own right.
	blockedOff := func(xi, yi int) bool {
		return fd.states[xi][yi] == Blocked || !f.TileClear(xi-f.XRad, yi-f.YRad)
	}
	// classify resolves a ring tile from its two inward neighbors, falling
	// back to the exact two-point test against the origin.
	classify := func(tx, ty, inx1, iny1, inx2, iny2 int) {
		switch {
		case openFloor(inx1, iny1) && openFloor(inx2, iny2):
			fd.states[tx][ty] = Clear
		case blockedOff(inx1, iny1) && blockedOff(inx2, iny2):
			fd.states[tx][ty] = Blocked
		default:
			d := LineOfSight(f, ox, oy, tx-f.XRad, ty-f.YRad)
			fd.states[tx][ty] = d.State
			if d.State == Partial {
				fd.frac[tx][ty] = d.Frac
			}
		}
	}

	for radius := 1; radius <= max; radius++ {
		// Axis midpoints: clear exactly when the inward tile is finalized
		// clear open floor.
		if radius <= n {
			fd.states[x][y+radius] = Blocked
			if openFloor(x, y+radius-1) {
				fd.states[x][y+radius] = Clear
			}
		}
		if radius <= e {
			fd.states[x+radius][y] = Blocked
			if openFloor(x+radius-1, y) {
				fd.states[x+radius][y] = Clear
			}
		}
		if radius <= s {
			fd.states[x][y-radius] = Blocked
			if openFloor(x, y-radius+1) {
				fd.states[x][y-radius] = Clear
			}
		}
		if radius <= w {
			fd.states[x-radius][y] = Blocked
			if openFloor(x-radius+1, y) {
				fd.states[x-radius][y] = Clear
			}
		}

		// Northeast run, between the N and E midpoints.
		i := 1
		if y+radius-i >= height {
			i = y + radius - height + 1
		}
		for ; i < width-x && i < radius; i++ {
			tx, ty := x+i, y+radius-i
			classify(tx, ty, tx-1, ty, tx, ty-1)
		}

		// Southeast run.
		i = 1
		if y-radius+i < 0 {
			i = radius - y
		}
		for ; i < width-x && i < radius; i++ {
			tx, ty := x+i, y-radius+i
			classify(tx, ty, tx-1, ty, tx, ty+1)
		}

		// Southwest run.
		i = 1
		if y-radius+i < 0 {
			i = radius - y
		}
		for ; i <= x && i < radius; i++ {
			tx, ty := x-i, y-radius+i
			classify(tx, ty, tx+1, ty, tx, ty+1)
		}

		// Northwest run.
		i = 1
		if y+radius-i >= height {
			i = y + radius - height + 1
		}
		for ; i <= x && i < radius; i++ {
			tx, ty := x-i, y+radius-i
			classify(tx, ty, tx+1, ty, tx, ty-1)
		}
	}

	return fd
}
