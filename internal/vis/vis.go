// Package vis computes line-of-sight between tiles and whole-floor
// visibility fields.
//
// Visibility between two tiles is exact, not sampled: a tile pair is Clear
// only when every point in one tile has line-of-sight to its counterpart in
// the other. The test walks the digital line between the tile centers and
// tracks an occlusion interval — the sub-range of sight lines that squeeze
// past the walls adjacent to the line. The interval width ("aperture") over
// the segment's Manhattan length gives the fractional clarity of a
// partially visible tile.
package vis

import "psyspy/internal/grid"

// State classifies a tile's visibility from an origin.
type State uint8

const (
	Blocked State = iota // no sight line at all
	Partial              // some but not all sight lines
	Clear                // every sight line unobstructed
)

// Datum is the result of a two-point visibility test. Frac is populated
// only for Partial and lies in [0, 1).
type Datum struct {
	State State
	Frac  float64
}

// Clarity collapses a Datum to a single brightness value:
// 1 for Clear, 0 for Blocked, Frac for Partial.
func (d Datum) Clarity() float64 {
	switch d.State {
	case Clear:
		return 1
	case Partial:
		return d.Frac
	default:
		return 0
	}
}

// span is an occlusion interval in Manhattan-length units. The segment is
// seeable through the sub-interval [inf, sup]; inf > sup means no sight
// line survives.
type span struct {
	inf, sup int
}

// segmentOcclusion walks the digital line of a primitive segment starting
// at (x, y) with coprime deltas (dx, dy), dx > 0. At each lattice step it
// checks the two tiles adjacent to the line: a wall above/below the line
// lowers sup, a wall right of the line raises inf. Reports ok=false when
// either endpoint is off the floor.
func segmentOcclusion(f *grid.Floor, x, y, dx, dy int) (span, bool) {
	if !f.InBounds(x, y) || !f.InBounds(x+dx, y+dy) {
		return span{}, false
	}

	step := 1
	if dy < 0 {
		step, dy = -1, -dy
	}
	d := dx + dy
	s := span{inf: 0, sup: d}
	cur := dx

	for {
		if !f.TileClear(x, y+step) && cur < s.sup {
			s.sup = cur
		}
		if !f.TileClear(x+1, y) && cur > s.inf {
			s.inf = cur
		}
		switch {
		case cur < dy:
			y += step
			cur += dx
		case cur > dy:
			x++
			cur -= dy
		default:
			return s, true
		}
	}
}

// LineOfSight determines whether the tiles at (x1, y1) and (x2, y2) can see
// each other clearly, partially, or not at all.
//
// Degenerate alignments (same tile, same row, same column) reduce to a
// straight clearance scan. Otherwise the segment decomposes into
// k = gcd(dx, dy) primitive sub-segments sharing collinear lattice points;
// the occlusion intervals of all sub-segments are intersected, and every
// interior lattice point must itself be open terrain. The test
// short-circuits to Blocked as soon as the interval empties.
func LineOfSight(f *grid.Floor, x1, y1, x2, y2 int) Datum {
	if x1 > x2 {
		x1, y1, x2, y2 = x2, y2, x1, y1
	}

	if x1 == x2 {
		if y1 == y2 {
			return Datum{State: Clear}
		}
		step := 1
		if y2 < y1 {
			step = -1
		}
		for y := y1 + step; y != y2; y += step {
			if !f.TileClear(x1, y) {
				return Datum{State: Blocked}
			}
		}
		return Datum{State: Clear}
	}
	if y1 == y2 {
		for x := x1 + 1; x < x2; x++ {
			if !f.TileClear(x, y1) {
				return Datum{State: Blocked}
			}
		}
		return Datum{State: Clear}
	}

	dx := x2 - x1
	dy := y2 - y1
	d := dx + dy
	if dy < 0 {
		d = dx - dy
	}
	k, err := Gcd(dx, dy)
	if err != nil {
		// Unreachable: zero-length segments were handled above.
		return Datum{State: Blocked}
	}

	if k == 1 {
		s, ok := segmentOcclusion(f, x1, y1, dx, dy)
		if !ok {
			return Datum{State: Blocked}
		}
		aperture := s.sup - s.inf
		switch {
		case aperture < 0:
			return Datum{State: Blocked}
		case aperture == d:
			return Datum{State: Clear}
		default:
			return Datum{State: Partial, Frac: float64(aperture) / float64(d)}
		}
	}

	// k sub-segments: intersect the occlusion bounds across all of them.
	ddx, ddy := dx/k, dy/k
	inf, sup := 0, d/k
	for i := 0; i < k; i++ {
		s, ok := segmentOcclusion(f, x1+i*ddx, y1+i*ddy, ddx, ddy)
		if !ok {
			return Datum{State: Blocked}
		}
		if s.inf > inf {
			inf = s.inf
		}
		if s.sup < sup {
			sup = s.sup
		}
		if sup-inf < 0 {
			return Datum{State: Blocked}
		}
		// An interior lattice tile standing square on the line blocks
		// everything, regardless of the interval.
		if i != 0 && !f.TileClear(x1+i*ddx, y1+i*ddy) {
			return Datum{State: Blocked}
		}
	}
	if sup-inf == d/k {
		return Datum{State: Clear}
	}
	return Datum{State: Partial, Frac: float64(sup-inf) / float64(d/k)}
}
