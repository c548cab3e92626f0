package vis

import (
	"math"
	"math/rand"
	"testing"

	"psyspy/internal/grid"
)

func TestFieldOpenFloorAllClear(t *testing.T) {
	f := grid.New(8, 6)
	for _, origin := range [][2]int{{0, 0}, {-8, -6}, {5, -2}} {
		fd := FloorField(f, origin[0], origin[1])
		for x := -8; x <= 8; x++ {
			for y := -6; y <= 6; y++ {
				if fd.At(x, y) != Clear {
					t.Fatalf("origin (%d,%d): tile (%d,%d) = %v, want Clear",
						origin[0], origin[1], x, y, fd.At(x, y))
				}
			}
		}
	}
}

func TestFieldOriginAlwaysClear(t *testing.T) {
	f := grid.New(5, 5)
	grid.NewPen(f).Outline(-1, -1, 1, 1) // box the origin in
	fd := FloorField(f, 0, 0)
	if fd.At(0, 0) != Clear {
		t.Error("origin tile must be Clear")
	}
	if fd.Clarity(0, 0) != 1 {
		t.Error("origin clarity must be 1")
	}
}

func TestFieldAxisShadow(t *testing.T) {
	f := grid.New(8, 8)
	grid.NewPen(f).Point(4, 0)
	fd := FloorField(f, 0, 0)

	if fd.At(4, 0) != Clear {
		t.Errorf("the wall itself: %v, want Clear", fd.At(4, 0))
	}
	for x := 5; x <= 8; x++ {
		if fd.At(x, 0) != Blocked {
			t.Errorf("(%d,0) behind the wall: %v, want Blocked", x, fd.At(x, 0))
		}
	}
	for x := -8; x < 4; x++ {
		if fd.At(x, 0) != Clear {
			t.Errorf("(%d,0) before the wall: %v, want Clear", x, fd.At(x, 0))
		}
	}
}

func TestFieldSingleWallScenario(t *testing.T) {
	f := grid.New(10, 10)
	grid.NewPen(f).Point(5, 5)
	fd := FloorField(f, 0, 0)

	if fd.At(5, 5) != Clear {
		t.Errorf("(5,5): %v, want Clear", fd.At(5, 5))
	}
	if fd.At(6, 5) != Partial {
		t.Fatalf("(6,5): %v, want Partial", fd.At(6, 5))
	}
	if math.Abs(fd.Clarity(6, 5)-5.0/11.0) > 1e-9 {
		t.Errorf("(6,5) clarity=%v, want 5/11", fd.Clarity(6, 5))
	}
	if fd.At(10, 10) != Blocked {
		t.Errorf("(10,10): %v, want Blocked", fd.At(10, 10))
	}
	if fd.At(-5, -5) != Clear {
		t.Errorf("(-5,-5): %v, want Clear", fd.At(-5, -5))
	}
}

func TestFieldOffFloorIsBlocked(t *testing.T) {
	f := grid.New(3, 3)
	fd := FloorField(f, 0, 0)
	if fd.At(4, 0) != Blocked || fd.Clarity(0, -4) != 0 {
		t.Error("coordinates off the floor must read Blocked")
	}
}

// The ring expansion's neighbor inferences are shortcuts over the exact
// two-point test. Exhaustive pairwise testing is the oracle: the two may
// disagree about the Clear/Partial or Partial/Blocked boundary, but a tile
// fully visible under one must never be fully hidden under the other.
func TestFieldAgainstPairwiseOracle(t *testing.T) {
	rng := rand.New(rand.NewSource(12))
	for trial := 0; trial < 8; trial++ {
		f := grid.New(6, 6)
		p := grid.NewPen(f)
		// The origin is the player's own tile and is always open in play;
		// never paint it.
		ox, oy := rng.Intn(13)-6, rng.Intn(13)-6
		for i := 0; i < 8; i++ {
			wx, wy := rng.Intn(13)-6, rng.Intn(13)-6
			if wx == ox && wy == oy {
				continue
			}
			p.Point(wx, wy)
		}
		fd := FloorField(f, ox, oy)

		for x := -6; x <= 6; x++ {
			for y := -6; y <= 6; y++ {
				if x == ox && y == oy {
					continue
				}
				ring := fd.At(x, y)
				direct := LineOfSight(f, ox, oy, x, y).State
				if (ring == Clear && direct == Blocked) ||
					(ring == Blocked && direct == Clear) {
					t.Fatalf("trial %d origin (%d,%d): tile (%d,%d) ring=%v direct=%v",
						trial, ox, oy, x, y, ring, direct)
				}
			}
		}
	}
}

// On an empty floor the shortcuts and the oracle agree exactly.
func TestFieldMatchesOracleOnOpenFloor(t *testing.T) {
	f := grid.New(5, 4)
	fd := FloorField(f, 2, -1)
	for x := -5; x <= 5; x++ {
		for y := -4; y <= 4; y++ {
			if got, want := fd.At(x, y), LineOfSight(f, 2, -1, x, y).State; got != want {
				t.Fatalf("(%d,%d): ring=%v direct=%v", x, y, got, want)
			}
		}
	}
}
