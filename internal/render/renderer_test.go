package render

import (
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"

	"psyspy/internal/entity"
	"psyspy/internal/game"
	"psyspy/internal/grid"
	"psyspy/internal/vis"
)

func newSimScreen(t *testing.T) tcell.SimulationScreen {
	t.Helper()
	ss := tcell.NewSimulationScreen("UTF-8")
	ss.SetSize(80, 24)
	if err := ss.Init(); err != nil {
		t.Fatalf("init simulation screen: %v", err)
	}
	return ss
}

// contents flattens the simulation screen into a rune→count map.
func contents(ss tcell.SimulationScreen) map[rune]int {
	cells, _, _ := ss.GetContents()
	got := map[rune]int{}
	for _, c := range cells {
		if len(c.Runes) > 0 {
			got[c.Runes[0]]++
		}
	}
	return got
}

func makeFrame(t *testing.T) game.Frame {
	t.Helper()
	w := game.NewWorld(5, 5)
	grid.NewPen(w.Floor).Point(3, 0)
	if w.Reg.SpawnPlayer(0, 0) == nil {
		t.Fatal("player spawn failed")
	}
	w.Reg.Spawn(entity.Enemy, -2, -2)
	w.Reg.Spawn(entity.Furniture, 1, 2)
	return game.Frame{
		Floor: w.Floor,
		Field: vis.FloorField(w.Floor, 0, 0),
		Reg:   w.Reg,
		Turn:  3,
	}
}

func TestPresentDrawsEntitiesAndTerrain(t *testing.T) {
	ss := newSimScreen(t)
	r := New(ss)
	r.Present(makeFrame(t))

	got := contents(ss)
	if got['@'] != 1 {
		t.Errorf("player glyphs=%d, want 1", got['@'])
	}
	if got['O'] != 1 {
		t.Errorf("enemy glyphs=%d, want 1", got['O'])
	}
	if got['A'] != 1 {
		t.Errorf("furniture glyphs=%d, want 1", got['A'])
	}
	if got['#'] == 0 {
		t.Error("wall glyph missing")
	}
	if got['.'] == 0 {
		t.Error("open floor glyphs missing")
	}
}

func TestPresentHidesBlockedTiles(t *testing.T) {
	ss := newSimScreen(t)
	fr := makeFrame(t)
	// Everything straight behind the wall at (3,0) is Blocked: those
	// tiles contribute nothing to the draw.
	drawn := 0
	for x := -5; x <= 5; x++ {
		for y := -5; y <= 5; y++ {
			if fr.Field.At(x, y) != vis.Blocked {
				drawn++
			}
		}
	}
	if fr.Field.At(4, 0) != vis.Blocked || fr.Field.At(5, 0) != vis.Blocked {
		t.Fatal("expected an axis shadow behind the wall")
	}

	r := New(ss)
	r.Present(fr)
	got := contents(ss)
	glyphs := got['@'] + got['O'] + got['A'] + got['#'] + got['.'] + got['X']
	if glyphs != drawn {
		t.Errorf("drew %d tile glyphs, want %d (blocked tiles stay blank)", glyphs, drawn)
	}
}

func TestHUDShowsTurnAndEnemyCount(t *testing.T) {
	ss := newSimScreen(t)
	New(ss).Present(makeFrame(t))

	cells, w, h := ss.GetContents()
	row := make([]rune, 0, w)
	for x := 0; x < w; x++ {
		c := cells[(h-1)*w+x]
		if len(c.Runes) > 0 {
			row = append(row, c.Runes[0])
		} else {
			row = append(row, ' ')
		}
	}
	line := string(row)
	if want := "turn 3"; !strings.Contains(line, want) {
		t.Errorf("HUD %q missing %q", line, want)
	}
	if want := "enemies 1"; !strings.Contains(line, want) {
		t.Errorf("HUD %q missing %q", line, want)
	}
}
