// Package render draws game frames onto a tcell screen. It is the
// presentation side of the engine: it consumes the visibility field and
// the floor's display codes and never mutates either.
package render

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"psyspy/internal/entity"
	"psyspy/internal/game"
	"psyspy/internal/grid"
	"psyspy/internal/vis"
)

// Renderer draws Frames. It implements game.Presenter.
type Renderer struct {
	screen tcell.Screen
}

// New creates a Renderer for the given screen.
func New(screen tcell.Screen) *Renderer {
	return &Renderer{screen: screen}
}

// Present draws one frame: the floor under its visibility field, then the
// status line.
func (r *Renderer) Present(fr game.Frame) {
	r.screen.Clear()
	r.drawFloor(fr)
	r.drawHUD(fr)
	r.screen.Show()
}

// glyphAt picks the display rune and base color for one tile: the
// occupant when there is one, the terrain otherwise.
func glyphAt(fr game.Frame, x, y int) (rune, tcell.Color) {
	if slot := fr.Floor.Occupant(x, y); slot != 0 {
		switch fr.Reg.At(slot).Kind {
		case entity.Player:
			return '@', tcell.ColorWhite
		case entity.Enemy:
			return 'O', tcell.ColorRed
		default:
			return 'A', tcell.ColorYellow
		}
	}
	switch fr.Floor.Terrain(x, y) {
	case 0:
		return '.', tcell.ColorGray
	case grid.Wall:
		return '#', tcell.ColorSilver
	default:
		return 'X', tcell.ColorSilver
	}
}

// drawFloor renders every non-Blocked tile, centered on the screen.
// Partial tiles are dimmed to a grey proportional to their clarity;
// Blocked tiles are simply not drawn. Columns are double-spaced so the
// square grid reads square in a terminal font.
func (r *Renderer) drawFloor(fr game.Frame) {
	sw, sh := r.screen.Size()
	ox := (sw - 2*fr.Floor.Width() + 1) / 2
	oy := (sh - 1 - fr.Floor.Height()) / 2
	if ox < 0 {
		ox = 0
	}
	if oy < 0 {
		oy = 0
	}

	for y := fr.Floor.YRad; y >= -fr.Floor.YRad; y-- {
		for x := -fr.Floor.XRad; x <= fr.Floor.XRad; x++ {
			state := fr.Field.At(x, y)
			if state == vis.Blocked {
				continue
			}
			ch, color := glyphAt(fr, x, y)
			if state == vis.Partial {
				v := int32(fr.Field.Clarity(x, y) * 255)
				color = tcell.NewRGBColor(v, v, v)
			}
			sx := ox + 2*(x+fr.Floor.XRad)
			sy := oy + (fr.Floor.YRad - y)
			r.screen.SetContent(sx, sy, ch, nil, tcell.StyleDefault.Foreground(color))
		}
	}
}

// drawHUD renders the status line on the bottom row.
func (r *Renderer) drawHUD(fr game.Frame) {
	sw, sh := r.screen.Size()
	left := fmt.Sprintf("turn %d", fr.Turn)
	right := fmt.Sprintf("enemies %d", fr.Reg.LiveCount(entity.Enemy))

	style := tcell.StyleDefault.Foreground(tcell.ColorWhite)
	drawText(r.screen, 0, sh-1, left, style)
	drawText(r.screen, sw-runewidth.StringWidth(right), sh-1, right, style)
}

// drawText writes s starting at (x, y), advancing by display width.
func drawText(screen tcell.Screen, x, y int, s string, style tcell.Style) {
	for _, ch := range s {
		screen.SetContent(x, y, ch, nil, style)
		x += runewidth.RuneWidth(ch)
	}
}
