package game

import (
	"psyspy/internal/entity"
	"psyspy/internal/grid"
)

// FloorXRad and FloorYRad are the opening level's half-extents: tiles run
// from -rad to +rad on each axis.
const (
	FloorXRad = 10
	FloorYRad = 10
)

// Setup draws the opening level and populates it. Walls go down through
// the Pen, entities through the Registry, in any order before the first
// turn; the one hard requirement is a successful player spawn, reported by
// the return value. The kill-and-compact in the middle leaves the registry
// holding a recycled storage position from the start.
func Setup(w *World) *entity.Entity {
	pen := grid.NewPen(w.Floor)

	pen.Border()
	pen.Column(-1, -2, 5)
	pen.Row(-2, -1, 3)
	pen.Area(2, 2, 4, 4)
	pen.Erase(-1, 2)
	pen.Point(6, 6)
	pen.Point(6, 8)
	pen.Point(8, 6)
	pen.Point(8, 8)
	pen.Point(7, -7)

	// A small holding room in the southwest corner.
	pen.Outline(-8, -8, -5, -5)
	pen.Erase(-5, -7)

	player := w.Reg.SpawnPlayer(0, 0)
	if player == nil {
		return nil
	}

	w.Reg.Spawn(entity.Enemy, -3, -2)
	second := w.Reg.Spawn(entity.Enemy, 1, 3)
	w.Reg.Spawn(entity.Enemy, 1, 4)
	w.Reg.Kill(second.Slot)
	w.Reg.Compact(entity.Enemy)

	w.Reg.Spawn(entity.Furniture, 0, 2)
	w.Reg.Spawn(entity.Furniture, -2, 1)
	w.Reg.Spawn(entity.Furniture, -3, -4)

	return player
}
