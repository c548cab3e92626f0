// Package entity owns every live entity on a floor and the slot-number
// bookkeeping that ties them to the occupant grid.
package entity

// Kind identifies what an entity is.
type Kind uint8

const (
	Player Kind = iota
	Enemy
	Furniture
)

func (k Kind) String() string {
	switch k {
	case Player:
		return "player"
	case Enemy:
		return "enemy"
	case Furniture:
		return "furniture"
	default:
		return "unknown"
	}
}

// Entity is one creature or fixture. Records are reference-identified and
// owned exclusively by the Registry's store; Slot is the occupant code
// currently written on the entity's tile.
type Entity struct {
	Kind   Kind
	Slot   int
	X, Y   int
	Mobile bool
	Health int
}

// newEntity builds a record with per-kind defaults.
func newEntity(kind Kind, x, y int) *Entity {
	e := &Entity{Kind: kind, X: x, Y: y}
	switch kind {
	case Player:
		e.Mobile = true
		e.Health = 10
	case Enemy:
		e.Mobile = true
		e.Health = 3
	case Furniture:
		e.Health = 2
	}
	return e
}
