package entity

import (
	"fmt"

	"psyspy/internal/grid"
)

// Slot numbering. Occupant code 0 means "empty tile", so real slots start
// at 1. The low range [0, startSlot) is reserved for singletons — the
// player sits at slot 1. Above that, slots interleave by kind: member j of
// kind k lives at startSlot + offset(k) + numSpawnable*j, so adding a kind
// never renumbers existing entities and each kind's members enumerate with
// a fixed stride.
const (
	playerSlot   = 1
	startSlot    = 2
	numSpawnable = 2 // Enemy, Furniture
)

// offset maps a spawnable kind to its interleave lane.
func offset(kind Kind) int { return int(kind) - int(Enemy) }

// slotNumber returns the slot of member j of the given kind.
func slotNumber(kind Kind, j int) int {
	return startSlot + offset(kind) + numSpawnable*j
}

// slotState distinguishes a never-used slot, a tombstoned one awaiting
// compaction, and a live binding.
type slotState uint8

const (
	slotFree slotState = iota
	slotDead
	slotLive
)

// slotRef binds a slot number to a storage position.
type slotRef struct {
	state slotState
	pos   int
}

// Registry maps occupant slot numbers to entity records without per-turn
// reallocation. The store only ever grows; kills tombstone their slot and
// donate the storage position to a free list that later spawns consume
// oldest-first. Compact squeezes the tombstones out of one kind's slot
// range.
type Registry struct {
	floor  *grid.Floor
	store  []*Entity // storage list; nil entries are vacated by kills
	slots  []slotRef
	counts [numSpawnable]int // slot numbers held per kind, dead ones included
	free   []int             // vacated storage positions, oldest first
	player *Entity
}

// NewRegistry creates an empty Registry over floor.
func NewRegistry(floor *grid.Floor) *Registry {
	return &Registry{
		floor: floor,
		slots: make([]slotRef, startSlot),
	}
}

// Player returns the player entity, or nil before SpawnPlayer.
func (r *Registry) Player() *Entity { return r.player }

// SpawnPlayer places the player at (x, y) on slot 1. No-op (returning nil)
// when the tile is walled or occupied, or when a player already exists.
func (r *Registry) SpawnPlayer(x, y int) *Entity {
	if r.player != nil {
		return nil
	}
	if !r.floor.TileClear(x, y) || r.floor.TileOccupied(x, y) {
		return nil
	}
	e := newEntity(Player, x, y)
	e.Slot = playerSlot
	r.floor.SetOccupant(x, y, playerSlot)
	r.slots[playerSlot] = slotRef{state: slotLive, pos: len(r.store)}
	r.store = append(r.store, e)
	r.player = e
	return e
}

// Spawn places a new entity of the given kind at (x, y). The destination
// must be simultaneously terrain-clear and occupant-free or the spawn is a
// silent no-op returning nil; trying to act somewhere impossible is normal
// gameplay, not a fault. Storage is reused from the free list when kills
// have vacated positions, else appended.
func (r *Registry) Spawn(kind Kind, x, y int) *Entity {
	if kind == Player {
		panic("entity: Spawn cannot create the player; use SpawnPlayer")
	}
	if !r.floor.TileClear(x, y) || r.floor.TileOccupied(x, y) {
		return nil
	}

	slot := slotNumber(kind, r.counts[offset(kind)])
	for len(r.slots) <= slot {
		r.slots = append(r.slots, slotRef{})
	}
	r.floor.SetOccupant(x, y, slot)

	e := newEntity(kind, x, y)
	e.Slot = slot
	if len(r.free) > 0 {
		pos := r.free[0]
		r.free = r.free[1:]
		r.store[pos] = e
		r.slots[slot] = slotRef{state: slotLive, pos: pos}
	} else {
		r.slots[slot] = slotRef{state: slotLive, pos: len(r.store)}
		r.store = append(r.store, e)
	}
	r.counts[offset(kind)]++
	return e
}

// Move shifts e by (dx, dy). A walled, occupied, or out-of-bounds
// destination cancels the move silently. The slot number travels with the
// entity to its new tile.
func (r *Registry) Move(e *Entity, dx, dy int) {
	r.mustOwn(e)
	nx, ny := e.X+dx, e.Y+dy
	if !r.floor.TileClear(nx, ny) || r.floor.TileOccupied(nx, ny) {
		return
	}
	r.floor.SetOccupant(e.X, e.Y, 0)
	r.floor.SetOccupant(nx, ny, e.Slot)
	e.X, e.Y = nx, ny
}

// Kill removes the entity bound to slot: its tile is cleared, its storage
// position is vacated onto the free list, and the slot is tombstoned until
// the next Compact. Killing a slot with no live binding is Registry
// corruption and panics.
func (r *Registry) Kill(slot int) {
	ref := r.ref(slot)
	e := r.store[ref.pos]
	r.floor.SetOccupant(e.X, e.Y, 0)
	r.store[ref.pos] = nil
	r.free = append(r.free, ref.pos)
	r.slots[slot] = slotRef{state: slotDead}
	if e == r.player {
		r.player = nil
	}
}

// Compact defragments one kind's slot range: live bindings shift down over
// the tombstones accumulated since the last pass, the trailing range is
// released, and every survivor's tile is rewritten with its new slot
// number. O(n) in the kind's held slots; spawn alone never shrinks the
// range, so without periodic compaction slot numbers grow without bound as
// entities die and respawn.
func (r *Registry) Compact(kind Kind) {
	if kind == Player {
		return
	}
	held := r.counts[offset(kind)]
	dead := 0
	for j := 0; j < held; j++ {
		s := slotNumber(kind, j)
		if r.slots[s].state == slotDead {
			dead++
		} else if dead > 0 {
			r.slots[slotNumber(kind, j-dead)] = r.slots[s]
		}
	}
	for j := held - dead; j < held; j++ {
		r.slots[slotNumber(kind, j)] = slotRef{}
	}
	r.counts[offset(kind)] -= dead

	for j := 0; j < r.counts[offset(kind)]; j++ {
		s := slotNumber(kind, j)
		e := r.store[r.slots[s].pos]
		e.Slot = s
		r.floor.SetOccupant(e.X, e.Y, s)
	}
}

// At returns the live entity bound to slot. Panics when the slot has no
// live binding: occupant codes on tiles must always reference live slots,
// so a miss here means the Registry or the grid is corrupt.
func (r *Registry) At(slot int) *Entity {
	return r.store[r.ref(slot).pos]
}

// EachOfKind calls fn for every live entity of the kind, in slot order.
func (r *Registry) EachOfKind(kind Kind, fn func(*Entity)) {
	if kind == Player {
		if r.player != nil {
			fn(r.player)
		}
		return
	}
	for j := 0; j < r.counts[offset(kind)]; j++ {
		ref := r.slots[slotNumber(kind, j)]
		if ref.state != slotLive {
			continue
		}
		fn(r.store[ref.pos])
	}
}

// LiveCount returns the number of live entities of the kind.
func (r *Registry) LiveCount(kind Kind) int {
	n := 0
	r.EachOfKind(kind, func(*Entity) { n++ })
	return n
}

// HeldSlots returns the kind's slot range size, tombstones included.
func (r *Registry) HeldSlots(kind Kind) int {
	if kind == Player {
		if r.player != nil {
			return 1
		}
		return 0
	}
	return r.counts[offset(kind)]
}

// ref fetches the binding for slot, failing loudly on anything stale.
func (r *Registry) ref(slot int) slotRef {
	if slot < 0 || slot >= len(r.slots) || r.slots[slot].state != slotLive {
		panic(fmt.Sprintf("entity: slot %d has no live binding", slot))
	}
	return r.slots[slot]
}

// mustOwn verifies that e is the record its slot is bound to.
func (r *Registry) mustOwn(e *Entity) {
	if r.store[r.ref(e.Slot).pos] != e {
		panic(fmt.Sprintf("entity: slot %d bound to a different record", e.Slot))
	}
}
