// Package game orchestrates turns: player command in, enemy wander,
// visibility recompute, frame out.
package game

import (
	"errors"
	"log/slog"
	"math/rand"
	"sync/atomic"

	"github.com/gdamore/tcell/v2"

	"psyspy/internal/entity"
	"psyspy/internal/grid"
	"psyspy/internal/vis"
)

// CompactInterval is how many turns pass between registry compaction
// sweeps.
const CompactInterval = 32

// Command is one player action for a single turn.
type Command uint8

const (
	CmdNone Command = iota
	CmdUp
	CmdDown
	CmdLeft
	CmdRight
	CmdWait
	CmdQuit
)

// World aggregates the floor and its entity registry. Everything a turn
// mutates hangs off one World; there is no ambient shared state.
type World struct {
	Floor *grid.Floor
	Reg   *entity.Registry
}

// NewWorld creates an open world with the given floor radii.
func NewWorld(xRad, yRad int) *World {
	floor := grid.New(xRad, yRad)
	return &World{Floor: floor, Reg: entity.NewRegistry(floor)}
}

// Frame is the snapshot handed to a Presenter after each turn. Consumers
// must treat it as read-only.
type Frame struct {
	Floor *grid.Floor
	Field *vis.Field
	Reg   *entity.Registry
	Turn  int
}

// Presenter renders a Frame. The renderer in internal/render is the real
// implementation; tests substitute their own.
type Presenter interface {
	Present(Frame)
}

// Game drives the turn state machine. Idle/InTurn is a single atomic
// flag: a turn begins only by winning the compare-and-swap, so two
// keypresses racing each other can never interleave their entity
// mutations — the loser is dropped, not queued.
type Game struct {
	world        *World
	presenter    Presenter
	rng          *rand.Rand
	logger       *slog.Logger
	inTurn       atomic.Bool
	turns        int
	compactEvery int
}

// New creates a Game over world. A nil logger discards turn diagnostics.
func New(world *World, presenter Presenter, rng *rand.Rand, logger *slog.Logger) *Game {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Game{
		world:        world,
		presenter:    presenter,
		rng:          rng,
		logger:       logger,
		compactEvery: CompactInterval,
	}
}

// Turns returns the number of completed turns.
func (g *Game) Turns() int { return g.turns }

// commandDelta maps a movement command to its step vector.
func commandDelta(cmd Command) (dx, dy int) {
	switch cmd {
	case CmdUp:
		return 0, 1
	case CmdDown:
		return 0, -1
	case CmdLeft:
		return -1, 0
	case CmdRight:
		return 1, 0
	}
	return 0, 0
}

// ExecuteTurn runs one full game turn for cmd. If a turn is already in
// progress the call is logged and dropped: no queueing, no retry. Safe to
// call from any goroutine; the body runs strictly serialized.
func (g *Game) ExecuteTurn(cmd Command) {
	if !g.inTurn.CompareAndSwap(false, true) {
		g.logger.Debug("turn already in progress, command dropped", "cmd", int(cmd))
		return
	}
	defer g.inTurn.Store(false)

	player := g.world.Reg.Player()
	if player == nil {
		g.logger.Warn("turn requested with no player spawned")
		return
	}

	if dx, dy := commandDelta(cmd); dx != 0 || dy != 0 {
		g.world.Reg.Move(player, dx, dy)
	}

	g.wanderEnemies()

	g.turns++
	if g.turns%g.compactEvery == 0 {
		g.world.Reg.Compact(entity.Enemy)
		g.world.Reg.Compact(entity.Furniture)
	}

	g.present()
}

// wanderEnemies steps every live enemy one cardinal direction, chosen
// uniformly at random. Collisions with walls, entities, or the floor edge
// silently cancel that enemy's step.
func (g *Game) wanderEnemies() {
	steps := [4][2]int{{1, 0}, {0, 1}, {-1, 0}, {0, -1}}
	g.world.Reg.EachOfKind(entity.Enemy, func(e *entity.Entity) {
		s := steps[g.rng.Intn(4)]
		g.world.Reg.Move(e, s[0], s[1])
	})
}

// present recomputes the visibility field from the player's tile and hands
// the frame to the presenter.
func (g *Game) present() {
	if g.presenter == nil {
		return
	}
	player := g.world.Reg.Player()
	g.presenter.Present(Frame{
		Floor: g.world.Floor,
		Field: vis.FloorField(g.world.Floor, player.X, player.Y),
		Reg:   g.world.Reg,
		Turn:  g.turns,
	})
}

// ErrNoPlayer is returned by Run when the scenario never spawned a player.
var ErrNoPlayer = errors.New("game: no player spawned")

// Run polls screen events until quit. Each keypress dispatches its turn on
// its own goroutine, exactly as fast repeated input arrives; the turn gate
// makes the overlap harmless.
func (g *Game) Run(screen tcell.Screen) error {
	if g.world.Reg.Player() == nil {
		return ErrNoPlayer
	}
	g.present()

	for {
		switch ev := screen.PollEvent().(type) {
		case *tcell.EventResize:
			screen.Sync()
		case *tcell.EventKey:
			cmd := commandForKey(ev)
			if cmd == CmdQuit {
				return nil
			}
			if cmd != CmdNone {
				go g.ExecuteTurn(cmd)
			}
		case nil:
			return nil // screen finalized
		}
	}
}
