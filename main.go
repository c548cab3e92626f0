// psyspy is a turn-based terminal game about seeing and being seen.
// Run it locally:
//
//	go run .
//
// Arrow keys or hjkl move, '.' waits, q or Escape quits. For remote play
// over SSH see cmd/server.
package main

import (
	"fmt"
	"log/slog"
	"math/rand"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"

	"psyspy/internal/game"
	"psyspy/internal/render"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "psyspy:", err)
		os.Exit(1)
	}
}

func run() error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("open terminal: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	defer screen.Fini()

	w := game.NewWorld(game.FloorXRad, game.FloorYRad)
	game.Setup(w)
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	g := game.New(w, render.New(screen), rng, slog.New(slog.DiscardHandler))
	return g.Run(screen)
}
